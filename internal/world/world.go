package world

import (
	"fmt"
	"time"

	"github.com/feltengine/klondike/internal/component"
	"github.com/feltengine/klondike/internal/core/ecs"
	coresys "github.com/feltengine/klondike/internal/core/system"
)

// World composes the entity manager and the component tables into the
// single mutable store the systems operate on. All access is
// single-threaded by construction of the runner.
type World struct {
	entities   *ecs.Manager
	registry   *ecs.Registry
	Components *component.Tables
}

func New(maxEntities int) *World {
	reg := ecs.NewRegistry()
	return &World{
		entities:   ecs.NewManager(maxEntities),
		registry:   reg,
		Components: component.NewTables(reg),
	}
}

func (w *World) CreateEntity() (ecs.EntityID, error) {
	return w.entities.Create()
}

// RemoveEntity queues the entity for destruction at the end of the
// current tick. Its components are dropped during the flush.
func (w *World) RemoveEntity(id ecs.EntityID) {
	w.entities.MarkForRemoval(id)
}

func (w *World) EntityExists(id ecs.EntityID) bool {
	return w.entities.Alive(id)
}

func (w *World) EntityCount() int {
	return w.entities.Count()
}

func (w *World) AllEntities() []ecs.EntityID {
	return w.entities.AliveIDs()
}

// Flush destroys all entities queued for removal and clears their
// component data. RunTick calls this once after the scheduler; it is
// exported for drivers that run phases manually.
func (w *World) Flush() {
	for _, id := range w.entities.Flush() {
		w.registry.RemoveAll(id)
	}
}

// RunTick executes one full tick of the runner and then performs the
// housekeeping flush. A system error aborts the tick before the flush;
// pending removals survive to the next successful tick.
func (w *World) RunTick(r *coresys.Runner, dt time.Duration) error {
	if err := r.Tick(dt); err != nil {
		return err
	}
	w.Flush()
	return nil
}

// Clear removes every entity and component immediately. Used on reset.
func (w *World) Clear() {
	w.entities.Clear()
	w.registry.Clear()
}

// EntityAt returns the visible entity whose box contains the point,
// preferring the highest Z. Equal Z resolves to the lowest id so the
// result does not depend on map iteration order.
func (w *World) EntityAt(x, y float64) (ecs.EntityID, bool) {
	var (
		best  ecs.EntityID
		bestZ int
		found bool
	)
	ecs.Each2(w.Components.Transforms, w.Components.Renderables,
		func(id ecs.EntityID, tr *component.Transform, r *component.Renderable) {
			if !r.Visible || r.Opacity <= 0 {
				return
			}
			if x < tr.Position.X || x > tr.Position.X+r.Width ||
				y < tr.Position.Y || y > tr.Position.Y+r.Height {
				return
			}
			if !found || tr.Z > bestZ || (tr.Z == bestZ && id < best) {
				best, bestZ, found = id, tr.Z, true
			}
		})
	return best, found
}

// AddComponent attaches a component to an alive entity. Unlike reads,
// naming a dead entity here is an error.
func AddComponent[T any](w *World, s *ecs.Store[T], id ecs.EntityID, c *T) error {
	if !w.EntityExists(id) {
		return fmt.Errorf("%w: %d", ecs.ErrNoSuchEntity, id)
	}
	s.Set(id, c)
	return nil
}

// GetComponent reads a component. Absence (dead entity or missing kind)
// is an empty result, not an error.
func GetComponent[T any](w *World, s *ecs.Store[T], id ecs.EntityID) (*T, bool) {
	if !w.EntityExists(id) {
		return nil, false
	}
	return s.Get(id)
}

// RemoveComponent detaches and returns a component, if present.
func RemoveComponent[T any](w *World, s *ecs.Store[T], id ecs.EntityID) (*T, bool) {
	if !w.EntityExists(id) {
		return nil, false
	}
	return s.Take(id)
}

// HasComponent reports whether an alive entity carries the kind.
func HasComponent[T any](w *World, s *ecs.Store[T], id ecs.EntityID) bool {
	return w.EntityExists(id) && s.Has(id)
}

// Typed accessors for the closed kind set. These are the hot paths of
// the rule engine and the interaction systems.

func (w *World) Transform(id ecs.EntityID) (*component.Transform, bool) {
	return GetComponent(w, w.Components.Transforms, id)
}

func (w *World) Card(id ecs.EntityID) (*component.CardIdentity, bool) {
	return GetComponent(w, w.Components.Cards, id)
}

func (w *World) Renderable(id ecs.EntityID) (*component.Renderable, bool) {
	return GetComponent(w, w.Components.Renderables, id)
}

func (w *World) Draggable(id ecs.EntityID) (*component.Draggable, bool) {
	return GetComponent(w, w.Components.Draggables, id)
}

func (w *World) Clickable(id ecs.EntityID) (*component.Clickable, bool) {
	return GetComponent(w, w.Components.Clickables, id)
}

func (w *World) Stack(id ecs.EntityID) (*component.StackContainer, bool) {
	return GetComponent(w, w.Components.Stacks, id)
}

func (w *World) Droppable(id ecs.EntityID) (*component.Droppable, bool) {
	return GetComponent(w, w.Components.Droppables, id)
}

// StackOf returns the stack entity currently holding the card, if any.
// Exclusive membership makes the first hit the only hit.
func (w *World) StackOf(card ecs.EntityID) (ecs.EntityID, *component.StackContainer, bool) {
	var (
		foundID ecs.EntityID
		foundSt *component.StackContainer
	)
	w.Components.Stacks.Each(func(id ecs.EntityID, st *component.StackContainer) {
		if foundSt == nil && st.Contains(card) {
			foundID, foundSt = id, st
		}
	})
	return foundID, foundSt, foundSt != nil
}
