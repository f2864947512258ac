package system

import (
	"time"

	"go.uber.org/zap"

	"github.com/feltengine/klondike/internal/component"
	"github.com/feltengine/klondike/internal/config"
	"github.com/feltengine/klondike/internal/core/ecs"
	coresys "github.com/feltengine/klondike/internal/core/system"
	"github.com/feltengine/klondike/internal/game"
	"github.com/feltengine/klondike/internal/resource"
	"github.com/feltengine/klondike/internal/world"
)

// DragSystem runs the pick/move/release gesture. A press on a face-up
// card lifts it, plus everything above it in a tableau column; a
// release over a legal drop target commits the move through the rules
// engine, anything else reverts every lifted card to its saved state.
// Per-card drag state (saved position, z, grab offset) lives in the
// Draggable component; the system itself only tracks the group order.
type DragSystem struct {
	w   *world.World
	res *resource.Resources
	eng *game.Engine
	cfg *config.Config
	log *zap.Logger

	group    []ecs.EntityID // lead first, then the cards fanned below it
	from     ecs.EntityID   // source stack entity
	active   bool
	prevDown bool
}

func NewDragSystem(w *world.World, res *resource.Resources, eng *game.Engine, cfg *config.Config, log *zap.Logger) *DragSystem {
	return &DragSystem{w: w, res: res, eng: eng, cfg: cfg, log: log.Named("drag")}
}

func (s *DragSystem) Phase() coresys.Phase { return coresys.PhaseInput }
func (s *DragSystem) Priority() int        { return 1 }

// Dragging reports whether a gesture is in flight.
func (s *DragSystem) Dragging() bool { return s.active }

func (s *DragSystem) Update(time.Duration) error {
	in := &s.res.Input
	defer func() {
		s.prevDown = in.Down
		in.ResetClick()
	}()

	switch {
	case in.Down && !s.prevDown:
		s.pickUp(in.Pointer)
	case in.Down && s.active:
		s.follow(in.Pointer)
	case !in.Down && s.prevDown && s.active:
		return s.release(in.Pointer)
	}
	return nil
}

// pickUp lifts the pressed card. A card with DragChildren set lifts the
// contiguous tableau run above it; elsewhere only the exposed top card
// is liftable.
func (s *DragSystem) pickUp(p component.Vec2) {
	id, ok := s.w.EntityAt(p.X, p.Y)
	if !ok {
		return
	}
	d, ok := s.w.Draggable(id)
	if !ok {
		return
	}
	// A draggable may narrow its grab region below its visual footprint.
	if d.Width > 0 && d.Height > 0 {
		tr, ok := s.w.Transform(id)
		if !ok {
			return
		}
		if p.X < tr.Position.X || p.X > tr.Position.X+d.Width ||
			p.Y < tr.Position.Y || p.Y > tr.Position.Y+d.Height {
			return
		}
	}
	card, ok := s.w.Card(id)
	if !ok || !card.FaceUp {
		return
	}
	sid, st, ok := s.w.StackOf(id)
	if !ok {
		return
	}

	var cards []ecs.EntityID
	if st.Kind == component.StackTableau && d.DragChildren {
		cards = st.CardsFrom(st.IndexOf(id))
	} else {
		top, _ := st.Top()
		if top != id {
			return
		}
		cards = []ecs.EntityID{id}
	}

	lead, ok := s.w.Transform(id)
	if !ok {
		return
	}
	d.Offset = p.Sub(lead.Position)
	s.from = sid
	s.group = s.group[:0]
	for i, c := range cards {
		tr, trOK := s.w.Transform(c)
		r, rOK := s.w.Renderable(c)
		cd, cdOK := s.w.Draggable(c)
		if !trOK || !rOK || !cdOK {
			return
		}
		cd.Dragging = true
		cd.OriginalPos = tr.Position
		cd.OriginalZ = tr.Z
		s.group = append(s.group, c)
		tr.Z = s.cfg.Board.DragZBase + i
		r.Opacity = s.cfg.Board.DragOpacity
	}
	s.active = true
	s.log.Debug("drag start", zap.Uint64("lead", uint64(id)), zap.Int("cards", len(s.group)))
}

// follow pins the group under the pointer, fanned by the tableau
// offset, and re-evaluates the drop-target highlight.
func (s *DragSystem) follow(p component.Vec2) {
	lead, ok := s.w.Draggable(s.group[0])
	if !ok {
		return
	}
	leadPos := p.Sub(lead.Offset)
	for i, id := range s.group {
		tr, ok := s.w.Transform(id)
		if !ok {
			continue
		}
		tr.Position = component.Vec2{
			X: leadPos.X,
			Y: leadPos.Y + float64(i)*s.cfg.Board.StackOffsetY,
		}
	}

	s.clearHighlights()
	if target, ok := s.dropTargetAt(p); ok {
		st, stOK := s.w.Stack(target)
		dp, dpOK := s.w.Droppable(target)
		if stOK && dpOK && s.eng.CanDrop(s.group[0], st) {
			dp.Active = true
		}
	}
}

func (s *DragSystem) release(p component.Vec2) error {
	defer s.reset()
	s.clearHighlights()

	lead := s.group[0]
	target, ok := s.dropTargetAt(p)
	if ok {
		moved, err := s.eng.MoveRun(lead, s.from, target)
		if err != nil {
			return err
		}
		if moved {
			s.restoreLook()
			return nil
		}
	}
	s.revert()
	return nil
}

// dropTargetAt finds the drop zone under the point, preferring the
// highest Z and breaking ties towards the lowest id.
func (s *DragSystem) dropTargetAt(p component.Vec2) (ecs.EntityID, bool) {
	var (
		best  ecs.EntityID
		bestZ int
		found bool
	)
	ecs.Each2(s.w.Components.Transforms, s.w.Components.Droppables,
		func(id ecs.EntityID, tr *component.Transform, d *component.Droppable) {
			if p.X < tr.Position.X || p.X > tr.Position.X+d.Width ||
				p.Y < tr.Position.Y || p.Y > tr.Position.Y+d.Height {
				return
			}
			if !found || tr.Z > bestZ || (tr.Z == bestZ && id < best) {
				best, bestZ, found = id, tr.Z, true
			}
		})
	return best, found
}

func (s *DragSystem) clearHighlights() {
	s.w.Components.Droppables.Each(func(_ ecs.EntityID, d *component.Droppable) {
		d.Active = false
	})
}

// revert puts every lifted card back exactly where it was.
func (s *DragSystem) revert() {
	for _, id := range s.group {
		tr, trOK := s.w.Transform(id)
		d, dOK := s.w.Draggable(id)
		if trOK && dOK {
			tr.Position = d.OriginalPos
			tr.Z = d.OriginalZ
		}
	}
	s.restoreLook()
}

func (s *DragSystem) restoreLook() {
	for _, id := range s.group {
		if r, ok := s.w.Renderable(id); ok {
			r.Opacity = 1
		}
		if d, ok := s.w.Draggable(id); ok {
			d.Dragging = false
			d.Offset = component.Vec2{}
		}
	}
}

func (s *DragSystem) reset() {
	s.group = s.group[:0]
	s.from = 0
	s.active = false
}
