package ecs

import (
	"errors"
	"fmt"
)

// EntityID is an opaque handle. IDs are issued monotonically and never
// reused within a session; 0 is never a valid id.
type EntityID uint64

// ErrEntityLimit is returned by Manager.Create once the alive count has
// reached the configured ceiling.
var ErrEntityLimit = errors.New("entity limit reached")

// ErrNoSuchEntity is returned when a component operation names an entity
// that is not alive.
var ErrNoSuchEntity = errors.New("no such entity")

// Manager issues entity ids and tracks which are alive. Removal is
// two-phase: MarkForRemoval during a tick, Flush once after all systems
// have run, so iteration in still-running systems is never invalidated.
type Manager struct {
	nextID  EntityID
	maxLive int
	alive   map[EntityID]struct{}
	pending map[EntityID]struct{}
}

func NewManager(maxEntities int) *Manager {
	return &Manager{
		nextID:  1,
		maxLive: maxEntities,
		alive:   make(map[EntityID]struct{}, 256),
		pending: make(map[EntityID]struct{}, 16),
	}
}

func (m *Manager) Create() (EntityID, error) {
	if len(m.alive) >= m.maxLive {
		return 0, fmt.Errorf("%w (%d)", ErrEntityLimit, m.maxLive)
	}
	id := m.nextID
	m.nextID++
	m.alive[id] = struct{}{}
	return id, nil
}

// MarkForRemoval queues an alive entity for the next Flush. Marking a
// dead or already-pending id is a no-op.
func (m *Manager) MarkForRemoval(id EntityID) {
	if _, ok := m.alive[id]; ok {
		m.pending[id] = struct{}{}
	}
}

// Flush applies all pending removals and clears the pending set. It
// returns the ids that were removed so the caller can drop their
// component data.
func (m *Manager) Flush() []EntityID {
	if len(m.pending) == 0 {
		return nil
	}
	removed := make([]EntityID, 0, len(m.pending))
	for id := range m.pending {
		delete(m.alive, id)
		removed = append(removed, id)
	}
	clear(m.pending)
	return removed
}

func (m *Manager) Alive(id EntityID) bool {
	_, ok := m.alive[id]
	return ok
}

// AliveIDs returns the alive set in unspecified order.
func (m *Manager) AliveIDs() []EntityID {
	ids := make([]EntityID, 0, len(m.alive))
	for id := range m.alive {
		ids = append(ids, id)
	}
	return ids
}

func (m *Manager) Count() int {
	return len(m.alive)
}

// Clear removes every entity immediately. Used on game reset.
func (m *Manager) Clear() {
	clear(m.alive)
	clear(m.pending)
}
