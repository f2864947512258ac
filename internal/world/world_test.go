package world

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feltengine/klondike/internal/component"
	"github.com/feltengine/klondike/internal/core/ecs"
	coresys "github.com/feltengine/klondike/internal/core/system"
)

func TestAddComponentRequiresAliveEntity(t *testing.T) {
	w := New(10)
	id, err := w.CreateEntity()
	require.NoError(t, err)

	require.NoError(t, AddComponent(w, w.Components.Transforms, id, component.NewTransform(1, 2)))

	err = AddComponent(w, w.Components.Transforms, 9999, component.NewTransform(0, 0))
	require.ErrorIs(t, err, ecs.ErrNoSuchEntity)
}

func TestReadsOnDeadEntityAreEmptyNotErrors(t *testing.T) {
	w := New(10)
	id, _ := w.CreateEntity()
	require.NoError(t, AddComponent(w, w.Components.Transforms, id, component.NewTransform(1, 2)))

	w.RemoveEntity(id)
	w.Flush()

	_, ok := w.Transform(id)
	assert.False(t, ok)
	assert.False(t, HasComponent(w, w.Components.Transforms, id))
	_, ok = RemoveComponent(w, w.Components.Transforms, id)
	assert.False(t, ok)
}

func TestFlushDropsComponentData(t *testing.T) {
	w := New(10)
	id, _ := w.CreateEntity()
	require.NoError(t, AddComponent(w, w.Components.Transforms, id, component.NewTransform(0, 0)))
	require.NoError(t, AddComponent(w, w.Components.Cards, id, component.NewCard(0, 0)))

	w.RemoveEntity(id)
	assert.True(t, w.Components.Transforms.Has(id), "components survive until flush")

	w.Flush()
	assert.False(t, w.Components.Transforms.Has(id))
	assert.False(t, w.Components.Cards.Has(id))
}

type removingSystem struct {
	w  *World
	id ecs.EntityID
}

func (s *removingSystem) Phase() coresys.Phase { return coresys.PhaseUpdate }
func (s *removingSystem) Priority() int        { return 0 }

func (s *removingSystem) Update(time.Duration) error {
	s.w.RemoveEntity(s.id)
	// Still visible within the same tick.
	if !s.w.EntityExists(s.id) {
		return errors.New("entity vanished mid-tick")
	}
	return nil
}

func TestRunTickFlushesAfterSystems(t *testing.T) {
	w := New(10)
	id, _ := w.CreateEntity()

	r := coresys.NewRunner()
	r.Register(&removingSystem{w: w, id: id})

	require.NoError(t, w.RunTick(r, time.Millisecond))
	assert.False(t, w.EntityExists(id))
}

type failingSystem struct{ err error }

func (s *failingSystem) Phase() coresys.Phase       { return coresys.PhaseUpdate }
func (s *failingSystem) Priority() int              { return 0 }
func (s *failingSystem) Update(time.Duration) error { return s.err }

func TestRunTickErrorSkipsFlush(t *testing.T) {
	w := New(10)
	id, _ := w.CreateEntity()
	w.RemoveEntity(id)

	boom := errors.New("boom")
	r := coresys.NewRunner()
	r.Register(&failingSystem{err: boom})

	err := w.RunTick(r, time.Millisecond)
	require.ErrorIs(t, err, boom)
	assert.True(t, w.EntityExists(id), "pending removal survives the failed tick")
}

func addBox(t *testing.T, w *World, x, y float64, z int, wd, ht float64) ecs.EntityID {
	t.Helper()
	id, err := w.CreateEntity()
	require.NoError(t, err)
	require.NoError(t, AddComponent(w, w.Components.Transforms, id, component.NewTransform(x, y).WithZ(z)))
	require.NoError(t, AddComponent(w, w.Components.Renderables, id, component.NewCardRenderable(wd, ht)))
	return id
}

func TestEntityAtPrefersHighestZ(t *testing.T) {
	w := New(10)
	low := addBox(t, w, 0, 0, 0, 100, 100)
	high := addBox(t, w, 50, 50, 5, 100, 100)

	id, ok := w.EntityAt(75, 75)
	require.True(t, ok)
	assert.Equal(t, high, id)

	id, ok = w.EntityAt(10, 10)
	require.True(t, ok)
	assert.Equal(t, low, id)

	_, ok = w.EntityAt(500, 500)
	assert.False(t, ok)
}

func TestEntityAtTieBreaksOnLowestID(t *testing.T) {
	w := New(10)
	first := addBox(t, w, 0, 0, 3, 100, 100)
	addBox(t, w, 0, 0, 3, 100, 100)

	id, ok := w.EntityAt(50, 50)
	require.True(t, ok)
	assert.Equal(t, first, id)
}

func TestEntityAtSkipsInvisible(t *testing.T) {
	w := New(10)
	id := addBox(t, w, 0, 0, 0, 100, 100)
	r, _ := w.Renderable(id)
	r.Visible = false

	_, ok := w.EntityAt(50, 50)
	assert.False(t, ok)
}

func TestStackOf(t *testing.T) {
	w := New(10)
	sid, _ := w.CreateEntity()
	st := component.NewStack(component.StackTableau, 0)
	st.Push(42)
	require.NoError(t, AddComponent(w, w.Components.Stacks, sid, st))

	gotID, gotSt, ok := w.StackOf(42)
	require.True(t, ok)
	assert.Equal(t, sid, gotID)
	assert.Equal(t, st, gotSt)

	_, _, ok = w.StackOf(7)
	assert.False(t, ok)
}
