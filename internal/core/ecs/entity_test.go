package ecs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManagerIssuesMonotonicIDs(t *testing.T) {
	m := NewManager(10)

	a, err := m.Create()
	require.NoError(t, err)
	b, err := m.Create()
	require.NoError(t, err)
	assert.Less(t, a, b)
	assert.NotZero(t, a)

	// Removal does not recycle ids.
	m.MarkForRemoval(a)
	m.Flush()
	c, err := m.Create()
	require.NoError(t, err)
	assert.Greater(t, c, b)
}

func TestManagerCapacity(t *testing.T) {
	m := NewManager(1000)
	for i := 0; i < 1000; i++ {
		_, err := m.Create()
		require.NoError(t, err)
	}
	_, err := m.Create()
	require.ErrorIs(t, err, ErrEntityLimit)

	// Freeing one slot makes creation possible again.
	m.MarkForRemoval(1)
	m.Flush()
	_, err = m.Create()
	require.NoError(t, err)
}

func TestMarkForRemovalIsDeferred(t *testing.T) {
	m := NewManager(10)
	id, err := m.Create()
	require.NoError(t, err)

	m.MarkForRemoval(id)
	assert.True(t, m.Alive(id), "entity stays alive until flush")

	removed := m.Flush()
	assert.Equal(t, []EntityID{id}, removed)
	assert.False(t, m.Alive(id))
	assert.Zero(t, m.Count())
}

func TestMarkForRemovalIdempotent(t *testing.T) {
	m := NewManager(10)
	id, _ := m.Create()
	other, _ := m.Create()

	m.MarkForRemoval(id)
	m.MarkForRemoval(id)
	m.MarkForRemoval(9999) // dead id is a no-op

	removed := m.Flush()
	assert.Len(t, removed, 1)
	assert.True(t, m.Alive(other))
	assert.Nil(t, m.Flush(), "second flush has nothing to do")
}

func TestManagerClear(t *testing.T) {
	m := NewManager(10)
	for i := 0; i < 5; i++ {
		_, err := m.Create()
		require.NoError(t, err)
	}
	m.Clear()
	assert.Zero(t, m.Count())
	assert.Empty(t, m.AliveIDs())
}
