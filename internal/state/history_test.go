package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func snapOf(t *testing.T, shapes ...Shape) Snapshot {
	t.Helper()
	snap, err := newSnapshot(shapes)
	require.NoError(t, err)
	return snap
}

func TestHistorySeeded(t *testing.T) {
	h := NewHistory(EmptySnapshot())

	assert.Equal(t, 0, h.Index())
	assert.Equal(t, 1, h.Len())

	cur, ok := h.Current()
	require.True(t, ok)
	assert.True(t, cur.Equal(EmptySnapshot()))
}

func TestHistoryUndoBackToSeed(t *testing.T) {
	h := NewHistory(EmptySnapshot())
	var shapes []Shape
	const n = 5
	for i := 0; i < n; i++ {
		shapes = append(shapes, NewRect(float64(i), 0, 10, 10, "#000000"))
		h.Record(snapOf(t, shapes...))
	}
	require.Equal(t, n, h.Index())

	var last Snapshot
	for i := 0; i < n; i++ {
		snap, ok := h.Undo()
		require.True(t, ok, "undo %d", i)
		last = snap
	}

	assert.Equal(t, 0, h.Index())
	assert.True(t, last.Equal(EmptySnapshot()))

	_, ok := h.Undo()
	assert.False(t, ok)
	assert.Equal(t, 0, h.Index())
}

func TestHistoryRecordAfterUndoDropsFuture(t *testing.T) {
	h := NewHistory(EmptySnapshot())
	first := snapOf(t, NewRect(0, 0, 1, 1, "#ff0000"))
	second := snapOf(t, NewCircle(0, 0, 1, "#00ff00"))

	h.Record(first)
	_, ok := h.Undo()
	require.True(t, ok)
	assert.Equal(t, 2, h.Len(), "undo keeps the forward entry until the next record")

	h.Record(second)
	assert.Equal(t, 1, h.Index())
	assert.Equal(t, 2, h.Len())

	cur, _ := h.Current()
	assert.True(t, cur.Equal(second))
	for i := 0; i < h.Len(); i++ {
		assert.False(t, h.snapshots[i].Equal(first))
	}
}

func TestHistoryZeroValue(t *testing.T) {
	var h History

	_, ok := h.Undo()
	assert.False(t, ok)
	_, ok = h.Current()
	assert.False(t, ok)
	assert.Equal(t, -1, h.Index())

	h.Record(EmptySnapshot())
	assert.Equal(t, 0, h.Index())
	assert.Equal(t, 1, h.Len())
}
