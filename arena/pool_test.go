package arena

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type poolItem struct {
	n    int
	next *poolItem
}

// TestPool_New tests basic pool allocation.
func TestPool_New(t *testing.T) {
	a := New()
	p := NewPool[poolItem](a)

	x, err := p.New()
	require.NoError(t, err)
	x.n = 1

	y, err := p.New()
	require.NoError(t, err)
	y.n = 2

	assert.Equal(t, 1, x.n, "items must not alias")
	assert.Equal(t, 2, y.n)
}

// TestPool_ItemsSurviveChunkGrowth tests pointer stability across growth.
func TestPool_ItemsSurviveChunkGrowth(t *testing.T) {
	a := New()
	p := NewPool[poolItem](a)

	var items []*poolItem
	for i := 0; i < 1000; i++ {
		it, err := p.New()
		require.NoError(t, err)
		it.n = i
		items = append(items, it)
	}
	for i, it := range items {
		require.Equal(t, i, it.n, "item %d should keep its value after growth", i)
	}
}

// TestPool_ResetRecycles tests that arena Reset rewinds the pool and that
// recycled items come back zeroed.
func TestPool_ResetRecycles(t *testing.T) {
	a := New()
	p := NewPool[poolItem](a)

	it, err := p.New()
	require.NoError(t, err)
	it.n = 42
	it.next = it

	a.Reset()

	fresh, err := p.New()
	require.NoError(t, err)
	assert.Equal(t, 0, fresh.n, "recycled item should be zeroed")
	assert.Nil(t, fresh.next)
}

// TestPool_CheckpointRewind tests that checkpoints rewind pool usage.
func TestPool_CheckpointRewind(t *testing.T) {
	a := New()
	p := NewPool[poolItem](a)

	keep, err := p.New()
	require.NoError(t, err)
	keep.n = 7

	cp := a.Begin()
	for _i := 0; _i < 500; _i++ {
		_, err := p.New()
		require.NoError(t, err)
	}
	require.NoError(t, cp.End())

	assert.Equal(t, 7, keep.n, "items from before the scope survive")

	// The next item reuses the position right after keep.
	next, err := p.New()
	require.NoError(t, err)
	assert.Zero(t, next.n)
}

// TestPool_AttachedInsideScope tests a pool created while a checkpoint is
// open: everything it holds belongs to the scope.
func TestPool_AttachedInsideScope(t *testing.T) {
	a := New()

	cp := a.Begin()
	p := NewPool[poolItem](a)
	for _i := 0; _i < 10; _i++ {
		_, err := p.New()
		require.NoError(t, err)
	}
	require.NoError(t, cp.End())

	// Pool was fully rewound; next New starts from the first slot again.
	it, err := p.New()
	require.NoError(t, err)
	assert.Zero(t, it.n)
}

// TestPool_Budget tests that chunk growth honors the arena budget.
func TestPool_Budget(t *testing.T) {
	a := WithLimit(256) // far below one chunk of poolItem
	p := NewPool[poolItem](a)

	_, err := p.New()
	assert.ErrorIs(t, err, ErrOutOfMemory)
}

// TestPool_ReleaseDropsChunks tests that Release empties the pool too.
func TestPool_ReleaseDropsChunks(t *testing.T) {
	a := New()
	p := NewPool[poolItem](a)

	for _i := 0; _i < 100; _i++ {
		_, err := p.New()
		require.NoError(t, err)
	}
	a.Release()

	it, err := p.New()
	require.NoError(t, err, "pool should be usable after Release")
	assert.Zero(t, it.n)
}
