package vector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeapAllocator(t *testing.T) {
	var h HeapAllocator[string]

	block, err := h.Allocate(5)
	require.NoError(t, err)
	assert.Len(t, block, 5)
	for i, v := range block {
		assert.Empty(t, v, "slot %d", i)
	}

	block, err = h.Allocate(0)
	require.NoError(t, err)
	assert.Nil(t, block)

	_, err = h.Allocate(-3)
	assert.ErrorIs(t, err, ErrNegativeSize)
}

func TestBoundedAllocator(t *testing.T) {
	b := NewBoundedAllocator[int](nil, 10)
	assert.Equal(t, 10, b.Limit())

	first, err := b.Allocate(6)
	require.NoError(t, err)
	assert.Equal(t, 6, b.InUse())

	_, err = b.Allocate(5)
	assert.ErrorIs(t, err, ErrAllocationFailed)
	assert.Equal(t, 6, b.InUse())

	second, err := b.Allocate(4)
	require.NoError(t, err)
	assert.Equal(t, 10, b.InUse())

	b.Deallocate(first, 6)
	b.Deallocate(second, 4)
	assert.Equal(t, 0, b.InUse())

	_, err = b.Allocate(-1)
	assert.ErrorIs(t, err, ErrNegativeSize)
}

func TestBoundedAllocatorPassesThroughFailures(t *testing.T) {
	arena := NewArena[int](8)
	arena.Release()
	b := NewBoundedAllocator[int](arena, 100)

	_, err := b.Allocate(4)
	assert.ErrorIs(t, err, ErrArenaReleased)
	assert.Equal(t, 0, b.InUse())
}
