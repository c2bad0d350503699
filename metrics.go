package vector

// SizeInUse returns the number of slots currently handed out by the arena.
func (a *Arena[T]) SizeInUse() int {
	sum := 0
	for _, c := range a.chunks {
		sum += c.offset
	}
	return sum
}

// NumChunks returns the number of chunks currently held by the arena.
func (a *Arena[T]) NumChunks() int {
	return len(a.chunks)
}

// Capacity returns the total number of slots across all chunks.
func (a *Arena[T]) Capacity() int {
	sum := 0
	for _, c := range a.chunks {
		sum += len(c.buf)
	}
	return sum
}

// Utilization returns the ratio of slots in use to total capacity (0.0 to 1.0).
// Returns 0.0 if the arena has no capacity.
func (a *Arena[T]) Utilization() float64 {
	capacity := a.Capacity()
	if capacity == 0 {
		return 0
	}
	return float64(a.SizeInUse()) / float64(capacity)
}

// ChunkSize returns the default chunk size used by this arena.
func (a *Arena[T]) ChunkSize() int {
	return a.chunkSize
}

// Metrics returns a snapshot of arena statistics.
func (a *Arena[T]) Metrics() ArenaMetrics {
	return ArenaMetrics{
		SizeInUse:   a.SizeInUse(),
		Capacity:    a.Capacity(),
		NumChunks:   a.NumChunks(),
		ChunkSize:   a.ChunkSize(),
		Utilization: a.Utilization(),
	}
}

// ArenaMetrics contains statistical information about an arena.
type ArenaMetrics struct {
	SizeInUse   int     // Slots currently handed out
	Capacity    int     // Total slots
	NumChunks   int     // Number of chunks
	ChunkSize   int     // Default chunk size
	Utilization float64 // Ratio of used to total capacity (0.0-1.0)
}

// AllocatorMetrics counts the traffic seen by a CountingAllocator.
type AllocatorMetrics struct {
	Allocations   int // Successful Allocate calls with n > 0
	Deallocations int // Deallocate calls with n > 0
	Failures      int // Allocate calls that returned an error
	LiveBlocks    int // Blocks handed out and not yet returned
	LiveSlots     int // Slots handed out and not yet returned
	PeakSlots     int // Highest LiveSlots observed
}

// CountingAllocator records AllocatorMetrics for every block that passes
// through it. Not goroutine-safe.
type CountingAllocator[T any] struct {
	next Allocator[T]
	m    AllocatorMetrics
}

// NewCountingAllocator wraps next. A nil next allocates from the heap.
func NewCountingAllocator[T any](next Allocator[T]) *CountingAllocator[T] {
	if next == nil {
		next = HeapAllocator[T]{}
	}
	return &CountingAllocator[T]{next: next}
}

// Allocate forwards to the wrapped allocator and counts the outcome.
func (c *CountingAllocator[T]) Allocate(n int) ([]T, error) {
	block, err := c.next.Allocate(n)
	if err != nil {
		c.m.Failures++
		return nil, err
	}
	if n > 0 {
		c.m.Allocations++
		c.m.LiveBlocks++
		c.m.LiveSlots += n
		c.m.PeakSlots = max(c.m.PeakSlots, c.m.LiveSlots)
	}
	return block, nil
}

// Deallocate forwards to the wrapped allocator and counts the release.
func (c *CountingAllocator[T]) Deallocate(block []T, n int) {
	c.next.Deallocate(block, n)
	if n > 0 {
		c.m.Deallocations++
		c.m.LiveBlocks--
		c.m.LiveSlots -= n
	}
}

// Metrics returns a snapshot of the counters.
func (c *CountingAllocator[T]) Metrics() AllocatorMetrics {
	return c.m
}
