package vector

// Allocator hands out and takes back raw blocks of element slots. It never
// constructs or destroys elements; that is the job of ElementOps.
type Allocator[T any] interface {
	// Allocate returns a block of exactly n slots. Allocate(0) returns nil.
	Allocate(n int) ([]T, error)
	// Deallocate releases a block previously returned by Allocate(n).
	// It must not fail.
	Deallocate(block []T, n int)
}

// HeapAllocator allocates blocks from the Go heap. Deallocate is a no-op and
// leaves reclamation to the garbage collector.
type HeapAllocator[T any] struct{}

// Allocate returns a fresh zeroed block of n slots.
func (HeapAllocator[T]) Allocate(n int) ([]T, error) {
	if n < 0 {
		return nil, ErrNegativeSize
	}
	if n == 0 {
		return nil, nil
	}
	return make([]T, n), nil
}

// Deallocate is a no-op; the garbage collector reclaims heap blocks.
func (HeapAllocator[T]) Deallocate([]T, int) {}

// BoundedAllocator caps the number of slots that may be outstanding at once.
// Requests that would exceed the limit fail with ErrAllocationFailed.
// Not goroutine-safe.
type BoundedAllocator[T any] struct {
	next  Allocator[T]
	limit int
	inUse int
}

// NewBoundedAllocator wraps next with a budget of limit slots.
// A nil next allocates from the heap.
func NewBoundedAllocator[T any](next Allocator[T], limit int) *BoundedAllocator[T] {
	if next == nil {
		next = HeapAllocator[T]{}
	}
	return &BoundedAllocator[T]{next: next, limit: limit}
}

// Allocate fails with ErrAllocationFailed when n more slots would exceed the limit.
func (b *BoundedAllocator[T]) Allocate(n int) ([]T, error) {
	if n < 0 {
		return nil, ErrNegativeSize
	}
	if b.inUse+n > b.limit {
		return nil, ErrAllocationFailed
	}
	block, err := b.next.Allocate(n)
	if err != nil {
		return nil, err
	}
	b.inUse += n
	return block, nil
}

// Deallocate returns the block to the wrapped allocator and frees its budget.
func (b *BoundedAllocator[T]) Deallocate(block []T, n int) {
	b.next.Deallocate(block, n)
	b.inUse -= n
}

// InUse returns the number of slots currently handed out.
func (b *BoundedAllocator[T]) InUse() int {
	return b.inUse
}

// Limit returns the slot budget.
func (b *BoundedAllocator[T]) Limit() int {
	return b.limit
}
