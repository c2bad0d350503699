package vector

import "sync"

// SafeArena is a mutex-protected Arena. It lets arrays that live on different
// goroutines draw from one arena; the arrays themselves remain unsynchronized.
type SafeArena[T any] struct {
	mu sync.Mutex
	a  *Arena[T]
}

// NewSafeArena creates a goroutine-safe arena with chunkSize slots per chunk.
// If chunkSize <= 0, DefaultChunkSize is used.
func NewSafeArena[T any](chunkSize int) *SafeArena[T] {
	return &SafeArena[T]{a: NewArena[T](chunkSize)}
}

// Allocate returns a block of n slots from the arena.
func (s *SafeArena[T]) Allocate(n int) ([]T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Allocate(n)
}

// Deallocate hands the block back to the arena.
func (s *SafeArena[T]) Deallocate(block []T, n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.Deallocate(block, n)
}

// EnsureCapacity ensures the current chunk has at least n free slots.
func (s *SafeArena[T]) EnsureCapacity(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.EnsureCapacity(n)
}

// Reset rewinds the arena for reuse.
func (s *SafeArena[T]) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.Reset()
}

// Release drops all chunks.
func (s *SafeArena[T]) Release() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.Release()
}

// Metrics returns a snapshot of arena statistics.
func (s *SafeArena[T]) Metrics() ArenaMetrics {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Metrics()
}
