package vector

// DefaultChunkSize is the default number of slots per arena chunk.
const DefaultChunkSize = 1 << 12

// chunk is a single slab of slots within an arena.
type chunk[T any] struct {
	buf    []T // backing slots
	offset int // next free slot within buf
}

// Arena is a chunked bump allocator of typed slots. Blocks are carved out of
// the current chunk; a request that does not fit moves on to the next chunk
// with room for it, and only when none is left is a new chunk of at least the
// requested size added. Deallocate only reclaims the most recent block of
// the current chunk, everything else is reclaimed in bulk by Reset.
//
// Not goroutine-safe. Use SafeArena to share one arena between goroutines.
type Arena[T any] struct {
	chunks       []chunk[T]
	chunkSize    int
	current      int // index of currentChunk in chunks
	currentChunk *chunk[T]
}

// NewArena creates an Arena whose chunks hold chunkSize slots.
// If chunkSize <= 0, DefaultChunkSize is used.
func NewArena[T any](chunkSize int) *Arena[T] {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	a := &Arena[T]{chunkSize: chunkSize}
	a.grow(chunkSize)
	return a
}

// Allocate returns a block of n slots from the arena. The block is capped at
// n so appending to it never spills into a neighbouring block.
func (a *Arena[T]) Allocate(n int) ([]T, error) {
	if n < 0 {
		return nil, ErrNegativeSize
	}
	if a.chunks == nil {
		return nil, ErrArenaReleased
	}
	if n == 0 {
		return nil, nil
	}

	// Fast path: cached current chunk
	c := a.currentChunk
	if c.offset+n > len(c.buf) {
		a.advance(n)
		c = a.currentChunk
	}
	start := c.offset
	c.offset += n
	return c.buf[start:c.offset:c.offset], nil
}

// Deallocate clears the block. If it is the last block handed out from the
// current chunk its slots are returned to the chunk immediately.
func (a *Arena[T]) Deallocate(block []T, n int) {
	if n <= 0 || len(block) == 0 || a.chunks == nil {
		return
	}
	clear(block)
	c := a.currentChunk
	if c.offset >= n && &c.buf[c.offset-n] == &block[0] {
		c.offset -= n
	}
}

// EnsureCapacity ensures the current chunk has at least n free slots.
// If not, it moves to a later chunk with room or grows the arena.
func (a *Arena[T]) EnsureCapacity(n int) {
	a.panicIfReleased()
	c := a.currentChunk
	if c.offset+n > len(c.buf) {
		a.advance(n)
	}
}

// Reset rewinds every chunk and clears the slots handed out so far. Blocks
// obtained before Reset must no longer be used.
func (a *Arena[T]) Reset() {
	a.panicIfReleased()
	for i := range a.chunks {
		c := &a.chunks[i]
		clear(c.buf[:c.offset])
		c.offset = 0
	}
	a.current = 0
	a.currentChunk = &a.chunks[0]
}

// Release drops all chunks. Later allocations fail with ErrArenaReleased and
// Reset or EnsureCapacity panic.
func (a *Arena[T]) Release() {
	a.chunks = nil
	a.current = 0
	a.currentChunk = nil
}

// advance makes the first chunk after the current one with room for n slots
// current. Chunks are only added when none of the rewound ones fit.
func (a *Arena[T]) advance(n int) {
	for i := a.current + 1; i < len(a.chunks); i++ {
		if c := &a.chunks[i]; c.offset+n <= len(c.buf) {
			a.current = i
			a.currentChunk = c
			return
		}
	}
	a.grow(n)
}

// grow appends a new chunk of at least min slots and makes it current.
func (a *Arena[T]) grow(min int) {
	size := max(a.chunkSize, min)
	a.chunks = append(a.chunks, chunk[T]{buf: make([]T, size)})
	a.current = len(a.chunks) - 1
	a.currentChunk = &a.chunks[a.current]
}

func (a *Arena[T]) panicIfReleased() {
	if a.chunks == nil {
		panic("vector: arena used after Release()")
	}
}
