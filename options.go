package vector

// Option configures an Array at construction time.
type Option[T any] func(*config[T])

type config[T any] struct {
	alloc Allocator[T]
	ops   ElementOps[T]
}

func defaultConfig[T any]() *config[T] {
	return &config[T]{
		alloc: HeapAllocator[T]{},
		ops:   ValueOps[T]{},
	}
}

func newConfig[T any](opts []Option[T]) *config[T] {
	c := defaultConfig[T]()
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// WithAllocator sets the allocator the array obtains its buffers from.
// A nil allocator keeps the default HeapAllocator.
func WithAllocator[T any](a Allocator[T]) Option[T] {
	return func(c *config[T]) {
		if a != nil {
			c.alloc = a
		}
	}
}

// WithElementOps sets the hooks used to construct, assign and destroy elements.
// Nil keeps ValueOps.
func WithElementOps[T any](ops ElementOps[T]) Option[T] {
	return func(c *config[T]) {
		if ops != nil {
			c.ops = ops
		}
	}
}
