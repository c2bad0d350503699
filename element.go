package vector

// ElementOps controls the lifetime of elements inside an array's buffer.
//
// Allocation and construction are separate steps: an Allocator hands out raw
// slots, and ElementOps brings individual slots to life and ends their life
// again. Construct and Assign may fail; Destroy must not.
type ElementOps[T any] interface {
	// Construct initializes the raw slot dst as a copy of src.
	Construct(dst *T, src T) error
	// Assign overwrites the live slot dst with src.
	Assign(dst *T, src T) error
	// Destroy ends the lifetime of the live slot p.
	Destroy(p *T)
}

// ValueOps is the default ElementOps: plain Go assignment. Destroy resets the
// slot to the zero value so anything it referenced can be collected.
type ValueOps[T any] struct{}

// Construct copies src into the empty slot dst.
func (ValueOps[T]) Construct(dst *T, src T) error {
	*dst = src
	return nil
}

// Assign overwrites the live element at dst with src.
func (ValueOps[T]) Assign(dst *T, src T) error {
	*dst = src
	return nil
}

// Destroy zeroes the slot at p.
func (ValueOps[T]) Destroy(p *T) {
	var zero T
	*p = zero
}
