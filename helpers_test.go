package vector

import "errors"

var errBoom = errors.New("boom")

// trackingOps counts live elements and can be told to fail after a number of
// successful Construct/Assign calls.
type trackingOps[T any] struct {
	live       int
	constructs int
	assigns    int
	budget     int // successful Construct/Assign calls left; negative is unlimited
}

func newTrackingOps[T any]() *trackingOps[T] {
	return &trackingOps[T]{budget: -1}
}

func (o *trackingOps[T]) spend() error {
	if o.budget == 0 {
		return errBoom
	}
	if o.budget > 0 {
		o.budget--
	}
	return nil
}

func (o *trackingOps[T]) Construct(dst *T, src T) error {
	if err := o.spend(); err != nil {
		return err
	}
	*dst = src
	o.live++
	o.constructs++
	return nil
}

func (o *trackingOps[T]) Assign(dst *T, src T) error {
	if err := o.spend(); err != nil {
		return err
	}
	*dst = src
	o.assigns++
	return nil
}

func (o *trackingOps[T]) Destroy(p *T) {
	var zero T
	*p = zero
	o.live--
}

// tracked builds an array of vals whose elements and buffers are counted.
func tracked[T any](vals ...T) (*Array[T], *trackingOps[T], *CountingAllocator[T]) {
	ops := newTrackingOps[T]()
	alloc := NewCountingAllocator[T](nil)
	a, err := FromSlice(vals, WithAllocator[T](alloc), WithElementOps[T](ops))
	if err != nil {
		panic(err)
	}
	return a, ops, alloc
}
