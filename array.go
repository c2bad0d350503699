package vector

// Char is the set of element types that can be built from the bytes of a string.
type Char interface {
	~byte | ~rune
}

// Array is a growable array over a contiguous buffer obtained from an
// Allocator. Slots below Size hold live elements; slots in [Size, Cap) are
// raw. Element lifetimes are driven through ElementOps.
//
// An Array is not goroutine-safe. Iterators and slices returned by Data are
// invalidated by any operation that reallocates the buffer.
type Array[T any] struct {
	data     []T // len(data) == capacity, nil when capacity == 0
	size     int
	capacity int
	alloc    Allocator[T]
	ops      ElementOps[T]
}

// New returns an empty array with no buffer.
func New[T any](opts ...Option[T]) *Array[T] {
	c := newConfig(opts)
	return &Array[T]{alloc: c.alloc, ops: c.ops}
}

// FromString builds an array with one element per byte of s and capacity
// len(s). If constructing any element fails, every element built so far is
// destroyed, the buffer is released and the error is returned.
func FromString[T Char](s string, opts ...Option[T]) (*Array[T], error) {
	a := New(opts...)
	err := a.constructFrom(len(s), len(s), func(i int) T { return T(s[i]) })
	if err != nil {
		return nil, err
	}
	return a, nil
}

// FromSlice builds an array holding copies of src with capacity len(src).
// On failure nothing is leaked and the error is returned.
func FromSlice[T any](src []T, opts ...Option[T]) (*Array[T], error) {
	a := New(opts...)
	err := a.constructFrom(len(src), len(src), func(i int) T { return src[i] })
	if err != nil {
		return nil, err
	}
	return a, nil
}

// Of builds a heap-backed array from vals. It panics if construction fails,
// which cannot happen with the default allocator and element ops.
func Of[T any](vals ...T) *Array[T] {
	a, err := FromSlice(vals)
	if err != nil {
		panic(err)
	}
	return a
}

// Clone returns a copy of a sharing its allocator and element ops. An empty
// source yields an empty clone; otherwise the clone has a's capacity.
// If a copy fails the clone is unwound and the error returned.
func (a *Array[T]) Clone() (*Array[T], error) {
	b := &Array[T]{alloc: a.alloc, ops: a.ops}
	if a.size == 0 {
		return b, nil
	}
	err := b.constructFrom(a.size, a.capacity, func(i int) T { return a.data[i] })
	if err != nil {
		return nil, err
	}
	return b, nil
}

// Move returns a new array that owns a's buffer, allocator and element ops,
// and leaves a empty. It never fails.
func (a *Array[T]) Move() *Array[T] {
	b := &Array[T]{alloc: a.alloc, ops: a.ops}
	b.take(a)
	return b
}

// CopyFrom makes a hold copies of src's elements.
//
// If a cannot hold src.Size() elements its contents are destroyed and a new
// buffer of exactly that size is allocated. Slots that are already live are
// assigned, slots past them are constructed, and surplus live slots are
// destroyed. If an element operation fails, a keeps every slot written so
// far live and the error is returned: a stays consistent but may hold a mix
// of old and new elements.
func (a *Array[T]) CopyFrom(src *Array[T]) error {
	if a == src {
		return nil
	}
	if a.capacity < src.size {
		a.destroyAll()
		block, err := a.alloc.Allocate(src.size)
		if err != nil {
			return err
		}
		a.data, a.capacity = block, src.size
	}

	i := 0
	for ; i < src.size; i++ {
		var err error
		if i < a.size {
			err = a.ops.Assign(&a.data[i], src.data[i])
		} else {
			err = a.ops.Construct(&a.data[i], src.data[i])
		}
		if err != nil {
			if i > a.size {
				a.size = i
			}
			a.checkInvariant()
			return err
		}
	}
	for ; i < a.size; i++ {
		a.ops.Destroy(&a.data[i])
	}
	a.size = src.size
	a.checkInvariant()
	return nil
}

// MoveFrom releases a's contents and takes ownership of src's buffer,
// allocator and element ops, leaving src empty. It never fails.
func (a *Array[T]) MoveFrom(src *Array[T]) {
	if a == src {
		return
	}
	a.destroyAll()
	a.alloc, a.ops = src.alloc, src.ops
	a.take(src)
}

// Release destroys every element and returns the buffer to the allocator.
// The array is left empty and may be reused.
func (a *Array[T]) Release() {
	a.destroyAll()
}

// Index returns the element at i without a bounds check against Size.
func (a *Array[T]) Index(i int) T {
	return a.data[i]
}

// Ref returns a pointer to slot i without a bounds check against Size.
func (a *Array[T]) Ref(i int) *T {
	return &a.data[i]
}

// At returns the element at i, or a *RangeError if i is not below Size.
func (a *Array[T]) At(i int) (T, error) {
	if i < 0 || i >= a.size {
		var zero T
		return zero, &RangeError{Index: i, Size: a.size}
	}
	return a.data[i], nil
}

// AtRef returns a pointer to the element at i, or a *RangeError if i is not
// below Size.
func (a *Array[T]) AtRef(i int) (*T, error) {
	if i < 0 || i >= a.size {
		return nil, &RangeError{Index: i, Size: a.size}
	}
	return &a.data[i], nil
}

// Data returns the live elements. The slice aliases the buffer and has the
// array's capacity.
func (a *Array[T]) Data() []T {
	return a.data[:a.size]
}

// Size returns the number of live elements.
func (a *Array[T]) Size() int { return a.size }

// Cap returns the number of slots in the buffer.
func (a *Array[T]) Cap() int { return a.capacity }

// Empty reports whether the array has no live elements.
func (a *Array[T]) Empty() bool { return a.size == 0 }

// Reserve grows the buffer to exactly n slots if n exceeds the capacity.
func (a *Array[T]) Reserve(n int) error {
	if n <= a.capacity {
		return nil
	}
	return a.reallocate(n)
}

// ShrinkToFit reallocates the buffer down to exactly Size slots.
func (a *Array[T]) ShrinkToFit() error {
	if a.capacity <= a.size {
		return nil
	}
	return a.reallocate(a.size)
}

// Resize sets the number of live elements to n, growing the buffer to exactly
// n slots when needed. New slots are constructed from the zero value, surplus
// slots are destroyed.
func (a *Array[T]) Resize(n int) error {
	if n < 0 {
		return ErrNegativeSize
	}
	if n > a.capacity {
		if err := a.reallocate(n); err != nil {
			return err
		}
	}
	var zero T
	for ; a.size < n; a.size++ {
		if err := a.ops.Construct(&a.data[a.size], zero); err != nil {
			a.checkInvariant()
			return err
		}
	}
	for i := n; i < a.size; i++ {
		a.ops.Destroy(&a.data[i])
	}
	a.size = n
	a.checkInvariant()
	return nil
}

// PushBack appends v, doubling the capacity (or setting it to 1) when full.
func (a *Array[T]) PushBack(v T) error {
	if a.size+1 > a.capacity {
		newCap := 1
		if a.capacity > 0 {
			newCap = a.capacity * 2
		}
		if err := a.reallocate(newCap); err != nil {
			return err
		}
	}
	if err := a.ops.Construct(&a.data[a.size], v); err != nil {
		return err
	}
	a.size++
	a.checkInvariant()
	return nil
}

// PopBack destroys the last element. Calling it on an empty array panics.
func (a *Array[T]) PopBack() {
	a.ops.Destroy(&a.data[a.size-1])
	a.size--
}

// Swap exchanges the buffers, sizes, capacities, allocators and element ops
// of a and b.
func Swap[T any](a, b *Array[T]) {
	*a, *b = *b, *a
}

// reallocate moves the elements into a fresh buffer of newCap slots. If a
// copy fails, the partial new buffer is unwound and a is left untouched.
func (a *Array[T]) reallocate(newCap int) error {
	block, err := a.alloc.Allocate(newCap)
	if err != nil {
		return err
	}
	for i := 0; i < a.size; i++ {
		if err := a.ops.Construct(&block[i], a.data[i]); err != nil {
			a.destroyBlock(block, i, newCap)
			return err
		}
	}
	size := a.size
	a.destroyAll()
	a.data, a.size, a.capacity = block, size, newCap
	a.checkInvariant()
	return nil
}

// constructFrom fills an empty array with n elements produced by at, using a
// buffer of capacity slots. On failure the array is returned to empty.
func (a *Array[T]) constructFrom(n, capacity int, at func(int) T) error {
	if capacity == 0 {
		return nil
	}
	block, err := a.alloc.Allocate(capacity)
	if err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		if err := a.ops.Construct(&block[i], at(i)); err != nil {
			a.destroyBlock(block, i, capacity)
			return err
		}
	}
	a.data, a.size, a.capacity = block, n, capacity
	a.checkInvariant()
	return nil
}

// destroyAll destroys the live elements, releases the buffer and leaves the
// array empty.
func (a *Array[T]) destroyAll() {
	if a.data != nil {
		a.destroyBlock(a.data, a.size, a.capacity)
	}
	a.data, a.size, a.capacity = nil, 0, 0
}

// destroyBlock destroys the first live slots of block and deallocates it.
func (a *Array[T]) destroyBlock(block []T, live, capacity int) {
	for i := 0; i < live; i++ {
		a.ops.Destroy(&block[i])
	}
	a.alloc.Deallocate(block, capacity)
}

// take moves src's buffer into a, which must hold no buffer, and empties src.
func (a *Array[T]) take(src *Array[T]) {
	a.data, a.size, a.capacity = src.data, src.size, src.capacity
	src.data, src.size, src.capacity = nil, 0, 0
}
