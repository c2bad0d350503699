package vector

import (
	"iter"
	"unsafe"
)

// Iterator is a random-access position in an array's buffer that moves
// towards higher indexes. It owns nothing and is invalidated when the array
// reallocates, shrinks past it or is released.
type Iterator[T any] struct {
	buf []T
	pos int
}

// Begin returns an iterator at the first element.
func (a *Array[T]) Begin() Iterator[T] { return Iterator[T]{buf: a.data, pos: 0} }

// End returns an iterator one past the last element.
func (a *Array[T]) End() Iterator[T] { return Iterator[T]{buf: a.data, pos: a.size} }

// CBegin returns a read-only iterator at the first element.
func (a *Array[T]) CBegin() ConstIterator[T] { return a.Begin().Const() }

// CEnd returns a read-only iterator one past the last element.
func (a *Array[T]) CEnd() ConstIterator[T] { return a.End().Const() }

// All yields the index and value of every element in order.
func (a *Array[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < a.size; i++ {
			if !yield(i, a.data[i]) {
				return
			}
		}
	}
}

// Values yields every element in order.
func (a *Array[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < a.size; i++ {
			if !yield(a.data[i]) {
				return
			}
		}
	}
}

// Value returns the element at the iterator.
func (it Iterator[T]) Value() T { return it.buf[it.pos] }

// Ptr returns a pointer to the element at the iterator.
func (it Iterator[T]) Ptr() *T { return &it.buf[it.pos] }

// Index returns a pointer to the element n slots after the iterator.
func (it Iterator[T]) Index(n int) *T { return &it.buf[it.pos+n] }

// Offset returns the slot index the iterator refers to.
func (it Iterator[T]) Offset() int { return it.pos }

// Const returns a read-only iterator at the same position.
func (it Iterator[T]) Const() ConstIterator[T] { return ConstIterator[T]{it: it} }

// Inc advances the iterator and returns its new value.
func (it *Iterator[T]) Inc() Iterator[T] {
	it.pos++
	return *it
}

// PostInc advances the iterator and returns its previous value.
func (it *Iterator[T]) PostInc() Iterator[T] {
	old := *it
	it.pos++
	return old
}

// Dec moves the iterator back and returns its new value.
func (it *Iterator[T]) Dec() Iterator[T] {
	it.pos--
	return *it
}

// PostDec moves the iterator back and returns its previous value.
func (it *Iterator[T]) PostDec() Iterator[T] {
	old := *it
	it.pos--
	return old
}

// AddAssign advances the iterator by n slots.
func (it *Iterator[T]) AddAssign(n int) { it.pos += n }

// SubAssign moves the iterator back by n slots.
func (it *Iterator[T]) SubAssign(n int) { it.pos -= n }

// Add returns an iterator n slots further on.
func (it Iterator[T]) Add(n int) Iterator[T] { return Iterator[T]{buf: it.buf, pos: it.pos + n} }

// Sub returns an iterator n slots back.
func (it Iterator[T]) Sub(n int) Iterator[T] { return Iterator[T]{buf: it.buf, pos: it.pos - n} }

// Distance returns the number of slots from other to it.
func (it Iterator[T]) Distance(other Iterator[T]) int {
	mustSameBuffer(it.buf, other.buf)
	return it.pos - other.pos
}

// Equal reports whether both iterators refer to the same slot.
func (it Iterator[T]) Equal(other Iterator[T]) bool { return it.Distance(other) == 0 }

// NotEqual reports whether the iterators refer to different slots.
func (it Iterator[T]) NotEqual(other Iterator[T]) bool { return it.Distance(other) != 0 }

// Less reports whether the iterator comes before other.
func (it Iterator[T]) Less(other Iterator[T]) bool { return it.Distance(other) < 0 }

// Greater reports whether the iterator comes after other.
func (it Iterator[T]) Greater(other Iterator[T]) bool { return it.Distance(other) > 0 }

// LessEqual reports whether the iterator does not come after other.
func (it Iterator[T]) LessEqual(other Iterator[T]) bool { return it.Distance(other) <= 0 }

// GreaterEqual reports whether the iterator does not come before other.
func (it Iterator[T]) GreaterEqual(other Iterator[T]) bool { return it.Distance(other) >= 0 }

// ConstIterator is an Iterator that only reads elements.
type ConstIterator[T any] struct {
	it Iterator[T]
}

// Value returns the element at the iterator.
func (c ConstIterator[T]) Value() T { return c.it.Value() }

// Index returns the element n slots after the iterator.
func (c ConstIterator[T]) Index(n int) T { return *c.it.Index(n) }

// Offset returns the slot index the iterator refers to.
func (c ConstIterator[T]) Offset() int { return c.it.pos }

// Inc advances the iterator and returns its new value.
func (c *ConstIterator[T]) Inc() ConstIterator[T] { return c.it.Inc().Const() }

// PostInc advances the iterator and returns its previous value.
func (c *ConstIterator[T]) PostInc() ConstIterator[T] { return c.it.PostInc().Const() }

// Dec moves the iterator back and returns its new value.
func (c *ConstIterator[T]) Dec() ConstIterator[T] { return c.it.Dec().Const() }

// PostDec moves the iterator back and returns its previous value.
func (c *ConstIterator[T]) PostDec() ConstIterator[T] { return c.it.PostDec().Const() }

// AddAssign advances the iterator by n slots.
func (c *ConstIterator[T]) AddAssign(n int) { c.it.AddAssign(n) }

// SubAssign moves the iterator back by n slots.
func (c *ConstIterator[T]) SubAssign(n int) { c.it.SubAssign(n) }

// Add returns an iterator n slots further on.
func (c ConstIterator[T]) Add(n int) ConstIterator[T] { return c.it.Add(n).Const() }

// Sub returns an iterator n slots back.
func (c ConstIterator[T]) Sub(n int) ConstIterator[T] { return c.it.Sub(n).Const() }

// Distance returns the number of slots from other to it.
func (c ConstIterator[T]) Distance(other ConstIterator[T]) int { return c.it.Distance(other.it) }

// Equal reports whether both iterators refer to the same slot.
func (c ConstIterator[T]) Equal(other ConstIterator[T]) bool { return c.it.Equal(other.it) }

// NotEqual reports whether the iterators refer to different slots.
func (c ConstIterator[T]) NotEqual(other ConstIterator[T]) bool { return c.it.NotEqual(other.it) }

// Less reports whether the iterator comes before other.
func (c ConstIterator[T]) Less(other ConstIterator[T]) bool { return c.it.Less(other.it) }

// Greater reports whether the iterator comes after other.
func (c ConstIterator[T]) Greater(other ConstIterator[T]) bool { return c.it.Greater(other.it) }

// LessEqual reports whether the iterator does not come after other.
func (c ConstIterator[T]) LessEqual(other ConstIterator[T]) bool { return c.it.LessEqual(other.it) }

// GreaterEqual reports whether the iterator does not come before other.
func (c ConstIterator[T]) GreaterEqual(other ConstIterator[T]) bool {
	return c.it.GreaterEqual(other.it)
}

// mustSameBuffer panics unless a and b view the same buffer. Buffers of
// zero-size elements may share an address, so capacities are compared too;
// two distinct buffers that agree on both are not told apart.
func mustSameBuffer[T any](a, b []T) {
	if unsafe.SliceData(a) != unsafe.SliceData(b) || cap(a) != cap(b) {
		panic("vector: iterators over different buffers")
	}
}
