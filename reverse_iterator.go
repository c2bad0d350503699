package vector

import "iter"

// ReverseIterator is a random-access position in an array's buffer that moves
// towards lower indexes, so advancing it visits elements from last to first.
// Distances and orderings are taken along that reversed direction: RBegin is
// less than REnd.
type ReverseIterator[T any] struct {
	buf []T
	pos int
}

// RBegin returns a reverse iterator at the last element.
func (a *Array[T]) RBegin() ReverseIterator[T] {
	return ReverseIterator[T]{buf: a.data, pos: a.size - 1}
}

// REnd returns a reverse iterator one slot before the first element.
// It must not be dereferenced.
func (a *Array[T]) REnd() ReverseIterator[T] {
	return ReverseIterator[T]{buf: a.data, pos: -1}
}

// CRBegin returns a read-only reverse iterator at the last element.
func (a *Array[T]) CRBegin() ConstReverseIterator[T] { return a.RBegin().Const() }

// CREnd returns a read-only reverse iterator one slot before the first element.
func (a *Array[T]) CREnd() ConstReverseIterator[T] { return a.REnd().Const() }

// Backward yields the index and value of every element from last to first.
func (a *Array[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := a.size - 1; i >= 0; i-- {
			if !yield(i, a.data[i]) {
				return
			}
		}
	}
}

// Value returns the element at the iterator.
func (it ReverseIterator[T]) Value() T { return it.buf[it.pos] }

// Ptr returns a pointer to the element at the iterator.
func (it ReverseIterator[T]) Ptr() *T { return &it.buf[it.pos] }

// Index returns a pointer to the element n steps further along the reversed
// traversal, that is n slots towards the front.
func (it ReverseIterator[T]) Index(n int) *T { return &it.buf[it.pos-n] }

// Offset returns the slot index the iterator refers to.
func (it ReverseIterator[T]) Offset() int { return it.pos }

// Const returns a read-only reverse iterator at the same position.
func (it ReverseIterator[T]) Const() ConstReverseIterator[T] {
	return ConstReverseIterator[T]{it: it}
}

// Inc moves the iterator one slot towards the front and returns its new value.
func (it *ReverseIterator[T]) Inc() ReverseIterator[T] {
	it.pos--
	return *it
}

// PostInc moves the iterator one slot towards the front and returns its previous value.
func (it *ReverseIterator[T]) PostInc() ReverseIterator[T] {
	old := *it
	it.pos--
	return old
}

// Dec moves the iterator one slot towards the back and returns its new value.
func (it *ReverseIterator[T]) Dec() ReverseIterator[T] {
	it.pos++
	return *it
}

// PostDec moves the iterator one slot towards the back and returns its previous value.
func (it *ReverseIterator[T]) PostDec() ReverseIterator[T] {
	old := *it
	it.pos++
	return old
}

// AddAssign moves the iterator n slots towards the front.
func (it *ReverseIterator[T]) AddAssign(n int) { it.pos -= n }

// SubAssign moves the iterator n slots towards the back.
func (it *ReverseIterator[T]) SubAssign(n int) { it.pos += n }

// Add returns an iterator n slots nearer the front.
func (it ReverseIterator[T]) Add(n int) ReverseIterator[T] {
	return ReverseIterator[T]{buf: it.buf, pos: it.pos - n}
}

// Sub returns an iterator n slots nearer the back.
func (it ReverseIterator[T]) Sub(n int) ReverseIterator[T] {
	return ReverseIterator[T]{buf: it.buf, pos: it.pos + n}
}

// Distance returns the number of steps along the reversed traversal from
// other to it.
func (it ReverseIterator[T]) Distance(other ReverseIterator[T]) int {
	mustSameBuffer(it.buf, other.buf)
	return other.pos - it.pos
}

// Equal reports whether both iterators refer to the same slot.
func (it ReverseIterator[T]) Equal(other ReverseIterator[T]) bool { return it.Distance(other) == 0 }

// NotEqual reports whether the iterators refer to different slots.
func (it ReverseIterator[T]) NotEqual(other ReverseIterator[T]) bool {
	return it.Distance(other) != 0
}

// Less reports whether the iterator is visited before other.
func (it ReverseIterator[T]) Less(other ReverseIterator[T]) bool { return it.Distance(other) < 0 }

// Greater reports whether the iterator is visited after other.
func (it ReverseIterator[T]) Greater(other ReverseIterator[T]) bool {
	return it.Distance(other) > 0
}

// LessEqual reports whether the iterator is not visited after other.
func (it ReverseIterator[T]) LessEqual(other ReverseIterator[T]) bool {
	return it.Distance(other) <= 0
}

// GreaterEqual reports whether the iterator is not visited before other.
func (it ReverseIterator[T]) GreaterEqual(other ReverseIterator[T]) bool {
	return it.Distance(other) >= 0
}

// ConstReverseIterator is a ReverseIterator that only reads elements.
type ConstReverseIterator[T any] struct {
	it ReverseIterator[T]
}

// Value returns the element at the iterator.
func (c ConstReverseIterator[T]) Value() T { return c.it.Value() }

// Index returns the element n steps further along the reversed traversal.
func (c ConstReverseIterator[T]) Index(n int) T { return *c.it.Index(n) }

// Offset returns the slot index the iterator refers to.
func (c ConstReverseIterator[T]) Offset() int { return c.it.pos }

// Inc moves the iterator one slot towards the front and returns its new value.
func (c *ConstReverseIterator[T]) Inc() ConstReverseIterator[T] { return c.it.Inc().Const() }

// PostInc moves the iterator one slot towards the front and returns its previous value.
func (c *ConstReverseIterator[T]) PostInc() ConstReverseIterator[T] {
	return c.it.PostInc().Const()
}

// Dec moves the iterator one slot towards the back and returns its new value.
func (c *ConstReverseIterator[T]) Dec() ConstReverseIterator[T] { return c.it.Dec().Const() }

// PostDec moves the iterator one slot towards the back and returns its previous value.
func (c *ConstReverseIterator[T]) PostDec() ConstReverseIterator[T] {
	return c.it.PostDec().Const()
}

// AddAssign moves the iterator n slots towards the front.
func (c *ConstReverseIterator[T]) AddAssign(n int) { c.it.AddAssign(n) }

// SubAssign moves the iterator n slots towards the back.
func (c *ConstReverseIterator[T]) SubAssign(n int) { c.it.SubAssign(n) }

// Add returns an iterator n slots nearer the front.
func (c ConstReverseIterator[T]) Add(n int) ConstReverseIterator[T] { return c.it.Add(n).Const() }

// Sub returns an iterator n slots nearer the back.
func (c ConstReverseIterator[T]) Sub(n int) ConstReverseIterator[T] { return c.it.Sub(n).Const() }

// Distance returns the number of steps along the reversed traversal from other to it.
func (c ConstReverseIterator[T]) Distance(other ConstReverseIterator[T]) int {
	return c.it.Distance(other.it)
}

// Equal reports whether both iterators refer to the same slot.
func (c ConstReverseIterator[T]) Equal(other ConstReverseIterator[T]) bool {
	return c.it.Equal(other.it)
}

// NotEqual reports whether the iterators refer to different slots.
func (c ConstReverseIterator[T]) NotEqual(other ConstReverseIterator[T]) bool {
	return c.it.NotEqual(other.it)
}

// Less reports whether the iterator is visited before other.
func (c ConstReverseIterator[T]) Less(other ConstReverseIterator[T]) bool {
	return c.it.Less(other.it)
}

// Greater reports whether the iterator is visited after other.
func (c ConstReverseIterator[T]) Greater(other ConstReverseIterator[T]) bool {
	return c.it.Greater(other.it)
}

// LessEqual reports whether the iterator is not visited after other.
func (c ConstReverseIterator[T]) LessEqual(other ConstReverseIterator[T]) bool {
	return c.it.LessEqual(other.it)
}

// GreaterEqual reports whether the iterator is not visited before other.
func (c ConstReverseIterator[T]) GreaterEqual(other ConstReverseIterator[T]) bool {
	return c.it.GreaterEqual(other.it)
}
