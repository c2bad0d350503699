package vector

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReverseMirrorsForward(t *testing.T) {
	for _, vals := range [][]int{{1}, {1, 2}, {5, 4, 3, 2, 1, 0}} {
		a := Of(vals...)

		var forward, backward []int
		for it := a.Begin(); it.NotEqual(a.End()); it.Inc() {
			forward = append(forward, it.Value())
		}
		for it := a.RBegin(); it.NotEqual(a.REnd()); it.Inc() {
			backward = append(backward, it.Value())
		}

		slices.Reverse(forward)
		assert.Equal(t, forward, backward)
	}
}

func TestReverseEndpoints(t *testing.T) {
	a := Of(10, 20, 30)

	assert.Equal(t, 30, a.RBegin().Value())
	assert.Equal(t, 2, a.RBegin().Offset())
	assert.Equal(t, -1, a.REnd().Offset())
	re := a.REnd()
	assert.Equal(t, 10, re.Dec().Value())

	empty := New[int]()
	assert.True(t, empty.RBegin().Equal(empty.REnd()))
	assert.True(t, empty.CRBegin().Equal(empty.CREnd()))
}

func TestReverseArithmetic(t *testing.T) {
	a := Of(0, 1, 2, 3, 4)
	rb, re := a.RBegin(), a.REnd()

	assert.Equal(t, 5, re.Distance(rb))
	assert.Equal(t, -5, rb.Distance(re))
	assert.Equal(t, 3, rb.Add(1).Value())
	assert.Equal(t, 0, re.Sub(1).Value())
	assert.True(t, rb.Add(5).Equal(re))
	assert.Equal(t, 2, *rb.Index(2), "offset indexing walks towards the front")
	assert.Equal(t, 3, *rb.Add(2).Index(-1))

	it := rb
	it.AddAssign(3)
	assert.Equal(t, 1, it.Value())
	it.SubAssign(1)
	assert.Equal(t, 2, it.Value())
	assert.Equal(t, 2, it.Distance(rb))
}

func TestReverseIncrementForms(t *testing.T) {
	a := Of(1, 2, 3)
	it := a.RBegin()

	assert.Equal(t, 2, it.Inc().Value())
	assert.Equal(t, 2, it.PostInc().Value())
	assert.Equal(t, 1, it.Value())
	assert.Equal(t, 2, it.Dec().Value())
	assert.Equal(t, 2, it.PostDec().Value())
	assert.Equal(t, 3, it.Value())
}

func TestReverseComparisons(t *testing.T) {
	a := Of(1, 2, 3)
	rb, re := a.RBegin(), a.REnd()

	assert.True(t, rb.Less(re), "rbegin comes first along the reversed traversal")
	assert.True(t, re.Greater(rb))
	assert.True(t, rb.LessEqual(rb))
	assert.True(t, re.GreaterEqual(rb))
	assert.False(t, re.LessEqual(rb))
	assert.False(t, rb.GreaterEqual(re))
	assert.True(t, rb.NotEqual(re))

	crb, cre := a.CRBegin(), a.CREnd()
	assert.True(t, crb.Less(cre))
	assert.True(t, cre.Greater(crb))
	assert.True(t, crb.LessEqual(cre))
	assert.True(t, cre.GreaterEqual(crb))
	assert.True(t, crb.NotEqual(cre))
	assert.Equal(t, 3, cre.Distance(crb))
}

func TestReverseWritesThrough(t *testing.T) {
	a := Of(1, 2, 3)

	n := 0
	for it := a.RBegin(); it.Less(a.REnd()); it.Inc() {
		n++
		*it.Ptr() = n
	}
	assert.Equal(t, []int{3, 2, 1}, a.Data())
}

func TestConstReverseIterator(t *testing.T) {
	a := Of("a", "b", "c", "d")
	it := a.CRBegin()

	assert.Equal(t, "b", it.Index(2))
	assert.Equal(t, "c", it.Inc().Value())
	assert.Equal(t, "c", it.PostInc().Value())
	assert.Equal(t, "b", it.Value())
	assert.Equal(t, "c", it.Dec().Value())
	assert.Equal(t, "c", it.PostDec().Value())
	assert.Equal(t, 3, it.Offset())

	it.AddAssign(3)
	assert.Equal(t, "a", it.Value())
	it.SubAssign(1)
	assert.Equal(t, "a", it.Add(1).Value())
	assert.Equal(t, "a", a.CREnd().Sub(1).Value())
}

func TestBackward(t *testing.T) {
	a := Of('x', 'y', 'z')

	var idx []int
	var vals []rune
	for i, v := range a.Backward() {
		idx = append(idx, i)
		vals = append(vals, v)
		if v == 'y' {
			break
		}
	}
	assert.Equal(t, []int{2, 1}, idx)
	assert.Equal(t, []rune{'z', 'y'}, vals)
}
