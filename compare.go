package vector

import "cmp"

// Equal reports whether a and b have the same size and pairwise equal elements.
func Equal[T comparable](a, b *Array[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// NotEqual is the negation of Equal.
func NotEqual[T comparable](a, b *Array[T]) bool {
	return !Equal(a, b)
}

// EqualFunc is like Equal but compares elements with eq.
func EqualFunc[T, U any](a *Array[T], b *Array[U], eq func(T, U) bool) bool {
	if a.size != b.size {
		return false
	}
	for i := 0; i < a.size; i++ {
		if !eq(a.data[i], b.data[i]) {
			return false
		}
	}
	return true
}

// Compare compares a and b lexicographically. The first differing element
// decides; if one array is a prefix of the other the shorter one is less.
// The result is -1, 0 or +1.
func Compare[T cmp.Ordered](a, b *Array[T]) int {
	return CompareFunc(a, b, cmp.Compare[T])
}

// CompareFunc is like Compare but orders elements with cmp.
func CompareFunc[T, U any](a *Array[T], b *Array[U], cmp func(T, U) int) int {
	n := min(a.size, b.size)
	for i := 0; i < n; i++ {
		if c := cmp(a.data[i], b.data[i]); c != 0 {
			return c
		}
	}
	switch {
	case a.size < b.size:
		return -1
	case a.size > b.size:
		return +1
	}
	return 0
}

// Less reports whether a orders before b.
func Less[T cmp.Ordered](a, b *Array[T]) bool {
	return Compare(a, b) < 0
}

// Greater reports whether a orders after b.
func Greater[T cmp.Ordered](a, b *Array[T]) bool {
	return Less(b, a)
}

// LessOrEqual reports whether a does not order after b.
func LessOrEqual[T cmp.Ordered](a, b *Array[T]) bool {
	return !Less(b, a)
}

// GreaterOrEqual reports whether a does not order before b.
func GreaterOrEqual[T cmp.Ordered](a, b *Array[T]) bool {
	return !Less(a, b)
}
