package vector

// invariant reports whether the bookkeeping of a is consistent.
func (a *Array[T]) invariant() bool {
	return a.size >= 0 &&
		a.size <= a.capacity &&
		len(a.data) == a.capacity &&
		(a.capacity == 0) == (a.data == nil)
}

// checkInvariant panics on inconsistent bookkeeping when built with the
// vectordebug tag and compiles to nothing otherwise.
func (a *Array[T]) checkInvariant() {
	if debugChecks && !a.invariant() {
		panic("vector: invariant violated: size > capacity")
	}
}
