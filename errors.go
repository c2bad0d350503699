package vector

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange is matched by every *RangeError returned from checked access.
	ErrOutOfRange = errors.New("vector: index out of range")

	// ErrAllocationFailed indicates that an allocator could not hand out a block.
	ErrAllocationFailed = errors.New("vector: allocation failed")

	// ErrNegativeSize indicates a negative element count.
	ErrNegativeSize = errors.New("vector: negative size")

	// ErrArenaReleased indicates an allocation from an arena after Release.
	ErrArenaReleased = errors.New("vector: arena used after Release")
)

// RangeError reports a checked access past the live elements of an array.
type RangeError struct {
	Index int // requested index
	Size  int // size of the array at the time of the access
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("vector: index %d out of range for array of size %d", e.Index, e.Size)
}

// Is reports whether target is ErrOutOfRange.
func (e *RangeError) Is(target error) bool {
	return target == ErrOutOfRange
}
