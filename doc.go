// Package vector implements a generic growable array over contiguous storage
// with explicit element lifetimes and pluggable allocators.
//
// # Overview
//
// An Array owns a buffer of slots obtained from an Allocator. It keeps two
// counters: Size, the number of live elements, and Cap, the number of slots
// in the buffer. Allocation and element construction are separate steps:
//
//   - Allocator hands out and takes back raw blocks of slots
//   - ElementOps constructs, assigns and destroys individual elements
//
// # Basic Usage
//
//	a := vector.New[int]()
//	defer a.Release()
//
//	for i := range 10 {
//		if err := a.PushBack(i); err != nil {
//			return err
//		}
//	}
//
//	v, err := a.At(3)          // checked access
//	w := a.Index(4)            // unchecked access
//	for it := a.RBegin(); it.NotEqual(a.REnd()); it.Inc() {
//		fmt.Print(it.Value())
//	}
//
// # Failure Guarantees
//
// Construction (FromString, FromSlice, Clone) is all-or-nothing, and so is
// the reallocation step inside Reserve, ShrinkToFit, Resize and PushBack:
// when an allocation or element construction fails, whatever was built in
// the new buffer is destroyed, the new buffer is returned to its allocator
// and the error is passed back unchanged. Reserve and ShrinkToFit then leave
// the array exactly as it was. A Resize that fails while constructing the
// added elements keeps the ones it already built, and a PushBack that fails
// after growing keeps the larger capacity.
//
// CopyFrom only keeps the array consistent. If an element operation fails
// midway, the array holds the elements written so far followed by its older
// elements.
//
// # Allocators
//
// HeapAllocator is the default. Arena carves blocks out of large chunks and
// reclaims them in bulk with Reset; SafeArena shares one arena between
// goroutines. BoundedAllocator, CountingAllocator and LoggingAllocator wrap
// any allocator to cap, count or log its traffic:
//
//	arena := vector.NewArena[int](0)
//	defer arena.Release()
//
//	logged := vector.NewLoggingAllocator[int](arena, logger)
//	a := vector.New(vector.WithAllocator[int](logged))
//
// # Iterators
//
// Iterator and ReverseIterator (and their Const variants) are positions in the
// buffer. They are cheap values, own nothing and become invalid whenever the
// array reallocates. Comparing or subtracting iterators over different
// buffers panics when the mismatch is detectable. It may go unnoticed for
// arrays that have no buffer yet or whose elements take no space.
//
// # Thread Safety
//
// Arrays are not goroutine-safe. Callers must serialize mutation themselves.
//
// # Debug Checks
//
// Building with the vectordebug tag turns on an invariant check after every
// mutation.
package vector
