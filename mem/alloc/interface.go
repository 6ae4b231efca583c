package alloc

import "unsafe"

// Allocator hands out and takes back contiguous blocks described by a Layout.
//
// Implementations:
//   - Heap: typed Go heap memory
//   - Mapped: anonymous OS mappings
//   - Limited: byte budget wrapper
type Allocator interface {
	// Allocate returns the base address of a zeroed block for l.
	// Blocks are aligned to at least l.Align. A zero-byte layout yields a
	// non-nil address that must still be passed to Deallocate.
	Allocate(l Layout) (unsafe.Pointer, error)

	// Deallocate releases a block returned by Allocate with the same layout.
	// The block must not be accessed afterwards.
	Deallocate(p unsafe.Pointer, l Layout) error
}
