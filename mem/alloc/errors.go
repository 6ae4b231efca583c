package alloc

import "errors"

var (
	// ErrOutOfMemory indicates the allocator could not satisfy the request.
	ErrOutOfMemory = errors.New("alloc: out of memory")

	// ErrLayoutOverflow indicates Count * Size does not fit in an int.
	ErrLayoutOverflow = errors.New("alloc: layout size overflows")

	// ErrBadLayout indicates a malformed layout (nil type, non-positive count).
	ErrBadLayout = errors.New("alloc: bad layout")

	// ErrPointerData indicates an element type containing Go pointers was
	// requested from memory the garbage collector cannot scan.
	ErrPointerData = errors.New("alloc: element type contains pointers")

	// ErrBadPointer indicates Deallocate was given an address this allocator
	// does not own, or one it already released.
	ErrBadPointer = errors.New("alloc: bad pointer")
)
