package alloc

import (
	"fmt"
	"reflect"
	"unsafe"
)

// Heap allocates typed, zeroed blocks from the Go heap. Because the runtime
// knows the element type, blocks may hold pointers.
//
// A Heap with MaxBytes > 0 refuses single requests larger than MaxBytes.
type Heap struct {
	MaxBytes int
}

// Allocate implements Allocator.
func (h Heap) Allocate(l Layout) (p unsafe.Pointer, err error) {
	if err := l.validate(); err != nil {
		return nil, err
	}
	n := l.Bytes()
	if h.MaxBytes > 0 && n > h.MaxBytes {
		return nil, fmt.Errorf("%w: %d bytes exceeds heap limit %d", ErrOutOfMemory, n, h.MaxBytes)
	}
	if n == 0 {
		return zeroBlock(), nil
	}
	defer func() {
		// The runtime panics on sizes it can never satisfy.
		if r := recover(); r != nil {
			p = nil
			err = fmt.Errorf("%w: %d bytes: %v", ErrOutOfMemory, n, r)
		}
	}()
	s := reflect.MakeSlice(reflect.SliceOf(l.Type), l.Count, l.Count)
	return s.UnsafePointer(), nil
}

// Deallocate implements Allocator. The block is left to the garbage
// collector; callers clear any pointers they stored before releasing it.
func (h Heap) Deallocate(p unsafe.Pointer, l Layout) error {
	if p == nil {
		return fmt.Errorf("%w: nil", ErrBadPointer)
	}
	return nil
}
