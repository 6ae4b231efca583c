package alloc

import (
	"fmt"
	"reflect"
	"unsafe"

	"github.com/joshuapare/rawstack/internal/buf"
)

// Layout describes an array of Count elements of Type.
// Size is the element stride and Align its required alignment.
type Layout struct {
	Type  reflect.Type
	Size  uintptr
	Align uintptr
	Count int
}

// ArrayOf returns the layout of an n-element array of T.
func ArrayOf[T any](n int) (Layout, error) {
	t := reflect.TypeFor[T]()
	l := Layout{Type: t, Size: t.Size(), Align: uintptr(t.Align()), Count: n}
	if err := l.validate(); err != nil {
		return Layout{}, err
	}
	return l, nil
}

// Bytes returns the total block size. It is only meaningful for a layout
// returned by ArrayOf.
func (l Layout) Bytes() int {
	return int(l.Size) * l.Count
}

func (l Layout) validate() error {
	if l.Type == nil || l.Count <= 0 {
		return fmt.Errorf("%w: type=%v count=%d", ErrBadLayout, l.Type, l.Count)
	}
	if l.Size > uintptr(^uint(0)>>1) {
		return fmt.Errorf("%w: element size %d", ErrLayoutOverflow, l.Size)
	}
	if _, err := buf.ArrayBytes(l.Count, int(l.Size)); err != nil {
		return fmt.Errorf("%w: %v", ErrLayoutOverflow, err)
	}
	return nil
}

// zeroBase is the address handed out for zero-byte blocks.
var zeroBase uint64

func zeroBlock() unsafe.Pointer { return unsafe.Pointer(&zeroBase) }

// HasPointers reports whether values of t contain pointers the garbage
// collector must see.
func HasPointers(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Pointer, reflect.UnsafePointer, reflect.Map, reflect.Chan,
		reflect.Func, reflect.Interface, reflect.Slice, reflect.String:
		return true
	case reflect.Array:
		return t.Len() > 0 && HasPointers(t.Elem())
	case reflect.Struct:
		for i := range t.NumField() {
			if HasPointers(t.Field(i).Type) {
				return true
			}
		}
		return false
	default:
		return false
	}
}
