package alloc

import (
	"fmt"
	"sync"
	"unsafe"
)

// Limited wraps an Allocator with a budget on the total bytes outstanding.
// Requests that would exceed the budget fail with ErrOutOfMemory before the
// inner allocator is consulted.
type Limited struct {
	inner Allocator
	max   int

	mu    sync.Mutex
	inUse int
}

// NewLimited returns a Limited allocator permitting at most maxBytes
// outstanding across all blocks served by inner.
func NewLimited(inner Allocator, maxBytes int) *Limited {
	return &Limited{inner: inner, max: maxBytes}
}

// Allocate implements Allocator.
func (a *Limited) Allocate(l Layout) (unsafe.Pointer, error) {
	if err := l.validate(); err != nil {
		return nil, err
	}
	n := l.Bytes()

	a.mu.Lock()
	if n > a.max-a.inUse {
		inUse := a.inUse
		a.mu.Unlock()
		return nil, fmt.Errorf("%w: want %d bytes, %d of %d in use", ErrOutOfMemory, n, inUse, a.max)
	}
	a.inUse += n
	a.mu.Unlock()

	p, err := a.inner.Allocate(l)
	if err != nil {
		a.mu.Lock()
		a.inUse -= n
		a.mu.Unlock()
		return nil, err
	}
	return p, nil
}

// Deallocate implements Allocator.
func (a *Limited) Deallocate(p unsafe.Pointer, l Layout) error {
	if err := a.inner.Deallocate(p, l); err != nil {
		return err
	}
	a.mu.Lock()
	a.inUse -= l.Bytes()
	a.mu.Unlock()
	return nil
}

// InUse returns the bytes currently outstanding.
func (a *Limited) InUse() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.inUse
}

// Max returns the budget.
func (a *Limited) Max() int { return a.max }
