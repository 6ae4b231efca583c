package alloc

import (
	"fmt"
	"os"
	"sync"
	"unsafe"

	"github.com/joshuapare/rawstack/internal/buf"
	"github.com/joshuapare/rawstack/internal/rawmem"
)

// Mapped allocates blocks from anonymous OS mappings. The memory is never
// scanned by the garbage collector, so only pointer-free element types are
// accepted. Each block occupies whole pages.
type Mapped struct {
	mu     sync.Mutex
	blocks map[uintptr]mapping
}

type mapping struct {
	data    []byte // whole pages
	bytes   int    // layout size requested
	release func() error
}

// NewMapped returns an empty Mapped allocator.
func NewMapped() *Mapped {
	return &Mapped{blocks: make(map[uintptr]mapping)}
}

// Allocate implements Allocator.
func (m *Mapped) Allocate(l Layout) (unsafe.Pointer, error) {
	if err := l.validate(); err != nil {
		return nil, err
	}
	if HasPointers(l.Type) {
		return nil, fmt.Errorf("%w: %v", ErrPointerData, l.Type)
	}
	n := l.Bytes()
	if n == 0 {
		return zeroBlock(), nil
	}

	size, ok := buf.AlignUp(n, os.Getpagesize())
	if !ok {
		return nil, fmt.Errorf("%w: %d bytes rounded to pages", ErrLayoutOverflow, n)
	}
	data, release, err := rawmem.Map(size)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOutOfMemory, err)
	}
	p := unsafe.Pointer(unsafe.SliceData(data))
	if uintptr(p)%l.Align != 0 {
		rerr := release()
		return nil, fmt.Errorf("%w: block %#x not %d-aligned (release: %v)", ErrOutOfMemory, uintptr(p), l.Align, rerr)
	}

	m.mu.Lock()
	m.blocks[uintptr(p)] = mapping{data: data, bytes: n, release: release}
	m.mu.Unlock()
	return p, nil
}

// Deallocate implements Allocator.
func (m *Mapped) Deallocate(p unsafe.Pointer, l Layout) error {
	if p == nil {
		return fmt.Errorf("%w: nil", ErrBadPointer)
	}
	if p == zeroBlock() {
		return nil
	}

	m.mu.Lock()
	mp, ok := m.blocks[uintptr(p)]
	if ok {
		delete(m.blocks, uintptr(p))
	}
	m.mu.Unlock()

	if !ok {
		return fmt.Errorf("%w: %#x not mapped by this allocator", ErrBadPointer, uintptr(p))
	}
	if mp.bytes != l.Bytes() {
		// Still release: the mapping is gone from the table either way.
		err := mp.release()
		return fmt.Errorf("%w: layout is %d bytes, block is %d (release: %v)",
			ErrBadPointer, l.Bytes(), mp.bytes, err)
	}
	return mp.release()
}

// Outstanding returns the number of blocks allocated and not yet released.
func (m *Mapped) Outstanding() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.blocks)
}

// Reserved returns the bytes held by outstanding mappings, including the
// page rounding beyond each layout.
func (m *Mapped) Reserved() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	total := 0
	for _, mp := range m.blocks {
		total += len(mp.data)
	}
	return total
}
