// Package alloc provides the memory blocks that back a manually managed stack.
//
// # Overview
//
// A stack asks for exactly one kind of thing: a contiguous, zeroed block able
// to hold Count elements of one Go type. The request is described by a Layout
// and served by an Allocator, which exposes a single allocate/deallocate pair:
//
//   - Allocate(layout): reserve a block and return its base address
//   - Deallocate(ptr, layout): release a block previously returned by Allocate
//
// # Implementations
//
// Heap: typed memory owned by the Go runtime
//
//   - Element types may contain pointers; the collector scans the block
//   - Deallocate only does bookkeeping; memory is reclaimed once unreferenced
//   - Exhausting the Go heap is fatal to the process, so set MaxBytes or wrap
//     in Limited where failure must be recoverable
//
// Mapped: anonymous OS mappings outside the Go heap
//
//   - Page-aligned, zeroed, released with munmap (VirtualFree on Windows)
//   - Element types must be pointer-free (ErrPointerData otherwise)
//   - Out-of-memory surfaces as an ordinary error
//
// Limited: byte budget wrapper around any Allocator
//
// # Usage Example
//
//	l, err := alloc.ArrayOf[int64](128)
//	if err != nil {
//	    return err
//	}
//	m := alloc.NewMapped()
//	p, err := m.Allocate(l)
//	if err != nil {
//	    return err
//	}
//	defer m.Deallocate(p, l)
//	elems := unsafe.Slice((*int64)(p), l.Count)
//
// # Thread Safety
//
// All allocators in this package are safe for concurrent use. The stacks
// built on top of them are not.
package alloc
