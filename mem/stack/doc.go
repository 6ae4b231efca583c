// Package stack implements a growable last-in-first-out container whose
// element storage is a manually managed block obtained from an
// alloc.Allocator rather than a Go slice.
//
// # Lifecycle
//
// A Stack is created with New, mutated with Push and Pop, and must be torn
// down with Destroy exactly once:
//
//	s, err := stack.New[int64](0, &stack.Options[int64]{Allocator: alloc.NewMapped()})
//	if err != nil {
//	    return err
//	}
//	defer s.Destroy()
//
//	if err := s.Push(42); err != nil {
//	    return err // stack.ErrAllocationFailure; s is unchanged
//	}
//	v, ok := s.Pop() // 42, true
//
// With wraps the same sequence and guarantees Destroy on every exit path,
// including panics.
//
// Destroy runs Options.Teardown once for each element still on the stack and
// then releases the block. Using a stack after Destroy panics with an error
// wrapping ErrDestroyed. A stack that becomes unreachable without Destroy
// has its block released by a runtime cleanup and a warning logged; its
// teardown hook does not run in that case.
//
// # Growth
//
// A full stack grows before the next push. The new block is allocated and
// filled before the old one is released, so a failed growth leaves the stack
// exactly as it was. Doubling (the default) gives amortized O(1) pushes;
// FixedIncrement trades that for tighter memory use.
//
// # Thread Safety
//
// A Stack is owned by a single goroutine. Callers must synchronize access
// externally.
package stack
