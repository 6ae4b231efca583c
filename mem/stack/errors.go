package stack

import "errors"

var (
	// ErrAllocationFailure indicates the allocator could not provide a block,
	// either at creation or while growing. The stack is left unchanged.
	ErrAllocationFailure = errors.New("stack: allocation failure")

	// ErrDestroyed indicates an operation on a stack after Destroy.
	ErrDestroyed = errors.New("stack: use after destroy")

	// ErrBadCapacity indicates a negative initial capacity.
	ErrBadCapacity = errors.New("stack: negative capacity")

	// ErrGrowthPolicy indicates a growth policy that did not increase capacity.
	ErrGrowthPolicy = errors.New("stack: growth policy must increase capacity")
)
