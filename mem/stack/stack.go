package stack

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"unsafe"

	"github.com/joshuapare/rawstack/internal/logger"
	"github.com/joshuapare/rawstack/mem/alloc"
)

// Options configures a Stack. The zero value (or a nil *Options) selects
// alloc.Heap, Doubling growth, no teardown and the package logger.
type Options[T any] struct {
	Allocator alloc.Allocator
	Growth    GrowthPolicy
	Teardown  func(T)      // run once per element still live at Destroy
	Logger    *slog.Logger // defaults to logger.L
}

// Stats is a point-in-time view of a stack's bookkeeping.
type Stats struct {
	Len   int // live elements
	Cap   int // allocated slots
	Grows int // reallocations performed
	Bytes int // bytes reserved by the current block
}

// Stack is a LIFO container over a block from an alloc.Allocator.
// Slots [0, size) are live; slots [size, capacity) are zero and never read.
type Stack[T any] struct {
	base     unsafe.Pointer
	size     int
	capacity int
	stride   uintptr

	alloc    alloc.Allocator
	growth   GrowthPolicy
	teardown func(T)
	log      *slog.Logger

	grows     int
	destroyed bool
	cleanup   runtime.Cleanup
}

// block is what the leak net needs to release memory without the stack.
type block struct {
	alloc  alloc.Allocator
	base   unsafe.Pointer
	layout alloc.Layout
	log    *slog.Logger
}

// New creates a stack with room for capacity elements. A zero capacity
// allocates nothing until the first Push.
func New[T any](capacity int, opts *Options[T]) (*Stack[T], error) {
	if capacity < 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadCapacity, capacity)
	}
	if opts == nil {
		opts = &Options[T]{}
	}

	var zero T
	s := &Stack[T]{
		stride:   unsafe.Sizeof(zero),
		alloc:    opts.Allocator,
		growth:   opts.Growth,
		teardown: opts.Teardown,
		log:      opts.Logger,
	}
	if s.alloc == nil {
		s.alloc = alloc.Heap{}
	}
	if s.growth == nil {
		s.growth = Doubling{}
	}
	if s.log == nil {
		s.log = logger.L
	}

	if capacity == 0 {
		return s, nil
	}
	l, p, err := s.allocate(capacity)
	if err != nil {
		return nil, err
	}
	s.adopt(p, l)
	return s, nil
}

// With creates a stack, passes it to fn and destroys it when fn returns or
// panics. A Destroy error is joined with fn's error.
func With[T any](capacity int, opts *Options[T], fn func(*Stack[T]) error) (err error) {
	s, err := New(capacity, opts)
	if err != nil {
		return err
	}
	defer func() {
		if derr := s.Destroy(); derr != nil && !errors.Is(derr, ErrDestroyed) {
			err = errors.Join(err, derr)
		}
	}()
	return fn(s)
}

// Push moves v onto the top of the stack, growing first when full.
// On error the stack is unchanged.
func (s *Stack[T]) Push(v T) error {
	s.mustLive("Push")
	if s.size == s.capacity {
		if err := s.grow(s.growth.Next(s.capacity)); err != nil {
			return err
		}
	}
	*s.slot(s.size) = v
	s.size++
	return nil
}

// Pop removes and returns the top element. ok is false when the stack is empty.
func (s *Stack[T]) Pop() (v T, ok bool) {
	s.mustLive("Pop")
	if s.size == 0 {
		return v, false
	}
	s.size--
	p := s.slot(s.size)
	v = *p
	var zero T
	*p = zero
	return v, true
}

// Peek returns the top element without removing it.
func (s *Stack[T]) Peek() (v T, ok bool) {
	s.mustLive("Peek")
	if s.size == 0 {
		return v, false
	}
	return *s.slot(s.size - 1), true
}

// Len returns the number of live elements.
func (s *Stack[T]) Len() int { return s.size }

// Cap returns the number of allocated slots.
func (s *Stack[T]) Cap() int { return s.capacity }

// IsEmpty reports whether Len is zero.
func (s *Stack[T]) IsEmpty() bool { return s.size == 0 }

// Stats returns the current bookkeeping counters.
func (s *Stack[T]) Stats() Stats {
	return Stats{
		Len:   s.size,
		Cap:   s.capacity,
		Grows: s.grows,
		Bytes: s.capacity * int(s.stride),
	}
}

// Destroy tears down every live element and releases the block. It must be
// called exactly once; later calls return ErrDestroyed.
func (s *Stack[T]) Destroy() (err error) {
	if s.destroyed {
		return ErrDestroyed
	}
	s.destroyed = true

	// Release even if a teardown hook panics.
	defer func() {
		if rerr := s.release(); rerr != nil {
			err = rerr
		}
	}()

	if s.teardown != nil {
		for i := 0; i < s.size; i++ {
			s.teardown(*s.slot(i))
		}
	}
	return nil
}

// grow moves the live elements into a new block of n slots.
func (s *Stack[T]) grow(n int) error {
	if n <= s.capacity {
		return fmt.Errorf("%w: %T returned %d for capacity %d", ErrGrowthPolicy, s.growth, n, s.capacity)
	}
	l, p, err := s.allocate(n)
	if err != nil {
		return err
	}
	if s.size > 0 {
		copy(unsafe.Slice((*T)(p), s.size), unsafe.Slice((*T)(s.base), s.size))
	}

	from := s.capacity
	if s.base != nil {
		s.cleanup.Stop()
		old := s.blockLayout()
		if err := s.alloc.Deallocate(s.base, old); err != nil {
			// The elements already live in the new block; keep going.
			s.log.Error("stack: release old block", "cap", from, "bytes", old.Bytes(), "error", err)
		}
	}
	s.adopt(p, l)
	s.grows++
	s.log.Debug("stack grow", "from", from, "to", n, "len", s.size, "bytes", l.Bytes())
	return nil
}

func (s *Stack[T]) allocate(n int) (alloc.Layout, unsafe.Pointer, error) {
	l, err := alloc.ArrayOf[T](n)
	if err != nil {
		return alloc.Layout{}, nil, fmt.Errorf("%w: %d slots: %w", ErrAllocationFailure, n, err)
	}
	p, err := s.alloc.Allocate(l)
	if err != nil {
		return alloc.Layout{}, nil, fmt.Errorf("%w: %d slots: %w", ErrAllocationFailure, n, err)
	}
	return l, p, nil
}

// adopt installs p as the backing block and arms the leak net for it.
func (s *Stack[T]) adopt(p unsafe.Pointer, l alloc.Layout) {
	s.base = p
	s.capacity = l.Count
	s.cleanup = runtime.AddCleanup(s, releaseLeaked, block{alloc: s.alloc, base: p, layout: l, log: s.log})
}

func (s *Stack[T]) release() error {
	if s.base == nil {
		return nil
	}
	s.cleanup.Stop()
	l := s.blockLayout()
	err := s.alloc.Deallocate(s.base, l)
	s.base = nil
	s.size = 0
	s.capacity = 0
	if err != nil {
		return fmt.Errorf("stack: release %d bytes: %w", l.Bytes(), err)
	}
	return nil
}

func (s *Stack[T]) blockLayout() alloc.Layout {
	// The layout was validated when the block was allocated.
	l, _ := alloc.ArrayOf[T](s.capacity)
	return l
}

func (s *Stack[T]) slot(i int) *T {
	return (*T)(unsafe.Add(s.base, uintptr(i)*s.stride))
}

func (s *Stack[T]) mustLive(op string) {
	if s.destroyed {
		panic(fmt.Errorf("%w (%s)", ErrDestroyed, op))
	}
}

func releaseLeaked(b block) {
	b.log.Warn("stack: block released without Destroy", "bytes", b.layout.Bytes())
	if err := b.alloc.Deallocate(b.base, b.layout); err != nil {
		b.log.Error("stack: release leaked block", "error", err)
	}
}
