package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	"github.com/joshuapare/rawstack/mem/alloc"
	"github.com/joshuapare/rawstack/mem/stack"
)

// stackFlags are the stack construction flags shared by run and bench.
type stackFlags struct {
	capacity  int
	allocator string
	growth    string
	limit     int
}

func (f *stackFlags) register(fs *pflag.FlagSet) {
	fs.IntVar(&f.capacity, "cap", 0, "Initial capacity")
	fs.StringVar(&f.allocator, "alloc", "heap", "Backing memory: heap or mapped")
	fs.StringVar(&f.growth, "growth", "double", "Growth policy: double or fixed:N")
	fs.IntVar(&f.limit, "limit", 0, "Byte budget for outstanding blocks (0 = unlimited)")
}

// options builds stack options from the flags. budget is non-nil when --limit is set.
func (f stackFlags) options() (opts *stack.Options[int64], budget *alloc.Limited, err error) {
	var a alloc.Allocator
	switch f.allocator {
	case "heap":
		a = alloc.Heap{}
	case "mapped":
		a = alloc.NewMapped()
	default:
		return nil, nil, fmt.Errorf("unknown allocator %q (want heap or mapped)", f.allocator)
	}
	if f.limit < 0 {
		return nil, nil, fmt.Errorf("negative --limit: %d", f.limit)
	}
	if f.limit > 0 {
		budget = alloc.NewLimited(a, f.limit)
		a = budget
	}

	growth, err := parseGrowth(f.growth)
	if err != nil {
		return nil, nil, err
	}
	return &stack.Options[int64]{Allocator: a, Growth: growth}, budget, nil
}

// parseGrowth accepts "double" or "fixed:N" with N > 0.
func parseGrowth(s string) (stack.GrowthPolicy, error) {
	if s == "double" {
		return stack.Doubling{}, nil
	}
	step, ok := strings.CutPrefix(s, "fixed:")
	if !ok {
		return nil, fmt.Errorf("unknown growth policy %q (want double or fixed:N)", s)
	}
	n, err := strconv.Atoi(step)
	if err != nil || n <= 0 {
		return nil, fmt.Errorf("invalid fixed growth step %q", step)
	}
	return stack.FixedIncrement{Step: n}, nil
}
