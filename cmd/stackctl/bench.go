package main

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/joshuapare/rawstack/internal/logger"
	"github.com/joshuapare/rawstack/mem/stack"
)

var (
	benchFlags stackFlags
	benchN     int
)

func init() {
	cmd := newBenchCmd()
	benchFlags.register(cmd.Flags())
	cmd.Flags().IntVarP(&benchN, "count", "n", 1_000_000, "Number of values to push")
	rootCmd.AddCommand(cmd)
}

func newBenchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Measure push/pop cost and growth behaviour",
		Long: `The bench command pushes N int64 values onto a fresh stack, pops them
all and reports reallocations, peak bytes and elapsed time.

Example:
  stackctl bench -n 100000
  stackctl bench -n 100000 --growth fixed:2
  stackctl bench --alloc mapped --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBench(cmd.OutOrStdout(), benchFlags, benchN)
		},
	}
	return cmd
}

type benchResult struct {
	N         int           `json:"n"`
	Allocator string        `json:"allocator"`
	Growth    string        `json:"growth"`
	Grows     int           `json:"grows"`
	PeakCap   int           `json:"peak_cap"`
	PeakBytes int           `json:"peak_bytes"`
	Push      time.Duration `json:"push_ns"`
	Pop       time.Duration `json:"pop_ns"`
}

func runBench(w io.Writer, f stackFlags, n int) error {
	if n < 0 {
		return fmt.Errorf("negative -n: %d", n)
	}
	opts, _, err := f.options()
	if err != nil {
		return err
	}

	res := benchResult{N: n, Allocator: f.allocator, Growth: f.growth}
	err = stack.With(f.capacity, opts, func(s *stack.Stack[int64]) error {
		start := time.Now()
		for i := range n {
			if err := s.Push(int64(i)); err != nil {
				return fmt.Errorf("push %d: %w", i, err)
			}
		}
		res.Push = time.Since(start)
		st := s.Stats()
		res.Grows, res.PeakCap, res.PeakBytes = st.Grows, st.Cap, st.Bytes

		start = time.Now()
		for i := n - 1; i >= 0; i-- {
			v, ok := s.Pop()
			if !ok || v != int64(i) {
				return fmt.Errorf("pop %d: got %d, %v", i, v, ok)
			}
		}
		res.Pop = time.Since(start)
		return nil
	})
	if err != nil {
		return err
	}
	logger.Info("bench complete", "n", n, "grows", res.Grows, "push", res.Push, "pop", res.Pop)

	if jsonOut {
		return printJSON(w, res)
	}
	p := message.NewPrinter(language.English)
	printInfo(w, "%s", p.Sprintf("pushed %d values (%s, growth %s)\n", n, f.allocator, f.growth))
	printInfo(w, "%s", p.Sprintf("  grows:      %d\n", res.Grows))
	printInfo(w, "%s", p.Sprintf("  peak cap:   %d slots\n", res.PeakCap))
	printInfo(w, "%s", p.Sprintf("  peak bytes: %d\n", res.PeakBytes))
	printInfo(w, "  push:       %v\n", res.Push)
	printInfo(w, "  pop:        %v\n", res.Pop)
	return nil
}
