package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/joshuapare/rawstack/internal/logger"
	"github.com/joshuapare/rawstack/mem/stack"
)

var runFlags stackFlags

func init() {
	cmd := newRunCmd()
	runFlags.register(cmd.Flags())
	rootCmd.AddCommand(cmd)
}

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run OP...",
		Short: "Run a push/pop script against a fresh stack",
		Long: `The run command creates a stack, applies each operation in order and
destroys the stack. Operations are "push <int>", "pop" and "peek".

Example:
  stackctl run push 1 push 2 push 3 pop pop pop pop
  stackctl run --cap 2 --growth fixed:2 push 10 push 20 push 30 pop
  stackctl run --alloc mapped --limit 64 --json push 1 push 2`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ops, err := parseOps(args)
			if err != nil {
				return err
			}
			return runScript(cmd.OutOrStdout(), runFlags, ops)
		},
	}
	return cmd
}

type opKind string

const (
	opPush opKind = "push"
	opPop  opKind = "pop"
	opPeek opKind = "peek"
)

type op struct {
	Kind  opKind
	Value int64
}

// step is one line of a run trace.
type step struct {
	Op    opKind `json:"op"`
	Value *int64 `json:"value,omitempty"`
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
	Len   int    `json:"len"`
	Cap   int    `json:"cap"`
}

type runResult struct {
	Steps []step      `json:"steps"`
	Stats stack.Stats `json:"stats"`
	InUse *int        `json:"budget_in_use,omitempty"`
}

func parseOps(args []string) ([]op, error) {
	var ops []op
	for i := 0; i < len(args); i++ {
		switch opKind(args[i]) {
		case opPush:
			if i+1 >= len(args) {
				return nil, fmt.Errorf("push at position %d needs a value", i)
			}
			v, err := strconv.ParseInt(args[i+1], 10, 64)
			if err != nil {
				return nil, fmt.Errorf("push value %q: %w", args[i+1], err)
			}
			ops = append(ops, op{Kind: opPush, Value: v})
			i++
		case opPop, opPeek:
			ops = append(ops, op{Kind: opKind(args[i])})
		default:
			return nil, fmt.Errorf("unknown operation %q (want push, pop or peek)", args[i])
		}
	}
	return ops, nil
}

// runScript executes ops and writes a trace to w. A failed push is recorded
// in the trace and the script continues; the stack is always destroyed.
func runScript(w io.Writer, f stackFlags, ops []op) error {
	opts, budget, err := f.options()
	if err != nil {
		return err
	}

	var res runResult
	err = stack.With(f.capacity, opts, func(s *stack.Stack[int64]) error {
		for _, o := range ops {
			st := step{Op: o.Kind}
			switch o.Kind {
			case opPush:
				v := o.Value
				st.Value = &v
				if err := s.Push(v); err != nil {
					st.Error = err.Error()
					logger.Warn("push failed", "value", v, "error", err)
				} else {
					st.OK = true
				}
			case opPop, opPeek:
				var v int64
				var ok bool
				if o.Kind == opPop {
					v, ok = s.Pop()
				} else {
					v, ok = s.Peek()
				}
				st.OK = ok
				if ok {
					st.Value = &v
				}
			}
			st.Len, st.Cap = s.Len(), s.Cap()
			logger.Debug("op", "op", o.Kind, "ok", st.OK, "len", st.Len, "cap", st.Cap)
			res.Steps = append(res.Steps, st)
		}
		res.Stats = s.Stats()
		return nil
	})
	if err != nil {
		return err
	}
	if budget != nil {
		inUse := budget.InUse()
		res.InUse = &inUse
	}

	if jsonOut {
		return printJSON(w, res)
	}
	printTrace(w, res)
	return nil
}

func printTrace(w io.Writer, res runResult) {
	p := message.NewPrinter(language.English)
	for _, st := range res.Steps {
		var line string
		switch {
		case st.Error != "":
			line = fmt.Sprintf("%-4s %d -> %s", st.Op, *st.Value, styleError("error: "+st.Error))
		case st.Op == opPush:
			line = fmt.Sprintf("%-4s %d", st.Op, *st.Value)
		case st.OK:
			line = fmt.Sprintf("%-4s -> %d", st.Op, *st.Value)
		default:
			line = fmt.Sprintf("%-4s -> empty", st.Op)
		}
		printInfo(w, "%s\n", line)
		printVerbose(w, "     len=%d cap=%d\n", st.Len, st.Cap)
	}
	printInfo(w, "%s", p.Sprintf("stats: len=%d cap=%d grows=%d bytes=%d\n",
		res.Stats.Len, res.Stats.Cap, res.Stats.Grows, res.Stats.Bytes))
	if res.InUse != nil {
		printInfo(w, "%s", p.Sprintf("budget in use after destroy: %d bytes\n", *res.InUse))
	}
}
