// Package loops prints the for-loop examples.
package loops

import (
	"io"
	"time"

	"golang.org/x/time/rate"

	"github.com/saint0x/letsflow/pkg/demo"
	"github.com/saint0x/letsflow/pkg/log"
)

// DefaultSpinBudget is how long SpinUntil counts unless configured.
const DefaultSpinBudget = 300 * time.Millisecond

// Clock reports the current time.
type Clock func() time.Time

type options struct {
	budget time.Duration
	clock  Clock
}

// Option configures New.
type Option func(*options)

// WithSpinBudget sets how long the unbounded loop example counts.
func WithSpinBudget(d time.Duration) Option {
	return func(o *options) {
		o.budget = d
	}
}

// WithClock replaces time.Now in the unbounded loop example.
func WithClock(c Clock) Option {
	return func(o *options) {
		o.clock = c
	}
}

// New builds the for-loops program.
func New(logger *log.Logger, opts ...Option) *demo.Program {
	o := options{budget: DefaultSpinBudget, clock: time.Now}
	for _, opt := range opts {
		opt(&o)
	}

	return &demo.Program{
		Name:   "ForLoops",
		Logger: logger,
		Examples: []demo.Example{
			{Title: "basic count", Run: Count},
			{Title: "reverse count", Run: ReverseCount},
			{Title: "array elements", Run: func(w io.Writer) error {
				return Elements(w, []int{2, 4, 6, 8, 10})
			}},
			{Title: "triangle", Run: func(w io.Writer) error {
				return Triangle(w, 5)
			}},
			{Title: "unbounded loop", Run: func(w io.Writer) error {
				return SpinUntil(w, logger, o.budget, o.clock)
			}},
			{Title: "multiple counters", Run: Counters},
		},
	}
}

// Count counts up from 1 to 5.
func Count(w io.Writer) error {
	pw := demo.NewWriter(w)
	for i := 1; i <= 5; i++ {
		pw.Println("Count:", i)
	}
	return pw.Err()
}

// ReverseCount counts down from 5 to 1.
func ReverseCount(w io.Writer) error {
	pw := demo.NewWriter(w)
	for i := 5; i > 0; i-- {
		pw.Println("Reverse count:", i)
	}
	return pw.Err()
}

// Elements walks numbers by index.
func Elements(w io.Writer, numbers []int) error {
	pw := demo.NewWriter(w)
	for i := 0; i < len(numbers); i++ {
		pw.Printf("Element at index %d: %d\n", i, numbers[i])
	}
	return pw.Err()
}

// Triangle prints a left-aligned triangle of rows lines.
func Triangle(w io.Writer, rows int) error {
	pw := demo.NewWriter(w)
	for i := 1; i <= rows; i++ {
		for j := 1; j <= i; j++ {
			pw.Print("* ")
		}
		pw.Println()
	}
	return pw.Err()
}

// SpinUntil increments a counter in an unbounded loop until budget has
// elapsed on clock, then reports the count.
func SpinUntil(w io.Writer, logger *log.Logger, budget time.Duration, clock Clock) error {
	debug := logger != nil && logger.IsDebug()
	progress := rate.Sometimes{Interval: 100 * time.Millisecond}

	start := clock()
	var count int64
	for {
		count++
		elapsed := clock().Sub(start)
		if elapsed >= budget {
			pw := demo.NewWriter(w)
			pw.Println("Count reached:", count)
			return pw.Err()
		}
		if debug {
			progress.Do(func() {
				logger.Debug("spinning: count=%d elapsed=%s", count, elapsed)
			})
		}
	}
}

// Counters advances two counters in one loop header.
func Counters(w io.Writer) error {
	pw := demo.NewWriter(w)
	for i, j := 1, 10; i <= 5; i, j = i+1, j-1 {
		pw.Printf("i = %d, j = %d\n", i, j)
	}
	return pw.Err()
}
