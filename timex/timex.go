// Package timex: timing utilities over the standard time package.

package timex

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"
)

var (
	// ErrNonPositive rejects a repeat count below 1.
	ErrNonPositive = errors.New("timex: repeats must be positive")

	// ErrNilFunc rejects a nil function passed to Benchmark.
	ErrNilFunc = errors.New("timex: fn must not be nil")
)

// Stopwatch measures the wall time of a code block. Create one with Start
// or StartTo; read it with Elapsed or finish with Stop.
type Stopwatch struct {
	label string
	start time.Time
	w     io.Writer
}

// Start begins a stopwatch that reports to stdout when stopped.
//
// Usage:
//
//	sw := timex.Start("rebuild")
//	defer sw.Stop()
func Start(label string) *Stopwatch {
	return StartTo(os.Stdout, label)
}

// StartTo begins a stopwatch that reports to w when stopped. A nil writer
// falls back to stdout.
func StartTo(w io.Writer, label string) *Stopwatch {
	if w == nil {
		w = os.Stdout
	}

	return &Stopwatch{label: label, start: time.Now(), w: w}
}

// Elapsed returns the wall time since the stopwatch started, without
// reporting or stopping anything.
func (s *Stopwatch) Elapsed() time.Duration {
	return time.Since(s.start)
}

// Stop reports "<label>: <elapsed>" to the stopwatch's writer and returns
// the elapsed duration. The stopwatch keeps running; calling Stop again
// reports the new elapsed time.
func (s *Stopwatch) Stop() time.Duration {
	elapsed := s.Elapsed()
	fmt.Fprintf(s.w, "%s: %s\n", s.label, FormatDuration(elapsed))

	return elapsed
}

// Benchmark runs fn repeats times and returns the average wall time of a
// single run.
//
// Errors:
//   - ErrNilFunc      when fn is nil.
//   - ErrNonPositive  when repeats < 1.
func Benchmark(fn func(), repeats int) (time.Duration, error) {
	if fn == nil {
		return 0, ErrNilFunc
	}
	if repeats <= 0 {
		return 0, ErrNonPositive
	}

	start := time.Now()
	for i := 0; i < repeats; i++ {
		fn()
	}

	return time.Since(start) / time.Duration(repeats), nil
}

// Now returns the current local time.
func Now() time.Time { return time.Now() }

// FormatDuration renders d as seconds with microsecond precision, e.g.
// "0.001234s".
func FormatDuration(d time.Duration) string {
	return fmt.Sprintf("%.6fs", d.Seconds())
}
