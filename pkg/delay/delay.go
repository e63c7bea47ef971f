// Package delay blocks the caller for a fixed interval measured on the
// monotonic clock.
package delay

import (
	"fmt"
	"strings"
	"time"
)

// Func blocks for at least the given duration.
type Func func(time.Duration)

const (
	StrategyBusy  = "busy"
	StrategySleep = "sleep"
)

// Busy spins until d has elapsed. time.Since uses the monotonic reading
// carried by time.Now, so wall clock steps do not shorten the wait.
func Busy(d time.Duration) {
	start := time.Now()
	for time.Since(start) < d {
	}
}

// Sleep blocks in the scheduler, then spins out any remainder so the
// elapsed monotonic time is never short of d.
func Sleep(d time.Duration) {
	start := time.Now()
	time.Sleep(d)
	for time.Since(start) < d {
	}
}

// Ms blocks for n milliseconds using Sleep. It is the millisecond form for
// one-off waits; the animation loop takes a Func from For so the strategy
// stays configurable.
func Ms(n int) {
	Sleep(time.Duration(n) * time.Millisecond)
}

// For returns the delay strategy with the given name.
func For(strategy string) (Func, error) {
	switch strings.ToLower(strings.TrimSpace(strategy)) {
	case StrategySleep, "":
		return Sleep, nil
	case StrategyBusy:
		return Busy, nil
	default:
		return nil, fmt.Errorf("unknown delay strategy: %q", strategy)
	}
}
