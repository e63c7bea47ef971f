// Package marquee runs the indicator animation: poll a key, apply it, advance
// the LEDs, push them, wait a tick.
package marquee

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"kbd_marquee/pkg/delay"
	"kbd_marquee/pkg/led"
)

// KeySource reports a pending key press without blocking.
type KeySource interface {
	PollKey() (byte, bool, error)
}

// Restorer puts the terminal back the way it was found.
type Restorer interface {
	Restore() error
}

// Reason says why the loop stopped.
type Reason int

const (
	running Reason = iota
	ReasonQuitKey
	ReasonCanceled
	ReasonInputClosed
	ReasonInputError
)

func (r Reason) String() string {
	switch r {
	case ReasonQuitKey:
		return "quit key"
	case ReasonCanceled:
		return "canceled"
	case ReasonInputClosed:
		return "input closed"
	case ReasonInputError:
		return "input error"
	default:
		return "running"
	}
}

// Result summarises a finished run.
type Result struct {
	Reason       Reason
	Ticks        int
	PushFailures int
	Final        led.Pattern
}

// Options wires a Runner. Delay defaults to delay.Sleep and Logger to
// slog.Default.
type Options struct {
	Keys      KeySource
	Indicator led.Indicator
	Mode      Restorer
	Delay     delay.Func
	Tick      time.Duration
	Logger    *slog.Logger
}

// Runner owns the LED state and the terminal mode for the duration of Run.
type Runner struct {
	keys   KeySource
	leds   led.Indicator
	mode   Restorer
	wait   delay.Func
	tick   time.Duration
	logger *slog.Logger

	state  *led.Marquee
	result Result
}

func New(opts Options) *Runner {
	if opts.Delay == nil {
		opts.Delay = delay.Sleep
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &Runner{
		keys:   opts.Keys,
		leds:   opts.Indicator,
		mode:   opts.Mode,
		wait:   opts.Delay,
		tick:   opts.Tick,
		logger: opts.Logger,
		state:  led.NewMarquee(),
	}
}

// Run animates until the quit key, closed input, a poll failure or ctx being
// done. Cancellation is only observed between ticks. Whatever ends the loop,
// the LEDs are switched off and the terminal mode restored before Run
// returns.
func (r *Runner) Run(ctx context.Context) (Result, error) {
	r.logger.Info("Marquee started", "tick", r.tick, "pattern", r.state.Pattern(), "direction", r.state.Direction())

	var err error
	for r.result.Reason == running {
		r.result.Reason, err = r.iterate(ctx)
	}

	if shutdownErr := r.shutdown(); shutdownErr != nil {
		err = errors.Join(err, shutdownErr)
	}

	r.result.Final = r.state.Pattern()
	r.logger.Info("Marquee stopped",
		"reason", r.result.Reason,
		"ticks", r.result.Ticks,
		"push_failures", r.result.PushFailures)
	return r.result, err
}

func (r *Runner) iterate(ctx context.Context) (Reason, error) {
	if ctx.Err() != nil {
		return ReasonCanceled, nil
	}

	key, ok, err := r.keys.PollKey()
	switch {
	case errors.Is(err, io.EOF):
		r.logger.Info("Input closed")
		return ReasonInputClosed, nil
	case err != nil:
		return ReasonInputError, fmt.Errorf("poll key: %w", err)
	}

	if ok {
		cmd := led.Decode(key)
		r.logger.Debug("Key pressed", "key", string(rune(key)), "command", cmd)
		if r.state.Apply(cmd) {
			return ReasonQuitKey, nil
		}
	}

	r.push(r.state.Step())
	r.result.Ticks++
	r.wait(r.tick)
	return running, nil
}

// push is fire-and-forget. The first failure is logged as a warning, later
// ones only at debug level.
func (r *Runner) push(p led.Pattern) {
	err := r.leds.Set(p)
	if err == nil {
		return
	}
	r.result.PushFailures++
	if r.result.PushFailures == 1 {
		r.logger.Warn("Failed to set keyboard LEDs, continuing", "pattern", p, "error", err)
		return
	}
	r.logger.Debug("Failed to set keyboard LEDs", "pattern", p, "error", err)
}

func (r *Runner) shutdown() error {
	r.state.Off()
	if err := r.leds.Set(r.state.Pattern()); err != nil {
		r.logger.Warn("Failed to switch keyboard LEDs off", "error", err)
	}

	if r.mode == nil {
		return nil
	}
	if err := r.mode.Restore(); err != nil {
		return fmt.Errorf("restore terminal: %w", err)
	}
	return nil
}
