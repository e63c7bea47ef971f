package led

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
)

const (
	DriverConsole = "console"
	DriverPreview = "preview"
)

// ErrUnavailable is returned when the indicator endpoint cannot be driven.
var ErrUnavailable = errors.New("keyboard indicators unavailable")

// Indicator pushes a pattern to the LEDs. Set is fire-and-forget: callers
// log failures and keep going.
type Indicator interface {
	Set(p Pattern) error
	Close() error
}

// Options selects and configures an Indicator.
type Options struct {
	Driver string
	// Console is the device used for the LED ioctls. Empty means Stdout.
	Console string
	Stdout  *os.File
}

// New returns the Indicator named by opts.Driver.
func New(opts Options, logger *slog.Logger) (Indicator, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}

	switch strings.ToLower(strings.TrimSpace(opts.Driver)) {
	case DriverConsole, "":
		c, err := newConsole(opts.Console, opts.Stdout)
		if err != nil {
			return nil, err
		}
		logger.Info("Using console LED driver", "device", c.name, "initial", c.initial)
		return c, nil
	case DriverPreview:
		logger.Info("Using preview LED driver")
		return NewPreview(opts.Stdout), nil
	default:
		return nil, fmt.Errorf("unknown LED driver: %q", opts.Driver)
	}
}
