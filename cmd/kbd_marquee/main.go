package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"kbd_marquee/pkg/config"
	"kbd_marquee/pkg/delay"
	"kbd_marquee/pkg/led"
	"kbd_marquee/pkg/logging"
	"kbd_marquee/pkg/marquee"
	"kbd_marquee/pkg/tty"
	"kbd_marquee/pkg/version"
)

// process is what run needs from the outside world.
type process struct {
	lookupEnv func(string) (string, bool)
	stdin     *os.File
	stdout    *os.File
	stderr    io.Writer
}

func main() {
	// SIGINT and SIGTERM end the loop like the quit key. Installed before the
	// terminal is touched so a signal can never skip the restore.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	code := run(ctx, process{
		lookupEnv: os.LookupEnv,
		stdin:     os.Stdin,
		stdout:    os.Stdout,
		stderr:    os.Stderr,
	})
	stop()
	os.Exit(code)
}

func run(ctx context.Context, p process) int {
	// Load configuration from the environment
	cfg, err := config.FromEnv(p.lookupEnv)
	if err != nil {
		fmt.Fprintf(p.stderr, "Error loading config: %v\n", err)
		return 1
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(p.stderr, "Invalid config: %v\n", err)
		return 1
	}

	logger, closeLog, err := logging.Init(cfg)
	if err != nil {
		fmt.Fprintf(p.stderr, "Warning: logging disabled: %v\n", err)
	}
	defer closeLog()

	logger.Info("kbd_marquee started",
		"build", version.Build(),
		"driver", cfg.Driver,
		"tick", cfg.Tick(),
		"delay", cfg.Delay)

	wait, err := delay.For(cfg.Delay)
	if err != nil {
		fmt.Fprintf(p.stderr, "Invalid config: %v\n", err)
		return 1
	}

	// Probe the LEDs before touching the terminal so an unusable endpoint
	// leaves nothing to undo
	indicator, err := led.New(led.Options{
		Driver:  cfg.Driver,
		Console: cfg.Console,
		Stdout:  p.stdout,
	}, logging.Component(logger, "led"))
	if err != nil {
		logger.Error("Keyboard indicators unavailable", "error", err)
		fmt.Fprintf(p.stderr, "Error opening keyboard indicators: %v\n", err)
		fmt.Fprintf(p.stderr, "Run on a Linux virtual console, or set %s=preview\n", config.EnvDriver)
		return 1
	}
	defer indicator.Close()

	stdin := int(p.stdin.Fd())
	mode, err := tty.EnterRawMode(stdin)
	if err != nil {
		logger.Error("Failed to enter raw mode", "error", err)
		fmt.Fprintf(p.stderr, "Error setting raw mode: %v\n", err)
		return 1
	}
	// Run restores first; this only matters if we never get there
	defer mode.Restore()

	runner := marquee.New(marquee.Options{
		Keys:      tty.NewPoller(stdin),
		Indicator: indicator,
		Mode:      mode,
		Delay:     wait,
		Tick:      cfg.Tick(),
		Logger:    logging.Component(logger, "marquee"),
	})

	res, err := runner.Run(ctx)
	if err != nil {
		logger.Error("Marquee failed", "reason", res.Reason, "error", err)
		fmt.Fprintf(p.stderr, "Error: %v\n", err)
		return 1
	}

	logger.Info("kbd_marquee exiting", "reason", res.Reason, "ticks", res.Ticks)
	return 0
}
