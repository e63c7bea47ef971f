package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Environment variables read by FromEnv.
const (
	EnvDriver    = "KBD_MARQUEE_DRIVER"
	EnvConsole   = "KBD_MARQUEE_CONSOLE"
	EnvTickMs    = "KBD_MARQUEE_TICK_MS"
	EnvDelay     = "KBD_MARQUEE_DELAY"
	EnvLogLevel  = "KBD_MARQUEE_LOG_LEVEL"
	EnvLogFormat = "KBD_MARQUEE_LOG_FORMAT"
	EnvLogFile   = "KBD_MARQUEE_LOG_FILE"
)

const defaultLogFile = "kbd_marquee.log"

// Config represents the application configuration
type Config struct {
	Driver    string // "console" or "preview"
	Console   string // LED ioctl device, empty for stdout
	TickMs    int
	Delay     string // "sleep" or "busy"
	LogLevel  string
	LogFormat string // "json" or "text"
	LogFile   string
}

// Default returns a configuration with default values
func Default() Config {
	return Config{
		Driver:    "console",
		Console:   "",
		TickMs:    500,
		Delay:     "sleep",
		LogLevel:  "info",
		LogFormat: "json",
		LogFile:   DefaultLogPath(),
	}
}

// FromEnv starts from Default and applies any variables lookup reports as
// set. Pass os.LookupEnv in production.
func FromEnv(lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()

	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			*dst = strings.TrimSpace(v)
		}
	}
	str(EnvDriver, &cfg.Driver)
	str(EnvConsole, &cfg.Console)
	str(EnvDelay, &cfg.Delay)
	str(EnvLogLevel, &cfg.LogLevel)
	str(EnvLogFormat, &cfg.LogFormat)
	str(EnvLogFile, &cfg.LogFile)

	if v, ok := lookup(EnvTickMs); ok && strings.TrimSpace(v) != "" {
		ms, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return Config{}, fmt.Errorf("failed to parse %s: %w", EnvTickMs, err)
		}
		cfg.TickMs = ms
	}

	return cfg, nil
}

// Tick returns the animation interval.
func (c Config) Tick() time.Duration {
	return time.Duration(c.TickMs) * time.Millisecond
}

// Validate checks if the configuration is valid
func (c Config) Validate() error {
	switch strings.ToLower(c.Driver) {
	case "console", "preview":
	default:
		return fmt.Errorf("unsupported driver: %s", c.Driver)
	}

	switch strings.ToLower(c.Delay) {
	case "sleep", "busy":
	default:
		return fmt.Errorf("unsupported delay strategy: %s", c.Delay)
	}

	if c.TickMs <= 0 {
		return fmt.Errorf("tick_ms must be positive, got: %d", c.TickMs)
	}

	switch strings.ToLower(c.LogFormat) {
	case "json", "text":
	default:
		return fmt.Errorf("unsupported log format: %s", c.LogFormat)
	}

	return nil
}

// DefaultLogPath returns the default log file path
func DefaultLogPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil || strings.TrimSpace(homeDir) == "" {
		return filepath.Join(".kbd_marquee", "logs", defaultLogFile)
	}
	return filepath.Join(homeDir, ".kbd_marquee", "logs", defaultLogFile)
}
