// Package logging sets up slog for kbd_marquee. Records go to a rotating file
// because the terminal is in raw mode while the marquee runs.
package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"kbd_marquee/pkg/config"
	"kbd_marquee/pkg/version"

	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	maxLogSizeMB  = 5
	maxLogBackups = 5
	maxLogAgeDays = 14
)

// Init installs a file-backed default logger and returns it with a close
// function for the log file. When the log directory cannot be created the
// returned logger discards everything and the error explains why.
func Init(cfg config.Config) (*slog.Logger, func() error, error) {
	opts := &slog.HandlerOptions{Level: parseLogLevel(cfg.LogLevel)}

	logPath := strings.TrimSpace(cfg.LogFile)
	if logPath == "" {
		logPath = config.DefaultLogPath()
	}

	var (
		out     io.Writer = io.Discard
		closeFn           = func() error { return nil }
		err     error
	)
	if err = os.MkdirAll(filepath.Dir(logPath), 0700); err == nil {
		writer := &lumberjack.Logger{
			Filename:   logPath,
			MaxSize:    maxLogSizeMB,
			MaxBackups: maxLogBackups,
			MaxAge:     maxLogAgeDays,
			Compress:   true,
		}
		out, closeFn = writer, writer.Close
	}

	logger := slog.New(newHandler(cfg.LogFormat, out, opts)).With(
		slog.Int("pid", os.Getpid()),
		slog.String("version", version.Summary()),
	)
	slog.SetDefault(logger)
	return logger, closeFn, err
}

// Component returns a child logger tagged with the subsystem name.
func Component(logger *slog.Logger, name string) *slog.Logger {
	return logger.With(slog.String("component", name))
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func newHandler(format string, out io.Writer, opts *slog.HandlerOptions) slog.Handler {
	if strings.EqualFold(strings.TrimSpace(format), "text") {
		return slog.NewTextHandler(out, opts)
	}
	return slog.NewJSONHandler(out, opts)
}
