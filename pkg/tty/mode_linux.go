//go:build linux

package tty

import (
	"fmt"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// Mode holds the terminal attributes captured before entering raw mode.
type Mode struct {
	fd       int
	saved    *unix.Termios
	restored bool
}

// EnterRawMode captures the current attributes of fd, then disables canonical
// line buffering and input echo. Signal keys and output processing are kept.
func EnterRawMode(fd int) (*Mode, error) {
	if !term.IsTerminal(fd) {
		return nil, fmt.Errorf("enter raw mode on fd %d: %w", fd, ErrNotTerminal)
	}

	saved, err := unix.IoctlGetTermios(fd, unix.TCGETS)
	if err != nil {
		return nil, fmt.Errorf("get terminal attributes: %w", err)
	}

	raw := *saved
	raw.Lflag &^= unix.ICANON | unix.ECHO
	raw.Cc[unix.VMIN] = 1
	raw.Cc[unix.VTIME] = 0

	if err := unix.IoctlSetTermios(fd, unix.TCSETS, &raw); err != nil {
		return nil, fmt.Errorf("set terminal attributes: %w", err)
	}

	return &Mode{fd: fd, saved: saved}, nil
}

// Restore reapplies the captured attributes. Only the first call touches the
// terminal; a nil or empty Mode is a no-op.
func (m *Mode) Restore() error {
	if m == nil || m.saved == nil || m.restored {
		return nil
	}
	m.restored = true

	if err := unix.IoctlSetTermios(m.fd, unix.TCSETS, m.saved); err != nil {
		return fmt.Errorf("restore terminal attributes: %w", err)
	}
	return nil
}
