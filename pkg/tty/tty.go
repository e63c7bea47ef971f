// Package tty switches the controlling terminal into non-canonical, non-echo
// input mode and polls it for single key presses without blocking.
package tty

import "errors"

var (
	// ErrNotTerminal is returned when the descriptor is not a terminal.
	ErrNotTerminal = errors.New("not a terminal")

	// ErrUnsupported is returned on platforms without termios support.
	ErrUnsupported = errors.New("terminal control not supported on this platform")
)
