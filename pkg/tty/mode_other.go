//go:build !linux

package tty

// Mode is a placeholder on platforms without termios support.
type Mode struct{}

// EnterRawMode always fails on unsupported platforms.
func EnterRawMode(fd int) (*Mode, error) {
	return nil, ErrUnsupported
}

// Restore is a no-op.
func (m *Mode) Restore() error {
	return nil
}
