//go:build linux

package tty

import (
	"errors"
	"fmt"
	"io"

	"golang.org/x/sys/unix"
)

// Poller checks a descriptor for pending input without waiting.
type Poller struct {
	fd  int
	buf [1]byte
}

// NewPoller returns a Poller reading from fd.
func NewPoller(fd int) *Poller {
	return &Poller{fd: fd}
}

// PollKey reports whether a byte is waiting and, if so, consumes exactly one.
// It never blocks. A readable descriptor with nothing to read yields io.EOF.
func (p *Poller) PollKey() (byte, bool, error) {
	fds := []unix.PollFd{{Fd: int32(p.fd), Events: unix.POLLIN}}

	n, err := unix.Poll(fds, 0)
	if err != nil {
		if errors.Is(err, unix.EINTR) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("poll input: %w", err)
	}
	if n == 0 {
		return 0, false, nil
	}

	if fds[0].Revents&(unix.POLLIN|unix.POLLHUP) == 0 {
		if fds[0].Revents&(unix.POLLERR|unix.POLLNVAL) != 0 {
			return 0, false, fmt.Errorf("poll input: revents %#x", fds[0].Revents)
		}
		return 0, false, nil
	}

	read, err := unix.Read(p.fd, p.buf[:])
	if err != nil {
		if errors.Is(err, unix.EINTR) || errors.Is(err, unix.EAGAIN) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("read input: %w", err)
	}
	if read == 0 {
		return 0, false, io.EOF
	}
	return p.buf[0], true, nil
}
