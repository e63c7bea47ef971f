//go:build !linux

package tty

// Poller is a placeholder on platforms without poll support.
type Poller struct{}

// NewPoller returns a Poller that always fails.
func NewPoller(fd int) *Poller {
	return &Poller{}
}

// PollKey always returns ErrUnsupported.
func (p *Poller) PollKey() (byte, bool, error) {
	return 0, false, ErrUnsupported
}
