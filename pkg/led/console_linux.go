//go:build linux

package led

import (
	"fmt"
	"os"
	"unsafe"

	"golang.org/x/sys/unix"
)

// linux/kd.h
const (
	kdGetLED = 0x4B31
	kdSetLED = 0x4B32
)

// ledIoctl issues the two LED ioctls against a descriptor.
type ledIoctl interface {
	getLED(fd int) (uint8, error)
	setLED(fd int, p Pattern) error
}

type kdIoctl struct{}

// getLED reads KDGETLED into a single byte, the size the kernel writes.
func (kdIoctl) getLED(fd int) (uint8, error) {
	var state uint8
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(fd), kdGetLED, uintptr(unsafe.Pointer(&state)))
	if errno != 0 {
		return 0, errno
	}
	return state, nil
}

func (kdIoctl) setLED(fd int, p Pattern) error {
	return unix.IoctlSetInt(fd, kdSetLED, int(p))
}

var ioctls ledIoctl = kdIoctl{}

// console sets the LEDs of a virtual console with KDSETLED.
type console struct {
	file    *os.File
	owned   bool
	name    string
	initial Pattern
	ops     ledIoctl
}

// newConsole opens path, or uses stdout when path is empty, then reads the
// current LEDs and writes them straight back. Reading is allowed to anyone;
// writing needs the caller's own console or CAP_SYS_TTY_CONFIG, so both are
// checked before the animation starts.
func newConsole(path string, stdout *os.File) (*console, error) {
	c := &console{file: stdout, name: stdout.Name(), ops: ioctls}
	if path != "" {
		f, err := os.OpenFile(path, os.O_WRONLY|unix.O_NOCTTY, 0)
		if err != nil {
			return nil, fmt.Errorf("open LED console %s: %w", path, err)
		}
		c.file, c.owned, c.name = f, true, path
	}

	fd := int(c.file.Fd())
	state, err := c.ops.getLED(fd)
	if err != nil {
		c.Close()
		return nil, fmt.Errorf("%w: KDGETLED on %s: %v", ErrUnavailable, c.name, err)
	}
	c.initial = Pattern(state) & (Scroll | Num | Caps)

	if err := c.ops.setLED(fd, c.initial); err != nil {
		c.Close()
		return nil, fmt.Errorf("%w: KDSETLED on %s: %v", ErrUnavailable, c.name, err)
	}

	return c, nil
}

func (c *console) Set(p Pattern) error {
	if err := c.ops.setLED(int(c.file.Fd()), p); err != nil {
		return fmt.Errorf("KDSETLED %s on %s: %w", p, c.name, err)
	}
	return nil
}

func (c *console) Close() error {
	if !c.owned {
		return nil
	}
	c.owned = false
	return c.file.Close()
}
