//go:build !linux

package led

import (
	"fmt"
	"os"
	"runtime"
)

type console struct {
	name    string
	initial Pattern
}

func newConsole(path string, stdout *os.File) (*console, error) {
	return nil, fmt.Errorf("%w: console driver requires linux, running on %s", ErrUnavailable, runtime.GOOS)
}

func (c *console) Set(p Pattern) error { return nil }

func (c *console) Close() error { return nil }
