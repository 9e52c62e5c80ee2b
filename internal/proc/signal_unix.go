//go:build !windows

package proc

import (
	"errors"
	"syscall"

	"golang.org/x/sys/unix"
)

func (c *Child) signal(force bool) error {
	sig := syscall.SIGTERM
	if force {
		sig = syscall.SIGKILL
	}
	err := c.proc.Signal(sig)
	if errors.Is(err, unix.ESRCH) {
		return nil
	}
	return ignoreExited(err)
}
