package proc

import (
	"errors"
	"os"
)

// Child is a handle to a running supervised process. Signalling a child
// that has already exited succeeds as a no-op.
type Child struct {
	pid  int
	proc *os.Process
}

// Pid returns the child's process id.
func (c *Child) Pid() int {
	return c.pid
}

// Terminate requests a graceful shutdown of the child.
func (c *Child) Terminate() error {
	return c.signal(false)
}

// Kill forcefully terminates the child.
func (c *Child) Kill() error {
	return c.signal(true)
}

func ignoreExited(err error) error {
	if err == nil || errors.Is(err, os.ErrProcessDone) {
		return nil
	}
	return err
}
