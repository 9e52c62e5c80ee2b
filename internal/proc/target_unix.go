//go:build !windows

package proc

import (
	"fmt"
	"os/exec"
	"syscall"
)

// RunTarget replaces the current process with the target command. It only
// returns on failure. Running the target in-place keeps the supervised pid
// equal to the target pid, so depth-limited tree termination reaches the
// target's own workers.
func RunTarget(argv []string, env []string) error {
	if len(argv) == 0 {
		return fmt.Errorf("%w: no target command", ErrUnreloadable)
	}
	path, err := exec.LookPath(argv[0])
	if err != nil {
		return fmt.Errorf("resolve target %q: %w", argv[0], err)
	}
	return syscall.Exec(path, argv, env)
}
