//go:build windows

package proc

import (
	"fmt"
	"os"
	"os/exec"
)

// Windows cannot replace the process image, so the target runs as a
// subprocess and its exit code is forwarded.
func RunTarget(argv []string, env []string) error {
	if len(argv) == 0 {
		return fmt.Errorf("%w: no target command", ErrUnreloadable)
	}
	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Env = env
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			os.Exit(exitErr.ExitCode())
		}
		return fmt.Errorf("run target: %w", err)
	}
	return nil
}
