//go:build darwin

package proc

import (
	"os/exec"
	"strconv"
)

// macOS has no procfs to enumerate children from, so tree termination is
// delegated to pkill. pkill exits non-zero when nothing matched, which is
// the idempotent-kill success case.
func terminateTree(pid int) error {
	_ = exec.Command("pkill", "-P", strconv.Itoa(pid)).Run()
	return nil
}
