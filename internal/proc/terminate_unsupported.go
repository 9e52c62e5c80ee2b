//go:build !linux && !darwin

package proc

import (
	"fmt"
	"os"
	"runtime"
	"sync"
)

var degradedOnce sync.Once

// No descendant enumeration facility on this platform. The direct child is
// still terminated by the caller; only grandchildren of the supervised
// program may be left behind.
func terminateTree(pid int) error {
	degradedOnce.Do(func() {
		fmt.Fprintf(os.Stderr, "rewatch: descendant termination unavailable on %s; only the direct child will be stopped\n", runtime.GOOS)
	})
	return nil
}
