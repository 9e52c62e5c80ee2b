package proc

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// TreeTerminator signals the descendants of a pid for termination. The
// root process itself is never signalled; that remains the caller's
// responsibility. Termination is best effort: a process may spawn between
// enumeration and signalling, and already-exited pids are skipped.
type TreeTerminator struct{}

// TerminateTree signals every known descendant of pid using the strategy
// for the current platform.
func (TreeTerminator) TerminateTree(pid int) error {
	return terminateTree(pid)
}

// killTree signals the direct children and grandchildren of pid,
// enumerated from procfs-style children files under procRoot. Each child's
// grandchildren are signalled before the child itself, so a terminating
// parent reparents as few live processes as possible. A missing children
// file degrades to a no-op.
func killTree(procRoot string, pid int, kill func(pid int)) {
	for _, child := range readChildren(procRoot, pid) {
		for _, grandchild := range readChildren(procRoot, child) {
			kill(grandchild)
		}
		kill(child)
	}
}

func readChildren(procRoot string, pid int) []int {
	task := strconv.Itoa(pid)
	data, err := os.ReadFile(filepath.Join(procRoot, task, "task", task, "children"))
	if err != nil {
		return nil
	}
	fields := strings.Fields(string(data))
	pids := make([]int, 0, len(fields))
	for _, field := range fields {
		child, err := strconv.Atoi(field)
		if err != nil {
			continue
		}
		pids = append(pids, child)
	}
	return pids
}
