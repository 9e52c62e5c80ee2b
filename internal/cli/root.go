package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd builds the rewatch command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "rewatch",
		Short: "Development-time process reloader",
		Long: "rewatch runs a target program, polls the modification times of its\n" +
			"source files and restarts the program whenever a watched file changes.",
	}

	root.AddCommand(newRunCmd())

	root.SilenceUsage = true
	root.SilenceErrors = true
	return root
}

// Execute runs the CLI entrypoint. Signal handling is owned by the watch
// loop itself, which exits the process on SIGINT/SIGTERM after stopping
// the supervised child.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
