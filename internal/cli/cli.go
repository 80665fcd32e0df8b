// Package cli implements the sortplan command-line interface.
//
// sortplan runs the ordering engine over elements described in a YAML file, which makes it
// possible to inspect groups, partitions and diagnostics without any source code around.
//
// # Commands
//
//   - order: compute the target order of elements and report violations
//   - check-config: load and validate a config file
//
// All commands support --verbose (-v) for debug-level logging. The logger is passed through
// context.Context.
package cli

import (
	"context"
	"io"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// Execute runs the sortplan CLI and returns an error if any command fails.
func Execute(ctx context.Context) error {
	return newRootCmd(os.Stderr).ExecuteContext(ctx)
}

func newRootCmd(logOutput io.Writer) *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:           "sortplan",
		Short:         "sortplan computes element orders the way the sortful analyzer does",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(logOutput, level)))
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newOrderCmd())
	root.AddCommand(newCheckConfigCmd())

	return root
}
