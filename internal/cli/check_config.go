package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/sirkon/sortful/internal/config"
)

func newCheckConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check-config <file>",
		Short: "Load and validate a config file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			f, err := config.Load(args[0])
			if err != nil {
				return err
			}

			constructs := []string{
				config.ConstructImports,
				config.ConstructConstants,
				config.ConstructVariables,
				config.ConstructLiterals,
			}
			for _, c := range constructs {
				if _, err := f.For(c); err != nil {
					return err
				}
				logger.Debug("construct options are valid", "construct", c)
			}

			ok := color.New(color.FgGreen, color.Bold)
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ok.Sprint("OK"), args[0])
			return nil
		},
	}
}
