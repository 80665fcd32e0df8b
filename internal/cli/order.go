package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/sirkon/sortful/internal/config"
	"github.com/sirkon/sortful/internal/engine"
	"github.com/sirkon/sortful/internal/report"
)

var (
	orderColor   = color.New(color.FgRed, color.Bold)
	spacingColor = color.New(color.FgYellow, color.Bold)
	nameColor    = color.New(color.FgCyan)
	faintColor   = color.New(color.Faint)
)

type orderOpts struct {
	config    string
	construct string
	check     bool
}

func newOrderCmd() *cobra.Command {
	var opts orderOpts

	cmd := &cobra.Command{
		Use:   "order <elements.yaml>",
		Short: "Compute the target order of elements and report violations",
		Long: `Order loads a YAML list of elements, resolves their groups and partitions with the
given options and prints the target order followed by diagnostics.

Options are taken from the settings section of the config file, merged with the section
of --construct when it is set.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOrder(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.config, "config", "c", "", "config file (.yaml, .yml or .toml)")
	cmd.Flags().StringVar(&opts.construct, "construct", "", "construct section of the config to apply")
	cmd.Flags().BoolVar(&opts.check, "check", false, "fail if there are any violations")

	return cmd
}

func runOrder(cmd *cobra.Command, path string, opts orderOpts) error {
	logger := loggerFromContext(cmd.Context())

	o, err := loadOptions(opts.config, opts.construct)
	if err != nil {
		return err
	}

	elements, err := loadElements(path)
	if err != nil {
		return err
	}
	logger.Debug("loaded elements", "file", path, "count", len(elements))

	res, err := engine.ComputeOrder(elements, o)
	if err != nil {
		return fmt.Errorf("compute order: %w", err)
	}
	logger.Debug(
		"ordered",
		"changed", res.Changed(),
		"diagnostics", len(res.Diagnostics),
		"dropped", len(res.Dropped),
	)

	printResult(cmd.OutOrStdout(), res)

	if opts.check && len(res.Diagnostics) > 0 {
		return fmt.Errorf("%d violation(s) found", len(res.Diagnostics))
	}

	return nil
}

// loadOptions resolves the settings section of the config file over the defaults, or the section
// of the construct if it is given.
func loadOptions(path, construct string) (config.Options, error) {
	f := &config.File{}
	if path != "" {
		var err error
		f, err = config.Load(path)
		if err != nil {
			return config.Options{}, err
		}
	}

	if construct != "" {
		return f.For(construct)
	}

	res := config.Resolve(config.Defaults(), f.Settings, config.Options{})
	if err := config.Validate(res); err != nil {
		return config.Options{}, err
	}

	return res, nil
}

func printResult(w io.Writer, res *engine.Result) {
	fmt.Fprintln(w, "order:")
	for _, e := range res.Target {
		var notes string
		if e.IsDisabled {
			notes = faintColor.Sprint(" (disabled)")
		}
		fmt.Fprintf(
			w,
			"  %3d %s group=%s partition=%d%s\n",
			e.OriginalIndex,
			nameColor.Sprint(e.Name),
			e.Group,
			e.PartitionID,
			notes,
		)
	}

	fmt.Fprintf(w, "permutation: %v\n", res.Permutation())

	if len(res.Dropped) > 0 {
		fmt.Fprintln(w, "dropped dependencies:")
		for _, d := range res.Dropped {
			fmt.Fprintf(w, "  %s -> %s\n", d.From.Name, d.To.Name)
		}
	}

	if len(res.Diagnostics) == 0 {
		fmt.Fprintln(w, "no violations")
		return
	}

	fmt.Fprintln(w, "diagnostics:")
	for _, d := range res.Diagnostics {
		c := orderColor
		if d.Phase == report.ReportSpacing {
			c = spacingColor
		}
		fmt.Fprintf(w, "  %s %s\n", c.Sprint(d.Rule), d.Message)
	}
}
