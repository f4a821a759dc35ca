package cli

import (
	"fmt"
	"maps"
	"slices"

	"github.com/spf13/cobra"

	"github.com/matzehuels/subplots/pkg/figure"
	"github.com/matzehuels/subplots/pkg/trace"
)

// bindCommand creates the bind command, which places a trace on a grid cell
// and prints the placement properties the trace receives.
func (c *CLI) bindCommand() *cobra.Command {
	var (
		flags     gridFlags
		traceKind string
		row, col  int
	)

	cmd := &cobra.Command{
		Use:   "bind [grid.toml|grid.yaml]",
		Short: "Place a trace on a subplot",
		Long: `Place a trace of the given type on the subplot at (--row, --col) and
print the properties it receives. Fails when the trace type cannot be drawn
on that kind of subplot, for example a pie on an xy cell.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := c.loadOptions(cmd.Context(), cmd, args, &flags)
			if err != nil {
				return err
			}
			fig, err := figure.New(opts)
			if err != nil {
				return err
			}
			tr, err := trace.New(traceKind)
			if err != nil {
				return err
			}
			if err := fig.AddTrace(tr, row, col); err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			printSuccess(w, "%s trace bound to (%d,%d)", tr.Type(), row, col)
			props := tr.Props()
			for _, k := range slices.Sorted(maps.Keys(props)) {
				printKeyValue(w, k, fmt.Sprint(props[k]))
			}
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&traceKind, "trace", "t", "scatter", "trace type, e.g. scatter, scatter3d, scatterpolar, pie")
	cmd.Flags().IntVar(&row, "row", 1, "1-based row of the cell")
	cmd.Flags().IntVar(&col, "col", 1, "1-based column of the cell")

	return cmd
}
