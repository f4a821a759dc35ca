package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/matzehuels/subplots/pkg/grid"
	"github.com/matzehuels/subplots/pkg/layout"
)

// lookupCommand creates the lookup command, which shows the layout object
// behind one grid cell.
func (c *CLI) lookupCommand() *cobra.Command {
	var (
		flags    gridFlags
		row, col int
	)

	cmd := &cobra.Command{
		Use:   "lookup [grid.toml|grid.yaml]",
		Short: "Show the layout object of one subplot",
		Long: `Show the layout object of the subplot at (--row, --col).

xy subplots print their axis pair, scene-like subplots their container and
domain subplots their domain. Empty cells print nothing.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := c.buildGrid(cmd.Context(), cmd, args, &flags)
			if err != nil {
				return err
			}
			h, err := g.Lookup(row, col)
			if err != nil {
				return err
			}
			printHandle(cmd.OutOrStdout(), row, col, h)
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().IntVar(&row, "row", 1, "1-based row of the cell")
	cmd.Flags().IntVar(&col, "col", 1, "1-based column of the cell")

	return cmd
}

func printHandle(w io.Writer, row, col int, h grid.Handle) {
	cell := grid.Cell{Row: row, Col: col}.String()
	switch h := h.(type) {
	case nil:
		printInfo(w, "no subplot at %s", cell)
	case grid.XYHandle:
		printSuccess(w, "xy subplot at %s", cell)
		printAxis(w, h.XAxis)
		printAxis(w, h.YAxis)
	case grid.SingleHandle:
		printSuccess(w, "%s subplot at %s", h.Kind, cell)
		printKeyValue(w, h.Name, "domain "+h.Domain.String())
	case grid.DomainHandle:
		printSuccess(w, "domain subplot at %s", cell)
		printKeyValue(w, "domain", layout.Domain{X: h.X, Y: h.Y}.String())
	}
}

func printAxis(w io.Writer, a *layout.Axis) {
	value := fmt.Sprintf("domain %s anchor %s", a.Domain, a.Anchor)
	if a.Matches != "" {
		value += " matches " + a.Matches
	}
	if a.ShowTickLabels != nil && !*a.ShowTickLabels {
		value += StyleDim.Render(" (tick labels hidden)")
	}
	printKeyValue(w, a.Name, value)
}
