package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/subplots/internal/gridfile"
	"github.com/matzehuels/subplots/pkg/grid"
)

// gridFlags holds the flags that override values from a grid file.
type gridFlags struct {
	rows      int
	cols      int
	sharedX   string
	sharedY   string
	startCell string
	hspace    float64
	vspace    float64
}

// register adds the override flags to cmd.
func (f *gridFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.rows, "rows", 1, "number of grid rows")
	cmd.Flags().IntVar(&f.cols, "cols", 1, "number of grid columns")
	cmd.Flags().StringVar(&f.sharedX, "shared-x", "", "share x-axes: true, false, columns, rows, all")
	cmd.Flags().StringVar(&f.sharedY, "shared-y", "", "share y-axes: true, false, columns, rows, all")
	cmd.Flags().StringVar(&f.startCell, "start-cell", string(grid.TopLeft), "corner of cell (1,1): top-left, bottom-left")
	cmd.Flags().Float64Var(&f.hspace, "hspace", 0, "horizontal spacing between cells (default 0.2/cols)")
	cmd.Flags().Float64Var(&f.vspace, "vspace", 0, "vertical spacing between cells (default 0.3/rows)")
}

// loadOptions reads the optional grid file and applies every flag the user
// set explicitly.
func (c *CLI) loadOptions(ctx context.Context, cmd *cobra.Command, args []string, f *gridFlags) (grid.Options, error) {
	logger := loggerFromContext(ctx)

	opts := grid.Options{Rows: 1, Cols: 1}
	if len(args) > 0 {
		loaded, err := gridfile.Load(args[0], logger)
		if err != nil {
			return grid.Options{}, err
		}
		opts = *loaded
		logger.Debug("loaded grid file", "path", args[0], "rows", opts.Rows, "cols", opts.Cols)
	}

	flags := cmd.Flags()
	if flags.Changed("rows") {
		opts.Rows = f.rows
	}
	if flags.Changed("cols") {
		opts.Cols = f.cols
	}
	if flags.Changed("shared-x") {
		share, err := grid.ParseShare(f.sharedX)
		if err != nil {
			return grid.Options{}, err
		}
		opts.SharedX = share
	}
	if flags.Changed("shared-y") {
		share, err := grid.ParseShare(f.sharedY)
		if err != nil {
			return grid.Options{}, err
		}
		opts.SharedY = share
	}
	if flags.Changed("start-cell") {
		opts.StartCell = grid.StartCell(f.startCell)
	}
	if flags.Changed("hspace") {
		opts.HorizontalSpacing = grid.Spacing(f.hspace)
	}
	if flags.Changed("vspace") {
		opts.VerticalSpacing = grid.Spacing(f.vspace)
	}

	opts.Logger = logger
	opts.PrintGrid = false
	return opts, nil
}

// buildGrid loads options and builds the grid, logging elapsed time.
func (c *CLI) buildGrid(ctx context.Context, cmd *cobra.Command, args []string, f *gridFlags) (*grid.Grid, error) {
	opts, err := c.loadOptions(ctx, cmd, args, f)
	if err != nil {
		return nil, err
	}
	prog := newProgress(loggerFromContext(ctx))
	g, err := grid.Make(opts)
	if err != nil {
		return nil, err
	}
	prog.done("Built grid")
	return g, nil
}

// gridCommand creates the grid command, which prints the diagram and domain
// table of a grid.
func (c *CLI) gridCommand() *cobra.Command {
	var (
		flags   gridFlags
		noTable bool
	)

	cmd := &cobra.Command{
		Use:   "grid [grid.toml|grid.yaml]",
		Short: "Print the layout of a subplot grid",
		Long: `Print the layout of a subplot grid.

The grid is read from an optional TOML or YAML description; flags override
values from the file. Without a file a plain rows x cols grid of xy subplots
is built.

Example:
  subplots grid --rows 2 --cols 3 --shared-x columns
  subplots grid dashboard.toml --start-cell bottom-left`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := c.buildGrid(cmd.Context(), cmd, args, &flags)
			if err != nil {
				return err
			}
			return c.runGrid(cmd.OutOrStdout(), g, noTable)
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&noTable, "no-table", false, "print only the grid diagram")

	return cmd
}

func (c *CLI) runGrid(w io.Writer, g *grid.Grid, noTable bool) error {
	printDiagram(w, g.Diagram)
	if noTable {
		return nil
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, domainTable(g.Table))
	if n := len(g.Layout.Annotations); n > 0 {
		printInfo(w, "%s title annotations", StyleNumber.Render(strconv.Itoa(n)))
	}
	return nil
}
