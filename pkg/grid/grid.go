package grid

import (
	"fmt"
	"time"

	"github.com/matzehuels/subplots/pkg/layout"
	"github.com/matzehuels/subplots/pkg/observability"
)

// Grid is the result of Make.
type Grid struct {
	Layout   *layout.Layout
	Table    *Table
	Geometry *Geometry
	// Diagram is the text picture of the grid (see Diagram).
	Diagram string
	// Specs holds the normalized cell specs.
	Specs [][]*CellSpec
}

// Make builds the layout entries, reference table and annotations of a
// subplot grid. On error nothing is returned.
func Make(opts Options) (g *Grid, err error) {
	opts.SetDefaults()
	hooks := observability.Grid()
	hooks.OnBuildStart(opts.Rows, opts.Cols)
	start := time.Now()
	defer func() {
		n := 0
		if g != nil {
			n = g.Table.Count()
		}
		hooks.OnBuildComplete(n, time.Since(start), err)
	}()

	if err := opts.Validate(); err != nil {
		return nil, err
	}
	specs, err := normalizeSpecs(opts.Specs, opts.Rows, opts.Cols)
	if err != nil {
		return nil, err
	}
	insets, err := normalizeInsets(opts.Insets)
	if err != nil {
		return nil, err
	}

	geom := solve(&opts)
	logger := opts.Logger
	logger.Debug("solved grid geometry",
		"rows", geom.Rows, "cols", geom.Cols,
		"hspace", geom.HSpacing, "vspace", geom.VSpacing,
		"start_cell", opts.StartCell)

	// Resolve every domain before touching the layout.
	cellDomains := make([][]layout.Domain, opts.Rows)
	for r, row := range specs {
		cellDomains[r] = make([]layout.Domain, opts.Cols)
		for c, spec := range row {
			if spec == nil {
				continue
			}
			if cellDomains[r][c], err = geom.CellDomain(r, c, spec); err != nil {
				return nil, err
			}
		}
	}
	if err := checkOccupancy(specs); err != nil {
		return nil, err
	}
	insetDomains := make([]layout.Domain, len(insets))
	for i := range insets {
		if insetDomains[i], err = geom.InsetDomain(&insets[i]); err != nil {
			return nil, err
		}
	}

	lay := layout.New()
	alloc := NewAllocator(lay)
	table := newTable(opts.Rows, opts.Cols)

	for r, row := range specs {
		for c, spec := range row {
			if spec == nil {
				continue
			}
			ref, err := alloc.Allocate(spec.Type, cellDomains[r][c])
			if err != nil {
				return nil, err
			}
			ref.Spec = spec
			table.refs[r][c] = ref
			logger.Debug("allocated subplot", "cell", Cell{Row: r + 1, Col: c + 1}, "type", spec.Type, "keys", ref.LayoutKeys, "domain", ref.Domain)
		}
	}

	nx := link(lay, table.refs, 'x', opts.SharedX, geom.RowDir, logger)
	ny := link(lay, table.refs, 'y', opts.SharedY, geom.RowDir, logger)
	if nx+ny > 0 {
		logger.Debug("linked shared axes", "x", nx, "y", ny)
	}

	for i := range insets {
		ref, err := alloc.Allocate(insets[i].Type, insetDomains[i])
		if err != nil {
			return nil, err
		}
		ref.Inset = &insets[i]
		table.Insets = append(table.Insets, ref)
		logger.Debug("allocated inset", "over", insets[i].Cell, "type", insets[i].Type, "keys", ref.LayoutKeys, "domain", ref.Domain)
	}

	annotations, err := titleAnnotations(&opts, geom, table)
	if err != nil {
		return nil, err
	}
	lay.AddAnnotations(annotations...)

	g = &Grid{
		Layout:   lay,
		Table:    table,
		Geometry: geom,
		Diagram:  Diagram(specs, table, geom.RowDir),
		Specs:    specs,
	}
	if opts.PrintGrid {
		if _, err := fmt.Fprintln(opts.Output, g.Diagram); err != nil {
			g = nil
			return nil, err
		}
	}
	return g, nil
}

// Bind applies the subplot binding at (row, col) to tr.
func (g *Grid) Bind(tr Trace, row, col int) error {
	return g.Table.Bind(tr, row, col)
}

// Lookup returns the layout object of the subplot at (row, col), or nil for
// an empty cell.
func (g *Grid) Lookup(row, col int) (Handle, error) {
	return g.Table.Lookup(g.Layout, row, col)
}
