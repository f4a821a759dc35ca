// Package figure combines a subplot grid with the traces placed on it.
package figure

import (
	"fmt"
	"io"

	"github.com/matzehuels/subplots/pkg/errors"
	"github.com/matzehuels/subplots/pkg/grid"
	"github.com/matzehuels/subplots/pkg/layout"
)

// Figure is a layout plus the traces bound to its subplots.
type Figure struct {
	Layout *layout.Layout
	Traces []grid.Trace

	grid *grid.Grid
}

// New builds the subplot grid described by opts.
func New(opts grid.Options) (*Figure, error) {
	g, err := grid.Make(opts)
	if err != nil {
		return nil, err
	}
	return &Figure{Layout: g.Layout, grid: g}, nil
}

// AddTrace binds tr to the subplot at (row, col) and appends it. The trace
// is not added when binding fails.
func (f *Figure) AddTrace(tr grid.Trace, row, col int) error {
	if err := f.grid.Bind(tr, row, col); err != nil {
		return err
	}
	f.Traces = append(f.Traces, tr)
	return nil
}

// AddTraces adds trs[i] at (rows[i], cols[i]). Nothing is added unless every
// trace binds.
func (f *Figure) AddTraces(trs []grid.Trace, rows, cols []int) error {
	if len(rows) != len(trs) || len(cols) != len(trs) {
		return errors.Config("rows and cols must have one entry per trace: %d traces, %d rows, %d cols", len(trs), len(rows), len(cols))
	}
	for i, tr := range trs {
		ref, err := f.grid.Table.Ref(rows[i], cols[i])
		if err != nil {
			return err
		}
		if ref == nil {
			return errors.New(errors.ErrCodeEmptyCell, "no subplot specified at grid position (%d, %d)", rows[i], cols[i])
		}
		for prop := range ref.Binding.Properties() {
			if !tr.Has(prop) {
				return errors.New(errors.ErrCodeIncompatibleTrace,
					"trace %d of type %q is not compatible with subplot type %q at grid position (%d, %d)",
					i, tr.Type(), string(ref.Kind), rows[i], cols[i])
			}
		}
	}
	for i, tr := range trs {
		if err := f.AddTrace(tr, rows[i], cols[i]); err != nil {
			return fmt.Errorf("add trace %d: %w", i, err)
		}
	}
	return nil
}

// Subplot returns the layout object of the subplot at (row, col), or nil
// when the cell is empty.
func (f *Figure) Subplot(row, col int) (grid.Handle, error) {
	return f.grid.Lookup(row, col)
}

// Grid returns the grid reference table.
func (f *Figure) Grid() *grid.Table { return f.grid.Table }

// PrintGrid writes the grid diagram to w.
func (f *Figure) PrintGrid(w io.Writer) error {
	_, err := io.WriteString(w, f.grid.Diagram)
	return err
}
