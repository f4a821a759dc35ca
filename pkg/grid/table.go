package grid

import (
	"sort"

	"github.com/matzehuels/subplots/pkg/errors"
	"github.com/matzehuels/subplots/pkg/layout"
	"github.com/matzehuels/subplots/pkg/observability"
)

// Trace is the part of a trace that binding needs.
type Trace interface {
	// Type returns the trace kind ("scatter", "pie", ...).
	Type() string
	// Has reports whether the trace accepts the named property.
	Has(prop string) bool
	// Update sets the given properties on the trace.
	Update(props map[string]any)
}

// Handle is the layout object behind a subplot: a DomainHandle,
// SingleHandle or XYHandle.
type Handle interface {
	isHandle()
}

// DomainHandle describes a domain subplot, which has no layout entry.
type DomainHandle struct {
	X, Y layout.Interval
}

// SingleHandle is the layout container of a single-container subplot.
type SingleHandle struct {
	*layout.Container
}

// XYHandle holds the two axes of a cartesian subplot.
type XYHandle struct {
	XAxis *layout.Axis
	YAxis *layout.Axis
}

func (DomainHandle) isHandle() {}
func (SingleHandle) isHandle() {}
func (XYHandle) isHandle()     {}

// Table maps 1-based grid cells to the subplots anchored there.
type Table struct {
	refs   [][]*Ref
	Insets []*Ref
}

func newTable(rows, cols int) *Table {
	refs := make([][]*Ref, rows)
	for r := range refs {
		refs[r] = make([]*Ref, cols)
	}
	return &Table{refs: refs}
}

// Rows returns the number of grid rows.
func (t *Table) Rows() int { return len(t.refs) }

// Cols returns the number of grid columns.
func (t *Table) Cols() int {
	if len(t.refs) == 0 {
		return 0
	}
	return len(t.refs[0])
}

// Count returns the number of subplots, insets included.
func (t *Table) Count() int {
	n := len(t.Insets)
	for _, row := range t.refs {
		for _, ref := range row {
			if ref != nil {
				n++
			}
		}
	}
	return n
}

// Refs returns the subplots anchored at grid cells in row-major order.
func (t *Table) Refs() []*Ref {
	var out []*Ref
	for _, row := range t.refs {
		for _, ref := range row {
			if ref != nil {
				out = append(out, ref)
			}
		}
	}
	return out
}

func (t *Table) checkRange(row, col int) error {
	if row < 1 || row > t.Rows() {
		return errors.New(errors.ErrCodeCellOutOfRange,
			"row must be an integer in [1, %d], received %v (%T)", t.Rows(), row, row)
	}
	if col < 1 || col > t.Cols() {
		return errors.New(errors.ErrCodeCellOutOfRange,
			"col must be an integer in [1, %d], received %v (%T)", t.Cols(), col, col)
	}
	return nil
}

// Ref returns the subplot anchored at 1-based cell (row, col), or nil when
// the cell is empty.
func (t *Table) Ref(row, col int) (*Ref, error) {
	if err := t.checkRange(row, col); err != nil {
		return nil, err
	}
	return t.refs[row-1][col-1], nil
}

// Bind applies the binding of the subplot at (row, col) to tr.
func (t *Table) Bind(tr Trace, row, col int) error {
	ref, err := t.bind(tr, row, col)
	kind := ""
	if ref != nil {
		kind = string(ref.Kind)
	}
	observability.Grid().OnBind(row, col, kind, err)
	return err
}

func (t *Table) bind(tr Trace, row, col int) (*Ref, error) {
	ref, err := t.Ref(row, col)
	if err != nil {
		return nil, err
	}
	if ref == nil {
		return nil, errors.New(errors.ErrCodeEmptyCell, "no subplot specified at grid position (%d, %d)", row, col)
	}

	var props map[string]any
	switch b := ref.Binding.(type) {
	case XYBinding, SingleBinding, DomainBinding:
		props = b.Properties()
	default:
		return ref, errors.New(errors.ErrCodeInternal, "subplot at (%d, %d) has no binding", row, col)
	}

	keys := make([]string, 0, len(props))
	for k := range props {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if !tr.Has(k) {
			return ref, errors.New(errors.ErrCodeIncompatibleTrace,
				"trace type %q is not compatible with subplot type %q at grid position (%d, %d); it has no %s property",
				tr.Type(), string(ref.Kind), row, col, k)
		}
	}
	tr.Update(props)
	return ref, nil
}

// Lookup returns the layout object of the subplot at (row, col). It returns
// a nil Handle for an empty cell.
func (t *Table) Lookup(l *layout.Layout, row, col int) (Handle, error) {
	ref, err := t.Ref(row, col)
	if err != nil || ref == nil {
		return nil, err
	}
	return lookup(l, ref)
}

func lookup(l *layout.Layout, ref *Ref) (Handle, error) {
	switch len(ref.LayoutKeys) {
	case 0:
		return DomainHandle{X: ref.Domain.X, Y: ref.Domain.Y}, nil
	case 1:
		c, ok := l.Container(ref.LayoutKeys[0])
		if !ok {
			return nil, errors.New(errors.ErrCodeInternal, "layout has no entry %q", ref.LayoutKeys[0])
		}
		return SingleHandle{Container: c}, nil
	case 2:
		x, okX := l.Axis(ref.LayoutKeys[0])
		y, okY := l.Axis(ref.LayoutKeys[1])
		if !okX || !okY {
			return nil, errors.New(errors.ErrCodeInternal, "layout has no axes %v", ref.LayoutKeys)
		}
		return XYHandle{XAxis: x, YAxis: y}, nil
	}
	return nil, errors.New(errors.ErrCodeInternal, "unexpected subplot layout keys %v", ref.LayoutKeys)
}
