package grid

import (
	"slices"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/subplots/pkg/errors"
	"github.com/matzehuels/subplots/pkg/layout"
)

// driftTolerance is the largest overshoot outside [0,1] treated as float
// noise rather than a layout problem.
const driftTolerance = 1e-9

// Geometry holds the solved cell sizes of a grid. Row heights are kept in
// accumulation order, from the visual bottom row upward.
type Geometry struct {
	Rows, Cols int
	HSpacing   float64
	VSpacing   float64
	MaxWidth   float64
	RowDir     int // +1 bottom-left, -1 top-left

	widths  []float64
	heights []float64
	logger  *log.Logger
}

// Solve computes the cell sizes for o.
func Solve(o Options) (*Geometry, error) {
	o.SetDefaults()
	if err := o.Validate(); err != nil {
		return nil, err
	}
	return solve(&o), nil
}

func solve(o *Options) *Geometry {
	g := &Geometry{
		Rows:     o.Rows,
		Cols:     o.Cols,
		HSpacing: *o.HorizontalSpacing,
		VSpacing: *o.VerticalSpacing,
		MaxWidth: o.maxWidth(),
		RowDir:   o.rowDir(),
		logger:   o.Logger,
	}

	g.widths = normalizeWeights(o.ColumnWidths, o.Cols, g.MaxWidth-g.HSpacing*float64(o.Cols-1))
	g.heights = normalizeWeights(o.RowHeights, o.Rows, 1-g.VSpacing*float64(o.Rows-1))
	if g.RowDir < 0 && !o.LegacyRowOrder {
		slices.Reverse(g.heights)
	}
	return g
}

// normalizeWeights scales weights to sum to total. Nil weights are uniform.
func normalizeWeights(weights []float64, n int, total float64) []float64 {
	out := make([]float64, n)
	if weights == nil {
		for i := range out {
			out[i] = total / float64(n)
		}
		return out
	}
	var sum float64
	for _, w := range weights {
		sum += w
	}
	for i, w := range weights {
		out[i] = w / sum * total
	}
	return out
}

// ColumnWidth returns the width of 0-based column c.
func (g *Geometry) ColumnWidth(c int) float64 { return g.widths[c] }

// RowHeight returns the height of 0-based input row r.
func (g *Geometry) RowHeight(r int) float64 { return g.heights[g.level(r)] }

// level maps an input row to its position counted from the visual bottom.
func (g *Geometry) level(r int) int {
	if g.RowDir < 0 {
		return g.Rows - 1 - r
	}
	return r
}

func (g *Geometry) levelY(a int) float64 {
	var y float64
	for _, h := range g.heights[:a] {
		y += h
	}
	return y + float64(a)*g.VSpacing
}

func (g *Geometry) columnX(c int) float64 {
	var x float64
	for _, w := range g.widths[:c] {
		x += w
	}
	return x + float64(c)*g.HSpacing
}

// Origin returns the lower-left corner of 0-based cell (r, c).
func (g *Geometry) Origin(r, c int) (x, y float64) {
	return g.columnX(c), g.levelY(g.level(r))
}

// CellDomain returns the clamped domain of a normalized spec anchored at
// 0-based cell (r, c).
func (g *Geometry) CellDomain(r, c int, spec *CellSpec) (layout.Domain, error) {
	cEnd := c + spec.Colspan - 1
	rEnd := r + spec.Rowspan - 1
	if cEnd >= g.Cols {
		return layout.Domain{}, errors.New(errors.ErrCodeSpanOutOfRange,
			"colspan %d of the subplot at (%d,%d) extends past the last column (%d)", spec.Colspan, r+1, c+1, g.Cols)
	}
	if rEnd >= g.Rows {
		return layout.Domain{}, errors.New(errors.ErrCodeSpanOutOfRange,
			"rowspan %d of the subplot at (%d,%d) extends past the last row (%d)", spec.Rowspan, r+1, c+1, g.Rows)
	}

	lo, hi := g.level(r), g.level(rEnd)
	if lo > hi {
		lo, hi = hi, lo
	}
	d := layout.Domain{
		X: layout.Interval{
			Lo: g.columnX(c) + spec.L,
			Hi: g.columnX(cEnd) + g.widths[cEnd] - spec.R,
		},
		Y: layout.Interval{
			Lo: g.levelY(lo) + spec.B,
			Hi: g.levelY(hi) + g.heights[hi] - spec.T,
		},
	}
	at := Cell{Row: r + 1, Col: c + 1}
	if inverted(d) {
		return layout.Domain{}, errors.Config("padding of the subplot at %s leaves an empty domain %s", at, d)
	}
	return g.clamp(d, "cell", at), nil
}

// InsetDomain returns the clamped domain of a normalized inset.
func (g *Geometry) InsetDomain(in *InsetSpec) (layout.Domain, error) {
	r, c := in.Cell.Row-1, in.Cell.Col-1
	if r < 0 || r >= g.Rows || c < 0 || c >= g.Cols {
		return layout.Domain{}, errors.New(errors.ErrCodeCellOutOfRange,
			"inset cell %s is outside the %dx%d grid; the starting cell is (1,1)", in.Cell, g.Rows, g.Cols)
	}
	x0, y0 := g.Origin(r, c)
	w, h := g.ColumnWidth(c), g.RowHeight(r)

	d := layout.Domain{
		X: insetInterval(x0, w, in.L, in.W),
		Y: insetInterval(y0, h, in.B, in.H),
	}
	if inverted(d) {
		return layout.Domain{}, errors.Config("offsets of the inset over %s leave an empty domain %s", in.Cell, d)
	}
	return g.clamp(d, "inset over", in.Cell), nil
}

func insetInterval(origin, size, pad float64, ext Extent) layout.Interval {
	lo := origin + pad*size
	if ext.IsToEnd() {
		return layout.Interval{Lo: lo, Hi: origin + size}
	}
	return layout.Interval{Lo: lo, Hi: lo + ext.Fraction()*size}
}

// inverted reports whether either interval of d ends before it starts.
func inverted(d layout.Domain) bool {
	return d.X.Lo-d.X.Hi > driftTolerance || d.Y.Lo-d.Y.Hi > driftTolerance
}

func (g *Geometry) clamp(d layout.Domain, what string, at Cell) layout.Domain {
	if over := d.Overshoot(); over > driftTolerance && g.logger != nil {
		g.logger.Warn("subplot domain clamped to [0,1]", "subplot", what, "cell", at, "domain", d, "overshoot", over)
	}
	return d.Clamp()
}

// checkOccupancy rejects specs whose spans cover another non-empty cell.
func checkOccupancy(specs [][]*CellSpec) error {
	owner := make(map[Cell]Cell)
	for r, row := range specs {
		for c, s := range row {
			if s == nil {
				continue
			}
			anchor := Cell{Row: r + 1, Col: c + 1}
			for rr := r; rr < r+s.Rowspan && rr < len(specs); rr++ {
				for cc := c; cc < c+s.Colspan && cc < len(row); cc++ {
					at := Cell{Row: rr + 1, Col: cc + 1}
					if prev, ok := owner[at]; ok {
						return errors.Config("cell %s is covered by the subplots at %s and %s", at, prev, anchor)
					}
					owner[at] = anchor
					if at != anchor && specs[rr][cc] != nil {
						return errors.Config("cell %s is covered by the span of the subplot at %s and must be empty (nil)", at, anchor)
					}
				}
			}
		}
	}
	return nil
}
