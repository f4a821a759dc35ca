package grid

import (
	"github.com/matzehuels/subplots/pkg/errors"
	"github.com/matzehuels/subplots/pkg/layout"
)

// Edge is the side of a domain a title is attached to.
type Edge string

// Title edges.
const (
	EdgeTop    Edge = "top"
	EdgeBottom Edge = "bottom"
	EdgeLeft   Edge = "left"
	EdgeRight  Edge = "right"
)

// TitleFontSize is the font size of every generated title.
const TitleFontSize = 16

// Offsets, in pixels, of the shared axis titles from the plot area.
const (
	XTitleOffset = 30
	YTitleOffset = 40
)

// TitleAnnotations places titles[i] on the given edge of domains[i]. Empty
// titles and titles without a matching domain are skipped. offset shifts
// the annotation away from the edge, in pixels.
func TitleAnnotations(titles []string, domains []layout.Domain, edge Edge, offset float64) ([]layout.Annotation, error) {
	base := layout.Annotation{
		XRef:     "paper",
		YRef:     "paper",
		FontSize: TitleFontSize,
	}
	var pos func(d layout.Domain) (x, y float64)

	switch edge {
	case EdgeTop:
		base.XAnchor, base.YAnchor = "center", "bottom"
		base.YShift = offset
		pos = func(d layout.Domain) (float64, float64) { return d.X.Mid(), d.Y.Hi }
	case EdgeBottom:
		base.XAnchor, base.YAnchor = "center", "top"
		base.YShift = -offset
		pos = func(d layout.Domain) (float64, float64) { return d.X.Mid(), d.Y.Lo }
	case EdgeRight:
		base.XAnchor, base.YAnchor = "left", "middle"
		base.XShift = offset
		base.TextAngle = 90
		pos = func(d layout.Domain) (float64, float64) { return d.X.Hi, d.Y.Mid() }
	case EdgeLeft:
		base.XAnchor, base.YAnchor = "right", "middle"
		base.XShift = -offset
		base.TextAngle = -90
		pos = func(d layout.Domain) (float64, float64) { return d.X.Lo, d.Y.Mid() }
	default:
		return nil, errors.Config("invalid annotation edge %q (%T)", string(edge), edge)
	}

	var out []layout.Annotation
	for i, text := range titles {
		if text == "" || i >= len(domains) {
			continue
		}
		a := base
		a.Text = text
		a.X, a.Y = pos(domains[i])
		out = append(out, a)
	}
	return out, nil
}

// titleAnnotations builds every title annotation requested by o.
func titleAnnotations(o *Options, g *Geometry, t *Table) ([]layout.Annotation, error) {
	type group struct {
		titles  []string
		domains []layout.Domain
		edge    Edge
		offset  float64
	}
	var groups []group

	if len(o.SubplotTitles) > 0 {
		var domains []layout.Domain
		for _, ref := range t.Refs() {
			domains = append(domains, ref.Domain)
		}
		for _, ref := range t.Insets {
			domains = append(domains, ref.Domain)
		}
		groups = append(groups, group{o.SubplotTitles, domains, EdgeTop, 0})
	}

	if len(o.ColumnTitles) > 0 {
		top := 0
		if g.RowDir > 0 {
			top = t.Rows() - 1
		}
		groups = append(groups, group{o.ColumnTitles, rowDomains(t.refs[top]), EdgeTop, 0})
	}

	if len(o.RowTitles) > 0 {
		last := make([]*Ref, t.Rows())
		for r := range last {
			last[r] = t.refs[r][t.Cols()-1]
		}
		groups = append(groups, group{o.RowTitles, rowDomains(last), EdgeRight, 0})
	}

	if o.XTitle != "" {
		d := layout.Domain{X: layout.Interval{Lo: 0, Hi: g.MaxWidth}, Y: layout.Interval{Lo: 0, Hi: 1}}
		groups = append(groups, group{[]string{o.XTitle}, []layout.Domain{d}, EdgeBottom, XTitleOffset})
	}

	if o.YTitle != "" {
		d := layout.Domain{X: layout.Interval{Lo: 0, Hi: 1}, Y: layout.Interval{Lo: 0, Hi: 1}}
		groups = append(groups, group{[]string{o.YTitle}, []layout.Domain{d}, EdgeLeft, YTitleOffset})
	}

	var out []layout.Annotation
	for _, gr := range groups {
		a, err := TitleAnnotations(gr.titles, gr.domains, gr.edge, gr.offset)
		if err != nil {
			return nil, err
		}
		out = append(out, a...)
	}
	return out, nil
}

// rowDomains returns the domains of refs. Empty cells have no domain, so the
// i-th title pairs with the i-th non-empty cell.
func rowDomains(refs []*Ref) []layout.Domain {
	var out []layout.Domain
	for _, ref := range refs {
		if ref != nil {
			out = append(out, ref.Domain)
		}
	}
	return out
}
