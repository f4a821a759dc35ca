package grid

import (
	"github.com/charmbracelet/log"

	"github.com/matzehuels/subplots/pkg/layout"
)

// linker makes cartesian axes follow a canonical axis. Only single-span xy
// subplots take part; the first one visited in each group becomes the
// canonical axis.
type linker struct {
	layout *layout.Layout
	refs   [][]*Ref
	axis   byte // 'x' or 'y'
	logger *log.Logger
	linked int
}

// link applies share to the x or y axes of refs and returns the number of
// axes that now match another axis.
func link(l *layout.Layout, refs [][]*Ref, axis byte, share Share, rowDir int, logger *log.Logger) int {
	if len(refs) == 0 {
		return 0
	}
	k := &linker{layout: l, refs: refs, axis: axis, logger: logger}
	rows, cols := len(refs), len(refs[0])

	// Visit rows from the visual bottom up.
	order := make([]int, rows)
	for i := range order {
		if rowDir < 0 {
			order[i] = rows - 1 - i
		} else {
			order[i] = i
		}
	}

	switch {
	case share == ShareColumns || (share == ShareOn && axis == 'x'):
		for c := 0; c < cols; c++ {
			first := ""
			for _, r := range order {
				first = k.match(first, r, c, axis == 'x')
			}
		}
	case share == ShareRows || (share == ShareOn && axis == 'y'):
		for _, r := range order {
			first := ""
			for c := 0; c < cols; c++ {
				first = k.match(first, r, c, axis == 'y')
			}
		}
	case share == ShareAll:
		first := ""
		for c := 0; c < cols; c++ {
			for i, r := range order {
				var hide bool
				switch {
				case axis == 'y':
					hide = c > 0
				case rowDir > 0:
					hide = i > 0
				default:
					hide = r < rows-1
				}
				first = k.match(first, r, c, hide)
			}
		}
	}
	return k.linked
}

// match links the axis of cell (r, c) to first, or returns the cell's axis
// id as the new canonical axis when first is empty.
func (k *linker) match(first string, r, c int, hideLabels bool) string {
	ref := k.refs[r][c]
	if ref == nil || ref.Kind != KindXY || ref.Spec == nil {
		return first
	}
	span, key := ref.Spec.Colspan, ref.LayoutKeys[0]
	if k.axis == 'y' {
		span, key = ref.Spec.Rowspan, ref.LayoutKeys[1]
	}
	if span != 1 {
		return first
	}
	if first == "" {
		return layout.AxisID(key)
	}

	ax, ok := k.layout.Axis(key)
	if !ok {
		return first
	}
	ax.Matches = first
	if hideLabels {
		ax.HideTickLabels()
	}
	k.linked++
	if k.logger != nil {
		k.logger.Debug("linked axis", "axis", ax.Name, "matches", first, "hide_labels", hideLabels)
	}
	return first
}
