package grid

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Diagram glyphs.
const (
	cellSep    = "  "
	cellStart  = "[ "
	cellEnd    = " ]"
	spanTop    = "⎡ "
	spanMid    = "⎢ "
	spanBot    = "⎣ "
	spanEndTop = " ⎤"
	spanEndMid = " ⎟"
	spanEndBot = " ⎦"
	colspanStr = "       -"
	rowspanStr = "       :"
	emptyStr   = "    (empty) "
)

const diagramHeader = "This is the format of your plot grid:\n"

func cellLabel(r, c int, ref *Ref) string {
	return fmt.Sprintf("(%d,%d) %s", r+1, c+1, strings.Join(ref.LayoutKeys, ","))
}

// Diagram renders the text picture of a grid. Rows are printed top to bottom
// as they appear on the page, followed by the insets.
func Diagram(specs [][]*CellSpec, t *Table, rowDir int) string {
	rows, cols := t.Rows(), t.Cols()

	width := 0
	for r, row := range t.refs {
		for c, ref := range row {
			if ref != nil {
				width = max(width, lipgloss.Width(cellLabel(r, c, ref))+len(cellStart)+len(cellEnd))
			}
		}
	}
	if width == 0 {
		width = lipgloss.Width(emptyStr)
	}
	pad := func(s string) string {
		return strings.Repeat(" ", max(0, width-lipgloss.Width(s)))
	}

	tmp := make([][]string, rows)
	for r := range tmp {
		tmp[r] = make([]string, cols)
	}

	for r, row := range specs {
		for c, spec := range row {
			ref := t.refs[r][c]
			if ref == nil {
				if tmp[r][c] == "" {
					tmp[r][c] = emptyStr + pad(emptyStr)
				}
				continue
			}

			cell := cellStart + cellLabel(r, c, ref)
			end := cellEnd
			if spec.Rowspan > 1 {
				cell = spanTop + cellLabel(r, c, ref)
				end = spanEndTop
			}

			if spec.Colspan > 1 {
				for cc := 1; cc < spec.Colspan-1; cc++ {
					tmp[r][c+cc] = colspanStr + pad(colspanStr)
				}
				tmp[r][c+spec.Colspan-1] = colspanStr + pad(colspanStr+cellEnd) + end
			} else {
				cell += strings.Repeat(" ", max(0, width-lipgloss.Width(cell)-2)) + end
			}

			if spec.Rowspan > 1 {
				for cc := 0; cc < spec.Colspan; cc++ {
					for rr := 1; rr < spec.Rowspan; rr++ {
						s := rowspanStr + pad(rowspanStr)
						last := rr == spec.Rowspan-1
						if cc == 0 {
							if last {
								s = spanBot + s[2:]
							} else {
								s = spanMid + s[2:]
							}
						}
						if cc == spec.Colspan-1 {
							if last {
								s = s[:len(s)-2] + spanEndBot
							} else {
								s = s[:len(s)-2] + spanEndMid
							}
						}
						tmp[r+rr][c+cc] = s
					}
				}
			}

			tmp[r][c] = cell + pad(cell)
		}
	}

	var b strings.Builder
	b.WriteString(diagramHeader)
	for i := range rows {
		r := i
		if rowDir > 0 {
			r = rows - 1 - i
		}
		b.WriteString(strings.Join(tmp[r], cellSep))
		b.WriteByte('\n')
	}

	if len(t.Insets) > 0 {
		b.WriteString("\nWith insets:\n")
		for _, in := range t.Insets {
			r, c := in.Inset.Cell.Row-1, in.Inset.Cell.Col-1
			host := strings.TrimSpace(emptyStr)
			if ref := t.refs[r][c]; ref != nil {
				host = cellLabel(r, c, ref)
			}
			fmt.Fprintf(&b, "%s%s%s over %s%s%s\n",
				cellStart, strings.Join(in.LayoutKeys, ","), cellEnd,
				cellStart, host, cellEnd)
		}
	}
	return b.String()
}
