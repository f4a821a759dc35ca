package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/subplots/pkg/grid"
	"github.com/matzehuels/subplots/pkg/layout"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary actions
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Public Styles
// =============================================================================

var (
	// StyleTitle for main headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleNumber for numeric values.
	StyleNumber = lipgloss.NewStyle().Foreground(colorCyan)

	// StyleWarning for warning messages.
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)
)

// =============================================================================
// Internal Styles
// =============================================================================

var (
	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconInfo    = lipgloss.NewStyle().Foreground(colorGray)
	styleHeader      = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	styleKey         = lipgloss.NewStyle().Foreground(colorGray).Width(12)
)

// =============================================================================
// Icons
// =============================================================================

const (
	iconSuccess = "✓"
	iconInfo    = "›"
)

// =============================================================================
// Status Output
// =============================================================================

// printSuccess prints a success message.
func printSuccess(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(w, styleIconSuccess.Render(iconSuccess)+" "+msg)
}

// printInfo prints an info/status message.
func printInfo(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(w, styleIconInfo.Render(iconInfo)+" "+msg)
}

// printKeyValue prints a labeled value.
func printKeyValue(w io.Writer, key, value string) {
	fmt.Fprintln(w, styleKey.Render(key)+" "+StyleValue.Render(value))
}

// =============================================================================
// Grid Output
// =============================================================================

// printDiagram prints the grid diagram with a styled header line.
func printDiagram(w io.Writer, diagram string) {
	header, body, _ := strings.Cut(diagram, "\n")
	fmt.Fprintln(w, StyleTitle.Render(header))
	fmt.Fprint(w, body)
}

// domainTable renders one row per subplot: its cell, kind, layout keys and
// domain.
func domainTable(t *grid.Table) string {
	var rows [][]string
	for r := 1; r <= t.Rows(); r++ {
		for c := 1; c <= t.Cols(); c++ {
			ref, err := t.Ref(r, c)
			if err != nil || ref == nil {
				continue
			}
			rows = append(rows, refRow(grid.Cell{Row: r, Col: c}.String(), ref))
		}
	}
	for _, ref := range t.Insets {
		rows = append(rows, refRow("inset "+ref.Inset.Cell.String(), ref))
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Cell", "Type", "Layout", "x", "y").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styleHeader
			}
			if col >= 3 {
				return lipgloss.NewStyle().Foreground(colorCyan)
			}
			return lipgloss.NewStyle()
		}).
		String()
}

func refRow(cell string, ref *grid.Ref) []string {
	keys := strings.Join(ref.LayoutKeys, ", ")
	if keys == "" {
		keys = "-"
	}
	return []string{cell, string(ref.Kind), keys, formatInterval(ref.Domain.X), formatInterval(ref.Domain.Y)}
}

func formatInterval(i layout.Interval) string {
	return fmt.Sprintf("[%.3f, %.3f]", i.Lo, i.Hi)
}
