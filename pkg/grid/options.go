package grid

import (
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/subplots/pkg/errors"
)

// Options configures a subplot grid. The zero value of every field except
// Rows and Cols selects a default.
type Options struct {
	Rows int
	Cols int

	// SharedX and SharedY link cartesian axes across the grid.
	SharedX Share
	SharedY Share

	// StartCell selects the corner holding cell (1,1). Defaults to TopLeft.
	StartCell StartCell

	// Spacing between cells as a fraction of the paper. Nil selects
	// 0.2/cols horizontally and 0.3/rows vertically (0.5/rows when
	// SubplotTitles is set).
	HorizontalSpacing *float64
	VerticalSpacing   *float64

	// ColumnWidths and RowHeights are relative weights, one per column or
	// row. RowHeights are listed in StartCell order unless LegacyRowOrder
	// is set, in which case they are always listed bottom to top.
	ColumnWidths   []float64
	RowHeights     []float64
	LegacyRowOrder bool

	// Specs is a Rows×Cols table; nil entries leave a cell empty. A nil
	// Specs places one xy subplot in every cell.
	Specs  [][]*CellSpec
	Insets []InsetSpec

	SubplotTitles []string
	ColumnTitles  []string
	RowTitles     []string
	XTitle        string
	YTitle        string

	// PrintGrid writes the grid diagram to Output after a successful build.
	PrintGrid bool
	Output    io.Writer

	Logger *log.Logger
}

// Spacing returns a pointer to v for use as HorizontalSpacing or
// VerticalSpacing.
func Spacing(v float64) *float64 { return &v }

// SetDefaults fills zero-valued fields with defaults.
func (o *Options) SetDefaults() {
	if o.StartCell == "" {
		o.StartCell = TopLeft
	}
	if o.Output == nil {
		o.Output = os.Stdout
	}
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}
	if o.HorizontalSpacing == nil && o.Cols > 0 {
		o.HorizontalSpacing = Spacing(0.2 / float64(o.Cols))
	}
	if o.VerticalSpacing == nil && o.Rows > 0 {
		if len(o.SubplotTitles) > 0 {
			o.VerticalSpacing = Spacing(0.5 / float64(o.Rows))
		} else {
			o.VerticalSpacing = Spacing(0.3 / float64(o.Rows))
		}
	}
}

// Validate checks Options without building anything. Make calls it after
// SetDefaults.
func (o *Options) Validate() error {
	if err := errors.ValidatePositive("rows", o.Rows); err != nil {
		return err
	}
	if err := errors.ValidatePositive("cols", o.Cols); err != nil {
		return err
	}
	if err := validateStartCell(o.StartCell); err != nil {
		return err
	}
	if err := validateShare("shared_xaxes", o.SharedX); err != nil {
		return err
	}
	if err := validateShare("shared_yaxes", o.SharedY); err != nil {
		return err
	}
	if o.HorizontalSpacing != nil {
		if err := errors.ValidateSpacing("horizontal_spacing", *o.HorizontalSpacing); err != nil {
			return err
		}
		if err := errors.ValidateSpacingRoom("horizontal_spacing", *o.HorizontalSpacing, o.Cols, o.maxWidth()); err != nil {
			return err
		}
	}
	if o.VerticalSpacing != nil {
		if err := errors.ValidateSpacing("vertical_spacing", *o.VerticalSpacing); err != nil {
			return err
		}
		if err := errors.ValidateSpacingRoom("vertical_spacing", *o.VerticalSpacing, o.Rows, 1); err != nil {
			return err
		}
	}
	if o.ColumnWidths != nil {
		if err := errors.ValidateWeights("column_widths", o.ColumnWidths, o.Cols); err != nil {
			return err
		}
	}
	if o.RowHeights != nil {
		if err := errors.ValidateWeights("row_heights", o.RowHeights, o.Rows); err != nil {
			return err
		}
	}
	if _, err := normalizeSpecs(o.Specs, o.Rows, o.Cols); err != nil {
		return err
	}
	if _, err := normalizeInsets(o.Insets); err != nil {
		return err
	}
	return nil
}

func (o *Options) rowDir() int { return o.StartCell.rowDir() }

func (o *Options) maxWidth() float64 {
	if len(o.RowTitles) > 0 {
		return 0.98
	}
	return 1.0
}
