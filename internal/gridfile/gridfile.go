// Package gridfile reads subplot grid descriptions from TOML or YAML files.
//
// Keys follow the make_subplots argument names:
//
//	rows = 2
//	cols = 2
//	shared_xaxes = "columns"
//	specs = [
//	  [{ colspan = 2 }, { empty = true }],
//	  [{}, { type = "polar" }],
//	]
//	insets = [{ cell = [2, 1], l = 0.6, b = 0.6, w = 0.3, h = 0.3 }]
//
// TOML has no null, so an empty cell is written { empty = true }. YAML
// accepts that form as well as a plain null.
package gridfile

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/subplots/pkg/errors"
	"github.com/matzehuels/subplots/pkg/grid"
)

var topLevelKeys = []string{
	"rows", "cols",
	"shared_xaxes", "shared_yaxes",
	"start_cell",
	"horizontal_spacing", "vertical_spacing",
	"column_widths", "column_width", "row_heights", "row_width",
	"specs", "insets",
	"subplot_titles", "column_titles", "row_titles",
	"x_title", "y_title",
	"print_grid",
}

// Load reads the grid description at path. The format is chosen by
// extension: .toml, .yaml or .yml.
func Load(path string, logger *log.Logger) (*grid.Options, error) {
	if err := errors.ValidateGridPath(path); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read grid file %s", path)
	}
	format := "yaml"
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		format = "toml"
	}
	return Parse(data, format, logger)
}

// Parse decodes a grid description in the given format ("toml" or "yaml").
func Parse(data []byte, format string, logger *log.Logger) (*grid.Options, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	raw := make(map[string]any)
	switch format {
	case "toml":
		if _, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&raw); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse TOML grid description")
		}
	case "yaml":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse YAML grid description")
		}
	default:
		return nil, errors.New(errors.ErrCodeInvalidInput, "unsupported grid format %q", format)
	}
	return decode(raw, logger)
}

func decode(raw map[string]any, logger *log.Logger) (*grid.Options, error) {
	for k := range raw {
		if !slices.Contains(topLevelKeys, k) {
			return nil, errors.Config("unknown grid file key %q", k)
		}
	}
	if has(raw, "row_width") && has(raw, "row_heights") {
		return nil, errors.Config("row_width and row_heights cannot both be set")
	}
	if has(raw, "column_width") && has(raw, "column_widths") {
		return nil, errors.Config("column_width and column_widths cannot both be set")
	}

	o := &grid.Options{Logger: logger}
	d := decoder{raw: raw}

	o.Rows = d.intOr("rows", 1)
	o.Cols = d.intOr("cols", 1)
	o.SharedX = d.share("shared_xaxes")
	o.SharedY = d.share("shared_yaxes")
	o.StartCell = grid.StartCell(d.str("start_cell"))
	o.HorizontalSpacing = d.optFloat("horizontal_spacing")
	o.VerticalSpacing = d.optFloat("vertical_spacing")
	o.ColumnWidths = d.floatList("column_widths")
	if w := d.floatList("column_width"); w != nil {
		o.ColumnWidths = w
	}
	o.RowHeights = d.floatList("row_heights")
	if h := d.floatList("row_width"); h != nil {
		o.RowHeights = h
		o.LegacyRowOrder = true
	}
	o.SubplotTitles = d.strList("subplot_titles")
	o.ColumnTitles = d.strList("column_titles")
	o.RowTitles = d.strList("row_titles")
	o.XTitle = d.str("x_title")
	o.YTitle = d.str("y_title")
	o.PrintGrid = d.flag("print_grid")
	if d.err != nil {
		return nil, d.err
	}

	if v, ok := raw["specs"]; ok && v != nil {
		specs, err := decodeSpecs(v, logger)
		if err != nil {
			return nil, err
		}
		o.Specs = specs
	}
	if v, ok := raw["insets"]; ok && v != nil {
		insets, err := decodeInsets(v, logger)
		if err != nil {
			return nil, err
		}
		o.Insets = insets
	}
	return o, nil
}

func has(raw map[string]any, key string) bool {
	v, ok := raw[key]
	return ok && v != nil
}

func decodeSpecs(v any, logger *log.Logger) ([][]*grid.CellSpec, error) {
	rows, ok := list(v)
	if !ok {
		return nil, errors.Config("the \"specs\" key must be a list of lists, received %v (%T)", v, v)
	}
	table := make([][]any, len(rows))
	for r, row := range rows {
		cells, ok := list(row)
		if !ok {
			return nil, errors.Config("row %d of \"specs\" must be a list, received %v (%T)", r+1, row, row)
		}
		table[r] = make([]any, len(cells))
		for c, cell := range cells {
			table[r][c] = dropEmpty(cell)
		}
	}
	return grid.DecodeSpecs(table, logger)
}

// list returns v as a generic slice. TOML decodes arrays of tables, such as
// [[insets]] or a row of inline tables, to []map[string]any.
func list(v any) ([]any, bool) {
	switch v := v.(type) {
	case []any:
		return v, true
	case []map[string]any:
		out := make([]any, len(v))
		for i, m := range v {
			out[i] = m
		}
		return out, true
	}
	return nil, false
}

// dropEmpty turns the { empty = true } marker into nil.
func dropEmpty(cell any) any {
	m, ok := cell.(map[string]any)
	if !ok {
		return cell
	}
	if empty, ok := m["empty"].(bool); ok && empty && len(m) == 1 {
		return nil
	}
	return cell
}

func decodeInsets(v any, logger *log.Logger) ([]grid.InsetSpec, error) {
	items, ok := list(v)
	if !ok {
		return nil, errors.Config("the \"insets\" key must be a list, received %v (%T)", v, v)
	}
	out := make([]grid.InsetSpec, 0, len(items))
	for _, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			return nil, errors.Config("elements of \"insets\" must be mappings, received %v (%T)", item, item)
		}
		in, err := grid.DecodeInsetSpec(m, logger)
		if err != nil {
			return nil, err
		}
		out = append(out, *in)
	}
	return out, nil
}
