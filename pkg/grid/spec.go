package grid

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/subplots/pkg/errors"
)

// CellSpec describes the subplot anchored at one grid cell. A nil *CellSpec
// means the cell holds no subplot.
type CellSpec struct {
	Type    Kind // defaults to KindXY
	Colspan int  // 0 means 1
	Rowspan int  // 0 means 1

	// Padding in paper coordinates, measured from the cell edges.
	L, R, T, B float64
}

// Cell is a 1-based grid position.
type Cell struct {
	Row, Col int
}

func (c Cell) String() string { return fmt.Sprintf("(%d,%d)", c.Row, c.Col) }

// Extent is an inset size: either a fraction of the host cell or ToEnd.
type Extent struct {
	frac float64
	set  bool
}

// ToEnd extends an inset to the far edge of its host cell. It is the zero
// Extent.
var ToEnd Extent

// Frac returns an extent covering f of the host cell.
func Frac(f float64) Extent { return Extent{frac: f, set: true} }

// IsToEnd reports whether e extends to the host cell's far edge.
func (e Extent) IsToEnd() bool { return !e.set }

// Fraction returns the fraction of the host cell, or 0 for ToEnd.
func (e Extent) Fraction() float64 { return e.frac }

func (e Extent) String() string {
	if !e.set {
		return "to_end"
	}
	return fmt.Sprintf("%g", e.frac)
}

// InsetSpec describes a subplot overlaid on a host cell.
type InsetSpec struct {
	Cell Cell // zero value means (1,1)
	Type Kind // defaults to KindXY
	L, B float64
	W, H Extent
}

func normalizeSpec(s CellSpec) (CellSpec, error) {
	if s.Type == "" {
		s.Type = KindXY
	}
	if err := validateKind(s.Type); err != nil {
		return s, err
	}
	if s.Colspan < 0 || s.Rowspan < 0 {
		return s, errors.Config("colspan and rowspan must be >= 1, received colspan=%v rowspan=%v (%T)", s.Colspan, s.Rowspan, s.Colspan)
	}
	if s.Colspan == 0 {
		s.Colspan = 1
	}
	if s.Rowspan == 0 {
		s.Rowspan = 1
	}
	for _, p := range []struct {
		name string
		v    float64
	}{{"l", s.L}, {"r", s.R}, {"t", s.T}, {"b", s.B}} {
		if err := errors.ValidateNonNegative(p.name, p.v); err != nil {
			return s, err
		}
	}
	return s, nil
}

// normalizeSpecs returns a rows×cols copy of specs with defaults filled in.
// The caller's specs are left untouched. A nil specs means one xy subplot
// per cell.
func normalizeSpecs(specs [][]*CellSpec, rows, cols int) ([][]*CellSpec, error) {
	if specs == nil {
		specs = make([][]*CellSpec, rows)
		for r := range specs {
			specs[r] = make([]*CellSpec, cols)
			for c := range specs[r] {
				specs[r][c] = &CellSpec{}
			}
		}
	}
	if len(specs) != rows {
		return nil, errors.Config("the \"specs\" argument must be a %d x %d grid, received %d rows", rows, cols, len(specs))
	}
	out := make([][]*CellSpec, rows)
	for r, row := range specs {
		if len(row) != cols {
			return nil, errors.Config("the \"specs\" argument must be a %d x %d grid, row %d has %d columns", rows, cols, r+1, len(row))
		}
		out[r] = make([]*CellSpec, cols)
		for c, s := range row {
			if s == nil {
				continue
			}
			n, err := normalizeSpec(*s)
			if err != nil {
				return nil, err
			}
			out[r][c] = &n
		}
	}
	return out, nil
}

func normalizeInset(in InsetSpec) (InsetSpec, error) {
	if in.Cell == (Cell{}) {
		in.Cell = Cell{Row: 1, Col: 1}
	}
	if in.Type == "" {
		in.Type = KindXY
	}
	if err := validateKind(in.Type); err != nil {
		return in, err
	}
	if err := errors.ValidateNonNegative("l", in.L); err != nil {
		return in, err
	}
	if err := errors.ValidateNonNegative("b", in.B); err != nil {
		return in, err
	}
	if !in.W.IsToEnd() {
		if err := errors.ValidateNonNegative("w", in.W.Fraction()); err != nil {
			return in, err
		}
	}
	if !in.H.IsToEnd() {
		if err := errors.ValidateNonNegative("h", in.H.Fraction()); err != nil {
			return in, err
		}
	}
	return in, nil
}

func normalizeInsets(insets []InsetSpec) ([]InsetSpec, error) {
	out := make([]InsetSpec, len(insets))
	for i, in := range insets {
		n, err := normalizeInset(in)
		if err != nil {
			return nil, err
		}
		out[i] = n
	}
	return out, nil
}

// =============================================================================
// Raw decoding
// =============================================================================

var (
	cellSpecKeys  = []string{"type", "colspan", "rowspan", "l", "r", "b", "t"}
	insetSpecKeys = []string{"cell", "type", "l", "w", "b", "h"}
)

// DecodeSpecs converts an untyped rows×cols table into cell specs. Elements
// must be nil or map[string]any.
func DecodeSpecs(raw [][]any, logger *log.Logger) ([][]*CellSpec, error) {
	out := make([][]*CellSpec, len(raw))
	for r, row := range raw {
		out[r] = make([]*CellSpec, len(row))
		for c, v := range row {
			if v == nil {
				continue
			}
			m, ok := v.(map[string]any)
			if !ok {
				return nil, errors.Config("elements of the \"specs\" argument must be mappings or null, received %v (%T)", v, v)
			}
			s, err := DecodeCellSpec(m, logger)
			if err != nil {
				return nil, err
			}
			out[r][c] = s
		}
	}
	return out, nil
}

// DecodeCellSpec converts a raw mapping such as {"type": "polar", "colspan": 2}
// into a CellSpec. The legacy boolean key "is_3d" is translated to
// type "scene".
func DecodeCellSpec(raw map[string]any, logger *log.Logger) (*CellSpec, error) {
	raw, err := migrateIs3D(raw, logger)
	if err != nil {
		return nil, err
	}
	if err := checkKeys(raw, cellSpecKeys, "specs"); err != nil {
		return nil, err
	}
	s := &CellSpec{}
	if s.Type, err = kindValue(raw); err != nil {
		return nil, err
	}
	if s.Colspan, err = spanValue(raw, "colspan"); err != nil {
		return nil, err
	}
	if s.Rowspan, err = spanValue(raw, "rowspan"); err != nil {
		return nil, err
	}
	for _, p := range []struct {
		key string
		dst *float64
	}{{"l", &s.L}, {"r", &s.R}, {"t", &s.T}, {"b", &s.B}} {
		if *p.dst, err = floatValue(raw, p.key); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// DecodeInsetSpec converts a raw mapping such as
// {"cell": [1, 2], "l": 0.5, "w": "to_end"} into an InsetSpec.
func DecodeInsetSpec(raw map[string]any, logger *log.Logger) (*InsetSpec, error) {
	raw, err := migrateIs3D(raw, logger)
	if err != nil {
		return nil, err
	}
	if err := checkKeys(raw, insetSpecKeys, "insets"); err != nil {
		return nil, err
	}
	in := &InsetSpec{}
	if in.Type, err = kindValue(raw); err != nil {
		return nil, err
	}
	if v, ok := raw["cell"]; ok && v != nil {
		if in.Cell, err = cellValue(v); err != nil {
			return nil, err
		}
		if in.Cell.Row < 1 || in.Cell.Col < 1 {
			return nil, errors.New(errors.ErrCodeCellOutOfRange,
				"inset cell %s is out of range; the starting cell is (1,1)", in.Cell)
		}
	}
	if in.L, err = floatValue(raw, "l"); err != nil {
		return nil, err
	}
	if in.B, err = floatValue(raw, "b"); err != nil {
		return nil, err
	}
	if in.W, err = extentValue(raw, "w"); err != nil {
		return nil, err
	}
	if in.H, err = extentValue(raw, "h"); err != nil {
		return nil, err
	}
	return in, nil
}

func migrateIs3D(raw map[string]any, logger *log.Logger) (map[string]any, error) {
	v, ok := raw["is_3d"]
	if !ok {
		return raw, nil
	}
	b, ok := v.(bool)
	if !ok {
		return nil, errors.Config("the \"is_3d\" key must be a boolean, received %v (%T)", v, v)
	}
	out := make(map[string]any, len(raw))
	for k, v := range raw {
		if k != "is_3d" {
			out[k] = v
		}
	}
	if b {
		out["type"] = string(KindScene)
	}
	if logger != nil {
		logger.Debug("translated legacy is_3d key", "is_3d", b)
	}
	return out, nil
}

func checkKeys(raw map[string]any, valid []string, arg string) error {
	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		if !slices.Contains(valid, k) {
			return errors.Config("invalid key %q in an element of the %q argument; valid keys: %s", k, arg, strings.Join(valid, ", "))
		}
	}
	return nil
}

func kindValue(raw map[string]any) (Kind, error) {
	v, ok := raw["type"]
	if !ok || v == nil {
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", errors.New(errors.ErrCodeUnknownSubplotType, "invalid subplot type %v (%T)", v, v)
	}
	k := Kind(s)
	return k, validateKind(k)
}

// Number converts the numeric types produced by the TOML, YAML and JSON
// decoders to float64.
func Number(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}

func floatValue(raw map[string]any, key string) (float64, error) {
	v, ok := raw[key]
	if !ok || v == nil {
		return 0, nil
	}
	f, ok := Number(v)
	if !ok {
		return 0, errors.Config("the %q key must be a number, received %v (%T)", key, v, v)
	}
	return f, nil
}

// spanValue reads an optional colspan or rowspan. Absent keys decode to 0,
// which normalization turns into 1; explicit values must be >= 1.
func spanValue(raw map[string]any, key string) (int, error) {
	v, ok := raw[key]
	if !ok || v == nil {
		return 0, nil
	}
	f, ok := Number(v)
	if !ok || f != math.Trunc(f) || f < 1 {
		return 0, errors.Config("the %q key must be an integer >= 1, received %v (%T)", key, v, v)
	}
	return int(f), nil
}

func extentValue(raw map[string]any, key string) (Extent, error) {
	v, ok := raw[key]
	if !ok || v == nil {
		return ToEnd, nil
	}
	if s, ok := v.(string); ok {
		if s == "to_end" {
			return ToEnd, nil
		}
		return ToEnd, errors.Config("the %q key must be a number or \"to_end\", received %q (%T)", key, s, v)
	}
	f, ok := Number(v)
	if !ok {
		return ToEnd, errors.Config("the %q key must be a number or \"to_end\", received %v (%T)", key, v, v)
	}
	return Frac(f), nil
}

func cellValue(v any) (Cell, error) {
	items, ok := v.([]any)
	if !ok || len(items) != 2 {
		return Cell{}, errors.Config("the \"cell\" key must be a [row, col] pair, received %v (%T)", v, v)
	}
	var ints [2]int
	for i, item := range items {
		f, ok := Number(item)
		if !ok || f != math.Trunc(f) {
			return Cell{}, errors.Config("the \"cell\" key must be a [row, col] pair of integers, received %v (%T)", item, item)
		}
		ints[i] = int(f)
	}
	return Cell{Row: ints[0], Col: ints[1]}, nil
}
