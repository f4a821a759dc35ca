package grid

import (
	"strings"

	"github.com/matzehuels/subplots/pkg/errors"
)

// Kind is the coordinate-system family of a subplot.
type Kind string

// Subplot kinds.
const (
	KindXY      Kind = "xy"      // 2D cartesian: a pair of x/y axes
	KindScene   Kind = "scene"   // 3D cartesian
	KindPolar   Kind = "polar"   // polar coordinates
	KindTernary Kind = "ternary" // ternary (a, b, c) coordinates
	KindMapbox  Kind = "mapbox"  // tile map
	KindGeo     Kind = "geo"     // geographic projection
	KindDomain  Kind = "domain"  // traces positioned by their own domain (pie, table, ...)
)

// singleKinds are the kinds backed by exactly one layout container.
var singleKinds = map[Kind]bool{
	KindScene:   true,
	KindPolar:   true,
	KindTernary: true,
	KindMapbox:  true,
	KindGeo:     true,
}

// subplotPropKinds bind traces through the generic "subplot" property
// instead of a property named after the kind.
var subplotPropKinds = map[Kind]bool{
	KindPolar:   true,
	KindTernary: true,
	KindMapbox:  true,
}

// Kinds lists every valid subplot kind.
func Kinds() []Kind {
	return []Kind{KindXY, KindScene, KindPolar, KindTernary, KindMapbox, KindGeo, KindDomain}
}

// Valid reports whether k is a known subplot kind.
func (k Kind) Valid() bool {
	return k == KindXY || k == KindDomain || singleKinds[k]
}

func validateKind(k Kind) error {
	if !k.Valid() {
		return errors.New(errors.ErrCodeUnknownSubplotType, "invalid subplot type %q (%T)", string(k), k)
	}
	return nil
}

// Share selects how cartesian axes are linked across the grid.
type Share string

// Sharing modes. ShareOn means "columns" for x-axes and "rows" for y-axes.
const (
	ShareOff     Share = ""
	ShareOn      Share = "true"
	ShareColumns Share = "columns"
	ShareRows    Share = "rows"
	ShareAll     Share = "all"
)

// ParseShare converts a user-supplied sharing value. "", "none" and "false"
// disable sharing.
func ParseShare(s string) (Share, error) {
	switch v := strings.ToLower(strings.TrimSpace(s)); v {
	case "", "none", "false":
		return ShareOff, nil
	case "true":
		return ShareOn, nil
	case "columns", "rows", "all":
		return Share(v), nil
	}
	return ShareOff, errors.Config("sharing must be one of [none true false rows columns all], received %q (%T)", s, s)
}

func validateShare(name string, s Share) error {
	switch s {
	case ShareOff, ShareOn, ShareColumns, ShareRows, ShareAll, "false":
		return nil
	}
	return errors.Config("the %q argument must be one of [none true false rows columns all], received %q (%T)", name, string(s), s)
}

// StartCell selects which corner holds cell (1,1).
type StartCell string

// Start cells.
const (
	TopLeft    StartCell = "top-left"
	BottomLeft StartCell = "bottom-left"
)

// rowDir returns +1 when rows are numbered bottom-up and -1 when numbered
// top-down.
func (s StartCell) rowDir() int {
	if s == BottomLeft {
		return 1
	}
	return -1
}

func validateStartCell(s StartCell) error {
	if s != TopLeft && s != BottomLeft {
		return errors.Config("the \"start_cell\" argument must be one of [bottom-left top-left], received %q (%T)", string(s), s)
	}
	return nil
}
