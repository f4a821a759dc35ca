// Package trace provides minimal trace objects that can be placed on a
// subplot grid.
//
// A trace only knows its kind and a bag of properties. The kind decides
// which placement properties it accepts: cartesian traces take xaxis/yaxis,
// 3D traces take scene, polar/ternary/mapbox traces take subplot, geographic
// traces take geo and domain traces (pie, table, ...) take domain.
package trace

import (
	"maps"
	"slices"

	"github.com/google/uuid"

	"github.com/matzehuels/subplots/pkg/errors"
)

var (
	xyProps      = []string{"xaxis", "yaxis"}
	sceneProps   = []string{"scene"}
	subplotProps = []string{"subplot"}
	geoProps     = []string{"geo"}
	domainProps  = []string{"domain"}
)

// registry maps trace kinds to the placement properties they accept.
var registry = map[string][]string{
	"scatter":        xyProps,
	"scattergl":      xyProps,
	"bar":            xyProps,
	"box":            xyProps,
	"violin":         xyProps,
	"histogram":      xyProps,
	"histogram2d":    xyProps,
	"heatmap":        xyProps,
	"contour":        xyProps,
	"candlestick":    xyProps,
	"ohlc":           xyProps,
	"waterfall":      xyProps,
	"funnel":         xyProps,
	"image":          xyProps,
	"scatter3d":      sceneProps,
	"surface":        sceneProps,
	"mesh3d":         sceneProps,
	"cone":           sceneProps,
	"streamtube":     sceneProps,
	"volume":         sceneProps,
	"isosurface":     sceneProps,
	"scatterpolar":   subplotProps,
	"barpolar":       subplotProps,
	"scatterternary": subplotProps,
	"scattermapbox":  subplotProps,
	"densitymapbox":  subplotProps,
	"scattergeo":     geoProps,
	"choropleth":     geoProps,
	"pie":            domainProps,
	"sunburst":       domainProps,
	"treemap":        domainProps,
	"funnelarea":     domainProps,
	"sankey":         domainProps,
	"parcoords":      domainProps,
	"parcats":        domainProps,
	"table":          domainProps,
	"indicator":      domainProps,
}

// Kinds returns every registered trace kind in sorted order.
func Kinds() []string {
	return slices.Sorted(maps.Keys(registry))
}

// Placement returns the placement properties accepted by kind.
func Placement(kind string) ([]string, bool) {
	props, ok := registry[kind]
	return slices.Clone(props), ok
}

// Trace is a single data series.
type Trace struct {
	UID   string
	kind  string
	props map[string]any
}

// New returns an empty trace of the given kind with a random UID.
func New(kind string) (*Trace, error) {
	if _, ok := registry[kind]; !ok {
		return nil, errors.Config("unknown trace type %q (%T)", kind, kind)
	}
	return &Trace{
		UID:   uuid.NewString(),
		kind:  kind,
		props: make(map[string]any),
	}, nil
}

// Type returns the trace kind.
func (t *Trace) Type() string { return t.kind }

// Has reports whether prop is a placement property of the trace's kind.
func (t *Trace) Has(prop string) bool {
	return slices.Contains(registry[t.kind], prop)
}

// Update sets every property in props.
func (t *Trace) Update(props map[string]any) {
	maps.Copy(t.props, props)
}

// Get returns the value of prop.
func (t *Trace) Get(prop string) (any, bool) {
	v, ok := t.props[prop]
	return v, ok
}

// Props returns a copy of the trace's properties.
func (t *Trace) Props() map[string]any {
	return maps.Clone(t.props)
}
