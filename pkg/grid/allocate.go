package grid

import (
	"strconv"

	"github.com/matzehuels/subplots/pkg/errors"
	"github.com/matzehuels/subplots/pkg/layout"
)

// Binding is the set of trace properties that place a trace on a subplot.
// It is one of XYBinding, SingleBinding or DomainBinding.
type Binding interface {
	// Properties returns the trace properties to apply.
	Properties() map[string]any
	isBinding()
}

// XYBinding places a trace on a pair of cartesian axes.
type XYBinding struct {
	XAxis string // "x3"
	YAxis string // "y3"
}

// SingleBinding places a trace on a single layout container.
type SingleBinding struct {
	Property string // "scene", "geo" or "subplot"
	Value    string // "scene2", "polar1", ...
}

// DomainBinding places a trace directly in paper coordinates.
type DomainBinding struct {
	X, Y layout.Interval
}

func (b XYBinding) Properties() map[string]any {
	return map[string]any{"xaxis": b.XAxis, "yaxis": b.YAxis}
}

func (b SingleBinding) Properties() map[string]any {
	return map[string]any{b.Property: b.Value}
}

func (b DomainBinding) Properties() map[string]any {
	return map[string]any{"domain": layout.Domain{X: b.X, Y: b.Y}}
}

func (XYBinding) isBinding()     {}
func (SingleBinding) isBinding() {}
func (DomainBinding) isBinding() {}

// Ref is the subplot created for one grid cell or inset.
type Ref struct {
	Kind Kind
	// LayoutKeys names the layout entries of the subplot: two axes for xy,
	// one container for scene-like kinds, none for domain.
	LayoutKeys []string
	Binding    Binding
	Domain     layout.Domain

	// Spec is the normalized cell spec, or nil for an inset.
	Spec *CellSpec
	// Inset is the normalized inset spec, or nil for a grid cell.
	Inset *InsetSpec
}

// Allocator hands out layout entries with per-kind sequential numbering.
// Numbering starts at 1 for every kind.
type Allocator struct {
	layout *layout.Layout
	counts map[string]int
}

// NewAllocator returns an allocator that registers entries in l.
func NewAllocator(l *layout.Layout) *Allocator {
	return &Allocator{layout: l, counts: make(map[string]int)}
}

// Count returns how many entries of the given counter ("xaxis", "yaxis",
// "scene", "polar", ...) have been allocated.
func (a *Allocator) Count(counter string) int { return a.counts[counter] }

func (a *Allocator) next(counter string) string {
	a.counts[counter]++
	return counter + strconv.Itoa(a.counts[counter])
}

// Allocate creates the layout entries for one subplot of the given kind and
// returns its reference.
func (a *Allocator) Allocate(kind Kind, d layout.Domain) (*Ref, error) {
	switch {
	case kind == KindXY:
		xName, yName := a.next("xaxis"), a.next("yaxis")
		x := &layout.Axis{Name: xName, Domain: d.X, Anchor: layout.AxisID(yName)}
		y := &layout.Axis{Name: yName, Domain: d.Y, Anchor: layout.AxisID(xName)}
		a.layout.SetAxis(x)
		a.layout.SetAxis(y)
		return &Ref{
			Kind:       kind,
			LayoutKeys: []string{xName, yName},
			Binding:    XYBinding{XAxis: x.ID(), YAxis: y.ID()},
			Domain:     d,
		}, nil

	case singleKinds[kind]:
		name := a.next(string(kind))
		a.layout.SetContainer(&layout.Container{Name: name, Kind: string(kind), Domain: d})
		prop := string(kind)
		if subplotPropKinds[kind] {
			prop = "subplot"
		}
		return &Ref{
			Kind:       kind,
			LayoutKeys: []string{name},
			Binding:    SingleBinding{Property: prop, Value: name},
			Domain:     d,
		}, nil

	case kind == KindDomain:
		return &Ref{
			Kind:    kind,
			Binding: DomainBinding{X: d.X, Y: d.Y},
			Domain:  d,
		}, nil
	}
	return nil, errors.New(errors.ErrCodeUnknownSubplotType, "invalid subplot type %q (%T)", string(kind), kind)
}
