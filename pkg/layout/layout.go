package layout

import (
	"fmt"
	"strings"
)

// Axis is a cartesian axis entry ("xaxis1", "yaxis4").
type Axis struct {
	Name   string
	Domain Interval
	// Anchor is the id of the perpendicular axis this axis is drawn against.
	Anchor string
	// Matches is the id of the axis whose range this axis follows, or "".
	Matches string
	// ShowTickLabels is nil when unset (renderer default).
	ShowTickLabels *bool
}

// ID returns the trace-facing id of the axis ("x3" for "xaxis3").
func (a *Axis) ID() string { return AxisID(a.Name) }

// HideTickLabels turns tick labels off.
func (a *Axis) HideTickLabels() {
	off := false
	a.ShowTickLabels = &off
}

// Container is a single-entry subplot such as a 3D scene or a polar plot.
type Container struct {
	Name   string
	Kind   string
	Domain Domain
}

// Annotation is a text label placed in paper coordinates.
type Annotation struct {
	Text      string
	X, Y      float64
	XRef      string
	YRef      string
	XAnchor   string
	YAnchor   string
	XShift    float64
	YShift    float64
	TextAngle float64
	ShowArrow bool
	FontSize  float64
}

// Layout keeps named axis and container entries in insertion order, plus
// annotations.
type Layout struct {
	axes        map[string]*Axis
	containers  map[string]*Container
	names       []string
	Annotations []Annotation
}

// New returns an empty layout.
func New() *Layout {
	return &Layout{
		axes:       make(map[string]*Axis),
		containers: make(map[string]*Container),
	}
}

// SetAxis registers an axis entry under a.Name, replacing any entry of the
// same name.
func (l *Layout) SetAxis(a *Axis) {
	l.remember(a.Name)
	delete(l.containers, a.Name)
	l.axes[a.Name] = a
}

// SetContainer registers a container entry under c.Name, replacing any entry
// of the same name.
func (l *Layout) SetContainer(c *Container) {
	l.remember(c.Name)
	delete(l.axes, c.Name)
	l.containers[c.Name] = c
}

func (l *Layout) remember(name string) {
	if _, ok := l.axes[name]; ok {
		return
	}
	if _, ok := l.containers[name]; ok {
		return
	}
	l.names = append(l.names, name)
}

// Axis returns the axis entry with the given name ("xaxis2").
func (l *Layout) Axis(name string) (*Axis, bool) {
	a, ok := l.axes[name]
	return a, ok
}

// Container returns the container entry with the given name ("scene1").
func (l *Layout) Container(name string) (*Container, bool) {
	c, ok := l.containers[name]
	return c, ok
}

// Has reports whether any entry is registered under name.
func (l *Layout) Has(name string) bool {
	_, a := l.axes[name]
	_, c := l.containers[name]
	return a || c
}

// Names returns entry names in the order they were first registered.
func (l *Layout) Names() []string {
	return append([]string(nil), l.names...)
}

// Len returns the number of named entries.
func (l *Layout) Len() int { return len(l.names) }

// AddAnnotations appends annotations to the layout.
func (l *Layout) AddAnnotations(a ...Annotation) {
	l.Annotations = append(l.Annotations, a...)
}

// AxisID converts an axis entry name into its trace-facing id:
// "xaxis3" becomes "x3".
func AxisID(name string) string {
	return strings.Replace(name, "axis", "", 1)
}

// AxisName converts a trace-facing axis id into its entry name:
// "y2" becomes "yaxis2".
func AxisName(id string) string {
	if len(id) < 1 {
		return id
	}
	return fmt.Sprintf("%saxis%s", id[:1], id[1:])
}
