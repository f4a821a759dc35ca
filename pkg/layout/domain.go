package layout

import "fmt"

// Interval is a closed 1D range [Lo, Hi] in paper coordinates.
type Interval struct {
	Lo, Hi float64
}

// Width returns the extent of the interval.
func (i Interval) Width() float64 { return i.Hi - i.Lo }

// Mid returns the center point of the interval.
func (i Interval) Mid() float64 { return (i.Lo + i.Hi) / 2 }

// Clamp restricts both ends of the interval to [0, 1].
func (i Interval) Clamp() Interval {
	return Interval{Lo: max(0, i.Lo), Hi: min(1, i.Hi)}
}

// Overshoot returns how far the interval reaches outside [0, 1].
func (i Interval) Overshoot() float64 {
	return max(0, -i.Lo, i.Hi-1)
}

func (i Interval) String() string { return fmt.Sprintf("[%.4g, %.4g]", i.Lo, i.Hi) }

// Domain is a rectangle in paper coordinates.
type Domain struct {
	X, Y Interval
}

// Clamp restricts the domain to the unit square.
func (d Domain) Clamp() Domain { return Domain{X: d.X.Clamp(), Y: d.Y.Clamp()} }

// Overshoot returns how far the domain reaches outside the unit square.
func (d Domain) Overshoot() float64 { return max(d.X.Overshoot(), d.Y.Overshoot()) }

// Overlaps reports whether d and o share interior area. Rectangles that only
// touch along an edge do not overlap.
func (d Domain) Overlaps(o Domain) bool {
	return d.X.Lo < o.X.Hi && o.X.Lo < d.X.Hi && d.Y.Lo < o.Y.Hi && o.Y.Lo < d.Y.Hi
}

func (d Domain) String() string { return fmt.Sprintf("x=%s y=%s", d.X, d.Y) }
