package layout

import "testing"

func TestIntervalWidthAndMid(t *testing.T) {
	tests := []struct {
		name      string
		iv        Interval
		wantWidth float64
		wantMid   float64
	}{
		{"unit", Interval{0, 1}, 1, 0.5},
		{"upper half", Interval{0.5, 1}, 0.5, 0.75},
		{"degenerate", Interval{0.25, 0.25}, 0, 0.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.iv.Width(); got != tt.wantWidth {
				t.Errorf("Width() = %v, want %v", got, tt.wantWidth)
			}
			if got := tt.iv.Mid(); got != tt.wantMid {
				t.Errorf("Mid() = %v, want %v", got, tt.wantMid)
			}
		})
	}
}

func TestIntervalClamp(t *testing.T) {
	tests := []struct {
		name          string
		iv            Interval
		want          Interval
		wantOvershoot float64
	}{
		{"inside", Interval{0.1, 0.9}, Interval{0.1, 0.9}, 0},
		{"drift above", Interval{0.5, 1.0000000000000002}, Interval{0.5, 1}, 2.220446049250313e-16},
		{"below zero", Interval{-0.25, 0.5}, Interval{0, 0.5}, 0.25},
		{"both sides", Interval{-0.1, 1.3}, Interval{0, 1}, 0.30000000000000004},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.iv.Clamp(); got != tt.want {
				t.Errorf("Clamp() = %v, want %v", got, tt.want)
			}
			if got := tt.iv.Overshoot(); got != tt.wantOvershoot {
				t.Errorf("Overshoot() = %v, want %v", got, tt.wantOvershoot)
			}
		})
	}
}

func TestDomainOverlaps(t *testing.T) {
	left := Domain{X: Interval{0, 0.5}, Y: Interval{0, 1}}
	right := Domain{X: Interval{0.5, 1}, Y: Interval{0, 1}}
	center := Domain{X: Interval{0.25, 0.75}, Y: Interval{0.25, 0.75}}

	if left.Overlaps(right) {
		t.Error("edge-adjacent domains should not overlap")
	}
	if !left.Overlaps(center) || !center.Overlaps(right) {
		t.Error("center domain should overlap both halves")
	}
}
