package grid

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/subplots/pkg/errors"
	"github.com/matzehuels/subplots/pkg/layout"
)

func TestTitleAnnotations(t *testing.T) {
	d := dom(0.2, 0.4, 0.1, 0.5)
	base := layout.Annotation{Text: "t", XRef: "paper", YRef: "paper", FontSize: TitleFontSize}

	tests := []struct {
		edge   Edge
		offset float64
		want   layout.Annotation
	}{
		{EdgeTop, 0, with(base, func(a *layout.Annotation) {
			a.X, a.Y, a.XAnchor, a.YAnchor = 0.3, 0.5, "center", "bottom"
		})},
		{EdgeBottom, 30, with(base, func(a *layout.Annotation) {
			a.X, a.Y, a.XAnchor, a.YAnchor, a.YShift = 0.3, 0.1, "center", "top", -30
		})},
		{EdgeRight, 0, with(base, func(a *layout.Annotation) {
			a.X, a.Y, a.XAnchor, a.YAnchor, a.TextAngle = 0.4, 0.3, "left", "middle", 90
		})},
		{EdgeLeft, 40, with(base, func(a *layout.Annotation) {
			a.X, a.Y, a.XAnchor, a.YAnchor, a.TextAngle, a.XShift = 0.2, 0.3, "right", "middle", -90, -40
		})},
	}
	for _, tt := range tests {
		t.Run(string(tt.edge), func(t *testing.T) {
			got, err := TitleAnnotations([]string{"t"}, []layout.Domain{d}, tt.edge, tt.offset)
			if err != nil {
				t.Fatalf("TitleAnnotations() error: %v", err)
			}
			if diff := cmp.Diff([]layout.Annotation{tt.want}, got, approx); diff != "" {
				t.Errorf("TitleAnnotations() mismatch (-want +got):\n%s", diff)
			}
		})
	}

	if _, err := TitleAnnotations([]string{"t"}, []layout.Domain{d}, "middle", 0); !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("invalid edge error = %v, want INVALID_CONFIG", err)
	}
}

func with(a layout.Annotation, f func(*layout.Annotation)) layout.Annotation {
	f(&a)
	return a
}

func TestTitleAnnotationsSkipsEmptyAndUnplaced(t *testing.T) {
	domains := []layout.Domain{dom(0, 1, 0, 1), dom(0, 1, 0, 1)}
	got, err := TitleAnnotations([]string{"", "b", "c"}, domains, EdgeTop, 0)
	if err != nil {
		t.Fatalf("TitleAnnotations() error: %v", err)
	}
	if len(got) != 1 || got[0].Text != "b" {
		t.Errorf("got %+v, want only title b", got)
	}
}

func TestMakeTitles(t *testing.T) {
	texts := func(as []layout.Annotation) []string {
		var out []string
		for _, a := range as {
			out = append(out, a.Text)
		}
		return out
	}

	t.Run("subplot titles follow row-major order then insets", func(t *testing.T) {
		g := mustMake(t, Options{
			Rows: 1, Cols: 2,
			SubplotTitles: []string{"A", "B", "inset"},
			Insets:        []InsetSpec{{Cell: Cell{Row: 1, Col: 2}, L: 0.5, B: 0.5}},
		})
		as := g.Layout.Annotations
		if diff := cmp.Diff([]string{"A", "B", "inset"}, texts(as)); diff != "" {
			t.Fatalf("titles mismatch (-want +got):\n%s", diff)
		}
		// hs = 0.1, widths = 0.45
		got := [][2]float64{{as[0].X, as[0].Y}, {as[1].X, as[1].Y}}
		if diff := cmp.Diff([][2]float64{{0.225, 1}, {0.775, 1}}, got, approx); diff != "" {
			t.Errorf("title positions mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("titles sit over the clamped domain", func(t *testing.T) {
		g := mustMake(t, Options{
			Rows: 1, Cols: 1,
			SubplotTitles: []string{"cell", "inset"},
			Insets:        []InsetSpec{{L: 0.5, W: Frac(2)}},
		})
		as := g.Layout.Annotations
		if len(as) != 2 {
			t.Fatalf("got %d annotations, want 2", len(as))
		}
		if diff := cmp.Diff([2]float64{0.75, 1}, [2]float64{as[1].X, as[1].Y}, approx); diff != "" {
			t.Errorf("inset title position mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("column titles use the top row", func(t *testing.T) {
		for _, start := range []StartCell{TopLeft, BottomLeft} {
			g := mustMake(t, Options{Rows: 2, Cols: 1, StartCell: start, ColumnTitles: []string{"col"}})
			as := g.Layout.Annotations
			if len(as) != 1 {
				t.Fatalf("%s: got %d annotations, want 1", start, len(as))
			}
			if diff := cmp.Diff(1.0, as[0].Y, approx); diff != "" {
				t.Errorf("%s: column title y mismatch (-want +got):\n%s", start, diff)
			}
		}
	})

	t.Run("row titles sit right of the last column", func(t *testing.T) {
		g := mustMake(t, Options{Rows: 2, Cols: 2, RowTitles: []string{"r1", "r2"}})
		as := g.Layout.Annotations
		if diff := cmp.Diff([]string{"r1", "r2"}, texts(as)); diff != "" {
			t.Fatalf("titles mismatch (-want +got):\n%s", diff)
		}
		// Row titles reserve 2% of the width.
		got := [][2]float64{{as[0].X, as[0].Y}, {as[1].X, as[1].Y}}
		want := [][2]float64{{0.98, 0.7875}, {0.98, 0.2125}}
		if diff := cmp.Diff(want, got, approx); diff != "" {
			t.Errorf("row title positions mismatch (-want +got):\n%s", diff)
		}
		if as[0].TextAngle != 90 {
			t.Errorf("row title angle = %v, want 90", as[0].TextAngle)
		}
	})

	t.Run("axis titles", func(t *testing.T) {
		g := mustMake(t, Options{Rows: 1, Cols: 1, RowTitles: []string{"r"}, XTitle: "x", YTitle: "y"})
		as := g.Layout.Annotations
		if diff := cmp.Diff([]string{"r", "x", "y"}, texts(as)); diff != "" {
			t.Fatalf("titles mismatch (-want +got):\n%s", diff)
		}
		x, y := as[1], as[2]
		if diff := cmp.Diff([]float64{0.49, 0, -XTitleOffset}, []float64{x.X, x.Y, x.YShift}, approx); diff != "" {
			t.Errorf("x title mismatch (-want +got):\n%s", diff)
		}
		if diff := cmp.Diff([]float64{0, 0.5, -YTitleOffset, -90}, []float64{y.X, y.Y, y.XShift, y.TextAngle}, approx); diff != "" {
			t.Errorf("y title mismatch (-want +got):\n%s", diff)
		}
	})
}
