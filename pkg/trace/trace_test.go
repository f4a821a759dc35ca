package trace

import (
	"testing"

	"github.com/matzehuels/subplots/pkg/errors"
	"github.com/matzehuels/subplots/pkg/grid"
)

var _ grid.Trace = (*Trace)(nil)

func TestNew(t *testing.T) {
	a, err := New("scatter")
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	b, _ := New("scatter")
	if a.UID == "" || a.UID == b.UID {
		t.Errorf("UIDs should be unique and non-empty: %q, %q", a.UID, b.UID)
	}
	if a.Type() != "scatter" {
		t.Errorf("Type() = %q, want scatter", a.Type())
	}

	if _, err := New("sparkline"); !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("New(unknown) error = %v, want INVALID_CONFIG", err)
	}
}

func TestHas(t *testing.T) {
	tests := []struct {
		kind string
		prop string
		want bool
	}{
		{"scatter", "xaxis", true},
		{"scatter", "yaxis", true},
		{"scatter", "domain", false},
		{"scatter3d", "scene", true},
		{"scatterpolar", "subplot", true},
		{"scatterpolar", "polar", false},
		{"scattergeo", "geo", true},
		{"pie", "domain", true},
		{"pie", "xaxis", false},
	}
	for _, tt := range tests {
		t.Run(tt.kind+"/"+tt.prop, func(t *testing.T) {
			tr, err := New(tt.kind)
			if err != nil {
				t.Fatalf("New() error: %v", err)
			}
			if got := tr.Has(tt.prop); got != tt.want {
				t.Errorf("Has(%q) = %v, want %v", tt.prop, got, tt.want)
			}
		})
	}
}

func TestUpdateAndGet(t *testing.T) {
	tr, _ := New("bar")
	tr.Update(map[string]any{"xaxis": "x2", "yaxis": "y2"})

	if v, ok := tr.Get("xaxis"); !ok || v != "x2" {
		t.Errorf("Get(xaxis) = %v, %v", v, ok)
	}
	if _, ok := tr.Get("scene"); ok {
		t.Error("Get(scene) found an unset property")
	}

	props := tr.Props()
	props["xaxis"] = "x9"
	if v, _ := tr.Get("xaxis"); v != "x2" {
		t.Errorf("Props() should return a copy, xaxis = %v", v)
	}
}

func TestPlacement(t *testing.T) {
	for _, kind := range Kinds() {
		props, ok := Placement(kind)
		if !ok || len(props) == 0 {
			t.Errorf("Placement(%q) = %v, %v", kind, props, ok)
		}
	}
	if _, ok := Placement("nope"); ok {
		t.Error("Placement(nope) should not be found")
	}
}

func TestBindThroughGrid(t *testing.T) {
	g, err := grid.Make(grid.Options{
		Rows: 1, Cols: 2,
		Specs: [][]*grid.CellSpec{{{}, {Type: grid.KindDomain}}},
	})
	if err != nil {
		t.Fatalf("Make() error: %v", err)
	}

	pie, _ := New("pie")
	if err := g.Bind(pie, 1, 1); !errors.Is(err, errors.ErrCodeIncompatibleTrace) {
		t.Errorf("Bind(pie on xy) error = %v, want INCOMPATIBLE_TRACE", err)
	}
	if err := g.Bind(pie, 1, 2); err != nil {
		t.Fatalf("Bind(pie on domain) error: %v", err)
	}
	if _, ok := pie.Get("domain"); !ok {
		t.Error("pie has no domain after binding")
	}
}
