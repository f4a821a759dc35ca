package layout

import (
	"slices"
	"testing"
)

func TestLayoutEntries(t *testing.T) {
	l := New()
	l.SetAxis(&Axis{Name: "xaxis1", Anchor: "y1", Domain: Interval{0, 1}})
	l.SetAxis(&Axis{Name: "yaxis1", Anchor: "x1", Domain: Interval{0, 1}})
	l.SetContainer(&Container{Name: "scene1", Kind: "scene"})

	if got, want := l.Names(), []string{"xaxis1", "yaxis1", "scene1"}; !slices.Equal(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}
	if l.Len() != 3 {
		t.Errorf("Len() = %d, want 3", l.Len())
	}

	x, ok := l.Axis("xaxis1")
	if !ok {
		t.Fatal("Axis(xaxis1) not found")
	}
	if x.ID() != "x1" {
		t.Errorf("ID() = %q, want x1", x.ID())
	}
	if _, ok := l.Axis("scene1"); ok {
		t.Error("scene1 should not be an axis")
	}
	if _, ok := l.Container("scene1"); !ok {
		t.Error("Container(scene1) not found")
	}
	if !l.Has("yaxis1") || l.Has("polar1") {
		t.Error("Has() reports wrong membership")
	}
}

func TestLayoutReplaceKeepsOrder(t *testing.T) {
	l := New()
	l.SetAxis(&Axis{Name: "xaxis1"})
	l.SetAxis(&Axis{Name: "yaxis1"})
	l.SetAxis(&Axis{Name: "xaxis1", Matches: "x2"})

	if got, want := l.Names(), []string{"xaxis1", "yaxis1"}; !slices.Equal(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}
	if a, _ := l.Axis("xaxis1"); a.Matches != "x2" {
		t.Errorf("replaced axis Matches = %q, want x2", a.Matches)
	}
}

func TestHideTickLabels(t *testing.T) {
	a := &Axis{Name: "xaxis2"}
	if a.ShowTickLabels != nil {
		t.Fatal("ShowTickLabels should start unset")
	}
	a.HideTickLabels()
	if a.ShowTickLabels == nil || *a.ShowTickLabels {
		t.Error("HideTickLabels() should set ShowTickLabels to false")
	}
}

func TestAxisIDAndName(t *testing.T) {
	tests := []struct {
		name string
		id   string
	}{
		{"xaxis1", "x1"},
		{"yaxis12", "y12"},
	}

	for _, tt := range tests {
		if got := AxisID(tt.name); got != tt.id {
			t.Errorf("AxisID(%q) = %q, want %q", tt.name, got, tt.id)
		}
		if got := AxisName(tt.id); got != tt.name {
			t.Errorf("AxisName(%q) = %q, want %q", tt.id, got, tt.name)
		}
	}
}

func TestAddAnnotations(t *testing.T) {
	l := New()
	l.AddAnnotations(Annotation{Text: "a"}, Annotation{Text: "b"})
	l.AddAnnotations(Annotation{Text: "c"})
	if len(l.Annotations) != 3 || l.Annotations[2].Text != "c" {
		t.Errorf("Annotations = %+v", l.Annotations)
	}
}
