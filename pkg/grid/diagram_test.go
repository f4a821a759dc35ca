package grid

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDiagram(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		want []string
	}{
		{
			name: "top-left prints the first row first",
			opts: Options{Rows: 2, Cols: 2},
			want: []string{
				"[ (1,1) xaxis1,yaxis1 ]  [ (1,2) xaxis2,yaxis2 ]",
				"[ (2,1) xaxis3,yaxis3 ]  [ (2,2) xaxis4,yaxis4 ]",
			},
		},
		{
			name: "bottom-left prints the last row first",
			opts: Options{Rows: 2, Cols: 1, StartCell: BottomLeft},
			want: []string{
				"[ (2,1) xaxis2,yaxis2 ]",
				"[ (1,1) xaxis1,yaxis1 ]",
			},
		},
		{
			name: "column span",
			opts: Options{Rows: 1, Cols: 2, Specs: [][]*CellSpec{{{Colspan: 2}, nil}}},
			want: []string{
				"[ (1,1) xaxis1,yaxis1  " + "  " + "       -" + strings.Repeat(" ", 13) + " ]",
			},
		},
		{
			name: "row span",
			opts: Options{Rows: 2, Cols: 1, Specs: [][]*CellSpec{{{Rowspan: 2}}, {nil}}},
			want: []string{
				"⎡ (1,1) xaxis1,yaxis1 ⎤",
				"⎣      :" + strings.Repeat(" ", 13) + " ⎦",
			},
		},
		{
			name: "three row span uses the middle bracket",
			opts: Options{Rows: 3, Cols: 1, Specs: [][]*CellSpec{{{Rowspan: 3}}, {nil}, {nil}}},
			want: []string{
				"⎡ (1,1) xaxis1,yaxis1 ⎤",
				"⎢      :" + strings.Repeat(" ", 13) + " ⎟",
				"⎣      :" + strings.Repeat(" ", 13) + " ⎦",
			},
		},
		{
			name: "empty cell",
			opts: Options{Rows: 1, Cols: 2, Specs: [][]*CellSpec{{{}, nil}}},
			want: []string{
				"[ (1,1) xaxis1,yaxis1 ]  " + "    (empty) " + strings.Repeat(" ", 11),
			},
		},
		{
			name: "insets",
			opts: Options{Rows: 1, Cols: 1, Insets: []InsetSpec{{L: 0.5, B: 0.5}}},
			want: []string{
				"[ (1,1) xaxis1,yaxis1 ]",
				"",
				"With insets:",
				"[ xaxis2,yaxis2 ] over [ (1,1) xaxis1,yaxis1 ]",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := mustMake(t, tt.opts)
			want := diagramHeader + strings.Join(tt.want, "\n") + "\n"
			if diff := cmp.Diff(want, g.Diagram); diff != "" {
				t.Errorf("Diagram() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDiagramMixedKinds(t *testing.T) {
	g := mustMake(t, Options{
		Rows: 1, Cols: 2,
		Specs: [][]*CellSpec{{{Type: KindScene}, {Type: KindDomain}}},
	})
	for _, want := range []string{"[ (1,1) scene1", "[ (1,2) "} {
		if !strings.Contains(g.Diagram, want) {
			t.Errorf("diagram %q missing %q", g.Diagram, want)
		}
	}
}
