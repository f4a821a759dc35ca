package figure

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/matzehuels/subplots/pkg/errors"
	"github.com/matzehuels/subplots/pkg/grid"
	"github.com/matzehuels/subplots/pkg/trace"
)

func newTrace(t *testing.T, kind string) *trace.Trace {
	t.Helper()
	tr, err := trace.New(kind)
	require.NoError(t, err)
	return tr
}

func mixedFigure(t *testing.T) *Figure {
	t.Helper()
	f, err := New(grid.Options{
		Rows: 2, Cols: 2,
		Specs: [][]*grid.CellSpec{
			{{}, {Type: grid.KindPolar}},
			{{Type: grid.KindDomain}, nil},
		},
	})
	require.NoError(t, err)
	return f
}

func TestNewRejectsBadOptions(t *testing.T) {
	f, err := New(grid.Options{Rows: 0, Cols: 1})
	require.Error(t, err)
	require.Nil(t, f)
	require.True(t, errors.Is(err, errors.ErrCodeInvalidConfig))
}

func TestAddTrace(t *testing.T) {
	f := mixedFigure(t)

	sc := newTrace(t, "scatter")
	require.NoError(t, f.AddTrace(sc, 1, 1))
	x, _ := sc.Get("xaxis")
	require.Equal(t, "x1", x)

	polar := newTrace(t, "scatterpolar")
	require.NoError(t, f.AddTrace(polar, 1, 2))
	sub, _ := polar.Get("subplot")
	require.Equal(t, "polar1", sub)

	require.Len(t, f.Traces, 2)
}

func TestAddTraceErrors(t *testing.T) {
	tests := []struct {
		name     string
		kind     string
		row, col int
		code     errors.Code
	}{
		{"pie on xy", "pie", 1, 1, errors.ErrCodeIncompatibleTrace},
		{"scatter on domain", "scatter", 2, 1, errors.ErrCodeIncompatibleTrace},
		{"empty cell", "scatter", 2, 2, errors.ErrCodeEmptyCell},
		{"out of range", "scatter", 3, 1, errors.ErrCodeCellOutOfRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := mixedFigure(t)
			err := f.AddTrace(newTrace(t, tt.kind), tt.row, tt.col)
			require.Error(t, err)
			require.Equal(t, tt.code, errors.GetCode(err))
			require.Empty(t, f.Traces)
		})
	}
}

func TestAddTraces(t *testing.T) {
	f := mixedFigure(t)
	trs := []grid.Trace{newTrace(t, "bar"), newTrace(t, "pie")}

	err := f.AddTraces(trs, []int{1}, []int{1, 1})
	require.True(t, errors.Is(err, errors.ErrCodeInvalidConfig))

	// The pie does not fit the xy cell, so neither trace is added.
	err = f.AddTraces(trs, []int{1, 1}, []int{1, 1})
	require.True(t, errors.Is(err, errors.ErrCodeIncompatibleTrace))
	require.Empty(t, f.Traces)

	require.NoError(t, f.AddTraces(trs, []int{1, 2}, []int{1, 1}))
	require.Len(t, f.Traces, 2)
}

func TestSubplot(t *testing.T) {
	f := mixedFigure(t)

	h, err := f.Subplot(1, 1)
	require.NoError(t, err)
	xy, ok := h.(grid.XYHandle)
	require.True(t, ok)
	require.Equal(t, "xaxis1", xy.XAxis.Name)

	h, err = f.Subplot(2, 2)
	require.NoError(t, err)
	require.Nil(t, h)

	_, err = f.Subplot(0, 1)
	require.True(t, errors.Is(err, errors.ErrCodeCellOutOfRange))

	require.Equal(t, 2, f.Grid().Rows())
	require.Equal(t, 3, f.Grid().Count())
}

func TestPrintGrid(t *testing.T) {
	f := mixedFigure(t)
	var buf bytes.Buffer
	require.NoError(t, f.PrintGrid(&buf))
	out := buf.String()
	require.True(t, strings.HasPrefix(out, "This is the format of your plot grid:\n"))
	require.Contains(t, out, "(1,2) polar1")
	require.Contains(t, out, "(empty)")
}
