// Package grid lays out a rectangular grid of subplots in paper coordinates.
//
// # Overview
//
// Make turns an [Options] value into a [Grid]: a [layout.Layout] holding one
// axis pair or container per subplot, a [Table] mapping 1-based (row, col)
// cells to their subplots, and a text [Diagram] of the arrangement.
//
//	g, err := grid.Make(grid.Options{
//	    Rows: 2, Cols: 2,
//	    Specs: [][]*grid.CellSpec{
//	        {{Colspan: 2}, nil},
//	        {{}, {Type: grid.KindPolar}},
//	    },
//	    SharedX: grid.ShareColumns,
//	})
//
// # Subplot Kinds
//
// Each cell holds one of the kinds returned by [Kinds]. xy subplots get a
// fresh xaxisN/yaxisM pair anchored to each other; scene, polar, ternary,
// mapbox and geo subplots get one numbered container; domain subplots get no
// layout entry and bind traces through their domain. Numbering is per kind
// and starts at 1.
//
// # Geometry
//
// Column widths and row heights are relative weights scaled to fill the paper
// minus the spacing between cells. Spans take their far edges from the last
// spanned cell. Padding (L, R, T, B) is given in paper coordinates. Insets
// are placed relative to their host cell. Every domain is clamped to [0,1].
//
// # Binding
//
// [Table.Bind] sets the subplot's binding properties (xaxis/yaxis, scene,
// subplot, geo or domain) on a [Trace], failing when the trace has no such
// property.
package grid
