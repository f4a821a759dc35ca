// Package layout holds the figure layout that a subplot grid populates.
//
// # Overview
//
// A [Layout] is a bag of named entries plus a list of annotations. Two kinds
// of entries exist:
//
//   - [Axis]: one half of a 2D cartesian subplot ("xaxis2", "yaxis2").
//     Axes carry their paper domain, the id of the axis they are anchored to,
//     and the sharing state ("matches", tick label visibility).
//   - [Container]: a single-entry subplot ("scene1", "polar3", "geo2", ...)
//     with an x/y domain.
//
// All coordinates are normalized paper coordinates where [0,1] spans the
// plotting area in both directions.
//
// Entry names and trace-facing ids differ for axes: the layout entry
// "xaxis3" is referred to as "x3" by traces and by other axes. Use
// [AxisID] and [AxisName] to convert between the two.
package layout
