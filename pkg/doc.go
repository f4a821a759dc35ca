// Package pkg contains the public libraries of subplots.
//
//   - grid: grid geometry, subplot allocation, shared axes and the reference table
//   - layout: paper-coordinate domains, axes, containers and annotations
//   - trace: trace types and the subplot kinds they can be drawn on
//   - figure: a layout plus traces bound to grid cells
//   - errors: coded errors and argument validation
//   - observability: hooks around grid builds and trace binding
package pkg
