// Package geom provides the pure geometry primitives used by the sortable
// engine: points, rectangles, margin insets, axis flags, and small slice
// helpers.
//
// Everything in this package is a value type with no host-surface
// dependencies, which keeps the reflow math testable in isolation. All
// coordinates are expressed in host-surface pixels with the origin at the
// top-left corner and the y axis growing downward.
package geom
