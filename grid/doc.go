// Package grid models a rectangular map as a row-major arena of cells,
// each carrying the tagged template objects placed on it.
//
// What:
//
//   - Grid wraps W×H cells addressed by compass.Point (X = column, Y = row).
//   - Tag queries: IsBlocked (tag "block"), IsGateway (tag "gateway"),
//     HasTag, RoomID.
//   - ClaimRoom tags a cell with a room marker created by a template.Registry.
//   - Out-of-bounds queries never fail: they report blocked, not a gateway,
//     and unclaimed, so walkers need no special case at the map edge.
//
// Construction:
//
//   - New(w, h, opts) builds an empty grid.
//   - FromLegend(rows, legend, reg, opts) instantiates one template per glyph.
//
// Options:
//
//   - Options.CellSize: world-space edge length of one cell (default 1).
//
// Errors:
//
//   - ErrEmptyGrid:      width or height is not positive.
//   - ErrNonRectangular: legend rows differ in length.
//   - ErrBadCellSize:    CellSize is not a positive finite number.
//   - ErrUnknownGlyph:   a legend row uses a glyph missing from the legend.
//   - ErrOutOfBounds:    a mutation targets a point outside the grid.
//   - ErrAlreadyClaimed: a cell already carries a room marker.
//   - ErrNotRoomMarker:  ClaimRoom got an object without a room id.
//   - ErrNilRegistry:    FromLegend got a nil template registry.
//
// Complexity: queries are O(k) in the number of objects on the cell
// (typically 1–2); construction is O(W×H).
package grid
