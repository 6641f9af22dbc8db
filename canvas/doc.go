// Package canvas defines the drawing surface that effects paint into.
//
// A Surface mirrors the small slice of a 2D canvas context the effects need:
// rectangle and circle fills, soft radial glows, full clears and two
// compositing operations (source-over and additive "lighter").
//
// Two implementations are provided:
//   - CellSurface rasterises into a terminal cell grid, one RGB per cell,
//     with cells mapped onto a pixel coordinate space by fixed cell metrics
//   - RasterSurface paints into an RGBA image via gogpu/gg for offscreen
//     frames and PNG export
package canvas
