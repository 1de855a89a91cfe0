// Package raster draws a laid out plate into a PNG preview.
//
// Shapes are filled with the anti-aliasing scanline rasteriser of
// golang.org/x/image/vector; lines are drawn as thin quads. The preview is
// meant for a quick look before embossing or printing, so it keeps the
// layer order of the SVG output but not its exact stroke joins.
package raster
