// Package svg writes a laid out plate as a layered SVG drawing.
//
// The document is built as a golang.org/x/net/html node tree and serialised
// with html.Render. Its width and height are given in millimetres and the
// viewBox is the plate in millimetres, so one user unit is one millimetre
// of plate. Each layer (plate, grid, axes, curves, markers, ticks, braille)
// is a group carrying Inkscape layer attributes, which lets embossing and
// cutting tools switch layers on and off.
package svg
