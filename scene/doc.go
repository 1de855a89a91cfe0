// Package scene lays out everything drawn on a tactile plate.
//
// Build takes a resolved configuration and produces page-space primitives
// (grid lines, axes, tick marks, curve paths, markers and Braille dots)
// shared by the SVG, STL and PNG backends. Every marker position comes from
// a single mapper.Mapper, so the 2D outline and the 3D solid of a sample sit
// on the same spot of the plate.
//
// Coordinates are page millimetres: origin at the top-left corner of the
// plate, X right, Y down.
package scene
