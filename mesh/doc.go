// Package mesh turns a laid out plate into a printable triangle mesh.
//
// The model uses the plate-centred frame of mapper.ToSolid: X right, Y up,
// Z out of the plate. The base plate spans z = 0 to the plate thickness and
// every marker and Braille dot stands on its top face. All primitives are
// built by extruding their footprint polygon, so cylinders, boxes and
// triangular prisms share one code path.
//
// The mesh is written as binary STL with github.com/hschendel/stl.
package mesh
