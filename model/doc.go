// Package model provides the value types shared by every stage of the
// tactile graph pipeline.
//
// All types are plain values with no shared mutable state, so they can be
// passed freely between the mapper, sampler, placement engine and the
// output backends.
//
// # Physical Frame
//
// A [Plate] is the output rectangle in millimetres. Page coordinates put
// the origin at the top-left corner with Y growing downwards, which is the
// convention of the SVG backend:
//
//	plate := model.Plate{WidthMM: 173, HeightMM: 113}
//	if err := plate.Validate(); err != nil {
//	    // handle error
//	}
//
// # Logical Frame
//
// A [Window] is the xlim × ylim rectangle of function space that is mapped
// onto the plate. A window whose extent is zero on either axis is rejected
// with [ErrInvalidWindow].
//
// # Geometry
//
//   - [Point] - 2D point with distance and centroid helpers
//   - [BBox] - axis-aligned box in page coordinates
package model
