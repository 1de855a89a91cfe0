// Package placement computes the physical footprint of every tactile relief
// element: curve markers at sampled function points and the dots of
// Braille labels.
//
// The engine produces backend-neutral values. A [Marker] knows its centre
// in page millimetres and can describe itself either as a flat [Outline]
// for the vector diagram or as a [Solid] for the printable model; both are
// derived from the same centre so the two outputs stay registered.
//
//	m, _ := mapper.New(window, plate)
//	xs := sampler.Default(1, window.X).Sample()
//	markers := placement.PlaceFunction(m, expr, xs, placement.Style{Shape: placement.Square, SizeMM: 3})
//	for _, mk := range markers {
//	    outline := mk.Outline()          // 2D
//	    solid := mk.Solid(m, 0.8, 0.8)   // 3D, on a 0.8 mm plate
//	    _, _ = outline, solid
//	}
//
// Samples whose y-value is NaN or infinite are dropped silently; a curve
// may be undefined over part of its domain.
package placement
