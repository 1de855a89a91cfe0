// Package mapper implements the affine transform between a logical data
// window and a physical plate.
//
// The same [Mapper] is used by the vector diagram and by the solid model, so
// a sample at logical (x, y) lands on the identical (px, py) millimetre
// position in both outputs:
//
//	m, err := mapper.New(model.NewWindow(-7, 7, -7, 7), model.Plate{WidthMM: 168, HeightMM: 168})
//	if err != nil {
//	    // window or plate was degenerate
//	}
//	p := m.ToPhysical(1.5, 2.25) // page mm, Y down
//	s := m.ToSolid(p)            // plate-centred mm, Y up
//
// Page coordinates put the origin at the top-left corner of the plate with
// Y growing downwards; logical Y grows upwards, so the mapping flips Y.
package mapper
