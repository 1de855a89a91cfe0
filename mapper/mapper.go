package mapper

import (
	"fmt"

	"github.com/graftactil/graftactil/model"
)

// Mapper converts between logical window coordinates and physical plate
// coordinates. A Mapper is an immutable value and safe for concurrent use.
type Mapper struct {
	window model.Window
	plate  model.Plate
}

// New creates a Mapper for the given window and plate. It returns an error
// wrapping model.ErrInvalidWindow when x1 <= x0 or y1 <= y0, and
// model.ErrInvalidPlate when the plate has a non-positive dimension.
func New(window model.Window, plate model.Plate) (Mapper, error) {
	if err := window.Validate(); err != nil {
		return Mapper{}, fmt.Errorf("mapper: %w", err)
	}
	if err := plate.Validate(); err != nil {
		return Mapper{}, fmt.Errorf("mapper: %w", err)
	}
	return Mapper{window: window, plate: plate}, nil
}

// Window returns the logical window.
func (m Mapper) Window() model.Window { return m.window }

// Plate returns the physical plate.
func (m Mapper) Plate() model.Plate { return m.plate }

// ToPhysical maps logical (x, y) to page millimetres:
//
//	px = (x-x0)/(x1-x0) * W
//	py = (1 - (y-y0)/(y1-y0)) * H
func (m Mapper) ToPhysical(x, y float64) model.Point {
	fx := (x - m.window.X.Min) / m.window.X.Span()
	fy := (y - m.window.Y.Min) / m.window.Y.Span()
	return model.Point{
		X: fx * m.plate.WidthMM,
		Y: (1 - fy) * m.plate.HeightMM,
	}
}

// ToLogical is the exact inverse of ToPhysical.
func (m Mapper) ToLogical(p model.Point) (x, y float64) {
	fx := p.X / m.plate.WidthMM
	fy := 1 - p.Y/m.plate.HeightMM
	x = m.window.X.Min + fx*m.window.X.Span()
	y = m.window.Y.Min + fy*m.window.Y.Span()
	return x, y
}

// ToSolid converts a page point into the solid-model frame, which has its
// origin at the plate centre and Y growing upwards. It is a rigid move of
// the page frame, so the footprint of a marker does not drift between the
// two outputs.
func (m Mapper) ToSolid(p model.Point) model.Point {
	return ToSolid(m.plate, p)
}

// FromSolid is the inverse of ToSolid.
func (m Mapper) FromSolid(p model.Point) model.Point {
	return FromSolid(m.plate, p)
}

// ToSolid converts a page point on plate into the plate-centred, Y-up frame.
func ToSolid(plate model.Plate, p model.Point) model.Point {
	return model.Point{
		X: p.X - plate.WidthMM/2,
		Y: plate.HeightMM/2 - p.Y,
	}
}

// FromSolid converts a plate-centred, Y-up point back into page coordinates.
// Label positions are given in this frame.
func FromSolid(plate model.Plate, p model.Point) model.Point {
	return model.Point{
		X: p.X + plate.WidthMM/2,
		Y: plate.HeightMM/2 - p.Y,
	}
}
