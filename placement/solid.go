package placement

import (
	"github.com/graftactil/graftactil/mapper"
	"github.com/graftactil/graftactil/model"
)

// SolidKind tells a 3D backend which primitive to build.
type SolidKind int

const (
	// Cylinder is a vertical cylinder with Radius.
	Cylinder SolidKind = iota
	// Box is an axis-aligned box of Width × Depth.
	Box
	// Prism is Profile extruded vertically.
	Prism
)

// Solid is a primitive placed in the solid-model frame: origin at the plate
// centre, X right, Y up (towards the top edge of the page), Z out of the
// plate. The primitive spans Z..Z+Height.
type Solid struct {
	Kind   SolidKind
	Center model.Point
	Z      float64
	Height float64

	Radius float64 // Cylinder
	Width  float64 // Box, along X
	Depth  float64 // Box, along Y

	// Profile holds the prism outline relative to Center, counter-clockwise.
	Profile []model.Point
}

// Solid returns the marker as a primitive standing on a plate of the given
// thickness. The footprint centre is the same page point as the 2D outline,
// moved into the solid frame.
func (mk Marker) Solid(m mapper.Mapper, plateThickness, height float64) Solid {
	s := Solid{
		Center: m.ToSolid(mk.Center),
		Z:      plateThickness,
		Height: height,
	}
	switch mk.Shape {
	case Square:
		s.Kind = Box
		s.Width, s.Depth = mk.SizeMM, mk.SizeMM
	case Triangle:
		s.Kind = Prism
		v := TriangleVertices(model.Point{}, mk.SizeMM)
		// page Y runs down, solid Y runs up; walk left, right, apex so the
		// profile is counter-clockwise once flipped
		s.Profile = []model.Point{
			{X: v[1].X, Y: -v[1].Y},
			{X: v[2].X, Y: -v[2].Y},
			{X: v[0].X, Y: -v[0].Y},
		}
	default:
		s.Kind = Cylinder
		s.Radius = mk.SizeMM / 2
	}
	return s
}

// Footprint returns the outline of the solid in the XY plane, in the
// solid frame. Cylinders are approximated by the given number of sections.
func (s Solid) Footprint(sections int) []model.Point {
	switch s.Kind {
	case Box:
		hw, hd := s.Width/2, s.Depth/2
		return []model.Point{
			{X: s.Center.X - hw, Y: s.Center.Y - hd},
			{X: s.Center.X + hw, Y: s.Center.Y - hd},
			{X: s.Center.X + hw, Y: s.Center.Y + hd},
			{X: s.Center.X - hw, Y: s.Center.Y + hd},
		}
	case Prism:
		pts := make([]model.Point, len(s.Profile))
		for i, p := range s.Profile {
			pts[i] = s.Center.Add(p)
		}
		return pts
	default:
		return circle(s.Center, s.Radius, sections)
	}
}
