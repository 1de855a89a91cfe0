package mesh

import (
	"fmt"
	"io"
	"math"

	"github.com/hschendel/stl"
	"github.com/npillmayer/schuko/tracing"

	"github.com/graftactil/graftactil/model"
	"github.com/graftactil/graftactil/placement"
	"github.com/graftactil/graftactil/scene"
)

// tracer traces with key 'graftactil.mesh'.
func tracer() tracing.Trace {
	return tracing.Select("graftactil.mesh")
}

// DefaultSections is the number of sides used to approximate a cylinder.
const DefaultSections = 24

// Options control mesh generation.
type Options struct {
	// Name is stored in the STL header.
	Name string

	// Sections is the number of sides of a cylinder. Values below 3 use
	// DefaultSections.
	Sections int
}

func (o Options) sections() int {
	if o.Sections < 3 {
		return DefaultSections
	}
	return o.Sections
}

// Build assembles the base plate and every raised primitive of s.
func Build(s *scene.Scene, opts Options) *stl.Solid {
	name := opts.Name
	if name == "" {
		name = "graftactil"
	}
	solid := &stl.Solid{Name: name}

	t := s.Relief.PlateThickness
	solid.Triangles = append(solid.Triangles, Plate(s.Plate, t)...)

	prims := s.Solids()
	for _, p := range prims {
		solid.Triangles = append(solid.Triangles, Primitive(p, opts.sections())...)
	}

	tracer().Debugf("mesh: plate + %d primitives, %d triangles", len(prims), len(solid.Triangles))
	return solid
}

// Write builds the mesh of s and writes it to w as binary STL.
func Write(w io.Writer, s *scene.Scene, opts Options) error {
	solid := Build(s, opts)
	if err := solid.WriteAll(w); err != nil {
		return fmt.Errorf("writing stl: %w", err)
	}
	return nil
}

// Plate returns the base plate, W×H centred on the origin, from z = 0 to
// z = thickness.
func Plate(plate model.Plate, thickness float64) []stl.Triangle {
	hw, hh := plate.WidthMM/2, plate.HeightMM/2
	return Extrude([]model.Point{
		{X: -hw, Y: -hh},
		{X: hw, Y: -hh},
		{X: hw, Y: hh},
		{X: -hw, Y: hh},
	}, 0, thickness)
}

// Primitive returns the triangles of one raised solid.
func Primitive(p placement.Solid, sections int) []stl.Triangle {
	return Extrude(p.Footprint(sections), p.Z, p.Z+p.Height)
}

// Extrude builds a closed prism from a convex, counter-clockwise polygon
// between heights z0 and z1. The result has 4n-4 triangles for n corners,
// all wound counter-clockwise seen from outside.
func Extrude(poly []model.Point, z0, z1 float64) []stl.Triangle {
	n := len(poly)
	if n < 3 || !(z1 > z0) {
		return nil
	}
	tris := make([]stl.Triangle, 0, 4*n-4)

	bottom := func(p model.Point) vec { return vec{p.X, p.Y, z0} }
	top := func(p model.Point) vec { return vec{p.X, p.Y, z1} }

	// caps as fans from the first corner
	for i := 1; i+1 < n; i++ {
		tris = append(tris, triangle(top(poly[0]), top(poly[i]), top(poly[i+1])))
		tris = append(tris, triangle(bottom(poly[0]), bottom(poly[i+1]), bottom(poly[i])))
	}

	for i := 0; i < n; i++ {
		a, b := poly[i], poly[(i+1)%n]
		tris = append(tris, triangle(bottom(a), bottom(b), top(b)))
		tris = append(tris, triangle(bottom(a), top(b), top(a)))
	}
	return tris
}

type vec [3]float64

func (v vec) sub(o vec) vec { return vec{v[0] - o[0], v[1] - o[1], v[2] - o[2]} }

func (v vec) cross(o vec) vec {
	return vec{
		v[1]*o[2] - v[2]*o[1],
		v[2]*o[0] - v[0]*o[2],
		v[0]*o[1] - v[1]*o[0],
	}
}

func (v vec) f32() stl.Vec3 {
	return stl.Vec3{float32(v[0]), float32(v[1]), float32(v[2])}
}

// triangle creates an STL facet with its unit normal from the winding.
func triangle(a, b, c vec) stl.Triangle {
	n := b.sub(a).cross(c.sub(a))
	l := math.Sqrt(n[0]*n[0] + n[1]*n[1] + n[2]*n[2])
	if l > 0 {
		n = vec{n[0] / l, n[1] / l, n[2] / l}
	}
	return stl.Triangle{
		Normal:   n.f32(),
		Vertices: [3]stl.Vec3{a.f32(), b.f32(), c.f32()},
	}
}
