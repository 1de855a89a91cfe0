package placement

import (
	"math"

	"github.com/graftactil/graftactil/model"
)

// OutlineKind tells a 2D backend which primitive to emit.
type OutlineKind int

const (
	// Ring is a circle outline with Center and Radius.
	Ring OutlineKind = iota
	// Rect is an axis-aligned rectangle given by Box.
	Rect
	// Polygon is a closed polygon given by Vertices.
	Polygon
)

// Outline is the flat footprint of a marker in page millimetres.
type Outline struct {
	Kind     OutlineKind
	Center   model.Point
	Radius   float64       // Ring
	Box      model.BBox    // Rect
	Vertices []model.Point // Polygon, page coordinates
}

// Outline returns the flat footprint of the marker.
func (mk Marker) Outline() Outline {
	c := mk.Center
	switch mk.Shape {
	case Square:
		half := mk.SizeMM / 2
		return Outline{
			Kind:   Rect,
			Center: c,
			Box:    model.NewBBox(c.X-half, c.Y-half, mk.SizeMM, mk.SizeMM),
		}
	case Triangle:
		v := TriangleVertices(c, mk.SizeMM)
		return Outline{Kind: Polygon, Center: c, Vertices: v[:]}
	default:
		return Outline{Kind: Ring, Center: c, Radius: mk.SizeMM / 2}
	}
}

// TriangleVertices returns the apex and the two base corners of an
// equilateral triangle of side a centred on its centroid c, in page
// coordinates (Y down), so the apex points towards the top of the page:
//
//	apex  (cx,       cy - 2h/3)
//	left  (cx - a/2, cy + h/3)
//	right (cx + a/2, cy + h/3)
//
// where h = √3/2 · a.
func TriangleVertices(c model.Point, a float64) [3]model.Point {
	h := math.Sqrt(3) / 2 * a
	return [3]model.Point{
		{X: c.X, Y: c.Y - 2*h/3},
		{X: c.X - a/2, Y: c.Y + h/3},
		{X: c.X + a/2, Y: c.Y + h/3},
	}
}

// Bounds returns the bounding box of the outline.
func (o Outline) Bounds() model.BBox {
	switch o.Kind {
	case Rect:
		return o.Box
	case Polygon:
		return model.BBoxOf(o.Vertices)
	default:
		return model.NewBBox(o.Center.X-o.Radius, o.Center.Y-o.Radius, 2*o.Radius, 2*o.Radius)
	}
}
