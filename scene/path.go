package scene

import "github.com/graftactil/graftactil/model"

// PathSegmentType defines the type of path segment
type PathSegmentType int

const (
	// PathMoveTo starts a new subpath
	PathMoveTo PathSegmentType = iota
	// PathLineTo draws a line to a point
	PathLineTo
)

// PathSegment is a single path operation. MoveTo and LineTo carry one point.
type PathSegment struct {
	Type  PathSegmentType
	Point model.Point
}

// Path is a sequence of straight-line subpaths in page coordinates.
type Path struct {
	Segments []PathSegment

	// CurrentPoint is the end of the last segment
	CurrentPoint model.Point

	// HasCurrentPoint indicates if a current point has been set
	HasCurrentPoint bool
}

// NewPath creates a new empty path
func NewPath() *Path {
	return &Path{}
}

// MoveTo starts a new subpath at (x, y).
func (p *Path) MoveTo(x, y float64) {
	pt := model.Point{X: x, Y: y}
	p.Segments = append(p.Segments, PathSegment{Type: PathMoveTo, Point: pt})
	p.CurrentPoint = pt
	p.HasCurrentPoint = true
}

// LineTo appends a line from the current point to (x, y).
func (p *Path) LineTo(x, y float64) {
	if !p.HasCurrentPoint {
		// Treat as moveto if no current point
		p.MoveTo(x, y)
		return
	}
	pt := model.Point{X: x, Y: y}
	p.Segments = append(p.Segments, PathSegment{Type: PathLineTo, Point: pt})
	p.CurrentPoint = pt
}

// IsEmpty returns true if the path has no segments
func (p *Path) IsEmpty() bool {
	return len(p.Segments) == 0
}

// Subpaths splits the path into point runs, one per MoveTo.
func (p *Path) Subpaths() [][]model.Point {
	var runs [][]model.Point
	var cur []model.Point
	for _, seg := range p.Segments {
		switch seg.Type {
		case PathMoveTo:
			if len(cur) > 0 {
				runs = append(runs, cur)
			}
			cur = []model.Point{seg.Point}
		case PathLineTo:
			cur = append(cur, seg.Point)
		}
	}
	if len(cur) > 0 {
		runs = append(runs, cur)
	}
	return runs
}

// Bounds returns the bounding box of every point on the path.
func (p *Path) Bounds() model.BBox {
	var pts []model.Point
	for _, seg := range p.Segments {
		pts = append(pts, seg.Point)
	}
	return model.BBoxOf(pts)
}

// Polyline builds a path through pts, starting a new subpath after every
// non-finite point. Runs shorter than two points are dropped since they
// draw nothing.
func Polyline(pts []model.Point) *Path {
	p := NewPath()
	run := make([]model.Point, 0, len(pts))
	flush := func() {
		if len(run) >= 2 {
			p.MoveTo(run[0].X, run[0].Y)
			for _, pt := range run[1:] {
				p.LineTo(pt.X, pt.Y)
			}
		}
		run = run[:0]
	}
	for _, pt := range pts {
		if !pt.IsFinite() {
			flush()
			continue
		}
		run = append(run, pt)
	}
	flush()
	return p
}
