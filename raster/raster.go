package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/image/draw"
	"golang.org/x/image/vector"

	"github.com/graftactil/graftactil/model"
	"github.com/graftactil/graftactil/placement"
	"github.com/graftactil/graftactil/scene"
)

// tracer traces with key 'graftactil.raster'.
func tracer() tracing.Trace {
	return tracing.Select("graftactil.raster")
}

// DefaultPixelsPerMM is the preview resolution used when none is given.
const DefaultPixelsPerMM = 4.0

// circleSections is the number of sides used for round shapes.
const circleSections = 32

var (
	white     = color.RGBA{0xff, 0xff, 0xff, 0xff}
	black     = color.RGBA{0x00, 0x00, 0x00, 0xff}
	curveGrey = color.RGBA{0x22, 0x22, 0x22, 0xff}
	gridV     = color.RGBA{0xe6, 0xe6, 0xe6, 0xff}
	gridH     = color.RGBA{0xf5, 0xf5, 0xf5, 0xff}
)

// Render draws s at pxPerMM pixels per millimetre.
func Render(s *scene.Scene, pxPerMM float64) *image.RGBA {
	if !(pxPerMM > 0) {
		pxPerMM = DefaultPixelsPerMM
	}
	w := int(math.Ceil(s.Plate.WidthMM * pxPerMM))
	h := int(math.Ceil(s.Plate.HeightMM * pxPerMM))
	p := newPainter(w, h, pxPerMM)

	draw.Draw(p.img, p.img.Bounds(), image.NewUniform(white), image.Point{}, draw.Src)

	for _, l := range s.Grid {
		c := gridH
		if l.Start.X == l.End.X {
			c = gridV
		}
		p.line(l.Start, l.End, s.Strokes.Grid, c)
	}
	for _, l := range s.Axes {
		p.line(l.Start, l.End, s.Strokes.Axis, black)
	}
	for _, c := range s.Curves {
		for _, run := range c.Path.Subpaths() {
			for _, piece := range Dash(run, c.Style.Dashes()) {
				p.polyline(piece, s.Strokes.Curve, curveGrey)
			}
		}
	}
	for _, mk := range s.AllMarkers() {
		p.marker(mk.Outline(), s.Strokes.MarkerEdge)
	}
	for _, l := range s.Ticks {
		p.line(l.Start, l.End, s.Strokes.Axis, black)
	}
	for _, l := range s.Labels {
		for i, c := range l.DotCenters(s.Plate) {
			p.circle(c, l.Dots[i].DiameterMM/2, black)
		}
	}

	tracer().Debugf("raster: %dx%d px at %g px/mm", w, h, pxPerMM)
	return p.img
}

// Write renders s and encodes it as PNG.
func Write(w io.Writer, s *scene.Scene, pxPerMM float64) error {
	if err := png.Encode(w, Render(s, pxPerMM)); err != nil {
		return fmt.Errorf("writing png: %w", err)
	}
	return nil
}

// Dash splits a polyline into its visible pieces for an on/off pattern
// given in millimetres. A nil or all-zero pattern returns the run as is.
func Dash(run []model.Point, pattern []float64) [][]model.Point {
	total := 0.0
	for _, d := range pattern {
		total += d
	}
	if len(run) < 2 || !(total > 0) {
		return [][]model.Point{run}
	}

	var pieces [][]model.Point
	idx, left := 0, pattern[0] // current dash and what remains of it
	on := true
	cur := []model.Point{run[0]}

	for i := 1; i < len(run); i++ {
		a, b := run[i-1], run[i]
		seg := a.Distance(b)
		pos := 0.0
		for seg-pos > left {
			pos += left
			t := pos / seg
			q := model.Point{X: a.X + (b.X-a.X)*t, Y: a.Y + (b.Y-a.Y)*t}
			if on {
				cur = append(cur, q)
				pieces = append(pieces, cur)
				cur = nil
			} else {
				cur = []model.Point{q}
			}
			on = !on
			idx = (idx + 1) % len(pattern)
			left = pattern[idx]
		}
		left -= seg - pos
		if on {
			cur = append(cur, b)
		}
	}
	if on && len(cur) >= 2 {
		pieces = append(pieces, cur)
	}
	return pieces
}

type painter struct {
	img   *image.RGBA
	r     *vector.Rasterizer
	scale float64
	limit float64
}

func newPainter(w, h int, scale float64) *painter {
	return &painter{
		img:   image.NewRGBA(image.Rect(0, 0, w, h)),
		r:     vector.NewRasterizer(w, h),
		scale: scale,
		limit: 4 * float64(max(w, h)),
	}
}

// px converts page millimetres to pixels, clamped so that far off-plate
// points stay within float32 range.
func (p *painter) px(pt model.Point) (float32, float32) {
	clamp := func(v float64) float32 {
		return float32(math.Max(-p.limit, math.Min(p.limit, v*p.scale)))
	}
	return clamp(pt.X), clamp(pt.Y)
}

func (p *painter) fill(pts []model.Point, c color.Color) {
	if len(pts) < 3 {
		return
	}
	b := p.img.Bounds()
	p.r.Reset(b.Dx(), b.Dy())
	p.r.DrawOp = draw.Over
	x, y := p.px(pts[0])
	p.r.MoveTo(x, y)
	for _, pt := range pts[1:] {
		x, y = p.px(pt)
		p.r.LineTo(x, y)
	}
	p.r.ClosePath()
	p.r.Draw(p.img, b, image.NewUniform(c), image.Point{})
}

// line fills the quad of the given width around a-b.
func (p *painter) line(a, b model.Point, width float64, c color.Color) {
	d := a.Distance(b)
	if !(d > 0) || !a.IsFinite() || !b.IsFinite() {
		return
	}
	// at least one pixel wide so hairlines stay visible
	hw := math.Max(width, 1/p.scale) / 2
	nx, ny := -(b.Y-a.Y)/d*hw, (b.X-a.X)/d*hw
	p.fill([]model.Point{
		{X: a.X + nx, Y: a.Y + ny},
		{X: b.X + nx, Y: b.Y + ny},
		{X: b.X - nx, Y: b.Y - ny},
		{X: a.X - nx, Y: a.Y - ny},
	}, c)
}

func (p *painter) polyline(run []model.Point, width float64, c color.Color) {
	for i := 1; i < len(run); i++ {
		p.line(run[i-1], run[i], width, c)
	}
}

func (p *painter) circle(center model.Point, r float64, c color.Color) {
	if !(r > 0) {
		return
	}
	pts := make([]model.Point, circleSections)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / circleSections
		pts[i] = model.Point{X: center.X + r*math.Cos(a), Y: center.Y + r*math.Sin(a)}
	}
	p.fill(pts, c)
}

// marker draws a white shape with a black edge of the given width by
// filling the outline black and its inset white.
func (p *painter) marker(o placement.Outline, edge float64) {
	switch o.Kind {
	case placement.Rect:
		p.fill(corners(o.Box), black)
		if inner := o.Box.Expand(-edge); inner.IsValid() {
			p.fill(corners(inner), white)
		}
	case placement.Polygon:
		p.fill(o.Vertices, black)
		side := o.Vertices[0].Distance(o.Vertices[1])
		// insetting an equilateral triangle by e shortens its side by 2√3·e
		if inner := side - 2*math.Sqrt(3)*edge; inner > 0 {
			v := placement.TriangleVertices(model.Centroid(o.Vertices), inner)
			p.fill(v[:], white)
		}
	default:
		p.circle(o.Center, o.Radius, black)
		p.circle(o.Center, o.Radius-edge, white)
	}
}

func corners(b model.BBox) []model.Point {
	return []model.Point{
		{X: b.Left(), Y: b.Top()},
		{X: b.Right(), Y: b.Top()},
		{X: b.Right(), Y: b.Bottom()},
		{X: b.Left(), Y: b.Bottom()},
	}
}
