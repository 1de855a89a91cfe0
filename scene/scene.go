package scene

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"

	"github.com/graftactil/graftactil/braille"
	"github.com/graftactil/graftactil/config"
	"github.com/graftactil/graftactil/mapper"
	"github.com/graftactil/graftactil/model"
	"github.com/graftactil/graftactil/placement"
	"github.com/graftactil/graftactil/sampler"
)

// tracer traces with key 'graftactil.scene'.
func tracer() tracing.Trace {
	return tracing.Select("graftactil.scene")
}

// TickHalfLength is how far a tick mark extends on each side of its axis,
// in logical units.
const TickHalfLength = 0.12

// Line is a straight segment in page coordinates.
type Line struct {
	Start, End model.Point
}

// Curve is the continuous trace of one function.
type Curve struct {
	ID    string
	Style config.CurveStyle
	Path  *Path
}

// MarkerSet holds the markers placed for one function.
type MarkerSet struct {
	ID      string
	Markers []placement.Marker

	// Dropped counts samples that were undefined at their x-value.
	Dropped int
}

// Label is a Braille label with its dots laid out.
type Label struct {
	placement.Label

	// Origin is the label position in page coordinates.
	Origin model.Point
	Cells  []braille.Sequence
	Dots   []placement.Dot

	// Unmapped lists the characters written as blank cells for lack of a
	// Braille mapping.
	Unmapped []rune
}

// DotCenters returns the page position of every dot of the label.
func (l Label) DotCenters(plate model.Plate) []model.Point {
	pts := make([]model.Point, len(l.Dots))
	for i, d := range l.Dots {
		pts[i] = d.PageCenter(plate, l.Position)
	}
	return pts
}

// Scene is a fully laid out plate.
type Scene struct {
	Plate   model.Plate
	Mapper  mapper.Mapper
	Strokes config.Strokes
	Relief  config.Relief

	Grid    []Line
	Axes    []Line
	Ticks   []Line
	Curves  []Curve
	Markers []MarkerSet
	Labels  []Label
}

// Build lays out fig.
func Build(fig *config.Figure) (*Scene, error) {
	m, err := fig.Mapper()
	if err != nil {
		return nil, fmt.Errorf("building scene: %w", err)
	}

	s := &Scene{
		Plate:   fig.Plate,
		Mapper:  m,
		Strokes: fig.Strokes,
		Relief:  fig.Relief,
	}

	w := fig.Window
	xticks := mapper.Ticks(w.X, fig.TickStep)
	yticks := mapper.Ticks(w.Y, fig.TickStep)
	s.buildGrid(xticks, yticks)
	s.buildAxes(xticks, yticks)

	if !fig.OnlyMarkers {
		xs := sampler.Uniform(w.X, fig.CurveSamples).Sample()
		for _, f := range fig.Functions {
			s.Curves = append(s.Curves, Curve{
				ID:    f.ID,
				Style: f.Curve,
				Path:  s.trace(xs, f.Expr.EvalAll(xs)),
			})
		}
	}

	for _, f := range fig.Functions {
		xs := f.Schedule.Sample()
		markers := placement.PlaceFunction(m, f.Expr, xs, f.Marker)
		set := MarkerSet{ID: f.ID, Markers: markers, Dropped: len(xs) - len(markers)}
		if set.Dropped > 0 {
			tracer().Debugf("%s: dropped %d undefined samples", f.ID, set.Dropped)
		}
		tracer().Debugf("%s: %d markers (%s, %g mm)", f.ID, len(markers), f.Marker.Shape, f.Marker.SizeMM)
		s.Markers = append(s.Markers, set)
	}

	for _, l := range fig.Labels {
		s.Labels = append(s.Labels, layoutLabel(fig.Plate, l, fig.FoldDiacritics))
	}

	return s, nil
}

// buildGrid adds one vertical line per x tick and one horizontal line per
// y tick, each spanning the whole window.
func (s *Scene) buildGrid(xticks, yticks []float64) {
	w := s.Mapper.Window()
	for _, x := range xticks {
		s.Grid = append(s.Grid, Line{s.Mapper.ToPhysical(x, w.Y.Min), s.Mapper.ToPhysical(x, w.Y.Max)})
	}
	for _, y := range yticks {
		s.Grid = append(s.Grid, Line{s.Mapper.ToPhysical(w.X.Min, y), s.Mapper.ToPhysical(w.X.Max, y)})
	}
}

// buildAxes adds the x axis (y = 0) and the y axis (x = 0) when they cross
// the window, each with its tick marks.
func (s *Scene) buildAxes(xticks, yticks []float64) {
	w := s.Mapper.Window()
	if w.Y.Min <= 0 && w.Y.Max >= 0 {
		s.Axes = append(s.Axes, Line{s.Mapper.ToPhysical(w.X.Min, 0), s.Mapper.ToPhysical(w.X.Max, 0)})
		for _, x := range xticks {
			s.Ticks = append(s.Ticks, Line{
				s.Mapper.ToPhysical(x, TickHalfLength),
				s.Mapper.ToPhysical(x, -TickHalfLength),
			})
		}
	}
	if w.X.Min <= 0 && w.X.Max >= 0 {
		s.Axes = append(s.Axes, Line{s.Mapper.ToPhysical(0, w.Y.Min), s.Mapper.ToPhysical(0, w.Y.Max)})
		for _, y := range yticks {
			s.Ticks = append(s.Ticks, Line{
				s.Mapper.ToPhysical(TickHalfLength, y),
				s.Mapper.ToPhysical(-TickHalfLength, y),
			})
		}
	}
}

// trace maps the samples onto the page and joins them, breaking the path
// at undefined points.
func (s *Scene) trace(xs, ys []float64) *Path {
	pts := make([]model.Point, len(xs))
	for i := range xs {
		pts[i] = s.Mapper.ToPhysical(xs[i], ys[i])
	}
	return Polyline(pts)
}

func layoutLabel(plate model.Plate, l placement.Label, fold bool) Label {
	text := l.Text
	if fold {
		text = braille.Fold(text)
	}
	var unmapped []rune
	for _, r := range text {
		if r != '\n' && r != '\r' && !braille.IsEncodable(r) && !braille.IsSpacing(r) {
			tracer().Debugf("label %q: %q has no Braille mapping, writing a blank cell", l.Text, r)
			unmapped = append(unmapped, r)
		}
	}

	cells := l.Lines(fold)
	return Label{
		Label:    l,
		Origin:   mapper.FromSolid(plate, l.Position),
		Cells:    cells,
		Dots:     placement.LayoutCells(cells, l.Style.WithDefaults()),
		Unmapped: unmapped,
	}
}

// AllMarkers returns the markers of every function in order.
func (s *Scene) AllMarkers() []placement.Marker {
	var all []placement.Marker
	for _, set := range s.Markers {
		all = append(all, set.Markers...)
	}
	return all
}

// Solids returns the raised primitives of the 3D model: one per marker,
// then one per Braille dot. The base plate is not included.
func (s *Scene) Solids() []placement.Solid {
	var solids []placement.Solid
	t := s.Relief.PlateThickness
	for _, mk := range s.AllMarkers() {
		solids = append(solids, mk.Solid(s.Mapper, t, s.Relief.MarkerHeight))
	}
	for _, l := range s.Labels {
		for _, d := range l.Dots {
			solids = append(solids, d.Solid(l.Position, t, s.Relief.DotHeight))
		}
	}
	return solids
}
