package placement

import (
	"math"

	"github.com/graftactil/graftactil/braille"
	"github.com/graftactil/graftactil/mapper"
	"github.com/graftactil/graftactil/model"
)

// Default Braille geometry in millimetres.
const (
	DefaultDotDiameter = 1.5
	DefaultDotPitch    = 2.5
	DefaultCharPitch   = 3.0
	DefaultLinePitch   = 4.0
)

// LabelStyle holds the physical Braille geometry of a label.
type LabelStyle struct {
	DotDiameterMM float64 // diameter of one raised dot
	DotPitchMM    float64 // centre spacing of dots within a cell
	CharPitchMM   float64 // cursor advance per cell
	LinePitchMM   float64 // cursor drop per line
}

// DefaultLabelStyle returns the standard label geometry.
func DefaultLabelStyle() LabelStyle {
	return LabelStyle{
		DotDiameterMM: DefaultDotDiameter,
		DotPitchMM:    DefaultDotPitch,
		CharPitchMM:   DefaultCharPitch,
		LinePitchMM:   DefaultLinePitch,
	}
}

// WithDefaults fills any non-positive field with the default geometry.
func (s LabelStyle) WithDefaults() LabelStyle {
	d := DefaultLabelStyle()
	if !(s.DotDiameterMM > 0) {
		s.DotDiameterMM = d.DotDiameterMM
	}
	if !(s.DotPitchMM > 0) {
		s.DotPitchMM = d.DotPitchMM
	}
	if !(s.CharPitchMM > 0) {
		s.CharPitchMM = d.CharPitchMM
	}
	if !(s.LinePitchMM > 0) {
		s.LinePitchMM = d.LinePitchMM
	}
	return s
}

// Dot is one raised Braille dot. Offset is relative to the label origin in
// a Y-up frame, so row 0 of a cell sits above row 2.
type Dot struct {
	Offset     model.Point
	DiameterMM float64

	Line int // line index within the label
	Cell int // cell index within the line
	Num  int // dot number 1-6
}

// dotColumn and dotRow give the grid position of dots 1-6; row 0 is the top.
var (
	dotColumn = [7]float64{0, 0, 0, 0, 1, 1, 1}
	dotRow    = [7]float64{0, 0, 1, 2, 0, 1, 2}
)

// LayoutCells computes the dot offsets for encoded lines.
//
// Every cell, blank or not, advances the horizontal cursor by CharPitchMM,
// so a capital letter consumes two advances (sign cell and letter cell).
// Each line restarts the horizontal cursor and moves the vertical cursor
// down by LinePitchMM. Within a cell a dot is offset by
// ((col-0.5)·pitch, (1-row)·pitch) from the cursor.
func LayoutCells(lines []braille.Sequence, style LabelStyle) []Dot {
	var dots []Dot
	cursorY := 0.0
	for li, line := range lines {
		cursorX := 0.0
		for ci, cell := range line {
			for _, d := range cell.Dots() {
				dots = append(dots, Dot{
					Offset: model.Point{
						X: cursorX + (dotColumn[d]-0.5)*style.DotPitchMM,
						Y: cursorY + (1-dotRow[d])*style.DotPitchMM,
					},
					DiameterMM: style.DotDiameterMM,
					Line:       li,
					Cell:       ci,
					Num:        d,
				})
			}
			cursorX += style.CharPitchMM
		}
		cursorY -= style.LinePitchMM
	}
	return dots
}

// Label is a Braille label anchored on the plate.
type Label struct {
	Text string

	// Position is the label origin in plate-centred millimetres with Y up.
	// Labels are placed by absolute offset, independent of the data window.
	Position model.Point

	Style LabelStyle
}

// Lines encodes the label text, folding diacritics first when fold is set.
func (l Label) Lines(fold bool) []braille.Sequence {
	text := l.Text
	if fold {
		text = braille.Fold(text)
	}
	return braille.EncodeLines(text)
}

// Dots lays out the label relative to its own origin.
func (l Label) Dots(fold bool) []Dot {
	return LayoutCells(l.Lines(fold), l.Style.WithDefaults())
}

// PageCenter returns the page position of a dot belonging to a label
// anchored at origin (plate-centred, Y up) on plate.
func (d Dot) PageCenter(plate model.Plate, origin model.Point) model.Point {
	return mapper.FromSolid(plate, origin.Add(d.Offset))
}

// Solid returns the dot as a cylinder standing on a plate of the given
// thickness.
func (d Dot) Solid(origin model.Point, plateThickness, height float64) Solid {
	return Solid{
		Kind:   Cylinder,
		Center: origin.Add(d.Offset),
		Z:      plateThickness,
		Height: height,
		Radius: d.DiameterMM / 2,
	}
}

// circle returns n points on a circle, counter-clockwise from +X.
func circle(c model.Point, r float64, n int) []model.Point {
	if n < 3 {
		n = 3
	}
	pts := make([]model.Point, n)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = model.Point{X: c.X + r*math.Cos(a), Y: c.Y + r*math.Sin(a)}
	}
	return pts
}
