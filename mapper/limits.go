package mapper

import (
	"fmt"
	"math"

	"github.com/graftactil/graftactil/model"
)

// AutoWindow derives a symmetric window from the plate size so that one
// tick step of the data covers roughly stepMM millimetres of plate.
//
// The number of whole steps that fit along each axis is halved (rounding
// down) and multiplied by tickStep to give the half-range. An axis too
// short for a single pair of steps falls back to a half-range of
// max(1, 2*tickStep).
func AutoWindow(plate model.Plate, stepMM, tickStep float64) (model.Window, error) {
	if err := plate.Validate(); err != nil {
		return model.Window{}, err
	}
	if !(stepMM > 0) || !(tickStep > 0) {
		return model.Window{}, fmt.Errorf("%w: step %g mm, tick %g", model.ErrInvalidWindow, stepMM, tickStep)
	}

	rx := halfRange(plate.WidthMM, stepMM, tickStep)
	ry := halfRange(plate.HeightMM, stepMM, tickStep)
	return model.NewWindow(-rx, rx, -ry, ry), nil
}

func halfRange(lengthMM, stepMM, tickStep float64) float64 {
	divisions := math.Max(1, math.Floor(lengthMM/stepMM))
	r := math.Floor(divisions/2) * tickStep
	if r == 0 {
		r = math.Max(1, tickStep*2)
	}
	return r
}

// Ticks returns the tick values from r.Min to r.Max inclusive, every step.
// A small tolerance keeps the upper bound when step does not divide the
// range exactly in floating point.
func Ticks(r model.Range, step float64) []float64 {
	if !(step > 0) || r.Max < r.Min {
		return nil
	}
	n := int(math.Floor((r.Max-r.Min)/step+1e-9)) + 1
	ticks := make([]float64, n)
	for i := range ticks {
		ticks[i] = r.Min + float64(i)*step
	}
	return ticks
}
