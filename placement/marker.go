package placement

import (
	"math"

	"github.com/graftactil/graftactil/mapper"
	"github.com/graftactil/graftactil/model"
)

// Evaluator computes a function over a batch of x-values. Implementations
// return NaN or ±Inf where the function is undefined.
type Evaluator interface {
	EvalAll(xs []float64) []float64
}

// EvaluatorFunc adapts a scalar function to Evaluator.
type EvaluatorFunc func(x float64) float64

// EvalAll calls f for every x.
func (f EvaluatorFunc) EvalAll(xs []float64) []float64 {
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = f(x)
	}
	return ys
}

// Style selects the marker shape and size for one function.
type Style struct {
	Shape  Shape
	SizeMM float64
}

// Marker is one tactile marker placed on the plate.
type Marker struct {
	Shape  Shape
	SizeMM float64

	// Center is the marker centre in page millimetres (origin top-left,
	// Y down).
	Center model.Point

	// Sample is the logical point the marker represents.
	Sample model.Point

	// Index is the position of the sample in the x-value sequence it came
	// from, before undefined points were dropped.
	Index int
}

// PlaceSamples creates a marker for every (xs[i], ys[i]) pair whose
// coordinates are finite. Pairs beyond the shorter slice are ignored.
func PlaceSamples(m mapper.Mapper, xs, ys []float64, style Style) []Marker {
	n := len(xs)
	if len(ys) < n {
		n = len(ys)
	}
	markers := make([]Marker, 0, n)
	for i := 0; i < n; i++ {
		x, y := xs[i], ys[i]
		if !finite(x) || !finite(y) {
			continue
		}
		markers = append(markers, Marker{
			Shape:  style.Shape,
			SizeMM: style.SizeMM,
			Center: m.ToPhysical(x, y),
			Sample: model.Point{X: x, Y: y},
			Index:  i,
		})
	}
	return markers
}

// PlaceFunction evaluates f at xs and places the defined samples.
func PlaceFunction(m mapper.Mapper, f Evaluator, xs []float64, style Style) []Marker {
	if len(xs) == 0 {
		return nil
	}
	return PlaceSamples(m, xs, f.EvalAll(xs), style)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
