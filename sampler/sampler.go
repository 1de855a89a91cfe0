// Package sampler produces the non-uniform x-values at which tactile
// markers are placed along a curve.
//
// A [Schedule] is an ordered list of (interval, count) pairs. Sampling
// walks the pairs in order and concatenates their points without sorting
// or removing duplicates, so two pairs that share an endpoint emit that
// x-value twice:
//
//	s := sampler.Schedule{
//	    {Interval: sampler.Interval{A: 0, B: 1}, Count: 2},
//	    {Interval: sampler.Interval{A: 1, B: 2}, Count: 2},
//	}
//	xs := s.Sample() // [0 1 1 2]
package sampler

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/graftactil/graftactil/model"
)

// ErrLengthMismatch is returned by NewSchedule when the number of intervals
// and the number of counts differ.
var ErrLengthMismatch = errors.New("segments and densities differ in length")

// Interval is the closed range [A, B] covered by one schedule entry.
type Interval struct {
	A, B float64
}

// Midpoint returns (A+B)/2.
func (iv Interval) Midpoint() float64 {
	return (iv.A + iv.B) / 2
}

// Segment pairs an interval with the number of points to place in it.
type Segment struct {
	Interval Interval
	Count    int
}

// Schedule is an ordered sequence of segments.
type Schedule []Segment

// NewSchedule zips interval bounds and counts into a Schedule.
func NewSchedule(intervals [][2]float64, counts []int) (Schedule, error) {
	if len(intervals) != len(counts) {
		return nil, fmt.Errorf("%w: %d segments, %d densities", ErrLengthMismatch, len(intervals), len(counts))
	}
	s := make(Schedule, len(intervals))
	for i, iv := range intervals {
		s[i] = Segment{Interval: Interval{A: iv[0], B: iv[1]}, Count: counts[i]}
	}
	return s, nil
}

// Len returns the number of x-values Sample will produce.
func (s Schedule) Len() int {
	n := 0
	for _, seg := range s {
		if seg.Count > 0 {
			n += seg.Count
		}
	}
	return n
}

// Sample flattens the schedule into x-values.
//
// Each segment contributes, in order:
//   - nothing when Count <= 0
//   - the interval midpoint when Count == 1
//   - Count evenly spaced points from A to B inclusive otherwise
func (s Schedule) Sample() []float64 {
	xs := make([]float64, 0, s.Len())
	for _, seg := range s {
		xs = appendSegment(xs, seg)
	}
	return xs
}

// Sample is a convenience wrapper for schedule.Sample().
func Sample(schedule Schedule) []float64 {
	return schedule.Sample()
}

func appendSegment(xs []float64, seg Segment) []float64 {
	switch {
	case seg.Count <= 0:
		return xs
	case seg.Count == 1:
		return append(xs, seg.Interval.Midpoint())
	}

	start := len(xs)
	xs = append(xs, make([]float64, seg.Count)...)
	pts := floats.Span(xs[start:], seg.Interval.A, seg.Interval.B)
	// pin both ends so shared boundaries repeat bit-for-bit
	pts[0] = seg.Interval.A
	pts[len(pts)-1] = seg.Interval.B
	return xs
}

// Uniform returns a one-segment schedule of n points across r.
func Uniform(r model.Range, n int) Schedule {
	return Schedule{{Interval: Interval{A: r.Min, B: r.Max}, Count: n}}
}
