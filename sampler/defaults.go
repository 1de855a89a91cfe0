package sampler

import "github.com/graftactil/graftactil/model"

// Built-in schedules for curves with no explicit segments. The first is a
// coarse single pass; the other two concentrate markers on [-3, 3] where
// low-degree polynomials bend most and are easiest to tell apart by touch.

// coarseCount is the number of markers in the single-pass schedule.
const coarseCount = 35

type band struct {
	lo, hi float64
	count  int
}

var quadraticSegments = []band{
	{-3, -2, 10},
	{-2, -1, 7},
	{-1, 1, 7},
	{1, 2, 7},
	{2, 3, 10},
}

var cubicSegments = []band{
	{-2, -1.5, 10},
	{-1.5, -1, 6},
	{-1, 1, 6},
	{1, 1.5, 6},
	{1.5, 2, 10},
}

// Coarse returns the single-pass default schedule across xlim.
func Coarse(xlim model.Range) Schedule {
	return Uniform(xlim, coarseCount)
}

// Quadratic returns the dense default schedule tuned for parabola-like
// curves: one marker at the left edge of the window, clusters around ±2.5
// and the origin, and a repeated marker at 3.
func Quadratic(xlim model.Range) Schedule {
	return dense(xlim, quadraticSegments)
}

// Cubic returns the dense default schedule tuned for cubic-like curves,
// which leave a ±7 window quickly and so need markers within ±2.
func Cubic(xlim model.Range) Schedule {
	return dense(xlim, cubicSegments)
}

// Defaults returns the three built-in schedules in order.
func Defaults(xlim model.Range) []Schedule {
	return []Schedule{Coarse(xlim), Quadratic(xlim), Cubic(xlim)}
}

// Default returns the built-in schedule for the i-th function, cycling
// through Defaults.
func Default(i int, xlim model.Range) Schedule {
	d := Defaults(xlim)
	if i < 0 {
		i = -i
	}
	return d[i%len(d)]
}

// dense wraps segs with a single-point segment on each side. The left one
// sits on the window edge; the right one repeats the end of the last band,
// so the rightmost x-value appears twice.
func dense(xlim model.Range, segs []band) Schedule {
	s := make(Schedule, 0, len(segs)+2)
	last := segs[len(segs)-1].hi
	s = append(s, Segment{Interval: Interval{A: xlim.Min, B: xlim.Min}, Count: 1})
	for _, seg := range segs {
		s = append(s, Segment{Interval: Interval{A: seg.lo, B: seg.hi}, Count: seg.count})
	}
	s = append(s, Segment{Interval: Interval{A: last, B: last}, Count: 1})
	return s
}
