package sampler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graftactil/graftactil/model"
)

func sched(t *testing.T, intervals [][2]float64, counts []int) Schedule {
	t.Helper()
	s, err := NewSchedule(intervals, counts)
	require.NoError(t, err)
	return s
}

func TestSample(t *testing.T) {
	tests := []struct {
		name      string
		intervals [][2]float64
		counts    []int
		want      []float64
	}{
		{"five evenly spaced", [][2]float64{{0, 10}}, []int{5}, []float64{0, 2.5, 5, 7.5, 10}},
		{"midpoint rule", [][2]float64{{0, 4}}, []int{1}, []float64{2}},
		{"shared boundary repeats", [][2]float64{{0, 1}, {1, 2}}, []int{2, 2}, []float64{0, 1, 1, 2}},
		{"zero count skipped", [][2]float64{{0, 1}, {5, 6}}, []int{0, 2}, []float64{5, 6}},
		{"negative count skipped", [][2]float64{{0, 1}, {5, 6}}, []int{-3, 1}, []float64{5.5}},
		{"order preserved", [][2]float64{{3, 4}, {-1, 1}}, []int{2, 3}, []float64{3, 4, -1, 0, 1}},
		{"degenerate interval", [][2]float64{{2, 2}}, []int{3}, []float64{2, 2, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := sched(t, tt.intervals, tt.counts)
			assert.Equal(t, tt.want, s.Sample())
			assert.Equal(t, len(tt.want), s.Len())
		})
	}
}

func TestSampleEmpty(t *testing.T) {
	assert.Empty(t, Sample(nil))
	assert.Empty(t, Sample(Schedule{{Interval: Interval{A: 0, B: 1}, Count: 0}}))
}

func TestSampleEndpointsExact(t *testing.T) {
	s := sched(t, [][2]float64{{-7, 0.1}, {0.1, 7}}, []int{13, 17})
	xs := s.Sample()
	require.Len(t, xs, 30)
	assert.Equal(t, -7.0, xs[0])
	assert.Equal(t, 0.1, xs[12])
	assert.Equal(t, 0.1, xs[13])
	assert.Equal(t, 7.0, xs[29])
}

func TestNewScheduleLengthMismatch(t *testing.T) {
	_, err := NewSchedule([][2]float64{{0, 1}}, []int{1, 2})
	assert.ErrorIs(t, err, ErrLengthMismatch)
}

func TestDefaults(t *testing.T) {
	xlim := model.Range{Min: -7, Max: 7}
	d := Defaults(xlim)
	require.Len(t, d, 3)

	coarse := d[0].Sample()
	assert.Len(t, coarse, 35)
	assert.Equal(t, -7.0, coarse[0])
	assert.Equal(t, 7.0, coarse[34])

	quad := d[1].Sample()
	assert.Len(t, quad, 1+10+7+7+7+10+1)
	assert.Equal(t, -7.0, quad[0], "left tail marker sits on the window edge")
	assert.Equal(t, -3.0, quad[1])
	assert.Equal(t, 3.0, quad[len(quad)-2])
	assert.Equal(t, 3.0, quad[len(quad)-1], "right tail repeats the last band end")

	cubic := d[2].Sample()
	assert.Len(t, cubic, 1+10+6+6+6+10+1)
	assert.Equal(t, -7.0, cubic[0])
	assert.Equal(t, 2.0, cubic[len(cubic)-1])

	// apart from the left edge, dense schedules stay within [-3, 3]
	inside := 0
	for _, x := range quad {
		if x >= -3 && x <= 3 {
			inside++
		}
	}
	assert.Equal(t, len(quad)-1, inside)

	// the left tail follows the window
	assert.Equal(t, -5.5, Quadratic(model.Range{Min: -5.5, Max: 5.5}).Sample()[0])
}

func TestDefaultCycles(t *testing.T) {
	xlim := model.Range{Min: -5.5, Max: 5.5}
	assert.Equal(t, Coarse(xlim), Default(0, xlim))
	assert.Equal(t, Quadratic(xlim), Default(1, xlim))
	assert.Equal(t, Cubic(xlim), Default(2, xlim))
	assert.Equal(t, Coarse(xlim), Default(3, xlim))
}
