package scene

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graftactil/graftactil/config"
	"github.com/graftactil/graftactil/mapper"
	"github.com/graftactil/graftactil/model"
	"github.com/graftactil/graftactil/placement"
)

func buildScene(t *testing.T, js string) *Scene {
	t.Helper()
	p, err := config.Parse(strings.NewReader(js))
	require.NoError(t, err)
	fig, err := p.Resolve()
	require.NoError(t, err)
	s, err := Build(fig)
	require.NoError(t, err)
	return s
}

// ============================================================================
// Grid, axes, ticks
// ============================================================================

func TestBuildGridAndAxes(t *testing.T) {
	s := buildScene(t, `{"functions": ["x"]}`)

	// auto window for 173x113 is [-5.5, 5.5] x [-3.5, 3.5], tick 0.5
	assert.Len(t, s.Grid, 23+15)
	assert.Len(t, s.Axes, 2)
	assert.Len(t, s.Ticks, 23+15)

	xAxis := s.Axes[0]
	assert.InDelta(t, 0, xAxis.Start.X, 1e-9)
	assert.InDelta(t, 173, xAxis.End.X, 1e-9)
	assert.InDelta(t, 56.5, xAxis.Start.Y, 1e-9)

	yAxis := s.Axes[1]
	assert.InDelta(t, 86.5, yAxis.Start.X, 1e-9)
	assert.InDelta(t, 113, yAxis.Start.Y, 1e-9)
	assert.InDelta(t, 0, yAxis.End.Y, 1e-9)

	// first tick crosses the x axis at x = -5.5
	tick := s.Ticks[0]
	assert.InDelta(t, 0, tick.Start.X, 1e-9)
	assert.Less(t, tick.Start.Y, 56.5)
	assert.Greater(t, tick.End.Y, 56.5)
}

func TestAxesOutsideWindow(t *testing.T) {
	s := buildScene(t, `{"functions": ["x"], "xlim": [1, 5], "ylim": [-2, 2], "tick_step": 1}`)

	require.Len(t, s.Axes, 1, "only the x axis crosses the window")
	assert.InDelta(t, s.Axes[0].Start.Y, s.Axes[0].End.Y, 1e-9)
	assert.Len(t, s.Ticks, 5)
	assert.Len(t, s.Grid, 5+5)
}

// ============================================================================
// Curves
// ============================================================================

func TestCurvesBreakAtUndefinedPoints(t *testing.T) {
	s := buildScene(t, `{"functions": ["x", "sqrt(x^2 - 1)"], "n_curve_samples": 200}`)
	require.Len(t, s.Curves, 2)

	runs := s.Curves[0].Path.Subpaths()
	require.Len(t, runs, 1)
	assert.Len(t, runs[0], 200)

	runs = s.Curves[1].Path.Subpaths()
	require.Len(t, runs, 2, "sqrt(x^2-1) is undefined on (-1, 1)")
	for _, run := range runs {
		for _, p := range run {
			assert.True(t, p.IsFinite())
		}
	}
}

func TestOnlyMarkersSkipsCurves(t *testing.T) {
	s := buildScene(t, `{"functions": ["x"], "only_markers": true}`)
	assert.Empty(t, s.Curves)
	assert.NotEmpty(t, s.AllMarkers())
}

func TestPolyline(t *testing.T) {
	nan := model.Point{X: 1, Y: math.NaN()}
	pts := []model.Point{{X: 0, Y: 0}, {X: 1, Y: 1}, nan, {X: 2, Y: 2}, nan, {X: 3, Y: 3}, {X: 4, Y: 4}, {X: 5, Y: 5}}

	p := Polyline(pts)
	runs := p.Subpaths()
	require.Len(t, runs, 2, "single-point run is dropped")
	assert.Len(t, runs[0], 2)
	assert.Len(t, runs[1], 3)
	assert.Equal(t, model.NewBBox(0, 0, 5, 5), p.Bounds())
}

func TestPathLineTo(t *testing.T) {
	p := NewPath()
	assert.True(t, p.IsEmpty())

	p.LineTo(5, 5)
	require.Len(t, p.Segments, 1)
	assert.Equal(t, PathMoveTo, p.Segments[0].Type, "first LineTo starts a subpath")

	p.LineTo(6, 7)
	assert.Equal(t, PathLineTo, p.Segments[1].Type)
	assert.Equal(t, model.Point{X: 6, Y: 7}, p.CurrentPoint)
	assert.Equal(t, [][]model.Point{{{X: 5, Y: 5}, {X: 6, Y: 7}}}, p.Subpaths())
}

// ============================================================================
// Markers
// ============================================================================

func TestMarkersDropUndefinedSamples(t *testing.T) {
	s := buildScene(t, `{"functions": [{"expr": "sqrt(x)", "segments": [[-2, 2]], "densities": [5]}]}`)

	require.Len(t, s.Markers, 1)
	set := s.Markers[0]
	assert.Equal(t, "f1", set.ID)
	assert.Equal(t, 2, set.Dropped)
	require.Len(t, set.Markers, 3)
	assert.Equal(t, 2, set.Markers[0].Index)
	assert.Equal(t, s.Mapper.ToPhysical(0, 0), set.Markers[0].Center)
}

func TestMarkerFootprintsAgree(t *testing.T) {
	s := buildScene(t, `{
		"functions": [
			{"expr": "x", "shape": "o"},
			{"expr": "x^2", "shape": "s"},
			{"expr": "x^3", "shape": "^"}
		]
	}`)

	markers := s.AllMarkers()
	solids := s.Solids()
	require.NotEmpty(t, markers)
	require.Len(t, solids, len(markers))

	for i, mk := range markers {
		sol := solids[i]
		back := mapper.FromSolid(s.Plate, sol.Center)
		assert.InDelta(t, mk.Outline().Center.X, back.X, 1e-9)
		assert.InDelta(t, mk.Outline().Center.Y, back.Y, 1e-9)
		assert.Equal(t, s.Relief.PlateThickness, sol.Z)
		assert.Equal(t, s.Relief.MarkerHeight, sol.Height)
	}
	assert.Equal(t, placement.Box, solids[len(s.Markers[0].Markers)].Kind)
}

// ============================================================================
// Labels
// ============================================================================

func TestLabelLayout(t *testing.T) {
	s := buildScene(t, `{
		"functions": ["x"],
		"braille_labels": [{"text": "ab", "position_mm": [0, 0]}]
	}`)

	require.Len(t, s.Labels, 1)
	l := s.Labels[0]
	assert.Equal(t, model.Point{X: 86.5, Y: 56.5}, l.Origin)
	require.Len(t, l.Cells, 1)
	assert.Len(t, l.Dots, 3)

	centers := l.DotCenters(s.Plate)
	// dot 1 of the first cell sits up and to the left of the origin
	assert.InDelta(t, 85.25, centers[0].X, 1e-9)
	assert.InDelta(t, 55.25, centers[0].Y, 1e-9)

	solids := s.Solids()
	assert.Len(t, solids, len(s.AllMarkers())+3)
	dot := solids[len(solids)-1]
	assert.Equal(t, placement.Cylinder, dot.Kind)
	assert.InDelta(t, placement.DefaultDotDiameter/2, dot.Radius, 1e-12)
	assert.Equal(t, s.Relief.DotHeight, dot.Height)
}

func TestLabelFolding(t *testing.T) {
	s := buildScene(t, `{
		"functions": ["x"],
		"fold_diacritics": true,
		"braille_labels": [{"text": "é", "position_mm": [10, 10]}]
	}`)
	require.Len(t, s.Labels, 1)
	assert.Equal(t, "⠑", s.Labels[0].Cells[0].String())
	assert.Empty(t, s.Labels[0].Unmapped)

	s = buildScene(t, `{
		"functions": ["x"],
		"braille_labels": [{"text": "é", "position_mm": [10, 10]}]
	}`)
	assert.True(t, s.Labels[0].Cells[0][0].IsBlank())
	assert.Empty(t, s.Labels[0].Dots)
	assert.Equal(t, []rune{'é'}, s.Labels[0].Unmapped)
}
