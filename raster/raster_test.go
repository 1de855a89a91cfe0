package raster

import (
	"bytes"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graftactil/graftactil/config"
	"github.com/graftactil/graftactil/model"
	"github.com/graftactil/graftactil/scene"
)

func buildScene(t *testing.T, js string) *scene.Scene {
	t.Helper()
	p, err := config.Parse(strings.NewReader(js))
	require.NoError(t, err)
	fig, err := p.Resolve()
	require.NoError(t, err)
	s, err := scene.Build(fig)
	require.NoError(t, err)
	return s
}

func gray(c color.Color) uint8 {
	return color.GrayModel.Convert(c).(color.Gray).Y
}

func TestRender(t *testing.T) {
	s := buildScene(t, `{
		"only_markers": true,
		"marker_edge_stroke_mm": 0.5,
		"functions": [{"expr": "x", "shape": "o", "size_mm": 8, "segments": [[2, 2]], "densities": [1]}],
		"braille_labels": [{"text": "a", "position_mm": [-40, 30], "dot_diameter_mm": 2}]
	}`)
	img := Render(s, 4)

	assert.Equal(t, 692, img.Bounds().Dx())
	assert.Equal(t, 452, img.Bounds().Dy())

	// plate corner away from grid lines
	assert.Equal(t, uint8(0xff), gray(img.At(1, 2)))

	// the x axis runs along page y = 56.5 mm
	assert.Less(t, gray(img.At(20, 226)), uint8(0x80))

	// the marker for (2, 2) is hollow: white centre, dark rim from 14 to
	// 16 px out
	c := s.Mapper.ToPhysical(2, 2)
	cy := int(c.Y * 4)
	assert.Equal(t, uint8(0xff), gray(img.At(int(c.X*4), cy)))
	assert.Less(t, gray(img.At(int(c.X*4+15), cy)), uint8(0x80))

	// dot 1 of "a" sits at (-41.25, 31.25) in plate-centred millimetres
	dot := model.Point{X: -41.25 + 86.5, Y: 56.5 - 31.25}
	assert.Less(t, gray(img.At(int(dot.X*4), int(dot.Y*4))), uint8(0x40))
}

func TestRenderDefaultsResolution(t *testing.T) {
	s := buildScene(t, `{"fig_size_mm": [10, 5], "xlim": [-1, 1], "ylim": [-1, 1], "functions": ["x"]}`)
	img := Render(s, 0)
	assert.Equal(t, 40, img.Bounds().Dx())
	assert.Equal(t, 20, img.Bounds().Dy())
}

func TestRenderHugeValues(t *testing.T) {
	s := buildScene(t, `{"functions": ["exp(x^2)", "1/x"], "xlim": [-40, 40]}`)
	assert.NotPanics(t, func() { Render(s, 1) })
}

func TestWrite(t *testing.T) {
	s := buildScene(t, `{"fig_size_mm": [20, 10], "functions": ["x"]}`)
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, s, 2))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 40, img.Bounds().Dx())
	assert.Equal(t, 20, img.Bounds().Dy())
}

func TestDash(t *testing.T) {
	run := []model.Point{{X: 0, Y: 0}, {X: 20, Y: 0}}

	pieces := Dash(run, []float64{6, 3})
	require.Len(t, pieces, 3)
	assert.Equal(t, []model.Point{{X: 0, Y: 0}, {X: 6, Y: 0}}, pieces[0])
	assert.Equal(t, []model.Point{{X: 9, Y: 0}, {X: 15, Y: 0}}, pieces[1])
	assert.Equal(t, []model.Point{{X: 18, Y: 0}, {X: 20, Y: 0}}, pieces[2])

	assert.Equal(t, [][]model.Point{run}, Dash(run, nil))

	// a dash may bend around a vertex
	bent := []model.Point{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 10}}
	pieces = Dash(bent, []float64{6, 3})
	require.NotEmpty(t, pieces)
	assert.Equal(t, []model.Point{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 4}}, pieces[0])
}
