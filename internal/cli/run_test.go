package cli

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graftactil/graftactil/format"
)

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "params.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

const params = `{
	"functions": [
		{"expr": "sqrt(x)", "segments": [[-1, 3]], "densities": [5]}
	],
	"braille_labels": [{"text": "raiz", "position_mm": [-70, 45]}]
}`

func TestExecuteWritesOutputs(t *testing.T) {
	dir := t.TempDir()
	inv := Invocation{
		ConfigPath: writeConfig(t, dir, params),
		SVGPath:    filepath.Join(dir, "plate.svg"),
		STLPath:    filepath.Join(dir, "plate.stl"),
		PNGPath:    filepath.Join(dir, "plate.png"),
		Sections:   8,
	}

	var stderr bytes.Buffer
	res, err := Execute(context.Background(), inv, &stderr)
	require.NoError(t, err)
	assert.Equal(t, ExitSuccess, res.ExitCode)
	assert.Equal(t, []string{inv.SVGPath, inv.STLPath, inv.PNGPath}, res.Written)

	for _, p := range res.Written {
		info, err := os.Stat(p)
		require.NoError(t, err)
		assert.Greater(t, info.Size(), int64(0), p)
	}

	// sqrt(x) is undefined at x = -1
	require.Len(t, res.Warnings, 1)
	assert.Contains(t, stderr.String(), "warning: undefined samples")
}

func TestExecuteDefaultOutput(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "export.stl")
	body := fmt.Sprintf(`{"functions": ["x"], "output_filename": %q}`, out)

	res, err := Execute(context.Background(), Invocation{ConfigPath: writeConfig(t, dir, body)}, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, []string{out}, res.Written)
	assert.FileExists(t, out)
}

func TestExecuteDefaultOutputExtension(t *testing.T) {
	dir := t.TempDir()
	body := fmt.Sprintf(`{"functions": ["x"], "output_filename": %q}`, filepath.Join(dir, "export"))

	res, err := Execute(context.Background(), Invocation{ConfigPath: writeConfig(t, dir, body)}, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "export.stl")}, res.Written)
}

func TestVerifyOutput(t *testing.T) {
	dir := t.TempDir()
	svgPath := filepath.Join(dir, "plate.svg")
	require.NoError(t, os.WriteFile(svgPath, []byte("<?xml version=\"1.0\"?>\n<svg></svg>\n"), 0o644))

	assert.NoError(t, verifyOutput(svgPath, format.SVG))
	assert.Error(t, verifyOutput(svgPath, format.PNG))

	junk := filepath.Join(dir, "plate.stl")
	require.NoError(t, os.WriteFile(junk, []byte("not a model"), 0o644))
	assert.Error(t, verifyOutput(junk, format.STL))

	assert.Error(t, verifyOutput(filepath.Join(dir, "missing.png"), format.PNG))
}

func TestExecuteConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{"functions": [`},
		{"no functions", `{"functions": []}`},
		{"unknown identifier", `{"functions": ["__import__(x)"]}`},
		{"degenerate window", `{"functions": ["x"], "xlim": [2, 2], "ylim": [0, 1]}`},
		{"length mismatch", `{"functions": ["x", "x^2"], "marker_shapes": ["o"]}`},
		{"tick step too fine", `{"functions": ["x"], "xlim": [-7, 7], "ylim": [-7, 7], "tick_step": 1e-12}`},
		{"too many curve samples", `{"functions": ["x"], "n_curve_samples": 1000000000}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			svgPath := filepath.Join(dir, "out.svg")
			inv := Invocation{ConfigPath: writeConfig(t, dir, tt.body), SVGPath: svgPath}

			res, err := Execute(context.Background(), inv, &bytes.Buffer{})
			require.Error(t, err)
			assert.Equal(t, ExitConfigError, res.ExitCode)
			assert.NoFileExists(t, svgPath, "nothing is written for a bad configuration")
		})
	}
}

func TestExecuteMissingConfig(t *testing.T) {
	res, err := Execute(context.Background(), Invocation{ConfigPath: filepath.Join(t.TempDir(), "none.json")}, &bytes.Buffer{})
	require.Error(t, err)
	assert.Equal(t, ExitConfigError, res.ExitCode)
}

func TestExecuteUnwritableOutput(t *testing.T) {
	dir := t.TempDir()
	inv := Invocation{
		ConfigPath: writeConfig(t, dir, `{"functions": ["x"]}`),
		SVGPath:    filepath.Join(dir, "missing-dir", "out.svg"),
	}
	res, err := Execute(context.Background(), inv, &bytes.Buffer{})
	require.Error(t, err)
	assert.Equal(t, ExitInternalError, res.ExitCode)
}

func TestExecuteCancelled(t *testing.T) {
	dir := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	inv := Invocation{
		ConfigPath: writeConfig(t, dir, `{"functions": ["x"]}`),
		SVGPath:    filepath.Join(dir, "out.svg"),
	}
	res, err := Execute(ctx, inv, &bytes.Buffer{})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, ExitInternalError, res.ExitCode)
}

func TestExecuteOutputsByExtension(t *testing.T) {
	dir := t.TempDir()
	inv := Invocation{
		ConfigPath:  writeConfig(t, dir, params),
		Outputs:     []string{filepath.Join(dir, "a.svg"), filepath.Join(dir, "b.png")},
		PixelsPerMM: 1,
	}

	res, err := Execute(context.Background(), inv, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, inv.Outputs, res.Written)

	svg, err := os.ReadFile(inv.Outputs[0])
	require.NoError(t, err)
	assert.Contains(t, string(svg), "<svg")

	png, err := os.ReadFile(inv.Outputs[1])
	require.NoError(t, err)
	assert.Equal(t, "\x89PNG", string(png[:4]))
}
