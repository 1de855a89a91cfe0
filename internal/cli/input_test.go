package cli

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInvocation(t *testing.T) {
	inv, err := ParseInvocation([]string{
		"-config", "configs/../params.json",
		"-svg", "out/./plate.svg",
		"-png", "plate.png",
		"-px-per-mm", "8",
		"-sections", "32",
		"-only-markers",
		"-fold",
		"-v",
	})
	require.NoError(t, err)

	assert.Equal(t, "params.json", inv.ConfigPath)
	assert.Equal(t, filepath.Join("out", "plate.svg"), inv.SVGPath)
	assert.Equal(t, "", inv.STLPath)
	assert.Equal(t, "plate.png", inv.PNGPath)
	assert.Equal(t, 8.0, inv.PixelsPerMM)
	assert.Equal(t, 32, inv.Sections)
	assert.True(t, inv.OnlyMarkers)
	assert.True(t, inv.FoldDiacritics)
	assert.True(t, inv.Verbose)
	assert.True(t, inv.HasOutput())
}

func TestParseInvocationOutputs(t *testing.T) {
	inv, err := ParseInvocation([]string{
		"-config", "params.json",
		"-o", "out/../plate.svg",
		"-o", "plate.STL",
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"plate.svg", "plate.STL"}, inv.Outputs)
	assert.True(t, inv.HasOutput())
}

func TestParseInvocationErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"missing config", []string{"-svg", "a.svg"}},
		{"unknown flag", []string{"-config", "p.json", "-pdf", "a.pdf"}},
		{"positional", []string{"-config", "p.json", "extra"}},
		{"negative resolution", []string{"-config", "p.json", "-px-per-mm", "-1"}},
		{"too few sections", []string{"-config", "p.json", "-sections", "2"}},
		{"unknown output extension", []string{"-config", "p.json", "-o", "plate.pdf"}},
		{"help", []string{"-h"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseInvocation(tt.args)
			require.Error(t, err)

			var invErr *InvocationError
			require.True(t, errors.As(err, &invErr))
			assert.Equal(t, ExitInvalidInvocation, invErr.ExitCode)
			assert.Equal(t, ExitInvalidInvocation, ExitCode(err))
		})
	}
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, ExitSuccess, ExitCode(nil))
	assert.Equal(t, ExitInternalError, ExitCode(errors.New("boom")))
	assert.Equal(t, ExitConfigError, ExitCode(configErrorf("bad")))
	assert.Equal(t, ExitInvalidInvocation, ExitCode(&InvocationError{Message: "no code"}))
}
