package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/npillmayer/schuko/tracing"

	"github.com/graftactil/graftactil"
	"github.com/graftactil/graftactil/config"
	"github.com/graftactil/graftactil/expr"
	"github.com/graftactil/graftactil/format"
	"github.com/graftactil/graftactil/model"
)

// tracer traces with key 'graftactil.cli'.
func tracer() tracing.Trace {
	return tracing.Select("graftactil.cli")
}

// tracerKeys lists every package tracer raised to debug level by -v.
var tracerKeys = []string{
	"graftactil",
	"graftactil.config",
	"graftactil.scene",
	"graftactil.svg",
	"graftactil.mesh",
	"graftactil.raster",
	"graftactil.cli",
}

// defaultOutput is the STL name used when neither the command line nor the
// configuration names an output.
const defaultOutput = "out_model.stl"

// Result describes a finished run.
type Result struct {
	ExitCode int
	Written  []string
	Warnings []graftactil.Warning
}

// Execute loads the configuration and writes every requested output.
// Warnings are printed to stderr; they do not change the exit code.
func Execute(ctx context.Context, inv Invocation, stderr io.Writer) (Result, error) {
	if inv.Verbose {
		for _, key := range tracerKeys {
			tracing.Select(key).SetTraceLevel(tracing.LevelDebug)
		}
	}

	params, err := config.Load(inv.ConfigPath)
	if err != nil {
		return fail(classify(err))
	}

	g := graftactil.New(params)
	if inv.OnlyMarkers {
		g = g.OnlyMarkers()
	}
	if inv.FoldDiacritics {
		g = g.FoldDiacritics()
	}
	if inv.PixelsPerMM > 0 {
		g = g.PixelsPerMM(inv.PixelsPerMM)
	}
	if inv.Sections > 0 {
		g = g.Sections(inv.Sections)
	}
	// validate before creating any file
	if _, err := g.Figure(); err != nil {
		return fail(classify(err))
	}

	if !inv.HasOutput() {
		name := params.OutputFilename
		if name == "" {
			name = defaultOutput
		}
		if filepath.Ext(name) == "" {
			name += format.STL.Extension()
		}
		inv.STLPath = filepath.Clean(name)
	}

	type output struct {
		path   string
		format format.Format
		write  func(path string) ([]graftactil.Warning, error)
	}
	outputs := []output{
		{inv.SVGPath, format.SVG, writeWith(g.SVG)},
		{inv.STLPath, format.STL, writeWith(g.STL)},
		{inv.PNGPath, format.PNG, writeWith(g.PNG)},
	}
	for _, path := range inv.Outputs {
		outputs = append(outputs, output{path, format.Detect(path), g.WriteFile})
	}

	var res Result
	for _, out := range outputs {
		if out.path == "" {
			continue
		}
		if err := ctx.Err(); err != nil {
			return fail(err)
		}
		warnings, err := out.write(out.path)
		if err != nil {
			return fail(err)
		}
		if err := verifyOutput(out.path, out.format); err != nil {
			return fail(err)
		}
		res.Written = append(res.Written, out.path)
		if res.Warnings == nil {
			res.Warnings = warnings
		}
	}

	for _, w := range res.Warnings {
		fmt.Fprintf(stderr, "warning: %s\n", w)
	}
	return res, nil
}

func fail(err error) (Result, error) {
	return Result{ExitCode: ExitCode(err)}, err
}

// classify turns configuration problems into config errors; anything else
// is returned unchanged.
func classify(err error) error {
	switch {
	case errors.Is(err, fs.ErrNotExist),
		errors.Is(err, config.ErrInvalid),
		errors.Is(err, config.ErrNoFunctions),
		errors.Is(err, config.ErrLengthMismatch),
		errors.Is(err, model.ErrInvalidWindow),
		errors.Is(err, model.ErrInvalidPlate),
		errors.Is(err, expr.ErrSyntax),
		errors.Is(err, expr.ErrUnknownIdentifier),
		errors.Is(err, expr.ErrEmpty):
		return configErrorf("%v", err)
	}
	return err
}

// verifyOutput reads back a written file and checks that its content is
// recognised as the expected format.
func verifyOutput(path string, want format.Format) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("verifying %s: %w", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("verifying %s: %w", path, err)
	}
	got, err := format.DetectFromReader(f, info.Size())
	if err != nil {
		return fmt.Errorf("verifying %s: %w", path, err)
	}
	if got != want {
		return fmt.Errorf("verifying %s: content is %v, expected %v", path, got, want)
	}
	tracer().Debugf("%s: %v, %d bytes", path, got, info.Size())
	return nil
}

// writeWith writes one output to a file regardless of its extension.
func writeWith(write func(io.Writer) ([]graftactil.Warning, error)) func(string) ([]graftactil.Warning, error) {
	return func(path string) ([]graftactil.Warning, error) {
		return writeFile(path, write)
	}
}

func writeFile(path string, write func(io.Writer) ([]graftactil.Warning, error)) ([]graftactil.Warning, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", path, err)
	}
	warnings, err := write(f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return nil, fmt.Errorf("writing %s: %w", path, err)
	}
	return warnings, nil
}
