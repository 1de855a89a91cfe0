package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/graftactil/graftactil/format"
)

const (
	ExitSuccess           = 0
	ExitInternalError     = 1
	ExitInvalidInvocation = 2
	ExitConfigError       = 3
)

// Invocation is the parsed command line.
type Invocation struct {
	ConfigPath string

	SVGPath string
	STLPath string
	PNGPath string

	// Outputs are -o paths whose format follows their extension.
	Outputs []string

	PixelsPerMM    float64
	Sections       int
	OnlyMarkers    bool
	FoldDiacritics bool
	Verbose        bool
}

// HasOutput reports whether any output file was requested.
func (inv Invocation) HasOutput() bool {
	return inv.SVGPath != "" || inv.STLPath != "" || inv.PNGPath != "" || len(inv.Outputs) > 0
}

// outputList collects repeated -o flags.
type outputList []string

func (o *outputList) String() string { return strings.Join(*o, ",") }

func (o *outputList) Set(v string) error {
	if format.Detect(v) == format.Unknown {
		return fmt.Errorf("%s: output must end in .svg, .stl or .png", v)
	}
	*o = append(*o, filepath.Clean(v))
	return nil
}

type InvocationError struct {
	ExitCode int
	Message  string
}

func (e *InvocationError) Error() string {
	if e == nil {
		return ""
	}
	return e.Message
}

func invalidInvocationf(format string, args ...any) error {
	return &InvocationError{ExitCode: ExitInvalidInvocation, Message: fmt.Sprintf(format, args...)}
}

func configErrorf(format string, args ...any) error {
	return &InvocationError{ExitCode: ExitConfigError, Message: fmt.Sprintf(format, args...)}
}

// Usage is printed for -h and after invocation errors.
const Usage = `usage: graftactil -config params.json [-svg out.svg] [-stl out.stl] [-png out.png]
                  [-o out.{svg,stl,png}]... [-px-per-mm n] [-sections n] [-only-markers] [-fold] [-v]

Without any output flag the STL model is written to the output_filename of the
configuration.`

// ParseInvocation parses command-line flags into an Invocation.
func ParseInvocation(args []string) (Invocation, error) {
	fs := flag.NewFlagSet("graftactil", flag.ContinueOnError)
	fs.SetOutput(io.Discard) // parsing errors are returned, not printed

	var inv Invocation
	fs.StringVar(&inv.ConfigPath, "config", "", "JSON configuration file. Required.")
	fs.StringVar(&inv.SVGPath, "svg", "", "Layered SVG output path.")
	fs.StringVar(&inv.STLPath, "stl", "", "Binary STL output path.")
	fs.StringVar(&inv.PNGPath, "png", "", "PNG preview output path.")
	var outputs outputList
	fs.Var(&outputs, "o", "Output path; the extension picks the format. Repeatable.")
	fs.Float64Var(&inv.PixelsPerMM, "px-per-mm", 0, "PNG resolution in pixels per millimetre.")
	fs.IntVar(&inv.Sections, "sections", 0, "Sides of each cylinder in the STL model.")
	fs.BoolVar(&inv.OnlyMarkers, "only-markers", false, "Omit the continuous curves.")
	fs.BoolVar(&inv.FoldDiacritics, "fold", false, "Strip accents from Braille labels.")
	fs.BoolVar(&inv.Verbose, "v", false, "Trace progress to the log.")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return Invocation{}, invalidInvocationf("%s", Usage)
		}
		return Invocation{}, invalidInvocationf("%v", err)
	}
	if fs.NArg() != 0 {
		return Invocation{}, invalidInvocationf("unexpected positional arguments: %q", strings.Join(fs.Args(), " "))
	}

	if strings.TrimSpace(inv.ConfigPath) == "" {
		return Invocation{}, invalidInvocationf("-config is required")
	}
	inv.ConfigPath = filepath.Clean(inv.ConfigPath)
	inv.Outputs = outputs

	for _, p := range []*string{&inv.SVGPath, &inv.STLPath, &inv.PNGPath} {
		if *p != "" {
			*p = filepath.Clean(*p)
		}
	}

	if inv.PixelsPerMM < 0 {
		return Invocation{}, invalidInvocationf("-px-per-mm must be positive (got %g)", inv.PixelsPerMM)
	}
	if inv.Sections != 0 && inv.Sections < 3 {
		return Invocation{}, invalidInvocationf("-sections must be at least 3 (got %d)", inv.Sections)
	}

	return inv, nil
}

// ExitCode extracts a semantic exit code from an error.
// If the error is not a known invocation error, it returns ExitInternalError.
func ExitCode(err error) int {
	var invErr *InvocationError
	if errors.As(err, &invErr) && invErr != nil {
		if invErr.ExitCode != 0 {
			return invErr.ExitCode
		}
		return ExitInvalidInvocation
	}
	if err == nil {
		return ExitSuccess
	}
	return ExitInternalError
}
