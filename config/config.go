package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'graftactil.config'.
func tracer() tracing.Trace {
	return tracing.Select("graftactil.config")
}

var (
	// ErrNoFunctions is returned when the configuration lists no function.
	ErrNoFunctions = errors.New("no functions provided")

	// ErrLengthMismatch is returned when a per-function array does not have
	// one entry per function.
	ErrLengthMismatch = errors.New("per-function list length mismatch")

	// ErrInvalid is wrapped by every other validation failure.
	ErrInvalid = errors.New("invalid configuration")
)

// Defaults carried over from the reference tool.
const (
	DefaultWidthMM          = 173.0
	DefaultHeightMM         = 113.0
	DefaultStepMM           = 7.45
	DefaultTickStep         = 0.5
	DefaultPlateThicknessMM = 0.8
	DefaultMarkerHeightMM   = 0.8
	DefaultDotHeightMM      = 0.6
	DefaultCurveSamples     = 800
	DefaultGridStrokeMM     = 0.25
	DefaultAxisStrokeMM     = 0.6
	DefaultCurveStrokeMM    = 0.9
	DefaultMarkerEdgeMM     = 0.2
	DefaultMarkerSizeMM     = 3.0
	DefaultPixelsPerMM      = 4.0
)

// Params mirrors the JSON configuration.
type Params struct {
	FigSizeMM  []float64 `json:"fig_size_mm"`
	XLim       []float64 `json:"xlim"`
	YLim       []float64 `json:"ylim"`
	AutoLimits bool      `json:"auto_limits"`
	StepMM     float64   `json:"step_mm"`
	TickStep   float64   `json:"tick_step"`

	PlateThicknessMM float64 `json:"plate_thickness_mm"`
	MarkerHeightMM   float64 `json:"marker_height_mm"`
	DotHeightMM      float64 `json:"dot_height_mm"`

	NCurveSamples      int     `json:"n_curve_samples"`
	OnlyMarkers        bool    `json:"only_markers"`
	GridStrokeMM       float64 `json:"grid_stroke_mm"`
	AxisStrokeMM       float64 `json:"axis_stroke_mm"`
	CurveStrokeMM      float64 `json:"curve_stroke_mm"`
	MarkerEdgeStrokeMM float64 `json:"marker_edge_stroke_mm"`
	PixelsPerMM        float64 `json:"px_per_mm"`
	FoldDiacritics     bool    `json:"fold_diacritics"`

	Functions []Function `json:"functions"`
	Labels    []Label    `json:"braille_labels"`

	// Parallel-array form, one entry per function.
	MarkerShapes    []string       `json:"marker_shapes"`
	MarkerSizes     []float64      `json:"marker_sizes"`
	MarkerSizesMM   []float64      `json:"marker_sizes_mm"`
	MarkerSegments  [][][2]float64 `json:"marker_segments"`
	MarkerDensities [][]int        `json:"marker_densities"`
	CurveStyles     []string       `json:"curve_styles"`

	OutputFilename string `json:"output_filename"`
}

// Function describes one curve and its markers.
type Function struct {
	ID        string       `json:"id"`
	Expr      string       `json:"expr"`
	Shape     string       `json:"shape"`
	SizeMM    float64      `json:"size_mm"`
	Segments  [][2]float64 `json:"segments"`
	Densities []int        `json:"densities"`
	Style     string       `json:"style"`
}

// UnmarshalJSON accepts either an expression string or an object.
func (f *Function) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		*f = Function{Expr: s}
		return nil
	}
	type plain Function
	var p plain
	if err := json.Unmarshal(trimmed, &p); err != nil {
		return err
	}
	*f = Function(p)
	return nil
}

// Label describes one Braille label.
type Label struct {
	Text          string     `json:"text"`
	PositionMM    [2]float64 `json:"position_mm"`
	DotDiameterMM float64    `json:"dot_diameter_mm"`
	DotSpacingMM  float64    `json:"dot_spacing_mm"`
	CharSpacingMM float64    `json:"char_spacing_mm"`
	LineSpacingMM float64    `json:"line_spacing_mm"`
}

// Load reads and parses a configuration file.
func Load(path string) (*Params, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening config: %w", err)
	}
	defer f.Close()

	p, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// Parse decodes a configuration, merges the parallel-array form into
// Functions and fills unset values with defaults.
func Parse(r io.Reader) (*Params, error) {
	var p Params
	dec := json.NewDecoder(r)
	if err := dec.Decode(&p); err != nil {
		return nil, fmt.Errorf("%w: decoding: %w", ErrInvalid, err)
	}
	if err := p.mergeParallel(); err != nil {
		return nil, err
	}
	p.applyDefaults()
	return &p, nil
}

// mergeParallel copies the per-function arrays into Functions. Values
// already set on a function object take precedence.
func (p *Params) mergeParallel() error {
	n := len(p.Functions)
	sizes := p.MarkerSizes
	if len(sizes) == 0 {
		sizes = p.MarkerSizesMM
	}

	check := func(key string, l int) error {
		if l != 0 && l != n {
			return fmt.Errorf("%w: %q has %d entries for %d functions", ErrLengthMismatch, key, l, n)
		}
		return nil
	}
	for _, c := range []struct {
		key string
		l   int
	}{
		{"marker_shapes", len(p.MarkerShapes)},
		{"marker_sizes", len(sizes)},
		{"marker_segments", len(p.MarkerSegments)},
		{"marker_densities", len(p.MarkerDensities)},
		{"curve_styles", len(p.CurveStyles)},
	} {
		if err := check(c.key, c.l); err != nil {
			return err
		}
	}

	for i := range p.Functions {
		f := &p.Functions[i]
		if f.Shape == "" && len(p.MarkerShapes) > 0 {
			f.Shape = p.MarkerShapes[i]
		}
		if f.SizeMM == 0 && len(sizes) > 0 {
			f.SizeMM = sizes[i]
		}
		if f.Segments == nil && len(p.MarkerSegments) > 0 {
			f.Segments = p.MarkerSegments[i]
		}
		if f.Densities == nil && len(p.MarkerDensities) > 0 {
			f.Densities = p.MarkerDensities[i]
		}
		if f.Style == "" && len(p.CurveStyles) > 0 {
			f.Style = p.CurveStyles[i]
		}
	}
	return nil
}

func (p *Params) applyDefaults() {
	if len(p.FigSizeMM) == 0 {
		p.FigSizeMM = []float64{DefaultWidthMM, DefaultHeightMM}
	}
	setDefault(&p.StepMM, DefaultStepMM)
	setDefault(&p.TickStep, DefaultTickStep)
	setDefault(&p.PlateThicknessMM, DefaultPlateThicknessMM)
	setDefault(&p.MarkerHeightMM, DefaultMarkerHeightMM)
	setDefault(&p.DotHeightMM, DefaultDotHeightMM)
	setDefault(&p.GridStrokeMM, DefaultGridStrokeMM)
	setDefault(&p.AxisStrokeMM, DefaultAxisStrokeMM)
	setDefault(&p.CurveStrokeMM, DefaultCurveStrokeMM)
	setDefault(&p.MarkerEdgeStrokeMM, DefaultMarkerEdgeMM)
	setDefault(&p.PixelsPerMM, DefaultPixelsPerMM)
	if p.NCurveSamples <= 0 {
		p.NCurveSamples = DefaultCurveSamples
	}
	for i := range p.Functions {
		f := &p.Functions[i]
		if f.ID == "" {
			f.ID = fmt.Sprintf("f%d", i+1)
		}
		if f.Shape == "" {
			f.Shape = "o"
		}
		setDefault(&f.SizeMM, DefaultMarkerSizeMM)
		if f.Style == "" {
			f.Style = "solid"
		}
	}
}

func setDefault(v *float64, def float64) {
	if *v == 0 {
		*v = def
	}
}
