package config

import (
	"fmt"
	"math"
	"strings"

	"github.com/graftactil/graftactil/expr"
	"github.com/graftactil/graftactil/mapper"
	"github.com/graftactil/graftactil/model"
	"github.com/graftactil/graftactil/placement"
	"github.com/graftactil/graftactil/sampler"
)

// CurveStyle is the stroke pattern of a continuous curve.
type CurveStyle int

const (
	Solid CurveStyle = iota
	Dashed
	Dotted
	DashDot
)

// Limits on generated geometry. A configuration that would exceed them is
// rejected with ErrInvalid instead of exhausting memory.
const (
	MaxTicks         = 10000  // per axis
	MaxCurveSamples  = 100000 // n_curve_samples
	MaxMarkerSamples = 100000 // markers per function
)

// ParseCurveStyle maps a style name to a CurveStyle. It accepts the
// matplotlib line codes used by older configuration files. Unknown names
// are solid.
func ParseCurveStyle(s string) CurveStyle {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dash", "dashed", "--":
		return Dashed
	case "dot", "dotted", ":":
		return Dotted
	case "dashdot", "dash-dot", "-.":
		return DashDot
	default:
		return Solid
	}
}

// DashArray returns the SVG dash pattern in millimetres, or "" for solid.
func (c CurveStyle) DashArray() string {
	switch c {
	case Dashed:
		return "6,3"
	case Dotted:
		return "1,3"
	case DashDot:
		return "6,3,1,3"
	}
	return ""
}

// Dashes returns the on/off dash lengths in millimetres, or nil for solid.
func (c CurveStyle) Dashes() []float64 {
	switch c {
	case Dashed:
		return []float64{6, 3}
	case Dotted:
		return []float64{1, 3}
	case DashDot:
		return []float64{6, 3, 1, 3}
	}
	return nil
}

// FunctionSpec is a resolved curve.
type FunctionSpec struct {
	ID       string
	Expr     *expr.Expr
	Marker   placement.Style
	Schedule sampler.Schedule
	Curve    CurveStyle
}

// Strokes holds line widths of the 2D diagram in millimetres.
type Strokes struct {
	Grid       float64
	Axis       float64
	Curve      float64
	MarkerEdge float64
}

// Relief holds heights of the 3D model in millimetres.
type Relief struct {
	PlateThickness float64
	MarkerHeight   float64
	DotHeight      float64
}

// Figure is a validated, fully typed configuration.
type Figure struct {
	Plate     model.Plate
	Window    model.Window
	TickStep  float64
	Functions []FunctionSpec
	Labels    []placement.Label

	FoldDiacritics bool
	OnlyMarkers    bool
	CurveSamples   int
	PixelsPerMM    float64
	Strokes        Strokes
	Relief         Relief
}

// Mapper returns the coordinate mapper for the figure.
func (f *Figure) Mapper() (mapper.Mapper, error) {
	return mapper.New(f.Window, f.Plate)
}

// Resolve validates the parameters, derives the window and compiles every
// expression.
func (p *Params) Resolve() (*Figure, error) {
	if len(p.Functions) == 0 {
		return nil, ErrNoFunctions
	}
	if len(p.FigSizeMM) != 2 {
		return nil, fmt.Errorf("%w: fig_size_mm needs 2 values, got %d", ErrInvalid, len(p.FigSizeMM))
	}
	plate := model.Plate{WidthMM: p.FigSizeMM[0], HeightMM: p.FigSizeMM[1]}
	if err := plate.Validate(); err != nil {
		return nil, err
	}

	window, err := p.window(plate)
	if err != nil {
		return nil, err
	}
	if err := checkTicks(window, p.TickStep); err != nil {
		return nil, err
	}
	if p.NCurveSamples > MaxCurveSamples {
		return nil, fmt.Errorf("%w: n_curve_samples %d exceeds %d", ErrInvalid, p.NCurveSamples, MaxCurveSamples)
	}

	fig := &Figure{
		Plate:          plate,
		Window:         window,
		TickStep:       p.TickStep,
		FoldDiacritics: p.FoldDiacritics,
		OnlyMarkers:    p.OnlyMarkers,
		CurveSamples:   p.NCurveSamples,
		PixelsPerMM:    p.PixelsPerMM,
		Strokes: Strokes{
			Grid:       p.GridStrokeMM,
			Axis:       p.AxisStrokeMM,
			Curve:      p.CurveStrokeMM,
			MarkerEdge: p.MarkerEdgeStrokeMM,
		},
		Relief: Relief{
			PlateThickness: p.PlateThicknessMM,
			MarkerHeight:   p.MarkerHeightMM,
			DotHeight:      p.DotHeightMM,
		},
	}

	for i, f := range p.Functions {
		spec, err := f.resolve(i, window)
		if err != nil {
			return nil, fmt.Errorf("function %d (%s): %w", i+1, f.ID, err)
		}
		fig.Functions = append(fig.Functions, spec)
	}

	for _, l := range p.Labels {
		fig.Labels = append(fig.Labels, l.resolve())
	}

	return fig, nil
}

// checkTicks rejects a tick step that is not positive or that would put
// more than MaxTicks ticks on either axis.
func checkTicks(w model.Window, step float64) error {
	if !(step > 0) || math.IsInf(step, 0) {
		return fmt.Errorf("%w: tick_step %g", ErrInvalid, step)
	}
	for _, r := range []model.Range{w.X, w.Y} {
		if n := r.Span() / step; !(n <= MaxTicks) {
			return fmt.Errorf("%w: tick_step %g gives more than %d ticks on [%g, %g]",
				ErrInvalid, step, MaxTicks, r.Min, r.Max)
		}
	}
	return nil
}

// window picks explicit limits where given and fills the rest from the
// plate size and grid step.
func (p *Params) window(plate model.Plate) (model.Window, error) {
	var auto model.Window
	needAuto := p.AutoLimits || len(p.XLim) == 0 || len(p.YLim) == 0
	if needAuto {
		w, err := mapper.AutoWindow(plate, p.StepMM, p.TickStep)
		if err != nil {
			return model.Window{}, err
		}
		auto = w
		tracer().Debugf("auto limits xlim=%v ylim=%v", auto.X, auto.Y)
	}
	if p.AutoLimits {
		return auto, nil
	}

	w := auto
	if len(p.XLim) > 0 {
		if len(p.XLim) != 2 {
			return model.Window{}, fmt.Errorf("%w: xlim needs 2 values, got %d", ErrInvalid, len(p.XLim))
		}
		w.X = model.Range{Min: p.XLim[0], Max: p.XLim[1]}
	}
	if len(p.YLim) > 0 {
		if len(p.YLim) != 2 {
			return model.Window{}, fmt.Errorf("%w: ylim needs 2 values, got %d", ErrInvalid, len(p.YLim))
		}
		w.Y = model.Range{Min: p.YLim[0], Max: p.YLim[1]}
	}
	if err := w.Validate(); err != nil {
		return model.Window{}, err
	}
	return w, nil
}

func (f Function) resolve(i int, window model.Window) (FunctionSpec, error) {
	e, err := expr.Compile(f.Expr)
	if err != nil {
		return FunctionSpec{}, err
	}

	var sched sampler.Schedule
	if len(f.Segments) == 0 && len(f.Densities) == 0 {
		sched = sampler.Default(i, window.X)
	} else {
		sched, err = sampler.NewSchedule(f.Segments, f.Densities)
		if err != nil {
			return FunctionSpec{}, fmt.Errorf("%w: %w", ErrLengthMismatch, err)
		}
	}
	total := 0
	for _, seg := range sched {
		if seg.Count > MaxMarkerSamples-total {
			return FunctionSpec{}, fmt.Errorf("%w: more than %d markers", ErrInvalid, MaxMarkerSamples)
		}
		if seg.Count > 0 {
			total += seg.Count
		}
	}
	if !(f.SizeMM > 0) {
		return FunctionSpec{}, fmt.Errorf("%w: marker size %g mm", ErrInvalid, f.SizeMM)
	}

	return FunctionSpec{
		ID:       f.ID,
		Expr:     e,
		Marker:   placement.Style{Shape: placement.ParseShape(f.Shape), SizeMM: f.SizeMM},
		Schedule: sched,
		Curve:    ParseCurveStyle(f.Style),
	}, nil
}

func (l Label) resolve() placement.Label {
	return placement.Label{
		Text:     l.Text,
		Position: model.Point{X: l.PositionMM[0], Y: l.PositionMM[1]},
		Style: placement.LabelStyle{
			DotDiameterMM: l.DotDiameterMM,
			DotPitchMM:    l.DotSpacingMM,
			CharPitchMM:   l.CharSpacingMM,
			LinePitchMM:   l.LineSpacingMM,
		}.WithDefaults(),
	}
}
