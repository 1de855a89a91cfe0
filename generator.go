package graftactil

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/npillmayer/schuko/tracing"

	"github.com/graftactil/graftactil/config"
	"github.com/graftactil/graftactil/format"
	"github.com/graftactil/graftactil/mesh"
	"github.com/graftactil/graftactil/raster"
	"github.com/graftactil/graftactil/scene"
	"github.com/graftactil/graftactil/svg"
)

// tracer traces with key 'graftactil'.
func tracer() tracing.Trace {
	return tracing.Select("graftactil")
}

var errNoParams = errors.New("no parameters given")

// Generator provides a fluent interface for producing tactile graphics.
// Each configuration method returns a new Generator instance, making it
// safe for concurrent use and allowing method chaining.
type Generator struct {
	// Source
	filename string
	params   *config.Params

	// Configuration
	options RenderOptions

	// Accumulated error (fail-fast)
	err error
}

// clone creates a shallow copy of the Generator with a copy of options.
// Params are shared and never modified.
func (g *Generator) clone() *Generator {
	return &Generator{
		filename: g.filename,
		params:   g.params,
		options:  g.options.clone(),
		err:      g.err,
	}
}

// ============================================================================
// Configuration Methods (return new Generator instance)
// ============================================================================

// OnlyMarkers omits the continuous curves, leaving just the markers.
//
// Example:
//
//	_, err := graftactil.Open("params.json").OnlyMarkers().SVG(w)
func (g *Generator) OnlyMarkers() *Generator {
	ng := g.clone()
	ng.options.onlyMarkers = true
	return ng
}

// FoldDiacritics strips accents from label text before Braille encoding,
// so "Función" is written as "Funcion".
//
// Example:
//
//	_, err := graftactil.Open("params.json").FoldDiacritics().STL(w)
func (g *Generator) FoldDiacritics() *Generator {
	ng := g.clone()
	ng.options.foldDiacritics = true
	return ng
}

// PixelsPerMM sets the resolution of the PNG preview.
//
// Example:
//
//	_, err := graftactil.Open("params.json").PixelsPerMM(8).PNG(w)
func (g *Generator) PixelsPerMM(v float64) *Generator {
	ng := g.clone()
	if !(v > 0) {
		ng.err = fmt.Errorf("%w: %g px/mm", config.ErrInvalid, v)
		return ng
	}
	ng.options.pixelsPerMM = v
	return ng
}

// Sections sets how many sides approximate a cylinder in the STL output.
//
// Example:
//
//	_, err := graftactil.Open("params.json").Sections(48).STL(w)
func (g *Generator) Sections(n int) *Generator {
	ng := g.clone()
	if n < 3 {
		ng.err = fmt.Errorf("%w: %d cylinder sections", config.ErrInvalid, n)
		return ng
	}
	ng.options.sections = n
	return ng
}

// Name sets the model name stored in the STL output.
func (g *Generator) Name(name string) *Generator {
	ng := g.clone()
	ng.options.name = name
	return ng
}

// ============================================================================
// Terminal Operations
// ============================================================================

// Figure loads, validates and resolves the configuration.
func (g *Generator) Figure() (*config.Figure, error) {
	if g.err != nil {
		return nil, g.err
	}
	p := g.params
	if p == nil {
		if g.filename == "" {
			return nil, errNoParams
		}
		var err error
		if p, err = config.Load(g.filename); err != nil {
			return nil, err
		}
	}

	fig, err := p.Resolve()
	if err != nil {
		return nil, err
	}
	if g.options.onlyMarkers {
		fig.OnlyMarkers = true
	}
	if g.options.foldDiacritics {
		fig.FoldDiacritics = true
	}
	if g.options.pixelsPerMM > 0 {
		fig.PixelsPerMM = g.options.pixelsPerMM
	}
	return fig, nil
}

// Scene lays out the plate and reports anything that will not show up as
// the configuration suggests.
func (g *Generator) Scene() (*scene.Scene, []Warning, error) {
	fig, err := g.Figure()
	if err != nil {
		return nil, nil, err
	}
	return layout(fig)
}

func layout(fig *config.Figure) (*scene.Scene, []Warning, error) {
	s, err := scene.Build(fig)
	if err != nil {
		return nil, nil, err
	}
	warnings := collectWarnings(s)
	for _, w := range warnings {
		tracer().Infof("%s", w)
	}
	return s, warnings, nil
}

// SVG writes the layered 2D drawing to w.
//
// Example:
//
//	f, _ := os.Create("plate.svg")
//	defer f.Close()
//	_, err := graftactil.Open("params.json").SVG(f)
func (g *Generator) SVG(w io.Writer) ([]Warning, error) {
	return g.write(w, func(w io.Writer, s *scene.Scene, _ *config.Figure) error {
		return svg.Write(w, s)
	})
}

// STL writes the 3D model to w as binary STL.
//
// Example:
//
//	f, _ := os.Create("plate.stl")
//	defer f.Close()
//	_, err := graftactil.Open("params.json").STL(f)
func (g *Generator) STL(w io.Writer) ([]Warning, error) {
	return g.write(w, func(w io.Writer, s *scene.Scene, _ *config.Figure) error {
		return mesh.Write(w, s, mesh.Options{Name: g.options.name, Sections: g.options.sections})
	})
}

// PNG writes a raster preview of the 2D drawing to w.
//
// Example:
//
//	f, _ := os.Create("plate.png")
//	defer f.Close()
//	_, err := graftactil.Open("params.json").PNG(f)
func (g *Generator) PNG(w io.Writer) ([]Warning, error) {
	return g.write(w, func(w io.Writer, s *scene.Scene, fig *config.Figure) error {
		return raster.Write(w, s, fig.PixelsPerMM)
	})
}

// WriteFile writes the output whose format matches the extension of path:
// ".svg", ".stl" or ".png". The configuration is validated before the file
// is created.
func (g *Generator) WriteFile(path string) ([]Warning, error) {
	var write func(io.Writer) ([]Warning, error)
	switch f := format.Detect(path); f {
	case format.SVG:
		write = g.SVG
	case format.STL:
		write = g.STL
	case format.PNG:
		write = g.PNG
	default:
		return nil, fmt.Errorf("%w: unsupported output format for %s", config.ErrInvalid, path)
	}
	if _, err := g.Figure(); err != nil {
		return nil, err
	}

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

type backend func(w io.Writer, s *scene.Scene, fig *config.Figure) error

func (g *Generator) write(w io.Writer, render backend) ([]Warning, error) {
	fig, err := g.Figure()
	if err != nil {
		return nil, err
	}
	s, warnings, err := layout(fig)
	if err != nil {
		return nil, err
	}
	if err := render(w, s, fig); err != nil {
		return warnings, err
	}
	return warnings, nil
}
