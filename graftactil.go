// Package graftactil turns plots of mathematical functions into tactile
// graphics: a layered SVG for embossers and cutters, an STL solid for 3D
// printing, and a PNG preview, all sharing one coordinate mapping so that a
// marker felt on the printed plate sits exactly where it is drawn.
//
// Basic usage:
//
//	warnings, err := graftactil.Open("params.json").SVG(w)
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", graftactil.FormatWarnings(warnings))
//	}
//
// With options:
//
//	_, err := graftactil.Open("params.json").
//	    OnlyMarkers().
//	    FoldDiacritics().
//	    Sections(32).
//	    STL(w)
//
// The lower-level packages (mapper, sampler, braille, placement) can be used
// directly for custom backends.
package graftactil

import (
	"github.com/graftactil/graftactil/config"
)

// Open returns a Generator that reads its configuration from a JSON file.
// The file is read by the first terminal operation.
//
// Example:
//
//	_, err := graftactil.Open("params.json").PNG(w)
func Open(filename string) *Generator {
	return &Generator{
		filename: filename,
		options:  defaultOptions(),
	}
}

// New returns a Generator for already parsed parameters.
//
// Example:
//
//	p, err := config.Parse(r)
//	if err != nil {
//	    // handle error
//	}
//	_, err = graftactil.New(p).SVG(w)
func New(p *config.Params) *Generator {
	g := &Generator{options: defaultOptions()}
	if p == nil {
		g.err = errNoParams
		return g
	}
	g.params = p
	return g
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	fig := graftactil.Must(graftactil.Open("params.json").Figure())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustWarn is like Must for calls that also return warnings. The warnings
// are discarded.
//
// Example:
//
//	s := graftactil.MustWarn(graftactil.Open("params.json").Scene())
func MustWarn[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
