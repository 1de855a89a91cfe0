package model

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidWindow is returned when a logical window has zero (or
	// negative) extent on either axis.
	ErrInvalidWindow = errors.New("invalid window")

	// ErrInvalidPlate is returned when a plate does not have positive
	// width and height.
	ErrInvalidPlate = errors.New("invalid plate")
)

// Plate is the physical output rectangle in millimetres.
type Plate struct {
	WidthMM  float64
	HeightMM float64
}

// Validate checks that both dimensions are positive.
func (p Plate) Validate() error {
	if !(p.WidthMM > 0) || !(p.HeightMM > 0) {
		return fmt.Errorf("%w: %gx%g mm", ErrInvalidPlate, p.WidthMM, p.HeightMM)
	}
	return nil
}

// Bounds returns the plate rectangle in page coordinates.
func (p Plate) Bounds() BBox {
	return NewBBox(0, 0, p.WidthMM, p.HeightMM)
}

// Range is a closed interval [Min, Max].
type Range struct {
	Min, Max float64
}

// Span returns Max - Min.
func (r Range) Span() float64 {
	return r.Max - r.Min
}

// Window is the logical data rectangle xlim × ylim that maps onto a plate.
type Window struct {
	X Range
	Y Range
}

// NewWindow creates a window from xlim and ylim pairs.
func NewWindow(x0, x1, y0, y1 float64) Window {
	return Window{X: Range{x0, x1}, Y: Range{y0, y1}}
}

// Validate reports ErrInvalidWindow unless x1 > x0 and y1 > y0.
func (w Window) Validate() error {
	if !(w.X.Max > w.X.Min) {
		return fmt.Errorf("%w: xlim (%g, %g)", ErrInvalidWindow, w.X.Min, w.X.Max)
	}
	if !(w.Y.Max > w.Y.Min) {
		return fmt.Errorf("%w: ylim (%g, %g)", ErrInvalidWindow, w.Y.Min, w.Y.Max)
	}
	return nil
}

// Contains reports whether (x, y) lies inside the window, edges included.
func (w Window) Contains(x, y float64) bool {
	return x >= w.X.Min && x <= w.X.Max && y >= w.Y.Min && y <= w.Y.Max
}
