package placement

import "strings"

// Shape is the outline used for a curve marker.
type Shape int

const (
	// FallbackCircle is used for any unrecognised shape tag. It draws like
	// Circle.
	FallbackCircle Shape = iota
	// Circle is an open ring of outer radius size/2.
	Circle
	// Square is an axis-aligned square of side size.
	Square
	// Triangle is an equilateral triangle of side size, apex up, centred
	// on its centroid.
	Triangle
)

// String returns the canonical tag for the shape.
func (s Shape) String() string {
	switch s {
	case Circle:
		return "circle"
	case Square:
		return "square"
	case Triangle:
		return "triangle"
	default:
		return "fallback-circle"
	}
}

// ParseShape maps a shape tag to a Shape. It accepts the matplotlib-style
// single characters used by older configuration files as well as names.
// Unknown tags map to FallbackCircle rather than failing.
func ParseShape(tag string) Shape {
	switch strings.ToLower(strings.TrimSpace(tag)) {
	case "o", "circle", "c":
		return Circle
	case "s", "square", "box", "rect":
		return Square
	case "^", "triangle", "tri":
		return Triangle
	default:
		return FallbackCircle
	}
}
