package graftactil

// RenderOptions holds overrides applied on top of the configuration.
type RenderOptions struct {
	// Output resolution of the PNG preview; 0 keeps the configured value
	pixelsPerMM float64

	// Sides of cylinders in the STL output; 0 uses the mesh default
	sections int

	// Name stored in the STL header
	name string

	// Overrides of configuration flags
	onlyMarkers    bool
	foldDiacritics bool
}

// defaultOptions returns the default render options.
func defaultOptions() RenderOptions {
	return RenderOptions{
		pixelsPerMM:    0,
		sections:       0,
		name:           "",
		onlyMarkers:    false,
		foldDiacritics: false,
	}
}

// clone creates a copy of RenderOptions.
func (o RenderOptions) clone() RenderOptions {
	return RenderOptions{
		pixelsPerMM:    o.pixelsPerMM,
		sections:       o.sections,
		name:           o.name,
		onlyMarkers:    o.onlyMarkers,
		foldDiacritics: o.foldDiacritics,
	}
}
