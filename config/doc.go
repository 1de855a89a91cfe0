// Package config reads the JSON description of a tactile graph and resolves
// it into the typed values used by the renderers.
//
// Two shapes of the functions list are accepted. The object form keeps
// everything about a curve together:
//
//	{
//	  "fig_size_mm": [173, 113],
//	  "auto_limits": true,
//	  "functions": [
//	    {"expr": "x**2", "shape": "s", "size_mm": 3,
//	     "segments": [[-3, -2], [-2, 2], [2, 3]], "densities": [6, 9, 6]}
//	  ],
//	  "braille_labels": [{"text": "y = x2", "position_mm": [40, 45]}]
//	}
//
// The parallel-array form lists plain expression strings in "functions" and
// the marker settings in "marker_shapes", "marker_sizes",
// "marker_segments", "marker_densities" and "curve_styles", one entry per
// function.
//
// [Parse] only decodes and applies defaults; [Params.Resolve] validates
// and compiles the expressions.
package config
