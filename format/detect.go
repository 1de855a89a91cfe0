// Package format provides output format detection for graftactil files.
package format

import (
	"bytes"
	"encoding/binary"
	"io"
	"path/filepath"
	"strings"
)

// Format represents a supported output format.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// SVG indicates a layered 2D drawing.
	SVG
	// STL indicates a 3D solid model.
	STL
	// PNG indicates a raster preview.
	PNG
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case SVG:
		return "SVG"
	case STL:
		return "STL"
	case PNG:
		return "PNG"
	default:
		return "Unknown"
	}
}

// Extension returns the typical file extension for the format.
func (f Format) Extension() string {
	switch f {
	case SVG:
		return ".svg"
	case STL:
		return ".stl"
	case PNG:
		return ".png"
	default:
		return ""
	}
}

// Detect determines file format from filename extension.
func Detect(filename string) Format {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".svg":
		return SVG
	case ".stl":
		return STL
	case ".png":
		return PNG
	default:
		return Unknown
	}
}

var pngMagic = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

// DetectFromMagic checks leading bytes to determine format.
// Binary STL has no signature, so it is reported as Unknown here; use
// DetectFromReader, which can check its length.
func DetectFromMagic(data []byte) Format {
	if len(data) < 4 {
		return Unknown
	}

	if bytes.HasPrefix(data, pngMagic) {
		return PNG
	}

	if detectSVGMagic(data) {
		return SVG
	}

	// ASCII STL: "solid <name>" followed by facets
	if bytes.HasPrefix(data, []byte("solid")) && bytes.Contains(data, []byte("facet")) {
		return STL
	}

	return Unknown
}

// detectSVGMagic checks if the data looks like an SVG document.
func detectSVGMagic(data []byte) bool {
	// Trim leading whitespace
	data = bytes.TrimLeft(data, " \t\r\n")
	if len(data) == 0 {
		return false
	}

	lower := strings.ToLower(string(data[:min(512, len(data))]))
	if strings.HasPrefix(lower, "<svg") {
		return true
	}
	// XML declaration followed by an svg root
	if strings.HasPrefix(lower, "<?xml") && strings.Contains(lower, "<svg") {
		return true
	}

	return false
}

// DetectFromReader inspects the content to determine format. Besides the
// signatures known to DetectFromMagic it recognises binary STL, whose
// triangle count at offset 80 must match the size of the data.
func DetectFromReader(r io.ReaderAt, size int64) (Format, error) {
	magic := make([]byte, 512)
	n, err := r.ReadAt(magic, 0)
	if err != nil && err != io.EOF {
		return Unknown, err
	}
	magic = magic[:n]

	if f := DetectFromMagic(magic); f != Unknown {
		return f, nil
	}

	if len(magic) >= 84 {
		count := binary.LittleEndian.Uint32(magic[80:84])
		if int64(84)+50*int64(count) == size {
			return STL, nil
		}
	}

	return Unknown, nil
}
