package format

import (
	"bytes"
	"encoding/binary"
	"testing"
)

func TestFormat_String(t *testing.T) {
	tests := []struct {
		format Format
		want   string
	}{
		{SVG, "SVG"},
		{STL, "STL"},
		{PNG, "PNG"},
		{Unknown, "Unknown"},
		{Format(99), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.format.String(); got != tt.want {
			t.Errorf("Format(%d).String() = %q, want %q", tt.format, got, tt.want)
		}
	}
}

func TestFormat_Extension(t *testing.T) {
	tests := []struct {
		format Format
		want   string
	}{
		{SVG, ".svg"},
		{STL, ".stl"},
		{PNG, ".png"},
		{Unknown, ""},
	}

	for _, tt := range tests {
		if got := tt.format.Extension(); got != tt.want {
			t.Errorf("Format(%d).Extension() = %q, want %q", tt.format, got, tt.want)
		}
	}
}

func TestDetect(t *testing.T) {
	tests := []struct {
		filename string
		want     Format
	}{
		{"plate.svg", SVG},
		{"plate.SVG", SVG},
		{"plate.stl", STL},
		{"plate.Stl", STL},
		{"plate.png", PNG},
		{"plate.PNG", PNG},
		{"plate.pdf", Unknown},
		{"plate", Unknown},
		{"", Unknown},
		{"/path/to/grafica_export.stl", STL},
	}

	for _, tt := range tests {
		if got := Detect(tt.filename); got != tt.want {
			t.Errorf("Detect(%q) = %v, want %v", tt.filename, got, tt.want)
		}
	}
}

func TestDetectFromMagic(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want Format
	}{
		{
			name: "PNG signature",
			data: append(append([]byte{}, pngMagic...), 0, 0, 0, 13),
			want: PNG,
		},
		{
			name: "SVG with XML declaration",
			data: []byte("<?xml version=\"1.0\"?>\n<svg xmlns=\"http://www.w3.org/2000/svg\">"),
			want: SVG,
		},
		{
			name: "bare SVG with whitespace",
			data: []byte("  \n<svg width=\"10mm\">"),
			want: SVG,
		},
		{
			name: "XML that is not SVG",
			data: []byte("<?xml version=\"1.0\"?><html>"),
			want: Unknown,
		},
		{
			name: "ASCII STL",
			data: []byte("solid plate\n facet normal 0 0 1\n"),
			want: STL,
		},
		{
			name: "empty data",
			data: []byte{},
			want: Unknown,
		},
		{
			name: "text file",
			data: []byte("Hello, World!"),
			want: Unknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectFromMagic(tt.data); got != tt.want {
				t.Errorf("DetectFromMagic() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDetectFromReader_BinarySTL(t *testing.T) {
	data := make([]byte, 84+50*2)
	binary.LittleEndian.PutUint32(data[80:84], 2)

	format, err := DetectFromReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("DetectFromReader() error = %v", err)
	}
	if format != STL {
		t.Errorf("DetectFromReader() = %v, want STL", format)
	}

	// a truncated file does not match its triangle count
	format, err = DetectFromReader(bytes.NewReader(data[:120]), 120)
	if err != nil {
		t.Fatalf("DetectFromReader() error = %v", err)
	}
	if format != Unknown {
		t.Errorf("DetectFromReader() = %v, want Unknown", format)
	}
}

func TestDetectFromReader_SVG(t *testing.T) {
	data := []byte("<?xml version=\"1.0\"?>\n<svg></svg>\n")

	format, err := DetectFromReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("DetectFromReader() error = %v", err)
	}
	if format != SVG {
		t.Errorf("DetectFromReader() = %v, want SVG", format)
	}
}
