package braille

import "strings"

// spacing lists the punctuation written as a plain blank cell. Any other
// unmapped rune is also blank; the set exists so callers can tell
// deliberate spacing from unsupported characters.
var spacing = map[rune]bool{
	' ': true, ',': true, '.': true, ';': true, '-': true,
	'_': true, '/': true, '(': true, ')': true, ':': true,
}

// IsSpacing reports whether r is punctuation that encodes as a blank cell.
func IsSpacing(r rune) bool {
	return spacing[r]
}

// IsEncodable reports whether r has a letter or digit mapping.
func IsEncodable(r rune) bool {
	_, isLetter := Letter(r)
	_, isDigit := Digit(r)
	return isLetter || isDigit
}

// Encode converts one line of text into cells.
//
// A run of consecutive ASCII digits is written as one number sign followed
// by the digits as letters a-j. The run ends at the first non-digit, so
// "3-4" yields two number signs with a blank between them. Uppercase ASCII
// letters get a capital sign each; everything else without a mapping is a
// blank cell. Line breaks are not treated specially; use EncodeLines for
// multi-line text.
func Encode(line string) Sequence {
	cells := make(Sequence, 0, len(line))
	inNumber := false
	for _, r := range line {
		if c, ok := Digit(r); ok {
			if !inNumber {
				cells = append(cells, NumberSign)
				inNumber = true
			}
			cells = append(cells, c)
			continue
		}
		inNumber = false

		if c, ok := Letter(r); ok {
			if r >= 'A' && r <= 'Z' {
				cells = append(cells, CapitalSign)
			}
			cells = append(cells, c)
			continue
		}

		cells = append(cells, Blank)
	}
	return cells
}

// EncodeLines splits text on line breaks ("\n" or "\r\n") and encodes each
// line independently. Empty text yields no lines.
func EncodeLines(text string) []Sequence {
	if text == "" {
		return nil
	}
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	out := make([]Sequence, len(lines))
	for i, line := range lines {
		out[i] = Encode(line)
	}
	return out
}
