package braille

import (
	"strings"
)

// Cell is a six-dot Braille cell. Bit i set means dot i+1 is raised, which
// matches the Unicode Braille Patterns block, so Cell(0x2800+c) is the
// printable form.
type Cell uint8

// Well-known cells.
const (
	Blank       Cell = 0
	CapitalSign Cell = 1 << 5                    // dot 6
	NumberSign  Cell = 1<<2 | 1<<3 | 1<<4 | 1<<5 // dots 3,4,5,6
	allDots     Cell = 1<<0 | 1<<1 | 1<<2 | 1<<3 | 1<<4 | 1<<5
)

// NewCell builds a cell from dot numbers. Numbers outside 1-6 are ignored.
func NewCell(dots ...int) Cell {
	var c Cell
	for _, d := range dots {
		if d >= 1 && d <= 6 {
			c |= 1 << uint(d-1)
		}
	}
	return c
}

// Has reports whether dot d is raised.
func (c Cell) Has(d int) bool {
	if d < 1 || d > 6 {
		return false
	}
	return c&(1<<uint(d-1)) != 0
}

// Dots returns the raised dot numbers in ascending order.
func (c Cell) Dots() []int {
	dots := make([]int, 0, 6)
	for d := 1; d <= 6; d++ {
		if c.Has(d) {
			dots = append(dots, d)
		}
	}
	return dots
}

// IsBlank reports whether no dot is raised.
func (c Cell) IsBlank() bool {
	return c&allDots == 0
}

// Rune returns the Unicode Braille Patterns character for the cell.
func (c Cell) Rune() rune {
	return rune(0x2800 + int(c&allDots))
}

// String returns the Unicode Braille Patterns character for the cell.
func (c Cell) String() string {
	return string(c.Rune())
}

// Sequence is an ordered run of cells making up one line of text.
type Sequence []Cell

// String renders the sequence as Unicode Braille.
func (s Sequence) String() string {
	var b strings.Builder
	for _, c := range s {
		b.WriteRune(c.Rune())
	}
	return b.String()
}

// DotCount returns the total number of raised dots in the sequence.
func (s Sequence) DotCount() int {
	n := 0
	for _, c := range s {
		for d := 1; d <= 6; d++ {
			if c.Has(d) {
				n++
			}
		}
	}
	return n
}
