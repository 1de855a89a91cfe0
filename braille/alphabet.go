package braille

// letters holds the standard six-dot assignment for a-z.
var letters = [26]Cell{
	'a' - 'a': NewCell(1),
	'b' - 'a': NewCell(1, 2),
	'c' - 'a': NewCell(1, 4),
	'd' - 'a': NewCell(1, 4, 5),
	'e' - 'a': NewCell(1, 5),
	'f' - 'a': NewCell(1, 2, 4),
	'g' - 'a': NewCell(1, 2, 4, 5),
	'h' - 'a': NewCell(1, 2, 5),
	'i' - 'a': NewCell(2, 4),
	'j' - 'a': NewCell(2, 4, 5),
	'k' - 'a': NewCell(1, 3),
	'l' - 'a': NewCell(1, 2, 3),
	'm' - 'a': NewCell(1, 3, 4),
	'n' - 'a': NewCell(1, 3, 4, 5),
	'o' - 'a': NewCell(1, 3, 5),
	'p' - 'a': NewCell(1, 2, 3, 4),
	'q' - 'a': NewCell(1, 2, 3, 4, 5),
	'r' - 'a': NewCell(1, 2, 3, 5),
	's' - 'a': NewCell(2, 3, 4),
	't' - 'a': NewCell(2, 3, 4, 5),
	'u' - 'a': NewCell(1, 3, 6),
	'v' - 'a': NewCell(1, 2, 3, 6),
	'w' - 'a': NewCell(2, 4, 5, 6),
	'x' - 'a': NewCell(1, 3, 4, 6),
	'y' - 'a': NewCell(1, 3, 4, 5, 6),
	'z' - 'a': NewCell(1, 3, 5, 6),
}

// digitLetters maps '0'-'9' to the letter written after the number sign.
var digitLetters = [10]byte{'j', 'a', 'b', 'c', 'd', 'e', 'f', 'g', 'h', 'i'}

// Letter returns the cell for an ASCII letter, ignoring case.
// ok is false for any other rune.
func Letter(r rune) (c Cell, ok bool) {
	switch {
	case r >= 'a' && r <= 'z':
		return letters[r-'a'], true
	case r >= 'A' && r <= 'Z':
		return letters[r-'A'], true
	}
	return Blank, false
}

// Digit returns the letter cell used for an ASCII digit inside a number.
// ok is false for any other rune.
func Digit(r rune) (c Cell, ok bool) {
	if r < '0' || r > '9' {
		return Blank, false
	}
	return letters[digitLetters[r-'0']-'a'], true
}
