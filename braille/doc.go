// Package braille encodes text into six-dot Braille cells.
//
// A [Cell] is a set of raised dots numbered 1-6 in the standard layout:
//
//	1 • • 4
//	2 • • 5
//	3 • • 6
//
// Encoding is a pure function of the input. Each line starts in letter
// mode; an uppercase letter is preceded by the capital sign (dot 6) and a
// run of consecutive digits is preceded by a single number sign (dots
// 3-4-5-6), after which each digit is written as the letter a-j.
//
//	cells := braille.Encode("Ab3")
//	fmt.Println(cells) // ⠠⠁⠃⠼⠉
//
// Characters with no mapping, including punctuation, become blank cells.
package braille
