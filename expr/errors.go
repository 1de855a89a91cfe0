package expr

import (
	"errors"
	"fmt"
)

var (
	// ErrSyntax is wrapped by every *SyntaxError.
	ErrSyntax = errors.New("syntax error")

	// ErrUnknownIdentifier is returned for names outside the variable,
	// the constants and Functions.
	ErrUnknownIdentifier = errors.New("unknown identifier")

	// ErrEmpty is returned when the expression has no tokens.
	ErrEmpty = errors.New("empty expression")
)

// SyntaxError reports a problem at a byte offset of the source.
type SyntaxError struct {
	Pos int
	Msg string
	Err error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("at position %d: %s", e.Pos, e.Msg)
}

// Unwrap returns the sentinel error class.
func (e *SyntaxError) Unwrap() error {
	return e.Err
}

func syntaxErrorf(pos int, format string, args ...any) error {
	return &SyntaxError{Pos: pos, Msg: fmt.Sprintf(format, args...), Err: ErrSyntax}
}

func unknownIdentifier(pos int, name string) error {
	return &SyntaxError{Pos: pos, Msg: fmt.Sprintf("unknown identifier %q", name), Err: ErrUnknownIdentifier}
}
