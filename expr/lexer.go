package expr

import (
	"fmt"
	"strconv"
)

// tokenKind classifies a lexical token.
type tokenKind int

const (
	tokEOF tokenKind = iota
	tokNumber
	tokIdent
	tokPlus
	tokMinus
	tokStar
	tokSlash
	tokCaret
	tokLParen
	tokRParen
)

func (k tokenKind) String() string {
	switch k {
	case tokEOF:
		return "end of input"
	case tokNumber:
		return "number"
	case tokIdent:
		return "identifier"
	case tokPlus:
		return "'+'"
	case tokMinus:
		return "'-'"
	case tokStar:
		return "'*'"
	case tokSlash:
		return "'/'"
	case tokCaret:
		return "'^'"
	case tokLParen:
		return "'('"
	case tokRParen:
		return "')'"
	}
	return "unknown token"
}

// token is a lexical token with its byte offset in the source.
type token struct {
	kind tokenKind
	text string
	num  float64
	pos  int
}

// lexer splits an expression into tokens.
type lexer struct {
	data []byte
	pos  int
}

func newLexer(src string) *lexer {
	return &lexer{data: []byte(src)}
}

// tokens lexes the whole input, ending with a tokEOF token.
func (l *lexer) tokens() ([]token, error) {
	var toks []token
	for {
		tok, err := l.next()
		if err != nil {
			return nil, err
		}
		toks = append(toks, tok)
		if tok.kind == tokEOF {
			return toks, nil
		}
	}
}

func (l *lexer) next() (token, error) {
	l.skipWhitespace()
	if l.pos >= len(l.data) {
		return token{kind: tokEOF, pos: l.pos}, nil
	}

	start := l.pos
	c := l.data[l.pos]

	if isDigit(c) || c == '.' {
		return l.lexNumber()
	}
	if isLetter(c) {
		for l.pos < len(l.data) && (isLetter(l.data[l.pos]) || isDigit(l.data[l.pos])) {
			l.pos++
		}
		return token{kind: tokIdent, text: string(l.data[start:l.pos]), pos: start}, nil
	}

	l.pos++
	switch c {
	case '+':
		return token{kind: tokPlus, text: "+", pos: start}, nil
	case '-':
		return token{kind: tokMinus, text: "-", pos: start}, nil
	case '*':
		// ** is an alias for ^
		if l.pos < len(l.data) && l.data[l.pos] == '*' {
			l.pos++
			return token{kind: tokCaret, text: "**", pos: start}, nil
		}
		return token{kind: tokStar, text: "*", pos: start}, nil
	case '/':
		return token{kind: tokSlash, text: "/", pos: start}, nil
	case '^':
		return token{kind: tokCaret, text: "^", pos: start}, nil
	case '(':
		return token{kind: tokLParen, text: "(", pos: start}, nil
	case ')':
		return token{kind: tokRParen, text: ")", pos: start}, nil
	}

	return token{}, syntaxErrorf(start, "unexpected character %q", c)
}

// lexNumber reads a decimal literal with optional fraction and exponent.
func (l *lexer) lexNumber() (token, error) {
	start := l.pos
	for l.pos < len(l.data) && isDigit(l.data[l.pos]) {
		l.pos++
	}
	if l.pos < len(l.data) && l.data[l.pos] == '.' {
		l.pos++
		for l.pos < len(l.data) && isDigit(l.data[l.pos]) {
			l.pos++
		}
	}
	// exponent only when followed by digits, so "2e" stays 2 then e
	if l.pos < len(l.data) && (l.data[l.pos] == 'e' || l.data[l.pos] == 'E') {
		p := l.pos + 1
		if p < len(l.data) && (l.data[p] == '+' || l.data[p] == '-') {
			p++
		}
		if p < len(l.data) && isDigit(l.data[p]) {
			for p < len(l.data) && isDigit(l.data[p]) {
				p++
			}
			l.pos = p
		}
	}

	text := string(l.data[start:l.pos])
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return token{}, syntaxErrorf(start, "invalid number %q", text)
	}
	return token{kind: tokNumber, text: text, num: v, pos: start}, nil
}

func (l *lexer) skipWhitespace() {
	for l.pos < len(l.data) && isWhitespace(l.data[l.pos]) {
		l.pos++
	}
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_'
}

func isWhitespace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func (t token) String() string {
	if t.kind == tokNumber || t.kind == tokIdent {
		return fmt.Sprintf("%s %q", t.kind, t.text)
	}
	return t.kind.String()
}
