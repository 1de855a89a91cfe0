package expr

import (
	"fmt"
	"strings"
)

// Expr is a compiled expression. It is immutable and safe for concurrent
// use.
type Expr struct {
	src  string
	root node
}

// Compile parses src into an Expr.
func Compile(src string) (*Expr, error) {
	if strings.TrimSpace(src) == "" {
		return nil, ErrEmpty
	}

	toks, err := newLexer(src).tokens()
	if err != nil {
		return nil, fmt.Errorf("compiling %q: %w", src, err)
	}

	p := &parser{toks: toks}
	root, err := p.parseExpr()
	if err != nil {
		return nil, fmt.Errorf("compiling %q: %w", src, err)
	}
	if t := p.peek(); t.kind != tokEOF {
		return nil, fmt.Errorf("compiling %q: %w", src, syntaxErrorf(t.pos, "unexpected %s", t))
	}

	return &Expr{src: src, root: root}, nil
}

// MustCompile is like Compile but panics on error. It is intended for
// expressions fixed at build time.
func MustCompile(src string) *Expr {
	e, err := Compile(src)
	if err != nil {
		panic(err)
	}
	return e
}

// Eval evaluates the expression at x. Undefined points yield NaN or ±Inf.
func (e *Expr) Eval(x float64) float64 {
	return e.root.eval(x)
}

// EvalAll evaluates the expression at every x.
func (e *Expr) EvalAll(xs []float64) []float64 {
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = e.root.eval(x)
	}
	return ys
}

// Source returns the text the expression was compiled from.
func (e *Expr) Source() string {
	return e.src
}

// String returns the fully parenthesised form of the parsed tree.
func (e *Expr) String() string {
	return e.root.String()
}
