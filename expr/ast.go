package expr

import (
	"math"
	"strconv"
)

// node is a compiled expression tree node.
type node interface {
	eval(x float64) float64
	String() string
}

type numNode float64

func (n numNode) eval(float64) float64 { return float64(n) }

func (n numNode) String() string {
	return strconv.FormatFloat(float64(n), 'g', -1, 64)
}

type varNode struct{}

func (varNode) eval(x float64) float64 { return x }

func (varNode) String() string { return Variable }

type negNode struct {
	operand node
}

func (n negNode) eval(x float64) float64 { return -n.operand.eval(x) }

func (n negNode) String() string { return "(-" + n.operand.String() + ")" }

type binaryNode struct {
	op          tokenKind
	left, right node
}

func (n binaryNode) eval(x float64) float64 {
	a, b := n.left.eval(x), n.right.eval(x)
	switch n.op {
	case tokPlus:
		return a + b
	case tokMinus:
		return a - b
	case tokStar:
		return a * b
	case tokSlash:
		return a / b
	case tokCaret:
		// a negative base with a fractional exponent is NaN
		return math.Pow(a, b)
	}
	return math.NaN()
}

func (n binaryNode) String() string {
	var op string
	switch n.op {
	case tokPlus:
		op = " + "
	case tokMinus:
		op = " - "
	case tokStar:
		op = " * "
	case tokSlash:
		op = " / "
	case tokCaret:
		op = "^"
	}
	return "(" + n.left.String() + op + n.right.String() + ")"
}

type callNode struct {
	name string
	fn   func(float64) float64
	arg  node
}

func (n callNode) eval(x float64) float64 { return n.fn(n.arg.eval(x)) }

func (n callNode) String() string { return n.name + "(" + n.arg.String() + ")" }
