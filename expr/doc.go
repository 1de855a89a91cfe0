// Package expr compiles small arithmetic expressions in one variable, x,
// into functions that can be evaluated without any dynamic code execution.
//
// The grammar is fixed:
//
//	expr    = term { ("+" | "-") term }
//	term    = unary { ("*" | "/") unary }
//	unary   = ("+" | "-") unary | power
//	power   = primary [ ("^" | "**") unary ]
//	primary = number | "x" | "pi" | "e" | func "(" expr ")" | "(" expr ")"
//
// Exponentiation is right-associative and binds tighter than unary minus,
// so -x^2 is -(x^2). The available functions are listed in [Functions].
//
//	f, err := expr.Compile("x**3 - 2*x")
//	if err != nil {
//	    // syntax error or unknown identifier
//	}
//	y := f.Eval(1.5)
//
// Evaluation never fails: points where the expression is undefined, such
// as log(-1) or 1/0, produce NaN or ±Inf.
package expr
