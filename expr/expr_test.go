package expr

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEval(t *testing.T) {
	tests := []struct {
		src  string
		x    float64
		want float64
	}{
		{"x", 3, 3},
		{"x**2", -3, 9},
		{"x^3", -2, -8},
		{"2*x + 1", 4, 9},
		{"1 - 2 - 3", 0, -4},
		{"8 / 4 / 2", 0, 1},
		{"2^3^2", 0, 512},
		{"-x^2", 3, -9},
		{"(-x)^2", 3, 9},
		{"+x", 5, 5},
		{"--x", 5, 5},
		{"2 * -x", 1.5, -3},
		{"sin(pi/2)", 0, 1},
		{"exp(0) + log(e)", 0, 2},
		{"sqrt(abs(x))", -16, 4},
		{"1.5e2 + .5", 0, 150.5},
		{"1E-1 * x", 10, 1},
		{"log10(1000)", 0, 3},
		{"floor(x) + ceil(x)", 1.5, 3},
		{"  x  *  ( x + 1 )  ", 2, 6},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			e, err := Compile(tt.src)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, e.Eval(tt.x), 1e-12)
		})
	}
}

func TestEvalUndefined(t *testing.T) {
	assert.True(t, math.IsNaN(MustCompile("log(x)").Eval(-1)))
	assert.True(t, math.IsInf(MustCompile("log(x)").Eval(0), -1))
	assert.True(t, math.IsInf(MustCompile("1/x").Eval(0), 1))
	assert.True(t, math.IsNaN(MustCompile("sqrt(x)").Eval(-4)))
	assert.True(t, math.IsNaN(MustCompile("x^0.5").Eval(-4)))
}

func TestEvalAll(t *testing.T) {
	e := MustCompile("x^2")
	assert.Equal(t, []float64{4, 1, 0, 1, 4}, e.EvalAll([]float64{-2, -1, 0, 1, 2}))
	assert.Empty(t, e.EvalAll(nil))
}

func TestCompileErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want error
		pos  int
	}{
		{"unknown identifier", "y + 1", ErrUnknownIdentifier, 0},
		{"no dynamic calls", "__import__(os)", ErrUnknownIdentifier, 0},
		{"attribute access", "x.real", ErrSyntax, 1},
		{"unexpected character", "x $ 2", ErrSyntax, 2},
		{"missing operand", "x +", ErrSyntax, 3},
		{"unbalanced paren", "(x + 1", ErrSyntax, 6},
		{"trailing paren", "x)", ErrSyntax, 1},
		{"function without parens", "sin x", ErrSyntax, 4},
		{"implicit multiplication", "2x", ErrSyntax, 1},
		{"adjacent numbers", "2 3", ErrSyntax, 2},
		{"comma", "x, 1", ErrSyntax, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Compile(tt.src)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)

			var se *SyntaxError
			require.ErrorAs(t, err, &se)
			assert.Equal(t, tt.pos, se.Pos)
		})
	}
}

func TestCompileEmpty(t *testing.T) {
	_, err := Compile("   ")
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestMustCompilePanics(t *testing.T) {
	assert.Panics(t, func() { MustCompile("x +") })
}

func TestString(t *testing.T) {
	e := MustCompile("-x^2 + 3*sin(x)")
	assert.Equal(t, "((-(x^2)) + (3 * sin(x)))", e.String())
	assert.Equal(t, "-x^2 + 3*sin(x)", e.Source())
}

func TestFunctions(t *testing.T) {
	names := Functions()
	assert.Contains(t, names, "sin")
	assert.Contains(t, names, "log2")
	assert.IsIncreasing(t, names)
}
