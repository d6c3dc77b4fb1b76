package expr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wildfunctions/algebra/pkg/expr"
	"github.com/wildfunctions/algebra/pkg/parser"
)

func TestLinearForm(t *testing.T) {
	cases := []struct {
		in   string
		k, b string
	}{
		{"x", "1", "0"},
		{"y", "0", "y"},
		{"7", "0", "7"},
		{"3*x+2", "3", "2"},
		{"x*3-2", "3", "-2"},
		{"y*x", "y", "0"},
		{"2*y", "0", "2 * y"},
		{"2*y*x", "2 * y", "0"},
		{"x+x+y", "2", "y"},
		{"y^2 + x", "1", "y^2"},
		{"x - y/2", "1", "-1 * (y * 0.5)"},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			k, b, err := expr.LinearForm(expr.Simplify(parser.MustParse(tc.in)), "x")
			require.NoError(t, err)
			assert.Equal(t, tc.k, expr.Simplify(k).String())
			assert.Equal(t, tc.b, expr.Simplify(b).String())
		})
	}
}

func TestLinearFormNotLinear(t *testing.T) {
	inputs := []string{"x*x", "x^2", "2^x", "(x+1)*(x+2)", "y/x"}
	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			_, _, err := expr.LinearForm(expr.Simplify(parser.MustParse(in)), "x")
			require.ErrorIs(t, err, expr.ErrNotLinear)
		})
	}
}

func TestLinearFormRawTree(t *testing.T) {
	_, _, err := expr.LinearForm(parser.MustParse("x*x"), "x")
	require.ErrorIs(t, err, expr.ErrNotLinear)

	// Unary and equation nodes only appear before simplification.
	_, _, err = expr.LinearForm(parser.MustParse("-x"), "x")
	require.ErrorIs(t, err, expr.ErrNotLinear)
	_, _, err = expr.LinearForm(parser.MustParse("x = 1"), "x")
	require.ErrorIs(t, err, expr.ErrNotLinear)
}

func TestSolve(t *testing.T) {
	cases := []struct {
		in   string
		b    expr.Bindings
		want float64
	}{
		{"2*x+3=7", nil, 2},
		{"3*x - 2 = x + 4", nil, 3},
		{"7 = 2*x + 3", nil, 2},
		{"x/4 = 2", nil, 8},
		{"-x = 5", nil, -5},
		{"x + y = 0", expr.Bindings{"y": 4}, -4},
		{"a*x = b", expr.Bindings{"a": 2, "b": 6}, 3},
		{"y^2 + x = 0", expr.Bindings{"y": 3}, -9},
		{"2*(x - 1) = x", nil, 2},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			solved, err := expr.Solve(parser.MustParse(tc.in), "x")
			require.NoError(t, err)
			require.True(t, expr.Equal(expr.Var("x"), solved.Left))
			got, err := solved.Right.Eval(tc.b)
			require.NoError(t, err)
			assert.InDelta(t, tc.want, got, 1e-12)
		})
	}
}

func TestSolveSimplifiesToConstant(t *testing.T) {
	solved, err := expr.Solve(parser.MustParse("2*x+3=7"), "x")
	require.NoError(t, err)
	assert.True(t, expr.Equal(expr.Const(2), solved.Right), "got %s", solved.Right)
	assert.Equal(t, "x = 2", solved.String())
}

func TestSolveSymbolic(t *testing.T) {
	solved, err := expr.Solve(parser.MustParse("x + y = 0"), "x")
	require.NoError(t, err)
	assert.Equal(t, "x = -1 * y", solved.String())

	solved, err = expr.Solve(parser.MustParse("a*x = b"), "x")
	require.NoError(t, err)
	assert.Equal(t, "x = b * a^-1", solved.String())
}

func TestSolveDegenerate(t *testing.T) {
	// expr.Equal coefficients on both sides: solving succeeds and evaluating fails.
	solved, err := expr.Solve(parser.MustParse("x = x + 1"), "x")
	require.NoError(t, err)
	assert.True(t, expr.Equal(expr.Pow(expr.Const(0), expr.Const(-1)), solved.Right), "got %s", solved.Right)

	_, err = solved.Right.Eval(nil)
	require.ErrorIs(t, err, expr.ErrDivisionByZero)
}

func TestSolveErrors(t *testing.T) {
	_, err := expr.Solve(parser.MustParse("x*x = 4"), "x")
	require.ErrorIs(t, err, expr.ErrNotLinear)

	_, err = expr.Solve(parser.MustParse("1 = x^2"), "x")
	require.ErrorIs(t, err, expr.ErrNotLinear)

	_, err = expr.Solve(parser.MustParse("2*x + 1"), "x")
	require.ErrorIs(t, err, expr.ErrNotEquation)
}
