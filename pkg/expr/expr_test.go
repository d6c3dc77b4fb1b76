package expr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wildfunctions/algebra/pkg/expr"
	"github.com/wildfunctions/algebra/pkg/parser"
)

func TestEqual(t *testing.T) {
	x, y := expr.Var("x"), expr.Var("y")

	assert.True(t, expr.Equal(x, expr.Var("x")))
	assert.False(t, expr.Equal(x, y))
	assert.True(t, expr.Equal(expr.Const(2), expr.Const(2)))
	assert.False(t, expr.Equal(expr.Const(2), expr.Var("2")))
	assert.True(t, expr.Equal(expr.Add(x, expr.Mul(expr.Const(2), y)), expr.Add(expr.Var("x"), expr.Mul(expr.Const(2), expr.Var("y")))))
	assert.False(t, expr.Equal(expr.Add(x, y), expr.Sub(x, y)))
	assert.False(t, expr.Equal(expr.Add(x, y), expr.Add(y, x)))
	assert.False(t, expr.Equal(expr.Neg(x), expr.Plus(x)))
	assert.True(t, expr.Equal(expr.Eq(x, expr.Const(1)), expr.Eq(expr.Var("x"), expr.Const(1))))
}

func TestString(t *testing.T) {
	cases := []struct {
		tree expr.Expr
		want string
	}{
		{expr.Add(expr.Var("a"), expr.Mul(expr.Var("b"), expr.Var("c"))), "a + b * c"},
		{expr.Mul(expr.Add(expr.Var("a"), expr.Var("b")), expr.Var("c")), "(a + b) * c"},
		{expr.Sub(expr.Var("a"), expr.Sub(expr.Var("b"), expr.Var("c"))), "a - (b - c)"},
		{expr.Sub(expr.Sub(expr.Var("a"), expr.Var("b")), expr.Var("c")), "a - b - c"},
		{expr.Pow(expr.Var("a"), expr.Pow(expr.Var("b"), expr.Var("c"))), "a^b^c"},
		{expr.Pow(expr.Pow(expr.Var("a"), expr.Var("b")), expr.Var("c")), "(a^b)^c"},
		{expr.Neg(expr.Pow(expr.Var("x"), expr.Const(2))), "-x^2"},
		{expr.Pow(expr.Neg(expr.Var("x")), expr.Const(2)), "(-x)^2"},
		{expr.Pow(expr.Const(-1), expr.Const(2)), "(-1)^2"},
		{expr.Pow(expr.Const(0), expr.Const(-1)), "0^-1"},
		{expr.Eq(expr.Var("y"), expr.Add(expr.Mul(expr.Const(2), expr.Var("x")), expr.Const(1))), "y = 2 * x + 1"},
		{expr.Const(0.5), "0.5"},
		{expr.Plus(expr.Var("x")), "+x"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.tree.String())
	}
}

func TestStringRoundTrip(t *testing.T) {
	inputs := []string{
		"2+3*4", "2*(3+4)", "-x^2", "(-x)^2", "a-(b-c)", "a/(b*c)", "a/b/c",
		"2^3^2", "(2^3)^2", "x = y + 1", "+x*2", "-(a+b)*c", "1.5e-3*x", "x^-2",
		"a - -b", "--x",
	}
	for _, in := range inputs {
		tree := parser.MustParse(in)
		again, err := parser.Parse(tree.String())
		require.NoError(t, err, "reparse of %q printed as %q", in, tree.String())
		assert.True(t, expr.Equal(tree, again), "%q printed as %q reparsed differently", in, tree.String())
	}
}

func TestLaTeX(t *testing.T) {
	assert.Equal(t, `\frac{x}{2}`, parser.MustParse("x/2").LaTeX())
	assert.Equal(t, `{x}^{2}`, parser.MustParse("x^2").LaTeX())
	assert.Equal(t, `\left(a + b\right) \cdot c`, parser.MustParse("(a+b)*c").LaTeX())
	assert.Equal(t, `y = 2 \cdot x`, parser.MustParse("y = 2*x").LaTeX())
}

func TestNodeCountDepth(t *testing.T) {
	tree := parser.MustParse("2*x + 3")
	assert.Equal(t, 5, tree.NodeCount())
	assert.Equal(t, 3, tree.Depth())

	leaf := expr.Var("x")
	assert.Equal(t, 1, leaf.NodeCount())
	assert.Equal(t, 1, leaf.Depth())

	assert.Equal(t, 4, parser.MustParse("-(-x)^2").Depth())
}

func TestSubstitute(t *testing.T) {
	tree := parser.MustParse("x*y + x")
	got := expr.Substitute(tree, map[string]expr.Expr{"x": parser.MustParse("a+1")})
	assert.True(t, expr.Equal(parser.MustParse("(a+1)*y + (a+1)"), got), "got %s", got)

	// The input tree is untouched.
	assert.Equal(t, "x * y + x", tree.String())

	// Nothing to replace returns the same tree.
	same := expr.Substitute(tree, map[string]expr.Expr{"z": expr.Const(1)})
	assert.Same(t, tree, same)
}

func TestFreeVars(t *testing.T) {
	assert.Equal(t, []string{"a", "x", "y"}, expr.FreeVars(parser.MustParse("y = a*x + a")))
	assert.Empty(t, expr.FreeVars(parser.MustParse("2+3")))
	assert.True(t, expr.ContainsVar(parser.MustParse("2*(y+x)"), "x"))
	assert.False(t, expr.ContainsVar(parser.MustParse("2*(y+z)"), "x"))
}

func TestIsEquation(t *testing.T) {
	assert.True(t, expr.IsEquation(parser.MustParse("x = 1")))
	assert.False(t, expr.IsEquation(parser.MustParse("x + 1")))
}
