package expr

import "fmt"

// Solve rewrites the linear equation eq as name = solution.
//
// When both sides have the same coefficient the solution keeps a 0^-1 factor
// and Solve still succeeds; evaluating that solution fails with
// ErrDivisionByZero.
func Solve(eq Expr, name string) (*BinaryNode, error) {
	n, ok := eq.(*BinaryNode)
	if !ok || n.Op != OpEq {
		return nil, fmt.Errorf("%w: %s", ErrNotEquation, eq)
	}
	k1, b1, err := LinearForm(Simplify(n.Left), name)
	if err != nil {
		return nil, fmt.Errorf("solve for %s: %w", name, err)
	}
	k2, b2, err := LinearForm(Simplify(n.Right), name)
	if err != nil {
		return nil, fmt.Errorf("solve for %s: %w", name, err)
	}
	solution := Simplify(Div(Sub(b2, b1), Sub(k1, k2)))
	return Eq(Var(name), solution), nil
}
