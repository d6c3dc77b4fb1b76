package expr

import "fmt"

// LinearForm decomposes e into k and b such that e == k*name + b, where
// neither k nor b depends on name. It is meant for simplified trees: unary
// nodes and any division or power involving name are rejected with
// ErrNotLinear.
func LinearForm(e Expr, name string) (k, b Expr, err error) {
	switch n := e.(type) {
	case *VarNode:
		if n.Name == name {
			return Const(1), Const(0), nil
		}
		return Const(0), n, nil

	case *ConstNode:
		return Const(0), n, nil

	case *UnaryNode:
		return nil, nil, fmt.Errorf("%w: unary %s in %s", ErrNotLinear, n.Op.Symbol(), n)

	case *BinaryNode:
		switch n.Op {
		case OpAdd, OpSub:
			k1, b1, err := LinearForm(n.Left, name)
			if err != nil {
				return nil, nil, err
			}
			k2, b2, err := LinearForm(n.Right, name)
			if err != nil {
				return nil, nil, err
			}
			return &BinaryNode{Op: n.Op, Left: k1, Right: k2},
				&BinaryNode{Op: n.Op, Left: b1, Right: b2}, nil

		case OpMul:
			k1, b1, err := LinearForm(n.Left, name)
			if err != nil {
				return nil, nil, err
			}
			k2, b2, err := LinearForm(n.Right, name)
			if err != nil {
				return nil, nil, err
			}
			if !isZeroCoeff(k1) && !isZeroCoeff(k2) {
				return nil, nil, fmt.Errorf("%w: both factors of %s depend on %s", ErrNotLinear, n, name)
			}
			return Add(Mul(k1, b2), Mul(k2, b1)), Mul(b1, b2), nil

		case OpPow, OpDiv:
			if ContainsVar(n, name) {
				return nil, nil, fmt.Errorf("%w: %s depends on %s", ErrNotLinear, n, name)
			}
			return Const(0), n, nil
		}
		return nil, nil, fmt.Errorf("%w: %s", ErrNotLinear, n)
	}
	return nil, nil, fmt.Errorf("%w: %v", ErrNotLinear, e)
}

// isZeroCoeff reports whether a coefficient built by LinearForm reduces to 0.
func isZeroCoeff(k Expr) bool {
	return isConst(Simplify(k), 0)
}
