package expr

// Equal reports whether a and b are structurally equal: the same variant with
// pairwise equal fields, recursively.
func Equal(a, b Expr) bool {
	switch x := a.(type) {
	case *VarNode:
		y, ok := b.(*VarNode)
		return ok && x.Name == y.Name
	case *ConstNode:
		y, ok := b.(*ConstNode)
		return ok && x.Val == y.Val
	case *UnaryNode:
		y, ok := b.(*UnaryNode)
		return ok && x.Op == y.Op && Equal(x.Child, y.Child)
	case *BinaryNode:
		y, ok := b.(*BinaryNode)
		return ok && x.Op == y.Op && Equal(x.Left, y.Left) && Equal(x.Right, y.Right)
	default:
		return false
	}
}

// numeric returns the value of e if it is a constant.
func numeric(e Expr) (float64, bool) {
	c, ok := e.(*ConstNode)
	if !ok {
		return 0, false
	}
	return c.Val, true
}

// isConst reports whether e is a constant equal to v. A non-constant is never
// equal to a number.
func isConst(e Expr, v float64) bool {
	n, ok := numeric(e)
	return ok && n == v
}
