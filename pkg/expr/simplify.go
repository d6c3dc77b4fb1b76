package expr

import "math"

// Simplify rewrites an expression tree into simplified form. Children are
// simplified first, then the node's local rule is applied; whenever the rule
// produces a different tree the result is simplified again, so the returned
// tree is a fixpoint of the rules.
func Simplify(e Expr) Expr {
	switch n := e.(type) {
	case *UnaryNode:
		// The unary plus wrapper is dropped without a local rule.
		if n.Op == OpPlus {
			return Simplify(n.Child)
		}
		child := Simplify(n.Child)
		self := Expr(n)
		if child != n.Child {
			self = &UnaryNode{Op: n.Op, Child: child}
		}
		return settle(self, simplifyLocal(self))

	case *BinaryNode:
		left := Simplify(n.Left)
		right := Simplify(n.Right)
		self := Expr(n)
		if left != n.Left || right != n.Right {
			self = &BinaryNode{Op: n.Op, Left: left, Right: right}
		}
		return settle(self, simplifyLocal(self))

	default:
		return e
	}
}

// settle keeps self when the local rule left it unchanged and otherwise
// simplifies the rewritten tree.
func settle(self, next Expr) Expr {
	if next == self || Equal(next, self) {
		return self
	}
	return Simplify(next)
}

// simplifyLocal applies a single rewrite to a node whose children are
// already simplified.
func simplifyLocal(e Expr) Expr {
	switch n := e.(type) {
	case *UnaryNode:
		if n.Op == OpNeg {
			return Mul(Const(-1), n.Child)
		}
		return n
	case *BinaryNode:
		switch n.Op {
		case OpPow:
			return simplifyPow(n)
		case OpMul:
			return simplifyMul(n)
		case OpDiv:
			return Mul(n.Left, Pow(n.Right, Const(-1)))
		case OpAdd:
			return simplifyAdd(n)
		case OpSub:
			return simplifySub(n)
		}
		return n
	default:
		return e
	}
}

func simplifyPow(n *BinaryNode) Expr {
	a, aok := numeric(n.Left)
	b, bok := numeric(n.Right)
	if aok && bok {
		if c, ok := fold(math.Pow(a, b)); ok {
			return c
		}
	}
	// x^0 = 1
	if isConst(n.Right, 0) {
		return Const(1)
	}
	// x^1 = x
	if isConst(n.Right, 1) {
		return n.Left
	}
	switch l := n.Left.(type) {
	case *BinaryNode:
		// (a*b)^c = a^c * b^c
		if l.Op == OpMul {
			return Mul(Pow(l.Left, n.Right), Pow(l.Right, n.Right))
		}
		// (a^b)^c = a^(b*c)
		if l.Op == OpPow {
			return Pow(l.Left, Mul(l.Right, n.Right))
		}
	}
	return n
}

func simplifyMul(n *BinaryNode) Expr {
	a, aok := numeric(n.Left)
	b, bok := numeric(n.Right)
	if aok && bok {
		if c, ok := fold(a * b); ok {
			return c
		}
	}
	// x * 0 = 0
	if isConst(n.Left, 0) || isConst(n.Right, 0) {
		return Const(0)
	}
	// 1 * x = x
	if isConst(n.Left, 1) {
		return n.Right
	}
	// x * 1 = x
	if isConst(n.Right, 1) {
		return n.Left
	}
	// (a ± b) * c = a*c ± b*c
	if l, ok := n.Left.(*BinaryNode); ok && (l.Op == OpAdd || l.Op == OpSub) {
		return &BinaryNode{Op: l.Op, Left: Mul(l.Left, n.Right), Right: Mul(l.Right, n.Right)}
	}
	// a * (b ± c) = a*b ± a*c
	if r, ok := n.Right.(*BinaryNode); ok && (r.Op == OpAdd || r.Op == OpSub) {
		return &BinaryNode{Op: r.Op, Left: Mul(n.Left, r.Left), Right: Mul(n.Left, r.Right)}
	}
	// x^a * x^b = x^(a+b)
	l, lok := n.Left.(*BinaryNode)
	r, rok := n.Right.(*BinaryNode)
	if lok && rok && l.Op == OpPow && r.Op == OpPow && Equal(l.Left, r.Left) {
		return Pow(l.Left, Add(l.Right, r.Right))
	}
	return n
}

func simplifyAdd(n *BinaryNode) Expr {
	a, aok := numeric(n.Left)
	b, bok := numeric(n.Right)
	if aok && bok {
		if c, ok := fold(a + b); ok {
			return c
		}
	}
	if isConst(n.Left, 0) {
		return n.Right
	}
	if isConst(n.Right, 0) {
		return n.Left
	}
	// x + x = 2*x
	if Equal(n.Left, n.Right) {
		return Mul(Const(2), n.Left)
	}
	return n
}

func simplifySub(n *BinaryNode) Expr {
	a, aok := numeric(n.Left)
	b, bok := numeric(n.Right)
	if aok && bok {
		if c, ok := fold(a - b); ok {
			return c
		}
	}
	// 0 - x = -1*x
	if isConst(n.Left, 0) {
		return Mul(Const(-1), n.Right)
	}
	if isConst(n.Right, 0) {
		return n.Left
	}
	// x - x = 0
	if Equal(n.Left, n.Right) {
		return Const(0)
	}
	return n
}

// fold wraps a folded value as a constant. Results that are not finite reals
// are not folded, so a 0^-1 factor stays symbolic until it is evaluated.
func fold(v float64) (Expr, bool) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, false
	}
	return Const(v), true
}
