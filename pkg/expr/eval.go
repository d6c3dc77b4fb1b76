package expr

import (
	"fmt"
	"math"
)

// Bindings maps variable names to values for evaluation.
type Bindings map[string]float64

// Evaluate computes the value of e with the variables in b.
func Evaluate(e Expr, b Bindings) (float64, error) {
	return e.Eval(b)
}

// Eval for VarNode looks the name up in b.
func (v *VarNode) Eval(b Bindings) (float64, error) {
	val, ok := b[v.Name]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnboundIdentifier, v.Name)
	}
	return val, nil
}

// Eval for ConstNode returns the constant value.
func (c *ConstNode) Eval(Bindings) (float64, error) {
	return c.Val, nil
}

// Eval for UnaryNode dispatches on op.
func (u *UnaryNode) Eval(b Bindings) (float64, error) {
	child, err := u.Child.Eval(b)
	if err != nil {
		return 0, err
	}
	switch u.Op {
	case OpNeg:
		return -child, nil
	case OpPlus:
		return child, nil
	default:
		return 0, fmt.Errorf("expr: unknown unary op %d", u.Op)
	}
}

// Eval for BinaryNode dispatches on op.
func (n *BinaryNode) Eval(b Bindings) (float64, error) {
	if n.Op == OpEq {
		return 0, ErrEquation
	}
	left, err := n.Left.Eval(b)
	if err != nil {
		return 0, err
	}
	right, err := n.Right.Eval(b)
	if err != nil {
		return 0, err
	}

	switch n.Op {
	case OpAdd:
		return left + right, nil
	case OpSub:
		return left - right, nil
	case OpMul:
		return left * right, nil
	case OpDiv:
		if right == 0 {
			return 0, ErrDivisionByZero
		}
		return left / right, nil
	case OpPow:
		return powF64(left, right)
	default:
		return 0, fmt.Errorf("expr: unknown binary op %d", n.Op)
	}
}

// powF64 computes base^exp, rejecting results outside the reals.
func powF64(base, exp float64) (float64, error) {
	if base == 0 && exp < 0 {
		return 0, ErrDivisionByZero
	}
	r := math.Pow(base, exp)
	if math.IsNaN(r) && !math.IsNaN(base) && !math.IsNaN(exp) {
		return 0, fmt.Errorf("%w: %g^%g", ErrDomain, base, exp)
	}
	return r, nil
}
