package expr

import (
	"fmt"
	"strconv"
)

var unaryOpSymbols = map[UnaryOp]string{
	OpNeg:  "-",
	OpPlus: "+",
}

var binaryOpSymbols = map[BinaryOp]string{
	OpPow: "^",
	OpMul: "*",
	OpDiv: "/",
	OpAdd: "+",
	OpSub: "-",
	OpEq:  "=",
}

// Symbol returns the operator's source symbol.
func (op UnaryOp) Symbol() string { return unaryOpSymbols[op] }

// Symbol returns the operator's source symbol.
func (op BinaryOp) Symbol() string { return binaryOpSymbols[op] }

// nodePrec is the precedence of the outermost operator of e, 0 for atoms.
func nodePrec(e Expr) int {
	switch n := e.(type) {
	case *ConstNode:
		if n.Val < 0 {
			return PrecUnary
		}
		return 0
	case *UnaryNode:
		return PrecUnary
	case *BinaryNode:
		return n.Op.Precedence()
	default:
		return 0
	}
}

// needParens reports whether child must be bracketed to keep its place
// under op. Left-associative operators bracket an equal-precedence right
// child; right-associative ones bracket an equal-precedence left child.
func needParens(op BinaryOp, child Expr, right bool) bool {
	p, cp := op.Precedence(), nodePrec(child)
	if cp != p {
		return cp > p
	}
	if op == OpEq {
		return true
	}
	return right == op.LeftAssoc()
}

// String methods

func (v *VarNode) String() string {
	return v.Name
}

func (c *ConstNode) String() string {
	return strconv.FormatFloat(c.Val, 'g', -1, 64)
}

func (u *UnaryNode) String() string {
	child := u.Child.String()
	if nodePrec(u.Child) > PrecUnary {
		child = "(" + child + ")"
	}
	return u.Op.Symbol() + child
}

func (n *BinaryNode) String() string {
	left := n.Left.String()
	if needParens(n.Op, n.Left, false) {
		left = "(" + left + ")"
	}
	right := n.Right.String()
	if needParens(n.Op, n.Right, true) {
		right = "(" + right + ")"
	}
	if n.Op == OpPow {
		return left + "^" + right
	}
	return fmt.Sprintf("%s %s %s", left, n.Op.Symbol(), right)
}

// LaTeX methods

func (v *VarNode) LaTeX() string {
	return v.Name
}

func (c *ConstNode) LaTeX() string {
	return c.String()
}

func (u *UnaryNode) LaTeX() string {
	child := u.Child.LaTeX()
	if nodePrec(u.Child) > PrecUnary {
		child = "\\left(" + child + "\\right)"
	}
	return u.Op.Symbol() + child
}

func (n *BinaryNode) LaTeX() string {
	if n.Op == OpDiv {
		return fmt.Sprintf("\\frac{%s}{%s}", n.Left.LaTeX(), n.Right.LaTeX())
	}
	left := n.Left.LaTeX()
	if needParens(n.Op, n.Left, false) {
		left = "\\left(" + left + "\\right)"
	}
	right := n.Right.LaTeX()
	switch n.Op {
	case OpPow:
		return fmt.Sprintf("{%s}^{%s}", left, right)
	case OpMul:
		if needParens(n.Op, n.Right, true) {
			right = "\\left(" + right + "\\right)"
		}
		return fmt.Sprintf("%s \\cdot %s", left, right)
	default:
		if needParens(n.Op, n.Right, true) {
			right = "\\left(" + right + "\\right)"
		}
		return fmt.Sprintf("%s %s %s", left, n.Op.Symbol(), right)
	}
}
