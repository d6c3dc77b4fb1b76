package expr

// Expr is the interface for all expression tree nodes.
//
// Trees are immutable: every transformation returns a new tree and may share
// unchanged subtrees with its input.
type Expr interface {
	Eval(b Bindings) (float64, error)
	String() string
	LaTeX() string
	NodeCount() int
	Depth() int
}

// UnaryOp identifies a unary operation.
type UnaryOp int

const (
	OpNeg  UnaryOp = iota // -x
	OpPlus                // +x
)

// BinaryOp identifies a binary operation.
type BinaryOp int

const (
	OpPow BinaryOp = iota
	OpMul
	OpDiv
	OpAdd
	OpSub
	OpEq
)

// Binding precedences. Lower values bind tighter.
const (
	PrecUnary = 100
	PrecPow   = 100
	PrecMul   = 200
	PrecAdd   = 300
	PrecEq    = 400

	// MaxPrecedence is the ceiling that accepts any operator.
	MaxPrecedence = 1000
)

// VarNode is a symbolic variable.
type VarNode struct {
	Name string
}

// ConstNode is a literal number.
type ConstNode struct {
	Val float64
}

// UnaryNode applies a unary operation to a child expression.
type UnaryNode struct {
	Op    UnaryOp
	Child Expr
}

// BinaryNode applies a binary operation to two child expressions.
type BinaryNode struct {
	Op          BinaryOp
	Left, Right Expr
}

func Var(name string) Expr     { return &VarNode{Name: name} }
func Const(v float64) Expr     { return &ConstNode{Val: v} }
func Neg(x Expr) Expr          { return &UnaryNode{Op: OpNeg, Child: x} }
func Plus(x Expr) Expr         { return &UnaryNode{Op: OpPlus, Child: x} }
func Pow(l, r Expr) Expr       { return &BinaryNode{Op: OpPow, Left: l, Right: r} }
func Mul(l, r Expr) Expr       { return &BinaryNode{Op: OpMul, Left: l, Right: r} }
func Div(l, r Expr) Expr       { return &BinaryNode{Op: OpDiv, Left: l, Right: r} }
func Add(l, r Expr) Expr       { return &BinaryNode{Op: OpAdd, Left: l, Right: r} }
func Sub(l, r Expr) Expr       { return &BinaryNode{Op: OpSub, Left: l, Right: r} }
func Eq(l, r Expr) *BinaryNode { return &BinaryNode{Op: OpEq, Left: l, Right: r} }

// Precedence returns the binding precedence of a binary operation.
func (op BinaryOp) Precedence() int {
	switch op {
	case OpPow:
		return PrecPow
	case OpMul, OpDiv:
		return PrecMul
	case OpAdd, OpSub:
		return PrecAdd
	default:
		return PrecEq
	}
}

// LeftAssoc reports whether a chain of op groups left to right.
func (op BinaryOp) LeftAssoc() bool {
	return op == OpMul || op == OpDiv || op == OpAdd || op == OpSub
}

// IsEquation reports whether e is an Equation node.
func IsEquation(e Expr) bool {
	b, ok := e.(*BinaryNode)
	return ok && b.Op == OpEq
}
