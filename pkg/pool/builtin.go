package pool

import (
	"math/rand"

	"github.com/wildfunctions/algebra/pkg/expr"
)

func init() {
	Register("linear", func() Pool { return &LinearPool{} })
	Register("rational", func() Pool { return &RationalPool{} })
	Register("power", func() Pool { return &PowerPool{} })
}

// LinearPool builds polynomials from x, y and the integers 1-9 with
// negation, addition, subtraction and multiplication. Its trees never divide.
type LinearPool struct{}

func (p *LinearPool) Name() string { return "linear" }

func (p *LinearPool) RandomLeaf(rng *rand.Rand) expr.Expr {
	if rng.Float64() < 0.4 {
		return randomVar(rng)
	}
	return expr.Const(float64(rng.Intn(9) + 1))
}

var linearUnary = []expr.UnaryOp{expr.OpNeg}

func (p *LinearPool) RandomUnary(rng *rand.Rand) expr.UnaryOp {
	return linearUnary[rng.Intn(len(linearUnary))]
}

var linearBinary = []expr.BinaryOp{
	expr.OpAdd,
	expr.OpSub,
	expr.OpMul,
}

func (p *LinearPool) RandomBinary(rng *rand.Rand) expr.BinaryOp {
	return linearBinary[rng.Intn(len(linearBinary))]
}

func (p *LinearPool) RandomTree(rng *rand.Rand, maxDepth int) expr.Expr {
	return randomTree(p, rng, maxDepth)
}

// RationalPool extends linear with halves as leaves, unary plus and
// division.
type RationalPool struct{}

func (p *RationalPool) Name() string { return "rational" }

func (p *RationalPool) RandomLeaf(rng *rand.Rand) expr.Expr {
	r := rng.Float64()
	switch {
	case r < 0.4:
		return randomVar(rng)
	case r < 0.85:
		return expr.Const(float64(rng.Intn(9) + 1))
	default:
		// 0.5, 1.5, 2.5
		return expr.Const(float64(rng.Intn(3)) + 0.5)
	}
}

var rationalUnary = []expr.UnaryOp{expr.OpNeg, expr.OpPlus}

func (p *RationalPool) RandomUnary(rng *rand.Rand) expr.UnaryOp {
	return rationalUnary[rng.Intn(len(rationalUnary))]
}

var rationalBinary = []expr.BinaryOp{
	expr.OpAdd,
	expr.OpSub,
	expr.OpMul,
	expr.OpDiv,
}

func (p *RationalPool) RandomBinary(rng *rand.Rand) expr.BinaryOp {
	return rationalBinary[rng.Intn(len(rationalBinary))]
}

func (p *RationalPool) RandomTree(rng *rand.Rand, maxDepth int) expr.Expr {
	return randomTree(p, rng, maxDepth)
}

// PowerPool extends rational with integer powers.
type PowerPool struct {
	RationalPool
}

func (p *PowerPool) Name() string { return "power" }

var powerBinary = []expr.BinaryOp{
	expr.OpAdd,
	expr.OpSub,
	expr.OpMul,
	expr.OpDiv,
	expr.OpPow,
}

func (p *PowerPool) RandomBinary(rng *rand.Rand) expr.BinaryOp {
	return powerBinary[rng.Intn(len(powerBinary))]
}

func (p *PowerPool) RandomTree(rng *rand.Rand, maxDepth int) expr.Expr {
	return randomTree(p, rng, maxDepth)
}
