// Package pool generates random expression trees from named sets of
// building blocks.
package pool

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/wildfunctions/algebra/pkg/expr"
)

// Pool provides random building blocks for constructing expression trees.
type Pool interface {
	Name() string
	RandomLeaf(rng *rand.Rand) expr.Expr
	RandomUnary(rng *rand.Rand) expr.UnaryOp
	RandomBinary(rng *rand.Rand) expr.BinaryOp
	RandomTree(rng *rand.Rand, maxDepth int) expr.Expr
}

var registry = map[string]func() Pool{}

// Register adds a pool constructor to the registry.
func Register(name string, constructor func() Pool) {
	registry[name] = constructor
}

// Get returns a pool by name.
func Get(name string) (Pool, error) {
	ctor, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown pool: %s", name)
	}
	return ctor(), nil
}

// Names returns all registered pool names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for k := range registry {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// RandomEquation returns lhs = rhs with both sides drawn from p.
func RandomEquation(p Pool, rng *rand.Rand, maxDepth int) *expr.BinaryNode {
	return expr.Eq(p.RandomTree(rng, maxDepth), p.RandomTree(rng, maxDepth))
}

// randomTree is a shared helper for building random trees. Powers always
// get a small positive integer exponent so every tree stays real-valued.
func randomTree(p Pool, rng *rand.Rand, maxDepth int) expr.Expr {
	if maxDepth <= 1 {
		return p.RandomLeaf(rng)
	}
	// Bias toward leaves at shallow depths to keep trees small
	r := rng.Float64()
	switch {
	case r < 0.4:
		return p.RandomLeaf(rng)
	case r < 0.55:
		return &expr.UnaryNode{
			Op:    p.RandomUnary(rng),
			Child: randomTree(p, rng, maxDepth-1),
		}
	default:
		op := p.RandomBinary(rng)
		if op == expr.OpPow {
			return &expr.BinaryNode{
				Op:    op,
				Left:  randomTree(p, rng, maxDepth-1),
				Right: expr.Const(float64(rng.Intn(3) + 1)),
			}
		}
		return &expr.BinaryNode{
			Op:    op,
			Left:  randomTree(p, rng, maxDepth-1),
			Right: randomTree(p, rng, maxDepth-1),
		}
	}
}

// Variables drawn by every pool.
var vars = []string{"x", "y"}

func randomVar(rng *rand.Rand) expr.Expr {
	return expr.Var(vars[rng.Intn(len(vars))])
}
