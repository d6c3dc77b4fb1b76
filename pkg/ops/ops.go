// Package ops holds the operator table consulted by the parser.
//
// The table is filled by init functions and only read afterwards, so it is
// safe to use from many goroutines once the program has started.
package ops

import (
	"fmt"
	"sort"

	"github.com/wildfunctions/algebra/pkg/expr"
)

// Unary describes a prefix operator.
type Unary struct {
	Symbol     string
	Precedence int
	New        func(x expr.Expr) expr.Expr
}

// Binary describes an infix operator.
type Binary struct {
	Symbol     string
	Precedence int
	LeftAssoc  bool
	New        func(l, r expr.Expr) expr.Expr
}

var (
	unary  = map[string]Unary{}
	binary = map[string]Binary{}
)

// Leaf constructors used by the parser for identifiers and number literals.
var (
	NewIdentifier func(name string) expr.Expr = expr.Var
	NewConstant   func(v float64) expr.Expr   = expr.Const
)

// RegisterUnary adds a prefix operator. It panics if the symbol is taken.
func RegisterUnary(u Unary) {
	if _, ok := unary[u.Symbol]; ok {
		panic(fmt.Sprintf("ops: unary operator %q registered twice", u.Symbol))
	}
	unary[u.Symbol] = u
}

// RegisterBinary adds an infix operator. It panics if the symbol is taken.
func RegisterBinary(b Binary) {
	if _, ok := binary[b.Symbol]; ok {
		panic(fmt.Sprintf("ops: binary operator %q registered twice", b.Symbol))
	}
	binary[b.Symbol] = b
}

// LookupUnary returns the prefix operator for symbol.
func LookupUnary(symbol string) (Unary, bool) {
	u, ok := unary[symbol]
	return u, ok
}

// LookupBinary returns the infix operator for symbol.
func LookupBinary(symbol string) (Binary, bool) {
	b, ok := binary[symbol]
	return b, ok
}

// Symbols returns every registered operator symbol, sorted.
func Symbols() []string {
	seen := map[string]struct{}{}
	for k := range unary {
		seen[k] = struct{}{}
	}
	for k := range binary {
		seen[k] = struct{}{}
	}
	names := make([]string, 0, len(seen))
	for k := range seen {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
