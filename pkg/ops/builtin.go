package ops

import "github.com/wildfunctions/algebra/pkg/expr"

func init() {
	RegisterUnary(Unary{Symbol: "-", Precedence: expr.PrecUnary, New: expr.Neg})
	RegisterUnary(Unary{Symbol: "+", Precedence: expr.PrecUnary, New: expr.Plus})

	RegisterBinary(Binary{Symbol: "^", Precedence: expr.PrecPow, LeftAssoc: false, New: expr.Pow})
	RegisterBinary(Binary{Symbol: "*", Precedence: expr.PrecMul, LeftAssoc: true, New: expr.Mul})
	RegisterBinary(Binary{Symbol: "/", Precedence: expr.PrecMul, LeftAssoc: true, New: expr.Div})
	RegisterBinary(Binary{Symbol: "+", Precedence: expr.PrecAdd, LeftAssoc: true, New: expr.Add})
	RegisterBinary(Binary{Symbol: "-", Precedence: expr.PrecAdd, LeftAssoc: true, New: expr.Sub})
	RegisterBinary(Binary{Symbol: "=", Precedence: expr.PrecEq, LeftAssoc: false, New: func(l, r expr.Expr) expr.Expr {
		return expr.Eq(l, r)
	}})
}
