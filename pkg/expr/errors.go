package expr

import "errors"

var (
	// ErrUnboundIdentifier is returned when evaluation meets a variable with no binding.
	ErrUnboundIdentifier = errors.New("expr: unbound identifier")

	// ErrDivisionByZero is returned when a divisor evaluates to exactly zero.
	ErrDivisionByZero = errors.New("expr: division by zero")

	// ErrDomain is returned when a power has no real result.
	ErrDomain = errors.New("expr: result is not a real number")

	// ErrEquation is returned when an Equation node is evaluated.
	ErrEquation = errors.New("expr: an equation has no numeric value")

	// ErrNotLinear is returned when an expression has no form k*var + b.
	ErrNotLinear = errors.New("expr: not linear")

	// ErrNotEquation is returned when an equation is required but another node was given.
	ErrNotEquation = errors.New("expr: not an equation")
)
