package expr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wildfunctions/algebra/pkg/expr"
	"github.com/wildfunctions/algebra/pkg/parser"
)

func evalString(t *testing.T, s string, b expr.Bindings) (float64, error) {
	t.Helper()
	return expr.Evaluate(parser.MustParse(s), b)
}

func TestEvaluate(t *testing.T) {
	cases := []struct {
		in   string
		b    expr.Bindings
		want float64
	}{
		{"2+3*4", nil, 14},
		{"2*(3+4)", nil, 14},
		{"10/4", nil, 2.5},
		{"2^3^2", nil, 512},
		{"-2^2", nil, -4},
		{"(-2)^2", nil, 4},
		{"2^-1", nil, 0.5},
		{"1e3 + 2.5", nil, 1002.5},
		{"7 - 2 - 1", nil, 4},
		{"+x", expr.Bindings{"x": 3}, 3},
		{"x*y - x", expr.Bindings{"x": 2, "y": 5}, 8},
		{"(-8)^3", nil, -512},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := evalString(t, tc.in, tc.b)
			require.NoError(t, err)
			assert.InDelta(t, tc.want, got, 1e-12)
		})
	}
}

func TestEvaluateErrors(t *testing.T) {
	cases := []struct {
		in   string
		b    expr.Bindings
		want error
	}{
		{"x+1", expr.Bindings{}, expr.ErrUnboundIdentifier},
		{"x+1", nil, expr.ErrUnboundIdentifier},
		{"1/0", nil, expr.ErrDivisionByZero},
		{"1/(x-x)", expr.Bindings{"x": 4}, expr.ErrDivisionByZero},
		{"0^-1", nil, expr.ErrDivisionByZero},
		{"(-8)^(1/3)", nil, expr.ErrDomain},
		{"x = 1", expr.Bindings{"x": 1}, expr.ErrEquation},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			_, err := evalString(t, tc.in, tc.b)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestEvaluateUnboundNamesVariable(t *testing.T) {
	_, err := evalString(t, "2*speed", nil)
	require.ErrorIs(t, err, expr.ErrUnboundIdentifier)
	assert.Contains(t, err.Error(), "speed")
}
