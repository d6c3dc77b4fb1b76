// Package plot turns an equation in two variables into the y values a
// plotting backend needs. Drawing is left to the Axes implementation.
package plot

import (
	"fmt"

	"github.com/wildfunctions/algebra/pkg/expr"
)

// Axes is a plotting surface with named axes.
type Axes[R any] interface {
	XName() string
	YName() string
	Plot(values []float64) R
}

// Sample solves eq for yName and evaluates the solution at each x in xs with
// xName bound to x.
func Sample(eq expr.Expr, xName, yName string, xs []float64) ([]float64, error) {
	solved, err := expr.Solve(eq, yName)
	if err != nil {
		return nil, err
	}
	ys := make([]float64, len(xs))
	b := expr.Bindings{}
	for i, x := range xs {
		b[xName] = x
		y, err := solved.Right.Eval(b)
		if err != nil {
			return nil, fmt.Errorf("plot at %s=%g: %w", xName, x, err)
		}
		ys[i] = y
	}
	return ys, nil
}

// Plot samples eq along the axes and hands the values to axes.Plot.
func Plot[R any](eq expr.Expr, axes Axes[R], xs []float64) (R, error) {
	ys, err := Sample(eq, axes.XName(), axes.YName(), xs)
	if err != nil {
		var zero R
		return zero, err
	}
	return axes.Plot(ys), nil
}

// Range returns n evenly spaced points from lo to hi inclusive.
func Range(lo, hi float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []float64{lo}
	}
	xs := make([]float64, n)
	step := (hi - lo) / float64(n-1)
	for i := range xs {
		xs[i] = lo + step*float64(i)
	}
	xs[n-1] = hi
	return xs
}
