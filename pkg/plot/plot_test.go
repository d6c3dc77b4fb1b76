package plot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wildfunctions/algebra/pkg/expr"
	"github.com/wildfunctions/algebra/pkg/parser"
)

type recordingAxes struct {
	x, y string
	got  []float64
}

func (a *recordingAxes) XName() string { return a.x }
func (a *recordingAxes) YName() string { return a.y }
func (a *recordingAxes) Plot(values []float64) int {
	a.got = values
	return len(values)
}

func TestPlot(t *testing.T) {
	axes := &recordingAxes{x: "x", y: "y"}
	n, err := Plot[int](parser.MustParse("y = 2*x + 1"), axes, []float64{0, 1, 2})
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, []float64{1, 3, 5}, axes.got)
}

func TestSampleImplicit(t *testing.T) {
	// 2*y - x = 4  =>  y = (x + 4) / 2
	ys, err := Sample(parser.MustParse("2*y - x = 4"), "x", "y", []float64{0, 2, -4})
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{2, 3, 0}, ys, 1e-12)
}

func TestSampleErrors(t *testing.T) {
	_, err := Sample(parser.MustParse("y*y = x"), "x", "y", []float64{1})
	require.ErrorIs(t, err, expr.ErrNotLinear)

	_, err = Sample(parser.MustParse("y = y + x"), "x", "y", []float64{1})
	require.ErrorIs(t, err, expr.ErrDivisionByZero)

	_, err = Sample(parser.MustParse("y = x + z"), "x", "y", []float64{1})
	require.ErrorIs(t, err, expr.ErrUnboundIdentifier)

	_, err = Sample(parser.MustParse("y = 1/x"), "x", "y", []float64{1, 0})
	require.ErrorIs(t, err, expr.ErrDivisionByZero)

	axes := &recordingAxes{x: "x", y: "y"}
	n, err := Plot[int](parser.MustParse("y + x"), axes, []float64{1})
	require.ErrorIs(t, err, expr.ErrNotEquation)
	assert.Zero(t, n)
	assert.Nil(t, axes.got)
}

func TestRange(t *testing.T) {
	assert.Equal(t, []float64{0, 0.25, 0.5, 0.75, 1}, Range(0, 1, 5))
	assert.Equal(t, []float64{3}, Range(3, 9, 1))
	assert.Nil(t, Range(0, 1, 0))
}
