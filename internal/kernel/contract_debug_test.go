//go:build strided_debug

package kernel

import (
	"errors"
	"testing"

	"github.com/born-ml/strided/internal/ndarray"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recoverViolation(f func()) (cv *ContractViolation) {
	defer func() {
		r := recover()
		if err, ok := r.(error); ok {
			errors.As(err, &cv)
		}
	}()
	f()
	return nil
}

func TestContract_ShapeMismatchPanics(t *testing.T) {
	x := mustZeros(t, ndarray.Shape{2, 3}, ndarray.RowMajor)
	y := mustZeros(t, ndarray.Shape{3, 2}, ndarray.RowMajor)
	id := func(v float64) float64 { return v }

	cv := recoverViolation(func() { _ = Unary(x, y, id) })
	require.NotNil(t, cv)
	assert.Equal(t, "unary", cv.Op)
	assert.ErrorIs(t, cv, ErrContractViolation)

	cv = recoverViolation(func() {
		_ = Binary(x, x, y, func(a, b float64) float64 { return a + b })
	})
	require.NotNil(t, cv)
	assert.Equal(t, "binary", cv.Op)

	cv = recoverViolation(func() {
		_ = Map(x, y, func(v float64, _ []int, _ any) float64 { return v })
	})
	require.NotNil(t, cv)
	assert.Equal(t, "map", cv.Op)
}

func TestContract_MatchingShapesPass(t *testing.T) {
	x := mustContiguous(t, seq(6), ndarray.Shape{2, 3}, ndarray.RowMajor)
	y := mustZeros(t, ndarray.Shape{2, 3}, ndarray.ColumnMajor)

	assert.NotPanics(t, func() {
		require.NoError(t, Unary(x, y, func(v float64) float64 { return v }))
	})
	assert.Equal(t, x.Values(), y.Values())
}
