package kernel

import (
	"testing"

	"github.com/born-ml/strided/internal/ndarray"
	"github.com/stretchr/testify/require"
)

// seq returns [0, 1, ..., n-1] as float64.
func seq(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i)
	}
	return out
}

func mustView(t *testing.T, data []float64, shape ndarray.Shape, strides []int, offset int, order ndarray.Order) *ndarray.View[float64, float64] {
	t.Helper()
	v, err := ndarray.New(data, shape, strides, offset, order)
	require.NoError(t, err)
	return v
}

func mustContiguous(t *testing.T, data []float64, shape ndarray.Shape, order ndarray.Order) *ndarray.View[float64, float64] {
	t.Helper()
	v, err := ndarray.FromSlice(data, shape, order)
	require.NoError(t, err)
	return v
}

func mustZeros(t *testing.T, shape ndarray.Shape, order ndarray.Order) *ndarray.View[float64, float64] {
	t.Helper()
	v, err := ndarray.Zeros[float64](shape, order)
	require.NoError(t, err)
	return v
}

// testShapes covers ranks 0 through 6, including size-1 and non-square dimensions.
var testShapes = []ndarray.Shape{
	{},
	{7},
	{1},
	{3, 4},
	{4, 1},
	{2, 3, 4},
	{3, 1, 2},
	{2, 3, 2, 2},
	{2, 1, 3, 2, 2},
	{2, 2, 1, 2, 3, 2},
}

var orders = []ndarray.Order{ndarray.RowMajor, ndarray.ColumnMajor}

var optionSets = []Options{
	DefaultOptions(),
	{Traversal: TraverseDeclared, Coalesce: false},
	{Traversal: TraverseStrides, Coalesce: true},
	{Traversal: TraverseStrides, Coalesce: false},
}
