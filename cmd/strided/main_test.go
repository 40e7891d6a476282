package main

import (
	"testing"

	"github.com/born-ml/strided/kernel"
	"github.com/born-ml/strided/ndarray"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseShape(t *testing.T) {
	shape, err := parseShape("2, 3,4")
	require.NoError(t, err)
	assert.Equal(t, ndarray.Shape{2, 3, 4}, shape)

	shape, err = parseShape("")
	require.NoError(t, err)
	assert.Empty(t, shape)

	_, err = parseShape("2,x")
	assert.Error(t, err)
	_, err = parseShape("2,-1")
	assert.Error(t, err)
}

func TestBenchFunc(t *testing.T) {
	x, err := ndarray.FromSlice([]float64{1, 2, 3, 4}, ndarray.Shape{2, 2}, ndarray.RowMajor)
	require.NoError(t, err)
	y, err := ndarray.Zeros[float64](ndarray.Shape{2, 2}, ndarray.RowMajor)
	require.NoError(t, err)

	tests := []struct {
		op   string
		par  bool
		want []float64
	}{
		{"unary", false, []float64{2, 4, 6, 8}},
		{"unary", true, []float64{2, 4, 6, 8}},
		{"binary", false, []float64{2, 4, 6, 8}},
		{"binary", true, []float64{2, 4, 6, 8}},
		{"map", false, []float64{3, 4, 5, 6}},
	}
	for _, tt := range tests {
		run, err := benchFunc(tt.op, tt.par, kernel.DefaultParallelConfig(), kernel.DefaultOptions(), x, y)
		require.NoError(t, err)
		require.NoError(t, run())
		assert.Equal(t, tt.want, y.Data(), "%s parallel=%v", tt.op, tt.par)
	}

	_, err = benchFunc("conv", false, kernel.DefaultParallelConfig(), kernel.DefaultOptions(), x, y)
	assert.Error(t, err)
}

func TestRunDemo(t *testing.T) {
	assert.NoError(t, runDemo(nil))
}
