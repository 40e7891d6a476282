package kernel

import (
	"fmt"
	"testing"

	"github.com/born-ml/strided/internal/ndarray"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnary_EndToEnd(t *testing.T) {
	x := mustContiguous(t, []float64{1, 2, 3, 4}, ndarray.Shape{2, 2}, ndarray.RowMajor)
	y := mustZeros(t, ndarray.Shape{2, 2}, ndarray.RowMajor)

	err := Unary(x, y, func(v float64) float64 { return v * 10 })
	require.NoError(t, err)
	assert.Equal(t, []float64{10, 20, 30, 40}, y.Data())
}

// visit records the source values in the order the kernel reads them.
func visit(t *testing.T, x *ndarray.View[float64, float64]) []float64 {
	t.Helper()
	y := mustZeros(t, x.Shape(), ndarray.RowMajor)
	var seen []float64
	err := Unary(x, y, func(v float64) float64 {
		seen = append(seen, v)
		return v
	})
	require.NoError(t, err)
	return seen
}

func TestUnary_StrideAndOffset(t *testing.T) {
	buf := seq(10)

	x := mustView(t, buf, ndarray.Shape{5}, []int{2}, 1, ndarray.RowMajor)
	assert.Equal(t, []float64{1, 3, 5, 7, 9}, visit(t, x))
}

func TestUnary_NegativeStride(t *testing.T) {
	buf := seq(10)

	x := mustView(t, buf, ndarray.Shape{3}, []int{-2}, 4, ndarray.RowMajor)
	assert.Equal(t, []float64{4, 2, 0}, visit(t, x))
}

func TestUnary_BroadcastStride(t *testing.T) {
	buf := seq(10)

	x := mustView(t, buf, ndarray.Shape{3}, []int{0}, 2, ndarray.RowMajor)
	assert.Equal(t, []float64{2, 2, 2}, visit(t, x))
}

func TestUnary_ReversedBroadcastRows(t *testing.T) {
	// Rows repeat (stride 0) and each row walks the buffer backwards.
	buf := []float64{1, 2, 3}
	x := mustView(t, buf, ndarray.Shape{2, 3}, []int{0, -1}, 2, ndarray.RowMajor)

	for _, order := range orders {
		for _, opts := range optionSets {
			y := mustZeros(t, ndarray.Shape{2, 3}, order)
			require.NoError(t, UnaryWith(opts, x, y, func(v float64) float64 { return v }))
			assert.Equal(t, []float64{3, 2, 1, 3, 2, 1}, y.Values(), "order %s opts %+v", order, opts)
		}
	}

	// Writing through a reversed view lands in mirrored positions.
	out := make([]float64, 3)
	y := mustView(t, out, ndarray.Shape{3}, []int{-1}, 2, ndarray.RowMajor)
	src := mustContiguous(t, []float64{10, 20, 30}, ndarray.Shape{3}, ndarray.RowMajor)
	require.NoError(t, Unary(src, y, func(v float64) float64 { return v }))
	assert.Equal(t, []float64{30, 20, 10}, out)
}

func TestUnary_ZeroSize(t *testing.T) {
	for _, shape := range []ndarray.Shape{{0}, {0, 5}, {3, 0, 2}} {
		x := mustZeros(t, shape, ndarray.RowMajor)
		out := []float64{7, 7, 7}
		y := mustView(t, out, shape, shape.Strides(ndarray.RowMajor), 0, ndarray.RowMajor)

		calls := 0
		err := Unary(x, y, func(v float64) float64 {
			calls++
			return v
		})
		require.NoError(t, err)
		assert.Zero(t, calls, "shape %v", shape)
		assert.Equal(t, []float64{7, 7, 7}, out, "shape %v", shape)
	}
}

func TestUnary_Scalar(t *testing.T) {
	buf := []float64{0, 0, 0, 5}
	x := mustView(t, buf, ndarray.Shape{}, []int{}, 3, ndarray.RowMajor)
	out := []float64{0, 0}
	y := mustView(t, out, ndarray.Shape{}, []int{}, 1, ndarray.RowMajor)

	calls := 0
	err := Unary(x, y, func(v float64) float64 {
		calls++
		return v + 1
	})
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.Equal(t, []float64{0, 6}, out)
}

func TestUnary_AllShapesOrdersAndOptions(t *testing.T) {
	for _, shape := range testShapes {
		n := shape.NumElements()
		for _, inOrder := range orders {
			for _, outOrder := range orders {
				for _, opts := range optionSets {
					name := fmt.Sprintf("%v/%s->%s/%s/coalesce=%v", []int(shape), inOrder, outOrder, opts.Traversal, opts.Coalesce)
					t.Run(name, func(t *testing.T) {
						x := mustContiguous(t, seq(n), shape, inOrder)
						y := mustZeros(t, shape, outOrder)

						calls := 0
						err := UnaryWith(opts, x, y, func(v float64) float64 {
							calls++
							return v*2 + 1
						})
						require.NoError(t, err)
						assert.Equal(t, n, calls)

						want := x.Values()
						for i := range want {
							want[i] = want[i]*2 + 1
						}
						assert.Equal(t, want, y.Values())
					})
				}
			}
		}
	}
}

func TestUnary_PermutedAndSlicedViews(t *testing.T) {
	base := mustContiguous(t, seq(2*3*4*5), ndarray.Shape{2, 3, 4, 5}, ndarray.RowMajor)

	permuted, err := base.Permute(2, 0, 3, 1)
	require.NoError(t, err)
	sliced, err := permuted.Slice(2, 1, 4)
	require.NoError(t, err)
	reversed, err := sliced.Reverse(0)
	require.NoError(t, err)

	for _, x := range []*ndarray.View[float64, float64]{permuted, sliced, reversed} {
		for _, opts := range optionSets {
			y := mustZeros(t, x.Shape(), ndarray.ColumnMajor)
			require.NoError(t, UnaryWith(opts, x, y, func(v float64) float64 { return -v }))

			want := x.Values()
			for i := range want {
				want[i] = -want[i]
			}
			assert.Equal(t, want, y.Values(), "view %s opts %+v", x, opts)
		}
	}
}

func TestUnary_OrderInvariance(t *testing.T) {
	// Same strides, different declared order: only the traversal changes.
	buf := seq(24)
	shape := ndarray.Shape{2, 3, 4}
	strides := []int{12, 4, 1}

	results := make([][]float64, 0, 2)
	for _, order := range orders {
		x := mustView(t, buf, shape, strides, 0, order)
		out := make([]float64, 24)
		y := mustView(t, out, shape, strides, 0, order)
		require.NoError(t, UnaryWith(Options{}, x, y, func(v float64) float64 { return v*v - 3 }))
		results = append(results, out)
	}
	assert.Equal(t, results[0], results[1])
}

func TestUnary_InPlace(t *testing.T) {
	buf := seq(6)
	x := mustContiguous(t, buf, ndarray.Shape{2, 3}, ndarray.RowMajor)

	require.NoError(t, Unary(x, x, func(v float64) float64 { return v * 2 }))
	assert.Equal(t, []float64{0, 2, 4, 6, 8, 10}, buf)
}

func TestUnary_PanicLeavesPrefix(t *testing.T) {
	x := mustContiguous(t, []float64{1, 2, 3, 4, 5}, ndarray.Shape{5}, ndarray.RowMajor)
	out := []float64{-1, -1, -1, -1, -1}
	y := mustContiguous(t, out, ndarray.Shape{5}, ndarray.RowMajor)

	assert.PanicsWithValue(t, "bad element", func() {
		_ = Unary(x, y, func(v float64) float64 {
			if v == 3 {
				panic("bad element")
			}
			return v * 100
		})
	})
	assert.Equal(t, []float64{100, 200, -1, -1, -1}, out)
}

func TestUnary_Errors(t *testing.T) {
	x := mustZeros(t, ndarray.Shape{2, 2}, ndarray.RowMajor)
	y := mustZeros(t, ndarray.Shape{4}, ndarray.RowMajor)

	err := Unary[float64, float64, float64, float64](x, x, nil)
	assert.ErrorIs(t, err, ErrInvalidCallback)

	err = Unary(x, y, func(v float64) float64 { return v })
	assert.ErrorIs(t, err, ErrRankMismatch)
}

func TestUnary_TypeConversion(t *testing.T) {
	x, err := ndarray.FromSlice([]int32{1, -2, 3}, ndarray.Shape{3}, ndarray.RowMajor)
	require.NoError(t, err)
	y, err := ndarray.Zeros[bool](ndarray.Shape{3}, ndarray.RowMajor)
	require.NoError(t, err)

	require.NoError(t, Unary(x, y, func(v int32) bool { return v > 0 }))
	assert.Equal(t, []bool{true, false, true}, y.Data())
}
