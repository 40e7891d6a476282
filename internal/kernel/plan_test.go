package kernel

import (
	"testing"

	"github.com/born-ml/strided/internal/ndarray"
	"github.com/stretchr/testify/assert"
)

func planFor(shape ndarray.Shape, opts Options, order ndarray.Order, strides ...[]int) *plan {
	p := newPlanBuffers(len(shape))
	p.rank, p.ndim = len(shape), len(shape)
	p.order(shape, opts.Traversal, order, strides[0])
	for _, s := range strides {
		p.operand(s, 0)
	}
	p.finish(opts.Coalesce)
	return p
}

func TestLoopOrder(t *testing.T) {
	perm := make([]int, 4)

	loopOrder(perm, ndarray.RowMajor)
	assert.Equal(t, []int{3, 2, 1, 0}, perm, "row-major: last dimension innermost")

	loopOrder(perm, ndarray.ColumnMajor)
	assert.Equal(t, []int{0, 1, 2, 3}, perm, "column-major: first dimension innermost")
}

func TestStrideOrder(t *testing.T) {
	perm := make([]int, 3)

	strideOrder(perm, []int{1, 8, -2})
	assert.Equal(t, []int{0, 2, 1}, perm)

	// Ties keep row-major preference.
	strideOrder(perm, []int{0, 0, 0})
	assert.Equal(t, []int{2, 1, 0}, perm)
}

func TestPlanDeltas(t *testing.T) {
	noCoalesce := Options{Traversal: TraverseDeclared}

	tests := []struct {
		name    string
		shape   ndarray.Shape
		order   ndarray.Order
		strides []int
		extents []int
		deltas  []int
	}{
		{"row-major contiguous", ndarray.Shape{2, 3}, ndarray.RowMajor, []int{3, 1}, []int{3, 2}, []int{1, 0}},
		{"column-major contiguous", ndarray.Shape{2, 3}, ndarray.ColumnMajor, []int{1, 2}, []int{2, 3}, []int{1, 0}},
		{"padded rows", ndarray.Shape{2, 3}, ndarray.RowMajor, []int{10, 2}, []int{3, 2}, []int{2, 4}},
		{"reversed rows", ndarray.Shape{2, 3}, ndarray.RowMajor, []int{-3, 1}, []int{3, 2}, []int{1, -6}},
		{"broadcast rows", ndarray.Shape{4, 3}, ndarray.RowMajor, []int{0, 1}, []int{3, 4}, []int{1, -3}},
		{"rank 3", ndarray.Shape{2, 3, 4}, ndarray.RowMajor, []int{12, 4, 1}, []int{4, 3, 2}, []int{1, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := planFor(tt.shape, noCoalesce, tt.order, tt.strides)
			assert.Equal(t, len(tt.shape), p.ndim)
			assert.Equal(t, tt.extents, p.extents[:p.ndim])
			assert.Equal(t, tt.deltas, p.deltas[0][:p.ndim])
		})
	}
}

func TestPlanDeltasPerOperand(t *testing.T) {
	shape := ndarray.Shape{2, 3}
	p := planFor(shape, Options{}, ndarray.RowMajor, []int{3, 1}, []int{1, 2})

	assert.Equal(t, []int{3, 2}, p.extents[:2], "extents shared by all operands")
	assert.Equal(t, []int{1, 0}, p.deltas[0][:2])
	assert.Equal(t, []int{2, 1 - 3*2}, p.deltas[1][:2])
}

func TestPlanCoalesce(t *testing.T) {
	opts := DefaultOptions()

	t.Run("contiguous collapses to one level", func(t *testing.T) {
		p := planFor(ndarray.Shape{2, 3, 4}, opts, ndarray.RowMajor, []int{12, 4, 1}, []int{12, 4, 1})
		assert.Equal(t, 1, p.ndim)
		assert.Equal(t, 24, p.extents[0])
		assert.Equal(t, 1, p.deltas[1][0])
	})

	t.Run("size-1 dimensions dropped", func(t *testing.T) {
		p := planFor(ndarray.Shape{3, 1, 2}, opts, ndarray.RowMajor, []int{20, 7, 5})
		assert.Equal(t, 2, p.ndim)
		assert.Equal(t, []int{2, 3}, p.extents[:2])
		assert.Equal(t, []int{5, 20 - 2*5}, p.deltas[0][:2])
	})

	t.Run("mismatched operand blocks merge", func(t *testing.T) {
		p := planFor(ndarray.Shape{2, 3}, opts, ndarray.RowMajor, []int{3, 1}, []int{1, 2})
		assert.Equal(t, 2, p.ndim)
	})

	t.Run("all size-1 becomes a single element", func(t *testing.T) {
		p := planFor(ndarray.Shape{1, 1}, opts, ndarray.RowMajor, []int{5, 9})
		assert.Equal(t, 0, p.ndim)
	})

	t.Run("reversed contiguous still merges", func(t *testing.T) {
		p := planFor(ndarray.Shape{2, 3}, opts, ndarray.RowMajor, []int{-3, -1})
		assert.Equal(t, 1, p.ndim)
		assert.Equal(t, -1, p.deltas[0][0])
	})
}

func TestPlanPool(t *testing.T) {
	p := getPlan(3)
	assert.Len(t, p.extents, 3)
	putPlan(p)

	big := getPlan(maxPooledRank + 2)
	assert.Len(t, big.perm, maxPooledRank+2)
	putPlan(big)
}
