package kernel

import "github.com/born-ml/strided/internal/ndarray"

// Traversal selects how logical dimensions are assigned to loop levels.
type Traversal int

const (
	// TraverseDeclared follows the first input's declared order: the last
	// dimension is innermost for row-major views, the first for column-major.
	TraverseDeclared Traversal = iota

	// TraverseStrides sorts dimensions by the first input's stride magnitude,
	// smallest innermost. Ties keep row-major preference.
	TraverseStrides
)

// String returns the traversal name.
func (t Traversal) String() string {
	switch t {
	case TraverseDeclared:
		return "declared"
	case TraverseStrides:
		return "strides"
	default:
		return "unknown"
	}
}

// Options tune how a call is planned. The zero value traverses in declared
// order without coalescing.
type Options struct {
	Traversal Traversal
	// Coalesce drops size-1 dimensions and merges adjacent dimensions that
	// are contiguous for every operand. Ignored by Map, which reports indices.
	Coalesce bool
}

// DefaultOptions returns the options used by Unary, Binary and Map.
func DefaultOptions() Options {
	return Options{
		Traversal: TraverseDeclared,
		Coalesce:  true,
	}
}

// selectOrder fills perm (level -> logical dimension) for the first input's
// order and strides. Level 0 is the innermost loop.
func selectOrder(perm []int, t Traversal, order ndarray.Order, strides []int) {
	if t == TraverseStrides {
		strideOrder(perm, strides)
		return
	}
	loopOrder(perm, order)
}

// loopOrder maps the fastest-varying dimension of order to level 0.
func loopOrder(perm []int, order ndarray.Order) {
	n := len(perm)
	for level := range perm {
		if order == ndarray.ColumnMajor {
			perm[level] = level
		} else {
			perm[level] = n - 1 - level
		}
	}
}

// strideOrder stable-sorts dimensions by |stride|, starting from row-major.
func strideOrder(perm []int, strides []int) {
	loopOrder(perm, ndarray.RowMajor)
	for i := 1; i < len(perm); i++ {
		for j := i; j > 0 && absInt(strides[perm[j]]) < absInt(strides[perm[j-1]]); j-- {
			perm[j], perm[j-1] = perm[j-1], perm[j]
		}
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
