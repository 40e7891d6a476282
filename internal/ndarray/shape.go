package ndarray

import "fmt"

// Shape represents the dimensions of a view.
type Shape []int

// NumElements returns the total number of elements.
// A scalar (empty shape) has one element; any zero dimension yields zero.
func (s Shape) NumElements() int {
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Ndim returns the number of dimensions.
func (s Shape) Ndim() int {
	return len(s)
}

// Validate checks that no dimension is negative. Zero-sized dimensions are valid.
func (s Shape) Validate() error {
	for i, dim := range s {
		if dim < 0 {
			return fmt.Errorf("%w: index %d: %d", ErrNegativeDim, i, dim)
		}
	}
	return nil
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// Strides calculates contiguous strides (in elements) for the given order.
//
// Row-major: stride[i] = product of all dimensions after i.
// Column-major: stride[i] = product of all dimensions before i.
// Zero-sized dimensions are treated as 1 so strides stay usable for slicing.
func (s Shape) Strides(order Order) []int {
	strides := make([]int, len(s))
	if len(s) == 0 {
		return strides
	}

	acc := 1
	if order == ColumnMajor {
		for i := 0; i < len(s); i++ {
			strides[i] = acc
			acc *= max(s[i], 1)
		}
		return strides
	}

	for i := len(s) - 1; i >= 0; i-- {
		strides[i] = acc
		acc *= max(s[i], 1)
	}
	return strides
}

// BroadcastShapes implements NumPy-style broadcasting rules.
//
// Rules:
// 1. Compare shapes element-wise from right to left
// 2. Dimensions are compatible if:
//   - They are equal, OR
//   - One of them is 1
//
// 3. Missing dimensions are treated as 1
//
// Returns the broadcasted shape, a flag indicating if broadcasting is needed, and an error if incompatible.
//
// Examples:
//
//	(3, 1) + (3, 5) → (3, 5), true, nil
//	(1, 5) + (3, 5) → (3, 5), true, nil
//	(3, 5) + (3, 5) → (3, 5), false, nil
//	(3, 4) + (3, 5) → nil, false, Error
func BroadcastShapes(a, b Shape) (Shape, bool, error) {
	maxLen := max(len(a), len(b))
	result := make(Shape, maxLen)
	needsBroadcast := len(a) != len(b)

	for i := 0; i < maxLen; i++ {
		aIdx := len(a) - 1 - i
		bIdx := len(b) - 1 - i

		aDim := 1
		if aIdx >= 0 {
			aDim = a[aIdx]
		}

		bDim := 1
		if bIdx >= 0 {
			bDim = b[bIdx]
		}

		switch {
		case aDim == bDim:
			result[maxLen-1-i] = aDim
		case aDim == 1:
			result[maxLen-1-i] = bDim
			needsBroadcast = true
		case bDim == 1:
			result[maxLen-1-i] = aDim
			needsBroadcast = true
		default:
			return nil, false, fmt.Errorf("%w: %v vs %v (dimension %d: %d vs %d)",
				ErrBroadcast, a, b, maxLen-1-i, aDim, bDim)
		}
	}

	return result, needsBroadcast, nil
}

// broadcastStrides computes strides presenting (inShape, inStrides) as outShape.
// Padded and size-1 dimensions that are stretched get stride 0. Failures are
// reported as a *ValidationError wrapping ErrBroadcast.
func broadcastStrides(inShape Shape, inStrides []int, outShape Shape) ([]int, error) {
	outDim := len(outShape)
	inDim := len(inShape)
	if inDim > outDim {
		return nil, invalid("broadcast", ErrBroadcast, "cannot broadcast %v to lower rank %v", inShape, outShape)
	}

	strides := make([]int, outDim)
	pad := outDim - inDim
	for i := 0; i < outDim; i++ {
		inIdx := i - pad
		switch {
		case inIdx < 0:
			strides[i] = 0
		case inShape[inIdx] == outShape[i]:
			strides[i] = inStrides[inIdx]
		case inShape[inIdx] == 1:
			strides[i] = 0
		default:
			return nil, invalid("broadcast", ErrBroadcast, "cannot broadcast %v to %v (dimension %d: %d vs %d)",
				inShape, outShape, i, inShape[inIdx], outShape[i])
		}
	}
	return strides, nil
}
