package ops

import (
	"fmt"

	"github.com/born-ml/strided/internal/kernel"
	"github.com/born-ml/strided/internal/ndarray"
)

// Scalar operations - element-wise operations with a scalar value.

// AddScalar adds s to each element of x.
func AddScalar[T Number](x *ndarray.View[T, T], s T) (*ndarray.View[T, T], error) {
	return mapScalar("addScalar", x, func(v T) T { return v + s })
}

// SubScalar subtracts s from each element of x.
func SubScalar[T Number](x *ndarray.View[T, T], s T) (*ndarray.View[T, T], error) {
	return mapScalar("subScalar", x, func(v T) T { return v - s })
}

// MulScalar multiplies each element of x by s.
func MulScalar[T Number](x *ndarray.View[T, T], s T) (*ndarray.View[T, T], error) {
	return mapScalar("mulScalar", x, func(v T) T { return v * s })
}

// DivScalar divides each element of x by s.
func DivScalar[T Number](x *ndarray.View[T, T], s T) (*ndarray.View[T, T], error) {
	return mapScalar("divScalar", x, func(v T) T { return v / s })
}

func mapScalar[T Number](name string, x *ndarray.View[T, T], fn func(T) T) (*ndarray.View[T, T], error) {
	result, err := ndarray.Zeros[T](x.Shape(), x.Order())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	if err := kernel.Unary(x, result, fn); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return result, nil
}
