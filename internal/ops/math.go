package ops

import (
	"math"

	"github.com/born-ml/strided/internal/ndarray"
)

// Exp computes element-wise exponential: exp(x).
func Exp[T Float](x *ndarray.View[T, T]) (*ndarray.View[T, T], error) {
	return mapScalar("exp", x, func(v T) T { return T(math.Exp(float64(v))) })
}

// Log computes element-wise natural logarithm: ln(x).
// Non-positive inputs follow math.Log (-Inf for 0, NaN below).
func Log[T Float](x *ndarray.View[T, T]) (*ndarray.View[T, T], error) {
	return mapScalar("log", x, func(v T) T { return T(math.Log(float64(v))) })
}

// Sqrt computes element-wise square root: sqrt(x).
func Sqrt[T Float](x *ndarray.View[T, T]) (*ndarray.View[T, T], error) {
	return mapScalar("sqrt", x, func(v T) T { return T(math.Sqrt(float64(v))) })
}

// Abs computes element-wise absolute value: |x|.
func Abs[T Signed](x *ndarray.View[T, T]) (*ndarray.View[T, T], error) {
	return mapScalar("abs", x, func(v T) T {
		if v < 0 {
			return -v
		}
		return v
	})
}

// Neg computes element-wise negation: -x.
func Neg[T Signed](x *ndarray.View[T, T]) (*ndarray.View[T, T], error) {
	return mapScalar("neg", x, func(v T) T { return -v })
}
