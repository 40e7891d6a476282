// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package ops provides broadcasting element-wise operations on strided views.
//
// Operations that return a view allocate a contiguous result in the
// broadcast shape, laid out in the first operand's order. Inputs are never
// modified.
//
// Example:
//
//	a, _ := ndarray.FromSlice([]float64{1, 2, 3}, ndarray.Shape{3, 1}, ndarray.RowMajor)
//	b, _ := ndarray.FromSlice([]float64{10, 20}, ndarray.Shape{2}, ndarray.RowMajor)
//	c, _ := ops.Add(a, b) // shape [3 2]: [11 21 12 22 13 23]
package ops

import (
	"github.com/born-ml/strided/internal/ndarray"
	"github.com/born-ml/strided/internal/ops"
)

// Number lists the real numeric element types accepted by arithmetic ops.
type Number = ops.Number

// Signed lists numeric types with a meaningful negation.
type Signed = ops.Signed

// Float lists real floating-point element types.
type Float = ops.Float

// Complex lists the complex element types accepted by Conj.
type Complex = ops.Complex

// Op identifies a binary arithmetic operation.
type Op = ops.Op

// Binary arithmetic operations.
const (
	OpAdd Op = ops.OpAdd
	OpSub Op = ops.OpSub
	OpMul Op = ops.OpMul
	OpDiv Op = ops.OpDiv
)

// ErrUnsupportedOp is returned for an Op value outside the known set.
var ErrUnsupportedOp = ops.ErrUnsupportedOp

// Add returns a + b element-wise with NumPy broadcasting.
func Add[T Number](a, b *ndarray.View[T, T]) (*ndarray.View[T, T], error) { return ops.Add(a, b) }

// Sub returns a - b element-wise with NumPy broadcasting.
func Sub[T Number](a, b *ndarray.View[T, T]) (*ndarray.View[T, T], error) { return ops.Sub(a, b) }

// Mul returns a * b element-wise with NumPy broadcasting.
func Mul[T Number](a, b *ndarray.View[T, T]) (*ndarray.View[T, T], error) { return ops.Mul(a, b) }

// Div returns a / b element-wise with NumPy broadcasting.
func Div[T Number](a, b *ndarray.View[T, T]) (*ndarray.View[T, T], error) { return ops.Div(a, b) }

// Binary returns op(a, b) element-wise with NumPy broadcasting.
func Binary[T Number](op Op, a, b *ndarray.View[T, T]) (*ndarray.View[T, T], error) {
	return ops.Binary(op, a, b)
}

// BinaryInto writes op(a, b) into out, broadcasting a and b to out's shape.
func BinaryInto[T Number](op Op, out, a, b *ndarray.View[T, T]) error {
	return ops.BinaryInto(op, out, a, b)
}

// AddScalar adds s to each element of x.
func AddScalar[T Number](x *ndarray.View[T, T], s T) (*ndarray.View[T, T], error) {
	return ops.AddScalar(x, s)
}

// SubScalar subtracts s from each element of x.
func SubScalar[T Number](x *ndarray.View[T, T], s T) (*ndarray.View[T, T], error) {
	return ops.SubScalar(x, s)
}

// MulScalar multiplies each element of x by s.
func MulScalar[T Number](x *ndarray.View[T, T], s T) (*ndarray.View[T, T], error) {
	return ops.MulScalar(x, s)
}

// DivScalar divides each element of x by s.
func DivScalar[T Number](x *ndarray.View[T, T], s T) (*ndarray.View[T, T], error) {
	return ops.DivScalar(x, s)
}

// Exp computes element-wise exponential.
func Exp[T Float](x *ndarray.View[T, T]) (*ndarray.View[T, T], error) { return ops.Exp(x) }

// Log computes element-wise natural logarithm.
func Log[T Float](x *ndarray.View[T, T]) (*ndarray.View[T, T], error) { return ops.Log(x) }

// Sqrt computes element-wise square root.
func Sqrt[T Float](x *ndarray.View[T, T]) (*ndarray.View[T, T], error) { return ops.Sqrt(x) }

// Abs computes element-wise absolute value.
func Abs[T Signed](x *ndarray.View[T, T]) (*ndarray.View[T, T], error) { return ops.Abs(x) }

// Neg computes element-wise negation.
func Neg[T Signed](x *ndarray.View[T, T]) (*ndarray.View[T, T], error) { return ops.Neg(x) }

// Greater returns a > b element-wise.
func Greater[T Number](a, b *ndarray.View[T, T]) (*ndarray.View[bool, bool], error) {
	return ops.Greater(a, b)
}

// Less returns a < b element-wise.
func Less[T Number](a, b *ndarray.View[T, T]) (*ndarray.View[bool, bool], error) {
	return ops.Less(a, b)
}

// Equal returns a == b element-wise.
func Equal[T Number](a, b *ndarray.View[T, T]) (*ndarray.View[bool, bool], error) {
	return ops.Equal(a, b)
}

// Assign copies src into dst, broadcasting src to dst's shape.
func Assign[SD, SS, E any](dst *ndarray.View[SD, E], src *ndarray.View[SS, E]) error {
	return ops.Assign(dst, src)
}

// Apply returns a new direct view holding fn(x) for every element of x.
func Apply[S, E, U any](x *ndarray.View[S, E], fn func(E) U) (*ndarray.View[U, U], error) {
	return ops.Apply(x, fn)
}

// Conj returns the complex conjugate of x as a direct view.
func Conj[S any, C Complex](x *ndarray.View[S, C]) (*ndarray.View[C, C], error) {
	return ops.Conj(x)
}
