// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ndarray

import (
	"github.com/born-ml/strided/internal/ndarray"
)

// Type aliases for public API

// View is a strided N-dimensional array over a buffer of S holding logical
// elements of type E. Direct views have S == E.
type View[S, E any] = ndarray.View[S, E]

// Shape represents the dimensions of a view.
// Example: Shape{2, 3, 4} represents a 3D view with dimensions 2×3×4.
type Shape = ndarray.Shape

// Order is the memory layout convention of a view.
type Order = ndarray.Order

// Memory orders.
const (
	RowMajor    Order = ndarray.RowMajor
	ColumnMajor Order = ndarray.ColumnMajor
)

// DataType is the runtime tag identifying how elements are represented.
type DataType = ndarray.DataType

// Data type constants.
const (
	Generic    DataType = ndarray.Generic
	Float16    DataType = ndarray.Float16
	Float32    DataType = ndarray.Float32
	Float64    DataType = ndarray.Float64
	Int8       DataType = ndarray.Int8
	Int16      DataType = ndarray.Int16
	Int32      DataType = ndarray.Int32
	Int64      DataType = ndarray.Int64
	Uint8      DataType = ndarray.Uint8
	Uint16     DataType = ndarray.Uint16
	Uint32     DataType = ndarray.Uint32
	Uint64     DataType = ndarray.Uint64
	Bool       DataType = ndarray.Bool
	Complex64  DataType = ndarray.Complex64
	Complex128 DataType = ndarray.Complex128
)

// Accessor reads and writes logical elements of type E stored in a []S buffer.
type Accessor[S, E any] = ndarray.Accessor[S, E]

// Tagged is implemented by accessors whose storage has its own DataType.
type Tagged = ndarray.Tagged

// Funcs adapts a pair of get/set functions to Accessor.
type Funcs[S, E any] = ndarray.Funcs[S, E]

// Direct indexes the buffer as-is.
type Direct[T any] = ndarray.Direct[T]

// Complex128Pairs stores complex128 values as interleaved float64 (re, im) pairs.
type Complex128Pairs = ndarray.Complex128Pairs

// Complex64Pairs stores complex64 values as interleaved float32 (re, im) pairs.
type Complex64Pairs = ndarray.Complex64Pairs

// Float16Values presents half-precision storage as float32.
type Float16Values = ndarray.Float16Values

// Boxed reads E values out of []any storage.
type Boxed[E any] = ndarray.Boxed[E]

// ValidationError provides detailed information about a rejected view descriptor.
type ValidationError = ndarray.ValidationError

// Validation errors, matched with errors.Is.
var (
	ErrStridesLength   = ndarray.ErrStridesLength
	ErrNegativeDim     = ndarray.ErrNegativeDim
	ErrNegativeOffset  = ndarray.ErrNegativeOffset
	ErrOutOfBounds     = ndarray.ErrOutOfBounds
	ErrMissingAccessor = ndarray.ErrMissingAccessor
	ErrBroadcast       = ndarray.ErrBroadcast
	ErrInvalidAxis     = ndarray.ErrInvalidAxis
	ErrDataLength      = ndarray.ErrDataLength
)

// New creates a direct view over data.
func New[T any](data []T, shape Shape, strides []int, offset int, order Order) (*View[T, T], error) {
	return ndarray.New(data, shape, strides, offset, order)
}

// NewWithAccessor creates a view whose elements are read and written through acc.
func NewWithAccessor[S, E any](
	data []S, shape Shape, strides []int, offset int, order Order, acc Accessor[S, E],
) (*View[S, E], error) {
	return ndarray.NewWithAccessor(data, shape, strides, offset, order, acc)
}

// FromSlice creates a contiguous direct view. len(data) must equal shape.NumElements().
func FromSlice[T any](data []T, shape Shape, order Order) (*View[T, T], error) {
	return ndarray.FromSlice(data, shape, order)
}

// Zeros allocates a contiguous direct view of zero values.
func Zeros[T any](shape Shape, order Order) (*View[T, T], error) {
	return ndarray.Zeros[T](shape, order)
}

// BroadcastShapes computes the NumPy broadcast shape of a and b.
func BroadcastShapes(a, b Shape) (Shape, bool, error) {
	return ndarray.BroadcastShapes(a, b)
}

// OrderOf infers the memory order from stride magnitudes.
func OrderOf(strides []int) (Order, bool) {
	return ndarray.OrderOf(strides)
}

// DataTypeOf infers the DataType of the element type T.
func DataTypeOf[T any]() DataType {
	return ndarray.DataTypeOf[T]()
}
