// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package ndarray describes strided N-dimensional arrays for the strided kernels.
//
// # Overview
//
// A View is a logical N-dimensional array laid over a flat buffer. It never
// owns or copies its buffer: several views may share one. Elements live at
//
//	offset + Σ idx[k]*strides[k]
//
// so negative strides (reversed dimensions), zero strides (broadcast
// dimensions) and arbitrary permutations are all plain views.
//
// # Basic Usage
//
//	import "github.com/born-ml/strided/ndarray"
//
//	func main() {
//	    buf := []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
//
//	    // Every second element starting at index 1: 1, 3, 5, 7, 9.
//	    v, err := ndarray.New(buf, ndarray.Shape{5}, []int{2}, 1, ndarray.RowMajor)
//
//	    // Contiguous 2×5 matrix over the same buffer, then its transpose.
//	    m, err := ndarray.FromSlice(buf, ndarray.Shape{2, 5}, ndarray.RowMajor)
//	    t := m.Transpose()
//	}
//
// # Accessors
//
// Direct views store elements as-is and are read by plain indexing. Views
// whose logical elements differ from the stored ones carry an Accessor:
//   - Complex128Pairs, Complex64Pairs: complex values as interleaved floats
//   - Float16Values: IEEE half precision presented as float32
//   - Boxed: heterogeneous []any storage
//   - Funcs: any pair of get/set functions, e.g. over struct fields
//
// # Broadcasting
//
// BroadcastTo follows NumPy rules by giving stretched dimensions stride 0:
//
//	row, _ := ndarray.FromSlice([]float64{1, 2, 3}, ndarray.Shape{3}, ndarray.RowMajor)
//	b, _ := row.BroadcastTo(ndarray.Shape{4, 3}) // strides [0 1]
package ndarray
