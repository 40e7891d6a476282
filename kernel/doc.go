// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package kernel applies caller-supplied functions element by element over
// strided views.
//
// # Overview
//
// Unary computes y[idx] = fn(x[idx]), Binary computes z[idx] = fn(x[idx], y[idx])
// and Map passes the logical index tuple to fn as well. All operands share
// one shape; views may differ in strides, offsets, memory order and element
// representation.
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/strided/kernel"
//	    "github.com/born-ml/strided/ndarray"
//	)
//
//	func main() {
//	    x, _ := ndarray.FromSlice([]float64{1, 2, 3, 4}, ndarray.Shape{2, 2}, ndarray.RowMajor)
//	    y, _ := ndarray.Zeros[float64](ndarray.Shape{2, 2}, ndarray.RowMajor)
//
//	    err := kernel.Unary(x, y, func(v float64) float64 { return v * 10 })
//	    // y: [10 20 30 40]
//	}
//
// # Loop Order
//
// Loops run innermost over the first input's fastest-varying dimension
// (see Options). Results never depend on the order chosen, only performance
// does.
//
// # Preconditions
//
// Operands must have equal shapes, and outputs must not partially overlap
// inputs. Ranks are always checked; shapes are only checked when built with
// -tags strided_debug. A callback panic propagates to the caller with the
// elements visited so far already written.
//
// # Parallelism
//
// ParallelUnary and ParallelBinary split the outermost loop across
// goroutines with a Config from DefaultParallelConfig.
package kernel
