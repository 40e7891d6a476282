// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package kernel

import (
	"github.com/born-ml/strided/internal/kernel"
	"github.com/born-ml/strided/internal/ndarray"
	"github.com/born-ml/strided/internal/parallel"
)

// Options tunes loop planning.
type Options = kernel.Options

// Traversal selects how the loop order is derived.
type Traversal = kernel.Traversal

// Traversal strategies.
const (
	TraverseDeclared Traversal = kernel.TraverseDeclared
	TraverseStrides  Traversal = kernel.TraverseStrides
)

// MapFunc receives an element, its logical index tuple and the input's back-reference.
type MapFunc[A, B any] = kernel.MapFunc[A, B]

// ContractViolation reports operands that break the kernel's preconditions.
type ContractViolation = kernel.ContractViolation

// ParallelConfig controls how parallel kernels split work.
type ParallelConfig = parallel.Config

// Kernel errors, matched with errors.Is.
var (
	ErrInvalidCallback   = kernel.ErrInvalidCallback
	ErrRankMismatch      = kernel.ErrRankMismatch
	ErrContractViolation = kernel.ErrContractViolation
)

// DefaultOptions returns the planning options used by Unary, Binary and Map.
func DefaultOptions() Options {
	return kernel.DefaultOptions()
}

// DefaultParallelConfig returns a config using all available CPUs.
func DefaultParallelConfig() ParallelConfig {
	return parallel.DefaultConfig()
}

// Unary computes y[idx] = fn(x[idx]) for every index of the shared shape.
func Unary[SA, A, SB, B any](x *ndarray.View[SA, A], y *ndarray.View[SB, B], fn func(A) B) error {
	return kernel.Unary(x, y, fn)
}

// UnaryWith is Unary with explicit planning options.
func UnaryWith[SA, A, SB, B any](opts Options, x *ndarray.View[SA, A], y *ndarray.View[SB, B], fn func(A) B) error {
	return kernel.UnaryWith(opts, x, y, fn)
}

// Binary computes z[idx] = fn(x[idx], y[idx]) for every index of the shared shape.
func Binary[SA, A, SB, B, SC, C any](
	x *ndarray.View[SA, A], y *ndarray.View[SB, B], z *ndarray.View[SC, C], fn func(A, B) C,
) error {
	return kernel.Binary(x, y, z, fn)
}

// BinaryWith is Binary with explicit planning options.
func BinaryWith[SA, A, SB, B, SC, C any](
	opts Options, x *ndarray.View[SA, A], y *ndarray.View[SB, B], z *ndarray.View[SC, C], fn func(A, B) C,
) error {
	return kernel.BinaryWith(opts, x, y, z, fn)
}

// Map computes y[idx] = fn(x[idx], idx, ref) where ref is x's back-reference
// or x itself.
func Map[SA, A, SB, B any](x *ndarray.View[SA, A], y *ndarray.View[SB, B], fn MapFunc[A, B]) error {
	return kernel.Map(x, y, fn)
}

// MapWith is Map with explicit planning options.
func MapWith[SA, A, SB, B any](opts Options, x *ndarray.View[SA, A], y *ndarray.View[SB, B], fn MapFunc[A, B]) error {
	return kernel.MapWith(opts, x, y, fn)
}

// ParallelUnary runs Unary over slabs of the outermost loop dimension on
// separate goroutines. fn must be safe for concurrent use.
func ParallelUnary[SA, A, SB, B any](
	cfg ParallelConfig, opts Options, x *ndarray.View[SA, A], y *ndarray.View[SB, B], fn func(A) B,
) error {
	return kernel.ParallelUnary(cfg, opts, x, y, fn)
}

// ParallelBinary is the Binary counterpart of ParallelUnary.
func ParallelBinary[SA, A, SB, B, SC, C any](
	cfg ParallelConfig, opts Options,
	x *ndarray.View[SA, A], y *ndarray.View[SB, B], z *ndarray.View[SC, C], fn func(A, B) C,
) error {
	return kernel.ParallelBinary(cfg, opts, x, y, z, fn)
}
