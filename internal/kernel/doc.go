// Package kernel applies callbacks element-wise over strided N-dimensional views.
//
// Every entry point walks the common logical shape of its operands exactly
// once. The loop nest is planned once per call: dimensions are reordered so
// the innermost loop follows the fastest-varying memory dimension, and each
// operand gets per-level pointer increments ("deltas") that rewind the inner
// loops before stepping outward. Inner loops only add precomputed deltas.
//
// Views without accessors are indexed directly; as soon as one operand
// carries an ndarray.Accessor, all operands go through accessors. The choice
// is made once per call, never per element.
//
// Preconditions are those of the ndarray constructors plus a common shape
// across operands. Shape agreement is asserted only in builds tagged
// strided_debug; release builds trust the caller. The kernel performs no
// alias protection: overlapping input and output views see the result of a
// single read-before-write pass.
package kernel
