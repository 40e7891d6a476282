package kernel

import (
	"github.com/born-ml/strided/internal/ndarray"
	"github.com/born-ml/strided/internal/parallel"
)

// ParallelUnary runs Unary over disjoint slabs of the outermost loop
// dimension on separate goroutines.
//
// It falls back to a single sequential call for rank-0 views, when cfg
// disables parallelism, when the slab count is too small, or when y repeats
// its elements along the split dimension (stride 0), since slabs would then
// write the same locations. Callers must still ensure y does not overlap
// itself across slabs in other ways. fn is called concurrently and must be
// safe for that; a panic in any slab is re-raised on the calling goroutine.
func ParallelUnary[SA, A, SB, B any](
	cfg parallel.Config, opts Options, x *ndarray.View[SA, A], y *ndarray.View[SB, B], fn func(A) B,
) error {
	if fn == nil {
		return ErrInvalidCallback
	}
	if err := checkRanks("parallel unary", x.Ndim(), y.Ndim()); err != nil {
		return err
	}
	dim, slabCfg, ok := splitPlan(cfg, opts, y.Shape(), x.Order(), x.Strides(), y.Strides())
	if !ok {
		return UnaryWith(opts, x, y, fn)
	}

	parallel.ForRange(y.Shape()[dim], func(start, end int) {
		xs := mustSlice(x, dim, start, end)
		ys := mustSlice(y, dim, start, end)
		if err := UnaryWith(opts, xs, ys, fn); err != nil {
			panic(err) // Ranks were checked above
		}
	}, slabCfg)
	return nil
}

// ParallelBinary is the Binary counterpart of ParallelUnary.
func ParallelBinary[SA, A, SB, B, SC, C any](
	cfg parallel.Config, opts Options,
	x *ndarray.View[SA, A], y *ndarray.View[SB, B], z *ndarray.View[SC, C], fn func(A, B) C,
) error {
	if fn == nil {
		return ErrInvalidCallback
	}
	if err := checkRanks("parallel binary", x.Ndim(), y.Ndim(), z.Ndim()); err != nil {
		return err
	}
	dim, slabCfg, ok := splitPlan(cfg, opts, z.Shape(), x.Order(), x.Strides(), z.Strides())
	if !ok {
		return BinaryWith(opts, x, y, z, fn)
	}

	parallel.ForRange(z.Shape()[dim], func(start, end int) {
		xs := mustSlice(x, dim, start, end)
		ys := mustSlice(y, dim, start, end)
		zs := mustSlice(z, dim, start, end)
		if err := BinaryWith(opts, xs, ys, zs, fn); err != nil {
			panic(err) // Ranks were checked above
		}
	}, slabCfg)
	return nil
}

// splitPlan picks the logical dimension of the outermost loop level and
// rescales cfg.MinChunkSize from elements to slabs.
func splitPlan(
	cfg parallel.Config, opts Options, shape ndarray.Shape, order ndarray.Order, inStrides, outStrides []int,
) (int, parallel.Config, bool) {
	rank := len(shape)
	total := shape.NumElements()
	if !cfg.Enabled || rank == 0 || total == 0 {
		return 0, cfg, false
	}

	perm := make([]int, rank)
	selectOrder(perm, opts.Traversal, order, inStrides)
	dim := perm[rank-1]
	if shape[dim] < 2 || outStrides[dim] == 0 {
		return 0, cfg, false
	}

	slab := total / shape[dim]
	slabCfg := cfg
	slabCfg.MinChunkSize = max(1, (cfg.MinChunkSize+slab-1)/slab)
	return dim, slabCfg, true
}

func mustSlice[S, E any](v *ndarray.View[S, E], dim, start, end int) *ndarray.View[S, E] {
	out, err := v.Slice(dim, start, end)
	if err != nil {
		panic(err) // Ranges come from ForRange over shape[dim]
	}
	return out
}
