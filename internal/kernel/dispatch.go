package kernel

import "github.com/born-ml/strided/internal/ndarray"

// Unary applies fn to every element of x and writes the result to the same
// logical position of y: y[idx] = fn(x[idx]).
//
// x and y must share a shape; y may alias x for in-place updates. A panic
// raised by fn propagates unchanged, leaving the elements already visited
// written and the rest untouched.
//
// Example:
//
//	x, _ := ndarray.FromSlice([]float64{1, 2, 3, 4}, ndarray.Shape{2, 2}, ndarray.RowMajor)
//	y, _ := ndarray.Zeros[float64](ndarray.Shape{2, 2}, ndarray.RowMajor)
//	err := kernel.Unary(x, y, func(v float64) float64 { return v * 10 }) // 10, 20, 30, 40
func Unary[SA, A, SB, B any](x *ndarray.View[SA, A], y *ndarray.View[SB, B], fn func(A) B) error {
	return UnaryWith(DefaultOptions(), x, y, fn)
}

// UnaryWith is Unary with explicit planning options.
func UnaryWith[SA, A, SB, B any](opts Options, x *ndarray.View[SA, A], y *ndarray.View[SB, B], fn func(A) B) error {
	if fn == nil {
		return ErrInvalidCallback
	}
	if err := checkRanks("unary", x.Ndim(), y.Ndim()); err != nil {
		return err
	}
	shape := y.Shape()
	if checkContracts {
		assertShapes("unary", shape, x.Shape())
	}
	if shape.NumElements() == 0 {
		return nil
	}

	p := getPlan(len(shape))
	defer putPlan(p)
	p.order(shape, opts.Traversal, x.Order(), x.Strides())
	p.operand(x.Strides(), x.Offset())
	p.operand(y.Strides(), y.Offset())
	p.finish(opts.Coalesce)

	if x.Accessor() == nil && y.Accessor() == nil {
		unaryDirect(p, directData(x), directData(y), fn)
		return nil
	}
	unaryAccessor(p, x.Data(), accessorOf(x), y.Data(), accessorOf(y), fn)
	return nil
}

// Binary combines x and y element-wise into z: z[idx] = fn(x[idx], y[idx]).
//
// All three views must share a shape. Broadcast inputs are expressed with
// stride-0 dimensions (see ndarray.View.BroadcastTo).
func Binary[SA, A, SB, B, SC, C any](
	x *ndarray.View[SA, A], y *ndarray.View[SB, B], z *ndarray.View[SC, C], fn func(A, B) C,
) error {
	return BinaryWith(DefaultOptions(), x, y, z, fn)
}

// BinaryWith is Binary with explicit planning options.
func BinaryWith[SA, A, SB, B, SC, C any](
	opts Options, x *ndarray.View[SA, A], y *ndarray.View[SB, B], z *ndarray.View[SC, C], fn func(A, B) C,
) error {
	if fn == nil {
		return ErrInvalidCallback
	}
	if err := checkRanks("binary", x.Ndim(), y.Ndim(), z.Ndim()); err != nil {
		return err
	}
	shape := z.Shape()
	if checkContracts {
		assertShapes("binary", shape, x.Shape(), y.Shape())
	}
	if shape.NumElements() == 0 {
		return nil
	}

	p := getPlan(len(shape))
	defer putPlan(p)
	p.order(shape, opts.Traversal, x.Order(), x.Strides())
	p.operand(x.Strides(), x.Offset())
	p.operand(y.Strides(), y.Offset())
	p.operand(z.Strides(), z.Offset())
	p.finish(opts.Coalesce)

	if x.Accessor() == nil && y.Accessor() == nil && z.Accessor() == nil {
		binaryDirect(p, directData(x), directData(y), directData(z), fn)
		return nil
	}
	binaryAccessor(p,
		x.Data(), accessorOf(x),
		y.Data(), accessorOf(y),
		z.Data(), accessorOf(z),
		fn)
	return nil
}

// Map is Unary with positional context: y[idx] = fn(x[idx], idx, ref).
//
// idx lists logical indices in dimension order regardless of the traversal
// chosen. ref is x.Ref(), or x itself when no back-reference was attached.
func Map[SA, A, SB, B any](x *ndarray.View[SA, A], y *ndarray.View[SB, B], fn MapFunc[A, B]) error {
	return MapWith(DefaultOptions(), x, y, fn)
}

// MapWith is Map with explicit planning options. Coalescing never applies.
func MapWith[SA, A, SB, B any](opts Options, x *ndarray.View[SA, A], y *ndarray.View[SB, B], fn MapFunc[A, B]) error {
	if fn == nil {
		return ErrInvalidCallback
	}
	if err := checkRanks("map", x.Ndim(), y.Ndim()); err != nil {
		return err
	}
	shape := y.Shape()
	if checkContracts {
		assertShapes("map", shape, x.Shape())
	}
	if shape.NumElements() == 0 {
		return nil
	}

	ref := x.Ref()
	if ref == nil {
		ref = x
	}

	p := getPlan(len(shape))
	defer putPlan(p)
	p.order(shape, opts.Traversal, x.Order(), x.Strides())
	p.operand(x.Strides(), x.Offset())
	p.operand(y.Strides(), y.Offset())
	p.finish(false)

	if x.Accessor() == nil && y.Accessor() == nil {
		mapDirect(p, directData(x), directData(y), fn, ref)
		return nil
	}
	mapAccessor(p, x.Data(), accessorOf(x), y.Data(), accessorOf(y), fn, ref)
	return nil
}

// directData returns the buffer of a view without accessor, whose buffer and
// element types are therefore identical.
func directData[S, E any](v *ndarray.View[S, E]) []E {
	return any(v.Data()).([]E)
}

// accessorOf returns the view's accessor, or plain indexing for direct views.
func accessorOf[S, E any](v *ndarray.View[S, E]) ndarray.Accessor[S, E] {
	if acc := v.Accessor(); acc != nil {
		return acc
	}
	return any(ndarray.Direct[E]{}).(ndarray.Accessor[S, E])
}
