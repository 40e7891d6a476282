package ndarray

// Derivations return new views sharing the same buffer. None of them copy
// data and none modify the receiver.

func (v *View[S, E]) derive(shape Shape, strides []int, offset int, order Order) *View[S, E] {
	return &View[S, E]{
		data:    v.data,
		dtype:   v.dtype,
		shape:   shape,
		strides: strides,
		offset:  offset,
		order:   order,
		access:  v.access,
		ref:     v.ref,
	}
}

// WithRef returns a copy of the view carrying ref as its back-reference.
// Map callbacks receive it as their third argument.
func (v *View[S, E]) WithRef(ref any) *View[S, E] {
	out := v.derive(v.shape.Clone(), append([]int(nil), v.strides...), v.offset, v.order)
	out.ref = ref
	return out
}

// Slice restricts dimension dim to the half-open range [start, end).
func (v *View[S, E]) Slice(dim, start, end int) (*View[S, E], error) {
	if dim < 0 || dim >= len(v.shape) {
		return nil, invalid("slice", ErrInvalidAxis, "axis %d for rank %d", dim, len(v.shape))
	}
	if start < 0 || end < start || end > v.shape[dim] {
		return nil, invalid("slice", ErrOutOfBounds, "range [%d, %d) for dimension of size %d", start, end, v.shape[dim])
	}

	shape := v.shape.Clone()
	shape[dim] = end - start
	offset := v.offset
	if end > start {
		offset += start * v.strides[dim]
	}
	return v.derive(shape, append([]int(nil), v.strides...), offset, v.order), nil
}

// Reverse flips dimension dim by negating its stride.
func (v *View[S, E]) Reverse(dim int) (*View[S, E], error) {
	if dim < 0 || dim >= len(v.shape) {
		return nil, invalid("reverse", ErrInvalidAxis, "axis %d for rank %d", dim, len(v.shape))
	}

	strides := append([]int(nil), v.strides...)
	offset := v.offset
	if v.shape[dim] > 0 {
		offset += (v.shape[dim] - 1) * strides[dim]
	}
	strides[dim] = -strides[dim]
	return v.derive(v.shape.Clone(), strides, offset, v.order), nil
}

// Permute reorders dimensions: dimension i of the result is dimension axes[i]
// of the receiver. The declared order is re-inferred from the new strides
// and kept unchanged when they follow neither convention.
func (v *View[S, E]) Permute(axes ...int) (*View[S, E], error) {
	if len(axes) != len(v.shape) {
		return nil, invalid("permute", ErrInvalidAxis, "%d axes for rank %d", len(axes), len(v.shape))
	}

	seen := make([]bool, len(axes))
	shape := make(Shape, len(axes))
	strides := make([]int, len(axes))
	for i, a := range axes {
		if a < 0 || a >= len(axes) || seen[a] {
			return nil, invalid("permute", ErrInvalidAxis, "axes %v are not a permutation", axes)
		}
		seen[a] = true
		shape[i] = v.shape[a]
		strides[i] = v.strides[a]
	}

	order := v.order
	if inferred, ok := OrderOf(strides); ok && len(axes) > 1 {
		order = inferred
	}
	return v.derive(shape, strides, v.offset, order), nil
}

// Transpose reverses all dimensions.
func (v *View[S, E]) Transpose() *View[S, E] {
	axes := make([]int, len(v.shape))
	for i := range axes {
		axes[i] = len(axes) - 1 - i
	}
	out, err := v.Permute(axes...)
	if err != nil {
		panic(err) // Reversed axes are always a permutation
	}
	return out
}

// BroadcastTo presents the view with a larger shape using NumPy rules:
// missing leading dimensions and size-1 dimensions get stride 0.
func (v *View[S, E]) BroadcastTo(shape Shape) (*View[S, E], error) {
	strides, err := broadcastStrides(v.shape, v.strides, shape)
	if err != nil {
		return nil, err
	}
	return v.derive(shape.Clone(), strides, v.offset, v.order), nil
}
