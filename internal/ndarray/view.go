package ndarray

import "fmt"

// View describes a logical N-dimensional array over a flat buffer.
//
// S is the buffer element type and E the logical element type. Direct views
// (no accessor) have S == E and are read by plain indexing; views whose
// elements need boxing or multi-field storage carry an Accessor.
//
// The buffer is never owned by the view: several views may share it. Linear
// indices are offset + Σ idx[k]*strides[k], in logical element units.
type View[S, E any] struct {
	data    []S
	dtype   DataType
	shape   Shape
	strides []int
	offset  int
	order   Order
	access  Accessor[S, E]
	ref     any
}

// New creates a direct view over data.
//
// Example:
//
//	buf := []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
//	v, err := ndarray.New(buf, ndarray.Shape{5}, []int{2}, 1, ndarray.RowMajor) // 1, 3, 5, 7, 9
func New[T any](data []T, shape Shape, strides []int, offset int, order Order) (*View[T, T], error) {
	return build[T, T]("new", data, shape, strides, offset, order, nil)
}

// NewWithAccessor creates a view whose elements are read and written through acc.
//
// Example:
//
//	buf := []float64{1, 2, 3, 4} // two complex128 values: 1+2i, 3+4i
//	v, err := ndarray.NewWithAccessor(buf, ndarray.Shape{2}, []int{1}, 0,
//	    ndarray.RowMajor, ndarray.Complex128Pairs{})
func NewWithAccessor[S, E any](
	data []S, shape Shape, strides []int, offset int, order Order, acc Accessor[S, E],
) (*View[S, E], error) {
	if acc == nil {
		return nil, invalid("new", ErrMissingAccessor, "nil accessor")
	}
	return build("new", data, shape, strides, offset, order, acc)
}

// FromSlice creates a contiguous direct view. len(data) must equal shape.NumElements().
func FromSlice[T any](data []T, shape Shape, order Order) (*View[T, T], error) {
	if err := shape.Validate(); err != nil {
		return nil, invalid("from slice", ErrNegativeDim, "%v", shape)
	}
	if len(data) != shape.NumElements() {
		return nil, invalid("from slice", ErrDataLength, "shape %v requires %d elements, but got %d",
			shape, shape.NumElements(), len(data))
	}
	return build[T, T]("from slice", data, shape, shape.Strides(order), 0, order, nil)
}

// Zeros allocates a contiguous direct view filled with zero values.
func Zeros[T any](shape Shape, order Order) (*View[T, T], error) {
	if err := shape.Validate(); err != nil {
		return nil, invalid("zeros", ErrNegativeDim, "%v", shape)
	}
	return FromSlice(make([]T, shape.NumElements()), shape, order)
}

func build[S, E any](
	op string, data []S, shape Shape, strides []int, offset int, order Order, acc Accessor[S, E],
) (*View[S, E], error) {
	if len(shape) != len(strides) {
		return nil, invalid(op, ErrStridesLength, "shape %v, strides %v", shape, strides)
	}
	if err := shape.Validate(); err != nil {
		return nil, invalid(op, ErrNegativeDim, "%v", shape)
	}
	if offset < 0 {
		return nil, invalid(op, ErrNegativeOffset, "%d", offset)
	}

	capacity := len(data)
	if acc != nil {
		capacity = acc.Len(data)
	}
	if shape.NumElements() > 0 {
		lo, hi := linearBounds(shape, strides, offset)
		if lo < 0 || hi >= capacity {
			return nil, invalid(op, ErrOutOfBounds, "indices [%d, %d] with %d elements available", lo, hi, capacity)
		}
	}

	dtype := DataTypeOf[S]()
	if acc != nil {
		dtype = DataTypeOf[E]()
		if tagged, ok := acc.(Tagged); ok {
			dtype = tagged.DType()
		}
	}

	return &View[S, E]{
		data:    data,
		dtype:   dtype,
		shape:   shape.Clone(),
		strides: append([]int(nil), strides...),
		offset:  offset,
		order:   order,
		access:  acc,
	}, nil
}

// linearBounds returns the smallest and largest linear index a non-empty view reaches.
func linearBounds(shape Shape, strides []int, offset int) (lo, hi int) {
	lo, hi = offset, offset
	for k, dim := range shape {
		span := (dim - 1) * strides[k]
		if span > 0 {
			hi += span
		} else {
			lo += span
		}
	}
	return lo, hi
}

// Data returns the backing buffer (shared, not copied).
func (v *View[S, E]) Data() []S {
	return v.data
}

// DType returns the element type tag.
func (v *View[S, E]) DType() DataType {
	return v.dtype
}

// Shape returns the view's shape. Callers must not modify it.
func (v *View[S, E]) Shape() Shape {
	return v.shape
}

// Strides returns the view's strides. Callers must not modify them.
func (v *View[S, E]) Strides() []int {
	return v.strides
}

// Offset returns the linear index of the first element.
func (v *View[S, E]) Offset() int {
	return v.offset
}

// Order returns the declared memory order.
func (v *View[S, E]) Order() Order {
	return v.order
}

// Accessor returns the element accessor, or nil for direct views.
func (v *View[S, E]) Accessor() Accessor[S, E] {
	return v.access
}

// Ref returns the back-reference attached with WithRef, or nil.
func (v *View[S, E]) Ref() any {
	return v.ref
}

// Ndim returns the number of dimensions.
func (v *View[S, E]) Ndim() int {
	return len(v.shape)
}

// NumElements returns the total number of logical elements.
func (v *View[S, E]) NumElements() int {
	return v.shape.NumElements()
}

// IsContiguous reports whether the view packs its elements densely in its
// declared order starting at the offset. Size-1 dimensions are ignored.
func (v *View[S, E]) IsContiguous() bool {
	want := v.shape.Strides(v.order)
	for k, dim := range v.shape {
		if dim != 1 && v.strides[k] != want[k] {
			return false
		}
	}
	return true
}

// String returns a human-readable description of the view.
func (v *View[S, E]) String() string {
	return fmt.Sprintf("View[%s]%v strides=%v offset=%d %s", v.dtype, []int(v.shape), v.strides, v.offset, v.order)
}

// index computes the linear index of a logical index tuple.
// Panics if indices are out of bounds.
func (v *View[S, E]) index(indices []int) int {
	if len(indices) != len(v.shape) {
		panic(fmt.Sprintf("expected %d indices, got %d", len(v.shape), len(indices)))
	}
	linear := v.offset
	for k, idx := range indices {
		if idx < 0 || idx >= v.shape[k] {
			panic(fmt.Sprintf("index %d out of bounds for dimension %d (size %d)", idx, k, v.shape[k]))
		}
		linear += idx * v.strides[k]
	}
	return linear
}

// At returns the element at the given indices.
// Panics if indices are out of bounds.
func (v *View[S, E]) At(indices ...int) E {
	i := v.index(indices)
	if v.access != nil {
		return v.access.Get(v.data, i)
	}
	return any(v.data[i]).(E)
}

// Set sets the element at the given indices.
// Panics if indices are out of bounds.
func (v *View[S, E]) Set(value E, indices ...int) {
	i := v.index(indices)
	if v.access != nil {
		v.access.Set(v.data, i, value)
		return
	}
	v.data[i] = any(value).(S)
}

// Values returns the logical elements in row-major index order as a new slice.
func (v *View[S, E]) Values() []E {
	n := v.NumElements()
	out := make([]E, 0, n)
	if n == 0 {
		return out
	}
	idx := make([]int, len(v.shape))
	for {
		out = append(out, v.At(idx...))
		k := len(idx) - 1
		for ; k >= 0; k-- {
			idx[k]++
			if idx[k] < v.shape[k] {
				break
			}
			idx[k] = 0
		}
		if k < 0 {
			return out
		}
	}
}
