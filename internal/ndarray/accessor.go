package ndarray

import "github.com/x448/float16"

// Accessor reads and writes logical elements of type E stored in a buffer of S.
//
// Views whose elements are not a single S value (complex numbers stored as
// float pairs, half floats presented as float32, boxed values) carry an
// Accessor. Indices are logical element indices, the same units as strides.
type Accessor[S, E any] interface {
	Get(buf []S, i int) E
	Set(buf []S, i int, v E)
	// Len returns how many logical elements buf holds.
	Len(buf []S) int
}

// Tagged is implemented by accessors whose storage has its own DataType.
// Views built with such an accessor report that tag instead of the one
// inferred from the logical element type.
type Tagged interface {
	DType() DataType
}

// Funcs adapts a plain getter/setter pair to Accessor.
// LenFn is optional; without it the buffer length is used.
type Funcs[S, E any] struct {
	GetFn func(buf []S, i int) E
	SetFn func(buf []S, i int, v E)
	LenFn func(buf []S) int
}

// Get implements Accessor.
func (f Funcs[S, E]) Get(buf []S, i int) E { return f.GetFn(buf, i) }

// Set implements Accessor.
func (f Funcs[S, E]) Set(buf []S, i int, v E) { f.SetFn(buf, i, v) }

// Len implements Accessor.
func (f Funcs[S, E]) Len(buf []S) int {
	if f.LenFn == nil {
		return len(buf)
	}
	return f.LenFn(buf)
}

// Direct indexes the buffer as-is. The kernel uses it to run direct views
// through the accessor code path when another participating view needs one.
type Direct[T any] struct{}

// Get implements Accessor.
func (Direct[T]) Get(buf []T, i int) T { return buf[i] }

// Set implements Accessor.
func (Direct[T]) Set(buf []T, i int, v T) { buf[i] = v }

// Len implements Accessor.
func (Direct[T]) Len(buf []T) int { return len(buf) }

// Complex128Pairs stores complex128 element i as buf[2i] (real), buf[2i+1] (imag).
type Complex128Pairs struct{}

// Get implements Accessor.
func (Complex128Pairs) Get(buf []float64, i int) complex128 {
	return complex(buf[2*i], buf[2*i+1])
}

// Set implements Accessor.
func (Complex128Pairs) Set(buf []float64, i int, v complex128) {
	buf[2*i] = real(v)
	buf[2*i+1] = imag(v)
}

// Len implements Accessor.
func (Complex128Pairs) Len(buf []float64) int { return len(buf) / 2 }

// DType implements Tagged.
func (Complex128Pairs) DType() DataType { return Complex128 }

// Complex64Pairs stores complex64 element i as buf[2i] (real), buf[2i+1] (imag).
type Complex64Pairs struct{}

// Get implements Accessor.
func (Complex64Pairs) Get(buf []float32, i int) complex64 {
	return complex(buf[2*i], buf[2*i+1])
}

// Set implements Accessor.
func (Complex64Pairs) Set(buf []float32, i int, v complex64) {
	buf[2*i] = real(v)
	buf[2*i+1] = imag(v)
}

// Len implements Accessor.
func (Complex64Pairs) Len(buf []float32) int { return len(buf) / 2 }

// DType implements Tagged.
func (Complex64Pairs) DType() DataType { return Complex64 }

// Float16Values presents IEEE 754 half-precision storage as float32.
// Writes round to nearest even.
type Float16Values struct{}

// Get implements Accessor.
func (Float16Values) Get(buf []float16.Float16, i int) float32 { return buf[i].Float32() }

// Set implements Accessor.
func (Float16Values) Set(buf []float16.Float16, i int, v float32) { buf[i] = float16.Fromfloat32(v) }

// Len implements Accessor.
func (Float16Values) Len(buf []float16.Float16) int { return len(buf) }

// DType implements Tagged.
func (Float16Values) DType() DataType { return Float16 }

// Boxed reads E values out of heterogeneous []any storage.
// Reading a slot holding a different type yields the zero E.
type Boxed[E any] struct{}

// Get implements Accessor.
func (Boxed[E]) Get(buf []any, i int) E {
	v, _ := buf[i].(E)
	return v
}

// Set implements Accessor.
func (Boxed[E]) Set(buf []any, i int, v E) { buf[i] = v }

// Len implements Accessor.
func (Boxed[E]) Len(buf []any) int { return len(buf) }
