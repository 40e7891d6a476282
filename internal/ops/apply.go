package ops

import (
	"fmt"

	"github.com/born-ml/strided/internal/kernel"
	"github.com/born-ml/strided/internal/ndarray"
)

// Complex lists the complex element types accepted by Conj.
type Complex interface {
	complex64 | complex128
}

// Assign copies src into dst, broadcasting src to dst's shape. Either view
// may use an accessor.
func Assign[SD, SS, E any](dst *ndarray.View[SD, E], src *ndarray.View[SS, E]) error {
	sv, err := broadcastTo(src, dst.Shape())
	if err != nil {
		return fmt.Errorf("assign: %w", err)
	}
	if err := kernel.Unary(sv, dst, func(v E) E { return v }); err != nil {
		return fmt.Errorf("assign: %w", err)
	}
	return nil
}

// Apply returns a new direct view holding fn(x) for every element of x,
// laid out in x's order.
func Apply[S, E, U any](x *ndarray.View[S, E], fn func(E) U) (*ndarray.View[U, U], error) {
	if fn == nil {
		return nil, fmt.Errorf("apply: %w", kernel.ErrInvalidCallback)
	}
	result, err := ndarray.Zeros[U](x.Shape(), x.Order())
	if err != nil {
		return nil, fmt.Errorf("apply: %w", err)
	}
	if err := kernel.Unary(x, result, fn); err != nil {
		return nil, fmt.Errorf("apply: %w", err)
	}
	return result, nil
}

// Conj returns the complex conjugate of x as a direct view. x may be stored
// directly or as interleaved float pairs.
func Conj[S any, C Complex](x *ndarray.View[S, C]) (*ndarray.View[C, C], error) {
	return Apply(x, conj[C])
}

func conj[C Complex](v C) C {
	switch c := any(v).(type) {
	case complex64:
		return any(complex(real(c), -imag(c))).(C)
	case complex128:
		return any(complex(real(c), -imag(c))).(C)
	default:
		panic(fmt.Sprintf("conj: unsupported type %T", v))
	}
}
