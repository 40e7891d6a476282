package ops

import (
	"fmt"

	"github.com/born-ml/strided/internal/kernel"
	"github.com/born-ml/strided/internal/ndarray"
)

// Comparison operations - return bool views.

// Greater returns a > b element-wise.
func Greater[T Number](a, b *ndarray.View[T, T]) (*ndarray.View[bool, bool], error) {
	return compare("greater", a, b, func(x, y T) bool { return x > y })
}

// Less returns a < b element-wise.
func Less[T Number](a, b *ndarray.View[T, T]) (*ndarray.View[bool, bool], error) {
	return compare("less", a, b, func(x, y T) bool { return x < y })
}

// Equal returns a == b element-wise.
func Equal[T Number](a, b *ndarray.View[T, T]) (*ndarray.View[bool, bool], error) {
	return compare("equal", a, b, func(x, y T) bool { return x == y })
}

func compare[T Number](name string, a, b *ndarray.View[T, T], fn func(x, y T) bool) (*ndarray.View[bool, bool], error) {
	outShape, av, bv, err := broadcastPair(a, b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	result, err := ndarray.Zeros[bool](outShape, a.Order())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	if err := kernel.Binary(av, bv, result, fn); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return result, nil
}
