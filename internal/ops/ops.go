// Package ops implements broadcasting element-wise array operations on top
// of the strided kernels.
package ops

import (
	"errors"
	"fmt"

	"github.com/born-ml/strided/internal/kernel"
	"github.com/born-ml/strided/internal/ndarray"
)

// ErrUnsupportedOp is returned for an Op value outside the known set.
var ErrUnsupportedOp = errors.New("ops: unsupported operation")

// Number lists the real numeric element types accepted by arithmetic ops.
type Number interface {
	~float32 | ~float64 |
		~int8 | ~int16 | ~int32 | ~int64 |
		~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Signed lists numeric types with a meaningful negation.
type Signed interface {
	~float32 | ~float64 | ~int8 | ~int16 | ~int32 | ~int64
}

// Float lists real floating-point element types.
type Float interface {
	~float32 | ~float64
}

// Op identifies a binary arithmetic operation.
type Op int

// Binary arithmetic operations.
const (
	OpAdd Op = iota
	OpSub
	OpMul
	OpDiv
)

// String returns the operation name.
func (op Op) String() string {
	switch op {
	case OpAdd:
		return "add"
	case OpSub:
		return "sub"
	case OpMul:
		return "mul"
	case OpDiv:
		return "div"
	default:
		return fmt.Sprintf("Op(%d)", int(op))
	}
}

func arith[T Number](op Op) (func(a, b T) T, error) {
	switch op {
	case OpAdd:
		return func(a, b T) T { return a + b }, nil
	case OpSub:
		return func(a, b T) T { return a - b }, nil
	case OpMul:
		return func(a, b T) T { return a * b }, nil
	case OpDiv:
		return func(a, b T) T { return a / b }, nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedOp, op)
	}
}

// Add returns a + b element-wise with NumPy broadcasting.
func Add[T Number](a, b *ndarray.View[T, T]) (*ndarray.View[T, T], error) {
	return Binary(OpAdd, a, b)
}

// Sub returns a - b element-wise with NumPy broadcasting.
func Sub[T Number](a, b *ndarray.View[T, T]) (*ndarray.View[T, T], error) {
	return Binary(OpSub, a, b)
}

// Mul returns a * b element-wise with NumPy broadcasting.
func Mul[T Number](a, b *ndarray.View[T, T]) (*ndarray.View[T, T], error) {
	return Binary(OpMul, a, b)
}

// Div returns a / b element-wise with NumPy broadcasting.
// Integer division by zero panics as in plain Go.
func Div[T Number](a, b *ndarray.View[T, T]) (*ndarray.View[T, T], error) {
	return Binary(OpDiv, a, b)
}

// Binary allocates an output in the broadcast shape of a and b, laid out in
// a's order, and fills it with op(a, b).
func Binary[T Number](op Op, a, b *ndarray.View[T, T]) (*ndarray.View[T, T], error) {
	fn, err := arith[T](op)
	if err != nil {
		return nil, err
	}
	outShape, av, bv, err := broadcastPair(a, b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	result, err := ndarray.Zeros[T](outShape, a.Order())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := kernel.Binary(av, bv, result, fn); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// BinaryInto writes op(a, b) into out. a and b are broadcast to out's shape;
// out itself is never broadcast. out may alias a or b exactly.
func BinaryInto[T Number](op Op, out, a, b *ndarray.View[T, T]) error {
	fn, err := arith[T](op)
	if err != nil {
		return err
	}
	av, err := broadcastTo(a, out.Shape())
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	bv, err := broadcastTo(b, out.Shape())
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := kernel.Binary(av, bv, out, fn); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
