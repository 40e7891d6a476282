package ndarray

// Order is the memory layout convention of a view.
type Order int

// Supported memory orders.
const (
	RowMajor    Order = iota // last dimension varies fastest
	ColumnMajor              // first dimension varies fastest
)

// String returns a human-readable name for the order.
func (o Order) String() string {
	switch o {
	case RowMajor:
		return "row-major"
	case ColumnMajor:
		return "column-major"
	default:
		return "unknown"
	}
}

// OrderOf infers the memory order from stride magnitudes.
//
// Strides whose magnitudes never increase from left to right are row-major,
// strides that never decrease are column-major. When both hold (rank < 2 or
// equal magnitudes) RowMajor is reported. The second result is false when the
// strides follow neither convention, e.g. after an arbitrary permutation.
func OrderOf(strides []int) (Order, bool) {
	row, col := true, true
	for i := 1; i < len(strides); i++ {
		prev, cur := absInt(strides[i-1]), absInt(strides[i])
		if cur > prev {
			row = false
		}
		if cur < prev {
			col = false
		}
	}
	switch {
	case row:
		return RowMajor, true
	case col:
		return ColumnMajor, true
	default:
		return RowMajor, false
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
