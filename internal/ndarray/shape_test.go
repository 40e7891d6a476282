package ndarray

import (
	"errors"
	"testing"
)

func TestShapeNumElements(t *testing.T) {
	tests := []struct {
		shape    Shape
		expected int
	}{
		{Shape{}, 1},         // Scalar
		{Shape{5}, 5},        // 1D
		{Shape{3, 4}, 12},    // 2D
		{Shape{2, 3, 4}, 24}, // 3D
		{Shape{3, 0, 2}, 0},  // Zero-sized
	}

	for _, tt := range tests {
		if got := tt.shape.NumElements(); got != tt.expected {
			t.Errorf("%v.NumElements() = %d, want %d", tt.shape, got, tt.expected)
		}
	}
}

func TestShapeValidate(t *testing.T) {
	if err := (Shape{2, 0, 3}).Validate(); err != nil {
		t.Errorf("zero-sized shape should be valid, got %v", err)
	}
	if err := (Shape{2, -1}).Validate(); !errors.Is(err, ErrNegativeDim) {
		t.Errorf("Validate() = %v, want ErrNegativeDim", err)
	}
}

func TestShapeStrides(t *testing.T) {
	tests := []struct {
		shape Shape
		order Order
		want  []int
	}{
		{Shape{}, RowMajor, []int{}},
		{Shape{5}, ColumnMajor, []int{1}},
		{Shape{2, 3, 4}, RowMajor, []int{12, 4, 1}},
		{Shape{2, 3, 4}, ColumnMajor, []int{1, 2, 6}},
		{Shape{2, 0, 4}, RowMajor, []int{4, 4, 1}},
	}

	for _, tt := range tests {
		got := tt.shape.Strides(tt.order)
		if !Shape(got).Equal(Shape(tt.want)) {
			t.Errorf("%v.Strides(%s) = %v, want %v", tt.shape, tt.order, got, tt.want)
		}
	}
}

func TestBroadcastShapes(t *testing.T) {
	tests := []struct {
		a, b      Shape
		want      Shape
		broadcast bool
		wantErr   bool
	}{
		{Shape{3, 1}, Shape{3, 5}, Shape{3, 5}, true, false},
		{Shape{1, 5}, Shape{3, 5}, Shape{3, 5}, true, false},
		{Shape{3, 5}, Shape{3, 5}, Shape{3, 5}, false, false},
		{Shape{5}, Shape{2, 5}, Shape{2, 5}, true, false},
		{Shape{}, Shape{2, 3}, Shape{2, 3}, true, false},
		{Shape{3, 4}, Shape{3, 5}, nil, false, true},
	}

	for _, tt := range tests {
		got, broadcast, err := BroadcastShapes(tt.a, tt.b)
		if tt.wantErr {
			if !errors.Is(err, ErrBroadcast) {
				t.Errorf("BroadcastShapes(%v, %v) error = %v, want ErrBroadcast", tt.a, tt.b, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("BroadcastShapes(%v, %v) unexpected error: %v", tt.a, tt.b, err)
			continue
		}
		if !got.Equal(tt.want) || broadcast != tt.broadcast {
			t.Errorf("BroadcastShapes(%v, %v) = %v, %v; want %v, %v", tt.a, tt.b, got, broadcast, tt.want, tt.broadcast)
		}
	}
}

func TestOrderOf(t *testing.T) {
	tests := []struct {
		strides []int
		order   Order
		ok      bool
	}{
		{nil, RowMajor, true},
		{[]int{12, 4, 1}, RowMajor, true},
		{[]int{1, 2, 6}, ColumnMajor, true},
		{[]int{-4, 1}, RowMajor, true},
		{[]int{0, 1}, ColumnMajor, true},
		{[]int{4, 1, 12}, RowMajor, false},
	}

	for _, tt := range tests {
		order, ok := OrderOf(tt.strides)
		if order != tt.order || ok != tt.ok {
			t.Errorf("OrderOf(%v) = %s, %v; want %s, %v", tt.strides, order, ok, tt.order, tt.ok)
		}
	}
}
