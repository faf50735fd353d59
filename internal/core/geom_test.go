package core

import "testing"

func TestRectEdges(t *testing.T) {
	r := NewRect(10, 4, 20, 15)
	if r.Right() != 30 || r.Bottom() != 19 {
		t.Errorf("Right(), Bottom() = %d, %d, expected 30, 19", r.Right(), r.Bottom())
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},
		{-3, 0, 10, 0},
		{42, 0, 10, 10},
		{0, 0, 0, 0},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.lo, tc.hi); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.lo, tc.hi, got, tc.expected)
		}
	}
}
