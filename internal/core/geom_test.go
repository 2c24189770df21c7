package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(10, 5, 4, 3)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"top-left corner", 10, 5, true},
		{"inside", 12, 6, true},
		{"right edge exclusive", 14, 5, false},
		{"bottom edge exclusive", 10, 8, false},
		{"left of rect", 9, 6, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestGridHitTest(t *testing.T) {
	g := Grid{Origin: Point{X: 2, Y: 1}, Size: 3, CellW: 6, CellH: 3, Gap: 1}

	tests := []struct {
		name     string
		x, y     int
		expected int
	}{
		{"first cell", 2, 1, 0},
		{"second column", 9, 2, 1},
		{"gap between cells", 8, 1, -1},
		{"second row first column", 3, 5, 3},
		{"last cell", 16, 9, 8},
		{"outside", 0, 0, -1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := g.HitTest(tc.x, tc.y); got != tc.expected {
				t.Errorf("HitTest(%d, %d) = %d, expected %d", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestCursorMoveClamps(t *testing.T) {
	c := Cursor{Size: 3}

	c.Move(-1, -1)
	if c.Pos != (Point{}) {
		t.Errorf("Pos = %v, expected origin", c.Pos)
	}

	c.Move(5, 1)
	if c.Pos != (Point{X: 2, Y: 1}) {
		t.Errorf("Pos = %v, expected (2,1)", c.Pos)
	}
	if c.Index() != 5 {
		t.Errorf("Index() = %d, expected 5", c.Index())
	}

	c.Reset(2)
	if c.Pos != (Point{}) || c.Size != 2 {
		t.Errorf("Reset() left %+v", c)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}

func TestActionDelta(t *testing.T) {
	if dx, dy := ActionLeft.Delta(); dx != -1 || dy != 0 {
		t.Errorf("ActionLeft.Delta() = %d,%d", dx, dy)
	}
	if dx, dy := ActionConfirm.Delta(); dx != 0 || dy != 0 {
		t.Errorf("ActionConfirm.Delta() = %d,%d", dx, dy)
	}
}
