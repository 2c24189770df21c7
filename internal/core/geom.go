// Package core provides fundamental types shared by the game hosts.
// It contains no external dependencies (especially no Bubble Tea) to keep
// the layout and input logic pure and testable.
package core

// Point is a cell position.
type Point struct {
	X, Y int
}

// Rect represents an axis-aligned box of terminal cells, used for mouse hit-testing.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Grid lays out Size x Size cells of CellW x CellH starting at Origin,
// separated by Gap columns/rows.
type Grid struct {
	Origin Point
	Size   int
	CellW  int
	CellH  int
	Gap    int
}

// Cell returns the rectangle of the cell at column col, row row.
func (g Grid) Cell(col, row int) Rect {
	return NewRect(
		g.Origin.X+col*(g.CellW+g.Gap),
		g.Origin.Y+row*(g.CellH+g.Gap),
		g.CellW,
		g.CellH,
	)
}

// HitTest returns the row-major index of the cell under (x, y), or -1.
func (g Grid) HitTest(x, y int) int {
	for row := 0; row < g.Size; row++ {
		for col := 0; col < g.Size; col++ {
			if g.Cell(col, row).Contains(x, y) {
				return row*g.Size + col
			}
		}
	}
	return -1
}

// Cursor is a position on a square grid that stays within bounds.
type Cursor struct {
	Pos  Point
	Size int
}

// Move shifts the cursor by (dx, dy), clamped to the grid.
func (c *Cursor) Move(dx, dy int) {
	if c.Size <= 0 {
		return
	}
	c.Pos.X = Clamp(c.Pos.X+dx, 0, c.Size-1)
	c.Pos.Y = Clamp(c.Pos.Y+dy, 0, c.Size-1)
}

// Index returns the row-major cell index under the cursor.
func (c Cursor) Index() int {
	return c.Pos.Y*c.Size + c.Pos.X
}

// Reset moves the cursor to the top-left of a grid of the given size.
func (c *Cursor) Reset(size int) {
	c.Size = size
	c.Pos = Point{}
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
