package types

import "math"

// InBounds reports whether the cell's top-left corner lies on the board.
func (g Grid) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < g.Width && c.Y >= 0 && c.Y < g.Height
}

// Overlaps reports whether two rectangles share any area.
// Touching edges do not overlap.
func Overlaps(a, b Rect) bool {
	return a.X < b.MaxX() && b.X < a.MaxX() && a.Y < b.MaxY() && b.Y < a.MaxY()
}

// Contains reports whether the cell's top-left corner lies inside r.
func Contains(r Rect, c Cell) bool {
	return c.X >= r.X && c.X < r.MaxX() && c.Y >= r.Y && c.Y < r.MaxY()
}

// Euclidean returns the straight-line distance between two cells.
func Euclidean(a, b Cell) float64 {
	return math.Hypot(float64(a.X-b.X), float64(a.Y-b.Y))
}

// Chebyshev returns the larger of the two axis distances.
func Chebyshev(a, b Cell) int {
	return max(Abs(a.X-b.X), Abs(a.Y-b.Y))
}

// Manhattan returns the sum of the two axis distances.
func Manhattan(a, b Cell) int {
	return Abs(a.X-b.X) + Abs(a.Y-b.Y)
}

// Abs returns the absolute value of an int.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Sign returns -1, 0 or 1.
func Sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
