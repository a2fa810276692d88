package types

// Cell is the top-left corner of a grid cell in board units.
type Cell struct {
	X, Y int
}

// Add returns c translated by d.
func (c Cell) Add(d Cell) Cell {
	return Cell{X: c.X + d.X, Y: c.Y + d.Y}
}

// Scale multiplies both components by k.
func (c Cell) Scale(k int) Cell {
	return Cell{X: c.X * k, Y: c.Y * k}
}

// Grid represents the board dimensions in board units together with the
// size of one grid step.
type Grid struct {
	Width    int
	Height   int
	CellSize int
}

// Center returns the grid-aligned cell closest to the middle of the board.
func (g Grid) Center() Cell {
	return Cell{
		X: (g.Width / 2 / g.CellSize) * g.CellSize,
		Y: (g.Height / 2 / g.CellSize) * g.CellSize,
	}
}

// Columns is the number of cells along the x axis.
func (g Grid) Columns() int { return g.Width / g.CellSize }

// Rows is the number of cells along the y axis.
func (g Grid) Rows() int { return g.Height / g.CellSize }

// CellAt converts column/row indices to a board cell.
func (g Grid) CellAt(col, row int) Cell {
	return Cell{X: col * g.CellSize, Y: row * g.CellSize}
}

// Footprint is the square a cell occupies on the board.
func (g Grid) Footprint(c Cell) Rect {
	return Rect{X: c.X, Y: c.Y, W: g.CellSize, H: g.CellSize}
}

// Rect is an axis-aligned rectangle. Extents are half-open: [X, X+W) x [Y, Y+H).
type Rect struct {
	X, Y int
	W, H int
}

// Min returns the top-left corner.
func (r Rect) Min() Cell { return Cell{X: r.X, Y: r.Y} }

// MaxX is the exclusive right edge.
func (r Rect) MaxX() int { return r.X + r.W }

// MaxY is the exclusive bottom edge.
func (r Rect) MaxY() int { return r.Y + r.H }

// Grow expands the rectangle by n units on every side.
func (r Rect) Grow(n int) Rect {
	return Rect{X: r.X - n, Y: r.Y - n, W: r.W + 2*n, H: r.H + 2*n}
}

// Direction represents a cardinal heading. None means no heading committed yet.
type Direction int

const (
	None Direction = iota
	Up
	Right
	Down
	Left
)

// Directions lists the four cardinal headings in clockwise order.
var Directions = [4]Direction{Up, Right, Down, Left}

// ToPoint converts a Direction to a unit step (y grows downwards).
func (d Direction) ToPoint() Cell {
	switch d {
	case Up:
		return Cell{X: 0, Y: -1}
	case Right:
		return Cell{X: 1, Y: 0}
	case Down:
		return Cell{X: 0, Y: 1}
	case Left:
		return Cell{X: -1, Y: 0}
	default:
		return Cell{}
	}
}

// Opposite returns the reverse heading. None has no opposite.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	default:
		return None
	}
}

// TurnLeft rotates the heading counter-clockwise.
func (d Direction) TurnLeft() Direction {
	switch d {
	case Up:
		return Left
	case Right:
		return Up
	case Down:
		return Right
	case Left:
		return Down
	default:
		return d
	}
}

// TurnRight rotates the heading clockwise.
func (d Direction) TurnRight() Direction {
	switch d {
	case Up:
		return Right
	case Right:
		return Down
	case Down:
		return Left
	case Left:
		return Up
	default:
		return d
	}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	default:
		return "none"
	}
}

// Axis is the single axis the food moves along.
type Axis int

const (
	Horizontal Axis = iota
	Vertical
)

func (a Axis) String() string {
	if a == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// Along returns the coordinate of c on the axis.
func (a Axis) Along(c Cell) int {
	if a == Vertical {
		return c.Y
	}
	return c.X
}

// Across returns the coordinate of c on the perpendicular axis.
func (a Axis) Across(c Cell) int {
	if a == Vertical {
		return c.X
	}
	return c.Y
}

// Step moves c by delta along the axis.
func (a Axis) Step(c Cell, delta int) Cell {
	if a == Vertical {
		c.Y += delta
	} else {
		c.X += delta
	}
	return c
}
