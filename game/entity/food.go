package entity

import "quantum-snake/game/types"

// Food is the oscillating particle. It moves along one axis at a time with a
// signed velocity of one grid step per food tick.
type Food struct {
	Pos      types.Cell
	Axis     types.Axis
	Velocity int
}

// Reverse flips the direction of travel.
func (f *Food) Reverse() {
	f.Velocity = -f.Velocity
}

// Next returns the candidate position one step along the active axis.
func (f *Food) Next() types.Cell {
	return f.Axis.Step(f.Pos, f.Velocity)
}

// Center returns the center of the food's cell.
func (f *Food) Center(cellSize int) (x, y int) {
	return f.Pos.X + cellSize/2, f.Pos.Y + cellSize/2
}
