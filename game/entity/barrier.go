package entity

import "quantum-snake/game/types"

// Barrier is an immutable square obstacle anchored at its top-left corner.
type Barrier struct {
	Anchor types.Cell
	Size   int
}

func NewBarrier(anchor types.Cell, size int) Barrier {
	return Barrier{Anchor: anchor, Size: size}
}

// Rect returns the barrier footprint.
func (b Barrier) Rect() types.Rect {
	return types.Rect{X: b.Anchor.X, Y: b.Anchor.Y, W: b.Size, H: b.Size}
}

// Contains reports whether cell c lies inside the barrier.
func (b Barrier) Contains(c types.Cell) bool {
	return types.Contains(b.Rect(), c)
}
