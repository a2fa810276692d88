package manager

import (
	"github.com/pkg/errors"

	"quantum-snake/game/entity"
	"quantum-snake/game/types"
)

var (
	// ErrUnsatisfiableLayout is returned when barrier placement runs out of attempts.
	ErrUnsatisfiableLayout = errors.New("barrier layout unsatisfiable")
	// ErrNoFreeCell is returned when no cell is left for the food.
	ErrNoFreeCell = errors.New("no free cell for food")
)

// CollisionType is the cause of a snake's death.
type CollisionType int

const (
	NoCollision CollisionType = iota
	WallCollision
	BarrierCollision
	SelfCollision
)

func (c CollisionType) String() string {
	switch c {
	case WallCollision:
		return "wall"
	case BarrierCollision:
		return "barrier"
	case SelfCollision:
		return "self"
	default:
		return "none"
	}
}

// Contact describes how the food meets a barrier face on a move. FaceOn
// means the perpendicular extent lies strictly inside the barrier span;
// CornerContact means it touches or straddles an edge of the span.
type Contact int

const (
	NoContact Contact = iota
	FaceOn
	CornerContact
)

type CollisionManager struct {
	grid       types.Grid
	foodRadius int
}

func NewCollisionManager(grid types.Grid, foodRadius int) *CollisionManager {
	return &CollisionManager{
		grid:       grid,
		foodRadius: foodRadius,
	}
}

// CheckCollision checks a head that has already been prepended to the body.
// Bounds come first, then barriers, then the rest of the body.
func (cm *CollisionManager) CheckCollision(snake *entity.Snake, barriers []entity.Barrier) CollisionType {
	head := snake.GetHead()
	switch {
	case cm.isWallCollision(head):
		return WallCollision
	case cm.isBarrierCollision(head, barriers):
		return BarrierCollision
	case cm.isSelfCollision(head, snake):
		return SelfCollision
	}
	return NoCollision
}

func (cm *CollisionManager) isWallCollision(pos types.Cell) bool {
	return !cm.grid.InBounds(pos)
}

func (cm *CollisionManager) isBarrierCollision(pos types.Cell, barriers []entity.Barrier) bool {
	for _, b := range barriers {
		if b.Contains(pos) {
			return true
		}
	}
	return false
}

func (cm *CollisionManager) isSelfCollision(pos types.Cell, snake *entity.Snake) bool {
	for _, p := range snake.Segments() {
		if p == pos {
			return true
		}
	}
	return false
}

// ValidateSpawnPosition reports whether a food can appear at pos.
func (cm *CollisionManager) ValidateSpawnPosition(pos types.Cell, snake *entity.Snake, barriers []entity.Barrier) bool {
	if cm.isWallCollision(pos) || cm.isBarrierCollision(pos, barriers) {
		return false
	}
	return snake == nil || !snake.Occupies(pos)
}

// IsFoodCollision checks if the head landed on the food.
func (cm *CollisionManager) IsFoodCollision(pos types.Cell, food types.Cell) bool {
	return pos == food
}

// BodyBlocksFood reports whether the food cell at candidate would overlap a
// non-head segment.
func (cm *CollisionManager) BodyBlocksFood(candidate types.Cell, snake *entity.Snake) bool {
	if snake == nil {
		return false
	}
	fp := cm.grid.Footprint(candidate)
	for _, seg := range snake.Segments() {
		if types.Overlaps(fp, cm.grid.Footprint(seg)) {
			return true
		}
	}
	return false
}

// BarrierContact classifies the food's move from pos to candidate against a
// barrier. Only a move whose leading edge crosses the near face counts.
func (cm *CollisionManager) BarrierContact(pos, candidate types.Cell, axis types.Axis, velocity int, b entity.Barrier) Contact {
	half := cm.grid.CellSize / 2
	r := cm.foodRadius
	rect := b.Rect()

	lo, hi := rect.X, rect.MaxX()
	spanLo, spanHi := rect.Y, rect.MaxY()
	if axis == types.Vertical {
		lo, hi = rect.Y, rect.MaxY()
		spanLo, spanHi = rect.X, rect.MaxX()
	}

	from := axis.Along(pos) + half
	to := axis.Along(candidate) + half

	var crosses bool
	switch {
	case velocity > 0:
		crosses = from+r <= lo && to+r > lo
	case velocity < 0:
		crosses = from-r >= hi && to-r < hi
	}
	if !crosses {
		return NoContact
	}

	across := axis.Across(candidate) + half
	low, high := across-r, across+r
	switch {
	case high < spanLo || low > spanHi:
		return NoContact
	case spanLo < low && high < spanHi:
		return FaceOn
	default:
		return CornerContact
	}
}

// FirstContact returns the first barrier the move touches, if any.
func (cm *CollisionManager) FirstContact(pos, candidate types.Cell, axis types.Axis, velocity int, barriers []entity.Barrier) Contact {
	for _, b := range barriers {
		if c := cm.BarrierContact(pos, candidate, axis, velocity, b); c != NoContact {
			return c
		}
	}
	return NoContact
}
