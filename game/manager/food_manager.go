package manager

import (
	"github.com/pkg/errors"

	"quantum-snake/game/entity"
	"quantum-snake/game/rng"
	"quantum-snake/game/tunnel"
	"quantum-snake/game/types"
)

// FoodEvent is what happened to the food on one food tick.
type FoodEvent int

const (
	Moved FoodEvent = iota
	EdgeBlocked
	BodyBounce
	Reflected
	CornerReflect
	Tunneled
)

func (e FoodEvent) String() string {
	switch e {
	case EdgeBlocked:
		return "edge"
	case BodyBounce:
		return "body"
	case Reflected:
		return "reflected"
	case CornerReflect:
		return "corner"
	case Tunneled:
		return "tunneled"
	default:
		return "moved"
	}
}

// FoodOutcome reports one food tick.
type FoodOutcome struct {
	Event      FoodEvent
	WallBounce bool
	Pos        types.Cell
}

type FoodManager struct {
	grid         types.Grid
	food         entity.Food
	attempts     int
	src          rng.Source
	tunnel       *tunnel.Model
	collisionMgr *CollisionManager
}

func NewFoodManager(grid types.Grid, src rng.Source, attempts int, collisionMgr *CollisionManager) *FoodManager {
	return &FoodManager{
		grid:         grid,
		attempts:     attempts,
		src:          src,
		tunnel:       tunnel.New(src),
		collisionMgr: collisionMgr,
	}
}

// Food returns the current food state.
func (fm *FoodManager) Food() entity.Food {
	return fm.food
}

// Tunnel exposes the tunneling counters.
func (fm *FoodManager) Tunnel() *tunnel.Model {
	return fm.tunnel
}

// Place puts the food at pos with the given motion.
func (fm *FoodManager) Place(pos types.Cell, axis types.Axis, velocity int) {
	fm.food = entity.Food{Pos: pos, Axis: axis, Velocity: velocity}
}

// Respawn moves the food to a random free cell inside the one-cell margin and
// picks a fresh axis and direction.
func (fm *FoodManager) Respawn(snake *entity.Snake, barriers []entity.Barrier) error {
	pos, err := fm.GenerateFood(snake, barriers)
	if err != nil {
		return err
	}
	axis := types.Horizontal
	if rng.Bool(fm.src) {
		axis = types.Vertical
	}
	velocity := fm.grid.CellSize
	if rng.Bool(fm.src) {
		velocity = -velocity
	}
	fm.Place(pos, axis, velocity)
	return nil
}

// GenerateFood samples a free cell, falling back to a scan once the draw
// budget runs out.
func (fm *FoodManager) GenerateFood(snake *entity.Snake, barriers []entity.Barrier) (types.Cell, error) {
	cols, rows := fm.grid.Columns(), fm.grid.Rows()
	for i := 0; i < fm.attempts; i++ {
		pos := fm.grid.CellAt(rng.Range(fm.src, 1, cols-2), rng.Range(fm.src, 1, rows-2))
		if fm.collisionMgr.ValidateSpawnPosition(pos, snake, barriers) {
			return pos, nil
		}
	}

	var free []types.Cell
	for row := 1; row <= rows-2; row++ {
		for col := 1; col <= cols-2; col++ {
			pos := fm.grid.CellAt(col, row)
			if fm.collisionMgr.ValidateSpawnPosition(pos, snake, barriers) {
				free = append(free, pos)
			}
		}
	}
	if len(free) == 0 {
		return types.Cell{}, errors.Wrapf(ErrNoFreeCell, "board %dx%d", fm.grid.Width, fm.grid.Height)
	}
	return free[fm.src.Intn(len(free))], nil
}

// Update advances the food one step along its axis.
func (fm *FoodManager) Update(snake *entity.Snake, barriers []entity.Barrier) FoodOutcome {
	f := &fm.food
	candidate := f.Next()

	if !fm.inside(candidate) {
		f.Reverse()
		return FoodOutcome{Event: EdgeBlocked, Pos: f.Pos}
	}
	if fm.collisionMgr.BodyBlocksFood(candidate, snake) {
		f.Reverse()
		return FoodOutcome{Event: BodyBounce, Pos: f.Pos}
	}

	event := Moved
	switch fm.collisionMgr.FirstContact(f.Pos, candidate, f.Axis, f.Velocity, barriers) {
	case CornerContact:
		f.Reverse()
		return FoodOutcome{Event: CornerReflect, Pos: f.Pos}
	case FaceOn:
		if !fm.tunnel.Attempt() {
			f.Reverse()
			return FoodOutcome{Event: Reflected, Pos: f.Pos}
		}
		event = Tunneled
	}

	f.Pos = candidate
	out := FoodOutcome{Event: event, Pos: f.Pos}
	along := f.Axis.Along(f.Pos)
	if along <= 0 || along >= fm.limit(f.Axis) {
		f.Reverse()
		out.WallBounce = true
	}
	return out
}

func (fm *FoodManager) limit(axis types.Axis) int {
	if axis == types.Vertical {
		return fm.grid.Height - fm.grid.CellSize
	}
	return fm.grid.Width - fm.grid.CellSize
}

func (fm *FoodManager) inside(c types.Cell) bool {
	return c.X >= 0 && c.X <= fm.grid.Width-fm.grid.CellSize &&
		c.Y >= 0 && c.Y <= fm.grid.Height-fm.grid.CellSize
}
