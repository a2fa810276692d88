package game

import (
	"time"

	"github.com/pkg/errors"

	"quantum-snake/game/manager"
	"quantum-snake/game/types"
)

var (
	// ErrInvalidConfig is returned when board parameters cannot form a playable board.
	ErrInvalidConfig = errors.New("invalid game config")
	// ErrUnsatisfiableLayout is returned when barrier placement runs out of attempts.
	ErrUnsatisfiableLayout = manager.ErrUnsatisfiableLayout
	// ErrNoFreeCell is returned when the food has nowhere to respawn.
	ErrNoFreeCell = manager.ErrNoFreeCell
)

// Config holds the board and timing parameters. It is fixed once a session starts.
type Config struct {
	Width    int
	Height   int
	GridSize int

	BarrierCount   int // barriers per layout
	BarrierCells   int // barrier side length in grid cells
	BarrierSpacing int // minimum anchor separation on each axis, in board units
	SpawnClearance int // grid cells kept free around the spawn cell

	SnakeTick time.Duration
	FoodTick  time.Duration

	ScoreIncrement int

	PlacementAttempts int // random draws per layout pass or respawn
	LayoutPasses      int // full layout restarts before giving up

	Seed uint64
}

func DefaultConfig() Config {
	return Config{
		Width:             600,
		Height:            600,
		GridSize:          20,
		BarrierCount:      6,
		BarrierCells:      4,
		BarrierSpacing:    70,
		SpawnClearance:    1,
		SnakeTick:         100 * time.Millisecond,
		FoodTick:          300 * time.Millisecond,
		ScoreIncrement:    10,
		PlacementAttempts: 2000,
		LayoutPasses:      32,
	}
}

// Grid returns the board geometry.
func (c Config) Grid() types.Grid {
	return types.Grid{Width: c.Width, Height: c.Height, CellSize: c.GridSize}
}

// BarrierSize is the barrier side length in board units.
func (c Config) BarrierSize() int {
	return c.BarrierCells * c.GridSize
}

// FoodRadius is the drawing and collision radius of the food disc.
func (c Config) FoodRadius() int {
	return c.GridSize / 4
}

// Validate fails fast on boards the simulation cannot run on.
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return errors.Wrapf(ErrInvalidConfig, "board size %dx%d must be positive", c.Width, c.Height)
	case c.GridSize <= 0:
		return errors.Wrapf(ErrInvalidConfig, "grid size %d must be positive", c.GridSize)
	case c.Width%c.GridSize != 0 || c.Height%c.GridSize != 0:
		return errors.Wrapf(ErrInvalidConfig, "grid size %d does not divide board %dx%d", c.GridSize, c.Width, c.Height)
	case c.Width/c.GridSize < 3 || c.Height/c.GridSize < 3:
		return errors.Wrapf(ErrInvalidConfig, "board %dx%d needs at least 3x3 cells", c.Width, c.Height)
	case c.BarrierCount < 0 || c.BarrierCells <= 0 || c.BarrierSpacing < 0 || c.SpawnClearance < 0:
		return errors.Wrapf(ErrInvalidConfig, "barrier parameters count=%d cells=%d spacing=%d clearance=%d",
			c.BarrierCount, c.BarrierCells, c.BarrierSpacing, c.SpawnClearance)
	case c.BarrierSize() > c.Width || c.BarrierSize() > c.Height:
		return errors.Wrapf(ErrInvalidConfig, "barrier side %d exceeds board %dx%d", c.BarrierSize(), c.Width, c.Height)
	case c.SnakeTick <= 0 || c.FoodTick <= 0:
		return errors.Wrapf(ErrInvalidConfig, "tick periods %v/%v must be positive", c.SnakeTick, c.FoodTick)
	case c.FoodTick <= c.SnakeTick:
		return errors.Wrapf(ErrInvalidConfig, "food tick %v must be slower than snake tick %v", c.FoodTick, c.SnakeTick)
	case c.ScoreIncrement <= 0:
		return errors.Wrapf(ErrInvalidConfig, "score increment %d must be positive", c.ScoreIncrement)
	case c.PlacementAttempts <= 0 || c.LayoutPasses <= 0:
		return errors.Wrapf(ErrInvalidConfig, "placement caps %d/%d must be positive", c.PlacementAttempts, c.LayoutPasses)
	}
	return nil
}
