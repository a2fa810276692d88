package manager

import (
	"quantum-snake/game/entity"
	"quantum-snake/game/types"
)

// PopulationManager owns the single live snake.
type PopulationManager struct {
	grid         types.Grid
	currentSnake *entity.Snake
}

func NewPopulationManager(grid types.Grid) *PopulationManager {
	return &PopulationManager{
		grid: grid,
	}
}

// Spawn replaces the snake with a fresh one at the board center.
func (pm *PopulationManager) Spawn() *entity.Snake {
	pm.currentSnake = entity.NewSnake(pm.grid.Center())
	return pm.currentSnake
}

func (pm *PopulationManager) Current() *entity.Snake {
	return pm.currentSnake
}

func (pm *PopulationManager) IsDead() bool {
	return pm.currentSnake == nil || pm.currentSnake.Dead
}

// SpawnCell is the cell every new snake starts on.
func (pm *PopulationManager) SpawnCell() types.Cell {
	return pm.grid.Center()
}
