package manager

import (
	"github.com/pkg/errors"

	"quantum-snake/game/entity"
	"quantum-snake/game/rng"
	"quantum-snake/game/types"
)

// LayoutConfig controls barrier placement.
type LayoutConfig struct {
	Count     int
	Size      int        // side length in board units
	Spacing   int        // minimum |dx| and |dy| between anchors
	Exclusion types.Rect // area no barrier may overlap
	Attempts  int        // draws per pass
	Passes    int
}

type BarrierManager struct {
	grid     types.Grid
	cfg      LayoutConfig
	barriers []entity.Barrier
}

func NewBarrierManager(grid types.Grid, cfg LayoutConfig) *BarrierManager {
	return &BarrierManager{
		grid: grid,
		cfg:  cfg,
	}
}

// Regenerate replaces the layout. On failure the previous layout is kept.
func (bm *BarrierManager) Regenerate(src rng.Source) error {
	layout, err := bm.Generate(src)
	if err != nil {
		return err
	}
	bm.barriers = layout
	return nil
}

// Generate draws a fresh layout without touching the current one.
func (bm *BarrierManager) Generate(src rng.Source) ([]entity.Barrier, error) {
	maxCol := (bm.grid.Width - bm.cfg.Size) / bm.grid.CellSize
	maxRow := (bm.grid.Height - bm.cfg.Size) / bm.grid.CellSize

	for pass := 0; pass < bm.cfg.Passes; pass++ {
		layout := make([]entity.Barrier, 0, bm.cfg.Count)
		for draw := 0; draw < bm.cfg.Attempts && len(layout) < bm.cfg.Count; draw++ {
			anchor := bm.grid.CellAt(rng.Range(src, 0, maxCol), rng.Range(src, 0, maxRow))
			if bm.accepts(anchor, layout) {
				layout = append(layout, entity.NewBarrier(anchor, bm.cfg.Size))
			}
		}
		if len(layout) == bm.cfg.Count {
			return layout, nil
		}
	}
	return nil, errors.Wrapf(ErrUnsatisfiableLayout, "%d barriers of side %d spaced %d on %dx%d after %d passes",
		bm.cfg.Count, bm.cfg.Size, bm.cfg.Spacing, bm.grid.Width, bm.grid.Height, bm.cfg.Passes)
}

func (bm *BarrierManager) accepts(anchor types.Cell, layout []entity.Barrier) bool {
	candidate := entity.NewBarrier(anchor, bm.cfg.Size)
	if types.Overlaps(candidate.Rect(), bm.cfg.Exclusion) {
		return false
	}
	for _, b := range layout {
		if types.Abs(anchor.X-b.Anchor.X) < bm.cfg.Spacing || types.Abs(anchor.Y-b.Anchor.Y) < bm.cfg.Spacing {
			return false
		}
	}
	return true
}

// Barriers returns the current layout.
func (bm *BarrierManager) Barriers() []entity.Barrier {
	return bm.barriers
}

// Blocks reports whether c lies inside any barrier.
func (bm *BarrierManager) Blocks(c types.Cell) bool {
	for _, b := range bm.barriers {
		if b.Contains(c) {
			return true
		}
	}
	return false
}
