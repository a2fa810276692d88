package manager

import (
	"testing"

	"github.com/pkg/errors"

	"quantum-snake/game/entity"
	"quantum-snake/game/rng"
	"quantum-snake/game/types"
)

func newFoodManager(src rng.Source) *FoodManager {
	return NewFoodManager(testGrid, src, 100, NewCollisionManager(testGrid, 5))
}

func TestFoodWallBounce(t *testing.T) {
	fm := newFoodManager(rng.New(1))
	fm.Place(types.Cell{X: 560, Y: 300}, types.Horizontal, 20)

	out := fm.Update(nil, nil)
	if out.Pos != (types.Cell{X: 580, Y: 300}) || !out.WallBounce {
		t.Fatalf("outcome = %+v", out)
	}
	if fm.Food().Velocity != -20 {
		t.Errorf("velocity = %d after wall bounce", fm.Food().Velocity)
	}
	out = fm.Update(nil, nil)
	if out.Pos != (types.Cell{X: 560, Y: 300}) || out.WallBounce {
		t.Errorf("outcome after bounce = %+v", out)
	}
}

func TestFoodEdgeGuard(t *testing.T) {
	fm := newFoodManager(rng.New(1))
	fm.Place(types.Cell{X: 300, Y: 0}, types.Vertical, -20)

	out := fm.Update(nil, nil)
	if out.Event != EdgeBlocked || out.Pos != (types.Cell{X: 300, Y: 0}) {
		t.Fatalf("outcome = %+v", out)
	}
	if fm.Food().Velocity != 20 {
		t.Errorf("velocity = %d", fm.Food().Velocity)
	}
}

func TestFoodStaysOnBoard(t *testing.T) {
	fm := newFoodManager(rng.New(5))
	fm.Place(types.Cell{X: 20, Y: 300}, types.Horizontal, -20)
	for i := 0; i < 200; i++ {
		out := fm.Update(nil, nil)
		if !testGrid.InBounds(out.Pos) {
			t.Fatalf("tick %d: food left the board at %v", i, out.Pos)
		}
	}
}

func TestFoodBodyBounce(t *testing.T) {
	fm := newFoodManager(rng.New(1))
	s := snakeWith(types.Cell{X: 300, Y: 300}, types.Cell{X: 340, Y: 300})
	fm.Place(types.Cell{X: 320, Y: 300}, types.Horizontal, 20)

	out := fm.Update(s, nil)
	if out.Event != BodyBounce || out.Pos != (types.Cell{X: 320, Y: 300}) {
		t.Fatalf("outcome = %+v", out)
	}
	if fm.Food().Velocity != -20 {
		t.Errorf("velocity = %d", fm.Food().Velocity)
	}
}

func TestFoodMovesOntoHead(t *testing.T) {
	fm := newFoodManager(rng.New(1))
	s := snakeWith(types.Cell{X: 340, Y: 300})
	fm.Place(types.Cell{X: 320, Y: 300}, types.Horizontal, 20)

	out := fm.Update(s, nil)
	if out.Event != Moved || out.Pos != (types.Cell{X: 340, Y: 300}) {
		t.Errorf("outcome = %+v", out)
	}
}

func TestFoodBarrierReflectAndTunnel(t *testing.T) {
	barriers := []entity.Barrier{entity.NewBarrier(types.Cell{X: 100, Y: 100}, 80)}

	// eta = 0.03 and u = 0.9: transmission is far below u.
	src := &rng.Sequence{Floats: []float64{0.01, 0.9}}
	fm := newFoodManager(src)
	fm.Place(types.Cell{X: 80, Y: 120}, types.Horizontal, 20)
	out := fm.Update(nil, barriers)
	if out.Event != Reflected || out.Pos != (types.Cell{X: 80, Y: 120}) || fm.Food().Velocity != -20 {
		t.Fatalf("reflect outcome = %+v velocity %d", out, fm.Food().Velocity)
	}

	// u = 0 always passes for positive energy.
	src = &rng.Sequence{Floats: []float64{0.1, 0.0}}
	fm = newFoodManager(src)
	fm.Place(types.Cell{X: 80, Y: 120}, types.Horizontal, 20)
	out = fm.Update(nil, barriers)
	if out.Event != Tunneled || out.Pos != (types.Cell{X: 100, Y: 120}) || fm.Food().Velocity != 20 {
		t.Fatalf("tunnel outcome = %+v velocity %d", out, fm.Food().Velocity)
	}
	if attempts, tunnels := fm.Tunnel().Counts(); attempts != 1 || tunnels != 1 {
		t.Errorf("counts = %d/%d", attempts, tunnels)
	}

	// Inside the barrier the food keeps moving.
	out = fm.Update(nil, barriers)
	if out.Event != Moved || out.Pos != (types.Cell{X: 120, Y: 120}) {
		t.Errorf("inside outcome = %+v", out)
	}
}

func TestFoodCornerReflectsWithoutRoll(t *testing.T) {
	barriers := []entity.Barrier{entity.NewBarrier(types.Cell{X: 100, Y: 127}, 80)}
	src := &rng.Sequence{Floats: []float64{0.1, 0.0}}
	fm := newFoodManager(src)
	fm.Place(types.Cell{X: 80, Y: 120}, types.Horizontal, 20)

	out := fm.Update(nil, barriers)
	if out.Event != CornerReflect || fm.Food().Velocity != -20 {
		t.Fatalf("outcome = %+v", out)
	}
	if floats, _ := src.Remaining(); floats != 2 {
		t.Errorf("corner contact consumed %d samples", 2-floats)
	}
}

func TestRespawnAvoidsSnakeAndBarriers(t *testing.T) {
	fm := newFoodManager(rng.New(11))
	s := snakeWith(types.Cell{X: 300, Y: 300}, types.Cell{X: 280, Y: 300}, types.Cell{X: 260, Y: 300})
	barriers := []entity.Barrier{
		entity.NewBarrier(types.Cell{X: 100, Y: 100}, 80),
		entity.NewBarrier(types.Cell{X: 400, Y: 400}, 80),
	}
	for i := 0; i < 500; i++ {
		if err := fm.Respawn(s, barriers); err != nil {
			t.Fatal(err)
		}
		f := fm.Food()
		if f.Pos.X < 20 || f.Pos.Y < 20 || f.Pos.X > 560 || f.Pos.Y > 560 {
			t.Fatalf("food %v outside the margin", f.Pos)
		}
		if f.Pos.X%20 != 0 || f.Pos.Y%20 != 0 {
			t.Fatalf("food %v not grid aligned", f.Pos)
		}
		if s.Occupies(f.Pos) {
			t.Fatalf("food %v on the snake", f.Pos)
		}
		for _, b := range barriers {
			if b.Contains(f.Pos) {
				t.Fatalf("food %v inside barrier %v", f.Pos, b.Rect())
			}
		}
		if types.Abs(f.Velocity) != 20 {
			t.Fatalf("velocity %d", f.Velocity)
		}
	}
}

func TestRespawnFallsBackToScan(t *testing.T) {
	grid := types.Grid{Width: 80, Height: 80, CellSize: 20}
	// Every random draw lands on (20,20), which the snake occupies.
	src := &rng.Sequence{}
	fm := NewFoodManager(grid, src, 5, NewCollisionManager(grid, 5))
	s := snakeWith(types.Cell{X: 20, Y: 20}, types.Cell{X: 40, Y: 20}, types.Cell{X: 20, Y: 40})

	pos, err := fm.GenerateFood(s, nil)
	if err != nil {
		t.Fatal(err)
	}
	if pos != (types.Cell{X: 40, Y: 40}) {
		t.Errorf("pos = %v, want the only free cell", pos)
	}

	s.Body = append(s.Body, types.Cell{X: 40, Y: 40})
	if _, err := fm.GenerateFood(s, nil); !errors.Is(err, ErrNoFreeCell) {
		t.Errorf("err = %v, want ErrNoFreeCell", err)
	}
}
