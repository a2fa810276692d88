package game

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"quantum-snake/game/entity"
	"quantum-snake/game/manager"
	"quantum-snake/game/rng"
	"quantum-snake/game/stats"
	"quantum-snake/game/types"
	"quantum-snake/logger"
)

// SnakeEvent is what a snake tick did.
type SnakeEvent int

const (
	SnakeIdle SnakeEvent = iota
	SnakeMoved
	SnakeAte
	SnakeDied
	BoardFull
)

func (e SnakeEvent) String() string {
	switch e {
	case SnakeMoved:
		return "moved"
	case SnakeAte:
		return "ate"
	case SnakeDied:
		return "died"
	case BoardFull:
		return "board full"
	default:
		return "idle"
	}
}

// SnakeOutcome reports one snake tick.
type SnakeOutcome struct {
	Event SnakeEvent
	Cause manager.CollisionType
	Head  types.Cell
	Score int // round score after the move, before any reset
}

// Reset reports whether the tick ended the round.
func (o SnakeOutcome) Reset() bool {
	return o.Event == SnakeDied || o.Event == BoardFull
}

// TickResult reports one logical scheduler tick.
type TickResult struct {
	Due   Due
	Snake SnakeOutcome
	Food  manager.FoodOutcome
	Reset bool
}

// Frame is a read-only snapshot for drawing.
type Frame struct {
	Grid       types.Grid
	Snake      []types.Cell
	Direction  types.Direction
	State      entity.State
	Food       entity.Food
	FoodRadius int
	Barriers   []types.Rect

	Score     int
	HighScore int
	Round     int
	SessionID string

	TunnelAttempts int
	Tunnels        int
}

// Option customizes a Game.
type Option func(*Game)

// WithRand injects the random source.
func WithRand(src rng.Source) Option {
	return func(g *Game) { g.src = src }
}

// WithLogger injects the logger.
func WithLogger(l *logger.Logger) Option {
	return func(g *Game) { g.log = l }
}

// WithClock replaces the wall clock used for round timestamps.
func WithClock(now func() time.Time) Option {
	return func(g *Game) { g.now = now }
}

// Game is one play session. It owns the snake, the food, the barriers and
// the score, and is driven from a single goroutine.
type Game struct {
	UUID      string
	Config    Config
	Grid      types.Grid
	Round     int
	StartTime time.Time

	src rng.Source
	log *logger.Logger
	now func() time.Time

	scheduler    *Scheduler
	collisionMgr *manager.CollisionManager
	barrierMgr   *manager.BarrierManager
	foodMgr      *manager.FoodManager
	popManager   *manager.PopulationManager
	stateMgr     *manager.StateManager

	roundStart time.Time
	roundTicks int
}

// New validates cfg and builds the first round.
func New(cfg Config, opts ...Option) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	g := &Game{
		UUID:   uuid.New().String(),
		Config: cfg,
		Grid:   cfg.Grid(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.log == nil {
		g.log = logger.Discard()
	}
	if g.src == nil {
		seed := cfg.Seed
		if seed == 0 {
			seed = uint64(time.Now().UnixNano())
		}
		g.src = rng.New(seed)
	}

	spawn := g.Grid.Footprint(g.Grid.Center())
	g.scheduler = NewScheduler(cfg.SnakeTick, cfg.FoodTick)
	g.collisionMgr = manager.NewCollisionManager(g.Grid, cfg.FoodRadius())
	g.barrierMgr = manager.NewBarrierManager(g.Grid, manager.LayoutConfig{
		Count:     cfg.BarrierCount,
		Size:      cfg.BarrierSize(),
		Spacing:   cfg.BarrierSpacing,
		Exclusion: spawn.Grow(cfg.SpawnClearance * cfg.GridSize),
		Attempts:  cfg.PlacementAttempts,
		Passes:    cfg.LayoutPasses,
	})
	g.foodMgr = manager.NewFoodManager(g.Grid, g.src, cfg.PlacementAttempts, g.collisionMgr)
	g.popManager = manager.NewPopulationManager(g.Grid)
	g.stateMgr = manager.NewStateManager(cfg.ScoreIncrement, stats.NewHistory(stats.DefaultGroupSize))

	snake := g.popManager.Spawn()
	if err := g.barrierMgr.Regenerate(g.src); err != nil {
		return nil, errors.Wrap(err, "initial barrier layout")
	}
	if err := g.foodMgr.Respawn(snake, g.barrierMgr.Barriers()); err != nil {
		return nil, errors.Wrap(err, "initial food placement")
	}

	g.StartTime = g.now()
	g.roundStart = g.StartTime
	g.Round = 1
	g.log.Event("session-start", g.UUID, fmt.Sprintf("board=%dx%d grid=%d barriers=%d",
		cfg.Width, cfg.Height, cfg.GridSize, cfg.BarrierCount))
	return g, nil
}

// Reset ends the current round and starts a new one.
func (g *Game) Reset() {
	g.finishRound("reset")
	g.startRound()
}

func (g *Game) finishRound(cause string) {
	snake := g.popManager.Current()
	if g.roundTicks == 0 && g.stateMgr.GetScore() == 0 {
		return
	}
	rec := g.stateMgr.RecordRound(g.roundStart, g.now(), snake.Len(), g.roundTicks, cause)
	g.log.Event("round-end", g.UUID, fmt.Sprintf("round=%d score=%d length=%d ticks=%d cause=%s",
		g.Round, rec.Score, rec.Length, rec.Ticks, cause))
}

func (g *Game) startRound() {
	snake := g.popManager.Spawn()
	if err := g.barrierMgr.Regenerate(g.src); err != nil {
		g.log.Warn("round %d: keeping previous barrier layout: %v", g.Round+1, err)
	}
	if err := g.foodMgr.Respawn(snake, g.barrierMgr.Barriers()); err != nil {
		g.log.Error("round %d: food respawn failed: %v", g.Round+1, err)
	}
	g.stateMgr.ResetScore()
	g.scheduler.Reset()
	g.Round++
	g.roundStart = g.now()
	g.roundTicks = 0
}

// SetDirection forwards a heading request to the snake.
func (g *Game) SetDirection(dir types.Direction) bool {
	return g.popManager.Current().SetDirection(dir)
}

// OnFoodEaten credits one food and returns the new score.
func (g *Game) OnFoodEaten() int {
	return g.stateMgr.AddScore()
}

// SnakeTick runs one snake step: commit the heading, move, eat, collide.
func (g *Game) SnakeTick() SnakeOutcome {
	snake := g.popManager.Current()
	if !snake.Commit() {
		return SnakeOutcome{Event: SnakeIdle, Head: snake.GetHead()}
	}
	g.roundTicks++

	barriers := g.barrierMgr.Barriers()
	newHead := snake.NextHead(g.Grid.CellSize)
	snake.Move(newHead)

	out := SnakeOutcome{Event: SnakeMoved, Head: newHead}
	if g.collisionMgr.IsFoodCollision(newHead, g.foodMgr.Food().Pos) {
		out.Event = SnakeAte
		out.Score = g.OnFoodEaten()
		if err := g.foodMgr.Respawn(snake, barriers); err != nil {
			g.log.Event("board-full", g.UUID, err.Error())
			g.finishRound("board full")
			g.startRound()
			out.Event = BoardFull
			return out
		}
	} else {
		snake.RemoveTail()
		out.Score = g.stateMgr.GetScore()
	}

	if cause := g.collisionMgr.CheckCollision(snake, barriers); cause != manager.NoCollision {
		snake.Dead = true
		out.Event = SnakeDied
		out.Cause = cause
		g.finishRound(cause.String())
		g.startRound()
	}
	return out
}

// FoodTick runs one food step.
func (g *Game) FoodTick() manager.FoodOutcome {
	return g.foodMgr.Update(g.popManager.Current(), g.barrierMgr.Barriers())
}

// Tick advances the scheduler by one unit and runs the due tasks, snake first.
func (g *Game) Tick() TickResult {
	res := TickResult{Due: g.scheduler.Advance()}
	if res.Due.Snake {
		res.Snake = g.SnakeTick()
		if res.Snake.Reset() {
			res.Reset = true
			return res
		}
	}
	if res.Due.Food {
		res.Food = g.FoodTick()
	}
	return res
}

// TickInterval is the wall-clock length of one scheduler unit.
func (g *Game) TickInterval() time.Duration {
	return g.scheduler.Base()
}

// Frame snapshots the session for drawing.
func (g *Game) Frame() Frame {
	snake := g.popManager.Current()
	barriers := g.barrierMgr.Barriers()
	rects := make([]types.Rect, len(barriers))
	for i, b := range barriers {
		rects[i] = b.Rect()
	}
	attempts, tunnels := g.foodMgr.Tunnel().Counts()

	return Frame{
		Grid:           g.Grid,
		Snake:          snake.Cells(),
		Direction:      snake.Direction,
		State:          snake.State(),
		Food:           g.foodMgr.Food(),
		FoodRadius:     g.Config.FoodRadius(),
		Barriers:       rects,
		Score:          g.stateMgr.GetScore(),
		HighScore:      g.stateMgr.GetHighScore(),
		Round:          g.Round,
		SessionID:      g.UUID,
		TunnelAttempts: attempts,
		Tunnels:        tunnels,
	}
}

func (g *Game) Score() int {
	return g.stateMgr.GetScore()
}

func (g *Game) HighScore() int {
	return g.stateMgr.GetHighScore()
}

// Stats returns the round history of this session.
func (g *Game) Stats() *stats.History {
	return g.stateMgr.History()
}

// Head is the snake's head cell.
func (g *Game) Head() types.Cell {
	return g.popManager.Current().GetHead()
}

// CellSize is one grid step in board units.
func (g *Game) CellSize() int {
	return g.Grid.CellSize
}

// Direction is the snake's committed heading.
func (g *Game) Direction() types.Direction {
	return g.popManager.Current().Direction
}

// SnakeLen is the current body length.
func (g *Game) SnakeLen() int {
	return g.popManager.Current().Len()
}

// FoodCell is the food's current cell.
func (g *Game) FoodCell() types.Cell {
	return g.foodMgr.Food().Pos
}

// Blocked reports whether moving the head onto c would end the round.
// The tail cell is free since it moves away on the same tick.
func (g *Game) Blocked(c types.Cell) bool {
	if !g.Grid.InBounds(c) || g.barrierMgr.Blocks(c) {
		return true
	}
	body := g.popManager.Current().Body
	if len(body) > 1 {
		body = body[:len(body)-1]
	}
	for _, p := range body {
		if p == c {
			return true
		}
	}
	return false
}
