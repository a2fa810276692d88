package ai

import (
	"quantum-snake/game"
	"quantum-snake/game/types"
)

// Rewards per snake tick.
const (
	RewardFood   = 1.0
	RewardDeath  = -1.0
	RewardCloser = 0.5
	RewardAway   = -0.3
)

// Env is the view of a session the agent needs. *game.Game implements it.
type Env interface {
	Head() types.Cell
	FoodCell() types.Cell
	Direction() types.Direction
	CellSize() int
	Blocked(c types.Cell) bool
	SetDirection(dir types.Direction) bool
}

// Agent steers the snake through the same SetDirection path as the keyboard.
type Agent struct {
	Brain *QLearning

	lastState  State
	lastAction Action
	lastDist   int
	pending    bool
}

func NewAgent(brain *QLearning) *Agent {
	return &Agent{Brain: brain}
}

// Observe builds the state for the current position.
func Observe(env Env) State {
	head, food := env.Head(), env.FoodCell()
	step := env.CellSize()

	var s State
	s.FoodDir = [2]int{types.Sign(food.X - head.X), types.Sign(food.Y - head.Y)}
	for i, d := range types.Directions {
		s.DangerDirs[i] = env.Blocked(head.Add(d.ToPoint().Scale(step)))
	}
	s.Heading = env.Direction()
	return s
}

// Act picks an action for the coming snake tick and requests it.
func (a *Agent) Act(env Env) Action {
	state := Observe(env)
	action := a.Brain.GetAction(state)
	env.SetDirection(action.Direction())

	a.lastState = state
	a.lastAction = action
	a.lastDist = types.Manhattan(env.Head(), env.FoodCell())
	a.pending = true
	return action
}

// Forget drops the pending action so a later Learn cannot credit it with
// moves the agent did not make.
func (a *Agent) Forget() {
	a.pending = false
}

// Learn scores the last action against the snake tick outcome and returns
// the reward. It is a no-op when no action is pending.
func (a *Agent) Learn(env Env, out game.SnakeOutcome) float64 {
	if !a.pending {
		return 0
	}
	a.pending = false

	var reward float64
	terminal := false
	switch out.Event {
	case game.SnakeAte:
		reward = RewardFood
	case game.SnakeDied:
		reward = RewardDeath
		terminal = true
	case game.BoardFull:
		reward = RewardFood
		terminal = true
	case game.SnakeIdle:
		return 0
	default:
		switch dist := types.Manhattan(env.Head(), env.FoodCell()); {
		case dist < a.lastDist:
			reward = RewardCloser
		case dist > a.lastDist:
			reward = RewardAway
		}
	}

	if terminal {
		a.Brain.GamesPlayed++
	}
	a.Brain.Update(a.lastState, a.lastAction, reward, Observe(env), terminal)
	return reward
}

// Step acts if needed, advances the session one scheduler unit and learns
// from the snake tick when it ran.
func (a *Agent) Step(g *game.Game) game.TickResult {
	if !a.pending {
		a.Act(g)
	}
	res := g.Tick()
	if res.Due.Snake {
		a.Learn(g, res.Snake)
	}
	return res
}
