package ai

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"quantum-snake/game/rng"
	"quantum-snake/game/types"
)

// State is the compact observation the agent learns over.
type State struct {
	FoodDir    [2]int          // sign of food minus head on x and y
	DangerDirs [4]bool         // danger one step away (up, right, down, left)
	Heading    types.Direction // committed direction
}

func (s State) key() string {
	return fmt.Sprintf("%d,%d|%d%d%d%d|%d",
		s.FoodDir[0], s.FoodDir[1],
		boolToInt(s.DangerDirs[0]), boolToInt(s.DangerDirs[1]),
		boolToInt(s.DangerDirs[2]), boolToInt(s.DangerDirs[3]),
		s.Heading)
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// Action is an absolute heading choice.
type Action int

const (
	Up Action = iota
	Right
	Down
	Left
)

// Direction maps the action to a snake heading.
func (a Action) Direction() types.Direction {
	return types.Directions[a]
}

type QTable map[string]map[Action]float64

type QLearning struct {
	QTable       QTable
	LearningRate float64
	Discount     float64
	Epsilon      float64
	TotalReward  float64
	GamesPlayed  int

	src rng.Source
}

func NewQLearning(src rng.Source) *QLearning {
	return &QLearning{
		QTable:       make(QTable),
		LearningRate: 0.1,
		Discount:     0.9,
		Epsilon:      0.1,
		src:          src,
	}
}

// allowed lists the actions that do not reverse the heading.
func allowed(state State) []Action {
	actions := make([]Action, 0, 4)
	for a := Up; a <= Left; a++ {
		if state.Heading != types.None && a.Direction() == state.Heading.Opposite() {
			continue
		}
		actions = append(actions, a)
	}
	return actions
}

func (q *QLearning) GetAction(state State) Action {
	// Exploration: random action
	if q.src.Float64() < q.Epsilon {
		actions := allowed(state)
		return actions[q.src.Intn(len(actions))]
	}

	// Exploitation: best known action
	return q.getBestAction(state)
}

func (q *QLearning) getBestAction(state State) Action {
	values := q.row(state.key())

	actions := allowed(state)
	bestAction := actions[0]
	bestValue := math.Inf(-1)
	for _, action := range actions {
		if values[action] > bestValue {
			bestValue = values[action]
			bestAction = action
		}
	}
	return bestAction
}

func (q *QLearning) row(key string) map[Action]float64 {
	if _, exists := q.QTable[key]; !exists {
		q.QTable[key] = make(map[Action]float64)
		for a := Up; a <= Left; a++ {
			q.QTable[key][a] = 0
		}
	}
	return q.QTable[key]
}

// Update applies one Q-learning step. Terminal transitions have no future value.
func (q *QLearning) Update(state State, action Action, reward float64, nextState State, terminal bool) {
	current := q.row(state.key())

	maxNextQ := 0.0
	if !terminal {
		maxNextQ = math.Inf(-1)
		for _, value := range q.row(nextState.key()) {
			if value > maxNextQ {
				maxNextQ = value
			}
		}
	}

	currentQ := current[action]
	current[action] = currentQ + q.LearningRate*(reward+q.Discount*maxNextQ-currentQ)
	q.TotalReward += reward
}

// SaveQTable writes the table as indented JSON.
func (q *QLearning) SaveQTable(filename string) error {
	if dir := filepath.Dir(filename); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errors.Wrapf(err, "create %s", dir)
		}
	}

	data, err := json.MarshalIndent(q.QTable, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encode q-table")
	}
	return errors.Wrapf(os.WriteFile(filename, data, 0644), "write %s", filename)
}

// LoadQTable replaces the table with the one stored in filename.
func (q *QLearning) LoadQTable(filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return errors.Wrapf(err, "read %s", filename)
	}

	table := make(QTable)
	if err := json.Unmarshal(data, &table); err != nil {
		return errors.Wrapf(err, "decode %s", filename)
	}
	q.QTable = table
	return nil
}
