package manager

import (
	"time"

	"quantum-snake/game/stats"
)

// StateManager owns the score, the high score and the round history.
type StateManager struct {
	score     int
	highScore int
	increment int
	history   *stats.History
}

func NewStateManager(increment int, history *stats.History) *StateManager {
	if history == nil {
		history = stats.NewHistory(stats.DefaultGroupSize)
	}
	return &StateManager{
		increment: increment,
		history:   history,
	}
}

// AddScore credits one eaten food and returns the new score.
func (sm *StateManager) AddScore() int {
	sm.score += sm.increment
	sm.UpdateScore(sm.score)
	return sm.score
}

// UpdateScore raises the high score if score beats it.
func (sm *StateManager) UpdateScore(score int) {
	if score > sm.highScore {
		sm.highScore = score
	}
}

func (sm *StateManager) ResetScore() {
	sm.score = 0
}

// RecordRound appends a finished round to the history.
func (sm *StateManager) RecordRound(start, end time.Time, length, ticks int, cause string) stats.RoundRecord {
	rec := stats.RoundRecord{
		StartTime: start,
		EndTime:   end,
		Score:     sm.score,
		Length:    length,
		Ticks:     ticks,
		Cause:     cause,
	}
	sm.history.Add(rec)
	return rec
}

func (sm *StateManager) GetScore() int {
	return sm.score
}

func (sm *StateManager) GetHighScore() int {
	return sm.highScore
}

func (sm *StateManager) History() *stats.History {
	return sm.history
}
