package entity

import (
	"quantum-snake/game/types"
)

// State is the snake's lifecycle state.
type State int

const (
	Idle State = iota
	Moving
	GameOver
)

func (s State) String() string {
	switch s {
	case Moving:
		return "moving"
	case GameOver:
		return "game over"
	default:
		return "idle"
	}
}

// Snake is a grid-aligned body; Body[0] is the head.
type Snake struct {
	Body      []types.Cell
	Direction types.Direction // committed heading
	Pending   types.Direction // requested heading, applied on the next tick
	Dead      bool
}

func NewSnake(startPos types.Cell) *Snake {
	return &Snake{
		Body:      []types.Cell{startPos},
		Direction: types.None,
		Pending:   types.None,
	}
}

// State derives the lifecycle state from the direction and death flag.
func (s *Snake) State() State {
	switch {
	case s.Dead:
		return GameOver
	case s.Direction == types.None && s.Pending == types.None:
		return Idle
	default:
		return Moving
	}
}

func (s *Snake) GetHead() types.Cell {
	return s.Body[0]
}

func (s *Snake) Len() int {
	return len(s.Body)
}

// Segments returns the body without the head.
func (s *Snake) Segments() []types.Cell {
	return s.Body[1:]
}

// SetDirection requests a new heading. Requests for None or for the reverse of
// the committed heading are ignored. Returns whether the request was stored.
func (s *Snake) SetDirection(dir types.Direction) bool {
	if dir == types.None || dir == s.Direction.Opposite() {
		return false
	}
	s.Pending = dir
	return true
}

// Commit promotes the pending heading. Returns false when the snake has no
// heading and should stay put.
func (s *Snake) Commit() bool {
	if s.Pending != types.None {
		s.Direction = s.Pending
		s.Pending = types.None
	}
	return s.Direction != types.None
}

// NextHead computes where the head moves with the committed heading.
func (s *Snake) NextHead(step int) types.Cell {
	return s.GetHead().Add(s.Direction.ToPoint().Scale(step))
}

// Move prepends newHead to the body.
func (s *Snake) Move(newHead types.Cell) {
	s.Body = append(s.Body, types.Cell{})
	copy(s.Body[1:], s.Body)
	s.Body[0] = newHead
}

func (s *Snake) RemoveTail() {
	if len(s.Body) > 1 {
		s.Body = s.Body[:len(s.Body)-1]
	}
}

// Occupies reports whether any cell of the body equals c.
func (s *Snake) Occupies(c types.Cell) bool {
	for _, p := range s.Body {
		if p == c {
			return true
		}
	}
	return false
}

// Cells returns a copy of the body.
func (s *Snake) Cells() []types.Cell {
	body := make([]types.Cell, len(s.Body))
	copy(body, s.Body)
	return body
}
