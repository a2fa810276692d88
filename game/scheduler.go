package game

import "time"

// Scheduler turns the snake and food periods into one logical tick counter.
// The base unit is the greatest common divisor of the two periods; each task
// fires every period/base units. Nothing here reads the wall clock.
type Scheduler struct {
	base       time.Duration
	snakeEvery uint64
	foodEvery  uint64
	tickCount  uint64
}

// Due reports which tasks fire on one logical tick.
type Due struct {
	Snake bool
	Food  bool
}

func NewScheduler(snakeTick, foodTick time.Duration) *Scheduler {
	base := gcd(snakeTick, foodTick)
	return &Scheduler{
		base:       base,
		snakeEvery: uint64(snakeTick / base),
		foodEvery:  uint64(foodTick / base),
	}
}

func gcd(a, b time.Duration) time.Duration {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// Base is the duration of one logical tick.
func (s *Scheduler) Base() time.Duration {
	return s.base
}

// Advance moves the counter by one unit and reports the due tasks.
func (s *Scheduler) Advance() Due {
	s.tickCount++
	return Due{
		Snake: s.tickCount%s.snakeEvery == 0,
		Food:  s.tickCount%s.foodEvery == 0,
	}
}

// TickCount is the number of logical ticks since the last reset.
func (s *Scheduler) TickCount() uint64 {
	return s.tickCount
}

func (s *Scheduler) Reset() {
	s.tickCount = 0
}
