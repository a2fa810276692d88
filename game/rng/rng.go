// Package rng provides the random source used by the simulation.
//
// Every random decision in the game (barrier anchors, food respawn, food axis and
// velocity, tunneling samples, autopilot exploration) goes through Source so tests
// can replace it with a scripted sequence.
package rng

import (
	"golang.org/x/exp/rand"
)

// Source is the random capability consumed by the game.
type Source interface {
	// Float64 returns a value in [0, 1).
	Float64() float64
	// Intn returns a value in [0, n). It panics if n <= 0.
	Intn(n int) int
}

// New returns a PCG-backed source seeded with seed.
func New(seed uint64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// Range returns a uniform integer in [lo, hi].
func Range(src Source, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + src.Intn(hi-lo+1)
}

// Bool returns true with probability one half.
func Bool(src Source) bool {
	return src.Intn(2) == 0
}
