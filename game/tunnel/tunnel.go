// Package tunnel models the transmission probability of a particle hitting a
// one-dimensional rectangular potential barrier.
//
// The food particle is treated as an electron of energy E = eta*V0 meeting a
// barrier of height V0 and width a. The transmission coefficient has three
// closed forms depending on whether the particle is classically forbidden
// (eta < 1), exactly at the barrier height (eta == 1) or above it (eta > 1).
package tunnel

import (
	"math"

	"quantum-snake/game/rng"
)

// Physical constants in SI units.
const (
	ElectronMass    = 9.1e-31   // kg
	BarrierWidth    = 1e-9      // m
	PotentialHeight = 1.6e-19   // J
	ReducedPlanck   = 1.055e-34 // J*s

	// MaxEnergyRatio bounds the sampled eta = E/V0 to [0, MaxEnergyRatio).
	MaxEnergyRatio = 3.0
)

// Regime identifies which closed form applies to an energy ratio.
type Regime int

const (
	Forbidden Regime = iota // eta < 1
	Resonant                // eta == 1
	Allowed                 // eta > 1
)

func (r Regime) String() string {
	switch r {
	case Forbidden:
		return "forbidden"
	case Resonant:
		return "resonant"
	default:
		return "allowed"
	}
}

// RegimeOf reports the regime for eta.
func RegimeOf(eta float64) Regime {
	switch {
	case eta < 1:
		return Forbidden
	case eta == 1:
		return Resonant
	default:
		return Allowed
	}
}

// waveNumber returns sqrt(2*m*V0*x)/hbar.
func waveNumber(x float64) float64 {
	return math.Sqrt(2*ElectronMass*PotentialHeight*x) / ReducedPlanck
}

// Transmission returns the transmission probability T in [0, 1] for eta.
// Non-positive eta carries no energy and never transmits.
func Transmission(eta float64) float64 {
	switch RegimeOf(eta) {
	case Forbidden:
		if eta <= 0 {
			return 0
		}
		kappa := waveNumber(1 - eta)
		s := math.Sinh(kappa * BarrierWidth)
		return 1 / (1 + s*s/(4*eta*(1-eta)))
	case Resonant:
		k := waveNumber(1)
		ka := k * BarrierWidth / 2
		return 1 / (1 + ka*ka)
	default:
		alpha := waveNumber(eta - 1)
		s := math.Sin(alpha * BarrierWidth)
		return 1 / (1 + s*s/(4*eta*(eta-1)))
	}
}

// Decide reports whether a particle with energy ratio eta passes for the
// uniform draw u in [0, 1).
func Decide(eta, u float64) bool {
	return Transmission(eta) >= u
}

// Model draws energy ratios and decisions from an injected source and counts
// the outcomes.
type Model struct {
	src rng.Source

	attempts int
	tunnels  int
}

// New returns a model drawing from src.
func New(src rng.Source) *Model {
	return &Model{src: src}
}

// Attempt samples eta in [0, MaxEnergyRatio) and u in [0, 1) and reports
// whether the particle tunnels through.
func (m *Model) Attempt() bool {
	eta := m.src.Float64() * MaxEnergyRatio
	u := m.src.Float64()
	m.attempts++
	ok := Decide(eta, u)
	if ok {
		m.tunnels++
	}
	return ok
}

// Counts returns the number of attempts and successful tunnels so far.
func (m *Model) Counts() (attempts, tunnels int) {
	return m.attempts, m.tunnels
}
