package tunnel

import (
	"math"
	"testing"

	"quantum-snake/game/rng"
)

func TestTransmissionRange(t *testing.T) {
	for eta := 0.0; eta < MaxEnergyRatio; eta += 0.01 {
		T := Transmission(eta)
		if math.IsNaN(T) || T < 0 || T > 1 {
			t.Fatalf("Transmission(%v) = %v, want value in [0,1]", eta, T)
		}
	}
}

func TestTransmissionRegimes(t *testing.T) {
	tests := []struct {
		eta    float64
		regime Regime
	}{
		{0.5, Forbidden},
		{0.999, Forbidden},
		{1, Resonant},
		{1.5, Allowed},
		{2.9, Allowed},
	}
	for _, tt := range tests {
		if got := RegimeOf(tt.eta); got != tt.regime {
			t.Errorf("RegimeOf(%v) = %v, want %v", tt.eta, got, tt.regime)
		}
	}
}

func TestTransmissionClosedForms(t *testing.T) {
	ka := math.Sqrt(2*ElectronMass*PotentialHeight) / ReducedPlanck * BarrierWidth

	want := 1 / (1 + (ka/2)*(ka/2))
	if got := Transmission(1); math.Abs(got-want) > 1e-12 {
		t.Errorf("resonant T = %v, want %v", got, want)
	}

	// eta = 0.5: kappa*a = ka*sqrt(0.5)
	s := math.Sinh(ka * math.Sqrt(0.5))
	want = 1 / (1 + s*s/(4*0.5*0.5))
	if got := Transmission(0.5); math.Abs(got-want) > 1e-12 {
		t.Errorf("forbidden T = %v, want %v", got, want)
	}

	// eta = 2: alpha*a = ka
	sn := math.Sin(ka)
	want = 1 / (1 + sn*sn/(4*2*1))
	if got := Transmission(2); math.Abs(got-want) > 1e-12 {
		t.Errorf("allowed T = %v, want %v", got, want)
	}
}

func TestResonantLimitIsContinuous(t *testing.T) {
	at := Transmission(1)
	below := Transmission(1 - 1e-9)
	above := Transmission(1 + 1e-9)
	if math.Abs(at-below) > 1e-6 || math.Abs(at-above) > 1e-6 {
		t.Errorf("T not continuous around eta=1: %v %v %v", below, at, above)
	}
}

func TestZeroEnergyNeverTransmits(t *testing.T) {
	if T := Transmission(0); T != 0 {
		t.Errorf("Transmission(0) = %v, want 0", T)
	}
	if Decide(0, 0.01) {
		t.Error("zero energy particle passed with u > 0")
	}
}

func TestDecideHalfEnergyZeroDraw(t *testing.T) {
	if !Decide(0.5, 0.0) {
		t.Error("eta=0.5, u=0 must tunnel")
	}
	m := New(&rng.Sequence{Floats: []float64{0.5 / MaxEnergyRatio, 0.0}})
	if !m.Attempt() {
		t.Error("Attempt with eta=0.5, u=0 must tunnel")
	}
	if a, n := m.Counts(); a != 1 || n != 1 {
		t.Errorf("Counts = %d,%d, want 1,1", a, n)
	}
}

func TestDecideMonotoneInTransmission(t *testing.T) {
	var etas []float64
	for eta := 0.05; eta < MaxEnergyRatio; eta += 0.05 {
		etas = append(etas, eta)
	}
	for _, u := range []float64{0, 0.1, 0.5, 0.9, 0.99} {
		for _, a := range etas {
			for _, b := range etas {
				if Transmission(b) < Transmission(a) {
					continue
				}
				if Decide(a, u) && !Decide(b, u) {
					t.Fatalf("u=%v: eta %v passes (T=%v) but eta %v fails (T=%v)",
						u, a, Transmission(a), b, Transmission(b))
				}
			}
		}
	}
}

func TestAttemptUsesInjectedSamples(t *testing.T) {
	// eta = 0.3 in the forbidden regime has T far below 0.5.
	m := New(&rng.Sequence{Floats: []float64{0.1, 0.5, 2.0 / MaxEnergyRatio, 0.0}})
	if m.Attempt() {
		t.Error("forbidden particle with u=0.5 should reflect")
	}
	if !m.Attempt() {
		t.Error("allowed particle with u=0 should pass")
	}
	if a, n := m.Counts(); a != 2 || n != 1 {
		t.Errorf("Counts = %d,%d, want 2,1", a, n)
	}
}
