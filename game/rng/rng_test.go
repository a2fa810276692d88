package rng

import "testing"

func TestSeededSourceIsDeterministic(t *testing.T) {
	a, b := New(42), New(42)
	for i := 0; i < 100; i++ {
		if x, y := a.Intn(1000), b.Intn(1000); x != y {
			t.Fatalf("step %d: %d != %d", i, x, y)
		}
		f := a.Float64()
		if f != b.Float64() {
			t.Fatalf("step %d: float mismatch", i)
		}
		if f < 0 || f >= 1 {
			t.Fatalf("Float64 out of range: %v", f)
		}
	}
}

func TestRange(t *testing.T) {
	src := New(7)
	for i := 0; i < 1000; i++ {
		v := Range(src, 3, 5)
		if v < 3 || v > 5 {
			t.Fatalf("Range returned %d", v)
		}
	}
	if v := Range(src, 4, 4); v != 4 {
		t.Errorf("degenerate range = %d, want 4", v)
	}
}

func TestSequence(t *testing.T) {
	s := &Sequence{Floats: []float64{0.25, 0.5}, Ints: []int{7, -3}}
	if v := s.Float64(); v != 0.25 {
		t.Errorf("first float = %v", v)
	}
	if v := s.Intn(5); v != 2 {
		t.Errorf("first int = %d, want 2", v)
	}
	if v := s.Intn(5); v != 3 {
		t.Errorf("negative int not folded: %d", v)
	}
	f, i := s.Remaining()
	if f != 1 || i != 0 {
		t.Errorf("Remaining = %d,%d", f, i)
	}
	s.Float64()
	if v := s.Float64(); v != 0 {
		t.Errorf("exhausted sequence without fallback = %v, want 0", v)
	}

	s.Fallback = &Sequence{Ints: []int{4}}
	if v := s.Intn(10); v != 4 {
		t.Errorf("fallback int = %d, want 4", v)
	}
}
