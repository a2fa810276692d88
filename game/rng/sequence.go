package rng

// Sequence is a scripted Source for deterministic tests.
// Floats and Ints are consumed in order; once a slice is exhausted the
// corresponding fallback source is used, or zero if none is set.
type Sequence struct {
	Floats []float64
	Ints   []int

	Fallback Source

	fi, ii int
}

// Float64 returns the next scripted float.
func (s *Sequence) Float64() float64 {
	if s.fi < len(s.Floats) {
		v := s.Floats[s.fi]
		s.fi++
		return v
	}
	if s.Fallback != nil {
		return s.Fallback.Float64()
	}
	return 0
}

// Intn returns the next scripted int reduced modulo n.
func (s *Sequence) Intn(n int) int {
	if n <= 0 {
		panic("rng: invalid argument to Intn")
	}
	if s.ii < len(s.Ints) {
		v := s.Ints[s.ii]
		s.ii++
		if v < 0 {
			v = -v
		}
		return v % n
	}
	if s.Fallback != nil {
		return s.Fallback.Intn(n)
	}
	return 0
}

// Remaining reports how many scripted values are still unread.
func (s *Sequence) Remaining() (floats, ints int) {
	return len(s.Floats) - s.fi, len(s.Ints) - s.ii
}
