// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package generator

// scriptedRand replays fixed draws so tests can force individual trials.
// Once a script runs out, Float64 returns 0.99 (every trial fails) and IntN
// returns 0. Shuffle leaves the order untouched.
type scriptedRand struct {
	floats []float64
	ints   []int
}

func (s *scriptedRand) Float64() float64 {
	if len(s.floats) == 0 {
		return 0.99
	}
	f := s.floats[0]
	s.floats = s.floats[1:]
	return f
}

func (s *scriptedRand) IntN(n int) int {
	if len(s.ints) == 0 {
		return 0
	}
	v := s.ints[0]
	s.ints = s.ints[1:]
	return v % n
}

func (s *scriptedRand) Shuffle(int, func(i, j int)) {}
