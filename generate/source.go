package generate

// Source is the random capability every algorithm draws from.
// *math/rand.Rand satisfies it.
type Source interface {
	// Intn returns a uniform value in [0, n). n is always > 0.
	Intn(n int) int
	// Shuffle permutes n elements through swap.
	Shuffle(n int, swap func(i, j int))
}

// Sequence is a scripted Source that replays draws in order, cycling when
// exhausted. Each draw is reduced modulo n, so NewSequence(0) always picks
// the first candidate. Shuffle runs Fisher–Yates over the same draws.
type Sequence struct {
	draws []int
	pos   int
}

// NewSequence returns a Sequence over draws. An empty list behaves like NewSequence(0).
func NewSequence(draws ...int) *Sequence {
	if len(draws) == 0 {
		draws = []int{0}
	}
	cp := make([]int, len(draws))
	copy(cp, draws)
	return &Sequence{draws: cp}
}

// Intn returns the next scripted draw modulo n. Panics if n <= 0, as
// math/rand does.
func (s *Sequence) Intn(n int) int {
	if n <= 0 {
		panic("generate: Sequence.Intn called with n <= 0")
	}
	v := s.draws[s.pos%len(s.draws)] % n
	s.pos++
	if v < 0 {
		v += n
	}
	return v
}

// Shuffle performs a Fisher–Yates shuffle driven by scripted draws.
func (s *Sequence) Shuffle(n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		swap(i, s.Intn(i+1))
	}
}

// Draws returns how many values have been consumed so far.
func (s *Sequence) Draws() int { return s.pos }
