// Package xorshift provides a small, fast, seedable pseudo-random source.
package xorshift

// Source is a 64-bit xorshift generator (shifts 21, 35, 4). It implements
// math/rand.Source64. It is not safe for concurrent use.
type Source struct {
	state uint64
}

// New returns a source seeded with seed.
func New(seed int64) *Source {
	s := &Source{}
	s.Seed(seed)
	return s
}

// Seed resets the generator. A zero seed would make the state stick at zero,
// so it is replaced by the sign bit.
func (s *Source) Seed(seed int64) {
	if seed == 0 {
		s.state = 1 << 63
		return
	}
	s.state = uint64(seed)
}

func (s *Source) Uint64() uint64 {
	s.state ^= s.state << 21
	s.state ^= s.state >> 35
	s.state ^= s.state << 4
	return s.state
}

func (s *Source) Int63() int64 {
	return int64(s.Uint64() & (1<<63 - 1))
}
