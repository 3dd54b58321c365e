// Package random provides shuffling sources that can be swapped out for
// deterministic ones in tests.
package random

import "math/rand/v2"

// Source provides an abstraction for random permutation.
type Source interface {
	// Shuffle pseudo-randomizes the order of n elements using swap.
	Shuffle(n int, swap func(i, j int))
}

// RealSource implements Source with a privately owned generator seeded from
// the runtime's entropy, so every run orders candidates differently.
type RealSource struct {
	rng *rand.Rand
}

// NewRealSource creates a RealSource with a fresh random seed.
func NewRealSource() *RealSource {
	return &RealSource{rng: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
}

// Shuffle performs a uniform Fisher-Yates shuffle.
func (s *RealSource) Shuffle(n int, swap func(i, j int)) {
	s.rng.Shuffle(n, swap)
}

// SeededSource implements Source with a fixed seed for reproducible tests.
type SeededSource struct {
	rng *rand.Rand
}

// NewSeededSource creates a SeededSource. Two sources with the same seed
// produce the same sequence of permutations.
func NewSeededSource(seed uint64) *SeededSource {
	return &SeededSource{rng: rand.New(rand.NewPCG(seed, seed))}
}

// Shuffle performs a uniform Fisher-Yates shuffle.
func (s *SeededSource) Shuffle(n int, swap func(i, j int)) {
	s.rng.Shuffle(n, swap)
}

// Identity implements Source by leaving the order untouched.
type Identity struct{}

// Shuffle does nothing.
func (Identity) Shuffle(n int, swap func(i, j int)) {}

// Reverse implements Source by reversing the order.
type Reverse struct{}

// Shuffle reverses the n elements.
func (Reverse) Shuffle(n int, swap func(i, j int)) {
	for i, j := 0, n-1; i < j; i, j = i+1, j-1 {
		swap(i, j)
	}
}
