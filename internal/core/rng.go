package core

import "math/rand/v2"

// Random is the seeded source generators draw from.
type Random interface {
	// Float64 returns a value in [0, 1).
	Float64() float64
	// Uniform returns a value in [lo, hi).
	Uniform(lo, hi float64) float64
	// IntRange returns an integer in [lo, hi).
	IntRange(lo, hi int) int
	// IntN returns an integer in [0, n). It panics if n <= 0.
	IntN(n int) int
}

// Pick returns a uniformly chosen element of set.
func Pick[T any](r Random, set []T) T {
	return set[r.IntN(len(set))]
}

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

func (r *RNG) Float64() float64 { return r.r.Float64() }

func (r *RNG) Uniform(lo, hi float64) float64 {
	return lo + r.r.Float64()*(hi-lo)
}

func (r *RNG) IntRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.r.IntN(hi-lo)
}

func (r *RNG) IntN(n int) int { return r.r.IntN(n) }
