package service

import "math/rand/v2"

// Sampler is the source of randomness for quiz generation. It exists
// so tests can make card selection and choice shuffling deterministic.
type Sampler interface {
	// Perm returns a uniformly random permutation of [0, n).
	Perm(n int) []int

	// Shuffle applies a uniformly random shuffle of n elements via swap.
	Shuffle(n int, swap func(i, j int))
}

// randomSampler is the production Sampler. The top-level math/rand/v2
// functions are safe for concurrent use, so it carries no state.
type randomSampler struct{}

func (randomSampler) Perm(n int) []int                   { return rand.Perm(n) }
func (randomSampler) Shuffle(n int, swap func(i, j int)) { rand.Shuffle(n, swap) }
