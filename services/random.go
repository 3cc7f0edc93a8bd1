package services

import (
	"math/rand"
	"sync"
	"time"
)

// Randomizer is a goroutine-safe wrapper around *rand.Rand. Seed 0 means time-seeded.
type Randomizer struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewRandomizer(seed int64) *Randomizer {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Randomizer{rng: rand.New(rand.NewSource(seed))}
}

// Intn returns a value in [0, n)
func (r *Randomizer) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.Intn(n)
}

// Between returns a value in [min, max]
func (r *Randomizer) Between(min, max int) int {
	if max <= min {
		return min
	}
	return min + r.Intn(max-min+1)
}

func (r *Randomizer) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.Float64()
}

// Chance returns true with probability p
func (r *Randomizer) Chance(p float64) bool {
	return r.Float64() < p
}

// Duration returns a duration uniformly distributed in [min, max]
func (r *Randomizer) Duration(min, max time.Duration) time.Duration {
	if max <= min {
		return min
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return min + time.Duration(r.rng.Int63n(int64(max-min)+1))
}

// Pick returns a random element of items
func (r *Randomizer) Pick(items []string) string {
	return items[r.Intn(len(items))]
}

// Perm returns a random permutation of [0, n)
func (r *Randomizer) Perm(n int) []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.Perm(n)
}
