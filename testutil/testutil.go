package testutil

import (
	"math"
	"math/rand"
	"slices"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Uint64 returns a pseudo-random uint64.
func (r *RNG) Uint64() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Uint64()
}

// Indices returns n distinct indices in [0, capacity), ascending.
// n is clamped to capacity.
func (r *RNG) Indices(n, capacity int) []int {
	r.mu.Lock()
	defer r.mu.Unlock()

	if n > capacity {
		n = capacity
	}
	out := r.rand.Perm(capacity)[:n]
	slices.Sort(out)
	return out
}

// Bernoulli keeps every index in [0, capacity) with probability p.
func (r *RNG) Bernoulli(capacity int, p float64) []int {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]int, 0, int(float64(capacity)*p)+1)
	for i := range capacity {
		if r.rand.Float64() < p {
			out = append(out, i)
		}
	}
	return out
}

// Zipf returns a Zipfian-distributed value in [0, n).
// Uses Zipf's law: P(k) ∝ 1/k^s where s is the skew parameter.
func (r *RNG) Zipf(n int, s float64) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.zipfLocked(n, s)
}

// zipfLocked is the internal implementation (caller must hold lock).
func (r *RNG) zipfLocked(n int, s float64) int {
	if n <= 1 {
		return 0
	}

	var hns float64
	for i := 1; i <= n; i++ {
		hns += 1.0 / math.Pow(float64(i), s)
	}

	u := r.rand.Float64() * hns
	var cumulative float64
	for k := 1; k <= n; k++ {
		cumulative += 1.0 / math.Pow(float64(k), s)
		if u <= cumulative {
			return k - 1
		}
	}

	return n - 1
}

// ZipfIndices draws n Zipf-skewed indices in [0, capacity). Low indices are
// hot, so the result clusters in the first chunks of a dense set.
// Duplicates are kept.
func (r *RNG) ZipfIndices(n, capacity int, s float64) []int {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]int, n)
	for i := range n {
		out[i] = r.zipfLocked(capacity, s)
	}
	return out
}

// Reference is a map-backed set used as the ground truth in engine tests.
type Reference struct {
	capacity int
	members  map[int]struct{}
}

// NewReference creates an empty reference set over [0, capacity).
func NewReference(capacity int) *Reference {
	return &Reference{capacity: capacity, members: make(map[int]struct{})}
}

// Insert adds i and reports whether it was absent.
func (r *Reference) Insert(i int) bool {
	if _, ok := r.members[i]; ok {
		return false
	}
	r.members[i] = struct{}{}
	return true
}

// Remove deletes i and reports whether it was present.
func (r *Reference) Remove(i int) bool {
	if _, ok := r.members[i]; !ok {
		return false
	}
	delete(r.members, i)
	return true
}

// Contains reports whether i is present.
func (r *Reference) Contains(i int) bool {
	_, ok := r.members[i]
	return ok
}

// Len returns the number of members.
func (r *Reference) Len() int {
	return len(r.members)
}

// Complement returns the members of [0, capacity) missing from r, ascending.
func (r *Reference) Complement() []int {
	out := make([]int, 0, r.capacity-len(r.members))
	for i := range r.capacity {
		if !r.Contains(i) {
			out = append(out, i)
		}
	}
	return out
}

// Sorted returns the members in ascending order.
func (r *Reference) Sorted() []int {
	out := make([]int, 0, len(r.members))
	for i := range r.members {
		out = append(out, i)
	}
	slices.Sort(out)
	return out
}
