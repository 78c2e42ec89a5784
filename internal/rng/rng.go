// Seedable random source injected through every generator.
package rng

import (
	"crypto/sha256"
	"encoding/binary"
	"time"
)

// Source supplies the two random operations scenario generation needs:
// uniform index selection and uniform integer ranges.
type Source interface {
	// Intn returns a uniform int in [0, n). n <= 0 returns 0.
	Intn(n int) int
	// Between returns a uniform int in [min, max] inclusive.
	Between(min, max int) int
}

// SplitMix64 is a small deterministic PRNG suitable for reproducible runs.
type SplitMix64 struct{ state uint64 }

// New creates a SplitMix64 source from a 64-bit seed.
func New(seed uint64) *SplitMix64 { return &SplitMix64{state: seed} }

// NewFromTime creates a source seeded from the wall clock and returns the seed
// so callers can report it for later replay.
func NewFromTime() (*SplitMix64, uint64) {
	seed := uint64(time.Now().UnixNano())
	return New(seed), seed
}

// SeedFromString returns a 64-bit seed from an arbitrary string using SHA256,
// so textual seeds like "midnight-chapel" stay stable across runs.
func SeedFromString(s string) uint64 {
	h := sha256.Sum256([]byte(s))
	return binary.LittleEndian.Uint64(h[:8])
}

func (s *SplitMix64) next() uint64 {
	s.state += 0x9E3779B97F4A7C15
	z := s.state
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

// Intn implements Source.
func (s *SplitMix64) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(s.next() % uint64(n))
}

// Between implements Source. Inverted bounds are treated as equal bounds.
func (s *SplitMix64) Between(min, max int) int {
	if max <= min {
		return min
	}
	return min + s.Intn(max-min+1)
}

// Pick returns a uniformly chosen element. Panics on an empty slice; pools are
// validated non-empty at load time.
func Pick[T any](src Source, items []T) T {
	if len(items) == 0 {
		panic("rng: pick from empty slice")
	}
	return items[src.Intn(len(items))]
}

// Shuffle returns a uniformly permuted copy, leaving the input untouched.
func Shuffle[T any](src Source, items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	for i := len(out) - 1; i > 0; i-- {
		j := src.Intn(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}
