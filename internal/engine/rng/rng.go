// Package rng adapts the dice.Roller abstraction to the simulation's needs:
// a seedable roller for reproducible runs plus probability helpers.
package rng

import (
	"math/rand/v2"
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-arena/internal/errors"
)

// resolution is the die size used to turn a roll into a fraction.
const resolution = 1_000_000

// Seeded is a dice.Roller driven by a PCG stream. Two rollers built from the
// same seed produce the same sequence.
type Seeded struct {
	mu  sync.Mutex
	src *rand.Rand
}

var _ dice.Roller = (*Seeded)(nil)

// NewSeeded returns a roller seeded with seed.
func NewSeeded(seed uint64) *Seeded {
	return &Seeded{src: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Roll returns a value in [1, size].
func (s *Seeded) Roll(size int) (int, error) {
	if size <= 0 {
		return 0, errors.InvalidArgumentf("die size must be positive, got %d", size)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.src.IntN(size) + 1, nil
}

// RollN rolls count dice of the given size.
func (s *Seeded) RollN(count, size int) ([]int, error) {
	if count < 0 {
		return nil, errors.InvalidArgumentf("dice count must not be negative, got %d", count)
	}
	out := make([]int, count)
	for i := range out {
		v, err := s.Roll(size)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// Default returns the toolkit's default roller.
func Default() dice.Roller {
	return dice.DefaultRoller
}

// Float returns a value in [0, 1). A failing roller yields 0.
func Float(r dice.Roller) float64 {
	v, err := r.Roll(resolution)
	if err != nil {
		return 0
	}
	return float64(v-1) / resolution
}

// Chance reports whether an event with probability p happens.
func Chance(r dice.Roller, p float64) bool {
	if !(p > 0) {
		return false
	}
	if p >= 1 {
		return true
	}
	return Float(r) < p
}

// Intn returns a value in [0, n). n <= 0 or a failing roller yields 0.
func Intn(r dice.Roller, n int) int {
	if n <= 0 {
		return 0
	}
	v, err := r.Roll(n)
	if err != nil {
		return 0
	}
	return v - 1
}

// Between returns a value in [lo, hi).
func Between(r dice.Roller, lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + Float(r)*(hi-lo)
}
