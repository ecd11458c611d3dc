// Package demo drives indicators with a stream of random targets.
package demo

import (
	"math"
	"math/rand/v2"
	"time"
)

// Targets produces whole-number targets within a range, the way a user
// tapping "random" would.
type Targets struct {
	rng *rand.Rand
}

// NewTargets creates a generator. A zero seed uses the current time.
func NewTargets(seed uint64) *Targets {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &Targets{rng: rand.New(rand.NewPCG(seed, seed>>1|1))}
}

// Next returns a value in [min, max). Ranges narrower than one unit give min.
func (t *Targets) Next(min, max float64) float64 {
	span := math.Floor(max - min)
	if !(span >= 1) {
		return min
	}
	return min + float64(t.rng.IntN(int(span)))
}
