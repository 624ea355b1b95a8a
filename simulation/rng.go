package simulation

import (
	"math/rand/v2"
)

// RandSource yields uniform values in [0, 1)
type RandSource interface {
	Float64() float64
}

// NewSeed returns a fresh non-negative seed suitable for NewSeededSource
func NewSeed() int64 {
	return rand.Int64()
}

// NewSource returns a randomly seeded source
func NewSource() RandSource {
	return NewSeededSource(NewSeed())
}

// NewSeededSource returns a deterministic PCG source. Equal seeds produce
// equal draw sequences.
func NewSeededSource(seed int64) RandSource {
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15))
}
