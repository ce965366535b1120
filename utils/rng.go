package utils

import "math/rand/v2"

// NewRNG returns a PCG-backed source. A zero seed draws the seed from the
// runtime's entropy, so runs are not reproducible.
func NewRNG(seed int64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(uint64(seed), 0))
}
