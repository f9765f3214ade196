package cipher

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand/v2"
)

// NewRand returns a PCG-backed source seeded with seed. A zero seed is
// replaced by one read from crypto/rand; the seed actually used is returned
// so a round sequence can be replayed.
func NewRand(seed uint64) (*rand.Rand, uint64, error) {
	if seed == 0 {
		var b [8]byte
		if _, err := crand.Read(b[:]); err != nil {
			return nil, 0, fmt.Errorf("read random seed: %w", err)
		}
		seed = binary.LittleEndian.Uint64(b[:])
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)), seed, nil
}

// shuffle permutes s in place with the Fisher–Yates procedure.
func shuffle[T any](r *rand.Rand, s []T) {
	for i := len(s) - 1; i > 0; i-- {
		j := r.IntN(i + 1)
		s[i], s[j] = s[j], s[i]
	}
}

// pick returns a uniformly drawn element of s. s must not be empty.
func pick[T any](r *rand.Rand, s []T) T {
	return s[r.IntN(len(s))]
}
