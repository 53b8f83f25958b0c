// Package randutil derives reproducible random streams from seeds so a batch
// of games can be replayed exactly.
package randutil

import rand "math/rand/v2"

const (
	goldenRatio64 = 0x9e3779b97f4a7c15
)

// New returns a *rand.Rand seeded deterministically from seed.
func New(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(mix(seed), mix(seed+goldenRatio64)))
}

// ForGame returns the stream for game index n of a batch seeded with seed.
// Streams for different indexes are independent of each other and of the
// order in which games are played.
func ForGame(seed uint64, n int) *rand.Rand {
	return New(GameSeed(seed, n))
}

// GameSeed returns the seed ForGame uses for game index n.
func GameSeed(seed uint64, n int) uint64 {
	return mix(seed ^ (uint64(n)+1)*goldenRatio64)
}

// RandomSeed picks a fresh seed when the caller did not supply one.
func RandomSeed() uint64 {
	for {
		if s := rand.Uint64(); s != 0 {
			return s
		}
	}
}

// splitmix64 finalizer
func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
