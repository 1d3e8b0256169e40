package stickerdomain

import (
	"crypto/sha256"
	"encoding/binary"
	"math"
	"math/rand/v2"
)

// Quota is ceil(n × fraction) draws, capped at n.
func Quota(n int, fraction float64) int {
	if n <= 0 || fraction <= 0 {
		return 0
	}
	return min(int(math.Ceil(float64(n)*fraction)), n)
}

// Sample draws Quota(len(population), fraction) items with replacement using
// a generator seeded from seed. An item wins when drawn at least once, so the
// number of winners may be lower than the quota.
func Sample[T comparable](population []T, fraction float64, seed string) map[T]struct{} {
	winners := make(map[T]struct{})
	quota := Quota(len(population), fraction)
	if quota == 0 {
		return winners
	}

	rng := newSeededRand(seed)
	for range quota {
		winners[population[rng.IntN(len(population))]] = struct{}{}
	}
	return winners
}

func newSeededRand(seed string) *rand.Rand {
	sum := sha256.Sum256([]byte(seed))
	return rand.New(rand.NewPCG(
		binary.BigEndian.Uint64(sum[0:8]),
		binary.BigEndian.Uint64(sum[8:16]),
	))
}
