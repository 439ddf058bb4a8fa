package game

import (
	"math/rand/v2"
	"time"

	"github.com/abhisek/wordgym/internal/words"
)

// NewRand returns a freshly seeded source for session building.
func NewRand() *rand.Rand {
	return rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), rand.Uint64()))
}

// Shuffle permutes items in place with a Fisher-Yates walk: each index
// from last to first is swapped with a uniformly random earlier-or-equal
// index.
func Shuffle[T any](items []T, rng *rand.Rand) {
	for i := len(items) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		items[i], items[j] = items[j], items[i]
	}
}

// Sample returns up to count words from pool. When shuffle is set the
// pool is copied and shuffled first; otherwise the filtered order is
// preserved. CountAll returns the whole pool.
func Sample(pool []words.Word, count int, shuffle bool, rng *rand.Rand) []words.Word {
	out := make([]words.Word, len(pool))
	copy(out, pool)
	if shuffle {
		Shuffle(out, rng)
	}
	if count == CountAll || count >= len(out) {
		return out
	}
	if count < 0 {
		return nil
	}
	return out[:count]
}
