package deal

import (
	"math/rand"
	"time"
)

// Source drives the shuffle and the dice. *rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
	Shuffle(n int, swap func(i, j int))
}

// ResolveSeed returns seed, or a seed taken from the clock when seed is 0.
// Callers that need to reproduce a random run keep the returned value.
func ResolveSeed(seed int64) int64 {
	if seed != 0 {
		return seed
	}
	if seed = time.Now().UnixNano(); seed == 0 {
		seed = 1
	}
	return seed
}

// NewSource returns a source seeded with seed, or from the clock when
// seed is 0. A *rand.Rand is not safe for concurrent use; give every
// goroutine its own.
func NewSource(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(ResolveSeed(seed)))
}
