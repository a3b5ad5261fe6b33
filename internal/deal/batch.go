package deal

import (
	"runtime"

	"github.com/lonng/mjdeal/internal/async"
)

// Batch runs count independent deals concurrently. Deal i draws from its
// own source seeded with seed+i, so no state is shared between deals.
// Seed 0 picks a base seed from the clock. Results are in deal order,
// returned with the base seed actually used.
func Batch(count int, seed int64) ([]*Result, int64) {
	seed = ResolveSeed(seed)
	if count <= 0 {
		return nil, seed
	}

	results := make([]*Result, count)
	async.RunN(count, runtime.NumCPU(), func(i int) {
		results[i] = NewEngine(NewSource(seed + int64(i))).Deal()
	})

	logger.Debugf("batch finished, count=%d seed=%d", count, seed)
	return results, seed
}
