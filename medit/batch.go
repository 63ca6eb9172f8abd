package medit

import (
	"context"
	"runtime"
	"sync"
)

// Pair is one source/target input of a batch computation.
type Pair struct {
	Source string `json:"source"`
	Target string `json:"target"`
}

// BatchDistance computes the code-point distance of every pair under
// c, dispatching in parallel (bounded by GOMAXPROCS) and keeping
// results in input order.
//
// ctx cancellation stops dispatching and returns ctx's error.
func BatchDistance(ctx context.Context, pairs []Pair, c Costs) ([]int, error) {
	return batch(ctx, pairs, c, Costs.Distance)
}

// BatchDistanceBytes is BatchDistance over raw bytes.
func BatchDistanceBytes(ctx context.Context, pairs []Pair, c Costs) ([]int, error) {
	return batch(ctx, pairs, c, Costs.DistanceBytes)
}

func batch(ctx context.Context, pairs []Pair, c Costs, dist func(Costs, string, string) int) ([]int, error) {
	if ctx == nil {
		return nil, ErrNilContext
	}
	if !c.Valid() {
		return nil, ErrNegativeCost
	}

	out := make([]int, len(pairs))
	sem := make(chan struct{}, runtime.GOMAXPROCS(0))
	var wg sync.WaitGroup
	for i, p := range pairs {
		if err := ctx.Err(); err != nil {
			wg.Wait()
			return nil, err
		}
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, p Pair) {
			defer wg.Done()
			defer func() { <-sem }()
			out[i] = dist(c, p.Source, p.Target)
		}(i, p)
	}
	wg.Wait()
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
