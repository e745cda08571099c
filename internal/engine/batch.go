package engine

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/xtding233/cricket-sim/internal/cricket"
)

// SimulateBatch plays independent fixtures in parallel, one goroutine per
// match at most `workers` at a time. Fixture i always uses stream i of the
// seed, so results do not depend on scheduling. The context is checked
// before each match starts; a running match is never interrupted.
func SimulateBatch(ctx context.Context, rules cricket.Rules, fixtures []Fixture, seed uint64, workers int, opts ...Option) ([]cricket.MatchResult, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	results := make([]cricket.MatchResult, len(fixtures))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, f := range fixtures {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			sim := NewSimulator(rules, NewStreamRNG(seed, uint64(i)), opts...)
			res, err := sim.SimulateMatch(f)
			if err != nil {
				return fmt.Errorf("fixture %d (match %d): %w", i, f.MatchNumber, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
