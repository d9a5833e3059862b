package parallel

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Map applies fn to every element of items using at most workers
// goroutines and returns the results in input order, regardless of
// completion order. The first error cancels the remaining work and is
// returned; no partial results are surfaced. workers <= 1 runs fully
// sequentially.
func Map[T, R any](ctx context.Context, workers int, items []T, fn func(ctx context.Context, i int, item T) (R, error)) ([]R, error) {
	results := make([]R, len(items))

	if workers <= 1 {
		for i, item := range items {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			r, err := fn(ctx, i, item)
			if err != nil {
				return nil, err
			}
			results[i] = r
		}
		return results, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, item := range items {
		i, item := i, item
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			r, err := fn(gctx, i, item)
			if err != nil {
				return err
			}
			// Each goroutine writes only its own index
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
