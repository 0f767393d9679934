// Package fanout runs one call per input concurrently and joins the results.
package fanout

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Map calls fn for every item with at most limit calls in flight and returns
// the results in input order. The first error cancels the context passed to
// the remaining calls and is the error Map returns. A limit below one means
// no limit.
func Map[T, R any](ctx context.Context, items []T, limit int, fn func(ctx context.Context, item T) (R, error)) ([]R, error) {
	results := make([]R, len(items))
	if len(items) == 0 {
		return results, nil
	}

	g, gCtx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}

	for i, item := range items {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			r, err := fn(gCtx, item)
			if err != nil {
				return err
			}
			results[i] = r
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
