package concurrent

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// ForEach calls fn for every item with at most limit calls in flight. A
// limit below one means no limit. The first error cancels the context handed
// to the remaining calls and is returned once all started calls finish. A
// cancelled parent stops scheduling and its error is returned.
func ForEach[T any](parent context.Context, items []T, limit int, fn func(ctx context.Context, i int, item T) error) error {
	group, ctx := errgroup.WithContext(parent)
	if limit > 0 {
		group.SetLimit(limit)
	}

	for i, item := range items {
		if ctx.Err() != nil {
			break
		}
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return fn(ctx, i, item)
		})
	}

	if err := group.Wait(); err != nil {
		return err
	}
	return parent.Err()
}

// Map is ForEach collecting one result per item, in item order.
func Map[T, R any](ctx context.Context, items []T, limit int, fn func(ctx context.Context, item T) (R, error)) ([]R, error) {
	out := make([]R, len(items))
	err := ForEach(ctx, items, limit, func(ctx context.Context, i int, item T) error {
		r, err := fn(ctx, item)
		if err != nil {
			return err
		}
		out[i] = r
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
