// Package fanout runs a function across a slice of items with bounded
// concurrency, preserving input order in the results. The refresher uses it
// to reload several entity types at once without flooding the backend.
package fanout

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Result holds the outcome of processing a single item.
// Either Value is populated (on success) or Err is non-nil (on failure).
type Result[R any] struct {
	Value R
	Err   error
}

// Run executes fn for each item using at most maxWorkers concurrent
// goroutines and returns the results in input order. A failing item does
// not stop the others.
//
// Items that have not started when ctx is canceled record ctx.Err() without
// calling fn. Items already running complete normally; fn is responsible for
// honoring ctx.
//
// Run blocks until every started item completes. maxWorkers below 1 is
// treated as 1.
func Run[T, R any](ctx context.Context, maxWorkers int, items []T, fn func(context.Context, T) (R, error)) []Result[R] {
	results := make([]Result[R], len(items))
	if len(items) == 0 {
		return results
	}

	var g errgroup.Group
	g.SetLimit(max(maxWorkers, 1))

	for i, item := range items {
		if err := ctx.Err(); err != nil {
			results[i] = Result[R]{Err: err}
			continue
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i] = Result[R]{Err: err}
				return nil
			}
			val, err := fn(ctx, item)
			results[i] = Result[R]{Value: val, Err: err}
			return nil
		})
	}

	// Errors are collected per item, so Wait never reports one.
	_ = g.Wait()
	return results
}

// Errors returns the non-nil errors of results in order.
func Errors[R any](results []Result[R]) []error {
	var errs []error
	for _, r := range results {
		if r.Err != nil {
			errs = append(errs, r.Err)
		}
	}
	return errs
}
