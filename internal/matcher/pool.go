package matcher

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// runBounded runs fn(0..n-1) across at most workers goroutines at once,
// joining every already-started task before returning the first error:
// errgroup cancels the shared context on the first failure, so in-flight
// tasks see ctx.Done() but are still awaited rather than abandoned.
func runBounded(ctx context.Context, workers, n int, fn func(ctx context.Context, i int) error) error {
	if n == 0 {
		return nil
	}
	if workers < 1 {
		workers = 1
	}
	g, gctx := errgroup.WithContext(ctx)
	sem := make(chan struct{}, workers)
	for i := 0; i < n; i++ {
		i := i
		select {
		case sem <- struct{}{}:
		case <-gctx.Done():
			return g.Wait()
		}
		g.Go(func() error {
			defer func() { <-sem }()
			return fn(gctx, i)
		})
	}
	return g.Wait()
}
