// Package async provides a small Future type for running work in a goroutine
// and awaiting its result.
//
//	future := async.Async(ctx, path, func(ctx context.Context, path string) (string, error) {
//		return engine.Render(ctx, path, data)
//	})
//
//	html, err := future.AwaitContext(ctx)
//
// AwaitContext returns as soon as either the work finishes or the context is
// done. An abandoned computation still runs to completion in its goroutine;
// its result is simply discarded, so work started through Async must not
// publish partial state.
//
// AwaitWithTimeout returns ErrTimeout when the deadline passes first.
// WaitAll collects results from several futures in order.
package async
