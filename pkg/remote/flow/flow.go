package flow

import (
	"context"
	"sync"

	"github.com/kuglee/remotestate/pkg/remote"
)

// Fetch fans the input stream out to workers, each applying fetch to
// successful inputs and emitting the outcome as a RemoteResult. Failure
// inputs pass through with fetch never invoked; Loading and Initial inputs
// pass through unchanged too, since nothing has been fetched for them yet.
// When ctx is done workers stop draining and the output channel closes
// after the last in-flight fetch.
func Fetch[T, U any](ctx context.Context, in <-chan remote.RemoteResult[T, error],
	fetch func(ctx context.Context, t T) (U, error),
	workers int) <-chan remote.RemoteResult[U, error] {

	if workers < 1 {
		workers = 1
	}

	out := make(chan remote.RemoteResult[U, error])
	wg := &sync.WaitGroup{}

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go worker(ctx, in, out, fetch, wg)
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}

func worker[T, U any](ctx context.Context, in <-chan remote.RemoteResult[T, error],
	out chan<- remote.RemoteResult[U, error],
	fetch func(ctx context.Context, t T) (U, error), wg *sync.WaitGroup) {
	defer wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case r, ok := <-in:
			if !ok {
				return
			}

			res := resolve(ctx, r, fetch)

			select {
			case out <- res:
			case <-ctx.Done():
				return
			}
		}
	}
}

func resolve[T, U any](ctx context.Context, r remote.RemoteResult[T, error],
	fetch func(ctx context.Context, t T) (U, error)) remote.RemoteResult[U, error] {

	switch {
	case r.IsFailure():
		return remote.Failure[U, error](r.Err())
	case r.IsLoading():
		return remote.Loading[U, error]()
	case r.IsInitial():
		return remote.Initial[U, error]()
	}

	if err := ctx.Err(); err != nil {
		return remote.Failure[U, error](err)
	}
	return remote.Of(fetch(ctx, r.Value()))
}
