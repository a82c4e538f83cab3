package flow

import (
	"context"

	"github.com/kuglee/remotestate/pkg/remote"
)

// ToChan feeds the values into a channel, stopping early when ctx is done.
func ToChan[T any](ctx context.Context, values []T) <-chan T {
	in := make(chan T)

	go func() {
		defer close(in)

		for _, v := range values {
			select {
			case in <- v:
			case <-ctx.Done():
				return
			}
		}
	}()

	return in
}

// Results feeds the values into a channel as successful RemoteResults.
func Results[T any](ctx context.Context, values []T) <-chan remote.RemoteResult[T, error] {
	in := make(chan remote.RemoteResult[T, error])

	go func() {
		defer close(in)

		for _, v := range values {
			select {
			case in <- remote.Success[T, error](v):
			case <-ctx.Done():
				return
			}
		}
	}()

	return in
}

// Collect drains the output channel into a slice, stopping early when ctx is
// done.
func Collect[T any](ctx context.Context, out <-chan remote.RemoteResult[T, error]) []remote.RemoteResult[T, error] {
	res := make([]remote.RemoteResult[T, error], 0)

	for {
		select {
		case r, ok := <-out:
			if !ok {
				return res
			}
			res = append(res, r)
		case <-ctx.Done():
			return res
		}
	}
}
