package chain

import (
	"context"

	"github.com/kuglee/remotestate/pkg/remote"
)

// Chain wraps a remote.RemoteResult with context to enable fluent chaining
// of error-typed fetch pipelines.
type Chain[T any] struct {
	ctx context.Context
	res remote.RemoteResult[T, error]
}

// Start creates a new chain from an existing result.
func Start[T any](ctx context.Context, r remote.RemoteResult[T, error]) Chain[T] {
	return Chain[T]{ctx: ctx, res: r}
}

// FromValue creates a new chain from a successful value.
func FromValue[T any](ctx context.Context, v T) Chain[T] {
	return Start(ctx, remote.Success[T, error](v))
}

// Loading creates a new chain in the loading state.
func Loading[T any](ctx context.Context) Chain[T] {
	return Start(ctx, remote.Loading[T, error]())
}

// Result returns the underlying remote.RemoteResult.
func (c Chain[T]) Result() remote.RemoteResult[T, error] {
	return c.res
}

// Then composes functions that already return remote.RemoteResult; it runs
// only when the current result is successful.
func (c Chain[T]) Then(onSuccess func(ctx context.Context, t T) remote.RemoteResult[T, error]) Chain[T] {
	if !c.res.IsSuccess() {
		return c
	}
	return Chain[T]{ctx: c.ctx, res: onSuccess(c.ctx, c.res.Value())}
}

// ThenTry composes functions that return (T, error), like repo calls. A
// non-nil error, including context cancellation, becomes a failure.
func (c Chain[T]) ThenTry(try func(ctx context.Context, t T) (T, error)) Chain[T] {
	if !c.res.IsSuccess() {
		return c
	}
	v, err := try(c.ctx, c.res.Value())
	if err != nil {
		return Chain[T]{ctx: c.ctx, res: remote.Failure[T, error](err)}
	}
	return Chain[T]{ctx: c.ctx, res: remote.Success[T, error](v)}
}

// Map transforms the successful value to a new value of the same type.
func (c Chain[T]) Map(onSuccess func(ctx context.Context, t T) T) Chain[T] {
	if !c.res.IsSuccess() {
		return c
	}
	return Chain[T]{ctx: c.ctx, res: remote.Success[T, error](onSuccess(c.ctx, c.res.Value()))}
}

// Ensure triggers side effects for success/failure without changing the
// result; loading and initial trigger nothing.
func (c Chain[T]) Ensure(onSuccess func(context.Context, T), onFailure func(context.Context, error)) Chain[T] {
	if c.res.IsSuccess() {
		if onSuccess != nil {
			onSuccess(c.ctx, c.res.Value())
		}
		return c
	}
	if c.res.IsFailure() && onFailure != nil {
		onFailure(c.ctx, c.res.Err())
	}
	return c
}

// Finally collapses the chain to a final value with one handler per variant.
func (c Chain[T]) Finally(
	onSuccess func(context.Context, T) T,
	onFailure func(context.Context, error) T,
	onLoading func(context.Context) T,
	onInitial func(context.Context) T,
) T {
	return remote.Finally(c.res,
		func(v T) T { return onSuccess(c.ctx, v) },
		func(err error) T { return onFailure(c.ctx, err) },
		func() T { return onLoading(c.ctx) },
		func() T { return onInitial(c.ctx) },
	)
}

// Then composes a chain with a function moving to a new value type.
func Then[T, U any](c Chain[T], onSuccess func(ctx context.Context, t T) remote.RemoteResult[U, error]) Chain[U] {
	return Chain[U]{
		ctx: c.ctx,
		res: remote.FlatMap(c.res, func(v T) remote.RemoteResult[U, error] {
			return onSuccess(c.ctx, v)
		}),
	}
}

// ThenTry composes a chain with a (U, error) function moving to a new value
// type.
func ThenTry[T, U any](c Chain[T], try func(ctx context.Context, t T) (U, error)) Chain[U] {
	return Then(c, func(ctx context.Context, t T) remote.RemoteResult[U, error] {
		return remote.Of(try(ctx, t))
	})
}

// Map composes a chain with a pure transformation moving to a new value
// type.
func Map[T, U any](c Chain[T], onSuccess func(ctx context.Context, t T) U) Chain[U] {
	return Chain[U]{
		ctx: c.ctx,
		res: remote.Map(c.res, func(v T) U { return onSuccess(c.ctx, v) }),
	}
}
