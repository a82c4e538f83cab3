package remote

import "fmt"

// State identifies the active variant of a RemoteResult.
type State uint8

const (
	// StateInitial means no fetch has been attempted yet.
	StateInitial State = iota
	// StateLoading means a fetch is in flight.
	StateLoading
	// StateSuccess means the fetch completed with a value.
	StateSuccess
	// StateFailure means the fetch completed with an error value.
	StateFailure
)

func (s State) String() string {
	switch s {
	case StateInitial:
		return "initial"
	case StateLoading:
		return "loading"
	case StateSuccess:
		return "success"
	case StateFailure:
		return "failure"
	}
	return "unknown"
}

// RemoteResult models the lifecycle of a remotely fetched value as a closed
// four-variant union: Initial, Loading, Success(T) or Failure(E). Exactly one
// variant is active at a time; the inactive payload field holds its zero
// value, so two results with the same variant and payload compare equal with
// == whenever T and E are comparable.
//
// E is conventionally an error or a domain error value, but is not
// constrained so payloads like string error codes work too.
//
// RemoteResult is a passive holder: transitions between variants are the
// embedding application's responsibility.
type RemoteResult[T, E any] struct {
	state State
	value T
	err   E
}

// Initial returns the variant meaning no fetch has been attempted.
func Initial[T, E any]() RemoteResult[T, E] {
	return RemoteResult[T, E]{state: StateInitial}
}

// Loading returns the variant meaning a fetch is in flight.
func Loading[T, E any]() RemoteResult[T, E] {
	return RemoteResult[T, E]{state: StateLoading}
}

// Success returns the variant holding a fetched value.
func Success[T, E any](v T) RemoteResult[T, E] {
	return RemoteResult[T, E]{state: StateSuccess, value: v}
}

// Failure returns the variant holding an error payload.
func Failure[T, E any](e E) RemoteResult[T, E] {
	return RemoteResult[T, E]{state: StateFailure, err: e}
}

// Of converts a plain (value, error) pair. A nil error yields Success,
// otherwise Failure; Of never produces Loading or Initial.
func Of[T any](v T, err error) RemoteResult[T, error] {
	if err != nil {
		return Failure[T, error](err)
	}
	return Success[T, error](v)
}

// Try runs f and converts its outcome like Of.
func Try[T any](f func() (T, error)) RemoteResult[T, error] {
	return Of(f())
}

// State returns the active variant tag.
func (r RemoteResult[T, E]) State() State {
	return r.state
}

func (r RemoteResult[T, E]) IsInitial() bool {
	return r.state == StateInitial
}

func (r RemoteResult[T, E]) IsLoading() bool {
	return r.state == StateLoading
}

func (r RemoteResult[T, E]) IsSuccess() bool {
	return r.state == StateSuccess
}

func (r RemoteResult[T, E]) IsFailure() bool {
	return r.state == StateFailure
}

// Value returns the success payload, or the zero value for any other variant.
func (r RemoteResult[T, E]) Value() T {
	return r.value
}

// Err returns the failure payload, or the zero value for any other variant.
func (r RemoteResult[T, E]) Err() E {
	return r.err
}

// Get returns the payload and true iff the variant is Success. This is the
// bridge into APIs that only understand optional presence.
func (r RemoteResult[T, E]) Get() (T, bool) {
	return r.value, r.state == StateSuccess
}

// Map applies f to the success payload, keeping the value type. Use the
// package-level Map to change the type.
func (r RemoteResult[T, E]) Map(f func(T) T) RemoteResult[T, E] {
	return Map(r, f)
}

// MapErr applies f to the failure payload, keeping the error type. Use the
// package-level MapErr to change the type.
func (r RemoteResult[T, E]) MapErr(f func(E) E) RemoteResult[T, E] {
	return MapErr(r, f)
}

func (r RemoteResult[T, E]) String() string {
	switch r.state {
	case StateSuccess:
		return "success(" + stringify(r.value) + ")"
	case StateFailure:
		return "failure(" + stringify(r.err) + ")"
	}
	return r.state.String()
}

func stringify(v any) string {
	return fmt.Sprintf("%v", v)
}
