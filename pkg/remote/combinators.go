package remote

// Map applies f to the success payload and leaves every other variant
// unchanged; f is never invoked for Initial, Loading or Failure.
func Map[T, U, E any](r RemoteResult[T, E], f func(T) U) RemoteResult[U, E] {
	switch r.state {
	case StateSuccess:
		return Success[U, E](f(r.value))
	case StateFailure:
		return Failure[U, E](r.err)
	case StateLoading:
		return Loading[U, E]()
	}
	return Initial[U, E]()
}

// MapErr applies f to the failure payload and leaves every other variant
// unchanged.
func MapErr[T, E, F any](r RemoteResult[T, E], f func(E) F) RemoteResult[T, F] {
	switch r.state {
	case StateSuccess:
		return Success[T, F](r.value)
	case StateFailure:
		return Failure[T, F](f(r.err))
	case StateLoading:
		return Loading[T, F]()
	}
	return Initial[T, F]()
}

// FlatMap replaces the whole result with the result of f on Success,
// enabling chaining without nested containers. Initial, Loading and Failure
// pass through without invoking f.
func FlatMap[T, U, E any](r RemoteResult[T, E], f func(T) RemoteResult[U, E]) RemoteResult[U, E] {
	switch r.state {
	case StateSuccess:
		return f(r.value)
	case StateFailure:
		return Failure[U, E](r.err)
	case StateLoading:
		return Loading[U, E]()
	}
	return Initial[U, E]()
}

// FlatMapErr replaces the whole result with the result of f on Failure.
func FlatMapErr[T, E, F any](r RemoteResult[T, E], f func(E) RemoteResult[T, F]) RemoteResult[T, F] {
	switch r.state {
	case StateSuccess:
		return Success[T, F](r.value)
	case StateFailure:
		return f(r.err)
	case StateLoading:
		return Loading[T, F]()
	}
	return Initial[T, F]()
}

// Finally reduces the result to a concrete value with one handler per
// variant.
func Finally[T, E, Out any](r RemoteResult[T, E],
	onSuccess func(T) Out,
	onFailure func(E) Out,
	onLoading func() Out,
	onInitial func() Out) Out {

	switch r.state {
	case StateSuccess:
		return onSuccess(r.value)
	case StateFailure:
		return onFailure(r.err)
	case StateLoading:
		return onLoading()
	}
	return onInitial()
}

// Tee triggers a side effect on Success without changing the result.
func Tee[T, E any](r RemoteResult[T, E], onSuccess func(T)) RemoteResult[T, E] {
	if r.state == StateSuccess && onSuccess != nil {
		onSuccess(r.value)
	}
	return r
}

// DoubleTee triggers a side effect on Success or Failure without changing
// the result; Initial and Loading trigger nothing.
func DoubleTee[T, E any](r RemoteResult[T, E], onSuccess func(T), onFailure func(E)) RemoteResult[T, E] {
	switch r.state {
	case StateSuccess:
		if onSuccess != nil {
			onSuccess(r.value)
		}
	case StateFailure:
		if onFailure != nil {
			onFailure(r.err)
		}
	}
	return r
}
