// Package chain provides a minimal fluent Chain[T] for synchronous
// composition of remote.RemoteResult values with an error payload.
//
// It keeps the API surface very small:
// - Start/FromValue/Loading: create a Chain
// - Then/ThenTry: compose result-returning or error-returning functions
// - Map: transform the successful value
// - Ensure: trigger side effects without changing the result
// - Finally: reduce to a concrete value via per-variant handlers
//
// Methods keep the value type; the package-level Then/ThenTry/Map move a
// chain to a new value type.
package chain
