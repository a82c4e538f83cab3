// Package flow runs bulk fetches over channels, streaming
// remote.RemoteResult values through a fixed pool of workers.
//
// Highlights:
// - ToChan/Results: feed a slice into a cancellable channel
// - Fetch: fan out to N workers applying a (value, error) fetch function
// - Collect: drain an output channel into a slice
//
// Failure inputs pass through untouched so an upstream stage's failures
// survive downstream stages, mirroring the skip-on-failure behavior of the
// synchronous combinators.
package flow
