// Package remote provides RemoteResult[T, E], a closed four-variant union
// modeling the lifecycle of a remotely fetched value: Initial, Loading,
// Success or Failure.
//
// Highlights:
// - Initial/Loading/Success/Failure: construct a RemoteResult
// - Of/Try: convert a plain (value, error) pair, never yielding Loading/Initial
// - Map/MapErr/FlatMap/FlatMapErr: pure transforms on one variant, identity on the rest
// - Get: bridge to optional-presence APIs
// - Finally: reduce to a concrete value with a handler per variant
// - Tee/DoubleTee: side-effect helpers that leave the value untouched
// - JSON and YAML codecs using a single-key container per variant
//
// RemoteResult is a plain value type with no internal synchronization; copies
// are independent and safe to share across goroutines when the payloads are.
package remote
