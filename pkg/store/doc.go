// Package store implements a small reducer-driven feature store.
//
// A feature pairs a state shape, an action type and a Reducer. The Store
// reduces actions synchronously, notifies subscribers on state changes and
// feeds effect-produced actions back into itself. Parent/child composition
// is explicit: a Lens focuses child state, Pullback lifts a child reducer
// into the parent domain and Scope derives a child view of a parent store.
// No reflection or dynamic member forwarding is involved anywhere.
package store
