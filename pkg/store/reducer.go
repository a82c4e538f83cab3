package store

import "context"

// Lens reads and writes a child state embedded in a parent state through an
// explicit accessor/mutator pair, keeping state focusing free of reflection.
type Lens[S, C any] struct {
	Get func(S) C
	Set func(S, C) S
}

// Pullback lifts a child reducer into the parent domain: extract picks the
// child action out of a parent action (returning false when the action is
// not for this child), the lens focuses the child state, and embed lifts the
// child's effect actions back into parent actions.
func Pullback[S, A, C, CA any](child Reducer[C, CA], lens Lens[S, C],
	extract func(A) (CA, bool), embed func(CA) A) Reducer[S, A] {

	return func(ctx context.Context, state S, action A) (S, Effect[A]) {
		ca, ok := extract(action)
		if !ok {
			return state, nil
		}

		next, effect := child(ctx, lens.Get(state), ca)
		state = lens.Set(state, next)

		if effect == nil {
			return state, nil
		}
		return state, func(ctx context.Context) []A {
			childActions := effect(ctx)
			actions := make([]A, 0, len(childActions))
			for _, ca := range childActions {
				actions = append(actions, embed(ca))
			}
			return actions
		}
	}
}

// Combine runs the reducers in order, threading the state through and
// collecting every effect into one.
func Combine[S, A any](reducers ...Reducer[S, A]) Reducer[S, A] {
	return func(ctx context.Context, state S, action A) (S, Effect[A]) {
		var effects []Effect[A]

		for _, r := range reducers {
			var effect Effect[A]
			state, effect = r(ctx, state, action)
			if effect != nil {
				effects = append(effects, effect)
			}
		}

		switch len(effects) {
		case 0:
			return state, nil
		case 1:
			return state, effects[0]
		}
		return state, func(ctx context.Context) []A {
			var actions []A
			for _, e := range effects {
				actions = append(actions, e(ctx)...)
			}
			return actions
		}
	}
}

// Scoped is a child view of a parent store: child state through a lens,
// child actions embedded into parent actions. It shares the parent's state;
// it is not an independent store.
type Scoped[S, A, C, CA any] struct {
	parent *Store[S, A]
	lens   Lens[S, C]
	embed  func(CA) A
}

// Scope derives a child view from a parent store.
func Scope[S, A, C, CA any](parent *Store[S, A], lens Lens[S, C], embed func(CA) A) *Scoped[S, A, C, CA] {
	return &Scoped[S, A, C, CA]{parent: parent, lens: lens, embed: embed}
}

// State returns the child state read through the lens.
func (s *Scoped[S, A, C, CA]) State() C {
	return s.lens.Get(s.parent.State())
}

// Send embeds the child action and sends it to the parent store.
func (s *Scoped[S, A, C, CA]) Send(ctx context.Context, action CA) {
	s.parent.Send(ctx, s.embed(action))
}

// Subscribe registers fn to run with the child state after every parent
// state change.
func (s *Scoped[S, A, C, CA]) Subscribe(fn func(C)) (cancel func()) {
	return s.parent.Subscribe(func(state S) {
		fn(s.lens.Get(state))
	})
}
