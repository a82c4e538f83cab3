package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
	"go.uber.org/zap"

	"github.com/kuglee/remotestate/pkg/remote"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type counterState struct {
	Count int
}

type counterAction int

const (
	increment counterAction = iota
	decrement
	incrementTwiceViaEffect
)

func counterReducer(ctx context.Context, s counterState, a counterAction) (counterState, Effect[counterAction]) {
	switch a {
	case increment:
		s.Count++
	case decrement:
		s.Count--
	case incrementTwiceViaEffect:
		return s, func(ctx context.Context) []counterAction {
			return []counterAction{increment, increment}
		}
	}
	return s, nil
}

func TestSendReducesSynchronously(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	s := New(counterState{}, counterReducer, WithLogger(zap.NewNop()))
	s.Send(ctx, increment)
	s.Send(ctx, increment)
	s.Send(ctx, decrement)

	assert.Equal(t, 1, s.State().Count)
}

func TestEffectsFeedActionsBack(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	s := New(counterState{}, counterReducer)
	s.Send(ctx, incrementTwiceViaEffect)
	s.Wait()

	assert.Equal(t, 2, s.State().Count)
}

func TestEffectStopsOnCancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := New(counterState{}, counterReducer)
	s.Send(ctx, incrementTwiceViaEffect)
	s.Wait()

	assert.Equal(t, 0, s.State().Count)
}

func TestSubscribersSeeChangesOnly(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	s := New(counterState{}, counterReducer)

	var seen []int
	cancel := s.Subscribe(func(st counterState) {
		seen = append(seen, st.Count)
	})

	s.Send(ctx, increment)
	s.Send(ctx, decrement)

	// a no-op action leaves the state untouched and must not notify
	noop := counterAction(99)
	s.Send(ctx, noop)

	cancel()
	s.Send(ctx, increment)

	assert.Equal(t, []int{1, 0}, seen)
}

func TestStoreIDisStable(t *testing.T) {
	t.Parallel()

	s := New(counterState{}, counterReducer)
	assert.Equal(t, s.ID(), s.ID())
	assert.NotEqual(t, s.ID(), New(counterState{}, counterReducer).ID())
}

type appState struct {
	Counter counterState
	Profile remote.RemoteResult[string, error]
}

type appAction struct {
	Counter *counterAction
}

func counterLens() Lens[appState, counterState] {
	return Lens[appState, counterState]{
		Get: func(s appState) counterState { return s.Counter },
		Set: func(s appState, c counterState) appState {
			s.Counter = c
			return s
		},
	}
}

func embedCounter(a counterAction) appAction {
	return appAction{Counter: &a}
}

func extractCounter(a appAction) (counterAction, bool) {
	if a.Counter == nil {
		return 0, false
	}
	return *a.Counter, true
}

func TestPullbackRoutesChildActions(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	reducer := Pullback(counterReducer, counterLens(), extractCounter, embedCounter)
	s := New(appState{Profile: remote.Initial[string, error]()}, reducer)

	s.Send(ctx, embedCounter(increment))
	s.Send(ctx, appAction{}) // not a counter action, state untouched

	assert.Equal(t, 1, s.State().Counter.Count)
	assert.True(t, s.State().Profile.IsInitial())
}

func TestPullbackLiftsEffects(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	reducer := Pullback(counterReducer, counterLens(), extractCounter, embedCounter)
	s := New(appState{}, reducer)

	s.Send(ctx, embedCounter(incrementTwiceViaEffect))
	s.Wait()

	assert.Equal(t, 2, s.State().Counter.Count)
}

func TestScopeReadsAndSendsThroughParent(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	reducer := Pullback(counterReducer, counterLens(), extractCounter, embedCounter)
	parent := New(appState{}, reducer)
	child := Scope(parent, counterLens(), embedCounter)

	var seen []int
	cancel := child.Subscribe(func(c counterState) {
		seen = append(seen, c.Count)
	})
	defer cancel()

	child.Send(ctx, increment)
	child.Send(ctx, increment)

	assert.Equal(t, 2, child.State().Count)
	assert.Equal(t, 2, parent.State().Counter.Count)
	assert.Equal(t, []int{1, 2}, seen)
}

func TestCombineThreadsStateAndEffects(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	logged := 0
	audit := func(ctx context.Context, s counterState, a counterAction) (counterState, Effect[counterAction]) {
		logged++
		return s, nil
	}

	s := New(counterState{}, Combine(audit, counterReducer))
	s.Send(ctx, increment)
	s.Send(ctx, incrementTwiceViaEffect)
	s.Wait()

	assert.Equal(t, 3, s.State().Count)
	assert.Equal(t, 4, logged) // 2 sent directly, 2 fed back by the effect
}
