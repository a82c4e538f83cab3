package store

import (
	"context"
	"reflect"
	"sync"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// exportAll lets change detection see unexported state fields, such as the
// variant tag inside remote.RemoteResult.
var exportAll = cmp.Exporter(func(reflect.Type) bool { return true })

// Effect produces follow-up actions after a reducer ran; a nil Effect means
// none. Effects run on their own goroutine and their actions are fed back
// through Send.
type Effect[A any] func(ctx context.Context) []A

// Reducer maps the current state and an action to a new state plus an
// optional effect. Reducers must be pure: no I/O, no mutation of the input
// state.
type Reducer[S, A any] func(ctx context.Context, state S, action A) (S, Effect[A])

// Store drives a feature: it owns the current state and runs a reducer for
// every action sent to it.
type Store[S, A any] struct {
	id     uuid.UUID
	logger *zap.Logger

	mu      sync.Mutex
	state   S
	reduce  Reducer[S, A]
	subs    map[int]func(S)
	nextSub int

	effects sync.WaitGroup
}

// Option configures a Store.
type Option func(*config)

type config struct {
	logger *zap.Logger
}

// WithLogger enables structured logging of every dispatched action.
func WithLogger(l *zap.Logger) Option {
	return func(c *config) {
		c.logger = l
	}
}

// New creates a store holding initial and reducing with r.
func New[S, A any](initial S, r Reducer[S, A], opts ...Option) *Store[S, A] {
	cfg := &config{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(cfg)
	}

	return &Store[S, A]{
		id:     uuid.New(),
		logger: cfg.logger,
		state:  initial,
		reduce: r,
		subs:   make(map[int]func(S)),
	}
}

// ID returns the store's identity.
func (s *Store[S, A]) ID() uuid.UUID {
	return s.id
}

// State returns the current state.
func (s *Store[S, A]) State() S {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Send reduces the action into the state synchronously, notifies subscribers
// when the state changed, then runs the returned effect on a goroutine whose
// actions are sent back into the store.
func (s *Store[S, A]) Send(ctx context.Context, action A) {
	s.logger.Debug("store: action",
		zap.String("store_id", s.id.String()),
		zap.Any("action", action))

	s.mu.Lock()
	before := s.state
	next, effect := s.reduce(ctx, s.state, action)
	s.state = next

	var notify []func(S)
	if !cmp.Equal(before, next, exportAll) {
		notify = make([]func(S), 0, len(s.subs))
		for _, fn := range s.subs {
			notify = append(notify, fn)
		}
	}
	s.mu.Unlock()

	for _, fn := range notify {
		fn(next)
	}

	if effect == nil {
		return
	}

	s.effects.Add(1)
	go func() {
		defer s.effects.Done()
		for _, a := range effect(ctx) {
			if ctx.Err() != nil {
				return
			}
			s.Send(ctx, a)
		}
	}()
}

// Subscribe registers fn to run after every state change. The returned
// cancel removes the subscription.
func (s *Store[S, A]) Subscribe(fn func(S)) (cancel func()) {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

// Wait blocks until every in-flight effect, including effects spawned by
// effect-fed actions, has finished.
func (s *Store[S, A]) Wait() {
	s.effects.Wait()
}
