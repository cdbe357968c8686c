// Package store provides the explicit state container the loaders read from
// and dispatch into.
//
// A Store is created once at startup and passed by reference to whoever needs
// it. State is replaced, never mutated in place: Dispatch runs the pure
// reducer under a write lock and stores its result, so snapshots returned by
// GetState stay valid after later dispatches.
//
//	s := store.New(initial, reduce, logger)
//	s.Dispatch(action)
//	snapshot := s.GetState()
package store

import (
	"log/slog"
	"slices"
	"sync"
)

// Action is anything that can be dispatched. Name identifies the action in
// logs and metrics (e.g. "ENTITIES_LOADING_REQUEST").
type Action interface {
	Name() string
}

// Reducer computes the next state from the current one. It must be pure and
// must not modify the state it receives.
type Reducer[S any] func(state S, action Action) S

// Listener is notified after an action has been applied.
type Listener func(action Action)

// Store holds state S and applies dispatched actions through a Reducer.
// It is safe for concurrent use.
type Store[S any] struct {
	state   *Ref[S]
	reduce  Reducer[S]
	logger  *slog.Logger
	mu      sync.RWMutex
	nextID  int
	listens map[int]Listener
}

// New creates a Store with the given initial state and reducer. A nil logger
// discards log output.
func New[S any](initial S, reduce Reducer[S], logger *slog.Logger) *Store[S] {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Store[S]{
		state:   NewRef(initial),
		reduce:  reduce,
		logger:  logger,
		listens: make(map[int]Listener),
	}
}

// GetState returns a snapshot of the current state.
func (s *Store[S]) GetState() S {
	return s.state.Get()
}

// Dispatch applies action through the reducer and then notifies listeners
// in registration order. Listeners run on the dispatching goroutine, outside
// the state lock.
func (s *Store[S]) Dispatch(action Action) {
	s.state.Update(func(cur S) S {
		return s.reduce(cur, action)
	})

	s.logger.Debug("action dispatched", slog.String("action", action.Name()))

	for _, l := range s.listeners() {
		l(action)
	}
}

// Subscribe registers l and returns a function that removes it.
func (s *Store[S]) Subscribe(l Listener) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.listens[id] = l

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.listens, id)
	}
}

func (s *Store[S]) listeners() []Listener {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]int, 0, len(s.listens))
	for id := range s.listens {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	out := make([]Listener, 0, len(ids))
	for _, id := range ids {
		out = append(out, s.listens[id])
	}
	return out
}
