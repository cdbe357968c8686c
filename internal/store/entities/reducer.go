package entities

import (
	"maps"

	"github.com/jsamuelsen11/scanconsole/internal/domain"
	"github.com/jsamuelsen11/scanconsole/internal/store"
)

// State is the normalized entity state of all entity types.
type State map[domain.EntityType]TypeState

// TypeState is the state of a single entity type.
type TypeState struct {
	// ByID holds every entity loaded so far, from collections and single loads.
	ByID map[string]domain.Entity
	// Default is the collection loaded without a filter.
	Default CollectionState
	// Filtered holds collections keyed by canonical filter string.
	Filtered map[string]CollectionState
	// Loading marks single entities with a load in flight.
	Loading map[string]bool
	// Errors holds the last single-entity load error by id.
	Errors map[string]error
}

// CollectionState is the state of one collection.
type CollectionState struct {
	IDs     []string
	Loaded  bool
	Loading bool
	Err     error
}

// Reduce applies an entities Action to state and returns the new state.
// Other actions return state unchanged. The input is never modified.
func Reduce(state State, action store.Action) State {
	a, ok := action.(Action)
	if !ok {
		return state
	}

	ts := state[a.EntityType]

	switch a.Kind {
	case KindRequestCollection:
		ts = ts.withCollection(a.Filter, func(c CollectionState) CollectionState {
			c.Loading = true
			return c
		})
	case KindSuccessCollection:
		ids := make([]string, 0, len(a.Entities))
		byID := cloneMap(ts.ByID)
		for _, e := range a.Entities {
			ids = append(ids, e.ID)
			byID[e.ID] = e
		}
		ts.ByID = byID
		ts = ts.withCollection(a.Filter, func(CollectionState) CollectionState {
			return CollectionState{IDs: ids, Loaded: true}
		})
	case KindErrorCollection:
		ts = ts.withCollection(a.Filter, func(c CollectionState) CollectionState {
			c.Loading = false
			c.Err = a.Err
			return c
		})
	case KindRequestEntity:
		ts.Loading = cloneMap(ts.Loading)
		ts.Loading[a.ID] = true
	case KindSuccessEntity:
		ts.Loading = withoutKey(ts.Loading, a.ID)
		ts.Errors = withoutKey(ts.Errors, a.ID)
		if a.Entity != nil {
			ts.ByID = cloneMap(ts.ByID)
			ts.ByID[a.ID] = *a.Entity
		}
	case KindErrorEntity:
		ts.Loading = withoutKey(ts.Loading, a.ID)
		ts.Errors = cloneMap(ts.Errors)
		ts.Errors[a.ID] = a.Err
	default:
		return state
	}

	next := make(State, len(state)+1)
	maps.Copy(next, state)
	next[a.EntityType] = ts
	return next
}

// withCollection returns a copy of ts with the collection for filter
// replaced by fn's result.
func (ts TypeState) withCollection(filter *domain.Filter, fn func(CollectionState) CollectionState) TypeState {
	if filter == nil {
		ts.Default = fn(ts.Default)
		return ts
	}
	key := filter.String()
	filtered := cloneMap(ts.Filtered)
	filtered[key] = fn(filtered[key])
	ts.Filtered = filtered
	return ts
}

// collection returns the collection state for filter.
func (ts TypeState) collection(filter *domain.Filter) CollectionState {
	if filter == nil {
		return ts.Default
	}
	return ts.Filtered[filter.String()]
}

func cloneMap[K comparable, V any](m map[K]V) map[K]V {
	out := make(map[K]V, len(m)+1)
	maps.Copy(out, m)
	return out
}

func withoutKey[V any](m map[string]V, key string) map[string]V {
	if _, ok := m[key]; !ok {
		return m
	}
	out := cloneMap(m)
	delete(out, key)
	return out
}
