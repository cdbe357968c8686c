// Package app provides application services that orchestrate use cases by
// coordinating the store, the loaders and the outbound fetch ports.
package app

import (
	"log/slog"

	"github.com/jsamuelsen11/scanconsole/internal/domain"
	"github.com/jsamuelsen11/scanconsole/internal/store"
	"github.com/jsamuelsen11/scanconsole/internal/store/dashboard"
	"github.com/jsamuelsen11/scanconsole/internal/store/entities"
)

// State is the root state held by the store.
type State struct {
	Entities  entities.State
	Dashboard dashboard.State
}

// Reduce routes each action to the slice that owns it.
func Reduce(state State, action store.Action) State {
	switch action.(type) {
	case entities.Action:
		state.Entities = entities.Reduce(state.Entities, action)
	case dashboard.Action:
		state.Dashboard = dashboard.Reduce(state.Dashboard, action)
	}
	return state
}

// NewStore creates the root store with empty state.
func NewStore(logger *slog.Logger) *store.Store[State] {
	return store.New(State{}, Reduce, logger)
}

// EntitySelector returns the loading selector for entityType.
func EntitySelector(entityType domain.EntityType) entities.Selector[State] {
	return func(s State) entities.LoadingView {
		return entities.Select(s.Entities, entityType)
	}
}

// DashboardSelector is the dashboard settings selector.
func DashboardSelector(s State) dashboard.View {
	return dashboard.Select(s.Dashboard)
}
