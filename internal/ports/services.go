package ports

import (
	"context"

	"github.com/jsamuelsen11/scanconsole/internal/domain"
)

// LoadOutcome reports what a load call did. It is informational: loaders
// never fail, failures are recorded in the store.
type LoadOutcome string

const (
	// LoadSkipped means a load for the same key was already in flight.
	LoadSkipped LoadOutcome = "skipped"
	// LoadSucceeded means the fetch succeeded and a Success action was dispatched.
	LoadSucceeded LoadOutcome = "loaded"
	// LoadFailed means the fetch failed and an Error action was dispatched.
	LoadFailed LoadOutcome = "failed"
)

// CollectionView is the read model for one (entity type, filter) collection.
type CollectionView struct {
	EntityType domain.EntityType
	Filter     *domain.Filter
	Loading    bool
	// Loaded is true once any load of this collection has succeeded.
	Loaded     bool
	Entities   []domain.Entity
	Err        error
}

// EntityView is the read model for one entity.
type EntityView struct {
	EntityType domain.EntityType
	ID         string
	Loading    bool
	Entity     *domain.Entity
	Err        error
}

// DashboardView is the read model for one dashboard's settings.
type DashboardView struct {
	ID       string
	Loading  bool
	Settings *domain.DashboardSettings
	Defaults domain.DashboardSettings
	Err      error
}

// LoaderService defines the service port for triggering loads and reading
// the resulting state. Implemented by the application layer; called by
// inbound adapters (handlers) and the refresher.
type LoaderService interface {
	// LoadCollection loads the collection of entityType for filter (nil means
	// the default collection) unless such a load is already in flight.
	LoadCollection(ctx context.Context, entityType domain.EntityType, filter *domain.Filter) LoadOutcome

	// LoadEntity loads a single entity unless it is already loading.
	LoadEntity(ctx context.Context, entityType domain.EntityType, id string) LoadOutcome

	// LoadDashboardSettings loads all dashboard settings unless already loading.
	LoadDashboardSettings(ctx context.Context) LoadOutcome

	// Collection returns the current state of a collection.
	Collection(entityType domain.EntityType, filter *domain.Filter) CollectionView

	// Entity returns the current state of a single entity.
	Entity(entityType domain.EntityType, id string) EntityView

	// DashboardSettings returns the current state of one dashboard's settings.
	DashboardSettings(id string) DashboardView
}
