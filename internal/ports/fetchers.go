package ports

import (
	"context"

	"github.com/jsamuelsen11/scanconsole/internal/domain"
)

// EntityFetcher is the fetch capability the loaders call. Implemented by the
// management backend client and by caching decorators around it.
//
// Errors are opaque to the loaders: whatever an implementation returns is
// forwarded verbatim into the Error lifecycle action.
type EntityFetcher interface {
	// GetAll returns the entities of entityType matching filter, in backend
	// order. A nil filter requests the default (unfiltered) collection.
	GetAll(ctx context.Context, entityType domain.EntityType, filter *domain.Filter) ([]domain.Entity, error)

	// Get returns a single entity by ID.
	// Returns domain.ErrNotFound if the entity does not exist.
	Get(ctx context.Context, entityType domain.EntityType, id string) (*domain.Entity, error)
}

// DashboardSettingsFetcher loads persisted dashboard layouts.
type DashboardSettingsFetcher interface {
	// GetDashboardSettings returns the user's settings and the built-in
	// defaults, both keyed by dashboard ID.
	GetDashboardSettings(ctx context.Context) (settings, defaults map[string]domain.DashboardSettings, err error)
}
