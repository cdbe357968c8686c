// Package gmp is the outbound adapter for the management backend's JSON
// gateway. It implements the fetch ports used by the loaders and translates
// gateway representations and HTTP errors into domain types.
package gmp

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"

	"github.com/jsamuelsen11/scanconsole/internal/domain"
	"github.com/jsamuelsen11/scanconsole/internal/platform/httpclient"
	"github.com/jsamuelsen11/scanconsole/internal/ports"
)

var (
	_ ports.EntityFetcher            = (*Client)(nil)
	_ ports.DashboardSettingsFetcher = (*Client)(nil)
)

// Client fetches entities and dashboard settings from the gateway:
//
//	GET /api/v1/{type}s?filter=...   collection
//	GET /api/v1/{type}s/{id}         single entity
//	GET /api/v1/dashboards/settings  dashboard settings and defaults
//
// Circuit breaking, retry, rate limiting and tracing come from the
// underlying [httpclient.Client], which also serves as the health checker
// for the backend.
type Client struct {
	req *requester
}

// NewClient creates a Client sending requests through client.
func NewClient(client *httpclient.Client, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Client{req: &requester{client: client, logger: logger}}
}

// GetAll fetches the collection of entityType. A nil or empty filter sends
// no filter parameter, so the backend applies its default.
func (c *Client) GetAll(ctx context.Context, entityType domain.EntityType, filter *domain.Filter) ([]domain.Entity, error) {
	if err := entityType.Validate(); err != nil {
		return nil, err
	}

	query := url.Values{}
	if filter != nil && !filter.IsEmpty() {
		query.Set("filter", filter.String())
	}

	var dto EntityListResponseDTO
	if err := c.req.getJSON(ctx, collectionPath(entityType), query, &dto); err != nil {
		return nil, err
	}
	return ToDomainEntityList(dto), nil
}

// Get fetches one entity of entityType. Returns domain.ErrNotFound when the
// backend reports 404.
func (c *Client) Get(ctx context.Context, entityType domain.EntityType, id string) (*domain.Entity, error) {
	if err := entityType.Validate(); err != nil {
		return nil, err
	}
	if id == "" {
		return nil, &domain.ValidationError{Fields: map[string]string{"id": domain.MsgRequired}}
	}

	var dto EntityDTO
	if err := c.req.getJSON(ctx, collectionPath(entityType)+"/"+url.PathEscape(id), nil, &dto); err != nil {
		return nil, err
	}
	entity := ToDomainEntity(&dto)
	return &entity, nil
}

// GetDashboardSettings fetches the saved dashboard layouts and the built-in
// defaults.
func (c *Client) GetDashboardSettings(ctx context.Context) (settings, defaults map[string]domain.DashboardSettings, err error) {
	var dto DashboardSettingsResponseDTO
	if err := c.req.getJSON(ctx, "/api/v1/dashboards/settings", nil, &dto); err != nil {
		return nil, nil, err
	}
	return toDomainDashboardMap(dto.Settings), toDomainDashboardMap(dto.Defaults), nil
}

func collectionPath(entityType domain.EntityType) string {
	return fmt.Sprintf("/api/v1/%ss", url.PathEscape(entityType.String()))
}
