// Package dto provides HTTP response data transfer objects, query parsing and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter.
package dto

import (
	"time"

	"github.com/jsamuelsen11/scanconsole/internal/domain"
	"github.com/jsamuelsen11/scanconsole/internal/ports"
)

// EntityResponse is one entity in HTTP responses.
type EntityResponse struct {
	ID         string            `json:"id"`
	Name       string            `json:"name"`
	Comment    string            `json:"comment,omitempty"`
	Owner      string            `json:"owner,omitempty"`
	Writable   bool              `json:"writable"`
	InUse      bool              `json:"in_use"`
	CreatedAt  string            `json:"created_at,omitempty"`
	ModifiedAt string            `json:"modified_at,omitempty"`
	Attributes map[string]string `json:"attributes,omitempty"`
}

// CollectionResponse is the state of one (entity type, filter) collection.
// Items is null until the collection has loaded once.
type CollectionResponse struct {
	EntityType string           `json:"entity_type"`
	Filter     *string          `json:"filter,omitempty"`
	Page       *PageResponse    `json:"page,omitempty"`
	Loading    bool             `json:"loading"`
	Loaded     bool             `json:"loaded"`
	Items      []EntityResponse `json:"items"`
	Count      int              `json:"count"`
	Error      string           `json:"error,omitempty"`
}

// PageResponse is the pagination and sort window requested by a filter.
// Rows is 0 when the backend's default page size applies.
type PageResponse struct {
	First       int    `json:"first"`
	Rows        int    `json:"rows"`
	Sort        string `json:"sort,omitempty"`
	SortReverse bool   `json:"sort_reverse,omitempty"`
}

// EntityStateResponse is the state of one entity.
type EntityStateResponse struct {
	EntityType string          `json:"entity_type"`
	ID         string          `json:"id"`
	Loading    bool            `json:"loading"`
	Entity     *EntityResponse `json:"entity"`
	Error      string          `json:"error,omitempty"`
}

// DashboardResponse is one dashboard layout.
type DashboardResponse struct {
	ID    string     `json:"id"`
	Name  string     `json:"name,omitempty"`
	Items [][]string `json:"items"`
}

// DashboardSettingsResponse is the state of one dashboard's settings.
// Defaults is always present; it is empty when no defaults are known.
type DashboardSettingsResponse struct {
	ID       string             `json:"id"`
	Loading  bool               `json:"loading"`
	Settings *DashboardResponse `json:"settings"`
	Defaults DashboardResponse  `json:"defaults"`
	Error    string             `json:"error,omitempty"`
}

// LoadResponse reports the outcome of a load together with the resulting
// state. Outcome is "accepted" for background loads.
type LoadResponse[T any] struct {
	Outcome string `json:"outcome"`
	State   T      `json:"state"`
}

// OutcomeAccepted is reported for loads started in the background.
const OutcomeAccepted = "accepted"

// ToEntityResponse converts a domain entity. Zero timestamps are omitted.
func ToEntityResponse(e *domain.Entity) EntityResponse {
	return EntityResponse{
		ID:         e.ID,
		Name:       e.Name,
		Comment:    e.Comment,
		Owner:      e.Owner,
		Writable:   e.Writable,
		InUse:      e.InUse,
		CreatedAt:  formatTime(e.CreatedAt),
		ModifiedAt: formatTime(e.ModifiedAt),
		Attributes: e.Attributes,
	}
}

// ToCollectionResponse converts a collection read model.
func ToCollectionResponse(v ports.CollectionView) CollectionResponse {
	resp := CollectionResponse{
		EntityType: v.EntityType.String(),
		Loading:    v.Loading,
		Loaded:     v.Loaded,
		Error:      errString(v.Err),
	}
	if v.Filter != nil {
		f := v.Filter.String()
		resp.Filter = &f
		resp.Page = toPageResponse(*v.Filter)
	}
	if v.Entities != nil {
		resp.Items = make([]EntityResponse, len(v.Entities))
		for i := range v.Entities {
			resp.Items[i] = ToEntityResponse(&v.Entities[i])
		}
		resp.Count = len(resp.Items)
	}
	return resp
}

// ToEntityStateResponse converts a single-entity read model.
func ToEntityStateResponse(v ports.EntityView) EntityStateResponse {
	resp := EntityStateResponse{
		EntityType: v.EntityType.String(),
		ID:         v.ID,
		Loading:    v.Loading,
		Error:      errString(v.Err),
	}
	if v.Entity != nil {
		e := ToEntityResponse(v.Entity)
		resp.Entity = &e
	}
	return resp
}

// ToDashboardSettingsResponse converts a dashboard read model.
func ToDashboardSettingsResponse(v ports.DashboardView) DashboardSettingsResponse {
	resp := DashboardSettingsResponse{
		ID:       v.ID,
		Loading:  v.Loading,
		Defaults: toDashboardResponse(v.Defaults),
		Error:    errString(v.Err),
	}
	if v.Settings != nil {
		s := toDashboardResponse(*v.Settings)
		resp.Settings = &s
	}
	return resp
}

func toPageResponse(f domain.Filter) *PageResponse {
	sort, reverse := f.SortField()
	return &PageResponse{
		First:       f.First(),
		Rows:        f.Rows(),
		Sort:        sort,
		SortReverse: reverse,
	}
}

func toDashboardResponse(s domain.DashboardSettings) DashboardResponse {
	items := s.Items
	if items == nil {
		items = [][]string{}
	}
	return DashboardResponse{ID: s.ID, Name: s.Name, Items: items}
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

// DashboardStatusResponse is the state shared by all dashboards: settings are
// loaded in one request.
type DashboardStatusResponse struct {
	Loading bool   `json:"loading"`
	Error   string `json:"error,omitempty"`
}

// ToDashboardStatusResponse converts the shared part of a dashboard read model.
func ToDashboardStatusResponse(v ports.DashboardView) DashboardStatusResponse {
	return DashboardStatusResponse{Loading: v.Loading, Error: errString(v.Err)}
}
