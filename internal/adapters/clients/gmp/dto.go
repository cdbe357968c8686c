package gmp

import (
	"maps"
	"time"

	"github.com/jsamuelsen11/scanconsole/internal/domain"
)

// EntityDTO is one resource as returned by the gateway. Booleans are encoded
// as 0/1, the way the management protocol reports them.
type EntityDTO struct {
	ID               string            `json:"id"`
	Name             string            `json:"name"`
	Comment          string            `json:"comment"`
	Owner            OwnerDTO          `json:"owner"`
	Writable         int               `json:"writable"`
	InUse            int               `json:"in_use"`
	CreationTime     string            `json:"creation_time"`
	ModificationTime string            `json:"modification_time"`
	Attributes       map[string]string `json:"attributes,omitempty"`
}

// OwnerDTO identifies the user owning a resource.
type OwnerDTO struct {
	Name string `json:"name"`
}

// EntityListResponseDTO is the body of a collection request.
type EntityListResponseDTO struct {
	Items  []EntityDTO `json:"items"`
	Counts CountsDTO   `json:"counts"`
}

// CountsDTO carries paging information of a collection response.
type CountsDTO struct {
	First    int `json:"first"`
	Rows     int `json:"rows"`
	Filtered int `json:"filtered"`
	All      int `json:"all"`
}

// DashboardSettingsResponseDTO is the body of the dashboard settings request.
type DashboardSettingsResponseDTO struct {
	Settings map[string]DashboardDTO `json:"settings"`
	Defaults map[string]DashboardDTO `json:"defaults"`
}

// DashboardDTO is one persisted dashboard layout.
type DashboardDTO struct {
	ID   string            `json:"id"`
	Name string            `json:"name"`
	Rows []DashboardRowDTO `json:"rows"`
}

// DashboardRowDTO is one row of a dashboard grid.
type DashboardRowDTO struct {
	Items []DashboardItemDTO `json:"items"`
}

// DashboardItemDTO is one display in a dashboard row.
type DashboardItemDTO struct {
	Name string `json:"name"`
}

// ToDomainEntity converts a gateway EntityDTO. Unparseable timestamps are
// left zero.
func ToDomainEntity(dto *EntityDTO) domain.Entity {
	created, _ := time.Parse(time.RFC3339, dto.CreationTime)
	modified, _ := time.Parse(time.RFC3339, dto.ModificationTime)

	return domain.Entity{
		ID:         dto.ID,
		Name:       dto.Name,
		Comment:    dto.Comment,
		Owner:      dto.Owner.Name,
		Writable:   dto.Writable == 1,
		InUse:      dto.InUse == 1,
		CreatedAt:  created,
		ModifiedAt: modified,
		Attributes: maps.Clone(dto.Attributes),
	}
}

// ToDomainEntityList converts the items of a collection response, keeping
// backend order.
func ToDomainEntityList(dto EntityListResponseDTO) []domain.Entity {
	out := make([]domain.Entity, len(dto.Items))
	for i := range dto.Items {
		out[i] = ToDomainEntity(&dto.Items[i])
	}
	return out
}

// ToDomainDashboardSettings converts a DashboardDTO. A missing ID is taken
// from the map key the dashboard was stored under.
func ToDomainDashboardSettings(key string, dto DashboardDTO) domain.DashboardSettings {
	id := dto.ID
	if id == "" {
		id = key
	}

	items := make([][]string, 0, len(dto.Rows))
	for _, row := range dto.Rows {
		names := make([]string, 0, len(row.Items))
		for _, item := range row.Items {
			names = append(names, item.Name)
		}
		items = append(items, names)
	}

	return domain.DashboardSettings{ID: id, Name: dto.Name, Items: items}
}

func toDomainDashboardMap(in map[string]DashboardDTO) map[string]domain.DashboardSettings {
	out := make(map[string]domain.DashboardSettings, len(in))
	for key, dto := range in {
		out[key] = ToDomainDashboardSettings(key, dto)
	}
	return out
}
