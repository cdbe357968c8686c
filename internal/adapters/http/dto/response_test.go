package dto_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/jsamuelsen11/scanconsole/internal/adapters/http/dto"
	"github.com/jsamuelsen11/scanconsole/internal/domain"
	"github.com/jsamuelsen11/scanconsole/internal/ports"
)

var testTime = time.Date(2026, 2, 12, 15, 4, 5, 0, time.UTC)

func TestToEntityResponse(t *testing.T) {
	t.Parallel()

	got := dto.ToEntityResponse(&domain.Entity{
		ID:         "t1",
		Name:       "Full scan",
		Owner:      "admin",
		Writable:   true,
		CreatedAt:  testTime,
		Attributes: map[string]string{"status": "Done"},
	})

	if got.ID != "t1" || got.Name != "Full scan" || got.Owner != "admin" {
		t.Errorf("identity fields = %+v", got)
	}
	if !got.Writable || got.InUse {
		t.Errorf("Writable, InUse = %v, %v, want true, false", got.Writable, got.InUse)
	}
	if got.CreatedAt != "2026-02-12T15:04:05Z" {
		t.Errorf("CreatedAt = %q", got.CreatedAt)
	}
	if got.ModifiedAt != "" {
		t.Errorf("ModifiedAt = %q, want empty for zero time", got.ModifiedAt)
	}
	if got.Attributes["status"] != "Done" {
		t.Errorf("Attributes = %v", got.Attributes)
	}
}

func TestToCollectionResponse(t *testing.T) {
	t.Parallel()

	filter := domain.MustParseFilter("rows=10 first=21 sort-reverse=severity")

	tests := []struct {
		name   string
		view   ports.CollectionView
		verify func(t *testing.T, got dto.CollectionResponse)
	}{
		{
			name: "never loaded default collection",
			view: ports.CollectionView{EntityType: "task"},
			verify: func(t *testing.T, got dto.CollectionResponse) {
				t.Helper()
				if got.Items != nil || got.Count != 0 {
					t.Errorf("Items, Count = %v, %d, want nil, 0", got.Items, got.Count)
				}
				if got.Filter != nil || got.Page != nil {
					t.Errorf("Filter, Page = %v, %v, want nil for the default collection", got.Filter, got.Page)
				}
			},
		},
		{
			name: "loaded filtered collection",
			view: ports.CollectionView{
				EntityType: "task",
				Filter:     &filter,
				Loaded:     true,
				Entities:   []domain.Entity{{ID: "t1"}, {ID: "t2"}},
			},
			verify: func(t *testing.T, got dto.CollectionResponse) {
				t.Helper()
				if !got.Loaded {
					t.Error("Loaded = false, want true")
				}
				if got.Count != 2 || got.Items[1].ID != "t2" {
					t.Errorf("Items = %+v, Count = %d", got.Items, got.Count)
				}
				if got.Filter == nil || *got.Filter != "rows=10 first=21 sort-reverse=severity" {
					t.Errorf("Filter = %v, want the canonical filter", got.Filter)
				}
				want := dto.PageResponse{First: 21, Rows: 10, Sort: "severity", SortReverse: true}
				if got.Page == nil || *got.Page != want {
					t.Errorf("Page = %+v, want %+v", got.Page, want)
				}
			},
		},
		{
			name: "loaded empty collection",
			view: ports.CollectionView{EntityType: "task", Entities: []domain.Entity{}},
			verify: func(t *testing.T, got dto.CollectionResponse) {
				t.Helper()
				if got.Items == nil {
					t.Error("Items = nil, want empty slice for a loaded collection")
				}
			},
		},
		{
			name: "failed load",
			view: ports.CollectionView{EntityType: "task", Err: domain.ErrUnavailable},
			verify: func(t *testing.T, got dto.CollectionResponse) {
				t.Helper()
				if got.Error != "unavailable" {
					t.Errorf("Error = %q, want %q", got.Error, "unavailable")
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := dto.ToCollectionResponse(tt.view)
			if got.EntityType != "task" {
				t.Errorf("EntityType = %q, want task", got.EntityType)
			}
			tt.verify(t, got)
		})
	}
}

func TestCollectionResponse_JSON(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(dto.ToCollectionResponse(ports.CollectionView{EntityType: "report", Loading: true}))
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	want := `{"entity_type":"report","loading":true,"loaded":false,"items":null,"count":0}`
	if string(data) != want {
		t.Errorf("JSON = %s, want %s", data, want)
	}
}

func TestToEntityStateResponse(t *testing.T) {
	t.Parallel()

	missing := dto.ToEntityStateResponse(ports.EntityView{EntityType: "task", ID: "x", Err: domain.ErrNotFound})
	if missing.Entity != nil {
		t.Errorf("Entity = %+v, want nil", missing.Entity)
	}
	if missing.Error != "not found" {
		t.Errorf("Error = %q, want %q", missing.Error, "not found")
	}

	found := dto.ToEntityStateResponse(ports.EntityView{
		EntityType: "task",
		ID:         "t1",
		Entity:     &domain.Entity{ID: "t1", Name: "Full scan"},
	})
	if found.Entity == nil || found.Entity.Name != "Full scan" {
		t.Errorf("Entity = %+v, want Full scan", found.Entity)
	}
}

func TestToDashboardSettingsResponse(t *testing.T) {
	t.Parallel()

	got := dto.ToDashboardSettingsResponse(ports.DashboardView{
		ID:       "tasks",
		Settings: &domain.DashboardSettings{ID: "tasks", Items: [][]string{{"a", "b"}}},
	})

	if got.Settings == nil || len(got.Settings.Items[0]) != 2 {
		t.Errorf("Settings = %+v", got.Settings)
	}
	if got.Defaults.Items == nil {
		t.Error("Defaults.Items = nil, want empty grid")
	}

	data, err := json.Marshal(dto.ToDashboardSettingsResponse(ports.DashboardView{ID: "reports"}))
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	want := `{"id":"reports","loading":false,"settings":null,"defaults":{"id":"","items":[]}}`
	if string(data) != want {
		t.Errorf("JSON = %s, want %s", data, want)
	}
}

func TestLoadResponse_JSON(t *testing.T) {
	t.Parallel()

	resp := dto.LoadResponse[dto.EntityStateResponse]{
		Outcome: string(ports.LoadSkipped),
		State:   dto.EntityStateResponse{EntityType: "task", ID: "t1", Loading: true},
	}

	data, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	want := `{"outcome":"skipped","state":{"entity_type":"task","id":"t1","loading":true,"entity":null}}`
	if string(data) != want {
		t.Errorf("JSON = %s, want %s", data, want)
	}
}

func TestCollectionResponse_EmptyFilterPage(t *testing.T) {
	t.Parallel()

	empty := domain.MustParseFilter("")
	data, err := json.Marshal(dto.ToCollectionResponse(ports.CollectionView{EntityType: "task", Filter: &empty}))
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	want := `{"entity_type":"task","filter":"","page":{"first":1,"rows":0},"loading":false,"loaded":false,"items":null,"count":0}`
	if string(data) != want {
		t.Errorf("JSON = %s, want %s", data, want)
	}
}
