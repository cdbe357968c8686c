package handlers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/scanconsole/internal/adapters/http/dto"
	"github.com/jsamuelsen11/scanconsole/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/scanconsole/internal/domain"
	"github.com/jsamuelsen11/scanconsole/internal/ports"
	"github.com/jsamuelsen11/scanconsole/mocks"
)

const taskType = domain.EntityType("task")

var noFilter = (*domain.Filter)(nil)

func newEntityHandler(t *testing.T) (*handlers.EntityHandler, *mocks.MockLoaderService, *handlers.Background) {
	t.Helper()
	svc := mocks.NewMockLoaderService(t)
	bg := &handlers.Background{}
	return handlers.NewEntityHandler(svc, bg), svc, bg
}

func TestEntityHandler_GetCollection(t *testing.T) {
	t.Parallel()

	h, svc, _ := newEntityHandler(t)
	svc.EXPECT().Collection(taskType, noFilter).Return(ports.CollectionView{
		EntityType: taskType,
		Entities:   []domain.Entity{{ID: "t1", Name: "Full scan"}},
	})

	rec := httptest.NewRecorder()
	req := withChiParams(httptest.NewRequest(http.MethodGet, "/api/v1/entities/task", nil),
		map[string]string{"type": "task"})
	h.GetCollection(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.CollectionResponse](t, rec)
	assert.Equal(t, 1, resp.Count)
	assert.Equal(t, "Full scan", resp.Items[0].Name)
	assert.Nil(t, resp.Filter)
}

func TestEntityHandler_GetCollectionWithFilter(t *testing.T) {
	t.Parallel()

	h, svc, _ := newEntityHandler(t)
	want := domain.MustParseFilter("name~full rows=10")
	svc.EXPECT().Collection(taskType, &want).Return(ports.CollectionView{EntityType: taskType, Filter: &want})

	rec := httptest.NewRecorder()
	req := withChiParams(httptest.NewRequest(http.MethodGet, "/api/v1/entities/task?filter=name~full+rows%3D10", nil),
		map[string]string{"type": "task"})
	h.GetCollection(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.CollectionResponse](t, rec)
	require.NotNil(t, resp.Filter)
	assert.Equal(t, "name~full rows=10", *resp.Filter)
}

func TestEntityHandler_BadRequests(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		target  string
		params  map[string]string
		handler func(*handlers.EntityHandler) http.HandlerFunc
	}{
		{
			name:    "missing type",
			target:  "/api/v1/entities/",
			params:  map[string]string{"type": ""},
			handler: func(h *handlers.EntityHandler) http.HandlerFunc { return h.GetCollection },
		},
		{
			name:    "unterminated filter",
			target:  `/api/v1/entities/task?filter=name%3D%22full`,
			params:  map[string]string{"type": "task"},
			handler: func(h *handlers.EntityHandler) http.HandlerFunc { return h.LoadCollection },
		},
		{
			name:    "invalid async",
			target:  "/api/v1/entities/task/t1/load?async=later",
			params:  map[string]string{"type": "task", "id": "t1"},
			handler: func(h *handlers.EntityHandler) http.HandlerFunc { return h.LoadEntity },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h, _, _ := newEntityHandler(t)
			rec := httptest.NewRecorder()
			req := withChiParams(httptest.NewRequest(http.MethodPost, tt.target, nil), tt.params)
			tt.handler(h)(rec, req)

			requireStatus(t, rec, http.StatusBadRequest)
			assert.Equal(t, "application/problem+json", rec.Header().Get("Content-Type"))
		})
	}
}

func TestEntityHandler_LoadCollection(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		outcome     ports.LoadOutcome
		view        ports.CollectionView
		wantStatus  int
		wantOutcome string
	}{
		{
			name:        "loaded",
			outcome:     ports.LoadSucceeded,
			view:        ports.CollectionView{EntityType: taskType, Entities: []domain.Entity{{ID: "t1"}}},
			wantStatus:  http.StatusOK,
			wantOutcome: "loaded",
		},
		{
			name:        "skipped while in flight",
			outcome:     ports.LoadSkipped,
			view:        ports.CollectionView{EntityType: taskType, Loading: true},
			wantStatus:  http.StatusOK,
			wantOutcome: "skipped",
		},
		{
			name:       "failed with backend unavailable",
			outcome:    ports.LoadFailed,
			view:       ports.CollectionView{EntityType: taskType, Err: domain.ErrUnavailable},
			wantStatus: http.StatusBadGateway,
		},
		{
			name:       "failed without recorded error",
			outcome:    ports.LoadFailed,
			view:       ports.CollectionView{EntityType: taskType},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h, svc, _ := newEntityHandler(t)
			svc.EXPECT().LoadCollection(mock.Anything, taskType, noFilter).Return(tt.outcome).Once()
			svc.EXPECT().Collection(taskType, noFilter).Return(tt.view).Once()

			rec := httptest.NewRecorder()
			req := withChiParams(httptest.NewRequest(http.MethodPost, "/api/v1/entities/task/load", nil),
				map[string]string{"type": "task"})
			h.LoadCollection(rec, req)

			requireStatus(t, rec, tt.wantStatus)
			if tt.wantOutcome != "" {
				resp := decodeJSON[dto.LoadResponse[dto.CollectionResponse]](t, rec)
				assert.Equal(t, tt.wantOutcome, resp.Outcome)
				assert.Equal(t, tt.view.Loading, resp.State.Loading)
			} else {
				assert.Equal(t, "application/problem+json", rec.Header().Get("Content-Type"))
			}
		})
	}
}

func TestEntityHandler_LoadCollectionAsync(t *testing.T) {
	t.Parallel()

	h, svc, bg := newEntityHandler(t)

	// The request context is canceled before the background load starts; the
	// load must not observe it.
	reqCtx, cancel := context.WithCancel(context.Background())
	cancel()

	filter := domain.MustParseFilter("rows=5")
	svc.EXPECT().Collection(taskType, &filter).Return(ports.CollectionView{EntityType: taskType, Filter: &filter}).Once()
	svc.EXPECT().LoadCollection(mock.MatchedBy(func(ctx context.Context) bool {
		return ctx.Err() == nil
	}), taskType, &filter).Return(ports.LoadSucceeded).Once()

	rec := httptest.NewRecorder()
	req := withChiParams(
		httptest.NewRequestWithContext(reqCtx, http.MethodPost, "/api/v1/entities/task/load?async=true&filter=rows%3D5", nil),
		map[string]string{"type": "task"})
	h.LoadCollection(rec, req)
	bg.Wait()

	requireStatus(t, rec, http.StatusAccepted)
	resp := decodeJSON[dto.LoadResponse[dto.CollectionResponse]](t, rec)
	assert.Equal(t, dto.OutcomeAccepted, resp.Outcome)
}

func TestEntityHandler_LoadAsyncDuringShutdown(t *testing.T) {
	t.Parallel()

	h, _, bg := newEntityHandler(t)
	bg.Wait()

	rec := httptest.NewRecorder()
	req := withChiParams(httptest.NewRequest(http.MethodPost, "/api/v1/entities/task/load?async=true", nil),
		map[string]string{"type": "task"})
	h.LoadCollection(rec, req)
	requireStatus(t, rec, http.StatusServiceUnavailable)

	rec = httptest.NewRecorder()
	req = withChiParams(httptest.NewRequest(http.MethodPost, "/api/v1/entities/task/t1/load?async=true", nil),
		map[string]string{"type": "task", "id": "t1"})
	h.LoadEntity(rec, req)
	requireStatus(t, rec, http.StatusServiceUnavailable)
}

func TestEntityHandler_GetEntity(t *testing.T) {
	t.Parallel()

	h, svc, _ := newEntityHandler(t)
	svc.EXPECT().Entity(taskType, "t1").Return(ports.EntityView{
		EntityType: taskType,
		ID:         "t1",
		Entity:     &domain.Entity{ID: "t1", Name: "Full scan"},
	})

	rec := httptest.NewRecorder()
	req := withChiParams(httptest.NewRequest(http.MethodGet, "/api/v1/entities/task/t1", nil),
		map[string]string{"type": "task", "id": "t1"})
	h.GetEntity(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.EntityStateResponse](t, rec)
	require.NotNil(t, resp.Entity)
	assert.Equal(t, "Full scan", resp.Entity.Name)
}

func TestEntityHandler_GetEntityNeverLoaded(t *testing.T) {
	t.Parallel()

	h, svc, _ := newEntityHandler(t)
	svc.EXPECT().Entity(taskType, "t9").Return(ports.EntityView{EntityType: taskType, ID: "t9"})

	rec := httptest.NewRecorder()
	req := withChiParams(httptest.NewRequest(http.MethodGet, "/api/v1/entities/task/t9", nil),
		map[string]string{"type": "task", "id": "t9"})
	h.GetEntity(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.EntityStateResponse](t, rec)
	assert.Nil(t, resp.Entity)
	assert.Empty(t, resp.Error)
}

func TestEntityHandler_LoadEntity(t *testing.T) {
	t.Parallel()

	h, svc, _ := newEntityHandler(t)
	svc.EXPECT().LoadEntity(mock.Anything, taskType, "missing").Return(ports.LoadFailed).Once()
	svc.EXPECT().Entity(taskType, "missing").Return(ports.EntityView{
		EntityType: taskType,
		ID:         "missing",
		Err:        domain.ErrNotFound,
	}).Once()
	svc.EXPECT().LoadEntity(mock.Anything, taskType, "t1").Return(ports.LoadSucceeded).Once()
	svc.EXPECT().Entity(taskType, "t1").Return(ports.EntityView{
		EntityType: taskType,
		ID:         "t1",
		Entity:     &domain.Entity{ID: "t1"},
	}).Once()

	rec := httptest.NewRecorder()
	req := withChiParams(httptest.NewRequest(http.MethodPost, "/api/v1/entities/task/missing/load", nil),
		map[string]string{"type": "task", "id": "missing"})
	h.LoadEntity(rec, req)
	requireStatus(t, rec, http.StatusNotFound)

	rec = httptest.NewRecorder()
	req = withChiParams(httptest.NewRequest(http.MethodPost, "/api/v1/entities/task/t1/load", nil),
		map[string]string{"type": "task", "id": "t1"})
	h.LoadEntity(rec, req)
	requireStatus(t, rec, http.StatusOK)

	resp := decodeJSON[dto.LoadResponse[dto.EntityStateResponse]](t, rec)
	assert.Equal(t, "loaded", resp.Outcome)
	require.NotNil(t, resp.State.Entity)
	assert.Equal(t, "t1", resp.State.Entity.ID)
}

func TestEntityHandler_LoadEntityAsync(t *testing.T) {
	t.Parallel()

	h, svc, bg := newEntityHandler(t)
	svc.EXPECT().Entity(taskType, "t1").Return(ports.EntityView{EntityType: taskType, ID: "t1"}).Once()
	svc.EXPECT().LoadEntity(mock.Anything, taskType, "t1").Return(ports.LoadSucceeded).Once()

	rec := httptest.NewRecorder()
	req := withChiParams(httptest.NewRequest(http.MethodPost, "/api/v1/entities/task/t1/load?async=1", nil),
		map[string]string{"type": "task", "id": "t1"})
	h.LoadEntity(rec, req)
	bg.Wait()

	requireStatus(t, rec, http.StatusAccepted)
}
