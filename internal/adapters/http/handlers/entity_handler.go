package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/scanconsole/internal/adapters/http/dto"
	"github.com/jsamuelsen11/scanconsole/internal/domain"
	"github.com/jsamuelsen11/scanconsole/internal/ports"
)

// EntityHandler serves the entity collection and single-entity read models
// and triggers their loaders.
type EntityHandler struct {
	svc ports.LoaderService
	bg  *Background
}

// NewEntityHandler creates an EntityHandler. Background loads are tracked by bg.
func NewEntityHandler(svc ports.LoaderService, bg *Background) *EntityHandler {
	return &EntityHandler{svc: svc, bg: bg}
}

// GetCollection handles GET /api/v1/entities/{type}.
func (h *EntityHandler) GetCollection(w http.ResponseWriter, r *http.Request) {
	entityType, err := parseEntityType(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	q, err := dto.ParseLoadQuery(r.URL.Query())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToCollectionResponse(h.svc.Collection(entityType, q.Filter)))
}

// LoadCollection handles POST /api/v1/entities/{type}/load.
func (h *EntityHandler) LoadCollection(w http.ResponseWriter, r *http.Request) {
	entityType, err := parseEntityType(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	q, err := dto.ParseLoadQuery(r.URL.Query())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if q.Async {
		started := h.bg.Go(r.Context(), func(ctx context.Context) {
			h.svc.LoadCollection(ctx, entityType, q.Filter)
		})
		if !started {
			dto.WriteErrorResponse(w, r, domain.ErrShuttingDown)
			return
		}
		writeAccepted(w, dto.ToCollectionResponse(h.svc.Collection(entityType, q.Filter)))
		return
	}

	outcome := h.svc.LoadCollection(r.Context(), entityType, q.Filter)
	view := h.svc.Collection(entityType, q.Filter)
	writeLoad(w, r, outcome, dto.ToCollectionResponse(view), view.Err)
}

// GetEntity handles GET /api/v1/entities/{type}/{id}.
func (h *EntityHandler) GetEntity(w http.ResponseWriter, r *http.Request) {
	entityType, err := parseEntityType(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	view := h.svc.Entity(entityType, chi.URLParam(r, idParam))
	writeJSON(w, http.StatusOK, dto.ToEntityStateResponse(view))
}

// LoadEntity handles POST /api/v1/entities/{type}/{id}/load.
func (h *EntityHandler) LoadEntity(w http.ResponseWriter, r *http.Request) {
	entityType, err := parseEntityType(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	q, err := dto.ParseLoadQuery(r.URL.Query())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	id := chi.URLParam(r, idParam)

	if q.Async {
		started := h.bg.Go(r.Context(), func(ctx context.Context) {
			h.svc.LoadEntity(ctx, entityType, id)
		})
		if !started {
			dto.WriteErrorResponse(w, r, domain.ErrShuttingDown)
			return
		}
		writeAccepted(w, dto.ToEntityStateResponse(h.svc.Entity(entityType, id)))
		return
	}

	outcome := h.svc.LoadEntity(r.Context(), entityType, id)
	view := h.svc.Entity(entityType, id)
	writeLoad(w, r, outcome, dto.ToEntityStateResponse(view), view.Err)
}
