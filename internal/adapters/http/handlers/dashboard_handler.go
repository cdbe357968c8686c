package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/scanconsole/internal/adapters/http/dto"
	"github.com/jsamuelsen11/scanconsole/internal/domain"
	"github.com/jsamuelsen11/scanconsole/internal/ports"
)

// DashboardHandler serves dashboard settings.
type DashboardHandler struct {
	svc ports.LoaderService
	bg  *Background
}

// NewDashboardHandler creates a DashboardHandler.
func NewDashboardHandler(svc ports.LoaderService, bg *Background) *DashboardHandler {
	return &DashboardHandler{svc: svc, bg: bg}
}

// GetSettings handles GET /api/v1/dashboards/{id}/settings.
func (h *DashboardHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	view := h.svc.DashboardSettings(chi.URLParam(r, idParam))
	writeJSON(w, http.StatusOK, dto.ToDashboardSettingsResponse(view))
}

// LoadSettings handles POST /api/v1/dashboards/settings/load. All dashboards
// are loaded in one request, so the state reported is the shared one.
func (h *DashboardHandler) LoadSettings(w http.ResponseWriter, r *http.Request) {
	q, err := dto.ParseLoadQuery(r.URL.Query())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if q.Async {
		started := h.bg.Go(r.Context(), func(ctx context.Context) {
			h.svc.LoadDashboardSettings(ctx)
		})
		if !started {
			dto.WriteErrorResponse(w, r, domain.ErrShuttingDown)
			return
		}
		writeAccepted(w, dto.ToDashboardStatusResponse(h.svc.DashboardSettings("")))
		return
	}

	outcome := h.svc.LoadDashboardSettings(r.Context())
	view := h.svc.DashboardSettings("")
	writeLoad(w, r, outcome, dto.ToDashboardStatusResponse(view), view.Err)
}
