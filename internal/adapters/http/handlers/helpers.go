package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/scanconsole/internal/adapters/http/dto"
	"github.com/jsamuelsen11/scanconsole/internal/domain"
	"github.com/jsamuelsen11/scanconsole/internal/ports"
)

// Path parameter names.
const (
	typeParam = "type"
	idParam   = "id"
)

// errLoadFailed is reported when a load failed but the read model holds no
// error, which only happens when a newer load replaced it.
var errLoadFailed = errors.New("load failed")

// Background runs loads that outlive the request that started them. The
// server waits on it during shutdown. Once Wait has been called no new work
// is accepted.
type Background struct {
	mu     sync.Mutex
	closed bool
	wg     sync.WaitGroup
}

// Go runs fn on a new goroutine with a context detached from ctx's
// cancellation but carrying its values. It reports false without running fn
// once Wait has been called.
func (b *Background) Go(ctx context.Context, fn func(context.Context)) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return false
	}

	detached := context.WithoutCancel(ctx)
	b.wg.Go(func() { fn(detached) })
	return true
}

// Wait stops accepting work and blocks until every background load has
// returned.
func (b *Background) Wait() {
	b.mu.Lock()
	b.closed = true
	b.mu.Unlock()

	b.wg.Wait()
}

// parseEntityType extracts and validates the {type} path parameter.
func parseEntityType(r *http.Request) (domain.EntityType, error) {
	return dto.ParseEntityType(chi.URLParam(r, typeParam))
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", slog.Any("error", err))
	}
}

// writeLoad writes the result of a synchronous load. Loaded and skipped loads
// answer 200 with the resulting state; a failed load answers with the problem
// details of the recorded error.
func writeLoad[T any](w http.ResponseWriter, r *http.Request, outcome ports.LoadOutcome, state T, loadErr error) {
	if outcome == ports.LoadFailed {
		if loadErr == nil {
			loadErr = errLoadFailed
		}
		dto.WriteErrorResponse(w, r, loadErr)
		return
	}
	writeJSON(w, http.StatusOK, dto.LoadResponse[T]{Outcome: string(outcome), State: state})
}

// writeAccepted answers a background load with 202 and the state at the time
// the load was started.
func writeAccepted[T any](w http.ResponseWriter, state T) {
	writeJSON(w, http.StatusAccepted, dto.LoadResponse[T]{Outcome: dto.OutcomeAccepted, State: state})
}
