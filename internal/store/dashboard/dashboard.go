// Package dashboard holds the loading state of persisted dashboard settings.
// All settings are fetched in one request, so the slice has a single
// in-flight flag instead of per-key tracking.
package dashboard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"

	"github.com/jsamuelsen11/scanconsole/internal/domain"
	"github.com/jsamuelsen11/scanconsole/internal/ports"
	"github.com/jsamuelsen11/scanconsole/internal/store"
)

// ErrFetchPanicked is wrapped by the error recorded when a fetcher panics.
var ErrFetchPanicked = errors.New("dashboard: fetch panicked")

// Kind discriminates the dashboard settings actions.
type Kind int

// Dashboard settings action kinds.
const (
	KindRequest Kind = iota + 1
	KindSuccess
	KindError
)

// String returns the action type name.
func (k Kind) String() string {
	switch k {
	case KindRequest:
		return "DASHBOARD_SETTINGS_LOADING_REQUEST"
	case KindSuccess:
		return "DASHBOARD_SETTINGS_LOADING_SUCCESS"
	case KindError:
		return "DASHBOARD_SETTINGS_LOADING_ERROR"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Action is a dashboard settings lifecycle action.
type Action struct {
	Kind     Kind
	Settings map[string]domain.DashboardSettings
	Defaults map[string]domain.DashboardSettings
	Err      error
}

var _ store.Action = Action{}

// Name implements store.Action.
func (a Action) Name() string { return a.Kind.String() }

// Request creates a Request action.
func Request() Action { return Action{Kind: KindRequest} }

// Success creates a Success action.
func Success(settings, defaults map[string]domain.DashboardSettings) Action {
	return Action{Kind: KindSuccess, Settings: settings, Defaults: defaults}
}

// Error creates an Error action.
func Error(err error) Action { return Action{Kind: KindError, Err: err} }

// State is the dashboard settings slice.
type State struct {
	ByID     map[string]domain.DashboardSettings
	Defaults map[string]domain.DashboardSettings
	Loading  bool
	Err      error
}

// Reduce applies a dashboard Action to state. Other actions return state
// unchanged.
func Reduce(state State, action store.Action) State {
	a, ok := action.(Action)
	if !ok {
		return state
	}

	switch a.Kind {
	case KindRequest:
		state.Loading = true
	case KindSuccess:
		state = State{
			ByID:     maps.Clone(a.Settings),
			Defaults: maps.Clone(a.Defaults),
		}
	case KindError:
		state.Loading = false
		state.Err = a.Err
	}
	return state
}

// View is a read-only view of the dashboard settings slice.
type View struct {
	state State
}

// Select returns the view over state.
func Select(state State) View {
	return View{state: state}
}

// ByID returns the stored settings of dashboard id.
func (v View) ByID(id string) (domain.DashboardSettings, bool) {
	s, ok := v.state.ByID[id]
	return s, ok
}

// DefaultsByID returns the default settings of dashboard id, or empty
// settings when none are known.
func (v View) DefaultsByID(id string) domain.DashboardSettings {
	return v.state.Defaults[id]
}

// Error returns the error of the last load.
func (v View) Error() error { return v.state.Err }

// IsLoading reports whether a load is in flight.
func (v View) IsLoading() bool { return v.state.Loading }

// Selector derives the dashboard view from root state S.
type Selector[S any] func(state S) View

// StateStore reads root state S and accepts dispatched actions.
// *store.Store[S] satisfies it.
type StateStore[S any] interface {
	GetState() S
	Dispatch(action store.Action)
}

// Loader loads all dashboard settings. Like the entity loaders it skips when
// a load is already in flight, and that check is not atomic.
type Loader[S any] struct {
	selector Selector[S]
	fetcher  ports.DashboardSettingsFetcher
	logger   *slog.Logger
}

// NewLoader creates a Loader. A nil logger discards log output.
func NewLoader[S any](selector Selector[S], fetcher ports.DashboardSettingsFetcher, logger *slog.Logger) *Loader[S] {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Loader[S]{selector: selector, fetcher: fetcher, logger: logger}
}

// Load fetches all settings through s. It dispatches Request followed by
// exactly one of Success or Error, or nothing when a load is in flight.
func (l *Loader[S]) Load(ctx context.Context, s StateStore[S]) ports.LoadOutcome {
	if l.selector(s.GetState()).IsLoading() {
		return ports.LoadSkipped
	}

	s.Dispatch(Request())

	settings, defaults, err := l.fetch(ctx)
	if err != nil {
		l.logger.WarnContext(ctx, "dashboard settings load failed",
			slog.String("operation", "LoadDashboardSettings"),
			slog.Any("error", err),
		)
		s.Dispatch(Error(err))
		return ports.LoadFailed
	}

	s.Dispatch(Success(settings, defaults))
	return ports.LoadSucceeded
}

func (l *Loader[S]) fetch(ctx context.Context) (settings, defaults map[string]domain.DashboardSettings, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrFetchPanicked, r)
		}
	}()
	return l.fetcher.GetDashboardSettings(ctx)
}
