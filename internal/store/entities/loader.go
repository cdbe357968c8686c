package entities

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen11/scanconsole/internal/domain"
	"github.com/jsamuelsen11/scanconsole/internal/ports"
	"github.com/jsamuelsen11/scanconsole/internal/store"
)

// ErrFetchPanicked is wrapped by the error recorded when a fetcher panics.
var ErrFetchPanicked = errors.New("entities: fetch panicked")

// Outcome reports what a Load call did.
type Outcome = ports.LoadOutcome

// Load outcomes.
const (
	OutcomeSkipped = ports.LoadSkipped
	OutcomeLoaded  = ports.LoadSucceeded
	OutcomeFailed  = ports.LoadFailed
)

// LoadingView answers whether a load is in flight for one entity type.
// Implementations must be pure and synchronous.
type LoadingView interface {
	IsLoadingCollection(filter *domain.Filter) bool
	IsLoadingEntity(id string) bool
}

// Selector derives the loading view of one entity type from root state S.
type Selector[S any] func(state S) LoadingView

// StateReader returns a synchronous snapshot of root state.
type StateReader[S any] interface {
	GetState() S
}

// Dispatcher hands an action to the store.
type Dispatcher interface {
	Dispatch(action store.Action)
}

// Env supplies what a single Load call needs.
type Env[S any] struct {
	Fetcher    ports.EntityFetcher
	State      StateReader[S]
	Dispatcher Dispatcher
}

// NewEnv returns an Env reading from and dispatching into s.
func NewEnv[S any](fetcher ports.EntityFetcher, s *store.Store[S]) Env[S] {
	return Env[S]{Fetcher: fetcher, State: s, Dispatcher: s}
}

// CollectionLoader loads collections of one entity type, skipping filters
// that already have a load in flight.
//
// The in-flight check reads state and then dispatches Request without holding
// any lock. Two callers that both read "not loading" before either dispatches
// will both fetch.
type CollectionLoader[S any] struct {
	entityType domain.EntityType
	actions    CollectionActions
	selector   Selector[S]
	logger     *slog.Logger
}

// NewCollectionLoader creates a collection loader that fetches entityType and
// reports progress through actions. The actions usually come from
// NewCollectionActions(entityType); a different type lets a second slice
// track the same backend collection. A nil logger discards log output.
func NewCollectionLoader[S any](
	entityType domain.EntityType, actions CollectionActions, selector Selector[S], logger *slog.Logger,
) *CollectionLoader[S] {
	return &CollectionLoader[S]{
		entityType: entityType,
		actions:    actions,
		selector:   selector,
		logger:     loggerOrDiscard(logger),
	}
}

// Actions returns the action creators used by the loader.
func (l *CollectionLoader[S]) Actions() CollectionActions {
	return l.actions
}

// Load fetches the collection for filter (nil means the default collection)
// and dispatches Request followed by exactly one of Success or Error. When a
// load for the same filter is already in flight nothing is dispatched and
// the fetcher is not called.
//
// Load never fails. Fetch errors, including context cancellation, are only
// visible through the dispatched Error action and the returned Outcome.
func (l *CollectionLoader[S]) Load(ctx context.Context, env Env[S], filter *domain.Filter) Outcome {
	if l.selector(env.State.GetState()).IsLoadingCollection(filter) {
		l.logger.DebugContext(ctx, "collection load already in flight",
			slog.String("entity_type", l.entityType.String()),
			slog.String("filter", filterAttr(filter)),
		)
		return OutcomeSkipped
	}

	env.Dispatcher.Dispatch(l.actions.Request(filter))

	data, err := fetchAll(ctx, env.Fetcher, l.entityType, filter)
	if err != nil {
		l.logger.WarnContext(ctx, "collection load failed",
			slog.String("operation", "LoadCollection"),
			slog.String("entity_type", l.entityType.String()),
			slog.String("filter", filterAttr(filter)),
			slog.Any("error", err),
		)
		env.Dispatcher.Dispatch(l.actions.Error(err, filter))
		return OutcomeFailed
	}

	env.Dispatcher.Dispatch(l.actions.Success(data, filter))
	return OutcomeLoaded
}

// EntityLoader loads single entities of one entity type, skipping ids that
// are already loading. The in-flight check has the same best-effort
// semantics as CollectionLoader.
type EntityLoader[S any] struct {
	entityType domain.EntityType
	actions    EntityActions
	selector   Selector[S]
	logger     *slog.Logger
}

// NewEntityLoader creates a single-entity loader that fetches entityType and
// reports progress through actions. A nil logger discards log output.
func NewEntityLoader[S any](
	entityType domain.EntityType, actions EntityActions, selector Selector[S], logger *slog.Logger,
) *EntityLoader[S] {
	return &EntityLoader[S]{
		entityType: entityType,
		actions:    actions,
		selector:   selector,
		logger:     loggerOrDiscard(logger),
	}
}

// Actions returns the action creators used by the loader.
func (l *EntityLoader[S]) Actions() EntityActions {
	return l.actions
}

// Load fetches entity id and dispatches Request followed by exactly one of
// Success or Error. It is a no-op when id is already loading.
func (l *EntityLoader[S]) Load(ctx context.Context, env Env[S], id string) Outcome {
	if l.selector(env.State.GetState()).IsLoadingEntity(id) {
		l.logger.DebugContext(ctx, "entity load already in flight",
			slog.String("entity_type", l.entityType.String()),
			slog.String("id", id),
		)
		return OutcomeSkipped
	}

	env.Dispatcher.Dispatch(l.actions.Request(id))

	data, err := fetchOne(ctx, env.Fetcher, l.entityType, id)
	if err != nil {
		l.logger.WarnContext(ctx, "entity load failed",
			slog.String("operation", "LoadEntity"),
			slog.String("entity_type", l.entityType.String()),
			slog.String("id", id),
			slog.Any("error", err),
		)
		env.Dispatcher.Dispatch(l.actions.Error(id, err))
		return OutcomeFailed
	}

	env.Dispatcher.Dispatch(l.actions.Success(id, data))
	return OutcomeLoaded
}

// fetchAll calls the fetcher, turning a panic into an error so the Request
// already dispatched still gets its terminal action.
func fetchAll(
	ctx context.Context, f ports.EntityFetcher, entityType domain.EntityType, filter *domain.Filter,
) (data []domain.Entity, err error) {
	defer recoverFetch(&err)
	return f.GetAll(ctx, entityType, filter)
}

func fetchOne(
	ctx context.Context, f ports.EntityFetcher, entityType domain.EntityType, id string,
) (data *domain.Entity, err error) {
	defer recoverFetch(&err)
	return f.Get(ctx, entityType, id)
}

func recoverFetch(err *error) {
	if r := recover(); r != nil {
		*err = fmt.Errorf("%w: %v", ErrFetchPanicked, r)
	}
}

func filterAttr(f *domain.Filter) string {
	if f == nil {
		return "<default>"
	}
	return f.String()
}

func loggerOrDiscard(l *slog.Logger) *slog.Logger {
	if l == nil {
		return slog.New(slog.DiscardHandler)
	}
	return l
}
