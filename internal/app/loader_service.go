package app

import (
	"context"
	"log/slog"
	"sync"

	"go.opentelemetry.io/otel/metric"

	"github.com/jsamuelsen11/scanconsole/internal/domain"
	"github.com/jsamuelsen11/scanconsole/internal/platform/telemetry"
	"github.com/jsamuelsen11/scanconsole/internal/ports"
	"github.com/jsamuelsen11/scanconsole/internal/store"
	"github.com/jsamuelsen11/scanconsole/internal/store/dashboard"
	"github.com/jsamuelsen11/scanconsole/internal/store/entities"
)

// Compile-time check that LoaderService implements ports.LoaderService.
var _ ports.LoaderService = (*LoaderService)(nil)

// dashboardEntityType labels dashboard settings actions in metrics.
const dashboardEntityType = "dashboard_settings"

// LoaderService implements ports.LoaderService on top of the root store.
// Loaders are created on first use per entity type. They hold no per-call
// state, so the same loader serves concurrent callers.
type LoaderService struct {
	store      *store.Store[State]
	fetcher    ports.EntityFetcher
	dashboards *dashboard.Loader[State]
	metrics    *telemetry.Metrics
	logger     *slog.Logger

	mu          sync.Mutex
	collections map[domain.EntityType]*entities.CollectionLoader[State]
	singles     map[domain.EntityType]*entities.EntityLoader[State]
}

// NewLoaderService creates a LoaderService. A nil metrics disables metric
// recording; a nil logger discards log output.
func NewLoaderService(
	st *store.Store[State],
	fetcher ports.EntityFetcher,
	dashboards ports.DashboardSettingsFetcher,
	metrics *telemetry.Metrics,
	logger *slog.Logger,
) *LoaderService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	s := &LoaderService{
		store:       st,
		fetcher:     fetcher,
		dashboards:  dashboard.NewLoader(DashboardSelector, dashboards, logger),
		metrics:     metrics,
		logger:      logger,
		collections: make(map[domain.EntityType]*entities.CollectionLoader[State]),
		singles:     make(map[domain.EntityType]*entities.EntityLoader[State]),
	}

	if metrics != nil {
		st.Subscribe(s.recordAction)
	}

	return s
}

// LoadCollection runs the collection loader for entityType and filter.
func (s *LoaderService) LoadCollection(ctx context.Context, entityType domain.EntityType, filter *domain.Filter) ports.LoadOutcome {
	s.logger.InfoContext(ctx, "loading collection",
		slog.String("entity_type", entityType.String()),
		slog.String("filter", filterString(filter)),
	)

	outcome := s.collectionLoader(entityType).Load(ctx, entities.NewEnv(s.fetcher, s.store), filter)
	s.recordOutcome(ctx, entityType.String(), outcome)
	return outcome
}

// LoadEntity runs the single-entity loader for entityType and id.
func (s *LoaderService) LoadEntity(ctx context.Context, entityType domain.EntityType, id string) ports.LoadOutcome {
	s.logger.InfoContext(ctx, "loading entity",
		slog.String("entity_type", entityType.String()),
		slog.String("id", id),
	)

	outcome := s.entityLoader(entityType).Load(ctx, entities.NewEnv(s.fetcher, s.store), id)
	s.recordOutcome(ctx, entityType.String(), outcome)
	return outcome
}

// LoadDashboardSettings runs the dashboard settings loader.
func (s *LoaderService) LoadDashboardSettings(ctx context.Context) ports.LoadOutcome {
	s.logger.InfoContext(ctx, "loading dashboard settings")

	outcome := s.dashboards.Load(ctx, s.store)
	s.recordOutcome(ctx, dashboardEntityType, outcome)
	return outcome
}

// Collection returns the current read model of a collection.
func (s *LoaderService) Collection(entityType domain.EntityType, filter *domain.Filter) ports.CollectionView {
	view := entities.Select(s.store.GetState().Entities, entityType)
	return ports.CollectionView{
		EntityType: entityType,
		Filter:     filter,
		Loading:    view.IsLoadingCollection(filter),
		Loaded:     view.IsCollectionLoaded(filter),
		Entities:   view.Entities(filter),
		Err:        view.CollectionError(filter),
	}
}

// Entity returns the current read model of a single entity.
func (s *LoaderService) Entity(entityType domain.EntityType, id string) ports.EntityView {
	view := entities.Select(s.store.GetState().Entities, entityType)
	return ports.EntityView{
		EntityType: entityType,
		ID:         id,
		Loading:    view.IsLoadingEntity(id),
		Entity:     view.Entity(id),
		Err:        view.EntityError(id),
	}
}

// DashboardSettings returns the current read model of one dashboard.
func (s *LoaderService) DashboardSettings(id string) ports.DashboardView {
	view := DashboardSelector(s.store.GetState())

	out := ports.DashboardView{
		ID:       id,
		Loading:  view.IsLoading(),
		Defaults: view.DefaultsByID(id),
		Err:      view.Error(),
	}
	if settings, ok := view.ByID(id); ok {
		out.Settings = &settings
	}
	return out
}

func (s *LoaderService) collectionLoader(entityType domain.EntityType) *entities.CollectionLoader[State] {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.collections[entityType]
	if !ok {
		l = entities.NewCollectionLoader(entityType, entities.NewCollectionActions(entityType), EntitySelector(entityType), s.logger)
		s.collections[entityType] = l
	}
	return l
}

func (s *LoaderService) entityLoader(entityType domain.EntityType) *entities.EntityLoader[State] {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.singles[entityType]
	if !ok {
		l = entities.NewEntityLoader(entityType, entities.NewEntityActions(entityType), EntitySelector(entityType), s.logger)
		s.singles[entityType] = l
	}
	return l
}

// recordAction is subscribed to the store and counts lifecycle actions.
func (s *LoaderService) recordAction(action store.Action) {
	entityType := dashboardEntityType
	if a, ok := action.(entities.Action); ok {
		entityType = a.EntityType.String()
	}

	s.metrics.EntityLoadActions.Add(context.Background(), 1, metric.WithAttributes(
		telemetry.AttrEntityType.String(entityType),
		telemetry.AttrAction.String(action.Name()),
	))
}

func (s *LoaderService) recordOutcome(ctx context.Context, entityType string, outcome ports.LoadOutcome) {
	if s.metrics == nil || outcome != ports.LoadSkipped {
		return
	}
	s.metrics.EntityLoadSkipped.Add(ctx, 1, metric.WithAttributes(
		telemetry.AttrEntityType.String(entityType),
	))
}

func filterString(f *domain.Filter) string {
	if f == nil {
		return ""
	}
	return f.String()
}
