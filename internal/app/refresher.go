package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jsamuelsen11/scanconsole/internal/app/fanout"
	"github.com/jsamuelsen11/scanconsole/internal/domain"
	"github.com/jsamuelsen11/scanconsole/internal/platform/config"
	"github.com/jsamuelsen11/scanconsole/internal/ports"
)

// refreshTarget is one unit of refresh work: an entity type's default
// collection, or the dashboard settings when dashboards is set.
type refreshTarget struct {
	entityType domain.EntityType
	dashboards bool
}

func (t refreshTarget) String() string {
	if t.dashboards {
		return dashboardEntityType
	}
	return t.entityType.String()
}

// Refresher periodically reloads the default collection of each configured
// entity type and, optionally, the dashboard settings. It goes through the
// regular loaders, so a refresh that overlaps a load already in flight is
// skipped.
type Refresher struct {
	svc        ports.LoaderService
	interval   time.Duration
	maxWorkers int
	targets    []refreshTarget
	logger     *slog.Logger
}

// NewRefresher creates a Refresher from cfg. A nil logger discards output.
func NewRefresher(svc ports.LoaderService, cfg config.RefreshConfig, logger *slog.Logger) *Refresher {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	targets := make([]refreshTarget, 0, len(cfg.EntityTypes)+1)
	for _, t := range cfg.EntityTypes {
		targets = append(targets, refreshTarget{entityType: domain.EntityType(t)})
	}
	if cfg.Dashboards {
		targets = append(targets, refreshTarget{dashboards: true})
	}

	return &Refresher{
		svc:        svc,
		interval:   cfg.Interval,
		maxWorkers: cfg.MaxWorkers,
		targets:    targets,
		logger:     logger,
	}
}

// RefreshOnce loads every target once with at most maxWorkers loads in
// flight. The returned map holds the outcome per target name. The error joins
// one entry per failed load; skipped loads are not errors.
func (r *Refresher) RefreshOnce(ctx context.Context) (map[string]ports.LoadOutcome, error) {
	results := fanout.Run(ctx, r.maxWorkers, r.targets, func(ctx context.Context, t refreshTarget) (ports.LoadOutcome, error) {
		var outcome ports.LoadOutcome
		if t.dashboards {
			outcome = r.svc.LoadDashboardSettings(ctx)
		} else {
			outcome = r.svc.LoadCollection(ctx, t.entityType, nil)
		}
		if outcome == ports.LoadFailed {
			return outcome, fmt.Errorf("refreshing %s: load failed", t)
		}
		return outcome, nil
	})

	outcomes := make(map[string]ports.LoadOutcome, len(results))
	for i, res := range results {
		if res.Value != "" {
			outcomes[r.targets[i].String()] = res.Value
		}
	}

	return outcomes, errors.Join(fanout.Errors(results)...)
}

// Run refreshes immediately and then on every interval tick until ctx is
// canceled. Refresh failures are logged and recorded in the store, not
// returned.
func (r *Refresher) Run(ctx context.Context) error {
	if r.interval <= 0 {
		return fmt.Errorf("refresher: interval must be positive, got %s", r.interval)
	}
	if len(r.targets) == 0 {
		r.logger.InfoContext(ctx, "refresher has nothing to refresh")
		return nil
	}

	r.logger.InfoContext(ctx, "refresher started",
		slog.Duration("interval", r.interval),
		slog.Int("targets", len(r.targets)),
	)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		r.tick(ctx)

		select {
		case <-ctx.Done():
			r.logger.InfoContext(ctx, "refresher stopped")
			return nil
		case <-ticker.C:
		}
	}
}

func (r *Refresher) tick(ctx context.Context) {
	start := time.Now()
	outcomes, err := r.RefreshOnce(ctx)
	if err != nil && ctx.Err() == nil {
		r.logger.WarnContext(ctx, "refresh incomplete",
			slog.String("operation", "Refresher.RefreshOnce"),
			slog.Any("error", err),
		)
		return
	}
	r.logger.DebugContext(ctx, "refresh complete",
		slog.Int("targets", len(outcomes)),
		slog.Duration("duration", time.Since(start)),
	)
}
