package stats

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/Harbor-Links-Club/matchplay-bot/app/eventbus"
	statsservice "github.com/Harbor-Links-Club/matchplay-bot/app/modules/stats/application"
	statsdb "github.com/Harbor-Links-Club/matchplay-bot/app/modules/stats/infrastructure/repositories"
	statsrouter "github.com/Harbor-Links-Club/matchplay-bot/app/modules/stats/infrastructure/router"
	"github.com/Harbor-Links-Club/matchplay-bot/app/shared/observability"
	statsmetrics "github.com/Harbor-Links-Club/matchplay-bot/app/shared/observability/metrics/statsmetrics"
	"github.com/Harbor-Links-Club/matchplay-bot/app/shared/utils"
)

// Module is the player stats module.
type Module struct {
	EventBus     eventbus.EventBus
	StatsService statsservice.Service
	StatsRouter  *statsrouter.StatsRouter
	logger       *slog.Logger
	cancelFunc   context.CancelFunc
}

// NewStatsModule wires the stats module onto the shared router and bus.
func NewStatsModule(
	ctx context.Context,
	obs *observability.Observability,
	repo statsdb.StatsDB,
	bus eventbus.EventBus,
	router *message.Router,
	helpers utils.Helpers,
) (*Module, error) {
	logger := obs.Logger
	tracer := obs.Tracer("stats")

	moduleMetrics, err := statsmetrics.NewStatsMetrics(obs.Meter("stats"))
	if err != nil {
		return nil, fmt.Errorf("failed to create stats metrics: %w", err)
	}

	service := statsservice.NewStatsService(repo, logger, moduleMetrics, tracer)

	moduleRouter := statsrouter.NewStatsRouter(logger, router, bus, bus, helpers, tracer, obs.Registry)
	if err := moduleRouter.Configure(ctx, service, moduleMetrics); err != nil {
		return nil, fmt.Errorf("failed to configure stats router: %w", err)
	}

	return &Module{
		EventBus:     bus,
		StatsService: service,
		StatsRouter:  moduleRouter,
		logger:       logger,
	}, nil
}

// Run keeps the module alive until the context is canceled.
func (m *Module) Run(ctx context.Context, wg *sync.WaitGroup) {
	m.logger.Info("Starting stats module")

	ctx, cancel := context.WithCancel(ctx)
	m.cancelFunc = cancel
	defer cancel()

	if wg != nil {
		defer wg.Done()
	}

	<-ctx.Done()
	m.logger.Info("Stats module goroutine stopped")
}

func (m *Module) Close() error {
	m.logger.Info("Stopping stats module")
	if m.cancelFunc != nil {
		m.cancelFunc()
	}
	return nil
}
