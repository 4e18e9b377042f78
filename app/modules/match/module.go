package match

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/Harbor-Links-Club/matchplay-bot/app/eventbus"
	matchservice "github.com/Harbor-Links-Club/matchplay-bot/app/modules/match/application"
	matchdb "github.com/Harbor-Links-Club/matchplay-bot/app/modules/match/infrastructure/repositories"
	matchrouter "github.com/Harbor-Links-Club/matchplay-bot/app/modules/match/infrastructure/router"
	"github.com/Harbor-Links-Club/matchplay-bot/app/shared/observability"
	matchmetrics "github.com/Harbor-Links-Club/matchplay-bot/app/shared/observability/metrics/matchmetrics"
	"github.com/Harbor-Links-Club/matchplay-bot/app/shared/utils"
)

// Module is the match scoring module.
type Module struct {
	EventBus     eventbus.EventBus
	MatchService matchservice.Service
	MatchRouter  *matchrouter.MatchRouter
	logger       *slog.Logger
	cancelFunc   context.CancelFunc
}

// NewMatchModule wires the match module onto the shared router and bus.
func NewMatchModule(
	ctx context.Context,
	obs *observability.Observability,
	repo matchdb.MatchDB,
	bus eventbus.EventBus,
	router *message.Router,
	helpers utils.Helpers,
) (*Module, error) {
	logger := obs.Logger
	tracer := obs.Tracer("match")

	moduleMetrics, err := matchmetrics.NewMatchMetrics(obs.Meter("match"))
	if err != nil {
		return nil, fmt.Errorf("failed to create match metrics: %w", err)
	}

	service := matchservice.NewMatchService(repo, logger, moduleMetrics, tracer)

	moduleRouter := matchrouter.NewMatchRouter(logger, router, bus, bus, helpers, tracer, obs.Registry)
	if err := moduleRouter.Configure(ctx, service, moduleMetrics); err != nil {
		return nil, fmt.Errorf("failed to configure match router: %w", err)
	}

	return &Module{
		EventBus:     bus,
		MatchService: service,
		MatchRouter:  moduleRouter,
		logger:       logger,
	}, nil
}

// Run keeps the module alive until the context is canceled.
func (m *Module) Run(ctx context.Context, wg *sync.WaitGroup) {
	m.logger.Info("Starting match module")

	ctx, cancel := context.WithCancel(ctx)
	m.cancelFunc = cancel
	defer cancel()

	if wg != nil {
		defer wg.Done()
	}

	<-ctx.Done()
	m.logger.Info("Match module goroutine stopped")
}

func (m *Module) Close() error {
	m.logger.Info("Stopping match module")
	if m.cancelFunc != nil {
		m.cancelFunc()
	}
	return nil
}
