package recap

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/Harbor-Links-Club/matchplay-bot/app/eventbus"
	recapservice "github.com/Harbor-Links-Club/matchplay-bot/app/modules/recap/application"
	recapqueue "github.com/Harbor-Links-Club/matchplay-bot/app/modules/recap/infrastructure/queue"
	recapdb "github.com/Harbor-Links-Club/matchplay-bot/app/modules/recap/infrastructure/repositories"
	recaprouter "github.com/Harbor-Links-Club/matchplay-bot/app/modules/recap/infrastructure/router"
	"github.com/Harbor-Links-Club/matchplay-bot/app/shared/attr"
	"github.com/Harbor-Links-Club/matchplay-bot/app/shared/observability"
	recapmetrics "github.com/Harbor-Links-Club/matchplay-bot/app/shared/observability/metrics/recapmetrics"
	"github.com/Harbor-Links-Club/matchplay-bot/app/shared/utils"
)

// Module is the round recap module. It owns the River queue that debounces
// recap rebuilds and fires round locks.
type Module struct {
	EventBus     eventbus.EventBus
	RecapService recapservice.Service
	RecapRouter  *recaprouter.RecapRouter
	QueueService *recapqueue.Service
	logger       *slog.Logger
	cancelFunc   context.CancelFunc
}

// NewRecapModule wires the recap module onto the shared router and bus.
func NewRecapModule(
	ctx context.Context,
	obs *observability.Observability,
	repo recapdb.RecapDB,
	queueDSN string,
	bus eventbus.EventBus,
	router *message.Router,
	helpers utils.Helpers,
) (*Module, error) {
	logger := obs.Logger
	tracer := obs.Tracer("recap")

	moduleMetrics, err := recapmetrics.NewRecapMetrics(obs.Meter("recap"))
	if err != nil {
		return nil, fmt.Errorf("failed to create recap metrics: %w", err)
	}

	queueService, err := recapqueue.NewService(ctx, logger, queueDSN, bus, helpers)
	if err != nil {
		return nil, fmt.Errorf("failed to create recap queue service: %w", err)
	}

	service := recapservice.NewRecapService(repo, queueService, logger, moduleMetrics, tracer)

	moduleRouter := recaprouter.NewRecapRouter(logger, router, bus, bus, helpers, tracer, obs.Registry)
	if err := moduleRouter.Configure(ctx, service, moduleMetrics); err != nil {
		return nil, fmt.Errorf("failed to configure recap router: %w", err)
	}

	return &Module{
		EventBus:     bus,
		RecapService: service,
		RecapRouter:  moduleRouter,
		QueueService: queueService,
		logger:       logger,
	}, nil
}

// Run starts the queue and keeps the module alive until the context is
// canceled.
func (m *Module) Run(ctx context.Context, wg *sync.WaitGroup) {
	m.logger.Info("Starting recap module")

	ctx, cancel := context.WithCancel(ctx)
	m.cancelFunc = cancel
	defer cancel()

	if wg != nil {
		defer wg.Done()
	}

	if err := m.QueueService.Start(ctx); err != nil {
		m.logger.Error("Failed to start recap queue", attr.Error(err))
		return
	}

	<-ctx.Done()
	m.logger.Info("Recap module goroutine stopped")
}

func (m *Module) Close() error {
	m.logger.Info("Stopping recap module")
	if m.cancelFunc != nil {
		m.cancelFunc()
	}
	if err := m.QueueService.Stop(context.Background()); err != nil {
		m.logger.Error("Failed to stop recap queue", attr.Error(err))
		return err
	}
	return nil
}
