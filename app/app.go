package app

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/Harbor-Links-Club/matchplay-bot/api"
	"github.com/Harbor-Links-Club/matchplay-bot/app/eventbus"
	"github.com/Harbor-Links-Club/matchplay-bot/app/modules/match"
	"github.com/Harbor-Links-Club/matchplay-bot/app/modules/recap"
	"github.com/Harbor-Links-Club/matchplay-bot/app/modules/stats"
	"github.com/Harbor-Links-Club/matchplay-bot/app/shared/attr"
	"github.com/Harbor-Links-Club/matchplay-bot/app/shared/observability"
	"github.com/Harbor-Links-Club/matchplay-bot/app/shared/utils"
	"github.com/Harbor-Links-Club/matchplay-bot/config"
	"github.com/Harbor-Links-Club/matchplay-bot/db/bundb"
)

// App wires the modules, storage, transport, and the read-only API together.
type App struct {
	Config        *config.Config
	Observability *observability.Observability
	DB            *bundb.DBService
	EventBus      eventbus.EventBus
	MatchModule   *match.Module
	StatsModule   *stats.Module
	RecapModule   *recap.Module
	APIServer     *api.Server

	routers []*message.Router
	logger  *slog.Logger
}

// Initialize builds every component. Each module gets its own watermill
// router since Configure installs module-scoped middleware on it.
func (app *App) Initialize(ctx context.Context, cfg *config.Config, obs *observability.Observability) error {
	app.Config = cfg
	app.Observability = obs
	app.logger = obs.Logger
	helpers := utils.NewHelpers(app.logger)

	dbService, err := bundb.NewBunDBService(ctx, cfg.Postgres.DSN)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.DB = dbService

	bus, err := eventbus.NewEventBus(ctx, cfg.NATS.URL, app.logger)
	if err != nil {
		return fmt.Errorf("failed to initialize event bus: %w", err)
	}
	app.EventBus = bus

	if err := eventbus.InitializeStreams(ctx, bus); err != nil {
		return fmt.Errorf("failed to provision streams: %w", err)
	}

	watermillLogger := watermill.NewSlogLogger(app.logger)
	newRouter := func() (*message.Router, error) {
		return message.NewRouter(message.RouterConfig{}, watermillLogger)
	}

	matchRouter, err := newRouter()
	if err != nil {
		return fmt.Errorf("failed to create match router: %w", err)
	}
	app.MatchModule, err = match.NewMatchModule(ctx, obs, dbService.MatchDB, bus, matchRouter, helpers)
	if err != nil {
		return fmt.Errorf("failed to initialize match module: %w", err)
	}

	statsRouter, err := newRouter()
	if err != nil {
		return fmt.Errorf("failed to create stats router: %w", err)
	}
	app.StatsModule, err = stats.NewStatsModule(ctx, obs, dbService.StatsDB, bus, statsRouter, helpers)
	if err != nil {
		return fmt.Errorf("failed to initialize stats module: %w", err)
	}

	recapRouter, err := newRouter()
	if err != nil {
		return fmt.Errorf("failed to create recap router: %w", err)
	}
	app.RecapModule, err = recap.NewRecapModule(ctx, obs, dbService.RecapDB, cfg.Postgres.DSN, bus, recapRouter, helpers)
	if err != nil {
		return fmt.Errorf("failed to initialize recap module: %w", err)
	}

	app.routers = []*message.Router{matchRouter, statsRouter, recapRouter}

	app.APIServer = api.NewServer(
		api.Config{
			Address:   cfg.HTTP.Address,
			RateLimit: cfg.HTTP.RateLimit,
			RateBurst: cfg.HTTP.RateBurst,
		},
		app.logger,
		app.MatchModule.MatchService,
		app.StatsModule.StatsService,
		app.RecapModule.RecapService,
		obs.Registry,
	)

	return nil
}

// Run starts the routers, the modules, and the API server, then blocks until
// the context is canceled.
func (app *App) Run(ctx context.Context) error {
	var wg sync.WaitGroup

	for _, router := range app.routers {
		router := router
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := router.Run(ctx); err != nil {
				app.logger.Error("Watermill router stopped with error", attr.Error(err))
			}
		}()
	}

	wg.Add(3)
	go app.MatchModule.Run(ctx, &wg)
	go app.StatsModule.Run(ctx, &wg)
	go app.RecapModule.Run(ctx, &wg)

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := app.APIServer.Start(); err != nil {
			app.logger.Error("API server stopped with error", attr.Error(err))
		}
	}()

	<-ctx.Done()
	app.logger.Info("Application context canceled, shutting down")
	app.Close(context.Background())
	wg.Wait()
	return nil
}

// Close shuts every component down in reverse dependency order.
func (app *App) Close(ctx context.Context) {
	if app.APIServer != nil {
		if err := app.APIServer.Shutdown(ctx); err != nil {
			app.logger.Error("Error shutting down API server", attr.Error(err))
		}
	}

	for _, module := range []interface{ Close() error }{app.RecapModule, app.StatsModule, app.MatchModule} {
		if module != nil {
			if err := module.Close(); err != nil {
				app.logger.Error("Error closing module", attr.Error(err))
			}
		}
	}

	for _, router := range app.routers {
		if err := router.Close(); err != nil {
			app.logger.Error("Error closing router", attr.Error(err))
		}
	}

	if app.EventBus != nil {
		if err := app.EventBus.Close(); err != nil {
			app.logger.Error("Error closing event bus", attr.Error(err))
		}
	}

	if app.DB != nil {
		if err := app.DB.Close(); err != nil {
			app.logger.Error("Error closing database", attr.Error(err))
		}
	}
}
