package recaphandlers

import (
	"log/slog"

	"go.opentelemetry.io/otel/trace"

	recapservice "github.com/Harbor-Links-Club/matchplay-bot/app/modules/recap/application"
	recapmetrics "github.com/Harbor-Links-Club/matchplay-bot/app/shared/observability/metrics/recapmetrics"
	"github.com/Harbor-Links-Club/matchplay-bot/app/shared/utils"
)

// RecapHandlers handles recap module events.
type RecapHandlers struct {
	service recapservice.Service
	logger  *slog.Logger
	tracer  trace.Tracer
	metrics recapmetrics.RecapMetrics
	helpers utils.Helpers
}

// NewRecapHandlers creates a new RecapHandlers.
func NewRecapHandlers(
	service recapservice.Service,
	logger *slog.Logger,
	tracer trace.Tracer,
	helpers utils.Helpers,
	metrics recapmetrics.RecapMetrics,
) *RecapHandlers {
	return &RecapHandlers{
		service: service,
		logger:  logger,
		tracer:  tracer,
		metrics: metrics,
		helpers: helpers,
	}
}
