package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"

	matchservice "github.com/Harbor-Links-Club/matchplay-bot/app/modules/match/application"
	recapservice "github.com/Harbor-Links-Club/matchplay-bot/app/modules/recap/application"
	statsservice "github.com/Harbor-Links-Club/matchplay-bot/app/modules/stats/application"
	"github.com/Harbor-Links-Club/matchplay-bot/app/shared/attr"
)

// Config holds the API server settings.
type Config struct {
	Address   string
	RateLimit float64
	RateBurst int
}

// Server is the read-only HTTP surface. All writes flow through the event
// bus; these endpoints only expose stored state.
type Server struct {
	httpServer *http.Server
	logger     *slog.Logger
}

// NewServer builds the chi router and wires the read paths of the three
// modules plus health and metrics.
func NewServer(
	cfg Config,
	logger *slog.Logger,
	matchService matchservice.Service,
	statsService statsservice.Service,
	recapService recapservice.Service,
	registry *prometheus.Registry,
) *Server {
	h := &handlers{
		matchService: matchService,
		statsService: statsService,
		recapService: recapService,
		logger:       logger,
	}

	r := chi.NewRouter()
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(rateLimiter(rate.NewLimiter(rate.Limit(cfg.RateLimit), cfg.RateBurst)))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	r.Get("/matches/{matchID}/status", h.matchStatus)
	r.Get("/matches/{matchID}/momentum.png", h.momentumChart)
	r.Get("/rounds/{roundID}/recap", h.roundRecap)
	r.Get("/rounds/{roundID}/recap.xlsx", h.recapWorkbook)
	r.Get("/players/{playerID}/stats", h.playerStats)

	return &Server{
		httpServer: &http.Server{
			Addr:              cfg.Address,
			Handler:           r,
			ReadHeaderTimeout: 5 * time.Second,
		},
		logger: logger,
	}
}

// Start serves until Shutdown is called.
func (s *Server) Start() error {
	s.logger.Info("API server listening", attr.String("address", s.httpServer.Addr))
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// rateLimiter applies one global token bucket across all endpoints.
func rateLimiter(limiter *rate.Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
