package recapqueue

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"

	"github.com/Harbor-Links-Club/matchplay-bot/app/eventbus"
	recapservice "github.com/Harbor-Links-Club/matchplay-bot/app/modules/recap/application"
	"github.com/Harbor-Links-Club/matchplay-bot/app/shared/attr"
	"github.com/Harbor-Links-Club/matchplay-bot/app/shared/utils"
)

// rebuildDebounce is how long a rebuild waits for more match closures before
// firing. Closures landing inside the window coalesce onto the pending job.
const rebuildDebounce = 5 * time.Second

const recapQueue = "recap"

// Service schedules recap rebuilds and round locks with River.
type Service struct {
	client *river.Client[pgx.Tx]
	pool   *pgxpool.Pool
	logger *slog.Logger
}

var _ recapservice.Scheduler = (*Service)(nil)

// NewService creates the River-backed scheduler. River needs its own pgx pool
// next to the bun connection.
func NewService(ctx context.Context, logger *slog.Logger, dsn string, eventBus eventbus.EventBus, helpers utils.Helpers) (*Service, error) {
	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to parse DSN for River: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create pgx pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	workers := river.NewWorkers()
	river.AddWorker(workers, NewRecapRebuildWorker(logger, eventBus, helpers))
	river.AddWorker(workers, NewRoundLockWorker(logger, eventBus, helpers))

	riverClient, err := river.NewClient(riverpgxv5.New(pool), &river.Config{
		Queues: map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: 10},
			recapQueue:         {MaxWorkers: 5},
		},
		Workers: workers,
	})
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to create River client: %w", err)
	}

	return &Service{
		client: riverClient,
		pool:   pool,
		logger: logger,
	}, nil
}

// Start starts River's job fetching and working.
func (s *Service) Start(ctx context.Context) error {
	if err := s.client.Start(ctx); err != nil {
		return fmt.Errorf("failed to start River client: %w", err)
	}
	s.logger.Info("Recap queue service started")
	return nil
}

// Stop drains and stops the queue, then releases the pool.
func (s *Service) Stop(ctx context.Context) error {
	if err := s.client.Stop(ctx); err != nil {
		return fmt.Errorf("failed to stop River client: %w", err)
	}
	s.pool.Close()
	s.logger.Info("Recap queue service stopped")
	return nil
}

// ScheduleRecapRebuild enqueues a debounced rebuild. Uniqueness by args keeps
// one pending job per round; a burst of closures produces one rebuild.
func (s *Service) ScheduleRecapRebuild(ctx context.Context, roundID uuid.UUID) error {
	result, err := s.client.Insert(ctx, RecapRebuildArgs{RoundID: roundID}, &river.InsertOpts{
		Queue:       recapQueue,
		ScheduledAt: time.Now().Add(rebuildDebounce),
		UniqueOpts: river.UniqueOpts{
			ByArgs: true,
		},
	})
	if err != nil {
		return fmt.Errorf("failed to schedule recap rebuild for round %s: %w", roundID, err)
	}

	s.logger.InfoContext(ctx, "Recap rebuild scheduled",
		attr.RoundID("round_id", roundID),
		attr.Int64("job_id", result.Job.ID),
		attr.Bool("coalesced", result.UniqueSkippedAsDuplicate),
	)
	return nil
}

// ScheduleRoundLock enqueues the lock job for the round's lock time.
// Re-scheduling the same round is skipped as a duplicate.
func (s *Service) ScheduleRoundLock(ctx context.Context, roundID uuid.UUID, lockAt time.Time) error {
	result, err := s.client.Insert(ctx, RoundLockArgs{RoundID: roundID}, &river.InsertOpts{
		Queue:       recapQueue,
		ScheduledAt: lockAt,
		UniqueOpts: river.UniqueOpts{
			ByArgs: true,
		},
	})
	if err != nil {
		return fmt.Errorf("failed to schedule round lock for round %s: %w", roundID, err)
	}

	s.logger.InfoContext(ctx, "Round lock scheduled",
		attr.RoundID("round_id", roundID),
		attr.Int64("job_id", result.Job.ID),
		attr.Bool("coalesced", result.UniqueSkippedAsDuplicate),
	)
	return nil
}
