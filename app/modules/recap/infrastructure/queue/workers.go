package recapqueue

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/riverqueue/river"

	"github.com/Harbor-Links-Club/matchplay-bot/app/eventbus"
	matchevents "github.com/Harbor-Links-Club/matchplay-bot/app/events/matchevents"
	recapevents "github.com/Harbor-Links-Club/matchplay-bot/app/events/recapevents"
	"github.com/Harbor-Links-Club/matchplay-bot/app/shared/attr"
	"github.com/Harbor-Links-Club/matchplay-bot/app/shared/utils"
)

// RecapRebuildWorker re-publishes the rebuild request onto the bus when the
// debounce window elapses; the recap router picks it up like any other event.
type RecapRebuildWorker struct {
	river.WorkerDefaults[RecapRebuildArgs]

	logger   *slog.Logger
	eventBus eventbus.EventBus
	helpers  utils.Helpers
}

func NewRecapRebuildWorker(logger *slog.Logger, eventBus eventbus.EventBus, helpers utils.Helpers) *RecapRebuildWorker {
	return &RecapRebuildWorker{logger: logger, eventBus: eventBus, helpers: helpers}
}

func (w *RecapRebuildWorker) Work(ctx context.Context, job *river.Job[RecapRebuildArgs]) error {
	w.logger.InfoContext(ctx, "Recap rebuild job firing",
		attr.RoundID("round_id", job.Args.RoundID),
		attr.Int64("job_id", job.ID),
	)

	msg, err := w.helpers.CreateNewMessage(
		&recapevents.RebuildRequestedPayloadV1{RoundID: job.Args.RoundID},
		recapevents.RebuildRequestedV1,
	)
	if err != nil {
		return fmt.Errorf("failed to create rebuild request message: %w", err)
	}
	if err := w.eventBus.Publish(recapevents.RebuildRequestedV1, msg); err != nil {
		return fmt.Errorf("failed to publish rebuild request: %w", err)
	}
	return nil
}

// RoundLockWorker publishes the round lock request when the round's lock time
// arrives. The match module owns the actual locking.
type RoundLockWorker struct {
	river.WorkerDefaults[RoundLockArgs]

	logger   *slog.Logger
	eventBus eventbus.EventBus
	helpers  utils.Helpers
}

func NewRoundLockWorker(logger *slog.Logger, eventBus eventbus.EventBus, helpers utils.Helpers) *RoundLockWorker {
	return &RoundLockWorker{logger: logger, eventBus: eventBus, helpers: helpers}
}

func (w *RoundLockWorker) Work(ctx context.Context, job *river.Job[RoundLockArgs]) error {
	w.logger.InfoContext(ctx, "Round lock job firing",
		attr.RoundID("round_id", job.Args.RoundID),
		attr.Int64("job_id", job.ID),
	)

	msg, err := w.helpers.CreateNewMessage(
		&matchevents.RoundLockRequestedPayloadV1{RoundID: job.Args.RoundID},
		matchevents.RoundLockRequestedV1,
	)
	if err != nil {
		return fmt.Errorf("failed to create round lock message: %w", err)
	}
	if err := w.eventBus.Publish(matchevents.RoundLockRequestedV1, msg); err != nil {
		return fmt.Errorf("failed to publish round lock request: %w", err)
	}
	return nil
}
