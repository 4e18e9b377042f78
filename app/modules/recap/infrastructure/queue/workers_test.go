package recapqueue

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	matchevents "github.com/Harbor-Links-Club/matchplay-bot/app/events/matchevents"
	recapevents "github.com/Harbor-Links-Club/matchplay-bot/app/events/recapevents"
	"github.com/Harbor-Links-Club/matchplay-bot/app/shared/utils"
)

// fakeBus records published messages per topic.
type fakeBus struct {
	published map[string][]*message.Message
}

func newFakeBus() *fakeBus {
	return &fakeBus{published: make(map[string][]*message.Message)}
}

func (b *fakeBus) Publish(topic string, messages ...*message.Message) error {
	b.published[topic] = append(b.published[topic], messages...)
	return nil
}

func (b *fakeBus) Subscribe(ctx context.Context, topic string) (<-chan *message.Message, error) {
	return nil, nil
}

func (b *fakeBus) CreateStream(ctx context.Context, streamName string, subjects ...string) error {
	return nil
}

func (b *fakeBus) Close() error { return nil }

func TestRecapRebuildWorker_PublishesRebuildRequest(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	bus := newFakeBus()
	worker := NewRecapRebuildWorker(logger, bus, utils.NewHelpers(logger))

	roundID := uuid.New()
	err := worker.Work(context.Background(), &river.Job[RecapRebuildArgs]{
		JobRow: &rivertype.JobRow{ID: 1},
		Args:   RecapRebuildArgs{RoundID: roundID},
	})
	require.NoError(t, err)

	msgs := bus.published[recapevents.RebuildRequestedV1]
	require.Len(t, msgs, 1)
	assert.Equal(t, recapevents.RebuildRequestedV1, msgs[0].Metadata.Get(utils.TopicMetadataKey))

	var payload recapevents.RebuildRequestedPayloadV1
	require.NoError(t, json.Unmarshal(msgs[0].Payload, &payload))
	assert.Equal(t, roundID, payload.RoundID)
}

func TestRoundLockWorker_PublishesLockRequest(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	bus := newFakeBus()
	worker := NewRoundLockWorker(logger, bus, utils.NewHelpers(logger))

	roundID := uuid.New()
	err := worker.Work(context.Background(), &river.Job[RoundLockArgs]{
		JobRow: &rivertype.JobRow{ID: 2},
		Args:   RoundLockArgs{RoundID: roundID},
	})
	require.NoError(t, err)

	msgs := bus.published[matchevents.RoundLockRequestedV1]
	require.Len(t, msgs, 1)

	var payload matchevents.RoundLockRequestedPayloadV1
	require.NoError(t, json.Unmarshal(msgs[0].Payload, &payload))
	assert.Equal(t, roundID, payload.RoundID)
}
