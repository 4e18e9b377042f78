package matchservice

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	matchevents "github.com/Harbor-Links-Club/matchplay-bot/app/events/matchevents"
)

func TestLockRound_LocksAndAnnounces(t *testing.T) {
	fake := NewFakeMatchDB()
	seedSinglesFixture(fake)
	service := newTestService(fake)

	result, err := service.LockRound(context.Background(), fake.Round.ID)
	require.NoError(t, err)
	require.True(t, result.IsSuccess())

	locked, ok := result.Success.(*matchevents.RoundLockedPayloadV1)
	require.True(t, ok)
	assert.Equal(t, fake.Round.ID, locked.RoundID)
	assert.True(t, fake.Round.Locked)
	assert.Contains(t, fake.Trace(), "SetRoundLocked")
}

func TestLockRound_AlreadyLockedIsIdempotent(t *testing.T) {
	fake := NewFakeMatchDB()
	seedSinglesFixture(fake)
	fake.Round.Locked = true
	service := newTestService(fake)

	result, err := service.LockRound(context.Background(), fake.Round.ID)
	require.NoError(t, err)
	require.True(t, result.IsSuccess())
	assert.NotContains(t, fake.Trace(), "SetRoundLocked")
}

func TestLockRound_RoundNotFound(t *testing.T) {
	fake := NewFakeMatchDB()
	service := newTestService(fake)

	result, err := service.LockRound(context.Background(), uuid.New())
	require.NoError(t, err)
	require.True(t, result.IsFailure())

	failure, ok := result.Failure.(*matchevents.OperationFailedPayloadV1)
	require.True(t, ok)
	assert.Equal(t, ReasonRoundNotFound, failure.Reason)
}
