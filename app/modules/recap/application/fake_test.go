package recapservice

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	matchevents "github.com/Harbor-Links-Club/matchplay-bot/app/events/matchevents"
	recapdomain "github.com/Harbor-Links-Club/matchplay-bot/app/modules/recap/domain"
	recapdb "github.com/Harbor-Links-Club/matchplay-bot/app/modules/recap/infrastructure/repositories"
)

// FakeRecapDB is an in-memory RecapDB recording the calls made against it.
type FakeRecapDB struct {
	trace []string

	snapshots map[uuid.UUID]matchevents.MatchSnapshotV1
	recaps    map[uuid.UUID]recapdomain.RoundRecap

	UpsertSnapshotFunc func(ctx context.Context, snapshot matchevents.MatchSnapshotV1) error
	UpsertRecapFunc    func(ctx context.Context, recap recapdomain.RoundRecap) error
}

var _ recapdb.RecapDB = (*FakeRecapDB)(nil)

func NewFakeRecapDB() *FakeRecapDB {
	return &FakeRecapDB{
		snapshots: map[uuid.UUID]matchevents.MatchSnapshotV1{},
		recaps:    map[uuid.UUID]recapdomain.RoundRecap{},
	}
}

func (f *FakeRecapDB) Trace() []string { return f.trace }

func (f *FakeRecapDB) record(format string, args ...any) {
	f.trace = append(f.trace, fmt.Sprintf(format, args...))
}

// StoredRecap returns the recap last upserted for the round, or nil.
func (f *FakeRecapDB) StoredRecap(roundID uuid.UUID) *recapdomain.RoundRecap {
	if r, ok := f.recaps[roundID]; ok {
		return &r
	}
	return nil
}

func (f *FakeRecapDB) UpsertSnapshot(ctx context.Context, snapshot matchevents.MatchSnapshotV1) error {
	f.record("UpsertSnapshot(%s)", snapshot.MatchID)
	if f.UpsertSnapshotFunc != nil {
		return f.UpsertSnapshotFunc(ctx, snapshot)
	}
	f.snapshots[snapshot.MatchID] = snapshot
	return nil
}

func (f *FakeRecapDB) DeleteSnapshot(ctx context.Context, matchID uuid.UUID) error {
	f.record("DeleteSnapshot(%s)", matchID)
	delete(f.snapshots, matchID)
	return nil
}

func (f *FakeRecapDB) GetSnapshotsForRound(ctx context.Context, roundID uuid.UUID) ([]matchevents.MatchSnapshotV1, error) {
	f.record("GetSnapshotsForRound(%s)", roundID)
	var out []matchevents.MatchSnapshotV1
	for _, snapshot := range f.snapshots {
		if snapshot.RoundID == roundID {
			out = append(out, snapshot)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].MatchID.String() < out[j].MatchID.String()
	})
	return out, nil
}

func (f *FakeRecapDB) UpsertRecap(ctx context.Context, recap recapdomain.RoundRecap) error {
	f.record("UpsertRecap(%s)", recap.RoundID)
	if f.UpsertRecapFunc != nil {
		return f.UpsertRecapFunc(ctx, recap)
	}
	f.recaps[recap.RoundID] = recap
	return nil
}

func (f *FakeRecapDB) GetRecap(ctx context.Context, roundID uuid.UUID) (*recapdomain.RoundRecap, error) {
	f.record("GetRecap(%s)", roundID)
	if r, ok := f.recaps[roundID]; ok {
		return &r, nil
	}
	return nil, recapdb.ErrRecapNotFound
}

// FakeScheduler records scheduling calls without a real job queue behind it.
type FakeScheduler struct {
	trace []string

	ScheduleRecapRebuildFunc func(ctx context.Context, roundID uuid.UUID) error
}

var _ Scheduler = (*FakeScheduler)(nil)

func (f *FakeScheduler) Trace() []string { return f.trace }

func (f *FakeScheduler) ScheduleRecapRebuild(ctx context.Context, roundID uuid.UUID) error {
	f.trace = append(f.trace, fmt.Sprintf("ScheduleRecapRebuild(%s)", roundID))
	if f.ScheduleRecapRebuildFunc != nil {
		return f.ScheduleRecapRebuildFunc(ctx, roundID)
	}
	return nil
}

func (f *FakeScheduler) ScheduleRoundLock(ctx context.Context, roundID uuid.UUID, lockAt time.Time) error {
	f.trace = append(f.trace, fmt.Sprintf("ScheduleRoundLock(%s)", roundID))
	return nil
}
