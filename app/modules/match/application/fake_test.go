package matchservice

import (
	"context"

	"github.com/google/uuid"

	matchplay "github.com/Harbor-Links-Club/matchplay-bot/app/modules/match/domain"
	matchdb "github.com/Harbor-Links-Club/matchplay-bot/app/modules/match/infrastructure/repositories"
)

// FakeMatchDB provides a programmable stub for the matchdb.MatchDB interface.
// By default it serves the seeded Match/Round/Course fixtures and records
// every write.
type FakeMatchDB struct {
	trace []string

	Match  *matchplay.Match
	Round  *matchplay.Round
	Course *matchplay.Course

	GetMatchFunc         func(ctx context.Context, matchID uuid.UUID) (*matchplay.Match, error)
	GetRoundFunc         func(ctx context.Context, roundID uuid.UUID) (*matchplay.Round, error)
	GetCourseFunc        func(ctx context.Context, courseID uuid.UUID) (*matchplay.Course, error)
	UpdateHolesFunc      func(ctx context.Context, matchID uuid.UUID, holes [matchplay.Holes]matchplay.HoleInput) error
	UpdateEvaluationFunc func(ctx context.Context, matchID uuid.UUID, status *matchplay.MatchStatus, result *matchplay.MatchResult) error

	LastHoles  *[matchplay.Holes]matchplay.HoleInput
	LastStatus *matchplay.MatchStatus
	LastResult *matchplay.MatchResult
}

// NewFakeMatchDB initializes a fake with an empty trace.
func NewFakeMatchDB() *FakeMatchDB {
	return &FakeMatchDB{trace: []string{}}
}

// Trace returns the sequence of method calls made to the fake.
func (f *FakeMatchDB) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

func (f *FakeMatchDB) record(step string) {
	f.trace = append(f.trace, step)
}

func (f *FakeMatchDB) CreateCourse(ctx context.Context, course *matchplay.Course) error {
	f.record("CreateCourse")
	f.Course = course
	return nil
}

func (f *FakeMatchDB) GetCourse(ctx context.Context, courseID uuid.UUID) (*matchplay.Course, error) {
	f.record("GetCourse")
	if f.GetCourseFunc != nil {
		return f.GetCourseFunc(ctx, courseID)
	}
	if f.Course == nil {
		return nil, matchdb.ErrCourseNotFound
	}
	return f.Course, nil
}

func (f *FakeMatchDB) CreateRound(ctx context.Context, round *matchplay.Round) error {
	f.record("CreateRound")
	f.Round = round
	return nil
}

func (f *FakeMatchDB) GetRound(ctx context.Context, roundID uuid.UUID) (*matchplay.Round, error) {
	f.record("GetRound")
	if f.GetRoundFunc != nil {
		return f.GetRoundFunc(ctx, roundID)
	}
	if f.Round == nil {
		return nil, matchdb.ErrRoundNotFound
	}
	return f.Round, nil
}

func (f *FakeMatchDB) SetRoundLocked(ctx context.Context, roundID uuid.UUID, locked bool) error {
	f.record("SetRoundLocked")
	if f.Round != nil {
		f.Round.Locked = locked
	}
	return nil
}

func (f *FakeMatchDB) CreateMatch(ctx context.Context, match *matchplay.Match) error {
	f.record("CreateMatch")
	f.Match = match
	return nil
}

func (f *FakeMatchDB) GetMatch(ctx context.Context, matchID uuid.UUID) (*matchplay.Match, error) {
	f.record("GetMatch")
	if f.GetMatchFunc != nil {
		return f.GetMatchFunc(ctx, matchID)
	}
	if f.Match == nil {
		return nil, matchdb.ErrMatchNotFound
	}
	m := *f.Match
	return &m, nil
}

func (f *FakeMatchDB) GetMatchesForRound(ctx context.Context, roundID uuid.UUID) ([]matchplay.Match, error) {
	f.record("GetMatchesForRound")
	if f.Match == nil {
		return nil, nil
	}
	return []matchplay.Match{*f.Match}, nil
}

func (f *FakeMatchDB) UpdateHoles(ctx context.Context, matchID uuid.UUID, holes [matchplay.Holes]matchplay.HoleInput) error {
	f.record("UpdateHoles")
	f.LastHoles = &holes
	if f.UpdateHolesFunc != nil {
		return f.UpdateHolesFunc(ctx, matchID, holes)
	}
	if f.Match != nil {
		f.Match.Holes = holes
	}
	return nil
}

func (f *FakeMatchDB) UpdateEvaluation(ctx context.Context, matchID uuid.UUID, status *matchplay.MatchStatus, result *matchplay.MatchResult) error {
	f.record("UpdateEvaluation")
	f.LastStatus = status
	f.LastResult = result
	if f.UpdateEvaluationFunc != nil {
		return f.UpdateEvaluationFunc(ctx, matchID, status, result)
	}
	if f.Match != nil {
		f.Match.Status = status
		f.Match.Result = result
	}
	return nil
}

var _ matchdb.MatchDB = (*FakeMatchDB)(nil)
