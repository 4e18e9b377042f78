package matchdb

import (
	"context"

	"github.com/google/uuid"

	matchplay "github.com/Harbor-Links-Club/matchplay-bot/app/modules/match/domain"
)

// MatchDB is the interface for the match module's storage.
type MatchDB interface {
	CreateCourse(ctx context.Context, course *matchplay.Course) error
	GetCourse(ctx context.Context, courseID uuid.UUID) (*matchplay.Course, error)

	CreateRound(ctx context.Context, round *matchplay.Round) error
	GetRound(ctx context.Context, roundID uuid.UUID) (*matchplay.Round, error)
	SetRoundLocked(ctx context.Context, roundID uuid.UUID, locked bool) error

	CreateMatch(ctx context.Context, match *matchplay.Match) error
	GetMatch(ctx context.Context, matchID uuid.UUID) (*matchplay.Match, error)
	GetMatchesForRound(ctx context.Context, roundID uuid.UUID) ([]matchplay.Match, error)

	UpdateHoles(ctx context.Context, matchID uuid.UUID, holes [matchplay.Holes]matchplay.HoleInput) error
	UpdateEvaluation(ctx context.Context, matchID uuid.UUID, status *matchplay.MatchStatus, result *matchplay.MatchResult) error
}
