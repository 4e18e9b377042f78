package matchdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	matchplay "github.com/Harbor-Links-Club/matchplay-bot/app/modules/match/domain"
)

// MatchDBImpl implements MatchDB on top of bun.
type MatchDBImpl struct {
	DB *bun.DB
}

func (db *MatchDBImpl) CreateCourse(ctx context.Context, course *matchplay.Course) error {
	row := &Course{ID: course.ID, Name: course.Name, Holes: course.Holes}
	if _, err := db.DB.NewInsert().
		Model(row).
		On("CONFLICT (id) DO UPDATE").
		Set("name = EXCLUDED.name, holes = EXCLUDED.holes").
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to upsert course %s: %w", course.ID, err)
	}
	return nil
}

func (db *MatchDBImpl) GetCourse(ctx context.Context, courseID uuid.UUID) (*matchplay.Course, error) {
	var row Course
	err := db.DB.NewSelect().
		Model(&row).
		Where("id = ?", courseID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCourseNotFound
		}
		return nil, fmt.Errorf("failed to fetch course %s: %w", courseID, err)
	}
	return row.toDomain(), nil
}

func (db *MatchDBImpl) CreateRound(ctx context.Context, round *matchplay.Round) error {
	row := &Round{
		ID:          round.ID,
		CourseID:    round.CourseID,
		Format:      string(round.Format),
		Series:      round.Series,
		CoursePar:   round.CoursePar,
		TrackDrives: round.TrackDrives,
		Locked:      round.Locked,
		LocksAt:     round.LocksAt,
	}
	if _, err := db.DB.NewInsert().
		Model(row).
		On("CONFLICT (id) DO UPDATE").
		Set("format = EXCLUDED.format, series = EXCLUDED.series, course_par = EXCLUDED.course_par, track_drives = EXCLUDED.track_drives, locks_at = EXCLUDED.locks_at, updated_at = EXCLUDED.updated_at").
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to upsert round %s: %w", round.ID, err)
	}
	return nil
}

func (db *MatchDBImpl) GetRound(ctx context.Context, roundID uuid.UUID) (*matchplay.Round, error) {
	var row Round
	err := db.DB.NewSelect().
		Model(&row).
		Where("id = ?", roundID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRoundNotFound
		}
		return nil, fmt.Errorf("failed to fetch round %s: %w", roundID, err)
	}
	return row.toDomain(), nil
}

func (db *MatchDBImpl) SetRoundLocked(ctx context.Context, roundID uuid.UUID, locked bool) error {
	res, err := db.DB.NewUpdate().
		Model((*Round)(nil)).
		Set("locked = ?", locked).
		Set("updated_at = ?", time.Now().UTC()).
		Where("id = ?", roundID).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to set locked on round %s: %w", roundID, err)
	}
	if rows, err := res.RowsAffected(); err == nil && rows == 0 {
		return ErrNoRowsAffected
	}
	return nil
}

func (db *MatchDBImpl) CreateMatch(ctx context.Context, match *matchplay.Match) error {
	row := &Match{
		ID:           match.ID,
		RoundID:      match.RoundID,
		Format:       match.Format,
		TeamAPlayers: match.TeamAPlayers,
		TeamBPlayers: match.TeamBPlayers,
		Holes:        match.Holes,
		Status:       match.Status,
		Result:       match.Result,
	}
	if _, err := db.DB.NewInsert().
		Model(row).
		On("CONFLICT (id) DO UPDATE").
		Set("team_a_players = EXCLUDED.team_a_players, team_b_players = EXCLUDED.team_b_players, holes = EXCLUDED.holes, updated_at = EXCLUDED.updated_at").
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to upsert match %s: %w", match.ID, err)
	}
	return nil
}

func (db *MatchDBImpl) GetMatch(ctx context.Context, matchID uuid.UUID) (*matchplay.Match, error) {
	var row Match
	err := db.DB.NewSelect().
		Model(&row).
		Where("id = ?", matchID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMatchNotFound
		}
		return nil, fmt.Errorf("failed to fetch match %s: %w", matchID, err)
	}
	return row.toDomain(), nil
}

func (db *MatchDBImpl) GetMatchesForRound(ctx context.Context, roundID uuid.UUID) ([]matchplay.Match, error) {
	var rows []Match
	err := db.DB.NewSelect().
		Model(&rows).
		Where("round_id = ?", roundID).
		Order("created_at ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch matches for round %s: %w", roundID, err)
	}

	matches := make([]matchplay.Match, 0, len(rows))
	for i := range rows {
		matches = append(matches, *rows[i].toDomain())
	}
	return matches, nil
}

func (db *MatchDBImpl) UpdateHoles(ctx context.Context, matchID uuid.UUID, holes [matchplay.Holes]matchplay.HoleInput) error {
	row := &Match{ID: matchID, Holes: holes, UpdatedAt: time.Now().UTC()}
	res, err := db.DB.NewUpdate().
		Model(row).
		Column("holes", "updated_at").
		WherePK().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to update holes for match %s: %w", matchID, err)
	}
	if rows, err := res.RowsAffected(); err == nil && rows == 0 {
		return ErrMatchNotFound
	}
	return nil
}

func (db *MatchDBImpl) UpdateEvaluation(ctx context.Context, matchID uuid.UUID, status *matchplay.MatchStatus, result *matchplay.MatchResult) error {
	row := &Match{ID: matchID, Status: status, Result: result, UpdatedAt: time.Now().UTC()}
	res, err := db.DB.NewUpdate().
		Model(row).
		Column("status", "result", "updated_at").
		WherePK().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to update evaluation for match %s: %w", matchID, err)
	}
	if rows, err := res.RowsAffected(); err == nil && rows == 0 {
		return ErrMatchNotFound
	}
	return nil
}

var _ MatchDB = (*MatchDBImpl)(nil)
