package matchevents

import (
	"time"

	"github.com/google/uuid"

	matchplay "github.com/Harbor-Links-Club/matchplay-bot/app/modules/match/domain"
)

// Match module topics.
const (
	HoleScoreSubmitRequestedV1 = "match.hole_score.submit.requested.v1"
	HoleScoreSubmitFailedV1    = "match.hole_score.submit.failed.v1"

	DriveSelectRequestedV1 = "match.drive.select.requested.v1"
	DriveSelectFailedV1    = "match.drive.select.failed.v1"

	ScorecardImportRequestedV1 = "match.scorecard.import.requested.v1"
	ScorecardImportFailedV1    = "match.scorecard.import.failed.v1"

	EvaluationRequestedV1 = "match.evaluation.requested.v1"
	EvaluationFailedV1    = "match.evaluation.failed.v1"

	RoundLockRequestedV1 = "match.round.lock.requested.v1"
	RoundLockFailedV1    = "match.round.lock.failed.v1"
	RoundLockedV1        = "match.round.locked.v1"

	StatusUpdatedV1 = "match.status.updated.v1"
	MatchClosedV1   = "match.closed.v1"
	MatchReopenedV1 = "match.reopened.v1"
)

// HoleScoreSubmitRequestedPayloadV1 carries one raw hole entry. A nil Gross
// clears the slot (a scorer backing out a mistake).
type HoleScoreSubmitRequestedPayloadV1 struct {
	MatchID    uuid.UUID      `json:"match_id"`
	HoleNumber int            `json:"hole_number"`
	Team       matchplay.Team `json:"team"`
	PlayerSlot *int           `json:"player_slot,omitempty"`
	Gross      *int           `json:"gross"`
}

// DriveSelectRequestedPayloadV1 toggles the drive selection for a hole.
type DriveSelectRequestedPayloadV1 struct {
	MatchID    uuid.UUID      `json:"match_id"`
	HoleNumber int            `json:"hole_number"`
	Team       matchplay.Team `json:"team"`
	PlayerSlot *int           `json:"player_slot"`
}

// ScorecardImportRequestedPayloadV1 carries an uploaded XLSX scorecard for
// bulk hole entry.
type ScorecardImportRequestedPayloadV1 struct {
	MatchID  uuid.UUID `json:"match_id"`
	FileName string    `json:"file_name"`
	Data     []byte    `json:"data"`
}

// EvaluationRequestedPayloadV1 asks for a wholesale recompute of a match.
type EvaluationRequestedPayloadV1 struct {
	MatchID uuid.UUID `json:"match_id"`
}

// RoundLockRequestedPayloadV1 asks for a round to stop accepting entries. The
// recap module's scheduler publishes it when a round's lock time arrives.
type RoundLockRequestedPayloadV1 struct {
	RoundID uuid.UUID `json:"round_id"`
}

// RoundLockedPayloadV1 announces a locked round.
type RoundLockedPayloadV1 struct {
	RoundID uuid.UUID `json:"round_id"`
}

// MatchSnapshotV1 is the full state consumers need to derive facts and
// recaps without reading the match module's tables.
type MatchSnapshotV1 struct {
	MatchID      uuid.UUID                            `json:"match_id"`
	RoundID      uuid.UUID                            `json:"round_id"`
	Series       string                               `json:"series,omitempty"`
	Format       matchplay.Format                     `json:"format"`
	Course       matchplay.Course                     `json:"course"`
	CoursePar    int                                  `json:"course_par"`
	TrackDrives  bool                                 `json:"track_drives"`
	RoundLocksAt *time.Time                           `json:"round_locks_at,omitempty"`
	TeamAPlayers []matchplay.RosterEntry              `json:"team_a_players"`
	TeamBPlayers []matchplay.RosterEntry              `json:"team_b_players"`
	Holes        [matchplay.Holes]matchplay.HoleInput `json:"holes"`
	Status       matchplay.MatchStatus                `json:"status"`
	Result       *matchplay.MatchResult               `json:"result,omitempty"`
}

// StatusUpdatedPayloadV1 announces a recomputed match status.
type StatusUpdatedPayloadV1 struct {
	MatchID uuid.UUID              `json:"match_id"`
	RoundID uuid.UUID              `json:"round_id"`
	Status  matchplay.MatchStatus  `json:"status"`
	Result  *matchplay.MatchResult `json:"result,omitempty"`

	// Advisory drive shortfalls, populated for drive-tracked formats.
	TeamADrivesNeeded [2]int `json:"team_a_drives_needed"`
	TeamBDrivesNeeded [2]int `json:"team_b_drives_needed"`
}

// MatchClosedPayloadV1 announces a match transitioning into a decided state.
type MatchClosedPayloadV1 struct {
	Snapshot MatchSnapshotV1 `json:"snapshot"`
}

// MatchReopenedPayloadV1 announces a previously closed match going live again
// after a correction.
type MatchReopenedPayloadV1 struct {
	MatchID uuid.UUID `json:"match_id"`
	RoundID uuid.UUID `json:"round_id"`
}

// OperationFailedPayloadV1 is the shared failure shape for match operations.
type OperationFailedPayloadV1 struct {
	MatchID uuid.UUID `json:"match_id"`
	Reason  string    `json:"reason"`
}
