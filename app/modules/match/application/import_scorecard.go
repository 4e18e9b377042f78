package matchservice

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	matchevents "github.com/Harbor-Links-Club/matchplay-bot/app/events/matchevents"
	matchplay "github.com/Harbor-Links-Club/matchplay-bot/app/modules/match/domain"
	matchdb "github.com/Harbor-Links-Club/matchplay-bot/app/modules/match/infrastructure/repositories"
	"github.com/Harbor-Links-Club/matchplay-bot/app/shared/attr"
	"github.com/Harbor-Links-Club/matchplay-bot/app/shared/results"
)

// ImportScorecard bulk-applies hole entries parsed from an uploaded XLSX
// scorecard, then re-evaluates the match once.
//
// Expected layout, first sheet, one hole per column:
//
//	Hole | 1 | 2 | ... | 18
//	Par  | 4 | 3 | ... | 5
//	<player or team id> | gross | gross | ...
//
// Row labels are matched against roster player ids, or "team_a"/"team_b" for
// the scramble team ball. Blank cells leave a hole unentered.
func (s *MatchService) ImportScorecard(ctx context.Context, payload matchevents.ScorecardImportRequestedPayloadV1) (results.OperationResult, error) {
	return s.serviceWrapper(ctx, "ImportScorecard", payload.MatchID, func(ctx context.Context) (results.OperationResult, error) {
		fail := func(reason string) (results.OperationResult, error) {
			return results.OperationResult{
				Failure: &matchevents.OperationFailedPayloadV1{MatchID: payload.MatchID, Reason: reason},
			}, nil
		}

		match, round, course, err := s.loadMatchContext(ctx, payload.MatchID)
		if err != nil {
			if errors.Is(err, matchdb.ErrMatchNotFound) {
				return fail(ReasonMatchNotFound)
			}
			return results.OperationResult{}, err
		}

		if round.Locked {
			return fail(ReasonRoundLocked)
		}

		imported, err := parseScorecard(payload.Data, match, course)
		if err != nil {
			s.logger.WarnContext(ctx, "Rejected unparseable scorecard",
				attr.MatchID("match_id", match.ID),
				attr.String("file_name", payload.FileName),
				attr.Error(err),
				attr.ExtractCorrelationID(ctx),
			)
			return fail(ReasonBadScorecard)
		}

		if err := s.repo.UpdateHoles(ctx, match.ID, match.Holes); err != nil {
			return results.OperationResult{}, err
		}
		s.metrics.RecordScorecardImported(ctx, match.ID, imported)

		outcome, err := s.evaluateAndPersist(ctx, match, round, course)
		if err != nil {
			return results.OperationResult{}, err
		}
		return results.OperationResult{Success: &outcome}, nil
	})
}

// parseScorecard applies the workbook's rows onto the match's hole inputs and
// returns the number of cells imported.
func parseScorecard(data []byte, match *matchplay.Match, course *matchplay.Course) (int, error) {
	book, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return 0, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer book.Close()

	sheets := book.GetSheetList()
	if len(sheets) == 0 {
		return 0, errors.New("workbook has no sheets")
	}
	rows, err := book.GetRows(sheets[0])
	if err != nil {
		return 0, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}
	if len(rows) < 3 {
		return 0, errors.New("scorecard needs a hole row, a par row, and at least one score row")
	}

	if err := validateParRow(rows[1], course); err != nil {
		return 0, err
	}

	imported := 0
	for _, row := range rows[2:] {
		if len(row) == 0 {
			continue
		}
		label := strings.TrimSpace(row[0])
		if label == "" {
			continue
		}

		team, slot, ok := locateRow(label, match)
		if !ok {
			return 0, fmt.Errorf("row label %q matches no roster player", label)
		}

		for holeIdx := 0; holeIdx < matchplay.Holes; holeIdx++ {
			cell := ""
			if holeIdx+1 < len(row) {
				cell = strings.TrimSpace(row[holeIdx+1])
			}
			if cell == "" {
				continue
			}
			gross, err := strconv.Atoi(cell)
			if err != nil || gross < 1 {
				return 0, fmt.Errorf("bad gross %q for %s hole %d", cell, label, holeIdx+1)
			}
			g := gross
			if err := applyHoleEntry(&match.Holes[holeIdx], match.Format, team, slot, &g); err != nil {
				return 0, err
			}
			imported++
		}
	}

	return imported, nil
}

func validateParRow(row []string, course *matchplay.Course) error {
	if len(row) == 0 || !strings.EqualFold(strings.TrimSpace(row[0]), "par") {
		return errors.New("second row must be the par row")
	}
	for holeIdx := 0; holeIdx < matchplay.Holes && holeIdx+1 < len(row); holeIdx++ {
		cell := strings.TrimSpace(row[holeIdx+1])
		if cell == "" {
			continue
		}
		par, err := strconv.Atoi(cell)
		if err != nil {
			return fmt.Errorf("bad par %q for hole %d", cell, holeIdx+1)
		}
		if par != course.Par(holeIdx) {
			return fmt.Errorf("par mismatch on hole %d: scorecard says %d, course says %d", holeIdx+1, par, course.Par(holeIdx))
		}
	}
	return nil
}

// locateRow resolves a row label to a team and player slot. Scramble cards
// use the team ids directly.
func locateRow(label string, match *matchplay.Match) (matchplay.Team, int, bool) {
	if match.Format.TeamScored() {
		switch matchplay.Team(strings.ToLower(label)) {
		case matchplay.TeamA:
			return matchplay.TeamA, 0, true
		case matchplay.TeamB:
			return matchplay.TeamB, 0, true
		}
		return "", 0, false
	}

	for slot, entry := range match.TeamAPlayers {
		if entry.PlayerID == label {
			return matchplay.TeamA, slot, true
		}
	}
	for slot, entry := range match.TeamBPlayers {
		if entry.PlayerID == label {
			return matchplay.TeamB, slot, true
		}
	}
	return "", 0, false
}
