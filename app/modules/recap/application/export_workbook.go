package recapservice

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	recapdomain "github.com/Harbor-Links-Club/matchplay-bot/app/modules/recap/domain"
)

const (
	standingsSheet = "Standings"
	leadersSheet   = "Leaders"
	holesSheet     = "Hole Averages"
)

// ExportRecapWorkbook renders the stored recap as an XLSX workbook with the
// vs-all standings, the leaderboards, and the per-hole averages.
func (s *RecapService) ExportRecapWorkbook(ctx context.Context, roundID uuid.UUID) ([]byte, error) {
	recap, err := s.repo.GetRecap(ctx, roundID)
	if err != nil {
		return nil, err
	}

	data, err := renderWorkbook(recap)
	if err != nil {
		return nil, fmt.Errorf("failed to render recap workbook for round %s: %w", roundID, err)
	}

	s.metrics.RecordRecapExported(ctx, roundID)
	return data, nil
}

func renderWorkbook(recap *recapdomain.RoundRecap) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", standingsSheet)
	if _, err := f.NewSheet(leadersSheet); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet(holesSheet); err != nil {
		return nil, err
	}

	if err := writeStandings(f, recap); err != nil {
		return nil, err
	}
	if err := writeLeaders(f, recap); err != nil {
		return nil, err
	}
	if err := writeHoleAverages(f, recap); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeStandings(f *excelize.File, recap *recapdomain.RoundRecap) error {
	if err := writeRow(f, standingsSheet, 1, "Competitor", "W", "L", "T", "Total Net", "Holes"); err != nil {
		return err
	}
	for i, record := range recap.VsAll {
		err := writeRow(f, standingsSheet, i+2,
			record.Name, record.Wins, record.Losses, record.Ties, record.TotalNet, record.HolesCompleted)
		if err != nil {
			return err
		}
	}
	return nil
}

func writeLeaders(f *excelize.File, recap *recapdomain.RoundRecap) error {
	row := 1
	for _, board := range []struct {
		title   string
		entries []recapdomain.LeaderEntry
	}{
		{"Birdies", recap.BirdieLeaders},
		{"Eagles or Better", recap.EagleLeaders},
	} {
		if err := writeRow(f, leadersSheet, row, board.title, "Count"); err != nil {
			return err
		}
		row++
		for _, entry := range board.entries {
			if err := writeRow(f, leadersSheet, row, entry.PlayerID, entry.Count); err != nil {
				return err
			}
			row++
		}
		row++
	}
	return nil
}

func writeHoleAverages(f *excelize.File, recap *recapdomain.RoundRecap) error {
	if err := writeRow(f, holesSheet, 1, "Hole", "Par", "Avg Gross", "Avg Net", "Vs Par", "Samples"); err != nil {
		return err
	}
	for i, avg := range recap.HoleAverages {
		vsPar := ""
		if avg.Samples > 0 {
			vsPar = fmt.Sprintf("%+.2f", avg.AverageGross-float64(avg.Par))
		}
		err := writeRow(f, holesSheet, i+2,
			avg.Number, avg.Par, avg.AverageGross, avg.AverageNet, vsPar, avg.Samples)
		if err != nil {
			return err
		}
	}
	if err := writeRow(f, holesSheet, 21, "Easiest", recap.EasiestHole); err != nil {
		return err
	}
	return writeRow(f, holesSheet, 22, "Hardest", recap.HardestHole)
}

func writeRow(f *excelize.File, sheet string, row int, values ...any) error {
	for col, value := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, value); err != nil {
			return err
		}
	}
	return nil
}
