package statsdomain

import matchplay "github.com/Harbor-Links-Club/matchplay-bot/app/modules/match/domain"

// PlayerStats is the running aggregate for one player, optionally scoped to a
// series. It is always rebuilt by a full fold over the player's current fact
// set; facts are replaced on re-close, so an incremental delta would
// double-count corrected matches.
type PlayerStats struct {
	PlayerID string `json:"player_id"`
	Series   string `json:"series,omitempty"`

	MatchesPlayed int     `json:"matches_played"`
	Wins          int     `json:"wins"`
	Losses        int     `json:"losses"`
	Halves        int     `json:"halves"`
	Points        float64 `json:"points"`

	HolesWon    int `json:"holes_won"`
	HolesLost   int `json:"holes_lost"`
	HolesHalved int `json:"holes_halved"`

	GrossTotal   int `json:"gross_total"`
	NetTotal     int `json:"net_total"`
	HolesScored  int `json:"holes_scored"`
	StrokesVsPar int `json:"strokes_vs_par"`

	LeadChanges        int `json:"lead_changes"`
	ComebackWins       int `json:"comeback_wins"`
	BlownLeads         int `json:"blown_leads"`
	NeverBehindMatches int `json:"never_behind_matches"`

	BallsUsed  int `json:"balls_used"`
	DrivesUsed int `json:"drives_used"`
}

// AggregateStats folds a player's complete fact set into fresh totals. A win
// is worth one point, a halve half a point.
func AggregateStats(playerID, series string, facts []PlayerMatchFact) PlayerStats {
	stats := PlayerStats{PlayerID: playerID, Series: series}

	for _, fact := range facts {
		if fact.PlayerID != playerID {
			continue
		}
		if series != "" && fact.Series != series {
			continue
		}

		stats.MatchesPlayed++
		switch fact.Outcome {
		case matchplay.OutcomeWin:
			stats.Wins++
			stats.Points++
		case matchplay.OutcomeLoss:
			stats.Losses++
		case matchplay.OutcomeHalve:
			stats.Halves++
			stats.Points += 0.5
		}

		stats.HolesWon += fact.HolesWon
		stats.HolesLost += fact.HolesLost
		stats.HolesHalved += fact.HolesHalved

		stats.GrossTotal += fact.GrossTotal
		stats.NetTotal += fact.NetTotal
		stats.HolesScored += fact.HolesScored
		stats.StrokesVsPar += fact.StrokesVsPar

		stats.LeadChanges += fact.LeadChanges
		if fact.ComebackWin {
			stats.ComebackWins++
		}
		if fact.BlownLead {
			stats.BlownLeads++
		}
		if fact.WasNeverBehind {
			stats.NeverBehindMatches++
		}

		stats.BallsUsed += fact.BallsUsed
		stats.DrivesUsed += fact.DrivesUsed
	}

	return stats
}
