package statsdomain

import (
	"fmt"

	"github.com/google/uuid"

	matchplay "github.com/Harbor-Links-Club/matchplay-bot/app/modules/match/domain"
)

// comebackThreshold is the deficit at the turn that qualifies a win as a
// comeback (and a lead as blown when squandered).
const comebackThreshold = 3

// MatchContext is everything fact generation needs about a closed match.
type MatchContext struct {
	MatchID      uuid.UUID
	RoundID      uuid.UUID
	Series       string
	Format       matchplay.Format
	CoursePar    int
	TrackDrives  bool
	TeamAPlayers []matchplay.RosterEntry
	TeamBPlayers []matchplay.RosterEntry
	Holes        [matchplay.Holes]matchplay.HoleInput
	Status       matchplay.MatchStatus
	Result       matchplay.MatchResult
}

// PlayerMatchFact is the immutable per-player snapshot of a closed match.
// Regenerating facts for the same match replaces the prior set wholesale.
type PlayerMatchFact struct {
	MatchID  uuid.UUID        `json:"match_id"`
	RoundID  uuid.UUID        `json:"round_id"`
	Series   string           `json:"series,omitempty"`
	PlayerID string           `json:"player_id"`
	Team     matchplay.Team   `json:"team"`
	Format   matchplay.Format `json:"format"`

	Outcome       matchplay.Outcome `json:"outcome"`
	DisplayMargin string            `json:"display_margin"`
	FinalThru     int               `json:"final_thru"`
	HolesWon      int               `json:"holes_won"`
	HolesLost     int               `json:"holes_lost"`
	HolesHalved   int               `json:"holes_halved"`

	GrossTotal   int `json:"gross_total"`
	NetTotal     int `json:"net_total"`
	HolesScored  int `json:"holes_scored"`
	StrokesVsPar int `json:"strokes_vs_par"`

	LeadChanges    int  `json:"lead_changes"`
	WasNeverBehind bool `json:"was_never_behind"`
	ComebackWin    bool `json:"comeback_win"`
	BlownLead      bool `json:"blown_lead"`
	WinningHole    int  `json:"winning_hole"`

	BallsUsed  int `json:"balls_used"`
	DrivesUsed int `json:"drives_used"`
}

// GenerateFacts derives one fact per rostered player from a closed match. It
// replays the same per-hole comparisons as the status engine, so the counts
// always agree with the published status. Returns nothing for a live match:
// facts either exist complete or not at all.
func GenerateFacts(m MatchContext) []PlayerMatchFact {
	if !m.Status.Closed {
		return nil
	}

	resolver := matchplay.ResolverFor(m.Format)
	thru := m.Status.Thru

	holesWonA, holesLostA := 0, 0
	for i := 0; i < thru && i < matchplay.Holes; i++ {
		resolution := resolver.ResolveHole(m.Holes[i], m.TeamAPlayers, m.TeamBPlayers, i)
		if !resolution.Complete {
			continue
		}
		switch {
		case *resolution.TeamA < *resolution.TeamB:
			holesWonA++
		case *resolution.TeamB < *resolution.TeamA:
			holesLostA++
		}
	}

	momentum := analyzeMomentum(m.Status)
	ledger := matchplay.NewDriveLedger(m.Holes)

	facts := make([]PlayerMatchFact, 0, len(m.TeamAPlayers)+len(m.TeamBPlayers))
	for _, side := range []struct {
		team   matchplay.Team
		roster []matchplay.RosterEntry
	}{
		{matchplay.TeamA, m.TeamAPlayers},
		{matchplay.TeamB, m.TeamBPlayers},
	} {
		won, lost := holesWonA, holesLostA
		if side.team == matchplay.TeamB {
			won, lost = holesLostA, holesWonA
		}

		for slot, entry := range side.roster {
			fact := PlayerMatchFact{
				MatchID:       m.MatchID,
				RoundID:       m.RoundID,
				Series:        m.Series,
				PlayerID:      entry.PlayerID,
				Team:          side.team,
				Format:        m.Format,
				Outcome:       m.Result.WinnerFor(side.team),
				DisplayMargin: m.Result.DisplayMargin,
				FinalThru:     thru,
				HolesWon:      won,
				HolesLost:     lost,
				HolesHalved:   thru - won - lost,
				WinningHole:   thru,
			}

			fact.GrossTotal, fact.NetTotal, fact.HolesScored = scoringTotals(m, side.team, slot)
			fact.StrokesVsPar = fact.GrossTotal - m.CoursePar

			fact.LeadChanges = momentum.leadChanges
			fact.WasNeverBehind = momentum.neverBehind(side.team)
			fact.ComebackWin = momentum.comebackWin(side.team, fact.Outcome)
			fact.BlownLead = momentum.blownLead(side.team, fact.Outcome)

			if !m.Format.TeamScored() && m.Format.PlayersPerTeam() == 2 {
				fact.BallsUsed = ballsUsed(m, resolver, side.team, side.roster, slot, thru)
			}
			if m.TrackDrives && m.Format.TracksDrives() {
				fact.DrivesUsed = ledger.DrivesUsed(side.team)[slot]
			}

			facts = append(facts, fact)
		}
	}

	return facts
}

// scoringTotals sums a player's gross and net over holes with an entry. Team
// formats (scramble) total the single team ball instead; shamble players
// total gross with no stroke subtraction, matching how their holes resolve.
func scoringTotals(m MatchContext, team matchplay.Team, slot int) (gross, net, holesScored int) {
	roster := m.TeamAPlayers
	if team == matchplay.TeamB {
		roster = m.TeamBPlayers
	}

	for i := 0; i < matchplay.Holes; i++ {
		if m.Format.TeamScored() {
			ball := m.Holes[i].TeamAGross
			if team == matchplay.TeamB {
				ball = m.Holes[i].TeamBGross
			}
			if ball == nil {
				continue
			}
			gross += *ball
			net += *ball
			holesScored++
			continue
		}

		applyStrokes := m.Format != matchplay.FormatTwoManShamble
		grossBall := matchplay.PlayerNet(m.Holes[i], team, roster, slot, i, false)
		if grossBall == nil {
			continue
		}
		netBall := matchplay.PlayerNet(m.Holes[i], team, roster, slot, i, applyStrokes)
		gross += *grossBall
		net += *netBall
		holesScored++
	}
	return gross, net, holesScored
}

// ballsUsed counts holes where the player's ball equals the team's resolved
// best score. Ties count for both players, so a team's combined usage can
// exceed the hole count; that is the established behavior, left as is.
func ballsUsed(m MatchContext, resolver matchplay.ScoreResolver, team matchplay.Team, roster []matchplay.RosterEntry, slot, thru int) int {
	applyStrokes := m.Format != matchplay.FormatTwoManShamble
	used := 0
	for i := 0; i < thru && i < matchplay.Holes; i++ {
		resolution := resolver.ResolveHole(m.Holes[i], m.TeamAPlayers, m.TeamBPlayers, i)
		if !resolution.Complete {
			continue
		}
		teamScore := resolution.TeamA
		if team == matchplay.TeamB {
			teamScore = resolution.TeamB
		}
		ball := matchplay.PlayerNet(m.Holes[i], team, roster, slot, i, applyStrokes)
		if ball != nil && teamScore != nil && *ball == *teamScore {
			used++
		}
	}
	return used
}

// momentumProfile captures the margin-history readings shared by both sides'
// facts.
type momentumProfile struct {
	leadChanges  int
	minMargin    int
	maxMargin    int
	marginAtTurn int
}

func analyzeMomentum(status matchplay.MatchStatus) momentumProfile {
	profile := momentumProfile{}

	lastSign := 0
	for i, entry := range status.MarginHistory {
		if !entry.Complete {
			continue
		}
		if entry.Margin < profile.minMargin {
			profile.minMargin = entry.Margin
		}
		if entry.Margin > profile.maxMargin {
			profile.maxMargin = entry.Margin
		}
		if i < 9 {
			profile.marginAtTurn = entry.Margin
		}

		sign := 0
		switch {
		case entry.Margin > 0:
			sign = 1
		case entry.Margin < 0:
			sign = -1
		}
		if sign != 0 {
			if lastSign != 0 && sign != lastSign {
				profile.leadChanges++
			}
			lastSign = sign
		}
	}
	return profile
}

func (p momentumProfile) neverBehind(team matchplay.Team) bool {
	if team == matchplay.TeamA {
		return p.minMargin >= 0
	}
	return p.maxMargin <= 0
}

// comebackWin: down by the threshold or more at the start of the back nine
// and still won.
func (p momentumProfile) comebackWin(team matchplay.Team, outcome matchplay.Outcome) bool {
	return outcome == matchplay.OutcomeWin && p.signedAtTurn(team) <= -comebackThreshold
}

// blownLead: up by the threshold or more at the turn and did not win.
func (p momentumProfile) blownLead(team matchplay.Team, outcome matchplay.Outcome) bool {
	return outcome != matchplay.OutcomeWin && p.signedAtTurn(team) >= comebackThreshold
}

func (p momentumProfile) signedAtTurn(team matchplay.Team) int {
	if team == matchplay.TeamB {
		return -p.marginAtTurn
	}
	return p.marginAtTurn
}

// FormatStrokesVsPar renders a vs-par value the way scoreboards do: "E" for
// level, signed otherwise. Presentation only; stored values stay numeric.
func FormatStrokesVsPar(strokes int) string {
	if strokes == 0 {
		return "E"
	}
	return fmt.Sprintf("%+d", strokes)
}
