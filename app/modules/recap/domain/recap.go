package recapdomain

import (
	"sort"
	"strings"

	"github.com/google/uuid"

	matchplay "github.com/Harbor-Links-Club/matchplay-bot/app/modules/match/domain"
)

// MatchInput is one closed match contributing to a round recap.
type MatchInput struct {
	MatchID      uuid.UUID
	Format       matchplay.Format
	Course       matchplay.Course
	TeamAPlayers []matchplay.RosterEntry
	TeamBPlayers []matchplay.RosterEntry
	Holes        [matchplay.Holes]matchplay.HoleInput
	Status       matchplay.MatchStatus
}

// VsAllRecord is a competitor's simulated round-robin tally: a head-to-head
// on round net totals against every other competitor, independent of who they
// actually played.
type VsAllRecord struct {
	CompetitorID   string   `json:"competitor_id"`
	Name           string   `json:"name"`
	PlayerIDs      []string `json:"player_ids"`
	Wins           int      `json:"wins"`
	Losses         int      `json:"losses"`
	Ties           int      `json:"ties"`
	TotalNet       int      `json:"total_net"`
	HolesCompleted int      `json:"holes_completed"`
}

// LeaderEntry is one row of a birdie or eagle leaderboard.
type LeaderEntry struct {
	PlayerID string `json:"player_id"`
	Count    int    `json:"count"`
}

// HoleAverage is the round-wide scoring summary for one hole.
type HoleAverage struct {
	Number       int     `json:"number"`
	Par          int     `json:"par"`
	AverageGross float64 `json:"average_gross"`
	AverageNet   float64 `json:"average_net"`
	LowestGross  *int    `json:"lowest_gross,omitempty"`
	HighestGross *int    `json:"highest_gross,omitempty"`
	Samples      int     `json:"samples"`
}

// RoundRecap is the full derived recap for a round.
type RoundRecap struct {
	RoundID       uuid.UUID                    `json:"round_id"`
	MatchCount    int                          `json:"match_count"`
	VsAll         []VsAllRecord                `json:"vs_all"`
	BirdieLeaders []LeaderEntry                `json:"birdie_leaders"`
	EagleLeaders  []LeaderEntry                `json:"eagle_leaders"`
	HoleAverages  [matchplay.Holes]HoleAverage `json:"hole_averages"`
	EasiestHole   int                          `json:"easiest_hole"`
	HardestHole   int                          `json:"hardest_hole"`
}

// competitorRound is one competitor's per-hole line for the round: players in
// singles, teams in the team formats. A nil entry is an uncompleted hole.
type competitorRound struct {
	id        string
	name      string
	playerIDs []string
	gross     [matchplay.Holes]*int
	net       [matchplay.Holes]*int
	pars      [matchplay.Holes]int
}

// BuildRecap computes the round recap across all closed matches of a round.
func BuildRecap(roundID uuid.UUID, matches []MatchInput) RoundRecap {
	recap := RoundRecap{RoundID: roundID, MatchCount: len(matches)}

	competitors := extractCompetitors(matches)

	recap.VsAll = simulateVsAll(competitors)
	recap.BirdieLeaders, recap.EagleLeaders = leaderboards(matches)
	recap.HoleAverages, recap.EasiestHole, recap.HardestHole = holeAverages(competitors)

	return recap
}

func extractCompetitors(matches []MatchInput) []competitorRound {
	var competitors []competitorRound
	seen := map[string]bool{}

	for _, m := range matches {
		resolver := matchplay.ResolverFor(m.Format)

		for _, side := range []struct {
			team   matchplay.Team
			roster []matchplay.RosterEntry
		}{
			{matchplay.TeamA, m.TeamAPlayers},
			{matchplay.TeamB, m.TeamBPlayers},
		} {
			competitor := newCompetitor(m.Format, side.roster)
			if competitor.id == "" || seen[competitor.id] {
				continue
			}
			seen[competitor.id] = true

			for i := 0; i < matchplay.Holes; i++ {
				competitor.pars[i] = m.Course.Par(i)
				resolution := resolver.ResolveHole(m.Holes[i], m.TeamAPlayers, m.TeamBPlayers, i)
				if !resolution.Complete {
					continue
				}
				net := resolution.TeamA
				if side.team == matchplay.TeamB {
					net = resolution.TeamB
				}
				n := *net
				competitor.net[i] = &n

				if g := teamGross(m.Format, m.Holes[i], side.team, side.roster, i); g != nil {
					competitor.gross[i] = g
				}
			}

			competitors = append(competitors, competitor)
		}
	}

	return competitors
}

func newCompetitor(format matchplay.Format, roster []matchplay.RosterEntry) competitorRound {
	if len(roster) == 0 {
		return competitorRound{}
	}

	ids := make([]string, 0, len(roster))
	names := make([]string, 0, len(roster))
	for _, entry := range roster {
		ids = append(ids, entry.PlayerID)
		name := entry.PlayerName
		if name == "" {
			name = entry.PlayerID
		}
		names = append(names, name)
	}

	if format == matchplay.FormatSingles {
		return competitorRound{id: ids[0], name: names[0], playerIDs: ids[:1]}
	}

	sorted := append([]string(nil), ids...)
	sort.Strings(sorted)
	return competitorRound{
		id:        strings.Join(sorted, "+"),
		name:      strings.Join(names, " / "),
		playerIDs: ids,
	}
}

// teamGross resolves the comparable gross ball for a hole: the player's own
// ball in singles, the best gross of the pair formats, the team ball in a
// scramble.
func teamGross(format matchplay.Format, hole matchplay.HoleInput, team matchplay.Team, roster []matchplay.RosterEntry, holeIdx int) *int {
	if format.TeamScored() {
		if team == matchplay.TeamB {
			return copyInt(hole.TeamBGross)
		}
		return copyInt(hole.TeamAGross)
	}

	var best *int
	for slot := 0; slot < format.PlayersPerTeam(); slot++ {
		ball := matchplay.PlayerNet(hole, team, roster, slot, holeIdx, false)
		if ball == nil {
			return nil
		}
		if best == nil || *ball < *best {
			best = ball
		}
	}
	return best
}

func copyInt(v *int) *int {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

// simulateVsAll plays every competitor's completed-hole net total against
// every other competitor's: lower total wins the simulated head-to-head,
// equal totals tie.
func simulateVsAll(competitors []competitorRound) []VsAllRecord {
	records := make([]VsAllRecord, len(competitors))
	totals := make([]int, len(competitors))

	for i, competitor := range competitors {
		total, completed := 0, 0
		for _, net := range competitor.net {
			if net != nil {
				total += *net
				completed++
			}
		}
		totals[i] = total
		records[i] = VsAllRecord{
			CompetitorID:   competitor.id,
			Name:           competitor.name,
			PlayerIDs:      competitor.playerIDs,
			TotalNet:       total,
			HolesCompleted: completed,
		}
	}

	for i := range competitors {
		for j := range competitors {
			if i == j {
				continue
			}
			switch {
			case totals[i] < totals[j]:
				records[i].Wins++
			case totals[i] > totals[j]:
				records[i].Losses++
			default:
				records[i].Ties++
			}
		}
	}

	sort.SliceStable(records, func(i, j int) bool {
		if records[i].Wins != records[j].Wins {
			return records[i].Wins > records[j].Wins
		}
		if records[i].TotalNet != records[j].TotalNet {
			return records[i].TotalNet < records[j].TotalNet
		}
		return records[i].CompetitorID < records[j].CompetitorID
	})

	return records
}

// leaderboards counts birdies and eagles per player on gross. Scramble
// credits the team ball to both players; there is no other ball to score.
func leaderboards(matches []MatchInput) (birdies, eagles []LeaderEntry) {
	birdieCounts := map[string]int{}
	eagleCounts := map[string]int{}

	for _, m := range matches {
		for _, side := range []struct {
			team   matchplay.Team
			roster []matchplay.RosterEntry
		}{
			{matchplay.TeamA, m.TeamAPlayers},
			{matchplay.TeamB, m.TeamBPlayers},
		} {
			for slot, entry := range side.roster {
				for i := 0; i < matchplay.Holes; i++ {
					var gross *int
					if m.Format.TeamScored() {
						if side.team == matchplay.TeamB {
							gross = m.Holes[i].TeamBGross
						} else {
							gross = m.Holes[i].TeamAGross
						}
					} else {
						gross = matchplay.PlayerNet(m.Holes[i], side.team, side.roster, slot, i, false)
					}
					if gross == nil {
						continue
					}

					par := m.Course.Par(i)
					switch {
					case *gross <= par-2:
						eagleCounts[entry.PlayerID]++
					case *gross == par-1:
						birdieCounts[entry.PlayerID]++
					}
				}
			}
		}
	}

	return sortedLeaders(birdieCounts), sortedLeaders(eagleCounts)
}

// sortedLeaders orders by count descending, then stable by player id.
func sortedLeaders(counts map[string]int) []LeaderEntry {
	leaders := make([]LeaderEntry, 0, len(counts))
	for playerID, count := range counts {
		leaders = append(leaders, LeaderEntry{PlayerID: playerID, Count: count})
	}
	sort.Slice(leaders, func(i, j int) bool {
		if leaders[i].Count != leaders[j].Count {
			return leaders[i].Count > leaders[j].Count
		}
		return leaders[i].PlayerID < leaders[j].PlayerID
	})
	return leaders
}

func holeAverages(competitors []competitorRound) (averages [matchplay.Holes]HoleAverage, easiest, hardest int) {
	bestDelta, worstDelta := 0.0, 0.0

	for i := 0; i < matchplay.Holes; i++ {
		avg := HoleAverage{Number: i + 1, Par: 4}
		grossSum, netSum := 0, 0

		for _, competitor := range competitors {
			avg.Par = competitor.pars[i]
			gross := competitor.gross[i]
			net := competitor.net[i]
			if gross == nil || net == nil {
				continue
			}

			grossSum += *gross
			netSum += *net
			avg.Samples++
			if avg.LowestGross == nil || *gross < *avg.LowestGross {
				avg.LowestGross = copyInt(gross)
			}
			if avg.HighestGross == nil || *gross > *avg.HighestGross {
				avg.HighestGross = copyInt(gross)
			}
		}

		if avg.Samples > 0 {
			avg.AverageGross = float64(grossSum) / float64(avg.Samples)
			avg.AverageNet = float64(netSum) / float64(avg.Samples)

			delta := avg.AverageGross - float64(avg.Par)
			if easiest == 0 || delta < bestDelta {
				bestDelta = delta
				easiest = avg.Number
			}
			if hardest == 0 || delta > worstDelta {
				worstDelta = delta
				hardest = avg.Number
			}
		}

		averages[i] = avg
	}

	return averages, easiest, hardest
}
