package matchplay

// HoleResolution is a resolved, comparable per-hole team score pair. Scores
// are nil and Complete is false until every required entry for the format is
// present; partial holes never contribute to the match margin.
type HoleResolution struct {
	TeamA    *int
	TeamB    *int
	Complete bool
}

// ScoreResolver converts one hole's raw input into comparable team scores for
// a given format. Implementations are pure; one is selected per match rather
// than re-branching on the format tag per hole.
type ScoreResolver interface {
	Format() Format
	ResolveHole(hole HoleInput, teamA, teamB []RosterEntry, holeIdx int) HoleResolution
}

// ResolverFor returns the resolver for a format. Unknown formats fall back to
// singles resolution, treating the data-quality issue as an upstream concern.
func ResolverFor(format Format) ScoreResolver {
	switch format {
	case FormatTwoManBestBall:
		return bestBallResolver{}
	case FormatTwoManShamble:
		return shambleResolver{}
	case FormatTwoManScramble:
		return scrambleResolver{}
	default:
		return singlesResolver{}
	}
}

// playerGross fetches the slot-th gross for a roster slot, treating missing
// roster entries the same as unentered scores.
func playerGross(grosses [2]*int, roster []RosterEntry, slot int) (*int, *RosterEntry) {
	if slot >= len(roster) {
		return nil, nil
	}
	return grosses[slot], &roster[slot]
}

type singlesResolver struct{}

func (singlesResolver) Format() Format { return FormatSingles }

func (singlesResolver) ResolveHole(hole HoleInput, teamA, teamB []RosterEntry, holeIdx int) HoleResolution {
	aGross, aEntry := playerGross(hole.TeamAPlayerGross, teamA, 0)
	bGross, bEntry := playerGross(hole.TeamBPlayerGross, teamB, 0)
	if aGross == nil || bGross == nil || aEntry == nil || bEntry == nil {
		return HoleResolution{}
	}

	aNet := *aGross - aEntry.StrokeAt(holeIdx)
	bNet := *bGross - bEntry.StrokeAt(holeIdx)
	return HoleResolution{TeamA: &aNet, TeamB: &bNet, Complete: true}
}

type bestBallResolver struct{}

func (bestBallResolver) Format() Format { return FormatTwoManBestBall }

func (bestBallResolver) ResolveHole(hole HoleInput, teamA, teamB []RosterEntry, holeIdx int) HoleResolution {
	aBest, aOK := bestOfTwo(hole.TeamAPlayerGross, teamA, holeIdx, true)
	bBest, bOK := bestOfTwo(hole.TeamBPlayerGross, teamB, holeIdx, true)
	if !aOK || !bOK {
		return HoleResolution{}
	}
	return HoleResolution{TeamA: &aBest, TeamB: &bBest, Complete: true}
}

type shambleResolver struct{}

func (shambleResolver) Format() Format { return FormatTwoManShamble }

// Shamble scores the better ball played from the chosen drive; handicap
// strokes do not apply.
func (shambleResolver) ResolveHole(hole HoleInput, teamA, teamB []RosterEntry, holeIdx int) HoleResolution {
	aBest, aOK := bestOfTwo(hole.TeamAPlayerGross, teamA, holeIdx, false)
	bBest, bOK := bestOfTwo(hole.TeamBPlayerGross, teamB, holeIdx, false)
	if !aOK || !bOK {
		return HoleResolution{}
	}
	return HoleResolution{TeamA: &aBest, TeamB: &bBest, Complete: true}
}

type scrambleResolver struct{}

func (scrambleResolver) Format() Format { return FormatTwoManScramble }

func (scrambleResolver) ResolveHole(hole HoleInput, teamA, teamB []RosterEntry, holeIdx int) HoleResolution {
	if hole.TeamAGross == nil || hole.TeamBGross == nil {
		return HoleResolution{}
	}
	a, b := *hole.TeamAGross, *hole.TeamBGross
	return HoleResolution{TeamA: &a, TeamB: &b, Complete: true}
}

// bestOfTwo resolves a two-player team score: every player gross must be
// present, optionally netted against the player's stroke allocation, and the
// numeric minimum wins. An equal pair needs no tie-break; min covers it.
func bestOfTwo(grosses [2]*int, roster []RosterEntry, holeIdx int, applyStrokes bool) (int, bool) {
	best := 0
	found := false
	for slot := 0; slot < 2; slot++ {
		gross, entry := playerGross(grosses, roster, slot)
		if gross == nil || entry == nil {
			return 0, false
		}
		score := *gross
		if applyStrokes {
			score -= entry.StrokeAt(holeIdx)
		}
		if !found || score < best {
			best = score
			found = true
		}
	}
	return best, found
}

// PlayerNet returns a roster player's net score for a hole when entered. Used
// by fact generation and recap totals; shamble and scramble formats resolve
// on gross, so callers pick applyStrokes per format.
func PlayerNet(hole HoleInput, team Team, roster []RosterEntry, slot, holeIdx int, applyStrokes bool) *int {
	grosses := hole.TeamAPlayerGross
	if team == TeamB {
		grosses = hole.TeamBPlayerGross
	}
	gross, entry := playerGross(grosses, roster, slot)
	if gross == nil || entry == nil {
		return nil
	}
	score := *gross
	if applyStrokes {
		score -= entry.StrokeAt(holeIdx)
	}
	return &score
}
