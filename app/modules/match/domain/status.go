package matchplay

// Evaluate replays all 18 holes through the format's score resolver and
// derives the live match status. It is a pure function of (format, holes,
// rosters): every call recomputes from scratch so that a correction to an
// earlier hole can reopen a previously closed match without any invalidation
// bookkeeping.
func Evaluate(format Format, holes [Holes]HoleInput, teamA, teamB []RosterEntry) MatchStatus {
	resolver := ResolverFor(format)

	var history [Holes]HoleMargin
	margin := 0
	closed := false
	closedAt := 0
	lastComplete := 0
	lastWithInput := 0
	completeCount := 0

	for i := 0; i < Holes; i++ {
		holeNumber := i + 1

		// Trailing data after closure is ignored; the lock is enforced
		// upstream, but the engine must not extend the margin past it.
		if closed {
			continue
		}

		if holes[i].HasAnyInput() {
			lastWithInput = holeNumber
		}

		resolution := resolver.ResolveHole(holes[i], teamA, teamB, i)
		if !resolution.Complete {
			// Incomplete hole: blank history entry, running margin untouched.
			continue
		}

		switch {
		case *resolution.TeamA < *resolution.TeamB:
			margin++
		case *resolution.TeamB < *resolution.TeamA:
			margin--
		}

		history[i] = HoleMargin{Complete: true, Margin: margin}
		lastComplete = holeNumber
		completeCount++

		if abs(margin) > Holes-holeNumber {
			closed = true
			closedAt = holeNumber
		}
	}

	// A fully played-out match is decided even when level: 18 complete holes
	// with margin 0 is a halve, not a live match.
	if !closed && completeCount == Holes {
		closed = true
		closedAt = Holes
	}

	status := MatchStatus{
		Margin:        abs(margin),
		Closed:        closed,
		MarginHistory: history,
	}

	switch {
	case margin > 0:
		leader := TeamA
		status.Leader = &leader
	case margin < 0:
		leader := TeamB
		status.Leader = &leader
	}

	if closed {
		status.Thru = closedAt
	} else {
		status.Thru = lastWithInput
		status.Dormie = margin != 0 && abs(margin) == Holes-lastComplete
	}

	return status
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
