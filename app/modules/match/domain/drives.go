package matchplay

// MinDrivesPerPlayer is the minimum number of drives each player must
// contribute across 18 holes in drive-tracked formats.
const MinDrivesPerPlayer = 6

// DriveLedger tracks which player's drive was taken per hole for the
// scramble and shamble formats. Selections toggle: recording the same player
// twice clears the hole, so a mis-tap undoes itself.
type DriveLedger struct {
	teamA [Holes]*int
	teamB [Holes]*int
}

// NewDriveLedger seeds a ledger from the drive fields already present on the
// hole inputs.
func NewDriveLedger(holes [Holes]HoleInput) *DriveLedger {
	ledger := &DriveLedger{}
	for i := 0; i < Holes; i++ {
		ledger.teamA[i] = validDriveIndex(holes[i].TeamADrive)
		ledger.teamB[i] = validDriveIndex(holes[i].TeamBDrive)
	}
	return ledger
}

func validDriveIndex(idx *int) *int {
	if idx == nil || *idx < 0 || *idx > 1 {
		return nil
	}
	v := *idx
	return &v
}

func (l *DriveLedger) side(team Team) *[Holes]*int {
	if team == TeamB {
		return &l.teamB
	}
	return &l.teamA
}

// RecordDrive sets, toggles, or clears the drive selection for a hole
// (1-based). A nil playerIndex clears; re-selecting the current player
// clears; anything else overwrites.
func (l *DriveLedger) RecordDrive(holeNumber int, team Team, playerIndex *int) {
	if holeNumber < 1 || holeNumber > Holes {
		return
	}
	side := l.side(team)
	idx := validDriveIndex(playerIndex)

	current := side[holeNumber-1]
	if idx == nil || (current != nil && *current == *idx) {
		side[holeNumber-1] = nil
		return
	}
	side[holeNumber-1] = idx
}

// Selection returns the current drive selection for a hole (1-based), or nil.
func (l *DriveLedger) Selection(holeNumber int, team Team) *int {
	if holeNumber < 1 || holeNumber > Holes {
		return nil
	}
	return l.side(team)[holeNumber-1]
}

// DrivesUsed counts each player's selected drives over all holes.
func (l *DriveLedger) DrivesUsed(team Team) [2]int {
	var used [2]int
	for _, idx := range l.side(team) {
		if idx != nil {
			used[*idx]++
		}
	}
	return used
}

// DrivesStillNeeded reports, per player, the shortfall that can no longer be
// recovered: max(0, min − used − holesRemaining). A positive value is an
// advisory warning only; it never blocks scoring.
func (l *DriveLedger) DrivesStillNeeded(team Team, holesRemaining int) [2]int {
	used := l.DrivesUsed(team)
	var needed [2]int
	for player := range needed {
		shortfall := MinDrivesPerPlayer - used[player] - holesRemaining
		if shortfall > 0 {
			needed[player] = shortfall
		}
	}
	return needed
}

// ApplyTo writes the ledger's selections back onto the hole inputs.
func (l *DriveLedger) ApplyTo(holes *[Holes]HoleInput) {
	for i := 0; i < Holes; i++ {
		holes[i].TeamADrive = l.teamA[i]
		holes[i].TeamBDrive = l.teamB[i]
	}
}
