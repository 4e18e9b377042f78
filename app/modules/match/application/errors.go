package matchservice

// Failure reason codes carried in OperationFailedPayloadV1. These are
// business outcomes, published as failure events rather than returned as
// errors.
const (
	ReasonRoundLocked     = "ROUND_LOCKED"
	ReasonMatchNotFound   = "MATCH_NOT_FOUND"
	ReasonRoundNotFound   = "ROUND_NOT_FOUND"
	ReasonInvalidHole     = "INVALID_HOLE_NUMBER"
	ReasonInvalidTeam     = "INVALID_TEAM"
	ReasonInvalidSlot     = "INVALID_PLAYER_SLOT"
	ReasonInvalidGross    = "INVALID_GROSS"
	ReasonDrivesUntracked = "DRIVES_NOT_TRACKED"
	ReasonBadScorecard    = "UNPARSEABLE_SCORECARD"
)
