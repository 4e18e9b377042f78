package recapservice

// Business failure reasons carried in failure payloads.
const (
	ReasonNotDecided = "MATCH_NOT_DECIDED"
)
