package statsservice

// Business failure reasons carried in failure payloads.
const (
	ReasonMatchNotClosed = "MATCH_NOT_CLOSED"
	ReasonNoFacts        = "NO_FACTS_FOR_MATCH"
)

// lifetimeSeries is the series key for aggregates spanning every match.
const lifetimeSeries = ""
