package recapevents

import "github.com/google/uuid"

// Recap module topics.
const (
	RebuildRequestedV1 = "recap.rebuild.requested.v1"
	RebuildFailedV1    = "recap.rebuild.failed.v1"
	RecapUpdatedV1     = "recap.updated.v1"
)

// RebuildRequestedPayloadV1 asks for a full recap rebuild of a round.
type RebuildRequestedPayloadV1 struct {
	RoundID uuid.UUID `json:"round_id"`
}

// RecapUpdatedPayloadV1 announces a freshly rebuilt round recap.
type RecapUpdatedPayloadV1 struct {
	RoundID    uuid.UUID `json:"round_id"`
	MatchCount int       `json:"match_count"`
}

// OperationFailedPayloadV1 is the shared failure shape for recap operations.
type OperationFailedPayloadV1 struct {
	RoundID uuid.UUID `json:"round_id"`
	Reason  string    `json:"reason"`
}
