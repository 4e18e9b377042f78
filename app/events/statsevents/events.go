package statsevents

import "github.com/google/uuid"

// Stats module topics.
const (
	FactsGeneratedV1        = "stats.facts.generated.v1"
	FactsGenerationFailedV1 = "stats.facts.generation.failed.v1"
	FactsDeletedV1          = "stats.facts.deleted.v1"
	StatsRebuiltV1          = "stats.player_stats.rebuilt.v1"
	StatsRebuildFailedV1    = "stats.player_stats.rebuild.failed.v1"
)

// FactsGeneratedPayloadV1 announces regenerated facts for a closed match.
type FactsGeneratedPayloadV1 struct {
	MatchID   uuid.UUID `json:"match_id"`
	RoundID   uuid.UUID `json:"round_id"`
	Series    string    `json:"series,omitempty"`
	PlayerIDs []string  `json:"player_ids"`
}

// FactsDeletedPayloadV1 announces facts removed after a match reopened.
type FactsDeletedPayloadV1 struct {
	MatchID   uuid.UUID `json:"match_id"`
	PlayerIDs []string  `json:"player_ids"`
}

// StatsRebuiltPayloadV1 announces rebuilt running aggregates.
type StatsRebuiltPayloadV1 struct {
	PlayerIDs []string `json:"player_ids"`
	Series    string   `json:"series,omitempty"`
}

// OperationFailedPayloadV1 is the shared failure shape for stats operations.
type OperationFailedPayloadV1 struct {
	MatchID uuid.UUID `json:"match_id"`
	Reason  string    `json:"reason"`
}
