package recapqueue

import "github.com/google/uuid"

// RecapRebuildArgs is the debounced recap rebuild job. Uniqueness by args
// plus the debounce window collapses a burst of match closures into a single
// rebuild.
type RecapRebuildArgs struct {
	RoundID uuid.UUID `json:"round_id"`
}

// Kind returns the job type identifier for River.
func (RecapRebuildArgs) Kind() string { return "recap_rebuild" }

// RoundLockArgs is the scheduled round lock job, fired at the round's lock
// time.
type RoundLockArgs struct {
	RoundID uuid.UUID `json:"round_id"`
}

// Kind returns the job type identifier for River.
func (RoundLockArgs) Kind() string { return "round_lock" }
