package eventbus

import "context"

// Stream names, one per module, each owning its topic prefix.
const (
	MatchStream = "match"
	StatsStream = "stats"
	RecapStream = "recap"
)

// InitializeStreams provisions the per-module JetStream streams during
// application startup.
func InitializeStreams(ctx context.Context, bus EventBus) error {
	for _, stream := range []string{MatchStream, StatsStream, RecapStream} {
		if err := bus.CreateStream(ctx, stream); err != nil {
			return err
		}
	}
	return nil
}
