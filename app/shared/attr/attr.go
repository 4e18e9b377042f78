package attr

import (
	"context"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
	"github.com/google/uuid"
)

// contextKey is the private type for values this package stores in a context.
type contextKey string

const correlationIDKey contextKey = "correlation_id"

// String returns a string slog attribute.
func String(key, value string) slog.Attr {
	return slog.String(key, value)
}

// Int returns an int slog attribute.
func Int(key string, value int) slog.Attr {
	return slog.Int(key, value)
}

// Int64 returns an int64 slog attribute.
func Int64(key string, value int64) slog.Attr {
	return slog.Int64(key, value)
}

// Bool returns a bool slog attribute.
func Bool(key string, value bool) slog.Attr {
	return slog.Bool(key, value)
}

// Float64 returns a float64 slog attribute.
func Float64(key string, value float64) slog.Attr {
	return slog.Float64(key, value)
}

// Any returns an attribute for an arbitrary value.
func Any(key string, value any) slog.Attr {
	return slog.Any(key, value)
}

// Error returns the conventional "error" attribute.
func Error(err error) slog.Attr {
	return slog.Any("error", err)
}

// UUID returns a uuid attribute rendered as a string.
func UUID(key string, id uuid.UUID) slog.Attr {
	return slog.String(key, id.String())
}

// MatchID returns a match id attribute.
func MatchID(key string, id uuid.UUID) slog.Attr {
	return slog.String(key, id.String())
}

// RoundID returns a round id attribute.
func RoundID(key string, id uuid.UUID) slog.Attr {
	return slog.String(key, id.String())
}

// PlayerID returns a player id attribute.
func PlayerID(key string, id string) slog.Attr {
	return slog.String(key, id)
}

// WithCorrelationID stores a correlation id on the context for later extraction.
func WithCorrelationID(ctx context.Context, correlationID string) context.Context {
	return context.WithValue(ctx, correlationIDKey, correlationID)
}

// ExtractCorrelationID pulls the correlation id off the context, or an empty
// attribute when none was set.
func ExtractCorrelationID(ctx context.Context) slog.Attr {
	if id, ok := ctx.Value(correlationIDKey).(string); ok && id != "" {
		return slog.String("correlation_id", id)
	}
	return slog.String("correlation_id", "")
}

// CorrelationIDFromMsg reads the watermill correlation id metadata from a message.
func CorrelationIDFromMsg(msg *message.Message) slog.Attr {
	return slog.String("correlation_id", middleware.MessageCorrelationID(msg))
}
