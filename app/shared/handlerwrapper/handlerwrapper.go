package handlerwrapper

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
	"go.opentelemetry.io/otel/trace"

	"github.com/Harbor-Links-Club/matchplay-bot/app/shared/attr"
	"github.com/Harbor-Links-Club/matchplay-bot/app/shared/utils"
)

// Result is one outbound event produced by a handler: a destination topic and
// the payload to marshal onto it.
type Result struct {
	Topic   string
	Payload any
}

// Metrics is the handler-level telemetry surface every module metrics
// implementation embeds.
type Metrics interface {
	RecordHandlerAttempt(ctx context.Context, handlerName string)
	RecordHandlerSuccess(ctx context.Context, handlerName string)
	RecordHandlerFailure(ctx context.Context, handlerName string)
	RecordHandlerDuration(ctx context.Context, handlerName string, duration time.Duration)
}

// Wrap turns a typed handler into a watermill message.HandlerFunc, taking
// care of payload unmarshalling, correlation propagation, tracing, metrics,
// and conversion of Results into publishable messages.
func Wrap[P any](
	handlerName string,
	handle func(ctx context.Context, payload *P) ([]Result, error),
	logger *slog.Logger,
	metrics Metrics,
	tracer trace.Tracer,
	helpers utils.Helpers,
) message.HandlerFunc {
	return func(msg *message.Message) ([]*message.Message, error) {
		ctx, span := tracer.Start(msg.Context(), handlerName)
		defer span.End()

		correlationID := middleware.MessageCorrelationID(msg)
		ctx = attr.WithCorrelationID(ctx, correlationID)

		metrics.RecordHandlerAttempt(ctx, handlerName)
		startTime := time.Now()
		defer func() {
			metrics.RecordHandlerDuration(ctx, handlerName, time.Since(startTime))
		}()

		logger.InfoContext(ctx, handlerName+" triggered",
			attr.CorrelationIDFromMsg(msg),
			attr.String("message_id", msg.UUID),
		)

		payload := new(P)
		if err := helpers.UnmarshalPayload(msg, payload); err != nil {
			logger.ErrorContext(ctx, "Failed to unmarshal payload",
				attr.CorrelationIDFromMsg(msg),
				attr.Error(err),
			)
			metrics.RecordHandlerFailure(ctx, handlerName)
			return nil, fmt.Errorf("failed to unmarshal payload: %w", err)
		}

		results, err := handle(ctx, payload)
		if err != nil {
			logger.ErrorContext(ctx, "Error in "+handlerName,
				attr.CorrelationIDFromMsg(msg),
				attr.Error(err),
			)
			metrics.RecordHandlerFailure(ctx, handlerName)
			span.RecordError(err)
			return nil, err
		}

		messages := make([]*message.Message, 0, len(results))
		for _, result := range results {
			out, err := helpers.CreateResultMessage(msg, result.Payload, result.Topic)
			if err != nil {
				metrics.RecordHandlerFailure(ctx, handlerName)
				return nil, fmt.Errorf("failed to create result message for topic %s: %w", result.Topic, err)
			}
			messages = append(messages, out)
		}

		metrics.RecordHandlerSuccess(ctx, handlerName)
		logger.InfoContext(ctx, handlerName+" completed successfully", attr.CorrelationIDFromMsg(msg))
		return messages, nil
	}
}
