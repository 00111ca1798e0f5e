package notification

import (
	"context"
	"encoding/json"

	"go-workforce/internal/events"
	"go-workforce/internal/messaging/kafka/consumer"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// NewLifecycleHandler adapts the service to the consumer loop. Malformed
// payloads are logged and committed so they do not wedge the partition.
func NewLifecycleHandler(s Service, logger *zap.Logger) consumer.MessageHandler {
	if logger == nil {
		logger = zap.L()
	}
	l := logger.Named("notification.consumer")

	return func(ctx context.Context, msg kafkago.Message) error {
		var event events.SheetLifecycleEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			l.Warn("skipping malformed lifecycle event",
				zap.String("topic", msg.Topic),
				zap.Int64("offset", msg.Offset),
				zap.Error(err),
			)
			return nil
		}

		return s.RecordLifecycleEvent(ctx, event)
	}
}
