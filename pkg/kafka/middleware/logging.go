package middleware

import (
	"context"
	"time"

	"tixbox/pkg/kafka"
	"tixbox/pkg/logger"
)

// Logging logs every consumed message with handling duration and outcome.
func Logging(log *logger.Logger) kafka.ConsumerMiddleware {
	return func(ctx context.Context, msg kafka.Message, next kafka.MessageHandler) error {
		start := time.Now()
		err := next(ctx, msg)

		args := []any{
			"topic", msg.Topic,
			"partition", msg.Partition,
			"offset", msg.Offset,
			"key", msg.Key,
			"event_id", msg.EventID(),
			"event_type", msg.EventType(),
			"duration_ms", time.Since(start).Milliseconds(),
		}

		if err != nil {
			log.Error("Message processing failed", append(args, "error", err)...)
		} else {
			log.Info("Message processed", args...)
		}

		return err
	}
}
