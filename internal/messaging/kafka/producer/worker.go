package producer

import (
	"context"
	"time"

	"freshbit/internal/messaging/kafka"

	"go.uber.org/zap"
)

const defaultBatchSize = 50

// Relay memindahkan outbox_events pending ke Kafka. Publish gagal ditandai failed,
// next_retry_at dari repository yang menentukan kapan dicoba lagi.
type Relay struct {
	repo      kafka.OutboxRepository
	writer    Writer
	batchSize int
	logger    *zap.Logger
}

func NewRelay(repo kafka.OutboxRepository, writer Writer, logger *zap.Logger) *Relay {
	return &Relay{
		repo:      repo,
		writer:    writer,
		batchSize: defaultBatchSize,
		logger:    logger.Named("kafka.producer.relay"),
	}
}

func (r *Relay) Run(ctx context.Context, pollInterval time.Duration) {
	if pollInterval <= 0 {
		pollInterval = 3 * time.Second
	}
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	r.logger.Info("outbox relay started", zap.Duration("poll_interval", pollInterval))
	for {
		select {
		case <-ctx.Done():
			r.logger.Info("outbox relay stopped")
			return
		case <-ticker.C:
			if _, _, err := r.RunOnce(ctx); err != nil {
				r.logger.Error("process outbox events failed", zap.Error(err))
			}
		}
	}
}

// RunOnce satu batch. Error hanya untuk kegagalan membaca outbox.
func (r *Relay) RunOnce(ctx context.Context) (sent, failed int, err error) {
	events, err := r.repo.ListPending(ctx, r.batchSize)
	if err != nil {
		return 0, 0, err
	}
	if len(events) == 0 {
		return 0, 0, nil
	}
	r.logger.Debug("processing pending outbox events", zap.Int("count", len(events)))

	for _, event := range events {
		fields := []zap.Field{
			zap.String("outbox_id", event.ID),
			zap.String("event_type", event.EventType),
			zap.String("topic", event.Topic),
			zap.Int("retry_count", event.RetryCount),
		}
		if err := r.writer.WriteMessages(ctx, toMessage(event)); err != nil {
			failed++
			r.logger.Warn("publish outbox event failed", append(fields, zap.Error(err))...)
			if markErr := r.repo.MarkFailed(ctx, event.ID, err.Error()); markErr != nil {
				r.logger.Error("mark outbox failed failed", append(fields, zap.Error(markErr))...)
			}
			continue
		}
		if err := r.repo.MarkSent(ctx, event.ID); err != nil {
			// sudah terkirim, akan terkirim ulang; consumer harus idempotent
			r.logger.Error("mark outbox sent failed", append(fields, zap.Error(err))...)
			continue
		}
		sent++
		r.logger.Info("outbox event sent", fields...)
	}
	return sent, failed, nil
}
