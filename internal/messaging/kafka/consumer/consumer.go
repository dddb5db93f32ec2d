package consumer

import (
	"context"
	"errors"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// ErrPermanent menandai message yang tidak akan pernah berhasil diproses
// (payload rusak, penerima tidak ada). Message seperti ini di-commit lalu dilewati.
var ErrPermanent = errors.New("permanent consumer failure")

type Reader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

type HandlerFunc func(ctx context.Context, msg kafkago.Message) error

// Consume membaca reader sampai ctx selesai. Message hanya di-commit setelah
// handler sukses atau gagal permanen; error lain dibiarkan untuk dibaca ulang.
func Consume(ctx context.Context, reader Reader, name string, handle HandlerFunc, logger *zap.Logger) {
	log := logger.Named("kafka.consumer." + name)
	log.Info("consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("consumer stopped")
				return
			}
			log.Error("fetch message failed", zap.Error(err))
			continue
		}

		fields := []zap.Field{
			zap.String("topic", msg.Topic),
			zap.Int64("offset", msg.Offset),
			zap.String("event_type", Header(msg, "event_type")),
		}
		if rid := Header(msg, "request_id"); rid != "" {
			fields = append(fields, zap.String("request_id", rid))
		}

		if err := handle(ctx, msg); err != nil {
			if !errors.Is(err, ErrPermanent) {
				log.Error("handle message failed", append(fields, zap.Error(err))...)
				continue
			}
			log.Warn("message skipped", append(fields, zap.Error(err))...)
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit message failed", append(fields, zap.Error(err))...)
			continue
		}
		log.Debug("message processed", fields...)
	}
}

func Header(msg kafkago.Message, key string) string {
	for _, h := range msg.Headers {
		if h.Key == key {
			return string(h.Value)
		}
	}
	return ""
}
