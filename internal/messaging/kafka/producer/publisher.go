package producer

import (
	"context"
	"strconv"

	"freshbit/internal/messaging/kafka"

	kafkago "github.com/segmentio/kafka-go"
)

type Writer interface {
	WriteMessages(ctx context.Context, msgs ...kafkago.Message) error
}

// toMessage key = aggregate id supaya event satu aggregate masuk partisi yang sama.
func toMessage(event kafka.OutboxEvent) kafkago.Message {
	msg := kafkago.Message{
		Topic: event.Topic,
		Key:   []byte(event.AggregateID),
		Value: event.Payload,
		Headers: []kafkago.Header{
			{Key: "event_id", Value: []byte(event.ID)},
			{Key: "event_type", Value: []byte(event.EventType)},
			{Key: "aggregate_type", Value: []byte(event.AggregateType)},
		},
	}
	if event.RequestID != "" {
		msg.Headers = append(msg.Headers, kafkago.Header{Key: "request_id", Value: []byte(event.RequestID)})
	}
	if event.RetryCount > 0 {
		msg.Headers = append(msg.Headers, kafkago.Header{Key: "attempt", Value: []byte(strconv.Itoa(event.RetryCount + 1))})
	}
	return msg
}
