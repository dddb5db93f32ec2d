package consumer_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"freshbit/internal/messaging/kafka/consumer"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type sliceReader struct {
	msgs      []kafkago.Message
	committed []int64
	cancel    context.CancelFunc
}

func (r *sliceReader) FetchMessage(ctx context.Context) (kafkago.Message, error) {
	if len(r.msgs) == 0 {
		r.cancel()
		<-ctx.Done()
		return kafkago.Message{}, ctx.Err()
	}
	msg := r.msgs[0]
	r.msgs = r.msgs[1:]
	return msg, nil
}

func (r *sliceReader) CommitMessages(_ context.Context, msgs ...kafkago.Message) error {
	for _, m := range msgs {
		r.committed = append(r.committed, m.Offset)
	}
	return nil
}

func TestConsume_CommitPolicy(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	reader := &sliceReader{
		msgs: []kafkago.Message{
			{Offset: 1, Value: []byte("ok")},
			{Offset: 2, Value: []byte("transient")},
			{Offset: 3, Value: []byte("poison"), Headers: []kafkago.Header{{Key: "event_type", Value: []byte("x")}}},
		},
		cancel: cancel,
	}

	var handled []string
	consumer.Consume(ctx, reader, "test", func(_ context.Context, msg kafkago.Message) error {
		handled = append(handled, string(msg.Value))
		switch string(msg.Value) {
		case "transient":
			return errors.New("db down")
		case "poison":
			return fmt.Errorf("%w: bad payload", consumer.ErrPermanent)
		}
		return nil
	}, zap.NewNop())

	assert.Equal(t, []string{"ok", "transient", "poison"}, handled)
	assert.Equal(t, []int64{1, 3}, reader.committed)
}

func TestHeader(t *testing.T) {
	msg := kafkago.Message{Headers: []kafkago.Header{{Key: "request_id", Value: []byte("rid-1")}}}
	assert.Equal(t, "rid-1", consumer.Header(msg, "request_id"))
	assert.Empty(t, consumer.Header(msg, "event_type"))
}
