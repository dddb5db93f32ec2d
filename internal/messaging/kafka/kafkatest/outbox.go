// Package kafkatest berisi outbox in-memory untuk unit test service.
package kafkatest

import (
	"context"
	"database/sql"
	"encoding/json"
	"sync"

	"freshbit/internal/messaging/kafka"
)

type Outbox struct {
	mu     sync.Mutex
	events []kafka.OutboxEvent
	Err    error
}

func (o *Outbox) WithTx(*sql.Tx) kafka.OutboxRepository { return o }

func (o *Outbox) Create(_ context.Context, event kafka.OutboxEvent) error {
	if o.Err != nil {
		return o.Err
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, event)
	return nil
}

func (o *Outbox) ListPending(context.Context, int) ([]kafka.OutboxEvent, error) { return nil, nil }
func (o *Outbox) MarkSent(context.Context, string) error                        { return nil }
func (o *Outbox) MarkFailed(context.Context, string, string) error              { return nil }

func (o *Outbox) Events() []kafka.OutboxEvent {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]kafka.OutboxEvent(nil), o.events...)
}

// EventTypes urutan event_type yang tertulis.
func (o *Outbox) EventTypes() []string {
	var out []string
	for _, e := range o.Events() {
		out = append(out, e.EventType)
	}
	return out
}

// Decode payload event ke-i ke out.
func (o *Outbox) Decode(i int, out any) error {
	return json.Unmarshal(o.Events()[i].Payload, out)
}
