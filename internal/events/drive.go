package events

import (
	"context"
	"database/sql"
	"time"

	"freshbit/internal/messaging/kafka"
	"freshbit/internal/shared/contextutil"
)

const DriveLifecycleTopic = "freshbit.drive.lifecycle.v1"

const (
	EventDrivePublished           = "drive.published"
	EventDriveClosed              = "drive.closed"
	EventStageAdvanced            = "drive.stage_advanced"
	EventCollegeInvited           = "invitation.created"
	EventInvitationResponded      = "invitation.responded"
	EventApplicationStatusChanged = "application.status_changed"
)

type DriveEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id,omitempty"`
	DriveID    string    `json:"drive_id"`
	DriveTitle string    `json:"drive_title,omitempty"`
	CompanyID  string    `json:"company_id"`
	CollegeID  string    `json:"college_id,omitempty"`
	Stage      string    `json:"stage,omitempty"`
	Status     string    `json:"status,omitempty"`
	ActorID    string    `json:"actor_id,omitempty"`
	Count      int       `json:"count,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// QueueDriveEvent menulis ev ke outbox di dalam tx pemanggil. outbox nil = no-op.
func QueueDriveEvent(ctx context.Context, outbox kafka.OutboxRepository, tx *sql.Tx, aggregateType, aggregateID string, ev DriveEvent) error {
	if outbox == nil {
		return nil
	}
	if ev.RequestID == "" {
		ev.RequestID = contextutil.GetRequestID(ctx)
	}
	if ev.OccurredAt.IsZero() {
		ev.OccurredAt = time.Now().UTC()
	}
	event, err := kafka.NewEvent(DriveLifecycleTopic, aggregateType, aggregateID, ev.EventType, ev.RequestID, ev)
	if err != nil {
		return err
	}
	return outbox.WithTx(tx).Create(ctx, event)
}
