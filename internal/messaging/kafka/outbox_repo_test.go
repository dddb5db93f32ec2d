package kafka_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"freshbit/internal/messaging/kafka"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEvent(t *testing.T) {
	e, err := kafka.NewEvent("freshbit.account.v1", "user", "u-1", "account.password_reset_requested", "", map[string]string{"k": "v"})
	require.NoError(t, err)
	assert.Equal(t, kafka.OutboxStatusPending, e.Status)
	assert.JSONEq(t, `{"k":"v"}`, string(e.Payload))
	assert.NotEmpty(t, e.ID)

	_, err = kafka.NewEvent("", "user", "u-1", "x", "", map[string]string{})
	assert.EqualError(t, err, "outbox topic is required")
}

func TestOutboxRepository_CreateInsideTx(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	e, err := kafka.NewEvent("freshbit.drive.lifecycle.v1", "drive", "d-1", "drive.published", "rid-1", map[string]int{"n": 1})
	require.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO outbox_events")).
		WithArgs(e.ID, "rid-1", "drive", "d-1", "drive.published", "freshbit.drive.lifecycle.v1", e.Payload, kafka.OutboxStatusPending).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	tx, err := db.Begin()
	require.NoError(t, err)
	require.NoError(t, kafka.NewOutboxRepository(db).WithTx(tx).Create(context.Background(), e))
	require.NoError(t, tx.Commit())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxRepository_ListPendingAndMark(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := kafka.NewOutboxRepository(db)
	ctx := context.Background()
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("FROM outbox_events")).
		WithArgs(kafka.OutboxStatusPending, kafka.OutboxStatusFailed, 10).
		WillReturnRows(sqlmock.NewRows([]string{"id", "request_id", "aggregate_type", "aggregate_id", "event_type", "topic", "payload", "status", "retry_count", "next_retry_at"}).
			AddRow("e-1", "", "drive", "d-1", "drive.closed", "freshbit.drive.lifecycle.v1", []byte(`{}`), kafka.OutboxStatusFailed, 2, now))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE outbox_events")).
		WithArgs("e-1", kafka.OutboxStatusFailed, kafka.OutboxStatusDead, kafka.MaxPublishAttempts, "broker down").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE outbox_events")).
		WithArgs("e-1", kafka.OutboxStatusSent).
		WillReturnResult(sqlmock.NewResult(0, 1))

	events, err := repo.ListPending(ctx, 10)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, 2, events[0].RetryCount)
	assert.Equal(t, "drive.closed", events[0].EventType)

	require.NoError(t, repo.MarkFailed(ctx, "e-1", "broker down"))
	require.NoError(t, repo.MarkSent(ctx, "e-1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
