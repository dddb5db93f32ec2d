package events

import "time"

const AccountTopic = "freshbit.account.v1"

const (
	EventEmailVerificationRequested = "account.email_verification_requested"
	EventPasswordResetRequested     = "account.password_reset_requested"
)

// AccountTokenEvent membawa one-time token, consumer yang menyusun link untuk email.
type AccountTokenEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id,omitempty"`
	UserID     string    `json:"user_id"`
	Email      string    `json:"email"`
	Name       string    `json:"name"`
	Token      string    `json:"token"`
	OccurredAt time.Time `json:"occurred_at"`
}
