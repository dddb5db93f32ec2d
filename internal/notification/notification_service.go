package notification

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"freshbit/internal/events"
	"freshbit/internal/messaging/kafka/consumer"

	"github.com/google/uuid"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Notifier struct {
	mailer      Mailer
	directory   Directory
	frontendURL string
	logger      *zap.Logger
}

func NewNotifier(mailer Mailer, directory Directory, frontendURL string, logger ...*zap.Logger) *Notifier {
	l := zap.L().Named("notification.notifier")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("notification.notifier")
	}
	return &Notifier{mailer: mailer, directory: directory, frontendURL: frontendURL, logger: l}
}

func permanent(format string, args ...any) error {
	return fmt.Errorf("%w: %s", consumer.ErrPermanent, fmt.Sprintf(format, args...))
}

// HandleAccount topic freshbit.account.v1.
func (n *Notifier) HandleAccount(ctx context.Context, msg kafkago.Message) error {
	var ev events.AccountTokenEvent
	if err := json.Unmarshal(msg.Value, &ev); err != nil {
		return permanent("decode account event: %v", err)
	}
	if ev.Email == "" || ev.Token == "" {
		return permanent("account event %s without email or token", ev.EventType)
	}

	switch ev.EventType {
	case events.EventEmailVerificationRequested:
		return n.mailer.Send(ctx, verificationEmail(n.frontendURL, ev))
	case events.EventPasswordResetRequested:
		return n.mailer.Send(ctx, passwordResetEmail(n.frontendURL, ev))
	default:
		n.logger.Debug("account event ignored", zap.String("event_type", ev.EventType))
		return nil
	}
}

// HandleDrive topic freshbit.drive.lifecycle.v1. Hanya event undangan yang dikirim
// lewat email.
func (n *Notifier) HandleDrive(ctx context.Context, msg kafkago.Message) error {
	var ev events.DriveEvent
	if err := json.Unmarshal(msg.Value, &ev); err != nil {
		return permanent("decode drive event: %v", err)
	}

	switch ev.EventType {
	case events.EventCollegeInvited:
		college, err := n.lookup(ctx, n.directory.College, ev.CollegeID)
		if err != nil {
			return err
		}
		return n.mailer.Send(ctx, invitationEmail(n.frontendURL, college, ev))
	case events.EventInvitationResponded:
		college, err := n.lookup(ctx, n.directory.College, ev.CollegeID)
		if err != nil {
			return err
		}
		company, err := n.lookup(ctx, n.directory.Company, ev.CompanyID)
		if err != nil {
			return err
		}
		return n.mailer.Send(ctx, invitationResponseEmail(company, college, ev))
	default:
		return nil
	}
}

func (n *Notifier) lookup(ctx context.Context, find func(context.Context, uuid.UUID) (Contact, error), rawID string) (Contact, error) {
	id, err := uuid.Parse(rawID)
	if err != nil {
		return Contact{}, permanent("invalid organization id %q", rawID)
	}
	c, err := find(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Contact{}, permanent("organization %s not found", id)
		}
		return Contact{}, err
	}
	if c.Email == "" {
		return Contact{}, permanent("organization %s has no contact email", id)
	}
	return c, nil
}
