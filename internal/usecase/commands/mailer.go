package commands

import (
	"context"
	"encoding/json"

	"dinner-club/internal/pkg/clock"
	"dinner-club/internal/pkg/errs"
	"dinner-club/internal/usecase/shared"
)

const notificationKindEmail = "email"

var ErrNotificationEnqueue = errs.New("failed to enqueue notification")

type outboxMailer struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

// NewOutboxMailer queues notices as notification_jobs rows. Delivery to the
// mail worker happens later through the notifier relay.
func NewOutboxMailer(uow shared.UnitOfWork, clock clock.Clock) Mailer {
	return &outboxMailer{uow: uow, clock: clock}
}

func (m *outboxMailer) Send(ctx context.Context, notices ...Notice) error {
	if len(notices) == 0 {
		return nil
	}

	payloads := make([][]byte, 0, len(notices))
	for _, n := range notices {
		payload, err := json.Marshal(n)
		if err != nil {
			return errs.Mark(err, ErrNotificationEnqueue)
		}
		payloads = append(payloads, payload)
	}

	now := m.clock.Now()
	return m.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		for i, n := range notices {
			if err := tx.Notifications().CreateJob(ctx, notificationKindEmail, n.Topic, payloads[i], now); err != nil {
				return errs.Mark(err, ErrNotificationEnqueue)
			}
		}
		return nil
	})
}
