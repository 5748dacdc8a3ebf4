package commands

import (
	"context"
	"time"

	"dinner-club/internal/domain/user"
	"dinner-club/internal/pkg/guesttoken"

	"github.com/google/uuid"
)

// Notification topics understood by the mail worker consuming the outbound queue.
const (
	TopicReservationConfirmed  = "reservation_confirmed"
	TopicReservationWaitlisted = "reservation_waitlisted"
	TopicWaitlistPromoted      = "waitlist_promoted"
	TopicReservationCancelled  = "reservation_cancelled"
	TopicChefCancellation      = "chef_cancellation_notice"
	TopicChefNewReservation    = "chef_new_reservation"
)

type Notice struct {
	Topic string         `json:"topic"`
	To    string         `json:"to"`
	Name  string         `json:"name"`
	Data  map[string]any `json:"data"`
}

// Mailer is fire-and-forget from the caller's point of view: it runs after
// the reservation transaction has committed and its failures are only logged.
type Mailer interface {
	Send(ctx context.Context, notices ...Notice) error
}

type Recorder interface {
	IncCreated(status string)
	IncCancelled(path string)
	AddPromotions(n int)
	AddEventsDeleted(n int64)
}

type TokenIssuer interface {
	Issue() (guesttoken.Token, error)
	Hash(plain string) string
}

// Actor is the authenticated caller of a command.
type Actor struct {
	UserID uuid.UUID
	Role   user.Role
}

type ReservationPolicy struct {
	CancellationWindow time.Duration
	TokenGrace         time.Duration
	MaxGuests          int
}
