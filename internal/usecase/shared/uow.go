package shared

import (
	"context"
	"time"

	"dinner-club/internal/domain/event"
	"dinner-club/internal/domain/reservation"
	sqlc "dinner-club/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Events() EventRepository
	Reservations() ReservationRepository
	Notifications() NotificationRepository
	Users() UserRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

type CommandReads interface {
	EventByID(ctx context.Context, id uuid.UUID) (*EventSnapshot, error)
	ReservationByID(ctx context.Context, id uuid.UUID) (*ReservationSnapshot, error)
	ReservationByTokenHash(ctx context.Context, hash string) (*ReservationSnapshot, error)
	UserByID(ctx context.Context, id uuid.UUID) (*UserSnapshot, error)
}

type EventRepository interface {
	// LockByID takes a row lock held until the surrounding transaction ends.
	LockByID(ctx context.Context, id uuid.UUID) (*event.Event, error)
	FindByID(ctx context.Context, id uuid.UUID) (*event.Event, error)
	Create(ctx context.Context, e *event.Event) error
	UpdateStatus(ctx context.Context, e *event.Event) error
	DeletePast(ctx context.Context, cutoff time.Time, statuses []event.Status) (int64, error)
}

type ReservationRepository interface {
	Create(ctx context.Context, r *reservation.Reservation) error
	FindByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
	UpdateStatus(ctx context.Context, r *reservation.Reservation) error
	SumConfirmedGuests(ctx context.Context, eventID uuid.UUID) (int, error)
	ExistsActiveForUser(ctx context.Context, eventID, userID uuid.UUID) (bool, error)
	ListWaitlist(ctx context.Context, eventID uuid.UUID) ([]*reservation.Reservation, error)
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, kind, topic string, payload []byte, runAt time.Time) error
	ClaimDue(ctx context.Context, now, leaseUntil time.Time, limit int32) ([]NotificationJob, error)
	MarkSent(ctx context.Context, id uuid.UUID, now time.Time) error
	MarkFailed(ctx context.Context, id uuid.UUID, cause string, nextRunAt, now time.Time, maxAttempts int32) error
}

type UserRepository interface {
	UpdateLastLogin(ctx context.Context, userID uuid.UUID) error
}
