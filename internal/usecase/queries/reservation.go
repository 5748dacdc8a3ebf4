package queries

import (
	"context"
	"crypto/subtle"
	"time"

	"dinner-club/internal/domain/reservation"
	"dinner-club/internal/domain/user"
	"dinner-club/internal/infra"
	"dinner-club/internal/pkg/clock"
	"dinner-club/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrReservationNotFound = errs.Tagged(errs.KindNotFound, "Reservation not found")
	ErrReservationAccess   = errs.Tagged(errs.KindUnauthorized, "You can only view your own reservations")
)

// Viewer identifies who is asking for a reservation. A guest has no UserID
// and presents the token they received at booking instead.
type Viewer struct {
	UserID     *uuid.UUID
	Role       user.Role
	GuestToken string
}

type ReservationQueries interface {
	GetForViewer(ctx context.Context, id uuid.UUID, viewer Viewer) (*ReservationView, error)
	ListForUser(ctx context.Context, userID uuid.UUID) ([]*UserReservationItem, error)
}

type ReservationReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*UserReservationItem, error)
}

type TokenHasher interface {
	Hash(plain string) string
}

type reservationQueriesImpl struct {
	readStore          ReservationReadStore
	hasher             TokenHasher
	clock              clock.Clock
	cancellationWindow time.Duration
}

func NewReservationQueries(readStore ReservationReadStore, hasher TokenHasher, clock clock.Clock, cancellationWindow time.Duration) ReservationQueries {
	if cancellationWindow <= 0 {
		cancellationWindow = reservation.DefaultCancellationWindow
	}
	return &reservationQueriesImpl{
		readStore:          readStore,
		hasher:             hasher,
		clock:              clock,
		cancellationWindow: cancellationWindow,
	}
}

func (q *reservationQueriesImpl) GetForViewer(ctx context.Context, id uuid.UUID, viewer Viewer) (*ReservationView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}

	if !q.canView(view, viewer) {
		return nil, ErrReservationAccess
	}
	return view, nil
}

func (q *reservationQueriesImpl) canView(view *ReservationView, viewer Viewer) bool {
	if viewer.Role == user.RoleAdmin {
		return true
	}
	if viewer.UserID != nil && view.UserID != nil && *viewer.UserID == *view.UserID {
		return true
	}
	if viewer.GuestToken == "" || view.GuestTokenHash == "" {
		return false
	}
	if view.TokenExpiresAt != nil && q.clock.Now().After(*view.TokenExpiresAt) {
		return false
	}
	presented := q.hasher.Hash(viewer.GuestToken)
	return subtle.ConstantTimeCompare([]byte(presented), []byte(view.GuestTokenHash)) == 1
}

// ListForUser decorates each reservation with whether it can still be
// cancelled and a human readable countdown.
func (q *reservationQueriesImpl) ListForUser(ctx context.Context, userID uuid.UUID) ([]*UserReservationItem, error) {
	items, err := q.readStore.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := q.clock.Now()
	for _, item := range items {
		item.CanCancel = item.Status != reservation.StatusCancelled.String() &&
			reservation.CanCancel(item.EventDate, now, q.cancellationWindow)
		item.TimeUntilEvent = reservation.TimeUntilEvent(item.EventDate, now)
	}
	return items, nil
}
