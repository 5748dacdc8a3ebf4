package reservation

import (
	"time"

	"dinner-club/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus        = errs.Tagged(errs.KindValidation, "invalid reservation status")
	ErrInvalidGuestName     = errs.Tagged(errs.KindValidation, "guest name is required")
	ErrInvalidGuestEmail    = errs.Tagged(errs.KindValidation, "a valid guest email is required")
	ErrInvalidGuestCount    = errs.Tagged(errs.KindValidation, "guest count is out of range")
	ErrIdentityRequired     = errs.Tagged(errs.KindValidation, "either a user or guest contact details are required")
	ErrAlreadyCancelled     = errs.Tagged(errs.KindAlreadyCancelled, "Reservation is already cancelled")
	ErrNotWaitlisted        = errs.Tagged(errs.KindValidation, "only waitlisted reservations can be promoted")
	ErrNotGuestReservation  = errs.Tagged(errs.KindUnauthorized, "This is not a guest reservation")
	ErrNotOwner             = errs.Tagged(errs.KindUnauthorized, "You can only cancel your own reservations")
	ErrGuestTokenOnUserBook = errs.Tagged(errs.KindValidation, "guest tokens are only issued for guest reservations")
)

// Reservation belongs to exactly one of a user account or a guest contact.
type Reservation struct {
	id         uuid.UUID
	eventID    uuid.UUID
	userID     *uuid.UUID
	guest      *Guest
	token      *GuestToken
	guestCount GuestCount
	status     Status
	createdAt  time.Time
	updatedAt  time.Time
}

func NewUserReservation(eventID, userID uuid.UUID, count GuestCount, status Status, now time.Time) (*Reservation, error) {
	if userID == uuid.Nil {
		return nil, ErrIdentityRequired
	}
	if status != StatusConfirmed && status != StatusWaitlist {
		return nil, ErrInvalidStatus
	}
	uid := userID
	return &Reservation{
		id:         uuid.New(),
		eventID:    eventID,
		userID:     &uid,
		guestCount: count,
		status:     status,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

func NewGuestReservation(eventID uuid.UUID, guest Guest, count GuestCount, status Status, now time.Time) (*Reservation, error) {
	if guest.email == "" {
		return nil, ErrIdentityRequired
	}
	if status != StatusConfirmed && status != StatusWaitlist {
		return nil, ErrInvalidStatus
	}
	g := guest
	return &Reservation{
		id:         uuid.New(),
		eventID:    eventID,
		guest:      &g,
		guestCount: count,
		status:     status,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

type ReconstructParams struct {
	ID             uuid.UUID
	EventID        uuid.UUID
	UserID         *uuid.UUID
	GuestName      string
	GuestEmail     string
	TokenHash      string
	TokenExpiresAt *time.Time
	GuestCount     int
	Status         Status
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func ReconstructReservation(p ReconstructParams) *Reservation {
	r := &Reservation{
		id:         p.ID,
		eventID:    p.EventID,
		userID:     p.UserID,
		guestCount: GuestCount{value: p.GuestCount},
		status:     p.Status,
		createdAt:  p.CreatedAt,
		updatedAt:  p.UpdatedAt,
	}
	if p.UserID == nil {
		r.guest = &Guest{name: p.GuestName, email: p.GuestEmail}
	}
	if p.TokenHash != "" && p.TokenExpiresAt != nil {
		t := ReconstructGuestToken(p.TokenHash, *p.TokenExpiresAt)
		r.token = &t
	}
	return r
}

func (r *Reservation) ID() uuid.UUID           { return r.id }
func (r *Reservation) EventID() uuid.UUID      { return r.eventID }
func (r *Reservation) UserID() *uuid.UUID      { return r.userID }
func (r *Reservation) Guest() *Guest           { return r.guest }
func (r *Reservation) GuestToken() *GuestToken { return r.token }
func (r *Reservation) GuestCount() int         { return r.guestCount.Value() }
func (r *Reservation) Status() Status          { return r.status }
func (r *Reservation) CreatedAt() time.Time    { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time    { return r.updatedAt }

func (r *Reservation) IsGuest() bool {
	return r.userID == nil
}

func (r *Reservation) IsCancelled() bool {
	return r.status == StatusCancelled
}

func (r *Reservation) OwnedBy(userID uuid.UUID) bool {
	return r.userID != nil && *r.userID == userID
}

func (r *Reservation) AttachGuestToken(t GuestToken) error {
	if !r.IsGuest() {
		return ErrGuestTokenOnUserBook
	}
	r.token = &t
	return nil
}

// Cancel moves the reservation to CANCELLED and returns the number of
// confirmed seats it released.
func (r *Reservation) Cancel(now time.Time) (int, error) {
	if r.status == StatusCancelled {
		return 0, ErrAlreadyCancelled
	}
	freed := 0
	if r.status == StatusConfirmed {
		freed = r.guestCount.Value()
	}
	r.status = StatusCancelled
	r.updatedAt = now
	return freed, nil
}

func (r *Reservation) Promote(now time.Time) error {
	if r.status != StatusWaitlist {
		return ErrNotWaitlisted
	}
	r.status = StatusConfirmed
	r.updatedAt = now
	return nil
}
