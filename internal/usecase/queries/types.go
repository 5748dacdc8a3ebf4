package queries

import (
	"time"

	"github.com/google/uuid"
)

// AuthorizedUserView represents read-optimized user data with authorization info
type AuthorizedUserView struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Name     string    `json:"name"`
	Role     string    `json:"role"`
	IsActive bool      `json:"is_active"`
}

// EventView carries occupancy alongside the event so listings need one query.
type EventView struct {
	ID               uuid.UUID `json:"id"`
	ChefID           uuid.UUID `json:"chef_id"`
	ChefName         string    `json:"chef_name"`
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	Date             time.Time `json:"date"`
	MaxCapacity      int       `json:"max_capacity"`
	Status           string    `json:"status"`
	AllowWaitlist    bool      `json:"allow_waitlist"`
	ConfirmedGuests  int       `json:"confirmed_guests"`
	WaitlistedGuests int       `json:"waitlisted_guests"`
	RemainingSpots   int       `json:"remaining_spots"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type ReservationView struct {
	ID             uuid.UUID  `json:"id"`
	EventID        uuid.UUID  `json:"event_id"`
	EventTitle     string     `json:"event_title"`
	EventDate      time.Time  `json:"event_date"`
	EventStatus    string     `json:"event_status"`
	UserID         *uuid.UUID `json:"user_id,omitempty"`
	GuestName      *string    `json:"guest_name,omitempty"`
	GuestEmail     *string    `json:"guest_email,omitempty"`
	GuestTokenHash string     `json:"-"`
	TokenExpiresAt *time.Time `json:"token_expires_at,omitempty"`
	GuestCount     int        `json:"guest_count"`
	Status         string     `json:"status"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// UserReservationItem is one row of a user's reservation list with derived fields.
type UserReservationItem struct {
	ID             uuid.UUID `json:"id"`
	EventID        uuid.UUID `json:"event_id"`
	EventTitle     string    `json:"event_title"`
	EventDate      time.Time `json:"event_date"`
	EventStatus    string    `json:"event_status"`
	GuestCount     int       `json:"guest_count"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
	CanCancel      bool      `json:"can_cancel"`
	TimeUntilEvent string    `json:"time_until_event"`
}
