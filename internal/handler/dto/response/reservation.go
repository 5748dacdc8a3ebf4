package response

import (
	"time"

	"dinner-club/internal/usecase/commands"
	"dinner-club/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationResponse struct {
	ID             uuid.UUID  `json:"id"`
	EventID        uuid.UUID  `json:"eventId"`
	UserID         *uuid.UUID `json:"userId,omitempty"`
	GuestName      *string    `json:"guestName,omitempty"`
	GuestEmail     *string    `json:"guestEmail,omitempty"`
	TokenExpiresAt *time.Time `json:"tokenExpiresAt,omitempty"`
	GuestCount     int        `json:"guestCount"`
	Status         string     `json:"status"`
	CreatedAt      time.Time  `json:"createdAt"`
}

type CreateReservationResponse struct {
	Reservation ReservationResponse `json:"reservation"`
	// only present for guest bookings; shown once
	GuestToken  string `json:"guestToken,omitempty"`
	Waitlisted  bool   `json:"waitlisted"`
	EventStatus string `json:"eventStatus"`
}

type CancelReservationResponse struct {
	Cancelled            ReservationResponse   `json:"cancelled"`
	PromotedFromWaitlist int                   `json:"promotedFromWaitlist"`
	Promoted             []ReservationResponse `json:"promoted"`
	EventStatus          string                `json:"eventStatus"`
}

type ReservationDetailResponse struct {
	ID             uuid.UUID  `json:"id"`
	EventID        uuid.UUID  `json:"eventId"`
	EventTitle     string     `json:"eventTitle"`
	EventDate      time.Time  `json:"eventDate"`
	EventStatus    string     `json:"eventStatus"`
	UserID         *uuid.UUID `json:"userId,omitempty"`
	GuestName      *string    `json:"guestName,omitempty"`
	GuestEmail     *string    `json:"guestEmail,omitempty"`
	TokenExpiresAt *time.Time `json:"tokenExpiresAt,omitempty"`
	GuestCount     int        `json:"guestCount"`
	Status         string     `json:"status"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

type UserReservationResponse struct {
	ID             uuid.UUID `json:"id"`
	EventID        uuid.UUID `json:"eventId"`
	EventTitle     string    `json:"eventTitle"`
	EventDate      time.Time `json:"eventDate"`
	EventStatus    string    `json:"eventStatus"`
	GuestCount     int       `json:"guestCount"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"createdAt"`
	CanCancel      bool      `json:"canCancel"`
	TimeUntilEvent string    `json:"timeUntilEvent"`
}

type GuestReservationResponse struct {
	Reservation ReservationResponse  `json:"reservation"`
	Event       EventSummaryResponse `json:"event"`
}

type CleanupResponse struct {
	DeletedCount int64     `json:"deletedCount"`
	Cutoff       time.Time `json:"cutoff"`
	Timestamp    time.Time `json:"timestamp"`
}

func FromReservationResult(r commands.ReservationResult) ReservationResponse {
	var out ReservationResponse
	copyFields(&out, &r)
	return out
}

func FromCreateReservationResult(r *commands.CreateReservationResult) CreateReservationResponse {
	return CreateReservationResponse{
		Reservation: FromReservationResult(r.Reservation),
		GuestToken:  r.GuestToken,
		Waitlisted:  r.Waitlisted,
		EventStatus: r.EventStatus,
	}
}

func FromCancelResult(r *commands.CancelResult) CancelReservationResponse {
	promoted := make([]ReservationResponse, 0, len(r.Promoted))
	for _, p := range r.Promoted {
		promoted = append(promoted, FromReservationResult(p))
	}
	return CancelReservationResponse{
		Cancelled:            FromReservationResult(r.Cancelled),
		PromotedFromWaitlist: r.PromotedFromWaitlist,
		Promoted:             promoted,
		EventStatus:          r.EventStatus,
	}
}

func FromReservationView(v *queries.ReservationView) ReservationDetailResponse {
	var out ReservationDetailResponse
	copyFields(&out, v)
	return out
}

func FromUserReservationItems(items []*queries.UserReservationItem) []UserReservationResponse {
	out := make([]UserReservationResponse, 0, len(items))
	for _, it := range items {
		var r UserReservationResponse
		copyFields(&r, it)
		out = append(out, r)
	}
	return out
}

func FromGuestReservationResult(r *commands.GuestReservationResult) GuestReservationResponse {
	var ev EventSummaryResponse
	copyFields(&ev, &r.Event)
	return GuestReservationResponse{
		Reservation: FromReservationResult(r.Reservation),
		Event:       ev,
	}
}

func FromCleanupResult(r *commands.CleanupResult, at time.Time) CleanupResponse {
	return CleanupResponse{DeletedCount: r.Deleted, Cutoff: r.Cutoff, Timestamp: at}
}
