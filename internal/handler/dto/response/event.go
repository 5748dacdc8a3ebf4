package response

import (
	"time"

	"dinner-club/internal/domain/event"
	"dinner-club/internal/usecase/commands"
	"dinner-club/internal/usecase/queries"

	"github.com/google/uuid"
)

type EventResponse struct {
	ID               uuid.UUID `json:"id"`
	ChefID           uuid.UUID `json:"chefId"`
	ChefName         string    `json:"chefName,omitempty"`
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	Date             time.Time `json:"date"`
	MaxCapacity      int       `json:"maxCapacity"`
	Status           string    `json:"status"`
	AllowWaitlist    bool      `json:"allowWaitlist"`
	ConfirmedGuests  int       `json:"confirmedGuests"`
	WaitlistedGuests int       `json:"waitlistedGuests"`
	RemainingSpots   int       `json:"remainingSpots"`
	CreatedAt        time.Time `json:"createdAt"`
}

type AvailabilityResponse struct {
	EventID     uuid.UUID `json:"eventId"`
	MaxCapacity int       `json:"maxCapacity"`
	Confirmed   int       `json:"confirmedGuests"`
	Remaining   int       `json:"remainingSpots"`
	Requested   int       `json:"requestedGuests"`
	Available   bool      `json:"available"`
}

type EventSummaryResponse struct {
	ID     uuid.UUID `json:"id"`
	Title  string    `json:"title"`
	Date   time.Time `json:"date"`
	Status string    `json:"status"`
}

func FromEventView(v *queries.EventView) EventResponse {
	var out EventResponse
	copyFields(&out, v)
	return out
}

func FromEventViews(views []*queries.EventView) []EventResponse {
	out := make([]EventResponse, 0, len(views))
	for _, v := range views {
		out = append(out, FromEventView(v))
	}
	return out
}

// a freshly created event has no reservations yet
func FromEventResult(r *commands.EventResult) EventResponse {
	var out EventResponse
	copyFields(&out, r)
	out.RemainingSpots = r.MaxCapacity
	return out
}

func FromAvailability(a *event.Availability) AvailabilityResponse {
	var out AvailabilityResponse
	copyFields(&out, a)
	return out
}
