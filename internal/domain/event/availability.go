package event

import "github.com/google/uuid"

type Availability struct {
	EventID     uuid.UUID
	MaxCapacity int
	Confirmed   int
	Remaining   int
	Requested   int
	Available   bool
}

// CheckAvailability compares a request against the confirmed occupancy.
// Waitlisted and cancelled reservations never count toward occupancy.
func (e *Event) CheckAvailability(confirmed, requested int) Availability {
	remaining := max(e.maxCapacity-confirmed, 0)
	return Availability{
		EventID:     e.id,
		MaxCapacity: e.maxCapacity,
		Confirmed:   confirmed,
		Remaining:   remaining,
		Requested:   requested,
		Available:   requested <= remaining,
	}
}
