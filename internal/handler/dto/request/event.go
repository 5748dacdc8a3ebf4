package request

import (
	"strings"
	"time"

	"dinner-club/internal/usecase/commands"
)

type CreateEventRequest struct {
	Title         string    `json:"title" binding:"required,max=200"`
	Description   string    `json:"description" binding:"max=5000"`
	Date          time.Time `json:"date" binding:"required"`
	MaxCapacity   int       `json:"maxCapacity" binding:"required,min=1,max=500"`
	AllowWaitlist *bool     `json:"allowWaitlist"`
	Publish       bool      `json:"publish"`
}

// waitlists are on unless the chef opts out
func (r CreateEventRequest) ToInput() commands.CreateEventInput {
	allowWaitlist := true
	if r.AllowWaitlist != nil {
		allowWaitlist = *r.AllowWaitlist
	}
	return commands.CreateEventInput{
		Title:         strings.TrimSpace(r.Title),
		Description:   strings.TrimSpace(r.Description),
		Date:          r.Date,
		MaxCapacity:   r.MaxCapacity,
		AllowWaitlist: allowWaitlist,
		Publish:       r.Publish,
	}
}

type AvailabilityQuery struct {
	GuestCount int `form:"guestCount" binding:"required,min=1"`
}

type ListEventsQuery struct {
	Limit int `form:"limit" binding:"omitempty,min=1,max=200"`
}
