package event

import (
	"strings"
	"time"

	"dinner-club/internal/pkg/errs"

	"github.com/google/uuid"
)

const (
	MaxTitleLength = 200
	MaxCapacity    = 500
)

var (
	ErrInvalidStatus   = errs.Tagged(errs.KindValidation, "invalid event status")
	ErrInvalidTitle    = errs.Tagged(errs.KindValidation, "title must be between 1 and 200 characters")
	ErrInvalidCapacity = errs.Tagged(errs.KindValidation, "max capacity must be between 1 and 500")
	ErrDateInPast      = errs.Tagged(errs.KindValidation, "event date must be in the future")
)

type Event struct {
	id            uuid.UUID
	chefID        uuid.UUID
	title         string
	description   string
	date          time.Time
	maxCapacity   int
	status        Status
	allowWaitlist bool
	createdAt     time.Time
	updatedAt     time.Time
}

type NewEventParams struct {
	ChefID        uuid.UUID
	Title         string
	Description   string
	Date          time.Time
	MaxCapacity   int
	AllowWaitlist bool
	Publish       bool
}

func NewEvent(p NewEventParams, now time.Time) (*Event, error) {
	title := strings.TrimSpace(p.Title)
	if title == "" || len(title) > MaxTitleLength {
		return nil, ErrInvalidTitle
	}
	if p.MaxCapacity < 1 || p.MaxCapacity > MaxCapacity {
		return nil, ErrInvalidCapacity
	}
	if !p.Date.After(now) {
		return nil, ErrDateInPast
	}

	status := StatusDraft
	if p.Publish {
		status = StatusOpen
	}

	return &Event{
		id:            uuid.New(),
		chefID:        p.ChefID,
		title:         title,
		description:   strings.TrimSpace(p.Description),
		date:          p.Date,
		maxCapacity:   p.MaxCapacity,
		status:        status,
		allowWaitlist: p.AllowWaitlist,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

func ReconstructEvent(
	id, chefID uuid.UUID,
	title, description string,
	date time.Time,
	maxCapacity int,
	status Status,
	allowWaitlist bool,
	createdAt, updatedAt time.Time,
) *Event {
	return &Event{
		id:            id,
		chefID:        chefID,
		title:         title,
		description:   description,
		date:          date,
		maxCapacity:   maxCapacity,
		status:        status,
		allowWaitlist: allowWaitlist,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

func (e *Event) ID() uuid.UUID        { return e.id }
func (e *Event) ChefID() uuid.UUID    { return e.chefID }
func (e *Event) Title() string        { return e.title }
func (e *Event) Description() string  { return e.description }
func (e *Event) Date() time.Time      { return e.date }
func (e *Event) MaxCapacity() int     { return e.maxCapacity }
func (e *Event) Status() Status       { return e.status }
func (e *Event) AllowWaitlist() bool  { return e.allowWaitlist }
func (e *Event) CreatedAt() time.Time { return e.createdAt }
func (e *Event) UpdatedAt() time.Time { return e.updatedAt }

// StatusFor derives the status the event should have at the given confirmed
// occupancy. Statuses outside OPEN/FULL are never overwritten.
func (e *Event) StatusFor(confirmed int) Status {
	if !e.status.IsBookable() {
		return e.status
	}
	if confirmed >= e.maxCapacity {
		return StatusFull
	}
	return StatusOpen
}

// ApplyOccupancy moves the event to its derived status and reports whether it changed.
func (e *Event) ApplyOccupancy(confirmed int, now time.Time) bool {
	next := e.StatusFor(confirmed)
	if next == e.status {
		return false
	}
	e.status = next
	e.updatedAt = now
	return true
}
