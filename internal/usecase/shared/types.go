package shared

import (
	"time"

	"github.com/google/uuid"
)

// Minimal snapshots for command read operations

type EventSnapshot struct {
	ID            uuid.UUID
	ChefID        uuid.UUID
	Title         string
	Date          time.Time
	MaxCapacity   int
	Status        string
	AllowWaitlist bool
}

type ReservationSnapshot struct {
	ID             uuid.UUID
	EventID        uuid.UUID
	UserID         *uuid.UUID
	GuestName      *string
	GuestEmail     *string
	TokenExpiresAt *time.Time
	GuestCount     int
	Status         string
	CreatedAt      time.Time
}

type UserSnapshot struct {
	ID    uuid.UUID
	Email string
	Name  string
	Role  string
}

type NotificationJob struct {
	ID       uuid.UUID
	Kind     string
	Topic    string
	Payload  []byte
	RunAt    time.Time
	Attempts int32
}
