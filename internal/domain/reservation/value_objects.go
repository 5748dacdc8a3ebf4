package reservation

import (
	"regexp"
	"strings"
	"time"
)

const (
	MinGuestCount     = 1
	DefaultMaxGuests  = 20
	MaxGuestNameLen   = 100
	DefaultTokenGrace = 24 * time.Hour
)

var guestEmailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Guest is the contact identity of a reservation made without an account.
type Guest struct {
	name  string
	email string
}

func NewGuest(name, email string) (Guest, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" || len(name) > MaxGuestNameLen {
		return Guest{}, ErrInvalidGuestName
	}
	if !guestEmailRegex.MatchString(email) {
		return Guest{}, ErrInvalidGuestEmail
	}
	return Guest{name: name, email: email}, nil
}

func (g Guest) Name() string  { return g.name }
func (g Guest) Email() string { return g.email }

// MatchesEmail compares case-insensitively, the way mail providers treat addresses.
func (g Guest) MatchesEmail(email string) bool {
	return email != "" && strings.EqualFold(g.email, strings.TrimSpace(email))
}

type GuestCount struct {
	value int
}

func NewGuestCount(v, maxGuests int) (GuestCount, error) {
	if maxGuests <= 0 {
		maxGuests = DefaultMaxGuests
	}
	if v < MinGuestCount || v > maxGuests {
		return GuestCount{}, ErrInvalidGuestCount.WithDetail("max", maxGuests)
	}
	return GuestCount{value: v}, nil
}

func (g GuestCount) Value() int { return g.value }

// GuestToken is the persisted half of a guest token: its hash and expiry.
type GuestToken struct {
	hash      string
	expiresAt time.Time
}

// NewGuestToken expires the token a grace period after the event starts.
func NewGuestToken(hash string, eventDate time.Time, grace time.Duration) GuestToken {
	return GuestToken{hash: hash, expiresAt: eventDate.Add(grace)}
}

func ReconstructGuestToken(hash string, expiresAt time.Time) GuestToken {
	return GuestToken{hash: hash, expiresAt: expiresAt}
}

func (t GuestToken) Hash() string         { return t.hash }
func (t GuestToken) ExpiresAt() time.Time { return t.expiresAt }

func (t GuestToken) Expired(now time.Time) bool {
	return now.After(t.expiresAt)
}
