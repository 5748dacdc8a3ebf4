package request

import (
	"strings"

	"dinner-club/internal/usecase/commands"

	"github.com/google/uuid"
)

// CreateReservationRequest books for the signed-in user, or for a guest when
// no session is present; guest name and email are checked by the domain.
type CreateReservationRequest struct {
	GuestCount int    `json:"guestCount" binding:"required,min=1"`
	GuestName  string `json:"guestName" binding:"omitempty,max=100"`
	GuestEmail string `json:"guestEmail" binding:"omitempty,email,max=254"`
}

func (r CreateReservationRequest) ToInput(eventID uuid.UUID, userID *uuid.UUID) commands.CreateReservationInput {
	input := commands.CreateReservationInput{
		EventID:    eventID,
		UserID:     userID,
		GuestCount: r.GuestCount,
	}
	if userID == nil {
		input.GuestName = strings.TrimSpace(r.GuestName)
		input.GuestEmail = strings.TrimSpace(r.GuestEmail)
	}
	return input
}

type CancelReservationRequest struct {
	GuestToken string `json:"guestToken"`
	GuestEmail string `json:"guestEmail"`
}

func (r CancelReservationRequest) ToProof() commands.GuestProof {
	return commands.GuestProof{
		Token: strings.TrimSpace(r.GuestToken),
		Email: strings.TrimSpace(r.GuestEmail),
	}
}

func (r CancelReservationRequest) HasProof() bool {
	p := r.ToProof()
	return p.Token != "" || p.Email != ""
}

type VerifyGuestTokenRequest struct {
	Token string `json:"token" binding:"required"`
}
