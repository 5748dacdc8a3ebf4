package response

import (
	"dinner-club/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserResponse struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Name     string    `json:"name"`
	Role     string    `json:"role"`
	IsActive bool      `json:"isActive"`
}

// tokens travel in HttpOnly cookies, never in the body
type LoginResponse struct {
	User UserResponse `json:"user"`
}

func FromUserView(v *queries.AuthorizedUserView) UserResponse {
	var out UserResponse
	copyFields(&out, v)
	return out
}
