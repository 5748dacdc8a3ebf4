//go:build unit || e2e

package builder

import (
	"dinner-club/internal/domain/user"
	reqdto "dinner-club/internal/handler/dto/request"
)

type AuthBuilder struct {
	Email    string
	Password string
}

func NewAuthBuilder() *AuthBuilder {
	return &AuthBuilder{
		Email:    "test@example.com",
		Password: "password123",
	}
}

func (a *AuthBuilder) BuildDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		Email:    a.Email,
		Password: a.Password,
	}
}

func (a *AuthBuilder) BuildDomain() user.Credentials {
	creds, err := user.NewCredentials(a.Email, a.Password)
	if err != nil {
		panic(err)
	}
	return creds
}
