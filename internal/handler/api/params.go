package api

import (
	"dinner-club/internal/handler/httperr"
	"dinner-club/internal/handler/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func pathID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		httperr.AbortValidation(c, err, "Invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}

// optionalUserID is nil for guests on OptionalAuth routes.
func optionalUserID(c *gin.Context) *uuid.UUID {
	id, ok := middleware.GetUserID(c)
	if !ok {
		return nil
	}
	return &id
}
