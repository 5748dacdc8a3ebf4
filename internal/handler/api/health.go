package api

import (
	"context"
	"net/http"
	"time"

	"dinner-club/internal/handler/httperr"
	sqlc "dinner-club/internal/infra/sqlc/generated"
	"dinner-club/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

const healthTimeout = 2 * time.Second

type HealthHandler struct {
	uow shared.UnitOfWork
}

func NewHealthHandler(uow shared.UnitOfWork) *HealthHandler {
	return &HealthHandler{uow: uow}
}

// @Summary Health check
// @Description Check if the service and its database are reachable
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} httperr.Response
// @Router /health [get]
func (h *HealthHandler) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
	defer cancel()

	err := h.uow.WithDB(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		_, err := db.Exec(ctx, "SELECT 1")
		return err
	})
	if err != nil {
		httperr.AbortResponse(c, err, httperr.NewResponse(http.StatusServiceUnavailable, "", "Database unavailable", nil))
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

