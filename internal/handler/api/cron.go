package api

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"net/http"

	resdto "dinner-club/internal/handler/dto/response"
	"dinner-club/internal/handler/httperr"
	"dinner-club/internal/pkg/clock"
	"dinner-club/internal/pkg/config"
	"dinner-club/internal/pkg/errs"
	"dinner-club/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

var errCronUnauthorized = errors.New("cron secret mismatch")

type CronHandler struct {
	cleanup commands.CleanupCommands
	secret  []byte
	clock   clock.Clock
}

func NewCronHandler(cleanup commands.CleanupCommands, cfg config.Config, clk clock.Clock) *CronHandler {
	return &CronHandler{cleanup: cleanup, secret: []byte("Bearer " + cfg.Cron.Secret), clock: clk}
}

// @Summary Clean up past events
// @Description Delete events older than the retention period; their reservations cascade. Called by the scheduler with the cron secret.
// @Tags cron
// @Produce json
// @Security CronSecret
// @Success 200 {object} resdto.Envelope[resdto.CleanupResponse]
// @Failure 401 {object} httperr.Response
// @Router /cron/cleanup-past-events [post]
// @Router /cron/cleanup-past-events [get]
func (h *CronHandler) CleanupPastEvents(c *gin.Context) {
	header := []byte(c.GetHeader("Authorization"))
	if subtle.ConstantTimeCompare(header, h.secret) != 1 {
		httperr.AbortResponse(c, errCronUnauthorized,
			httperr.NewResponse(http.StatusUnauthorized, errs.KindUnauthorized, "Unauthorized", nil))
		return
	}

	result, err := h.cleanup.CleanupPastEvents(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	msg := fmt.Sprintf("Successfully cleaned up %d past events", result.Deleted)
	c.JSON(http.StatusOK, resdto.OK(resdto.FromCleanupResult(result, h.clock.Now()), msg))
}
