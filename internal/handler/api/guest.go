package api

import (
	"errors"
	"net/http"
	"strings"

	reqdto "dinner-club/internal/handler/dto/request"
	resdto "dinner-club/internal/handler/dto/response"
	"dinner-club/internal/handler/httperr"
	"dinner-club/internal/handler/middleware"
	"dinner-club/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

var errTokenMissing = errors.New("guest token missing")

type GuestHandler struct {
	cmds commands.ReservationCommands
}

func NewGuestHandler(cmds commands.ReservationCommands) *GuestHandler {
	return &GuestHandler{cmds: cmds}
}

// @Summary Verify guest token
// @Description Resolve a guest token from the confirmation email to its reservation
// @Tags guest
// @Accept json
// @Produce json
// @Param request body reqdto.VerifyGuestTokenRequest false "Token (or X-Guest-Token header)"
// @Success 200 {object} resdto.Envelope[resdto.GuestReservationResponse]
// @Failure 400 {object} httperr.Response
// @Failure 429 {object} httperr.Response
// @Router /guest-reservations/verify [post]
func (h *GuestHandler) Verify(c *gin.Context) {
	var req reqdto.VerifyGuestTokenRequest
	// a bind failure only means the token may be in the header instead
	_ = c.ShouldBindJSON(&req)
	token := strings.TrimSpace(req.Token)
	if token == "" {
		token = strings.TrimSpace(c.GetHeader(middleware.GuestTokenHeader))
	}
	if token == "" {
		httperr.AbortValidation(c, errTokenMissing, "Token is required")
		return
	}

	result, err := h.cmds.ValidateGuestToken(c.Request.Context(), token)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.OK(resdto.FromGuestReservationResult(result), ""))
}
