package api

import (
	"errors"
	"io"
	"net/http"

	reqdto "dinner-club/internal/handler/dto/request"
	resdto "dinner-club/internal/handler/dto/response"
	"dinner-club/internal/handler/httperr"
	"dinner-club/internal/handler/middleware"
	"dinner-club/internal/pkg/errs"
	"dinner-club/internal/usecase/commands"
	"dinner-club/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

var errNoCancelProof = errors.New("no session or guest proof on cancel")

type ReservationHandler struct {
	cmds commands.ReservationCommands
	q    queries.ReservationQueries
}

func NewReservationHandler(cmds commands.ReservationCommands, q queries.ReservationQueries) *ReservationHandler {
	return &ReservationHandler{cmds: cmds, q: q}
}

// @Summary Create reservation
// @Description Book seats for the signed-in user, or as a guest with name and email. Books onto the waitlist when the event is full and allows it.
// @Tags reservations
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param request body reqdto.CreateReservationRequest true "Create reservation request"
// @Success 201 {object} resdto.Envelope[resdto.CreateReservationResponse]
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /events/{id}/reservations [post]
func (h *ReservationHandler) Create(c *gin.Context) {
	eventID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortValidation(c, err, "Invalid request")
		return
	}

	result, err := h.cmds.CreateReservation(c.Request.Context(), req.ToInput(eventID, optionalUserID(c)))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.OK(resdto.FromCreateReservationResult(result), result.Message))
}

// @Summary List my reservations
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.Envelope[[]resdto.UserReservationResponse]
// @Failure 401 {object} httperr.Response
// @Router /reservations [get]
func (h *ReservationHandler) ListMine(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errMissingUserContext, "Internal server error", nil)
		return
	}
	items, err := h.q.ListForUser(c.Request.Context(), userID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.OK(resdto.FromUserReservationItems(items), ""))
}

// @Summary Get reservation
// @Description Visible to its owner, admins, or a guest presenting the reservation's token in X-Guest-Token
// @Tags reservations
// @Produce json
// @Param id path string true "Reservation ID"
// @Param X-Guest-Token header string false "Guest token"
// @Success 200 {object} resdto.Envelope[resdto.ReservationDetailResponse]
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reservations/{id} [get]
func (h *ReservationHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	viewer := queries.Viewer{
		UserID:     optionalUserID(c),
		GuestToken: c.GetHeader(middleware.GuestTokenHeader),
	}
	viewer.Role, _ = middleware.GetUserRole(c)

	view, err := h.q.GetForViewer(c.Request.Context(), id, viewer)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.OK(resdto.FromReservationView(view), ""))
}

// @Summary Cancel reservation
// @Description Signed-in owners cancel directly; guests prove ownership with their token or booking email. Freed seats promote waitlisted parties.
// @Tags reservations
// @Accept json
// @Produce json
// @Param id path string true "Reservation ID"
// @Param request body reqdto.CancelReservationRequest false "Guest proof"
// @Success 200 {object} resdto.Envelope[resdto.CancelReservationResponse]
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reservations/{id}/cancel [post]
func (h *ReservationHandler) Cancel(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.CancelReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		httperr.AbortValidation(c, err, "Invalid request")
		return
	}
	if req.GuestToken == "" {
		req.GuestToken = c.GetHeader(middleware.GuestTokenHeader)
	}

	var (
		result *commands.CancelResult
		err    error
	)
	userID, signedIn := middleware.GetUserID(c)
	switch {
	case req.HasProof():
		result, err = h.cmds.CancelGuestReservation(c.Request.Context(), id, req.ToProof())
	case signedIn:
		result, err = h.cmds.CancelReservation(c.Request.Context(), id, userID)
	default:
		httperr.AbortResponse(c, errNoCancelProof, httperr.NewResponse(http.StatusUnauthorized, errs.KindUnauthorized,
			"Sign in, or provide the guest token or booking email", nil))
		return
	}
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.OK(resdto.FromCancelResult(result), result.Message))
}
