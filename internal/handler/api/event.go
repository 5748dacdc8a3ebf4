package api

import (
	"net/http"

	reqdto "dinner-club/internal/handler/dto/request"
	resdto "dinner-club/internal/handler/dto/response"
	"dinner-club/internal/handler/httperr"
	"dinner-club/internal/handler/middleware"
	"dinner-club/internal/usecase/commands"
	"dinner-club/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type EventHandler struct {
	cmds commands.EventCommands
	q    queries.EventQueries
}

func NewEventHandler(cmds commands.EventCommands, q queries.EventQueries) *EventHandler {
	return &EventHandler{cmds: cmds, q: q}
}

// @Summary List upcoming events
// @Description Open and full events dated from now on, soonest first
// @Tags events
// @Produce json
// @Param limit query int false "Max events (1-200)"
// @Success 200 {object} resdto.Envelope[[]resdto.EventResponse]
// @Failure 400 {object} httperr.Response
// @Router /events [get]
func (h *EventHandler) List(c *gin.Context) {
	var query reqdto.ListEventsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortValidation(c, err, "Invalid query")
		return
	}
	views, err := h.q.ListUpcoming(c.Request.Context(), query.Limit)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.OK(resdto.FromEventViews(views), ""))
}

// @Summary Get event
// @Tags events
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} resdto.Envelope[resdto.EventResponse]
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /events/{id} [get]
func (h *EventHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.OK(resdto.FromEventView(view), ""))
}

// @Summary Create event
// @Description Chefs and admins publish (or draft) a dinner event
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateEventRequest true "Create event request"
// @Success 201 {object} resdto.Envelope[resdto.EventResponse]
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /events [post]
func (h *EventHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errMissingUserContext, "Internal server error", nil)
		return
	}
	role, _ := middleware.GetUserRole(c)

	var req reqdto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortValidation(c, err, "Invalid request")
		return
	}

	result, err := h.cmds.CreateEvent(c.Request.Context(), commands.Actor{UserID: userID, Role: role}, req.ToInput())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.OK(resdto.FromEventResult(result), "Event created"))
}

// @Summary Check availability
// @Description Whether the requested party size fits in the remaining confirmed capacity
// @Tags events
// @Produce json
// @Param id path string true "Event ID"
// @Param guestCount query int true "Party size"
// @Success 200 {object} resdto.Envelope[resdto.AvailabilityResponse]
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /events/{id}/availability [get]
func (h *EventHandler) Availability(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var query reqdto.AvailabilityQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortValidation(c, err, "guestCount must be a positive number")
		return
	}
	availability, err := h.cmds.CheckAvailability(c.Request.Context(), id, query.GuestCount)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.OK(resdto.FromAvailability(availability), ""))
}
