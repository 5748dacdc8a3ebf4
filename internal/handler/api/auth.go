package api

import (
	"errors"
	"net/http"

	reqdto "dinner-club/internal/handler/dto/request"
	resdto "dinner-club/internal/handler/dto/response"
	"dinner-club/internal/handler/httperr"
	"dinner-club/internal/handler/middleware"
	"dinner-club/internal/pkg/config"
	"dinner-club/internal/pkg/cookie"
	"dinner-club/internal/pkg/errs"
	"dinner-club/internal/pkg/jwt"
	"dinner-club/internal/usecase/commands"
	"dinner-club/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

var (
	errMissingUserContext = errors.New("user_id missing from context")
	errMissingRefresh     = errors.New("refresh token missing")
)

type AuthHandler struct {
	commands   commands.AuthCommands
	queries    queries.UserQueries
	jwtService *jwt.Service
	jar        *cookie.Jar
}

func NewAuthHandler(cmds commands.AuthCommands, q queries.UserQueries, jwtService *jwt.Service, cfg config.Config) *AuthHandler {
	return &AuthHandler{
		commands:   cmds,
		queries:    q,
		jwtService: jwtService,
		jar:        cookie.NewJar(cfg.Cookie),
	}
}

// @Summary User login
// @Description Login with email and password; the session is returned as HttpOnly cookies
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.Envelope[resdto.LoginResponse]
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortValidation(c, err, "Invalid request format")
		return
	}

	credentials, err := req.ToDomain()
	if err != nil {
		httperr.AbortValidation(c, err, "Invalid request data")
		return
	}

	result, err := h.commands.Login(c.Request.Context(), credentials)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidCredentials):
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid email or password", nil)
		case errors.Is(err, commands.ErrUserInactive):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Account is disabled", nil)
		default:
			httperr.Abort(c, err)
		}
		return
	}

	h.jar.SetTokens(c, result.TokenPair.AccessToken, result.TokenPair.RefreshToken,
		h.jwtService.AccessTokenDuration(), h.jwtService.RefreshTokenDuration())

	userView, err := h.queries.GetCurrentUser(c.Request.Context(), result.UserID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.OK(resdto.LoginResponse{User: resdto.FromUserView(userView)}, "Logged in"))
}

// @Summary Refresh session
// @Description Rotate the access and refresh tokens using the refresh cookie or body token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.RefreshRequest false "Refresh request"
// @Success 200 {object} resdto.Envelope[any]
// @Failure 401 {object} httperr.Response
// @Router /auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	token := cookie.RefreshToken(c)
	if token == "" {
		var req reqdto.RefreshRequest
		// an empty body is fine when the cookie is absent too; that case is caught below
		_ = c.ShouldBindJSON(&req)
		token = req.RefreshToken
	}
	if token == "" {
		httperr.AbortResponse(c, errMissingRefresh,
			httperr.NewResponse(http.StatusUnauthorized, errs.KindUnauthorized, "Refresh token required", nil))
		return
	}

	pair, err := h.commands.RefreshToken(c.Request.Context(), token)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrUserInactive):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Account is disabled", nil)
		case errors.Is(err, commands.ErrTokenValidation), errors.Is(err, commands.ErrUserNotFound):
			h.jar.Clear(c)
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid or expired session", nil)
		default:
			httperr.Abort(c, err)
		}
		return
	}

	h.jar.SetTokens(c, pair.AccessToken, pair.RefreshToken,
		h.jwtService.AccessTokenDuration(), h.jwtService.RefreshTokenDuration())
	c.JSON(http.StatusOK, resdto.OK[any](nil, "Session refreshed"))
}

// @Summary User logout
// @Description Clear the session cookies
// @Tags auth
// @Security BearerAuth
// @Success 204 "No Content"
// @Failure 401 {object} httperr.Response
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	// tokens are stateless; dropping the cookies ends the browser session
	h.jar.Clear(c)
	c.Status(http.StatusNoContent)
}

// @Summary Get current user
// @Description Get current authenticated user information
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.Envelope[resdto.UserResponse]
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		// RequireAuth guarantees the id; reaching here is a wiring bug
		httperr.AbortWithError(c, http.StatusInternalServerError, errMissingUserContext, "Internal server error", nil)
		return
	}

	userView, err := h.queries.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.OK(resdto.FromUserView(userView), ""))
}
