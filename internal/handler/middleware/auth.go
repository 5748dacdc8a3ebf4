package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"dinner-club/internal/domain/user"
	"dinner-club/internal/handler/httperr"
	"dinner-club/internal/pkg/cookie"
	"dinner-club/internal/pkg/errs"
	"dinner-club/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const (
	ctxUserIDKey   = "user_id"
	ctxUserRoleKey = "user_role"

	// GuestTokenHeader carries the plaintext guest token on guest-facing routes.
	GuestTokenHeader = "X-Guest-Token"
)

var (
	errTokenRequired      = errors.New("access token required")
	errRoleMissing        = errors.New("role missing from context")
	errInsufficientAccess = errors.New("insufficient permissions")
)

var roleHierarchy = map[user.Role]int{
	user.RoleAttendee: 1,
	user.RoleChef:     2,
	user.RoleAdmin:    3,
}

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

// cookie first, then the Authorization header
func bearerToken(c *gin.Context) string {
	if token := cookie.AccessToken(c); token != "" {
		return token
	}
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			abortAuth(c, http.StatusUnauthorized, errTokenRequired, "Authentication required")
			return
		}

		userID, role, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			abortAuth(c, http.StatusUnauthorized, err, "Invalid or expired token")
			return
		}

		setCaller(c, userID, role)
		c.Next()
	}
}

// OptionalAuth authenticates the request if a token is present, but does not
// abort on failure: guests book and cancel without an account.
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.Next()
			return
		}

		userID, role, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Debug("Ignoring invalid token on optional auth route", "error", err.Error())
			c.Next()
			return
		}

		setCaller(c, userID, role)
		c.Next()
	}
}

func hasMinimumRole(userRole, minRole user.Role) bool {
	userLevel, userExists := roleHierarchy[userRole]
	minLevel, minExists := roleHierarchy[minRole]
	return userExists && minExists && userLevel >= minLevel
}

// RequireRoleAtLeast must run after RequireAuth.
func (m *AuthMiddleware) RequireRoleAtLeast(minRole user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := GetUserRole(c)
		if !ok {
			httperr.AbortWithError(c, http.StatusInternalServerError, errRoleMissing, "Internal server error", nil)
			return
		}

		if !hasMinimumRole(role, minRole) {
			abortAuth(c, http.StatusForbidden, errInsufficientAccess, "Insufficient permissions")
			return
		}

		c.Next()
	}
}

func abortAuth(c *gin.Context, status int, err error, msg string) {
	httperr.AbortResponse(c, err, httperr.NewResponse(status, errs.KindUnauthorized, msg, nil))
}

func setCaller(c *gin.Context, userID uuid.UUID, role user.Role) {
	c.Set(ctxUserIDKey, userID)
	c.Set(ctxUserRoleKey, role)
	c.Set("jwt_claims", map[string]any{
		"user_id": userID.String(),
		"role":    string(role),
	})
}

func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get(ctxUserIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := userID.(uuid.UUID)
	return id, ok
}

func GetUserRole(c *gin.Context) (user.Role, bool) {
	userRole, exists := c.Get(ctxUserRoleKey)
	if !exists {
		return "", false
	}

	role, ok := userRole.(user.Role)
	return role, ok
}
