package cookie

import (
	"net/http"
	"strings"
	"time"

	"dinner-club/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

const (
	AccessTokenName  = "access_token"
	RefreshTokenName = "refresh_token"

	// the refresh token is only ever read by the auth endpoints
	refreshPath = "/api/auth"
)

// Jar writes the session cookies with the configured domain and flags.
type Jar struct {
	cfg config.CookieConfig
}

func NewJar(cfg config.CookieConfig) *Jar {
	return &Jar{cfg: cfg}
}

func (j *Jar) SetTokens(c *gin.Context, accessToken, refreshToken string, accessTTL, refreshTTL time.Duration) {
	c.SetSameSite(sameSite(j.cfg.SameSite))
	c.SetCookie(AccessTokenName, accessToken, int(accessTTL.Seconds()), "/", j.cfg.Domain, j.cfg.Secure, true)
	c.SetCookie(RefreshTokenName, refreshToken, int(refreshTTL.Seconds()), refreshPath, j.cfg.Domain, j.cfg.Secure, true)
}

func (j *Jar) Clear(c *gin.Context) {
	c.SetSameSite(sameSite(j.cfg.SameSite))
	c.SetCookie(AccessTokenName, "", -1, "/", j.cfg.Domain, j.cfg.Secure, true)
	c.SetCookie(RefreshTokenName, "", -1, refreshPath, j.cfg.Domain, j.cfg.Secure, true)
}

func AccessToken(c *gin.Context) string {
	token, _ := c.Cookie(AccessTokenName)
	return token
}

func RefreshToken(c *gin.Context) string {
	token, _ := c.Cookie(RefreshTokenName)
	return token
}

func sameSite(mode string) http.SameSite {
	switch strings.ToLower(mode) {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
