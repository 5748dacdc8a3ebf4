package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"

	"dinner-club/internal/domain/user"
	"dinner-club/internal/handler/api"
	"dinner-club/internal/handler/middleware"
	"dinner-club/internal/pkg/config"
	"dinner-club/internal/pkg/metrics"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type RouterParams struct {
	fx.In

	Engine         *gin.Engine
	Config         config.Config
	Logger         *middleware.Logger
	Metrics        *metrics.Metrics
	AuthMiddleware *middleware.AuthMiddleware
	Limiter        middleware.Limiter

	Auth        *api.AuthHandler
	Event       *api.EventHandler
	Reservation *api.ReservationHandler
	Guest       *api.GuestHandler
	Cron        *api.CronHandler
	Health      *api.HealthHandler
}

func NewRouter(p RouterParams) {
	setupMiddleware(p)
	setupRoutes(p)
}

func setupMiddleware(p RouterParams) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	p.Engine.Use(middleware.CustomRecovery())
	p.Engine.Use(middleware.RequestDuration(p.Metrics.HTTPRequestDuration))
	p.Engine.Use(middleware.NewCORSMiddleware(p.Config.CORS))
	p.Engine.Use(p.Logger.LoggingMiddleware())
	p.Engine.Use(middleware.ErrorHandler())
}

func setupRoutes(p RouterParams) {
	engine, authMw := p.Engine, p.AuthMiddleware
	limited := middleware.RateLimit(p.Limiter)

	engine.GET("/health", p.Health.Check)
	engine.GET("/metrics", gin.WrapH(p.Metrics.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: p.Auth.Login, Mw: []gin.HandlerFunc{limited}},
				{Method: http.MethodPost, Path: "/refresh", Handler: p.Auth.Refresh},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMw.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: p.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: p.Auth.Me},
			})
		}

		events := apiGroup.Group("/events")
		{
			addRoutes(events, []route{
				{Method: http.MethodGet, Path: "", Handler: p.Event.List},
				{Method: http.MethodGet, Path: "/:id", Handler: p.Event.Get},
				{Method: http.MethodGet, Path: "/:id/availability", Handler: p.Event.Availability},
				{
					Method: http.MethodPost, Path: "", Handler: p.Event.Create,
					Mw: []gin.HandlerFunc{authMw.RequireAuth(), authMw.RequireRoleAtLeast(user.RoleChef)},
				},
				{
					Method: http.MethodPost, Path: "/:id/reservations", Handler: p.Reservation.Create,
					Mw: []gin.HandlerFunc{authMw.OptionalAuth()},
				},
			})
		}

		reservations := apiGroup.Group("/reservations")
		{
			addRoutes(reservations, []route{
				{Method: http.MethodGet, Path: "", Handler: p.Reservation.ListMine, Mw: []gin.HandlerFunc{authMw.RequireAuth()}},
				{Method: http.MethodGet, Path: "/:id", Handler: p.Reservation.Get, Mw: []gin.HandlerFunc{authMw.OptionalAuth()}},
				{
					Method: http.MethodPost, Path: "/:id/cancel", Handler: p.Reservation.Cancel,
					Mw: []gin.HandlerFunc{limited, authMw.OptionalAuth()},
				},
			})
		}

		addRoutes(apiGroup, []route{
			{Method: http.MethodPost, Path: "/guest-reservations/verify", Handler: p.Guest.Verify, Mw: []gin.HandlerFunc{limited}},
			{Method: http.MethodGet, Path: "/cron/cleanup-past-events", Handler: p.Cron.CleanupPastEvents},
			{Method: http.MethodPost, Path: "/cron/cleanup-past-events", Handler: p.Cron.CleanupPastEvents},
		})
	}
}

// per-route middleware runs inside gin's chain so c.Next() behaves as usual
func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		handlers := make([]gin.HandlerFunc, 0, len(r.Mw)+1)
		handlers = append(handlers, r.Mw...)
		handlers = append(handlers, r.Handler)
		g.Handle(r.Method, r.Path, handlers...)
	}
}
