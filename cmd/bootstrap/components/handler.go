package components

import (
	"dinner-club/internal/handler"
	"dinner-club/internal/handler/api"
	"dinner-club/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewEventHandler,
		api.NewReservationHandler,
		api.NewGuestHandler,
		api.NewCronHandler,
		api.NewHealthHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
