package bootstrap

import (
	"dinner-club/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	MetricsModule,
	DBModule,
	JWTModule,
	RateLimitModule,
	components.PersistenceModule,
	components.UseCaseModule,
	NotifierModule,
	components.HandlerModule,
)
