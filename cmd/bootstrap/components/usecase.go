package components

import (
	"dinner-club/internal/pkg/clock"
	"dinner-club/internal/pkg/config"
	"dinner-club/internal/pkg/guesttoken"
	"dinner-club/internal/pkg/metrics"
	"dinner-club/internal/usecase"
	"dinner-club/internal/usecase/commands"
	"dinner-club/internal/usecase/queries"
	"dinner-club/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func(cfg config.Config) *guesttoken.Issuer {
		return guesttoken.NewIssuer(cfg.Reservation.GuestTokenSecret)
	},
	func(i *guesttoken.Issuer) commands.TokenIssuer { return i },
	func(i *guesttoken.Issuer) queries.TokenHasher { return i },
	func(m *metrics.Metrics) commands.Recorder { return m },
	func(cfg config.Config) commands.ReservationPolicy {
		return commands.ReservationPolicy{
			CancellationWindow: cfg.Reservation.CancellationWindow,
			TokenGrace:         cfg.Reservation.TokenGracePeriod,
			MaxGuests:          cfg.Reservation.MaxGuestsPerBook,
		}
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewOutboxMailer,
		commands.NewAuthCommands,
		commands.NewEventCommands,
		commands.NewReservationCommands,
		func(uow shared.UnitOfWork, recorder commands.Recorder, clk clock.Clock, cfg config.Config) commands.CleanupCommands {
			return commands.NewCleanupCommands(uow, recorder, clk, cfg.Cron.RetentionDays)
		},
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewEventQueries,
		func(store queries.ReservationReadStore, hasher queries.TokenHasher, clk clock.Clock, cfg config.Config) queries.ReservationQueries {
			return queries.NewReservationQueries(store, hasher, clk, cfg.Reservation.CancellationWindow)
		},
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
