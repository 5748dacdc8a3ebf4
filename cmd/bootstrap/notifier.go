package bootstrap

import (
	"log/slog"

	"dinner-club/internal/infra/notifier"
	"dinner-club/internal/pkg/clock"
	"dinner-club/internal/pkg/config"
	"dinner-club/internal/pkg/metrics"
	"dinner-club/internal/usecase/shared"

	"go.uber.org/fx"
)

var NotifierModule = fx.Module("notifier",
	fx.Provide(
		NewPublisher,
		NewRelay,
	),
	fx.Invoke(func(lc fx.Lifecycle, relay *notifier.Relay) {
		lc.Append(fx.Hook{
			OnStart: relay.Start,
			OnStop:  relay.Stop,
		})
	}),
)

// NewPublisher falls back to logging when no broker is configured, so local
// runs keep draining the outbox.
func NewPublisher(cfg config.Config, logger *slog.Logger) notifier.Publisher {
	if cfg.AMQP.URL == "" {
		logger.Warn("AMQP_URL not set, notifications will only be logged")
		return notifier.NewLogPublisher(logger)
	}
	return notifier.NewAMQPPublisher(cfg.AMQP.URL, cfg.AMQP.EmailQueue)
}

func NewRelay(uow shared.UnitOfWork, publisher notifier.Publisher, clk clock.Clock, m *metrics.Metrics, cfg config.Config) *notifier.Relay {
	return notifier.NewRelay(uow, publisher, clk, m, notifier.RelayConfig{
		PollInterval: cfg.AMQP.PollInterval,
		BatchSize:    cfg.AMQP.BatchSize,
		MaxAttempts:  cfg.AMQP.MaxAttempts,
	})
}
