package notifier

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"dinner-club/internal/pkg/clock"
	"dinner-club/internal/usecase/shared"
)

const (
	resultSent   = "sent"
	resultFailed = "failed"

	maxBackoff = 30 * time.Minute
	// claimed jobs stay invisible to other relays this long
	leaseDuration = 5 * time.Minute
)

type RelayRecorder interface {
	IncRelayed(result string)
}

type RelayConfig struct {
	PollInterval time.Duration
	BatchSize    int32
	MaxAttempts  int32
}

// Relay drains notification_jobs into the broker. Jobs are leased in a short
// transaction and published outside it, so no row lock is held across broker
// I/O and several app instances can run a relay at once. Delivery is
// at-least-once: a crash between publish and recording the outcome re-sends
// the job after its lease expires. Message.ID is the job id, for consumer
// side de-duplication.
type Relay struct {
	uow       shared.UnitOfWork
	publisher Publisher
	clock     clock.Clock
	recorder  RelayRecorder
	cfg       RelayConfig

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewRelay(uow shared.UnitOfWork, publisher Publisher, clock clock.Clock, recorder RelayRecorder, cfg RelayConfig) *Relay {
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = 5 * time.Second
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 50
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 5
	}
	return &Relay{
		uow:       uow,
		publisher: publisher,
		clock:     clock,
		recorder:  recorder,
		cfg:       cfg,
	}
}

func (r *Relay) Start(_ context.Context) error {
	ctx, cancel := context.WithCancel(context.Background())
	r.cancel = cancel

	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		ticker := time.NewTicker(r.cfg.PollInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if _, err := r.RunOnce(ctx); err != nil && ctx.Err() == nil {
					slog.Warn("notification relay pass failed", "error", err.Error())
				}
			}
		}
	}()

	slog.Info("notification relay started", "interval", r.cfg.PollInterval.String(), "batch", r.cfg.BatchSize)
	return nil
}

func (r *Relay) Stop(ctx context.Context) error {
	if r.cancel != nil {
		r.cancel()
	}

	done := make(chan struct{})
	go func() {
		r.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		return ctx.Err()
	}
	return r.publisher.Close()
}

// RunOnce relays one batch and returns how many jobs were published.
func (r *Relay) RunOnce(ctx context.Context) (int, error) {
	now := r.clock.Now()

	var jobs []shared.NotificationJob
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		jobs, err = tx.Notifications().ClaimDue(ctx, now, now.Add(leaseDuration), r.cfg.BatchSize)
		return err
	})
	if err != nil {
		return 0, err
	}

	sent := 0
	for _, job := range jobs {
		msg := Message{ID: job.ID.String(), Topic: job.Topic, Body: job.Payload}
		pubErr := r.publisher.Publish(ctx, msg)

		if err := r.record(ctx, job, pubErr, now); err != nil {
			// the lease brings the job back; a sent job may then go out twice
			slog.Error("failed to record notification outcome",
				"job_id", job.ID,
				"published", pubErr == nil,
				"error", err.Error())
			return sent, err
		}

		if pubErr != nil {
			r.recorder.IncRelayed(resultFailed)
			slog.Warn("notification publish failed",
				"job_id", job.ID,
				"topic", job.Topic,
				"attempt", job.Attempts+1,
				"error", pubErr.Error())
			continue
		}
		r.recorder.IncRelayed(resultSent)
		sent++
	}
	return sent, nil
}

func (r *Relay) record(ctx context.Context, job shared.NotificationJob, pubErr error, now time.Time) error {
	return r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if pubErr != nil {
			next := now.Add(backoff(job.Attempts))
			return tx.Notifications().MarkFailed(ctx, job.ID, pubErr.Error(), next, now, r.cfg.MaxAttempts)
		}
		return tx.Notifications().MarkSent(ctx, job.ID, now)
	})
}

// backoff doubles from 30s per prior attempt, capped.
func backoff(attempts int32) time.Duration {
	d := 30 * time.Second
	for i := int32(0); i < attempts && d < maxBackoff; i++ {
		d *= 2
	}
	return min(d, maxBackoff)
}
