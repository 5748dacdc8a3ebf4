package commands

import (
	"context"
	"log/slog"
	"time"

	"dinner-club/internal/domain/event"
	"dinner-club/internal/pkg/clock"
	"dinner-club/internal/pkg/errs"
	"dinner-club/internal/usecase/shared"
)

const DefaultRetentionDays = 30

type CleanupResult struct {
	Deleted int64
	Cutoff  time.Time
}

type CleanupCommands interface {
	CleanupPastEvents(ctx context.Context) (*CleanupResult, error)
}

type cleanupCommandsImpl struct {
	uow           shared.UnitOfWork
	recorder      Recorder
	clock         clock.Clock
	retentionDays int
}

func NewCleanupCommands(uow shared.UnitOfWork, recorder Recorder, clock clock.Clock, retentionDays int) CleanupCommands {
	if retentionDays <= 0 {
		retentionDays = DefaultRetentionDays
	}
	return &cleanupCommandsImpl{
		uow:           uow,
		recorder:      recorder,
		clock:         clock,
		retentionDays: retentionDays,
	}
}

// CleanupPastEvents removes events older than the retention window.
// Reservations go with them through the foreign key cascade; events with an
// active poll are kept regardless of age.
func (c *cleanupCommandsImpl) CleanupPastEvents(ctx context.Context) (*CleanupResult, error) {
	cutoff := c.clock.Now().AddDate(0, 0, -c.retentionDays)

	var deleted int64
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		n, err := tx.Events().DeletePast(ctx, cutoff, event.DeletableStatuses)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		deleted = n
		return nil
	})
	if err != nil {
		return nil, err
	}

	c.recorder.AddEventsDeleted(deleted)
	slog.Info("past events cleaned up", "deleted", deleted, "cutoff", cutoff)

	return &CleanupResult{Deleted: deleted, Cutoff: cutoff}, nil
}
