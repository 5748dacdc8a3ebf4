package repository

import (
	"context"
	"time"

	"dinner-club/internal/domain/event"
	"dinner-club/internal/infra"
	"dinner-club/internal/infra/repository/converter"
	sqlc "dinner-club/internal/infra/sqlc/generated"
	"dinner-club/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type EventWriteQueries interface {
	LockEventForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Events, error)
	GetEventByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Events, error)
	CreateEvent(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateEventParams) (sqlc.Events, error)
	UpdateEventStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateEventStatusParams) error
	DeletePastEvents(ctx context.Context, db sqlc.DBTX, arg sqlc.DeletePastEventsParams) (int64, error)
}

type EventRepository struct {
	queries EventWriteQueries
	db      sqlc.DBTX
}

func NewEventRepository(queries EventWriteQueries, db sqlc.DBTX) *EventRepository {
	return &EventRepository{
		queries: queries,
		db:      db,
	}
}

func (r *EventRepository) LockByID(ctx context.Context, id uuid.UUID) (*event.Event, error) {
	row, err := r.queries.LockEventForUpdate(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("event not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock event", err)
	}
	return toEvent(row)
}

func (r *EventRepository) FindByID(ctx context.Context, id uuid.UUID) (*event.Event, error) {
	row, err := r.queries.GetEventByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("event not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find event", err)
	}
	return toEvent(row)
}

func toEvent(row sqlc.Events) (*event.Event, error) {
	e, err := converter.EventFromInfra(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert event", err, infra.KindDBFailure)
	}
	return e, nil
}

func (r *EventRepository) Create(ctx context.Context, e *event.Event) error {
	if _, err := r.queries.CreateEvent(ctx, r.db, converter.EventToCreateParams(e)); err != nil {
		return infra.WrapRepoErr("failed to create event", err)
	}
	return nil
}

func (r *EventRepository) UpdateStatus(ctx context.Context, e *event.Event) error {
	err := r.queries.UpdateEventStatus(ctx, r.db, sqlc.UpdateEventStatusParams{
		ID:        e.ID(),
		Status:    e.Status().String(),
		UpdatedAt: pgconv.TimeToPgtype(e.UpdatedAt()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update event status", err)
	}
	return nil
}

func (r *EventRepository) DeletePast(ctx context.Context, cutoff time.Time, statuses []event.Status) (int64, error) {
	names := make([]string, 0, len(statuses))
	for _, s := range statuses {
		names = append(names, s.String())
	}

	n, err := r.queries.DeletePastEvents(ctx, r.db, sqlc.DeletePastEventsParams{
		Cutoff:   pgconv.TimeToPgtype(cutoff),
		Statuses: names,
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete past events", err)
	}
	return n, nil
}
