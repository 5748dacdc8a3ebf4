package readstore

import (
	"context"
	"time"

	"dinner-club/internal/infra"
	sqlc "dinner-club/internal/infra/sqlc/generated"
	"dinner-club/internal/pkg/pgconv"
	"dinner-club/internal/usecase/queries"

	"github.com/google/uuid"
)

type EventViewQueries interface {
	GetEventWithOccupancy(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetEventWithOccupancyRow, error)
	ListUpcomingEvents(ctx context.Context, db sqlc.DBTX, arg sqlc.ListUpcomingEventsParams) ([]sqlc.ListUpcomingEventsRow, error)
}

type EventReadStore struct {
	queries EventViewQueries
	db      sqlc.DBTX
}

func NewEventReadStore(queries EventViewQueries, db sqlc.DBTX) *EventReadStore {
	return &EventReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *EventReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.EventView, error) {
	row, err := r.queries.GetEventWithOccupancy(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("event not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find event by ID", err)
	}

	return toEventView(sqlc.ListUpcomingEventsRow(row)), nil
}

func (r *EventReadStore) ListUpcoming(ctx context.Context, now time.Time, limit int32) ([]*queries.EventView, error) {
	rows, err := r.queries.ListUpcomingEvents(ctx, r.db, sqlc.ListUpcomingEventsParams{
		Now:      pgconv.TimeToPgtype(now),
		RowLimit: limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list upcoming events", err)
	}

	views := make([]*queries.EventView, 0, len(rows))
	for _, row := range rows {
		views = append(views, toEventView(row))
	}
	return views, nil
}

func toEventView(row sqlc.ListUpcomingEventsRow) *queries.EventView {
	confirmed := int(row.ConfirmedGuests)
	capacity := int(row.MaxCapacity)
	return &queries.EventView{
		ID:               row.ID,
		ChefID:           row.ChefID,
		ChefName:         row.ChefName,
		Title:            row.Title,
		Description:      row.Description,
		Date:             pgconv.TimeFromPgtype(row.EventDate),
		MaxCapacity:      capacity,
		Status:           row.Status,
		AllowWaitlist:    row.AllowWaitlist,
		ConfirmedGuests:  confirmed,
		WaitlistedGuests: int(row.WaitlistedGuests),
		RemainingSpots:   max(capacity-confirmed, 0),
		CreatedAt:        pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:        pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
