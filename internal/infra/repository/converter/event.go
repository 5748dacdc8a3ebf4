package converter

import (
	"dinner-club/internal/domain/event"
	sqlc "dinner-club/internal/infra/sqlc/generated"
	"dinner-club/internal/pkg/pgconv"
)

func EventToCreateParams(e *event.Event) sqlc.CreateEventParams {
	return sqlc.CreateEventParams{
		ID:            e.ID(),
		ChefID:        e.ChefID(),
		Title:         e.Title(),
		Description:   e.Description(),
		EventDate:     pgconv.TimeToPgtype(e.Date()),
		MaxCapacity:   pgconv.IntToInt32(e.MaxCapacity()),
		Status:        e.Status().String(),
		AllowWaitlist: e.AllowWaitlist(),
		CreatedAt:     pgconv.TimeToPgtype(e.CreatedAt()),
		UpdatedAt:     pgconv.TimeToPgtype(e.UpdatedAt()),
	}
}

func EventFromInfra(row sqlc.Events) (*event.Event, error) {
	status, err := event.NewStatus(row.Status)
	if err != nil {
		return nil, err
	}

	return event.ReconstructEvent(
		row.ID,
		row.ChefID,
		row.Title,
		row.Description,
		pgconv.TimeFromPgtype(row.EventDate),
		int(row.MaxCapacity),
		status,
		row.AllowWaitlist,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}
