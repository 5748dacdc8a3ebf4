package queries

import (
	"context"
	"time"

	"dinner-club/internal/infra"
	"dinner-club/internal/pkg/clock"
	"dinner-club/internal/pkg/errs"

	"github.com/google/uuid"
)

const (
	defaultEventLimit = 50
	maxEventLimit     = 200
)

var ErrEventNotFound = errs.Tagged(errs.KindNotFound, "Event not found")

type EventQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*EventView, error)
	ListUpcoming(ctx context.Context, limit int) ([]*EventView, error)
}

type EventReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*EventView, error)
	ListUpcoming(ctx context.Context, now time.Time, limit int32) ([]*EventView, error)
}

type eventQueriesImpl struct {
	readStore EventReadStore
	clock     clock.Clock
}

func NewEventQueries(readStore EventReadStore, clock clock.Clock) EventQueries {
	return &eventQueriesImpl{readStore: readStore, clock: clock}
}

func (q *eventQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*EventView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	return view, nil
}

// ListUpcoming returns bookable events dated from now on, soonest first.
func (q *eventQueriesImpl) ListUpcoming(ctx context.Context, limit int) ([]*EventView, error) {
	if limit <= 0 {
		limit = defaultEventLimit
	}
	limit = min(limit, maxEventLimit)
	return q.readStore.ListUpcoming(ctx, q.clock.Now(), int32(limit)) // #nosec G115 -- bounded above
}
