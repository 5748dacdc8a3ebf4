//go:build unit

package readstore

import (
	"context"
	"testing"
	"time"

	sqlc "dinner-club/internal/infra/sqlc/generated"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockEventViewQueries struct {
	mock.Mock
}

func (m *MockEventViewQueries) GetEventWithOccupancy(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetEventWithOccupancyRow, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.GetEventWithOccupancyRow), args.Error(1)
}

func (m *MockEventViewQueries) ListUpcomingEvents(ctx context.Context, db sqlc.DBTX, arg sqlc.ListUpcomingEventsParams) ([]sqlc.ListUpcomingEventsRow, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).([]sqlc.ListUpcomingEventsRow), args.Error(1)
}

func TestEventReadStore(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	ts := pgtype.Timestamptz{Time: now, Valid: true}

	t.Run("残席は定員から確定人数を引いた値", func(t *testing.T) {
		id := uuid.New()
		mockQueries := new(MockEventViewQueries)
		mockQueries.On("GetEventWithOccupancy", mock.Anything, mock.Anything, id).Return(sqlc.GetEventWithOccupancyRow{
			ID:               id,
			Title:            "Supper",
			EventDate:        ts,
			MaxCapacity:      10,
			Status:           "OPEN",
			ConfirmedGuests:  7,
			WaitlistedGuests: 2,
			CreatedAt:        ts,
			UpdatedAt:        ts,
		}, nil)

		view, err := NewEventReadStore(mockQueries, nil).FindByID(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, 3, view.RemainingSpots)
		assert.Equal(t, 2, view.WaitlistedGuests)
	})

	t.Run("超過していても残席は0", func(t *testing.T) {
		mockQueries := new(MockEventViewQueries)
		mockQueries.On("ListUpcomingEvents", mock.Anything, mock.Anything, sqlc.ListUpcomingEventsParams{
			Now:      ts,
			RowLimit: 50,
		}).Return([]sqlc.ListUpcomingEventsRow{
			{ID: uuid.New(), MaxCapacity: 2, ConfirmedGuests: 3, Status: "FULL", EventDate: ts},
		}, nil)

		views, err := NewEventReadStore(mockQueries, nil).ListUpcoming(context.Background(), now, 50)
		require.NoError(t, err)
		require.Len(t, views, 1)
		assert.Zero(t, views[0].RemainingSpots)
	})
}
