//go:build unit

package repository

import (
	"context"
	"testing"
	"time"

	"dinner-club/internal/domain/reservation"
	"dinner-club/internal/infra"
	sqlc "dinner-club/internal/infra/sqlc/generated"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockReservationWriteQueries struct {
	mock.Mock
}

func (m *MockReservationWriteQueries) CreateReservation(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateReservationParams) (sqlc.Reservations, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(sqlc.Reservations), args.Error(1)
}

func (m *MockReservationWriteQueries) GetReservationByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Reservations, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.Reservations), args.Error(1)
}

func (m *MockReservationWriteQueries) UpdateReservationStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateReservationStatusParams) error {
	args := m.Called(ctx, db, arg)
	return args.Error(0)
}

func (m *MockReservationWriteQueries) SumConfirmedGuests(ctx context.Context, db sqlc.DBTX, eventID uuid.UUID) (int32, error) {
	args := m.Called(ctx, db, eventID)
	return args.Get(0).(int32), args.Error(1)
}

func (m *MockReservationWriteQueries) ExistsActiveUserReservation(ctx context.Context, db sqlc.DBTX, arg sqlc.ExistsActiveUserReservationParams) (bool, error) {
	args := m.Called(ctx, db, arg)
	return args.Bool(0), args.Error(1)
}

func (m *MockReservationWriteQueries) ListWaitlistForEvent(ctx context.Context, db sqlc.DBTX, eventID uuid.UUID) ([]sqlc.Reservations, error) {
	args := m.Called(ctx, db, eventID)
	return args.Get(0).([]sqlc.Reservations), args.Error(1)
}

func TestReservationRepository_Create(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	count, err := reservation.NewGuestCount(2, reservation.DefaultMaxGuests)
	require.NoError(t, err)

	t.Run("ゲスト予約はトークンハッシュと有効期限を保存", func(t *testing.T) {
		guest, err := reservation.NewGuest("Ada", "ada@example.com")
		require.NoError(t, err)
		res, err := reservation.NewGuestReservation(uuid.New(), guest, count, reservation.StatusConfirmed, now)
		require.NoError(t, err)
		require.NoError(t, res.AttachGuestToken(reservation.NewGuestToken("abc", now.Add(48*time.Hour), 24*time.Hour)))

		mockQueries := new(MockReservationWriteQueries)
		mockQueries.On("CreateReservation", mock.Anything, mock.Anything, mock.MatchedBy(func(p sqlc.CreateReservationParams) bool {
			return !p.UserID.Valid &&
				p.GuestEmail.String == "ada@example.com" &&
				p.GuestTokenHash.String == "abc" &&
				p.TokenExpiresAt.Time.Equal(now.Add(72*time.Hour)) &&
				p.GuestCount == 2 &&
				p.Status == "CONFIRMED"
		})).Return(sqlc.Reservations{}, nil)

		repo := NewReservationRepository(mockQueries, stubDB{})
		require.NoError(t, repo.Create(context.Background(), res))
		mockQueries.AssertExpectations(t)
	})

	t.Run("部分一意インデックス違反は重複として分類", func(t *testing.T) {
		res, err := reservation.NewUserReservation(uuid.New(), uuid.New(), count, reservation.StatusConfirmed, now)
		require.NoError(t, err)

		mockQueries := new(MockReservationWriteQueries)
		mockQueries.On("CreateReservation", mock.Anything, mock.Anything, mock.Anything).
			Return(sqlc.Reservations{}, &pgconn.PgError{Code: "23505"})

		repo := NewReservationRepository(mockQueries, stubDB{})
		err = repo.Create(context.Background(), res)
		assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))
	})
}

func TestReservationRepository_FindByID(t *testing.T) {
	id := uuid.New()
	userID := uuid.New()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("ユーザー予約を復元", func(t *testing.T) {
		mockQueries := new(MockReservationWriteQueries)
		mockQueries.On("GetReservationByID", mock.Anything, mock.Anything, id).Return(sqlc.Reservations{
			ID:         id,
			EventID:    uuid.New(),
			UserID:     pgtype.UUID{Bytes: userID, Valid: true},
			GuestCount: 3,
			Status:     "WAITLIST",
			CreatedAt:  pgtype.Timestamptz{Time: now, Valid: true},
			UpdatedAt:  pgtype.Timestamptz{Time: now, Valid: true},
		}, nil)

		repo := NewReservationRepository(mockQueries, stubDB{})
		res, err := repo.FindByID(context.Background(), id)
		require.NoError(t, err)
		assert.True(t, res.OwnedBy(userID))
		assert.False(t, res.IsGuest())
		assert.Equal(t, reservation.StatusWaitlist, res.Status())
		assert.Equal(t, 3, res.GuestCount())
	})

	t.Run("存在しない場合はNOT_FOUND", func(t *testing.T) {
		mockQueries := new(MockReservationWriteQueries)
		mockQueries.On("GetReservationByID", mock.Anything, mock.Anything, id).Return(sqlc.Reservations{}, pgx.ErrNoRows)

		repo := NewReservationRepository(mockQueries, stubDB{})
		_, err := repo.FindByID(context.Background(), id)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}
