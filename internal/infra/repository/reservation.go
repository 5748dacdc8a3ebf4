package repository

import (
	"context"

	"dinner-club/internal/domain/reservation"
	"dinner-club/internal/infra"
	"dinner-club/internal/infra/repository/converter"
	sqlc "dinner-club/internal/infra/sqlc/generated"
	"dinner-club/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ReservationWriteQueries interface {
	CreateReservation(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateReservationParams) (sqlc.Reservations, error)
	GetReservationByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Reservations, error)
	UpdateReservationStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateReservationStatusParams) error
	SumConfirmedGuests(ctx context.Context, db sqlc.DBTX, eventID uuid.UUID) (int32, error)
	ExistsActiveUserReservation(ctx context.Context, db sqlc.DBTX, arg sqlc.ExistsActiveUserReservationParams) (bool, error)
	ListWaitlistForEvent(ctx context.Context, db sqlc.DBTX, eventID uuid.UUID) ([]sqlc.Reservations, error)
}

type ReservationRepository struct {
	queries ReservationWriteQueries
	db      sqlc.DBTX
}

func NewReservationRepository(queries ReservationWriteQueries, db sqlc.DBTX) *ReservationRepository {
	return &ReservationRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ReservationRepository) Create(ctx context.Context, res *reservation.Reservation) error {
	if _, err := r.queries.CreateReservation(ctx, r.db, converter.ReservationToCreateParams(res)); err != nil {
		return infra.WrapRepoErr("failed to create reservation", err)
	}
	return nil
}

func (r *ReservationRepository) FindByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	row, err := r.queries.GetReservationByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get reservation", err)
	}

	res, err := converter.ReservationFromInfra(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert reservation", err, infra.KindDBFailure)
	}
	return res, nil
}

func (r *ReservationRepository) UpdateStatus(ctx context.Context, res *reservation.Reservation) error {
	err := r.queries.UpdateReservationStatus(ctx, r.db, sqlc.UpdateReservationStatusParams{
		ID:        res.ID(),
		Status:    res.Status().String(),
		UpdatedAt: pgconv.TimeToPgtype(res.UpdatedAt()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update reservation status", err)
	}
	return nil
}

func (r *ReservationRepository) SumConfirmedGuests(ctx context.Context, eventID uuid.UUID) (int, error) {
	n, err := r.queries.SumConfirmedGuests(ctx, r.db, eventID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to sum confirmed guests", err)
	}
	return int(n), nil
}

func (r *ReservationRepository) ExistsActiveForUser(ctx context.Context, eventID, userID uuid.UUID) (bool, error) {
	exists, err := r.queries.ExistsActiveUserReservation(ctx, r.db, sqlc.ExistsActiveUserReservationParams{
		EventID: eventID,
		UserID:  pgconv.UUIDToPgtype(userID),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to check existing reservation", err)
	}
	return exists, nil
}

func (r *ReservationRepository) ListWaitlist(ctx context.Context, eventID uuid.UUID) ([]*reservation.Reservation, error) {
	rows, err := r.queries.ListWaitlistForEvent(ctx, r.db, eventID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list waitlist", err)
	}

	out := make([]*reservation.Reservation, 0, len(rows))
	for _, row := range rows {
		res, err := converter.ReservationFromInfra(row)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to convert reservation", err, infra.KindDBFailure)
		}
		out = append(out, res)
	}
	return out, nil
}
