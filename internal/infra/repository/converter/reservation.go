package converter

import (
	"dinner-club/internal/domain/reservation"
	sqlc "dinner-club/internal/infra/sqlc/generated"
	"dinner-club/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

func ReservationToCreateParams(r *reservation.Reservation) sqlc.CreateReservationParams {
	params := sqlc.CreateReservationParams{
		ID:         r.ID(),
		EventID:    r.EventID(),
		UserID:     pgconv.UUIDPtrToPgtype(r.UserID()),
		GuestCount: pgconv.IntToInt32(r.GuestCount()),
		Status:     r.Status().String(),
		CreatedAt:  pgconv.TimeToPgtype(r.CreatedAt()),
		UpdatedAt:  pgconv.TimeToPgtype(r.UpdatedAt()),
	}

	if g := r.Guest(); g != nil {
		params.GuestName = pgconv.StringToPgtype(g.Name())
		params.GuestEmail = pgconv.StringToPgtype(g.Email())
	}

	if t := r.GuestToken(); t != nil {
		params.GuestTokenHash = pgconv.StringToPgtype(t.Hash())
		params.TokenExpiresAt = pgconv.TimeToPgtype(t.ExpiresAt())
	} else {
		params.GuestTokenHash = pgtype.Text{Valid: false}
		params.TokenExpiresAt = pgtype.Timestamptz{Valid: false}
	}

	return params
}

func ReservationFromInfra(row sqlc.Reservations) (*reservation.Reservation, error) {
	status, err := reservation.NewStatus(row.Status)
	if err != nil {
		return nil, err
	}

	return reservation.ReconstructReservation(reservation.ReconstructParams{
		ID:             row.ID,
		EventID:        row.EventID,
		UserID:         pgconv.UUIDPtrFromPgtype(row.UserID),
		GuestName:      pgconv.StringFromPgtype(row.GuestName),
		GuestEmail:     pgconv.StringFromPgtype(row.GuestEmail),
		TokenHash:      pgconv.StringFromPgtype(row.GuestTokenHash),
		TokenExpiresAt: pgconv.TimePtrFromPgtype(row.TokenExpiresAt),
		GuestCount:     int(row.GuestCount),
		Status:         status,
		CreatedAt:      pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:      pgconv.TimeFromPgtype(row.UpdatedAt),
	}), nil
}
