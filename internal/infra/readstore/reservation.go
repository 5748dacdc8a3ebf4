package readstore

import (
	"context"

	"dinner-club/internal/infra"
	sqlc "dinner-club/internal/infra/sqlc/generated"
	"dinner-club/internal/pkg/pgconv"
	"dinner-club/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ReservationViewQueries interface {
	GetReservationView(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetReservationViewRow, error)
	GetReservationByTokenHash(ctx context.Context, db sqlc.DBTX, guestTokenHash pgtype.Text) (sqlc.Reservations, error)
	ListReservationsByUser(ctx context.Context, db sqlc.DBTX, userID pgtype.UUID) ([]sqlc.ListReservationsByUserRow, error)
}

type ReservationReadStore struct {
	queries ReservationViewQueries
	db      sqlc.DBTX
}

func NewReservationReadStore(queries ReservationViewQueries, db sqlc.DBTX) *ReservationReadStore {
	return &ReservationReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	row, err := r.queries.GetReservationView(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}

	return toReservationView(row), nil
}

func (r *ReservationReadStore) FindByTokenHash(ctx context.Context, hash string) (*queries.ReservationView, error) {
	row, err := r.queries.GetReservationByTokenHash(ctx, r.db, pgconv.StringToPgtype(hash))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found for token", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by token", err)
	}

	return r.FindByID(ctx, row.ID)
}

func (r *ReservationReadStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*queries.UserReservationItem, error) {
	rows, err := r.queries.ListReservationsByUser(ctx, r.db, pgconv.UUIDToPgtype(userID))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations by user", err)
	}

	items := make([]*queries.UserReservationItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, &queries.UserReservationItem{
			ID:          row.ID,
			EventID:     row.EventID,
			EventTitle:  row.EventTitle,
			EventDate:   pgconv.TimeFromPgtype(row.EventDate),
			EventStatus: row.EventStatus,
			GuestCount:  int(row.GuestCount),
			Status:      row.Status,
			CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
		})
	}
	return items, nil
}

func toReservationView(row sqlc.GetReservationViewRow) *queries.ReservationView {
	return &queries.ReservationView{
		ID:             row.ID,
		EventID:        row.EventID,
		EventTitle:     row.EventTitle,
		EventDate:      pgconv.TimeFromPgtype(row.EventDate),
		EventStatus:    row.EventStatus,
		UserID:         pgconv.UUIDPtrFromPgtype(row.UserID),
		GuestName:      pgconv.StringPtrFromPgtype(row.GuestName),
		GuestEmail:     pgconv.StringPtrFromPgtype(row.GuestEmail),
		GuestTokenHash: pgconv.StringFromPgtype(row.GuestTokenHash),
		TokenExpiresAt: pgconv.TimePtrFromPgtype(row.TokenExpiresAt),
		GuestCount:     int(row.GuestCount),
		Status:         row.Status,
		CreatedAt:      pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:      pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
