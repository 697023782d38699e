package readstore

import (
	"context"
	"time"

	"restaurant-reservations/internal/infra"
	sqlc "restaurant-reservations/internal/infra/sqlc/generated"
	"restaurant-reservations/internal/pkg/pgconv"
	"restaurant-reservations/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

type ReservationReadQueries interface {
	GetReservationByID(ctx context.Context, db sqlc.DBTX, reservationID int64) (sqlc.Reservations, error)
	ListReservationsByDate(ctx context.Context, db sqlc.DBTX, reservationDate pgtype.Date) ([]sqlc.Reservations, error)
	SearchReservationsByMobile(ctx context.Context, db sqlc.DBTX, digits string) ([]sqlc.Reservations, error)
}

type ReservationReadStore struct {
	queries ReservationReadQueries
	db      sqlc.DBTX
}

func NewReservationReadStore(queries ReservationReadQueries, db sqlc.DBTX) *ReservationReadStore {
	return &ReservationReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ReservationReadStore) FindByID(ctx context.Context, id int64) (*queries.ReservationView, error) {
	row, err := r.queries.GetReservationByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}
	return toReservationView(row), nil
}

func (r *ReservationReadStore) FindByDate(ctx context.Context, date time.Time) ([]*queries.ReservationView, error) {
	rows, err := r.queries.ListReservationsByDate(ctx, r.db, pgconv.DateToPgtype(date))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations by date", err)
	}
	return toReservationViews(rows), nil
}

func (r *ReservationReadStore) FindByMobileDigits(ctx context.Context, digits string) ([]*queries.ReservationView, error) {
	rows, err := r.queries.SearchReservationsByMobile(ctx, r.db, digits)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to search reservations by mobile number", err)
	}
	return toReservationViews(rows), nil
}

func toReservationViews(rows []sqlc.Reservations) []*queries.ReservationView {
	result := make([]*queries.ReservationView, len(rows))
	for i, row := range rows {
		result[i] = toReservationView(row)
	}
	return result
}

func toReservationView(row sqlc.Reservations) *queries.ReservationView {
	minutes := pgconv.MinutesFromPgtype(row.ReservationTime)
	return &queries.ReservationView{
		ID:              row.ReservationID,
		FirstName:       row.FirstName,
		LastName:        row.LastName,
		MobileNumber:    row.MobileNumber,
		ReservationDate: pgconv.DateFromPgtype(row.ReservationDate),
		ReservationTime: formatMinutes(minutes),
		People:          int(row.People),
		Status:          row.Status,
		CreatedAt:       pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:       pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}

func formatMinutes(minutes int) string {
	return time.Date(2000, 1, 1, minutes/60, minutes%60, 0, 0, time.UTC).Format("15:04")
}
