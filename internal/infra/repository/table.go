package repository

import (
	"context"

	"restaurant-reservations/internal/domain/table"
	"restaurant-reservations/internal/infra"
	"restaurant-reservations/internal/infra/repository/converter"
	sqlc "restaurant-reservations/internal/infra/sqlc/generated"
	"restaurant-reservations/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

type TableWriteQueries interface {
	CreateTable(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateTableParams) (sqlc.Tables, error)
	GetTableByIDForUpdate(ctx context.Context, db sqlc.DBTX, tableID int64) (sqlc.Tables, error)
	GetTableByReservationIDForUpdate(ctx context.Context, db sqlc.DBTX, reservationID pgtype.Int8) (sqlc.Tables, error)
	SeatTable(ctx context.Context, db sqlc.DBTX, arg sqlc.SeatTableParams) (sqlc.Tables, error)
	ReleaseTable(ctx context.Context, db sqlc.DBTX, arg sqlc.ReleaseTableParams) (sqlc.Tables, error)
}

type TableRepository struct {
	queries TableWriteQueries
	db      sqlc.DBTX
}

func NewTableRepository(queries TableWriteQueries, db sqlc.DBTX) *TableRepository {
	return &TableRepository{
		queries: queries,
		db:      db,
	}
}

func (r *TableRepository) Create(ctx context.Context, t *table.Table) (*table.Table, error) {
	row, err := r.queries.CreateTable(ctx, r.db, converter.TableToCreateParams(t))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create table", err)
	}
	return converter.TableFromInfra(row), nil
}

func (r *TableRepository) FindByIDForUpdate(ctx context.Context, id int64) (*table.Table, error) {
	row, err := r.queries.GetTableByIDForUpdate(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock table", err)
	}
	return converter.TableFromInfra(row), nil
}

func (r *TableRepository) FindByReservationIDForUpdate(ctx context.Context, reservationID int64) (*table.Table, error) {
	row, err := r.queries.GetTableByReservationIDForUpdate(ctx, r.db, pgconv.Int64ToPgtype(reservationID))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to lock table by reservation", err)
	}
	return converter.TableFromInfra(row), nil
}

// Seat only succeeds while the stored row is still free.
func (r *TableRepository) Seat(ctx context.Context, t *table.Table) (*table.Table, error) {
	row, err := r.queries.SeatTable(ctx, r.db, sqlc.SeatTableParams{
		TableID:       t.ID(),
		ReservationID: pgconv.Int64PtrToPgtype(t.ReservationID()),
		UpdatedAt:     pgconv.TimeToPgtype(t.UpdatedAt()),
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("table was occupied concurrently", err, infra.KindConflict)
		}
		return nil, infra.WrapRepoErr("failed to seat table", err)
	}
	return converter.TableFromInfra(row), nil
}

func (r *TableRepository) Release(ctx context.Context, t *table.Table) (*table.Table, error) {
	row, err := r.queries.ReleaseTable(ctx, r.db, sqlc.ReleaseTableParams{
		TableID:   t.ID(),
		UpdatedAt: pgconv.TimeToPgtype(t.UpdatedAt()),
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("table was released concurrently", err, infra.KindConflict)
		}
		return nil, infra.WrapRepoErr("failed to release table", err)
	}
	return converter.TableFromInfra(row), nil
}
