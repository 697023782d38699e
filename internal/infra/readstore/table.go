package readstore

import (
	"context"

	"restaurant-reservations/internal/infra"
	sqlc "restaurant-reservations/internal/infra/sqlc/generated"
	"restaurant-reservations/internal/pkg/pgconv"
	"restaurant-reservations/internal/usecase/queries"
)

type TableReadQueries interface {
	ListTables(ctx context.Context, db sqlc.DBTX) ([]sqlc.Tables, error)
	GetTableByID(ctx context.Context, db sqlc.DBTX, tableID int64) (sqlc.Tables, error)
}

type TableReadStore struct {
	queries TableReadQueries
	db      sqlc.DBTX
}

func NewTableReadStore(queries TableReadQueries, db sqlc.DBTX) *TableReadStore {
	return &TableReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *TableReadStore) FindAll(ctx context.Context) ([]*queries.TableView, error) {
	rows, err := r.queries.ListTables(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list tables", err)
	}

	result := make([]*queries.TableView, len(rows))
	for i, row := range rows {
		result[i] = toTableView(row)
	}
	return result, nil
}

func (r *TableReadStore) FindByID(ctx context.Context, id int64) (*queries.TableView, error) {
	row, err := r.queries.GetTableByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to find table by ID", err)
	}
	return toTableView(row), nil
}

func toTableView(row sqlc.Tables) *queries.TableView {
	return &queries.TableView{
		ID:            row.TableID,
		Name:          row.TableName,
		Capacity:      int(row.Capacity),
		ReservationID: pgconv.Int64PtrFromPgtype(row.ReservationID),
		CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:     pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
