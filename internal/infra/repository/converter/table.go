package converter

import (
	"restaurant-reservations/internal/domain/table"
	sqlc "restaurant-reservations/internal/infra/sqlc/generated"
	"restaurant-reservations/internal/pkg/pgconv"
)

func TableToCreateParams(t *table.Table) sqlc.CreateTableParams {
	return sqlc.CreateTableParams{
		TableName: t.Name(),
		Capacity:  int32(t.Capacity()), // #nosec G115 -- NewTable caps capacity at MaxCapacity
		CreatedAt: pgconv.TimeToPgtype(t.CreatedAt()),
		UpdatedAt: pgconv.TimeToPgtype(t.UpdatedAt()),
	}
}

func TableFromInfra(row sqlc.Tables) *table.Table {
	return table.Reconstruct(
		row.TableID,
		row.TableName,
		int(row.Capacity),
		pgconv.Int64PtrFromPgtype(row.ReservationID),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}
