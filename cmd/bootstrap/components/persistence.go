package components

import (
	"restaurant-reservations/internal/infra/readstore"
	sqlc "restaurant-reservations/internal/infra/sqlc/generated"
	"restaurant-reservations/internal/infra/uow"
	"restaurant-reservations/internal/usecase/queries"
	"restaurant-reservations/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

// PersistenceModule binds the Postgres adapters to the ports the use cases consume.
// Writes go through the unit of work; reads hit the pool directly.
var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		sqlc.New,
		poolAsDBTX,
		fx.Annotate(
			sqlc.New,
			fx.As(new(readstore.ReservationReadQueries)),
			fx.As(new(readstore.TableReadQueries)),
		),
	),
	readModelModule,
	writeModelModule,
)

var readModelModule = fx.Module("persistence/read",
	fx.Provide(
		fx.Annotate(readstore.NewReservationReadStore, fx.As(new(queries.ReservationReadStore))),
		fx.Annotate(readstore.NewTableReadStore, fx.As(new(queries.TableReadStore))),
	),
)

var writeModelModule = fx.Module("persistence/write",
	fx.Provide(
		fx.Annotate(uow.NewPostgresUoW, fx.As(new(shared.UnitOfWork))),
	),
)

func poolAsDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
