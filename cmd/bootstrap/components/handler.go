package components

import (
	"restaurant-reservations/internal/handler"
	"restaurant-reservations/internal/handler/api"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

// HandlerModule mounts the reservation and table endpoints on the shared engine.
var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewReservationHandler,
		api.NewTableHandler,
		func(pool *pgxpool.Pool) handler.Pinger { return pool },
	),
	fx.Invoke(handler.NewRouter),
)
