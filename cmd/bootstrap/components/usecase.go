package components

import (
	"log/slog"

	"restaurant-reservations/internal/pkg/clock"
	"restaurant-reservations/internal/pkg/config"
	"restaurant-reservations/internal/usecase/commands"
	"restaurant-reservations/internal/usecase/queries"

	"go.uber.org/fx"
)

// UseCaseModule wires the reservation book and the floor plan.
var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		// reservation book
		commands.NewReservationCommands,
		queries.NewReservationQueries,
		// floor plan and seating
		commands.NewTableCommands,
		queries.NewTableQueries,
	),
	fx.Invoke(announceBookingRules),
)

func announceBookingRules(cfg config.Config, logger *slog.Logger) {
	rc := cfg.Restaurant
	logger.Info("booking rules loaded",
		"timezone", rc.TimeZone,
		"open", rc.OpenTime,
		"close", rc.CloseTime,
		"closed_days", rc.ClosedDays,
	)
}
