package bootstrap

import (
	"fmt"
	"time"

	"restaurant-reservations/internal/domain/reservation"
	"restaurant-reservations/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
)

var PolicyModule = fx.Module("policy",
	fx.Provide(
		NewBookingPolicy,
	),
)

func NewBookingPolicy(cfg config.Config) (*reservation.BookingPolicy, error) {
	rc := cfg.Restaurant

	loc, err := time.LoadLocation(rc.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("invalid RESTAURANT_TIMEZONE %q: %w", rc.TimeZone, err)
	}
	open, err := reservation.ParseTimeOfDay(rc.OpenTime)
	if err != nil {
		return nil, fmt.Errorf("invalid RESTAURANT_OPEN_TIME %q: %w", rc.OpenTime, err)
	}
	closing, err := reservation.ParseTimeOfDay(rc.CloseTime)
	if err != nil {
		return nil, fmt.Errorf("invalid RESTAURANT_CLOSE_TIME %q: %w", rc.CloseTime, err)
	}

	closedDays := make([]time.Weekday, 0, len(rc.ClosedDays))
	for _, name := range rc.ClosedDays {
		if name == "" {
			continue
		}
		day, err := reservation.ParseWeekday(name)
		if err != nil {
			return nil, fmt.Errorf("invalid RESTAURANT_CLOSED_DAYS: %w", err)
		}
		closedDays = append(closedDays, day)
	}

	return reservation.NewBookingPolicy(loc, open, closing, closedDays)
}
