package bootstrap

import (
	"log/slog"

	"restaurant-reservations/internal/handler/middleware"
	"restaurant-reservations/internal/pkg/config"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

// LoggerModule provides the zone-aware request logger and the slog.Logger behind it.
var LoggerModule = fx.Module("logger",
	fx.Provide(
		func(cfg config.Config) *middleware.Logger { return middleware.NewLogger(cfg.Log) },
		(*middleware.Logger).GetSlogLogger,
	),
)

// fxEventLogger sends container lifecycle events through the service logger
// instead of fx's default stderr printer.
var fxEventLogger = fx.WithLogger(func(l *slog.Logger) fxevent.Logger {
	return &fxevent.SlogLogger{Logger: l}
})
