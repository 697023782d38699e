package bootstrap

import (
	"restaurant-reservations/cmd/bootstrap/components"

	"go.uber.org/fx"
)

// infrastructure is everything that talks to the process environment.
var infrastructure = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
)

// application is the reservation service proper; e2e suites reuse it with their own config.
var application = fx.Options(
	PolicyModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)

var Module = fx.Options(
	fxEventLogger,
	infrastructure,
	application,
)
