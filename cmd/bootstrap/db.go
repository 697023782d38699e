package bootstrap

import (
	"context"
	"log/slog"

	"restaurant-reservations/internal/infra/db"
	"restaurant-reservations/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(ProvidePool),
	fx.Invoke(registerPoolGauges),
)

// ProvidePool opens the reservation database and closes it when the app stops.
func ProvidePool(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*pgxpool.Pool, error) {
	pool, closePool, err := db.Connect(cfg.DB)
	if err != nil {
		return nil, err
	}
	logger.Info("reservation database connected",
		"host", cfg.DB.Host,
		"database", cfg.DB.DBName,
		"max_conns", pool.Config().MaxConns,
	)

	lc.Append(fx.StopHook(closePool))
	return pool, nil
}

type poolGaugeSpec struct {
	name string
	help string
	read func(*pgxpool.Stat) int32
}

var poolGaugeSpecs = []poolGaugeSpec{
	{"acquired_conns", "Connections currently checked out of the pool", (*pgxpool.Stat).AcquiredConns},
	{"idle_conns", "Idle connections held by the pool", (*pgxpool.Stat).IdleConns},
	{"total_conns", "Open connections held by the pool", (*pgxpool.Stat).TotalConns},
}

// registerPoolGauges exposes connection usage next to the HTTP metrics.
// Gauges are unregistered on stop so e2e suites can build several apps per process.
func registerPoolGauges(lc fx.Lifecycle, pool *pgxpool.Pool, logger *slog.Logger) {
	collectors := make([]prometheus.Collector, 0, len(poolGaugeSpecs))
	for _, spec := range poolGaugeSpecs {
		read := spec.read
		collectors = append(collectors, prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: "reservations",
			Subsystem: "db_pool",
			Name:      spec.name,
			Help:      spec.help,
		}, func() float64 {
			return float64(read(pool.Stat()))
		}))
	}

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			for _, c := range collectors {
				if err := prometheus.Register(c); err != nil {
					logger.Warn("pool gauge not registered", "error", err)
				}
			}
			return nil
		},
		OnStop: func(_ context.Context) error {
			for _, c := range collectors {
				prometheus.Unregister(c)
			}
			return nil
		},
	})
}
