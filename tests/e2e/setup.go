//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"restaurant-reservations/cmd/bootstrap"
	"restaurant-reservations/cmd/bootstrap/components"
	"restaurant-reservations/internal/infra/db"
	"restaurant-reservations/internal/pkg/config"
	"restaurant-reservations/tests/common/dbtest"

	"github.com/docker/go-connections/nat"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/fx"
)

const (
	postgresImage    = "postgres:17"
	postgresPort     = nat.Port("5432/tcp")
	postgresUser     = "reservations"
	postgresPassword = "reservations"
)

// Server flags for a throwaway instance: durability traded for speed.
var postgresFlags = map[string]string{
	"fsync":                  "off",
	"full_page_writes":       "off",
	"synchronous_commit":     "off",
	"shared_buffers":         "256MB",
	"max_connections":        "200",
	"log_statement":          "none",
	"autovacuum_max_workers": "2",
}

var (
	postgresOnce      sync.Once
	postgresContainer testcontainers.Container
	postgresStartErr  error
)

type postgresEndpoint struct {
	host string
	port string
}

func (e postgresEndpoint) dsn(database string) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		postgresUser, postgresPassword, e.host, e.port, database)
}

// sharedPostgres starts one server per test binary; every suite gets its own database on it.
func sharedPostgres(t *testing.T) postgresEndpoint {
	t.Helper()
	gin.SetMode(gin.TestMode)

	postgresOnce.Do(func() {
		cmd := []string{"postgres"}
		for name, value := range postgresFlags {
			cmd = append(cmd, "-c", name+"="+value)
		}

		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
		defer cancel()

		postgresContainer, postgresStartErr = testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: testcontainers.ContainerRequest{
				Image:        postgresImage,
				ExposedPorts: []string{string(postgresPort)},
				Env: map[string]string{
					"POSTGRES_USER":     postgresUser,
					"POSTGRES_PASSWORD": postgresPassword,
					"POSTGRES_DB":       "postgres",
				},
				Tmpfs: map[string]string{"/var/lib/postgresql/data": "rw,size=512m"},
				Cmd:   cmd,
				WaitingFor: wait.ForSQL(postgresPort, "pgx", func(host string, port nat.Port) string {
					return postgresEndpoint{host: host, port: port.Port()}.dsn("postgres")
				}).WithStartupTimeout(time.Minute),
				Labels: map[string]string{"purpose": "reservations-e2e"},
			},
			Started: true,
		})
	})
	require.NoError(t, postgresStartErr, "start postgres container")

	ctx := context.Background()
	host, err := postgresContainer.Host(ctx)
	require.NoError(t, err, "resolve postgres host")
	port, err := postgresContainer.MappedPort(ctx, postgresPort)
	require.NoError(t, err, "resolve postgres port")

	return postgresEndpoint{host: host, port: port.Port()}
}

// createSuiteDatabase creates an empty database for one suite and drops it on cleanup.
func createSuiteDatabase(t *testing.T, server postgresEndpoint) config.DBConfig {
	t.Helper()

	name := "reservations_e2e_" + strings.ReplaceAll(uuid.NewString(), "-", "")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	admin, err := pgxpool.New(ctx, server.dsn("postgres"))
	require.NoError(t, err, "connect as admin")
	defer admin.Close()

	// CREATE DATABASE can collide on the template lock when suites start together.
	backoff := 250 * time.Millisecond
	for attempt := 1; ; attempt++ {
		_, err = admin.Exec(ctx, "CREATE DATABASE "+name)
		if err == nil || attempt == 5 {
			break
		}
		slog.Warn("create suite database failed, retrying", "attempt", attempt, "error", err)
		time.Sleep(backoff)
		backoff = min(backoff*2, 2*time.Second)
	}
	require.NoError(t, err, "create suite database")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		admin, err := pgxpool.New(ctx, server.dsn("postgres"))
		if err != nil {
			slog.Warn("drop suite database skipped", "database", name, "error", err)
			return
		}
		defer admin.Close()
		if _, err := admin.Exec(ctx, "DROP DATABASE IF EXISTS "+name+" WITH (FORCE)"); err != nil {
			slog.Warn("drop suite database failed", "database", name, "error", err)
		}
	})

	return config.DBConfig{
		Host:     server.host,
		Port:     server.port,
		User:     postgresUser,
		Password: postgresPassword,
		DBName:   name,
		SSLMode:  "disable",
		TimeZone: "America/New_York",
		MaxConns: 20,
	}
}

// migrationsDir walks up from the package under test to the repository's migrations folder.
func migrationsDir(t *testing.T) string {
	t.Helper()

	dir, err := os.Getwd()
	require.NoError(t, err)
	for {
		candidate := filepath.Join(dir, "migrations")
		if info, err := os.Stat(candidate); err == nil && info.IsDir() {
			return candidate
		}
		parent := filepath.Dir(dir)
		require.NotEqual(t, dir, parent, "migrations directory not found")
		dir = parent
	}
}

func migrateSuiteDatabase(t *testing.T, dbCfg config.DBConfig) {
	t.Helper()

	pool, closePool, err := db.Connect(dbCfg)
	require.NoError(t, err, "connect for migrations")
	defer closePool()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	applied, err := db.ApplyMigrations(ctx, pool, migrationsDir(t))
	require.NoError(t, err, "apply migrations")
	require.NotEmpty(t, applied, "no migrations applied")
}

// startApp boots the production module graph against the suite database.
// Only configuration is swapped; the pool comes from the real DB module.
func startApp(t *testing.T, cfg config.Config) (*gin.Engine, *pgxpool.Pool) {
	t.Helper()

	var (
		router *gin.Engine
		pool   *pgxpool.Pool
	)
	app := fx.New(
		fx.Supply(cfg),
		fx.Provide(func() *gin.Engine { return gin.New() }),
		bootstrap.LoggerModule,
		bootstrap.PolicyModule,
		bootstrap.DBModule,
		components.PersistenceModule,
		components.UseCaseModule,
		components.HandlerModule,
		fx.Populate(&router, &pool),
		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	require.NoError(t, app.Start(ctx), "start application")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.Stop(ctx); err != nil {
			slog.Warn("stop application failed", "error", err)
		}
	})

	return router, pool
}

// SharedSuite gives every e2e suite a migrated database and a running router.
type SharedSuite struct {
	suite.Suite
	Router *gin.Engine
	DB     *pgxpool.Pool
	Config config.Config
}

func (s *SharedSuite) SetupSuite() {
	t := s.T()

	dbCfg := createSuiteDatabase(t, sharedPostgres(t))
	migrateSuiteDatabase(t, dbCfg)

	s.Config = config.NewTestConfig()
	s.Config.DB = dbCfg
	s.Router, s.DB = startApp(t, s.Config)
	require.NotNil(t, s.Router, "router not populated")
	require.NotNil(t, s.DB, "pool not populated")
}

// SetupSubTest starts every subtest from empty tables.
func (s *SharedSuite) SetupSubTest() {
	require.NoError(s.T(), dbtest.ResetDB(s.DB), "reset database")
}
