//go:build integration

// Package integration runs the registro stack against a real PostgreSQL
// started with testcontainers. Run with: go test -tags integration ./tests/...
package integration

import (
	"context"
	"database/sql"
	"os"
	"testing"
	"time"

	"github.com/fiscal/registros/internal/infrastructure/config"
	"github.com/fiscal/registros/internal/infrastructure/migration"
	"github.com/fiscal/registros/internal/infrastructure/persistence"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"
	"gorm.io/gorm/logger"
)

// TestDB is a migrated PostgreSQL database owned by one test
type TestDB struct {
	*persistence.Database
	Container testcontainers.Container
	t         *testing.T
}

// NewTestDB starts a PostgreSQL container, applies the embedded migrations and
// opens a pooled connection through persistence.NewDatabase.
func NewTestDB(t *testing.T) *TestDB {
	t.Helper()
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("registros_test"),
		tcpostgres.WithUsername("postgres"),
		tcpostgres.WithPassword("registros"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err, "Failed to start PostgreSQL container")
	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("Warning: failed to terminate container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err)

	cfg := config.DatabaseConfig{
		Driver:          config.DriverPostgres,
		Host:            host,
		Port:            port.Int(),
		User:            "postgres",
		Password:        "registros",
		DBName:          "registros_test",
		SSLMode:         "disable",
		MaxOpenConns:    5,
		MaxIdleConns:    2,
		ConnMaxLifetime: 5,
		ConnMaxIdleTime: 5,
	}

	var opts []persistence.Option
	if os.Getenv("TEST_DB_DEBUG") != "" {
		opts = append(opts, persistence.WithLogger(logger.Default.LogMode(logger.Info)))
	}
	db, err := persistence.NewDatabase(ctx, &cfg, opts...)
	require.NoError(t, err, "Failed to connect to database")
	t.Cleanup(func() { _ = db.Close() })

	// The migrator owns its handle and closes it when done.
	migrateDB, err := sql.Open("postgres", cfg.DSN())
	require.NoError(t, err)
	m, err := migration.New(migrateDB, "", zap.NewNop())
	require.NoError(t, err, "Failed to create migrator")
	require.NoError(t, m.Up(), "Failed to run migrations")
	require.NoError(t, m.Close())
	_ = migrateDB.Close()

	tdb := &TestDB{Database: db, Container: container, t: t}
	tdb.Reset()
	return tdb
}

// Reset empties both relations, dropping the demo seed rows
func (tdb *TestDB) Reset() {
	tdb.t.Helper()
	require.NoError(tdb.t, tdb.DB.Exec("TRUNCATE TABLE RegistrosFiscales, tb_clientes").Error)
}

// Seed inserts a client and its registration; a nil approved stays pending
func (tdb *TestDB) Seed(rfc, name, periodo string, approved *bool) {
	tdb.t.Helper()
	require.NoError(tdb.t, tdb.DB.Exec(
		"INSERT INTO tb_clientes (rfc, name) VALUES (?, ?)", rfc, name).Error)
	require.NoError(tdb.t, tdb.DB.Exec(
		"INSERT INTO RegistrosFiscales (RFC, Periodo, aprobacion) VALUES (?, ?, ?)", rfc, periodo, approved).Error)
}
