//go:build integration

package testutils

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	stickerqueue "github.com/ksicht/standings/app/modules/stickers/infrastructure/queue"
	stickermigrations "github.com/ksicht/standings/app/modules/stickers/infrastructure/repositories/migrations"
	"github.com/ksicht/standings/integration_tests/containers"
	tcnats "github.com/testcontainers/testcontainers-go/modules/nats"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"github.com/uptrace/bun/migrate"
)

// TestEnv holds the containers and connections shared by a test package.
type TestEnv struct {
	DB      *bun.DB
	DSN     string
	NatsURL string

	pg   *postgres.PostgresContainer
	nats *tcnats.NATSContainer
}

// dataTables are truncated between tests. Sticker definitions stay.
var dataTables = []string{
	"sticker_assignment_runs",
	"sticker_assignments",
	"task_solution_stickers",
	"event_attendees",
	"event_reward_stickers",
	"events",
	"task_solutions",
	"grade_applications",
	"participants",
	"tasks",
	"grade_series",
	"grades",
}

// NewTestEnv starts Postgres and NATS and applies all migrations.
func NewTestEnv(ctx context.Context) (*TestEnv, error) {
	pg, dsn, err := containers.SetupPostgresContainer(ctx)
	if err != nil {
		return nil, err
	}
	env := &TestEnv{DSN: dsn, pg: pg}

	natsContainer, natsURL, err := containers.SetupNatsContainer(ctx)
	if err != nil {
		env.Terminate(ctx)
		return nil, err
	}
	env.nats = natsContainer
	env.NatsURL = natsURL

	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(dsn)))
	env.DB = bun.NewDB(sqldb, pgdialect.New())

	if err := env.migrate(ctx); err != nil {
		env.Terminate(ctx)
		return nil, err
	}
	return env, nil
}

func (e *TestEnv) migrate(ctx context.Context) error {
	pool, err := pgxpool.New(ctx, e.DSN)
	if err != nil {
		return fmt.Errorf("failed to create pgx pool for River migrations: %w", err)
	}
	defer pool.Close()
	if err := stickerqueue.Migrate(ctx, pool); err != nil {
		return err
	}

	migrator := migrate.NewMigrator(e.DB, stickermigrations.Migrations)
	if err := migrator.Init(ctx); err != nil {
		return fmt.Errorf("failed to init migrations: %w", err)
	}
	if _, err := migrator.Migrate(ctx); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

// Reset removes all competition and assignment data.
func (e *TestEnv) Reset(ctx context.Context) error {
	_, err := e.DB.ExecContext(ctx, "TRUNCATE "+strings.Join(dataTables, ", ")+" CASCADE")
	if err != nil {
		return fmt.Errorf("failed to truncate tables: %w", err)
	}
	if _, err := e.DB.ExecContext(ctx, "DELETE FROM river_job"); err != nil {
		return fmt.Errorf("failed to clean river jobs: %w", err)
	}
	return nil
}

// Terminate closes connections and stops the containers.
func (e *TestEnv) Terminate(ctx context.Context) {
	if e.DB != nil {
		_ = e.DB.Close()
	}
	if e.nats != nil {
		if err := e.nats.Terminate(ctx); err != nil {
			log.Printf("Failed to terminate NATS container: %v", err)
		}
	}
	if e.pg != nil {
		if err := e.pg.Terminate(ctx); err != nil {
			log.Printf("Failed to terminate Postgres container: %v", err)
		}
	}
}
