// Package infrastructure provides database and connection pool setup.
//
// A single pgxpool backs both Ent and River. This keeps the transition
// engine's writes and best-effort job enqueues on one set of connections and
// allows atomic insert+enqueue when needed.
package infrastructure

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
	"github.com/riverqueue/river/rivermigrate"
	"go.uber.org/zap"

	"stageline.io/stageline/ent"
	entmigrate "stageline.io/stageline/ent/migrate"
	"stageline.io/stageline/internal/config"
	"stageline.io/stageline/internal/pkg/logger"
)

// DatabaseClients contains all database-related clients.
// All clients share a single pgxpool connection pool. Do not create separate
// sql.Open() and pgxpool.New() pools (doubles connections).
type DatabaseClients struct {
	// Pool is the shared connection pool (Ent + River).
	Pool *pgxpool.Pool

	// DB is the *sql.DB wrapper around Pool for the Ent ORM.
	// Created via stdlib.OpenDBFromPool to reuse pgxpool connections.
	DB *sql.DB

	// EntClient is the Ent ORM client backed by the shared pool.
	EntClient *ent.Client

	// RiverClient is the River job queue client backed by the shared pool.
	RiverClient *river.Client[pgx.Tx]
}

// NewDatabaseClients creates database clients with a shared connection pool.
func NewDatabaseClients(ctx context.Context, cfg config.DatabaseConfig) (*DatabaseClients, error) {
	dsn := cfg.DSN()

	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse pool config: %w", err)
	}
	poolConfig.MaxConns = cfg.MaxConns
	poolConfig.MinConns = cfg.MinConns
	poolConfig.MaxConnLifetime = cfg.MaxConnLifetime
	poolConfig.MaxConnIdleTime = cfg.MaxConnIdleTime
	poolConfig.HealthCheckPeriod = time.Minute

	// All timestamp comparisons assume UTC.
	poolConfig.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		_, err := conn.Exec(ctx, "SET timezone = 'UTC'")
		return err
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	// Reuse pgxpool connections for Ent instead of a second pool.
	db := stdlib.OpenDBFromPool(pool)

	entDriver := entsql.OpenDB(dialect.Postgres, db)
	entClient := ent.NewClient(ent.Driver(entDriver))

	logger.Info("Database connection pool created",
		zap.Int32("max_conns", cfg.MaxConns),
		zap.Int32("min_conns", cfg.MinConns),
	)

	return &DatabaseClients{
		Pool:      pool,
		DB:        db,
		EntClient: entClient,
	}, nil
}

// AutoMigrate runs Ent schema migration and River queue table migration.
// Only use in development; production should use managed migrations.
func (c *DatabaseClients) AutoMigrate(ctx context.Context) error {
	logger.Info("Running Ent auto-migration...")
	if err := c.EntClient.Schema.Create(ctx,
		entmigrate.WithDropIndex(true),
		entmigrate.WithDropColumn(true),
		entmigrate.WithForeignKeys(true),
	); err != nil {
		return fmt.Errorf("ent auto-migrate: %w", err)
	}
	logger.Info("Ent auto-migration completed")

	logger.Info("Running River migration...")
	migrator, err := rivermigrate.New(riverpgxv5.New(c.Pool), nil)
	if err != nil {
		return fmt.Errorf("create river migrator: %w", err)
	}
	res, err := migrator.Migrate(ctx, rivermigrate.DirectionUp, nil)
	if err != nil {
		return fmt.Errorf("river migrate up: %w", err)
	}
	if len(res.Versions) > 0 {
		logger.Info("River migration completed",
			zap.Int("versions_applied", len(res.Versions)),
		)
	} else {
		logger.Info("River migration: already up-to-date")
	}

	return nil
}

// InitRiverClient creates a River client with registered workers.
// Called after NewDatabaseClients; workers come from bootstrap.
func (c *DatabaseClients) InitRiverClient(workers *river.Workers, cfg config.RiverConfig) error {
	riverClient, err := river.NewClient(riverpgxv5.New(c.Pool), &river.Config{
		Queues: map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: cfg.MaxWorkers},
		},
		Workers:                     workers,
		CompletedJobRetentionPeriod: cfg.CompletedJobRetentionPeriod,
	})
	if err != nil {
		return fmt.Errorf("create river client: %w", err)
	}
	c.RiverClient = riverClient
	logger.Info("River client initialized", zap.Int("max_workers", cfg.MaxWorkers))
	return nil
}

// Close closes all connection pools gracefully.
func (c *DatabaseClients) Close() {
	if c.EntClient != nil {
		c.EntClient.Close()
	}
	if c.DB != nil {
		c.DB.Close()
	}
	if c.Pool != nil {
		c.Pool.Close()
	}
}
