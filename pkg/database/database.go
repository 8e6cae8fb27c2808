// Package database provides the shared PostgreSQL connection pool built on
// pgxpool. Repositories receive *Database and issue queries through Pool().
package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ghuser/schoolsvc/pkg/logger"
)

const (
	maxConns        = 10
	maxConnLifetime = time.Hour
	maxConnIdleTime = 30 * time.Minute
	connectTimeout  = 5 * time.Second
)

// Database wraps a pgxpool.Pool with health checking and lifecycle helpers.
type Database struct {
	pool *pgxpool.Pool
	log  logger.Logger
}

// NewPool connects to url, applies pool settings, and verifies connectivity
// with a short ping before returning.
func NewPool(ctx context.Context, url string, log logger.Logger) (*Database, error) {
	cfg, err := pgxpool.ParseConfig(url)
	if err != nil {
		return nil, fmt.Errorf("database: parse config: %w", err)
	}
	cfg.MaxConns = maxConns
	cfg.MaxConnLifetime = maxConnLifetime
	cfg.MaxConnIdleTime = maxConnIdleTime

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("database: connect: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("database: ping: %w", err)
	}

	return &Database{pool: pool, log: log}, nil
}

// Pool returns the underlying pgxpool.Pool for queries.
func (d *Database) Pool() *pgxpool.Pool {
	return d.pool
}

// Ping checks database connectivity. Satisfies httpx.HealthChecker.
func (d *Database) Ping(ctx context.Context) error {
	if err := d.pool.Ping(ctx); err != nil {
		return fmt.Errorf("database: ping: %w", err)
	}
	return nil
}

// Close shuts down the connection pool.
func (d *Database) Close() {
	d.pool.Close()
}
