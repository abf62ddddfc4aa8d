package storage

import (
	"context"
	"embed"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jibli-app/jibli-backend/internal/adapter/config"
)

// DB bundles the pgx pool with the squirrel builder the repositories
// compose their queries with.
type DB struct {
	*pgxpool.Pool
	dsn          string
	QueryBuilder *squirrel.StatementBuilderType
}

// Marketplace schema: companies, users, products, orders, broadcasts.
//
//go:embed migrations/*.sql
var migrationsFS embed.FS

// minPoolConns floors the pool size above pgx's per-CPU default.
const minPoolConns = 8

func NewDBStorage(ctx context.Context, conf *config.Database) (*DB, error) {
	poolConfig, err := pgxpool.ParseConfig(conf.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}
	if poolConfig.MaxConns < minPoolConns {
		poolConfig.MaxConns = minPoolConns
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create a connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping db: %w", err)
	}

	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

	return &DB{
		Pool:         pool,
		dsn:          conf.DSN,
		QueryBuilder: &psql,
	}, nil
}

// RunMigrations applies the embedded schema migrations; an already
// up-to-date database is not an error.
func (db *DB) RunMigrations() error {
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("failed to return an iofs driver: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", src, db.dsn)
	if err != nil {
		return fmt.Errorf("failed to get a new migrate instance: %w", err)
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to apply migrations to the DB: %w", err)
	}
	return nil
}
