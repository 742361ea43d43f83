package db

import (
	"context"
	"embed"
	"errors"
	"fmt"

	"github.com/Bessima/i2test-auth/internal/middlewares/logger"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

type DB struct {
	Pool PgxPoolInterface
}

func NewDB(ctx context.Context, databaseDNS string) (*DB, error) {
	if databaseDNS == "" {
		return nil, errors.New("database dns is empty")
	}

	if err := runMigrations(databaseDNS); err != nil {
		return nil, err
	}

	pool, err := pgxpool.New(ctx, databaseDNS)
	if err != nil {
		return nil, fmt.Errorf("create pgx pool: %w", err)
	}
	if err = pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &DB{Pool: pool}, nil
}

func runMigrations(databaseDNS string) error {
	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("open migrations: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", source, databaseDNS)
	if err != nil {
		return fmt.Errorf("init migrations: %w", err)
	}
	defer func() {
		if srcErr, dbErr := m.Close(); srcErr != nil || dbErr != nil {
			logger.Log.Warn("error closing migrations", zap.NamedError("source", srcErr), zap.NamedError("database", dbErr))
		}
	}()

	if err = m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}

func (db *DB) Close() {
	if db.Pool != nil {
		db.Pool.Close()
	}
}
