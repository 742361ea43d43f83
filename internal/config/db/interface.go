package db

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxPoolInterface - то, что хранилищу токенов нужно от пула соединений PostgreSQL
// Совместим с pgxpool.Pool и pgxmock.PgxPoolIface
type PgxPoolInterface interface {
	Exec(ctx context.Context, sql string, arguments ...interface{}) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
	Close()
	Ping(ctx context.Context) error
	Config() *pgxpool.Config
}
