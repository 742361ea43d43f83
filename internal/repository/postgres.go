package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Bessima/i2test-auth/internal/config/db"
	"github.com/Bessima/i2test-auth/internal/customerror"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type PGStorage struct {
	db *db.DB
}

func NewPGStorage(dbObj *db.DB) *PGStorage {
	return &PGStorage{db: dbObj}
}

func (repository *PGStorage) Set(ctx context.Context, key, value string) error {
	query := `INSERT INTO local_storage (key, value) VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`

	row, err := repository.db.Pool.Exec(ctx, query, key, value)
	if err != nil {
		return pgError(err)
	}
	if row.RowsAffected() == 0 {
		err = fmt.Errorf("value was not stored for key %s", key)
		return customerror.NewCommonPGError(err.Error())
	}
	return nil
}

func (repository *PGStorage) Get(ctx context.Context, key string) (string, error) {
	query := `SELECT value FROM local_storage WHERE key = $1`

	var value string
	err := repository.db.Pool.QueryRow(ctx, query, key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", ErrKeyNotFound
	}
	if err != nil {
		return "", pgError(err)
	}
	return value, nil
}

func (repository *PGStorage) Delete(ctx context.Context, key string) error {
	query := `DELETE FROM local_storage WHERE key = $1`

	if _, err := repository.db.Pool.Exec(ctx, query, key); err != nil {
		return pgError(err)
	}
	return nil
}

func (repository *PGStorage) Close() error {
	repository.db.Close()
	return nil
}

func pgError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UndefinedTable {
		return customerror.NewCommonPGError("local_storage table is missing, migrations were not applied")
	}
	return customerror.NewCommonPGError(err.Error())
}
