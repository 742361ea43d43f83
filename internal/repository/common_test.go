package repository

import "github.com/Bessima/i2test-auth/internal/config/db"

func NewTestDB(pool db.PgxPoolInterface) *db.DB {
	return &db.DB{
		Pool: pool,
	}
}
