package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Bessima/i2test-auth/internal/config"
	"github.com/Bessima/i2test-auth/internal/config/db"
	"github.com/redis/go-redis/v9"
)

// Ключи, под которыми форма входа сохраняет токены сессии
const (
	AccessKey  = "access"
	RefreshKey = "refresh"
)

var ErrKeyNotFound = errors.New("key not found")

// KeyValueStorageI - постоянное хранилище "ключ-значение" на стороне клиента
type KeyValueStorageI interface {
	Set(ctx context.Context, key, value string) error
	Get(ctx context.Context, key string) (string, error)
	Delete(ctx context.Context, key string) error
	Close() error
}

func NewStorage(ctx context.Context, conf *config.Config) (KeyValueStorageI, error) {
	switch conf.StoreKind {
	case config.FileStore:
		return NewFileStorage(conf.StorePath), nil
	case config.MemoryStore:
		return NewMemoryStorage(), nil
	case config.RedisStore:
		client := redis.NewClient(&redis.Options{Addr: conf.RedisAddress})
		if err := client.Ping(ctx).Err(); err != nil {
			client.Close()
			return nil, fmt.Errorf("connect to redis at %s: %w", conf.RedisAddress, err)
		}
		return NewRedisStorage(client, conf.RedisPrefix), nil
	case config.PostgresStore:
		dbObj, err := db.NewDB(ctx, conf.DatabaseDNS)
		if err != nil {
			return nil, err
		}
		return NewPGStorage(dbObj), nil
	}
	return nil, fmt.Errorf("unknown token store %q", conf.StoreKind)
}
