package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

type RedisStorage struct {
	client *redis.Client
	prefix string
}

func NewRedisStorage(client *redis.Client, prefix string) *RedisStorage {
	return &RedisStorage{client: client, prefix: prefix}
}

// Значения пишутся без TTL: истечение токенов не забота хранилища
func (storage *RedisStorage) Set(ctx context.Context, key, value string) error {
	if err := storage.client.Set(ctx, storage.prefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

func (storage *RedisStorage) Get(ctx context.Context, key string) (string, error) {
	value, err := storage.client.Get(ctx, storage.prefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrKeyNotFound
	}
	if err != nil {
		return "", fmt.Errorf("redis get %s: %w", key, err)
	}
	return value, nil
}

func (storage *RedisStorage) Delete(ctx context.Context, key string) error {
	if err := storage.client.Del(ctx, storage.prefix+key).Err(); err != nil {
		return fmt.Errorf("redis del %s: %w", key, err)
	}
	return nil
}

func (storage *RedisStorage) Close() error {
	return storage.client.Close()
}
