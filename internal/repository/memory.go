package repository

import (
	"context"
	"sync"
)

type MemoryStorage struct {
	mu   sync.RWMutex
	data map[string]string
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{data: make(map[string]string)}
}

func (storage *MemoryStorage) Set(_ context.Context, key, value string) error {
	storage.mu.Lock()
	defer storage.mu.Unlock()

	storage.data[key] = value
	return nil
}

func (storage *MemoryStorage) Get(_ context.Context, key string) (string, error) {
	storage.mu.RLock()
	defer storage.mu.RUnlock()

	value, ok := storage.data[key]
	if !ok {
		return "", ErrKeyNotFound
	}
	return value, nil
}

func (storage *MemoryStorage) Delete(_ context.Context, key string) error {
	storage.mu.Lock()
	defer storage.mu.Unlock()

	delete(storage.data, key)
	return nil
}

func (storage *MemoryStorage) Len() int {
	storage.mu.RLock()
	defer storage.mu.RUnlock()

	return len(storage.data)
}

func (storage *MemoryStorage) Close() error {
	return nil
}
