package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// FileStorage хранит пары в одном JSON-файле, как localStorage браузера
type FileStorage struct {
	mu   sync.Mutex
	path string
}

func NewFileStorage(path string) *FileStorage {
	return &FileStorage{path: path}
}

func (storage *FileStorage) Set(_ context.Context, key, value string) error {
	storage.mu.Lock()
	defer storage.mu.Unlock()

	data, err := storage.load()
	if err != nil {
		return err
	}
	data[key] = value
	return storage.save(data)
}

func (storage *FileStorage) Get(_ context.Context, key string) (string, error) {
	storage.mu.Lock()
	defer storage.mu.Unlock()

	data, err := storage.load()
	if err != nil {
		return "", err
	}
	value, ok := data[key]
	if !ok {
		return "", ErrKeyNotFound
	}
	return value, nil
}

func (storage *FileStorage) Delete(_ context.Context, key string) error {
	storage.mu.Lock()
	defer storage.mu.Unlock()

	data, err := storage.load()
	if err != nil {
		return err
	}
	if _, ok := data[key]; !ok {
		return nil
	}
	delete(data, key)
	return storage.save(data)
}

func (storage *FileStorage) Close() error {
	return nil
}

func (storage *FileStorage) load() (map[string]string, error) {
	data := make(map[string]string)

	content, err := os.ReadFile(storage.path)
	if errors.Is(err, fs.ErrNotExist) {
		return data, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read storage file %s: %w", storage.path, err)
	}
	if len(content) == 0 {
		return data, nil
	}
	if err = json.Unmarshal(content, &data); err != nil {
		return nil, fmt.Errorf("decode storage file %s: %w", storage.path, err)
	}
	return data, nil
}

// save пишет во временный файл и переименовывает его, чтобы не оставить файл наполовину записанным
func (storage *FileStorage) save(data map[string]string) error {
	content, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("encode storage: %w", err)
	}

	dir := filepath.Dir(storage.path)
	if err = os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("create storage dir %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".storage-*.json")
	if err != nil {
		return fmt.Errorf("create temp storage file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err = tmp.Write(content); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp storage file: %w", err)
	}
	if err = tmp.Chmod(0o600); err != nil {
		tmp.Close()
		return fmt.Errorf("chmod temp storage file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close temp storage file: %w", err)
	}

	if err = os.Rename(tmp.Name(), storage.path); err != nil {
		return fmt.Errorf("replace storage file %s: %w", storage.path, err)
	}
	return nil
}
