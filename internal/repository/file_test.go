package repository

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStorage_SetGet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "storage.json")
	storage := NewFileStorage(path)
	ctx := context.Background()

	require.NoError(t, storage.Set(ctx, AccessKey, "A"))
	require.NoError(t, storage.Set(ctx, RefreshKey, "R"))

	value, err := storage.Get(ctx, AccessKey)
	require.NoError(t, err)
	assert.Equal(t, "A", value)

	// Новый экземпляр читает то же содержимое с диска
	reopened := NewFileStorage(path)
	value, err = reopened.Get(ctx, RefreshKey)
	require.NoError(t, err)
	assert.Equal(t, "R", value)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	var onDisk map[string]string
	require.NoError(t, json.Unmarshal(content, &onDisk))
	assert.Equal(t, map[string]string{"access": "A", "refresh": "R"}, onDisk)
}

func TestFileStorage_Overwrite(t *testing.T) {
	storage := NewFileStorage(filepath.Join(t.TempDir(), "storage.json"))
	ctx := context.Background()

	require.NoError(t, storage.Set(ctx, AccessKey, "old"))
	require.NoError(t, storage.Set(ctx, AccessKey, "new"))

	value, err := storage.Get(ctx, AccessKey)
	require.NoError(t, err)
	assert.Equal(t, "new", value)
}

func TestFileStorage_FilePermissions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "storage.json")
	storage := NewFileStorage(path)

	require.NoError(t, storage.Set(context.Background(), AccessKey, "A"))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestFileStorage_MissingFileAndKey(t *testing.T) {
	storage := NewFileStorage(filepath.Join(t.TempDir(), "absent.json"))

	value, err := storage.Get(context.Background(), AccessKey)

	assert.ErrorIs(t, err, ErrKeyNotFound)
	assert.Empty(t, value)
	assert.NoError(t, storage.Delete(context.Background(), AccessKey))
}

func TestFileStorage_Delete(t *testing.T) {
	storage := NewFileStorage(filepath.Join(t.TempDir(), "storage.json"))
	ctx := context.Background()

	require.NoError(t, storage.Set(ctx, AccessKey, "A"))
	require.NoError(t, storage.Set(ctx, RefreshKey, "R"))
	require.NoError(t, storage.Delete(ctx, AccessKey))

	_, err := storage.Get(ctx, AccessKey)
	assert.ErrorIs(t, err, ErrKeyNotFound)
	value, err := storage.Get(ctx, RefreshKey)
	require.NoError(t, err)
	assert.Equal(t, "R", value)
}

func TestFileStorage_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "storage.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))
	storage := NewFileStorage(path)

	_, err := storage.Get(context.Background(), AccessKey)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrKeyNotFound)

	assert.Error(t, storage.Set(context.Background(), AccessKey, "A"))
}
