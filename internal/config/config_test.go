package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitConfig_Defaults(t *testing.T) {
	cfg, err := InitConfig(nil)

	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8000", cfg.APIAddress)
	assert.Equal(t, ":3000", cfg.Address)
	assert.Equal(t, FileStore, cfg.StoreKind)
	assert.NotEmpty(t, cfg.StorePath)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestInitConfig_Flags(t *testing.T) {
	cfg, err := InitConfig([]string{
		"-api", "http://auth.test",
		"-store", "redis",
		"-redis", "127.0.0.1:6380",
		"-timeout", "5s",
		"-u", "alice",
	})

	require.NoError(t, err)
	assert.Equal(t, "http://auth.test", cfg.APIAddress)
	assert.Equal(t, RedisStore, cfg.StoreKind)
	assert.Equal(t, "127.0.0.1:6380", cfg.RedisAddress)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "alice", cfg.Username)
}

func TestInitConfig_EnvOverridesFlags(t *testing.T) {
	t.Setenv("AUTH_API_ADDRESS", "http://env.test")
	t.Setenv("TOKEN_STORE", "memory")
	t.Setenv("REQUEST_TIMEOUT", "2s")

	cfg, err := InitConfig([]string{"-api", "http://flag.test", "-store", "file"})

	require.NoError(t, err)
	assert.Equal(t, "http://env.test", cfg.APIAddress)
	assert.Equal(t, MemoryStore, cfg.StoreKind)
	assert.Equal(t, 2*time.Second, cfg.RequestTimeout)
}

func TestInitConfig_Invalid(t *testing.T) {
	testCases := []struct {
		name string
		args []string
	}{
		{name: "unknown store", args: []string{"-store", "cookie"}},
		{name: "postgres without dns", args: []string{"-store", "postgres"}},
		{name: "empty api address", args: []string{"-api", ""}},
		{name: "unknown flag", args: []string{"-nope"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := InitConfig(tc.args)
			assert.Error(t, err)
			assert.Nil(t, cfg)
		})
	}
}
