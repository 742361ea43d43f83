package config

import (
	"fmt"
	"time"

	"github.com/Bessima/i2test-auth/internal/middlewares/logger"
	"github.com/caarlos0/env"
	"go.uber.org/zap"
)

type StoreKind string

const (
	FileStore     StoreKind = "file"
	MemoryStore   StoreKind = "memory"
	RedisStore    StoreKind = "redis"
	PostgresStore StoreKind = "postgres"
)

type Config struct {
	APIAddress string `env:"AUTH_API_ADDRESS"`
	Address    string `env:"RUN_ADDRESS"`

	StoreKind    StoreKind `env:"TOKEN_STORE"`
	StorePath    string    `env:"TOKEN_STORE_PATH"`
	RedisAddress string    `env:"REDIS_ADDRESS"`
	RedisPrefix  string    `env:"REDIS_PREFIX"`
	DatabaseDNS  string    `env:"DATABASE_URI"`

	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
	LogLevel       string        `env:"LOG_LEVEL"`
	LogFile        string        `env:"LOG_FILE"`
	Username       string        `env:"AUTH_USERNAME"`
}

func InitConfig(args []string) (*Config, error) {
	flags := Flags{}
	if err := flags.Init(args); err != nil {
		return nil, err
	}

	cfg := Config{
		APIAddress:     flags.apiAddress,
		Address:        flags.address,
		StoreKind:      StoreKind(flags.storeKind),
		StorePath:      flags.storePath,
		RedisAddress:   flags.redisAddress,
		RedisPrefix:    flags.redisPrefix,
		DatabaseDNS:    flags.dbDNS,
		RequestTimeout: flags.timeout,
		LogLevel:       flags.logLevel,
		LogFile:        flags.logFile,
		Username:       flags.username,
	}
	cfg.parseEnv()

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (cfg *Config) parseEnv() {
	err := env.Parse(cfg)
	if err != nil {
		logger.Log.Warn("Getting an error while parsing the configuration", zap.String("err", err.Error()))
	}
}

func (cfg *Config) validate() error {
	switch cfg.StoreKind {
	case FileStore, MemoryStore, RedisStore:
	case PostgresStore:
		if cfg.DatabaseDNS == "" {
			return fmt.Errorf("postgres token store needs a database dns (-d or DATABASE_URI)")
		}
	default:
		return fmt.Errorf("unknown token store %q", cfg.StoreKind)
	}
	if cfg.APIAddress == "" {
		return fmt.Errorf("authentication API address is empty")
	}
	return nil
}
