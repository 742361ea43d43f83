package config

import (
	"flag"
	"os"
	"path/filepath"
	"time"
)

const (
	defaultAPIAddress = "http://localhost:8000"
	defaultRunAddress = ":3000"
	defaultTimeout    = 30 * time.Second
)

type Flags struct {
	apiAddress string
	address    string

	storeKind    string
	storePath    string
	redisAddress string
	redisPrefix  string
	dbDNS        string

	timeout  time.Duration
	logLevel string
	logFile  string
	username string
}

func (flags *Flags) Init(args []string) error {
	fs := flag.NewFlagSet("i2test", flag.ContinueOnError)

	fs.StringVar(&flags.apiAddress, "api", defaultAPIAddress, "Base address of the authentication API")
	fs.StringVar(&flags.address, "a", defaultRunAddress, "Address and port to run the web forms")

	fs.StringVar(&flags.storeKind, "store", string(FileStore), "Token store: file, memory, redis or postgres")
	fs.StringVar(&flags.storePath, "store-path", defaultStorePath(), "Path of the file token store")
	fs.StringVar(&flags.redisAddress, "redis", "localhost:6379", "redis address")
	fs.StringVar(&flags.redisPrefix, "redis-prefix", "i2test:", "prefix of redis keys")
	fs.StringVar(&flags.dbDNS, "d", "", "db dns")

	fs.DurationVar(&flags.timeout, "timeout", defaultTimeout, "Timeout of one request to the authentication API")
	fs.StringVar(&flags.logLevel, "log-level", "info", "Log level")
	fs.StringVar(&flags.logFile, "log-file", "i2test.log", "Log file used by the terminal forms")
	fs.StringVar(&flags.username, "u", "", "Username for login and register")

	return fs.Parse(args)
}

func defaultStorePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".i2test", "storage.json")
	}
	return filepath.Join(home, ".i2test", "storage.json")
}
