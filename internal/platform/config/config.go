package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"example.com/authdemo/internal/platform/password"
)

type Config struct {
	Port            string
	StaticDir       string
	PasswordScheme  string
	BcryptCost      int
	ShutdownTimeout time.Duration
}

// Load reads the configuration from the environment and exits on bad input.
func Load() Config {
	cfg, err := Parse(os.Getenv)
	if err != nil {
		log.Fatal(err)
	}
	return cfg
}

func Parse(getenv func(string) string) (Config, error) {
	port := getenv("APP_PORT")
	if port == "" {
		port = "5000"
	}

	staticDir := getenv("STATIC_DIR")
	if staticDir == "" {
		staticDir = "web"
	}

	scheme := getenv("PASSWORD_SCHEME")
	if scheme == "" {
		scheme = password.BcryptScheme
	}

	var cost int
	if v := getenv("BCRYPT_COST"); v != "" {
		c, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("bad BCRYPT_COST: %w", err)
		}
		cost = c
	}

	if _, err := password.Lookup(scheme, cost); err != nil {
		return Config{}, fmt.Errorf("bad PASSWORD_SCHEME: %w", err)
	}

	shutdown := getenv("SHUTDOWN_TIMEOUT")
	if shutdown == "" {
		shutdown = "30s"
	}
	sDur, err := time.ParseDuration(shutdown)
	if err != nil {
		return Config{}, fmt.Errorf("bad SHUTDOWN_TIMEOUT: %w", err)
	}

	return Config{
		Port:            ":" + port,
		StaticDir:       staticDir,
		PasswordScheme:  scheme,
		BcryptCost:      cost,
		ShutdownTimeout: sDur,
	}, nil
}
