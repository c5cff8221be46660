package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Config holds everything the server reads from the environment.
type Config struct {
	Addr        string
	DatabaseURL string // postgres DSN; empty means local sqlite
	SQLitePath  string
	JWTSecret   string
	TokenTTL    time.Duration
}

// Load reads configuration from the environment. A .env file is picked up
// when present so local runs don't need exported variables.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		logrus.Debugf("no .env file loaded: %v", err)
	}

	cfg := &Config{
		Addr:        getEnv("ADDR", ":3000"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		SQLitePath:  getEnv("SQLITE_PATH", "./social.db"),
		JWTSecret:   getEnv("JWT_SECRET", "replace_this_secret"),
		TokenTTL:    7 * 24 * time.Hour,
	}

	if ttlStr := os.Getenv("TOKEN_TTL"); ttlStr != "" {
		ttl, err := time.ParseDuration(ttlStr)
		if err != nil {
			logrus.Warnf("invalid TOKEN_TTL %q, keeping default: %v", ttlStr, err)
		} else {
			cfg.TokenTTL = ttl
		}
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
