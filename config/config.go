package config

import (
	"fmt"
	"os"
	"time"
)

const (
	// PostsPerPage is the feed page size.
	PostsPerPage = 10
	// HomeFeedTTL is how long the rendered home feed is served from cache.
	HomeFeedTTL = 20 * time.Second
	// LoginURL is where guarded routes send unauthenticated users. The login
	// page itself belongs to the auth provider, not this app.
	LoginURL = "/auth/login/"

	AvatarSize = 64
)

type Config struct {
	Port      string
	GinMode   string
	DBUser    string
	DBPass    string
	DBHost    string
	DBName    string
	RedisAddr string
	Bucket    string
	FEOrigins string
}

func Load() (*Config, error) {
	cfg := &Config{
		Port:      os.Getenv("PORT"),
		GinMode:   os.Getenv("GIN_MODE"),
		DBUser:    os.Getenv("DB_USER"),
		DBPass:    os.Getenv("DB_PASS"),
		DBHost:    os.Getenv("DB_HOST"),
		DBName:    envOr("DB_NAME", "quill"),
		RedisAddr: envOr("REDIS_ADDR", "localhost:6379"),
		Bucket:    os.Getenv("UPLOADS_BUCKET"),
		FEOrigins: envOr("FE_ORIGINS", "http://localhost:3000"),
	}
	if cfg.Port == "" {
		return nil, fmt.Errorf("$PORT must be set")
	}
	if cfg.DBHost == "" {
		return nil, fmt.Errorf("$DB_HOST must be set")
	}
	return cfg, nil
}

func envOr(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}
