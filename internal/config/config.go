package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"skillsync/internal/logger"
)

type Config struct {
	AppPort     string
	DatabaseURL string // empty means the in-memory store

	RedisAddr     string // empty means in-memory sessions
	RedisPassword string
	RedisDB       int

	SessionSecret string
	SessionTTL    time.Duration

	// DevMode relaxes auth: unauthenticated requests act as user 1. Never
	// enable in production.
	DevMode bool

	APIRateLimit   int
	APIRateWindow  time.Duration
	AuthRateLimit  int
	AuthRateWindow time.Duration

	LogLevel string
	LogJSON  bool
}

// Load reads configuration from the environment, with .env as a convenience
// for local development.
func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		AppPort:       envOr("APP_PORT", "8080"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       envInt("REDIS_DB", 0),

		SessionSecret: os.Getenv("SESSION_SECRET"),
		SessionTTL:    time.Duration(envInt("SESSION_TTL_HOURS", 24)) * time.Hour,

		DevMode: os.Getenv("DEV_MODE") == "true",

		APIRateLimit:   envInt("API_RATE_LIMIT", 60),
		APIRateWindow:  time.Duration(envInt("API_RATE_WINDOW_SECONDS", 60)) * time.Second,
		AuthRateLimit:  envInt("AUTH_RATE_LIMIT", 5),
		AuthRateWindow: time.Duration(envInt("AUTH_RATE_WINDOW_SECONDS", 60)) * time.Second,

		LogLevel: envOr("LOG_LEVEL", "info"),
		LogJSON:  os.Getenv("LOG_JSON") == "true",
	}

	if cfg.SessionSecret == "" {
		if !cfg.DevMode {
			logger.Fatal("SESSION_SECRET is not set")
		}
		cfg.SessionSecret = "dev-only-secret"
	}

	return cfg
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
