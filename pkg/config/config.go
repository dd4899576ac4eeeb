package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all runtime settings for the profiler service.
type Config struct {
	Port            string
	LogLevel        slog.Level
	FetchTimeout    time.Duration
	CacheTTL        time.Duration
	CacheMaxEntries int
	RateLimitRPS    float64
	RateLimitBurst  int
	MaxBatchSize    int
	WorkerCount     int
}

// Load reads configuration from the environment, consulting a .env
// file when one exists. Real environment variables win over .env values.
func Load() *Config {
	LoadEnvFile()

	return &Config{
		Port:            GetEnv("PORT", "8080"),
		LogLevel:        ParseLogLevel(GetEnv("LOG_LEVEL", "info")),
		FetchTimeout:    GetEnvDuration("FETCH_TIMEOUT", 30*time.Second),
		CacheTTL:        GetEnvDuration("CACHE_TTL", 30*time.Minute),
		CacheMaxEntries: GetEnvInt("CACHE_MAX_ENTRIES", 1000),
		RateLimitRPS:    GetEnvFloat("RATE_LIMIT_RPS", 2),
		RateLimitBurst:  GetEnvInt("RATE_LIMIT_BURST", 5),
		MaxBatchSize:    GetEnvInt("MAX_BATCH_SIZE", 10),
		WorkerCount:     GetEnvInt("WORKER_COUNT", 5),
	}
}

// LoadEnvFile loads .env.development first (local development), then
// falls back to .env. Missing files are fine.
func LoadEnvFile() {
	if err := godotenv.Load(".env.development"); err != nil {
		_ = godotenv.Load()
	}
}

// GetEnv returns the value of key or defaultValue when unset.
func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// GetEnvInt returns the integer value of key or defaultValue when unset
// or unparseable.
func GetEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}

// GetEnvFloat returns the float value of key or defaultValue when unset
// or unparseable.
func GetEnvFloat(key string, defaultValue float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return defaultValue
	}
	return f
}

// GetEnvDuration returns the duration value of key (e.g. "30s", "5m")
// or defaultValue when unset or unparseable.
func GetEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return d
}

// ParseLogLevel maps a level name to its slog level, defaulting to info.
func ParseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
