package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/bracketlab/bracket-stats/internal/logic"
	"github.com/bracketlab/bracket-stats/internal/models"
)

// Dataset sources
const (
	SourceEmbedded = "embedded"
	SourceFile     = "file"
	SourcePostgres = "postgres"
)

type Config struct {
	// Server
	Port            int
	Env             string
	ShutdownTimeout time.Duration

	// CORS
	AllowedOrigins []string

	// Dataset
	DatasetSource string
	DatasetPath   string
	DatasetYear   int

	// Commentary content; empty means the embedded table
	CommentaryPath string

	// Statistics
	UpsetRule      models.UpsetRule
	UpsetThreshold float64
	UpsetLimit     int

	// Database URLs, all optional unless the dataset source needs one
	PostgresURL   string
	ClickHouseURL string
	RedisURL      string

	// View state
	ViewTTL time.Duration

	// Admin token for /api/v1/system; empty leaves those endpoints locked
	AdminToken string

	// Worker pool
	WorkerCount   int
	QueueSize     int
	BatchSize     int
	FlushInterval time.Duration
}

// Load loads configuration from environment variables.
// It returns an error if critical configuration is missing or malformed.
func Load() (*Config, error) {
	cfg := &Config{
		Port:            getEnvInt("PORT", 8080),
		Env:             getEnv("ENV", "development"),
		ShutdownTimeout: getEnvDuration("SHUTDOWN_TIMEOUT", 10*time.Second),

		DatasetSource:  strings.ToLower(getEnv("DATASET_SOURCE", SourceEmbedded)),
		DatasetPath:    getEnv("DATASET_PATH", ""),
		DatasetYear:    getEnvInt("DATASET_YEAR", 2025),
		CommentaryPath: getEnv("COMMENTARY_PATH", ""),

		UpsetThreshold: getEnvFloat("UPSET_THRESHOLD", logic.DefaultUpsetThreshold),
		UpsetLimit:     getEnvInt("UPSET_LIMIT", logic.DefaultUpsetLimit),

		PostgresURL:   getEnv("POSTGRES_URL", ""),
		ClickHouseURL: getEnv("CLICKHOUSE_URL", ""),
		RedisURL:      getEnv("REDIS_URL", ""),

		ViewTTL:    getEnvDuration("VIEW_TTL", 24*time.Hour),
		AdminToken: getEnv("ADMIN_TOKEN", ""),

		WorkerCount:   getEnvInt("WORKER_COUNT", 2),
		QueueSize:     getEnvInt("QUEUE_SIZE", 1000),
		BatchSize:     getEnvInt("BATCH_SIZE", 100),
		FlushInterval: getEnvDuration("FLUSH_INTERVAL", 1*time.Second),
	}

	// CORS
	origins := getEnv("ALLOWED_ORIGINS", "http://localhost:3000")
	rawOrigins := strings.Split(origins, ",")
	for _, o := range rawOrigins {
		if trimmed := strings.TrimSpace(o); trimmed != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, trimmed)
		}
	}

	rule, ok := models.ParseUpsetRule(getEnv("UPSET_RULE", string(models.UpsetRuleLegacy)))
	if !ok {
		return nil, fmt.Errorf("unknown UPSET_RULE %q (want legacy or seed)", os.Getenv("UPSET_RULE"))
	}
	cfg.UpsetRule = rule

	var err error
	switch cfg.DatasetSource {
	case SourceEmbedded:
	case SourceFile:
		if cfg.DatasetPath, err = getEnvRequired("DATASET_PATH"); err != nil {
			return nil, err
		}
	case SourcePostgres:
		if cfg.PostgresURL, err = getEnvRequired("POSTGRES_URL"); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unknown DATASET_SOURCE %q (want embedded, file or postgres)", cfg.DatasetSource)
	}

	return cfg, nil
}

// IsProduction reports whether ENV selects production logging
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvRequired(key string) (string, error) {
	if value := os.Getenv(key); value != "" {
		return value, nil
	}
	return "", fmt.Errorf("missing required environment variable: %s", key)
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}
