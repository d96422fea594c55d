package config

import (
	"os"
	"strconv"

	"maestro/internal/database"
	"maestro/internal/messaging"
	"maestro/internal/search"
	"maestro/internal/token"
)

// Config holds the full application configuration. Everything is loaded
// once at startup and passed into constructors; nothing reads the
// environment after Load returns.
type Config struct {
	Port      string
	GinMode   string
	LogLevel  string
	LogFormat string

	RateLimit RateLimitConfig
	Redis     RedisConfig

	Database      database.Config
	JWT           token.Config
	NATS          messaging.Config
	Elasticsearch search.Config
}

// RateLimitConfig caps requests per path within a fixed window.
type RateLimitConfig struct {
	Requests  int
	WindowSec int
}

// RedisConfig configures the rate-limiter backend. An empty Addr disables
// rate limiting.
type RedisConfig struct {
	Addr     string
	Password string
}

// Load builds the configuration from environment variables.
func Load() *Config {
	return &Config{
		Port:      getEnv("PORT", "8080"),
		GinMode:   getEnv("GIN_MODE", "debug"),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "json"),

		RateLimit: RateLimitConfig{
			Requests:  getEnvInt("RATE_LIMIT_REQUESTS", 100),
			WindowSec: getEnvInt("RATE_LIMIT_WINDOW_SEC", 10),
		},

		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
		},

		Database: database.Config{
			Host:               getEnv("DB_HOST", "localhost"),
			Port:               getEnvInt("DB_PORT", 5432),
			User:               getEnv("DB_USER", "maestro"),
			Password:           getEnv("DB_PASSWORD", "maestro123"),
			DBName:             getEnv("DB_NAME", "maestro"),
			SSLMode:            getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns:       getEnvInt("DB_MAX_OPEN_CONNS", 50),
			MaxIdleConns:       getEnvInt("DB_MAX_IDLE_CONNS", 10),
			ConnMaxLifetimeMin: getEnvInt("DB_CONN_MAX_LIFETIME_MIN", 5),
			ConnMaxIdleTimeMin: getEnvInt("DB_CONN_MAX_IDLE_TIME_MIN", 1),
		},

		JWT: token.Config{
			Secret:   getEnv("JWT_SECRET", "dev-secret-change-me"),
			Issuer:   getEnv("JWT_ISSUER", "maestro"),
			Audience: getEnv("JWT_AUDIENCE", "maestro-api"),
			TTLMin:   getEnvInt("JWT_TTL_MIN", 60),
		},

		NATS: messaging.Config{
			URL:       getEnv("NATS_URL", ""),
			ClusterID: getEnv("NATS_CLUSTER_ID", "maestro"),
			ClientID:  getEnv("NATS_CLIENT_ID", "maestro-api"),
		},

		Elasticsearch: search.Config{
			URL:        getEnv("ELASTICSEARCH_URL", ""),
			Username:   getEnv("ELASTICSEARCH_USERNAME", ""),
			Password:   getEnv("ELASTICSEARCH_PASSWORD", ""),
			Index:      getEnv("ELASTICSEARCH_INDEX", "events"),
			MaxRetries: getEnvInt("ELASTICSEARCH_MAX_RETRIES", 3),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
