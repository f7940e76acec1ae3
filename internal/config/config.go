// Package config handles configuration loading for the auth service.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config holds all configuration for the auth service.
type Config struct {
	DBHost          string
	DBPort          string
	DBUser          string
	DBPassword      string
	DBName          string
	RedisHost       string
	RedisPort       string
	RedisPassword   string
	JWTSecret       string
	JWTExpiry       time.Duration
	FrontendBaseURL string
	Port            string
	Environment     string
}

// Load reads configuration from the environment. A local .env file is
// loaded first if present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		DBHost:          getEnvRequired("DB_HOST"),
		DBPort:          getEnvRequired("DB_PORT"),
		DBUser:          getEnvRequired("DB_USER"),
		DBPassword:      getEnvRequired("DB_PASSWORD"),
		DBName:          getEnvRequired("DB_NAME"),
		RedisHost:       getEnvRequired("REDIS_HOST"),
		RedisPort:       getEnvRequired("REDIS_PORT"),
		RedisPassword:   getEnv("REDIS_PASSWORD", ""),
		JWTSecret:       getEnvRequired("JWT_SECRET"),
		JWTExpiry:       parseMillis(getEnv("JWT_EXPIRATION_MS", "3600000"), time.Hour),
		FrontendBaseURL: getEnv("FRONTEND_BASE_URL", "http://localhost:5173"),
		Port:            getEnv("PORT", "8084"),
		Environment:     getEnv("ENVIRONMENT", "development"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvRequired(key string) string {
	value := os.Getenv(key)
	if value == "" {
		log.Fatal().Str("key", key).Msg("required environment variable is not set")
	}
	return value
}

// parseMillis converts a millisecond count to a duration. The token TTL is
// configured in milliseconds to stay wire-compatible with existing deployments.
func parseMillis(value string, defaultValue time.Duration) time.Duration {
	ms, err := strconv.ParseInt(value, 10, 64)
	if err != nil || ms <= 0 {
		return defaultValue
	}
	return time.Duration(ms) * time.Millisecond
}
