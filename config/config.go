// Package config provides application configuration management.
// It loads configuration from environment variables with sensible defaults.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/slaxamine/savvy-gemini-wallet/internal/domain/entity"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	Redis     RedisConfig
	Wallet    WalletConfig
	Assistant AssistantConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	Environment  string
}

// RedisConfig holds Redis configuration.
type RedisConfig struct {
	URL      string
	Password string
	DB       int
}

// WalletConfig holds wallet behavior configuration.
type WalletConfig struct {
	Currency            string
	DefaultBalance      decimal.Decimal
	LowBalanceThreshold decimal.Decimal
}

// AssistantConfig holds assistant behavior configuration.
type AssistantConfig struct {
	ThinkDelay time.Duration
}

// Load loads configuration from environment variables.
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Host:         getEnv("SERVER_HOST", "0.0.0.0"),
			Port:         getEnvAsInt("SERVER_PORT", 8080),
			ReadTimeout:  getEnvAsDuration("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout: getEnvAsDuration("SERVER_WRITE_TIMEOUT", 15*time.Second),
			Environment:  getEnv("ENV", "development"),
		},
		Redis: RedisConfig{
			URL:      getEnv("REDIS_URL", "redis://localhost:6379/0"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		Wallet: WalletConfig{
			Currency:            getEnv("WALLET_CURRENCY", "MAD"),
			DefaultBalance:      getEnvAsDecimal("WALLET_DEFAULT_BALANCE", entity.DefaultBalance),
			LowBalanceThreshold: getEnvAsDecimal("WALLET_LOW_BALANCE_THRESHOLD", decimal.NewFromInt(100)),
		},
		Assistant: AssistantConfig{
			ThinkDelay: getEnvAsDuration("ASSISTANT_THINK_DELAY", 1500*time.Millisecond),
		},
	}
}

// Helper functions for environment variable parsing

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getEnvAsDecimal(key string, defaultValue decimal.Decimal) decimal.Decimal {
	if value, exists := os.LookupEnv(key); exists {
		if decVal, err := decimal.NewFromString(value); err == nil {
			return decVal
		}
	}
	return defaultValue
}
