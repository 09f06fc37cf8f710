// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	Environment string `validate:"oneof=development staging testing production"`
	LogLevel    string `validate:"oneof=debug info warn error"`
	Server      ServerConfig
	Database    DatabaseConfig
	CORS        CORSConfig
	RateLimit   RateLimitConfig
}

type ServerConfig struct {
	Port         string `validate:"required,numeric"`
	Host         string
	ReadTimeout  int `validate:"min=0"`
	WriteTimeout int `validate:"min=0"`
	IdleTimeout  int `validate:"min=0"`
}

type DatabaseConfig struct {
	URL          string `validate:"required"`
	MaxOpenConns int    `validate:"min=0"`
	MaxIdleConns int    `validate:"min=0"`
	MaxLifetime  int    `validate:"min=0"`
	LogLevel     string `validate:"oneof=silent error warn info"`
}

type CORSConfig struct {
	AllowedOrigins []string `validate:"min=1"`
}

type RateLimitConfig struct {
	RequestsPerSecond float64 `validate:"min=0"`
	Burst             int     `validate:"min=1"`
}

func (r RateLimitConfig) Enabled() bool {
	return r.RequestsPerSecond > 0
}

var validate = validator.New()

func Load() (*Config, error) {
	// Load .env file if it exists
	godotenv.Load()

	config := &Config{
		Environment: strings.ToLower(getEnv("ENVIRONMENT", "development")),
		LogLevel:    strings.ToLower(getEnv("LOG_LEVEL", "info")),
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			Host:         getEnv("SERVER_HOST", ""),
			ReadTimeout:  getEnvAsInt("SERVER_READ_TIMEOUT", 15),
			WriteTimeout: getEnvAsInt("SERVER_WRITE_TIMEOUT", 15),
			IdleTimeout:  getEnvAsInt("SERVER_IDLE_TIMEOUT", 60),
		},
		Database: DatabaseConfig{
			URL:          getEnv("DATABASE_URL", ""),
			MaxOpenConns: getEnvAsInt("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns: getEnvAsInt("DB_MAX_IDLE_CONNS", 25),
			MaxLifetime:  getEnvAsInt("DB_MAX_LIFETIME", 300),
			LogLevel:     strings.ToLower(getEnv("DB_LOG_LEVEL", "silent")),
		},
		CORS: CORSConfig{
			AllowedOrigins: getEnvAsSlice("CORS_ALLOWED_ORIGINS", []string{"*"}),
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: getEnvAsFloat("RATE_LIMIT_RPS", 0),
			Burst:             getEnvAsInt("RATE_LIMIT_BURST", 10),
		},
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return err
	}

	if _, err := c.Database.Dialector(); err != nil {
		return err
	}

	if err := c.CORS.Validate(); err != nil {
		return err
	}

	return nil
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// Addr is the listen address for the HTTP server.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%s", s.Host, s.Port)
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvAsSlice(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
