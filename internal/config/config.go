package config

import (
	"os"
	"strconv"
)

// DatabaseConfig holds PostgreSQL database connection settings.
type DatabaseConfig struct {
	Host               string
	Port               string
	User               string
	Password           string
	Name               string
	SSLMode            string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeSec int
}

// AppConfig is the centralized configuration struct for the application.
// It is populated once at process start and passed down to components;
// nothing reads the environment after Load returns.
type AppConfig struct {
	Port     string
	Database DatabaseConfig
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// Real environment variables take precedence over .env entries.
//
// DB_MAX_IDLE_CONNS defaults to 0: every store operation then dials a fresh
// connection and releases it on return. Set it above zero to enable pooling.
func Load() *AppConfig {
	return &AppConfig{
		Port: getEnv("PORT", "5000"),
		Database: DatabaseConfig{
			Host:               getEnv("DB_HOST", "db"),
			Port:               getEnv("DB_PORT", "5432"),
			User:               getEnv("DB_USER", "root"),
			Password:           getEnv("DB_PASSWORD", "rootpassword"),
			Name:               getEnv("DB_NAME", "notesdb"),
			SSLMode:            getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns:       getEnvInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:       getEnvInt("DB_MAX_IDLE_CONNS", 0),
			ConnMaxLifetimeSec: getEnvInt("DB_CONN_MAX_LIFETIME_SEC", 300),
		},
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}
