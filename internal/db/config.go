package db

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds database configuration
type Config struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	MaxOpen  int
	MaxIdle  int
	Timeout  time.Duration
}

// NewConfig creates a new database configuration from environment variables
func NewConfig() *Config {
	return &Config{
		Host:     getEnvOrDefault("RDS_HOST", "localhost"),
		Port:     getEnvIntOrDefault("RDS_PORT", 3306),
		User:     getEnvOrDefault("RDS_USER", "root"),
		Password: getEnvOrDefault("RDS_PASSWORD", ""),
		Database: getEnvOrDefault("RDS_DATABASE", "modutour"),
		MaxOpen:  25,
		MaxIdle:  5,
		Timeout:  30 * time.Second,
	}
}

// cleanEnvValue trims whitespace and strips backslashes that leak in from
// quoted .env files.
func cleanEnvValue(value string) string {
	return strings.ReplaceAll(strings.TrimSpace(value), `\`, "")
}

// getEnvOrDefault returns the cleaned environment variable value or default
func getEnvOrDefault(key, defaultValue string) string {
	if value := cleanEnvValue(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

// getEnvIntOrDefault returns the environment variable as an integer or default
func getEnvIntOrDefault(key string, defaultValue int) int {
	value := cleanEnvValue(os.Getenv(key))
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Invalid integer for %s: %q, using default %d", key, value, defaultValue)
		return defaultValue
	}
	return n
}
