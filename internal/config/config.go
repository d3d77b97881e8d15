package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds runtime configuration sourced from env vars.
type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	ServerPort string

	JWTSecret string
	JWTIssuer string
	JWTTTL    time.Duration

	// Bootstrap admin, created at startup when it does not exist yet.
	// Admin registration is otherwise outside this service.
	AdminUsername string
	AdminPassword string
}

// Load reads configuration from the environment with local-dev defaults
// and performs minimal validation. The JWT secret has no default: every
// protected route trusts tokens signed with it, so an empty key must
// never reach the token manager.
func Load() (*Config, error) {
	cfg := &Config{
		DBHost:        fallback(os.Getenv("DB_HOST"), "localhost"),
		DBPort:        fallback(os.Getenv("DB_PORT"), "5432"),
		DBUser:        fallback(os.Getenv("DB_USER"), "postgres"),
		DBPassword:    fallback(os.Getenv("DB_PASSWORD"), "password"),
		DBName:        fallback(os.Getenv("DB_NAME"), "ledger_admin"),
		ServerPort:    fallback(os.Getenv("SERVER_PORT"), "8080"),
		JWTSecret:     strings.TrimSpace(os.Getenv("JWT_SECRET")),
		JWTIssuer:     fallback(os.Getenv("JWT_ISSUER"), "ledger-admin"),
		AdminUsername: strings.TrimSpace(os.Getenv("ADMIN_USERNAME")),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
	}

	minutes := fallback(os.Getenv("JWT_TTL_MINUTES"), "60")
	if ttlMinutes, err := strconv.Atoi(minutes); err == nil && ttlMinutes > 0 {
		cfg.JWTTTL = time.Duration(ttlMinutes) * time.Minute
	} else {
		cfg.JWTTTL = 60 * time.Minute
	}

	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET is required")
	}

	return cfg, nil
}

// GetDBConnectionString assembles the lib/pq DSN.
func (c *Config) GetDBConnectionString() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName)
}

func fallback(value, def string) string {
	if strings.TrimSpace(value) == "" {
		return def
	}
	return strings.TrimSpace(value)
}
