package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const defaultBcryptCost = 10

// Config holds runtime configuration sourced from env vars.
type Config struct {
	Port            string
	Env             string
	DatabaseURL     string
	JWTSecret       string
	JWTIssuer       string
	JWTTTL          time.Duration
	BcryptCost      int
	CORSOrigins     []string
	RateLimitWindow time.Duration
	RateLimitMax    int
}

// Load reads configuration from the environment and performs minimal validation.
func Load() (Config, error) {
	cfg := Config{
		Port:        fallback(os.Getenv("PORT"), "8080"),
		Env:         fallback(os.Getenv("APP_ENV"), "development"),
		DatabaseURL: strings.TrimSpace(os.Getenv("DATABASE_URL")),
		JWTSecret:   strings.TrimSpace(os.Getenv("JWT_SECRET")),
		JWTIssuer:   fallback(os.Getenv("JWT_ISSUER"), "insightboard-api"),
		CORSOrigins: parseCSV(fallback(os.Getenv("CORS_ALLOWED_ORIGINS"), "*")),
	}

	cfg.JWTTTL = minutesOrDefault(os.Getenv("JWT_TTL_MINUTES"), 60)
	cfg.BcryptCost = intInRange(os.Getenv("BCRYPT_COST"), 4, 31, defaultBcryptCost)
	cfg.RateLimitWindow = secondsOrDefault(os.Getenv("RATE_LIMIT_WINDOW_SECONDS"), 60)
	cfg.RateLimitMax = intInRange(os.Getenv("RATE_LIMIT_MAX"), 0, 1_000_000, 100)

	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("DATABASE_URL is required")
	}
	if cfg.JWTSecret == "" {
		return Config{}, errors.New("JWT_SECRET is required")
	}

	return cfg, nil
}

// IsProduction reports whether the service runs with production settings.
func (c Config) IsProduction() bool {
	return c.Env == "production"
}

// HTTPAddress returns the host:port pair for the HTTP server to bind to.
func (c Config) HTTPAddress() string {
	return fmt.Sprintf(":%s", c.Port)
}

func fallback(value, def string) string {
	if strings.TrimSpace(value) == "" {
		return def
	}
	return strings.TrimSpace(value)
}

func parseCSV(input string) []string {
	parts := strings.Split(input, ",")
	var out []string
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}

func minutesOrDefault(value string, def int) time.Duration {
	if n, err := strconv.Atoi(strings.TrimSpace(value)); err == nil && n > 0 {
		return time.Duration(n) * time.Minute
	}
	return time.Duration(def) * time.Minute
}

func secondsOrDefault(value string, def int) time.Duration {
	if n, err := strconv.Atoi(strings.TrimSpace(value)); err == nil && n > 0 {
		return time.Duration(n) * time.Second
	}
	return time.Duration(def) * time.Second
}

func intInRange(value string, min, max, def int) int {
	if n, err := strconv.Atoi(strings.TrimSpace(value)); err == nil && n >= min && n <= max {
		return n
	}
	return def
}
