package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultPort      = "8080"
	defaultJWTTTL    = "24h"
	defaultJWTSecret = "change-me-jwt-secret"
)

type Config struct {
	Env         string
	Port        string
	DatabaseURL string
	JWTSecret   string
	JWTTTL      time.Duration

	// Daraja credentials; empty values leave the M-Pesa payment path
	// disabled and the simulated gateway in charge.
	DarajaConsumerKey    string
	DarajaConsumerSecret string
	DarajaShortCode      string
	DarajaPasskey        string
	DarajaSandbox        bool
}

func Load() (*Config, error) {
	// Best effort: a missing .env just means real env vars are in use.
	_ = godotenv.Load()

	cfg := &Config{
		Env:         strings.ToLower(getEnv("APP_ENV", "dev")),
		Port:        getEnv("PORT", defaultPort),
		DatabaseURL: getEnv("DATABASE_URL", "hotel.db"),
		JWTSecret:   strings.TrimSpace(getEnv("JWT_SECRET", defaultJWTSecret)),

		DarajaConsumerKey:    os.Getenv("DARAJA_CONSUMER_KEY"),
		DarajaConsumerSecret: os.Getenv("DARAJA_CONSUMER_SECRET"),
		DarajaShortCode:      os.Getenv("DARAJA_SHORTCODE"),
		DarajaPasskey:        os.Getenv("DARAJA_PASSKEY"),
		DarajaSandbox:        parseBoolEnv("DARAJA_SANDBOX", "true"),
	}

	var err error
	cfg.JWTTTL, err = parseDurationEnv("JWT_TTL", defaultJWTTTL)
	if err != nil {
		return nil, err
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.JWTTTL <= 0 {
		return fmt.Errorf("JWT_TTL must be > 0")
	}
	if isProdLike(cfg.Env) && cfg.JWTSecret == defaultJWTSecret {
		return fmt.Errorf("in prod/release JWT_SECRET must be set and not default")
	}
	return nil
}

func isProdLike(env string) bool {
	return env == "prod" || env == "production" || env == "release"
}

func parseDurationEnv(name, fallback string) (time.Duration, error) {
	value := strings.TrimSpace(getEnv(name, fallback))
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return d, nil
}

func parseBoolEnv(name, fallback string) bool {
	value := strings.ToLower(strings.TrimSpace(getEnv(name, fallback)))
	return value == "1" || value == "true" || value == "yes" || value == "on"
}

func getEnv(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}
