package config

import (
	"os"
	"strings"
	"time"
)

const (
	defaultPort          = "8080"
	defaultDatabaseURL   = "hoteldesk.db"
	defaultJWTSecret     = "change-me-in-production"
	defaultSessionTTL    = "24h"
	defaultRememberTTL   = "720h"
	defaultHotelPassword = "change-me-hotel-password"
)

// Config is the process-wide configuration, loaded once in main and passed
// down by reference.
type Config struct {
	Port          string
	DatabaseURL   string
	JWTSecret     string
	HotelPassword string

	// SessionTTL applies to regular logins, RememberTTL to remember-me
	// sessions.
	SessionTTL  time.Duration
	RememberTTL time.Duration

	CORSOrigins []string
}

func Load() (*Config, error) {
	cfg := &Config{
		Port:          getEnv("PORT", defaultPort),
		DatabaseURL:   getEnv("DATABASE_URL", defaultDatabaseURL),
		JWTSecret:     getEnv("JWT_SECRET", defaultJWTSecret),
		HotelPassword: getEnv("HOTEL_PASSWORD", defaultHotelPassword),
	}

	var err error
	cfg.SessionTTL, err = parseDurationEnv("SESSION_TTL", defaultSessionTTL)
	if err != nil {
		return nil, err
	}
	cfg.RememberTTL, err = parseDurationEnv("REMEMBER_SESSION_TTL", defaultRememberTTL)
	if err != nil {
		return nil, err
	}

	if raw := os.Getenv("CORS_ALLOWED_ORIGINS"); raw != "" {
		for _, o := range strings.Split(raw, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.CORSOrigins = append(cfg.CORSOrigins, o)
			}
		}
	} else {
		cfg.CORSOrigins = []string{"http://localhost:3000", "http://localhost:5173"}
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func parseDurationEnv(key, fallback string) (time.Duration, error) {
	return time.ParseDuration(getEnv(key, fallback))
}
