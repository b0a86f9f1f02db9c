package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	defaultAddr       = ":8080"
	defaultDSN        = "futsal.db"
	defaultSessionTTL = "24h"
	defaultJWTSecret  = "change-me-jwt-secret"
	defaultUploadsDir = "./uploads"
	defaultStaticBase = "/static/uploads"
	defaultMailFrom   = "onboarding@resend.dev"
	defaultMailName   = "Futsal Booking"
)

type Config struct {
	AppEnv      string
	Addr        string
	DatabaseURL string

	JWTSecret  string
	SessionTTL time.Duration

	UploadsDir string
	StaticBase string

	SendGridAPIKey string
	MailFromName   string
	MailFromAddr   string

	AdminEmail        string
	AdminPasswordHash string // bcrypt hash of the admin password
}

func Load() (*Config, error) {
	cfg := &Config{}

	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = "dev"
	}
	cfg.AppEnv = strings.ToLower(appEnv)

	cfg.Addr = getEnv("ADDR", defaultAddr)
	cfg.DatabaseURL = getEnv("DATABASE_URL", defaultDSN)
	cfg.JWTSecret = strings.TrimSpace(getEnv("JWT_SECRET", defaultJWTSecret))

	ttl, err := time.ParseDuration(getEnv("SESSION_TTL", defaultSessionTTL))
	if err != nil {
		return nil, fmt.Errorf("invalid SESSION_TTL: %w", err)
	}
	cfg.SessionTTL = ttl

	cfg.UploadsDir = getEnv("UPLOADS_DIR", defaultUploadsDir)
	cfg.StaticBase = getEnv("STATIC_BASE", defaultStaticBase)

	cfg.SendGridAPIKey = strings.TrimSpace(os.Getenv("SENDGRID_API_KEY"))
	cfg.MailFromName = getEnv("MAIL_FROM_NAME", defaultMailName)
	cfg.MailFromAddr = getEnv("MAIL_FROM_ADDR", defaultMailFrom)

	cfg.AdminEmail = strings.ToLower(strings.TrimSpace(os.Getenv("ADMIN_EMAIL")))
	cfg.AdminPasswordHash = strings.TrimSpace(os.Getenv("ADMIN_PASSWORD_HASH"))

	if cfg.AppEnv != "dev" && cfg.JWTSecret == defaultJWTSecret {
		return nil, fmt.Errorf("JWT_SECRET must be set outside dev")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
