package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"
)

// Helper function to get environment variable with fallback default value
func GetEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// Helper function to get environment variable as integer with fallback
func GetEnvAsInt(key string, fallback int) int {
	valueStr := GetEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}

func GetEnvAsBool(key string, fallback bool) bool {
	valueStr := GetEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return fallback
}

// Provider holds the connection settings for the hosted data provider.
// They are read on every request so a misconfigured deployment answers with a
// configuration error instead of refusing to boot.
type Provider struct {
	URL        string
	AnonKey    string
	ServiceKey string
}

func LoadProvider() Provider {
	return Provider{
		URL:        strings.TrimSpace(GetEnv("DAYFLOW_DB_URL", "")),
		AnonKey:    strings.TrimSpace(GetEnv("DAYFLOW_ANON_KEY", "")),
		ServiceKey: strings.TrimSpace(GetEnv("DAYFLOW_SERVICE_KEY", "")),
	}
}

// Missing reports whether the URL or the public key is absent.
func (p Provider) Missing() bool {
	return p.URL == "" || p.AnonKey == ""
}

func (p Provider) HasServiceKey() bool {
	return p.ServiceKey != ""
}

// AdminKey prefers the service key and falls back to the anon key.
func (p Provider) AdminKey() string {
	if p.HasServiceKey() {
		return p.ServiceKey
	}
	return p.AnonKey
}

type SMTP struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

func (s SMTP) Enabled() bool {
	return s.Host != ""
}

// DevJWTSecret signs keys when DAYFLOW_JWT_SECRET is unset. Anyone holding it
// can mint a service_role key, so it is accepted only in development.
const DevJWTSecret = "dayflow-dev-secret"

var ErrDevSecret = errors.New("DAYFLOW_JWT_SECRET must be set when APP_ENV is not development")

type Config struct {
	Env         string
	Port        string
	JWTSecret   string
	SessionTTL  time.Duration
	AutoConfirm bool
	AutoMigrate bool
	LogLevel    string
	LogFile     string
	RedisAddr   string
	RedisPass   string
	SMTP        SMTP
}

func Load() *Config {
	cfg := &Config{
		Env:         strings.ToLower(strings.TrimSpace(GetEnv("APP_ENV", "development"))),
		Port:        GetEnv("PORT", "3000"),
		JWTSecret:   GetEnv("DAYFLOW_JWT_SECRET", DevJWTSecret),
		SessionTTL:  time.Duration(GetEnvAsInt("DAYFLOW_SESSION_TTL", 3600)) * time.Second,
		AutoConfirm: GetEnvAsBool("DAYFLOW_AUTOCONFIRM", true),
		AutoMigrate: GetEnvAsBool("DAYFLOW_AUTO_MIGRATE", true),
		LogLevel:    GetEnv("LOG_LEVEL", "info"),
		LogFile:     GetEnv("LOG_FILE", ""),
		RedisAddr:   GetEnv("REDIS_ADDR", ""),
		RedisPass:   GetEnv("REDIS_PASSWORD", ""),
		SMTP: SMTP{
			Host:     GetEnv("SMTP_HOST", ""),
			Port:     GetEnvAsInt("SMTP_PORT", 587),
			User:     GetEnv("SMTP_USER", ""),
			Password: GetEnv("SMTP_PASSWORD", ""),
			From:     GetEnv("SMTP_FROM", "no-reply@dayflow.local"),
		},
	}
	if strings.TrimSpace(cfg.JWTSecret) == "" {
		cfg.JWTSecret = DevJWTSecret
	}
	return cfg
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "" || c.Env == "development" || c.Env == "dev"
}

// UsingDevSecret reports whether keys are signed with the built-in secret.
func (c *Config) UsingDevSecret() bool {
	return c.JWTSecret == DevJWTSecret
}

// Validate rejects settings that are unsafe outside development.
func (c *Config) Validate() error {
	if c.UsingDevSecret() && !c.IsDevelopment() {
		return ErrDevSecret
	}
	return nil
}
