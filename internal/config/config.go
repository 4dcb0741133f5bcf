package config

import (
	"os"
	"time"

	"github.com/sirupsen/logrus"
)

type Config struct {
	AppName string
	AppEnv  string
	AppPort string

	DB  DBConfig
	JWT JWTConfig
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

type JWTConfig struct {
	Secret string
	Expiry time.Duration
}

// DefaultJWTExpiry matches the short-lived demo tokens the app ships with;
// production deployments override via JWT_EXPIRY.
const DefaultJWTExpiry = 20 * time.Second

func Load() *Config {
	return &Config{
		AppName: os.Getenv("APP_NAME"),
		AppEnv:  os.Getenv("APP_ENV"),
		AppPort: getEnv("APP_PORT", "8000"),

		DB: DBConfig{
			Host:     os.Getenv("DB_HOST"),
			Port:     os.Getenv("DB_PORT"),
			User:     os.Getenv("DB_USER"),
			Password: os.Getenv("DB_PASSWORD"),
			Name:     os.Getenv("DB_NAME"),
			SSLMode:  os.Getenv("DB_SSLMODE"),
		},

		JWT: JWTConfig{
			Secret: os.Getenv("JWT_SECRET"),
			Expiry: loadExpiry(),
		},
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// loadExpiry parses JWT_EXPIRY as a Go duration string ("20s", "3m", ...).
func loadExpiry() time.Duration {
	raw := os.Getenv("JWT_EXPIRY")
	if raw == "" {
		return DefaultJWTExpiry
	}

	expiry, err := time.ParseDuration(raw)
	if err != nil {
		logrus.WithError(err).Warnf("Invalid JWT_EXPIRY %q, using default", raw)
		return DefaultJWTExpiry
	}

	return expiry
}
