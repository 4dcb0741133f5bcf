package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_PORT", "")
	t.Setenv("JWT_EXPIRY", "")

	cfg := Load()

	assert.Equal(t, "8000", cfg.AppPort)
	assert.Equal(t, DefaultJWTExpiry, cfg.JWT.Expiry)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("JWT_SECRET", "supersecret")
	t.Setenv("JWT_EXPIRY", "3m")
	t.Setenv("DB_HOST", "db.internal")

	cfg := Load()

	assert.Equal(t, "9090", cfg.AppPort)
	assert.Equal(t, "supersecret", cfg.JWT.Secret)
	assert.Equal(t, 3*time.Minute, cfg.JWT.Expiry)
	assert.Equal(t, "db.internal", cfg.DB.Host)
}

func TestLoad_BadExpiryFallsBack(t *testing.T) {
	t.Setenv("JWT_EXPIRY", "twenty seconds")

	cfg := Load()

	assert.Equal(t, DefaultJWTExpiry, cfg.JWT.Expiry)
}
