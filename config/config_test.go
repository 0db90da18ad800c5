package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/recicleme?sslmode=disable")
	t.Setenv("JWT_SECRET_KEY", "segredo")

	cfg := LoadConfig()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 5*time.Second, cfg.DBTimeout)
	assert.Equal(t, 60*time.Minute, cfg.TokenExpiry)
	assert.Equal(t, 100, cfg.RateLimitMaxRequests)
	assert.Equal(t, "*", cfg.CORSAllowedOrigin)
	assert.False(t, cfg.StorageEnabled())
}

func TestLoadConfig_InvalidNumberFallsBack(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/recicleme")
	t.Setenv("JWT_SECRET_KEY", "segredo")
	t.Setenv("DB_TIMEOUT_SEC", "rapido")
	t.Setenv("RATE_LIMIT_MAX_REQUESTS", "20")
	t.Setenv("AWS_S3_BUCKET", "fotos")

	cfg := LoadConfig()

	assert.Equal(t, 5*time.Second, cfg.DBTimeout)
	assert.Equal(t, 20, cfg.RateLimitMaxRequests)
	assert.True(t, cfg.StorageEnabled())
}
