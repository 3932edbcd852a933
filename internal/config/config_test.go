package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HTTP_PORT", "")
	t.Setenv("DATABASE_DSN", "")
	t.Setenv("CORS_ALLOWED_ORIGINS", "")

	cfg := Load()
	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Contains(t, cfg.DatabaseDSN, "dbname=envanter")
	assert.Equal(t, "http://localhost:5173", cfg.CORSOrigins)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("DATABASE_DSN", "host=db user=app dbname=envanter port=5432")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://panel.example.com")

	cfg := Load()
	assert.Equal(t, "9090", cfg.HTTPPort)
	assert.Equal(t, "host=db user=app dbname=envanter port=5432", cfg.DatabaseDSN)
	assert.Equal(t, "https://panel.example.com", cfg.CORSOrigins)
}
