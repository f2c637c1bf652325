package common

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig_MissingSecretIsFatal(t *testing.T) {
	t.Setenv("SECRET_KEY", "")
	t.Setenv("sqlite_db", "test.db")

	_, err := LoadConfig()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "SECRET_KEY")
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("SECRET_KEY", "supersecret")
	t.Setenv("sqlite_db", "test.db")
	t.Setenv("ACCESS_TOKEN_EXPIRE_MINUTES", "")
	t.Setenv("FRONTEND_URLS", "")
	t.Setenv("PORT", "")

	cfg, err := LoadConfig()
	assert.NoError(t, err)
	assert.Equal(t, 30*time.Minute, cfg.TokenTTL)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.AllowedOrigins)
	assert.Equal(t, "8080", cfg.Port)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("SECRET_KEY", "supersecret")
	t.Setenv("sqlite_db", "prod.db")
	t.Setenv("ACCESS_TOKEN_EXPIRE_MINUTES", "120")
	t.Setenv("FRONTEND_URLS", "https://a.example.com,https://b.example.com")
	t.Setenv("PORT", "9000")

	cfg, err := LoadConfig()
	assert.NoError(t, err)
	assert.Equal(t, 2*time.Hour, cfg.TokenTTL)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.AllowedOrigins)
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "prod.db", cfg.DBFile)
}

func TestLoadConfig_BadTTL(t *testing.T) {
	t.Setenv("SECRET_KEY", "supersecret")
	t.Setenv("sqlite_db", "test.db")
	t.Setenv("ACCESS_TOKEN_EXPIRE_MINUTES", "soon")

	_, err := LoadConfig()
	assert.Error(t, err)
}
