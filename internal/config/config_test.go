package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("MONGO_URI", "mongodb://localhost:27017")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoURI)
	assert.Equal(t, "userhub", cfg.MongoDB)
	assert.False(t, cfg.MongoTLSInsecure)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.NotEmpty(t, cfg.CORSAllowedOrigins)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("MONGO_URI", "mongodb://db:27017")
	t.Setenv("PORT", "9090")
	t.Setenv("MONGO_DB", "people")
	t.Setenv("MONGO_TLS_INSECURE", "true")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "people", cfg.MongoDB)
	assert.True(t, cfg.MongoTLSInsecure)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
}

func TestLoadMissingMongoURI(t *testing.T) {
	t.Setenv("MONGO_URI", "")

	_, err := Load()
	assert.ErrorIs(t, err, ErrMissingMongoURI)
}
