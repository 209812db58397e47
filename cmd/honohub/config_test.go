package main

import (
	"testing"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := env.ParseAsWithOptions[Config](env.Options{Environment: map[string]string{}})
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, "collections", cfg.CollectionsDir)
	assert.Equal(t, "*.yaml", cfg.CollectionsGlob)
	assert.Equal(t, 5*time.Minute, cfg.CacheTTL)
	assert.Empty(t, cfg.CORSOrigins)
	assert.Equal(t, "@honohub/react", cfg.Admin.DocumentModule)
	assert.Equal(t, "DocumentPage", cfg.Admin.DocumentComponent)
	assert.Equal(t, "./.honohub/generated", cfg.Build.CacheDir)
	assert.Equal(t, "../../dist", cfg.Build.OutDir)
	assert.False(t, cfg.DB.Enabled())
	assert.False(t, cfg.Redis.Enabled())
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestConfigFromEnvironment(t *testing.T) {
	t.Parallel()

	cfg, err := env.ParseAsWithOptions[Config](env.Options{Environment: map[string]string{
		"ADDR":             ":9000",
		"CORS_ORIGINS":     "https://a.example.com,https://b.example.com",
		"DATABASE_URL":     "postgres://localhost/honohub",
		"REDIS_URL":        "redis://localhost:6379/0",
		"ADMIN_TITLE":      "Acme",
		"LOG_LEVEL":        "debug",
		"BUILD_OUT_DIR":    "./dist",
		"COLLECTIONS_GLOB": "**/*.yml",
	}})
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.Addr)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.CORSOrigins)
	assert.True(t, cfg.DB.Enabled())
	assert.True(t, cfg.Redis.Enabled())
	assert.Equal(t, "Acme", cfg.Admin.Title)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "./dist", cfg.Build.OutDir)
	assert.Equal(t, "**/*.yml", cfg.CollectionsGlob)
}
