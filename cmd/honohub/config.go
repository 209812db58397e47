package main

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/dmitrymomot/honohub/pkg/db"
	"github.com/dmitrymomot/honohub/pkg/logger"
	"github.com/dmitrymomot/honohub/pkg/redis"
)

// Config is the process configuration, read from the environment.
type Config struct {
	Addr            string        `env:"ADDR" envDefault:":8080"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"30s"`

	// Collection declarations are YAML files matching CollectionsGlob in CollectionsDir.
	CollectionsDir  string `env:"COLLECTIONS_DIR" envDefault:"collections"`
	CollectionsGlob string `env:"COLLECTIONS_GLOB" envDefault:"*.yaml"`

	CORSOrigins []string      `env:"CORS_ORIGINS" envSeparator:","`
	CacheTTL    time.Duration `env:"CACHE_TTL" envDefault:"5m"`

	Admin AdminConfig
	Build BuildConfig
	DB    db.Config
	Redis redis.Config
	Log   logger.Config
}

// AdminConfig configures the admin plugin.
type AdminConfig struct {
	Title string `env:"ADMIN_TITLE"`
	// AssetsDir holds the built panel. Empty disables asset serving.
	AssetsDir string `env:"ADMIN_ASSETS_DIR"`

	DocumentModule    string `env:"ADMIN_DOCUMENT_MODULE" envDefault:"@honohub/react"`
	DocumentComponent string `env:"ADMIN_DOCUMENT_COMPONENT" envDefault:"DocumentPage"`
}

// BuildConfig configures entry generation.
type BuildConfig struct {
	CacheDir string `env:"BUILD_CACHE_DIR" envDefault:"./.honohub/generated"`
	OutDir   string `env:"BUILD_OUT_DIR" envDefault:"../../dist"`
}

func loadConfig() (Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}
