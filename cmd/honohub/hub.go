package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/dmitrymomot/honohub"
	"github.com/dmitrymomot/honohub/middlewares"
	hubadmin "github.com/dmitrymomot/honohub/pkg/admin"
	"github.com/dmitrymomot/honohub/pkg/cache"
	"github.com/dmitrymomot/honohub/pkg/collection"
	"github.com/dmitrymomot/honohub/pkg/db"
	"github.com/dmitrymomot/honohub/pkg/redis"
	"github.com/dmitrymomot/honohub/pkg/store"
	"github.com/dmitrymomot/honohub/plugins/admin"
	"github.com/dmitrymomot/honohub/plugins/crud"
)

// hub is a composed application plus the resources it owns.
type hub struct {
	comp      *honohub.Composition
	checks    []honohub.HealthOption
	shutdowns []func(context.Context) error
}

// memoryCacheEntries bounds the in-process document cache used without Redis.
const memoryCacheEntries = 10_000

// openStore picks the document store: Postgres when DATABASE_URL is set,
// memory otherwise. Postgres reads go through a Redis cache when REDIS_URL
// is set and an in-process LRU otherwise.
func openStore(ctx context.Context, cfg Config, log *slog.Logger, h *hub) (store.Store, error) {
	if !cfg.DB.Enabled() {
		log.Warn("DATABASE_URL not set, documents are kept in memory")
		return store.NewMemory(), nil
	}

	pool, err := db.Connect(ctx, cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	h.shutdowns = append(h.shutdowns, db.Shutdown(pool))
	h.checks = append(h.checks, honohub.WithReadinessCheck("db", db.Healthcheck(pool)))

	if err := db.Migrate(ctx, pool, cfg.DB.MigrationsTable, log); err != nil {
		return nil, fmt.Errorf("migrate database: %w", err)
	}

	s := store.NewPostgres(pool)
	if !cfg.Redis.Enabled() {
		return store.NewCached(s, cache.NewMemory[store.Document](
			cache.WithDefaultTTL(cfg.CacheTTL),
			cache.WithMaxEntries(memoryCacheEntries),
		)), nil
	}

	client, err := redis.Open(ctx, cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("connect redis: %w", err)
	}
	h.shutdowns = append(h.shutdowns, redis.Shutdown(client))
	h.checks = append(h.checks, honohub.WithReadinessCheck("redis", redis.Healthcheck(client)))

	return store.NewCached(s, cache.NewRedis[store.Document](client,
		cache.WithPrefix("honohub:doc:"),
		cache.WithDefaultTTL(cfg.CacheTTL),
	)), nil
}

func loadCollections(cfg Config) ([]collection.Collection, error) {
	return collection.Load(os.DirFS(cfg.CollectionsDir), cfg.CollectionsGlob)
}

func plugins(cfg Config) []honohub.Plugin {
	opts := []admin.Option{
		admin.WithTitle(cfg.Admin.Title),
		admin.WithCollectionPages(hubadmin.NamedTarget{
			Module:    cfg.Admin.DocumentModule,
			Component: cfg.Admin.DocumentComponent,
		}),
	}
	if cfg.Admin.AssetsDir != "" {
		opts = append(opts, admin.WithAssets(os.DirFS(cfg.Admin.AssetsDir)))
	}
	return []honohub.Plugin{crud.New(), admin.New(opts...)}
}

func middleware(cfg Config) []honohub.Middleware {
	var mw []honohub.Middleware
	if len(cfg.CORSOrigins) > 0 {
		mw = append(mw, middlewares.CORS(
			middlewares.WithAllowOrigins(cfg.CORSOrigins...),
			middlewares.WithExposeHeaders("X-Request-ID"),
		))
	}
	return append(mw, middlewares.RequestID(), middlewares.Recover())
}

// newHub wires the store, loads collections and composes the plugins.
// On error, resources opened so far are released by the caller through
// h.shutdowns.
func newHub(ctx context.Context, cfg Config, s store.Store, log *slog.Logger, h *hub) error {
	cols, err := loadCollections(cfg)
	if err != nil {
		return err
	}

	sanitized, err := honohub.Sanitize(honohub.RawConfig{
		DB:          s,
		Collections: cols,
		Plugins:     plugins(cfg),
	})
	if err != nil {
		return err
	}

	comp, err := honohub.Compose(sanitized,
		honohub.WithLogger(log),
		honohub.WithMiddleware(middleware(cfg)...),
		honohub.WithHealthChecks(h.checks...),
	)
	if err != nil {
		return err
	}
	h.comp = comp

	pages := 0
	if comp.Admin != nil {
		pages = comp.Admin.Len()
	}
	log.InfoContext(ctx, "hub composed",
		slog.Int("collections", len(sanitized.Collections)),
		slog.Int("admin_pages", pages),
	)
	return nil
}

func (h *hub) close(ctx context.Context) {
	for _, fn := range h.shutdowns {
		_ = fn(ctx)
	}
}
