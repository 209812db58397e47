package crud

import (
	"github.com/dmitrymomot/honohub/internal"
)

// Name is the plugin name reported in composition logs.
const Name = "crud"

// Defaults.
const (
	DefaultPrefix   = "/collections"
	DefaultLimit    = 20
	DefaultMaxLimit = 100
)

// Plugin mounts JSON endpoints for every configured collection.
type Plugin struct {
	prefix   string
	limit    int
	maxLimit int
}

// Option configures the plugin.
type Option func(*Plugin)

// WithPrefix sets the mount path. Defaults to "/collections".
func WithPrefix(prefix string) Option {
	return func(p *Plugin) {
		if prefix != "" {
			p.prefix = prefix
		}
	}
}

// WithLimits sets the default and maximum page sizes for list requests.
// Non-positive values keep the defaults.
func WithLimits(limit, maxLimit int) Option {
	return func(p *Plugin) {
		if limit > 0 {
			p.limit = limit
		}
		if maxLimit > 0 {
			p.maxLimit = maxLimit
		}
	}
}

// New creates the CRUD plugin.
//
// Example:
//
//	cfg, err := honohub.Sanitize(honohub.RawConfig{
//	    DB:          db,
//	    Collections: cols,
//	    Plugins:     []honohub.Plugin{crud.New()},
//	})
func New(opts ...Option) *Plugin {
	p := &Plugin{
		prefix:   DefaultPrefix,
		limit:    DefaultLimit,
		maxLimit: DefaultMaxLimit,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.limit > p.maxLimit {
		p.limit = p.maxLimit
	}
	return p
}

// Name implements the plugin contract.
func (p *Plugin) Name() string { return Name }

// Bootstrap registers the collection routes on env.App.
func (p *Plugin) Bootstrap(env *internal.Env) (*internal.App, error) {
	h := &handler{
		cfg:      env.Config,
		limit:    p.limit,
		maxLimit: p.maxLimit,
	}
	env.App.Routes(func(r internal.Router) {
		r.Route(p.prefix, h.Routes)
	})
	env.Logger.Debug("crud routes mounted",
		"prefix", p.prefix,
		"collections", len(env.Config.Collections),
	)
	return nil, nil
}
