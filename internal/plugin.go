package internal

import (
	"log/slog"

	"github.com/dmitrymomot/honohub/pkg/admin"
)

// Plugin is a unit of extension applied during composition.
// A plugin that only has a name is a no-op; implement Bootstrapper to
// take part in composition.
type Plugin interface {
	Name() string
}

// Bootstrapper is the optional plugin capability invoked during composition.
//
// Bootstrap returns the application subsequent plugins should see. Returning
// nil keeps env.App. Any returned error, or a panic, is logged with the
// plugin name and composition continues with the previous application.
// Effects applied before the failure are not undone.
type Bootstrapper interface {
	Plugin
	Bootstrap(env *Env) (*App, error)
}

// Env is what a plugin sees during bootstrap.
type Env struct {
	// App is the application produced by all earlier plugins.
	App *App
	// Config is the sanitized configuration. Treat it as read-only.
	Config *Config
	// Logger is the composition logger scoped to the plugin.
	Logger *slog.Logger

	state *composeState
}

// Admin returns the admin route registry, creating it on first use.
// The registry is frozen when composition finishes.
func (e *Env) Admin() *admin.Registry {
	return e.state.adminRegistry()
}

// BootstrapFunc adapts a function to the Bootstrapper contract.
type BootstrapFunc func(env *Env) (*App, error)

type funcPlugin struct {
	fn   BootstrapFunc
	name string
}

// NewPlugin creates a plugin from a name and a bootstrap function.
// A nil fn yields a plugin without the bootstrap capability.
//
// Example:
//
//	honohub.NewPlugin("ping", func(env *honohub.Env) (*honohub.App, error) {
//	    env.App.Routes(func(r honohub.Router) {
//	        r.GET("/ping", func(c honohub.Context) error {
//	            return c.String(http.StatusOK, "pong")
//	        })
//	    })
//	    return nil, nil
//	})
func NewPlugin(name string, fn BootstrapFunc) Plugin {
	if fn == nil {
		return namedPlugin(name)
	}
	return &funcPlugin{name: name, fn: fn}
}

func (p *funcPlugin) Name() string { return p.name }

func (p *funcPlugin) Bootstrap(env *Env) (*App, error) { return p.fn(env) }

type namedPlugin string

func (p namedPlugin) Name() string { return string(p) }
