package internal

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/dmitrymomot/honohub/pkg/admin"
	"github.com/dmitrymomot/honohub/pkg/configerr"
)

// Composition is the output of Compose.
type Composition struct {
	// App is the final request-routing application.
	App *App
	// Admin is the frozen admin route registry, or nil when no plugin
	// enabled it.
	Admin *admin.Registry
	// Config is the configuration the app was composed from.
	Config *Config
}

// composeState is shared by every Env of a single composition.
type composeState struct {
	admin *admin.Registry
	mu    sync.Mutex
}

func (s *composeState) adminRegistry() *admin.Registry {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.admin == nil {
		s.admin = admin.NewRegistry(admin.Meta{Title: admin.DefaultTitle})
	}
	return s.admin
}

// Compose builds the application by folding cfg.Plugins left to right over
// a fresh App created with opts.
//
// Plugin failures never abort composition: each one is logged once with the
// plugin name and the previous application is kept. Configuration errors
// do abort it: a nil cfg, or admin pages that were rejected by the registry
// (for example a duplicate key), are returned as *ConfigurationError once
// every plugin has run.
func Compose(cfg *Config, opts ...Option) (*Composition, error) {
	if cfg == nil {
		return nil, configerr.New(ConstraintMissingConfig, "")
	}

	app := New(opts...)
	log := app.logger
	state := &composeState{}

	for _, p := range cfg.Plugins {
		b, ok := p.(Bootstrapper)
		if !ok {
			continue
		}

		next, err := bootstrap(b, &Env{
			App:    app,
			Config: cfg,
			Logger: log.With(slog.String("plugin", b.Name())),
			state:  state,
		})
		if err != nil {
			log.Error("hub plugin bootstrap error",
				slog.String("plugin", b.Name()),
				slog.Any("error", err),
			)
			continue
		}
		if next != nil {
			app = next
		}
	}

	comp := &Composition{App: app, Config: cfg}
	if state.admin != nil {
		state.admin.Freeze()
		if err := state.admin.Err(); err != nil {
			return nil, fmt.Errorf("compose admin registry: %w", err)
		}
		comp.Admin = state.admin
	}
	return comp, nil
}

// bootstrap runs one plugin, converting errors and panics into
// *PluginBootstrapError.
func bootstrap(b Bootstrapper, env *Env) (app *App, err error) {
	defer func() {
		if r := recover(); r != nil {
			app = nil
			err = &PluginBootstrapError{
				Plugin: b.Name(),
				Err:    fmt.Errorf("%w: %v", ErrPluginPanic, r),
			}
		}
	}()

	app, err = b.Bootstrap(env)
	if err != nil {
		return nil, &PluginBootstrapError{Plugin: b.Name(), Err: err}
	}
	return app, nil
}
