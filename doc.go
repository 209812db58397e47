// Package honohub composes an admin-panel backend for a set of data
// collections out of plugins.
//
// A hub is declared once: a database binding, the collections it manages
// and an ordered list of plugins. The declaration is sanitized into a
// [Config] and then composed into an [App]:
//
//	cfg, err := honohub.Sanitize(honohub.RawConfig{
//	    DB:          store.NewMemory(),
//	    Collections: []honohub.Collection{{Slug: "posts", Fields: []honohub.Field{{Name: "title"}}}},
//	    Plugins: []honohub.Plugin{
//	        crud.New(),
//	        admin.New(admin.WithCollectionPages(hubadmin.NamedTarget{
//	            Module:    "@honohub/react",
//	            Component: "DocumentPage",
//	        })),
//	    },
//	})
//	if err != nil {
//	    return err
//	}
//
//	comp, err := honohub.Compose(cfg, honohub.WithLogger(log))
//	if err != nil {
//	    return err
//	}
//	return comp.App.Run(honohub.Address(":8080"))
//
// # Plugins
//
// A plugin has a name and, optionally, a Bootstrap method. Composition
// calls Bootstrap on each plugin in order; the returned App replaces the
// current one when non-nil. A plugin that returns an error or panics is
// logged with its name and skipped, so one broken plugin never takes the
// hub down:
//
//	honohub.NewPlugin("ping", func(env *honohub.Env) (*honohub.App, error) {
//	    env.App.Routes(func(r honohub.Router) {
//	        r.GET("/ping", func(c honohub.Context) error {
//	            return c.String(http.StatusOK, "pong")
//	        })
//	    })
//	    return nil, nil
//	})
//
// A plugin that needs its middleware around everything registered so far
// returns env.App.Wrap(mw).
//
// # Admin pages
//
// Plugins register admin pages through env.Admin(). The registry is frozen
// after composition and handed to the build step (artifact.Configure in pkg/artifact),
// which writes one HTML and one JS entry per page for the bundler.
//
// # Errors
//
// Configuration problems are *ConfigurationError and match
// [ErrConfiguration] with errors.Is. Handlers return *HTTPError to pick a
// status code; anything else is answered with 500.
package honohub
