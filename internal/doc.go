// Package internal provides the core types and implementation of honohub.
//
// This package is internal and should not be used directly. Import
// "github.com/dmitrymomot/honohub" instead, which re-exports the public API.
//
// # Core Types
//
//   - App: the request-routing application plugins extend
//   - Context: request/response access and helpers; also a context.Context
//   - Router: interface handlers use to declare routes
//   - Handler, HandlerFunc, Middleware, ErrorHandler: the routing vocabulary
//   - RawConfig, Config: hub configuration before and after sanitation
//   - Plugin, Bootstrapper, Env: the extension contract
//   - Composition: the result of Compose
//
// # Composition
//
// Compose folds the configured plugins over a fresh App. Each plugin that
// implements Bootstrapper receives an Env holding the app built so far and
// may return a replacement:
//
//	cfg, err := internal.Sanitize(internal.RawConfig{
//	    DB:          store.NewMemory(),
//	    Collections: collections,
//	    Plugins:     []internal.Plugin{crud.New(), admin.New()},
//	})
//	if err != nil {
//	    return err
//	}
//	comp, err := internal.Compose(cfg, internal.WithLogger(log))
//
// A plugin that returns an error or panics is logged with its name and
// skipped; the previous app is kept. Configuration errors, such as a
// duplicate admin page key, are returned once every plugin has run.
//
// # Wrapping
//
// Global middleware is fixed when an App is created. A plugin whose
// middleware must run around routes registered by earlier plugins returns
// env.App.Wrap(mw) instead of mutating the app in place.
//
// # Context as context.Context
//
// Context embeds context.Context, so it can be passed directly to store
// calls:
//
//	func (h *handler) get(c internal.Context) error {
//	    doc, err := h.db.Get(c, c.Param("slug"), c.Param("id"))
//	    if err != nil {
//	        return err
//	    }
//	    return c.JSON(http.StatusOK, doc)
//	}
package internal
