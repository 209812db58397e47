package internal

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/honohub/pkg/health"
	"github.com/dmitrymomot/honohub/pkg/logger"
)

// Default server timeouts (hardcoded, opinionated).
const (
	defaultReadTimeout       = 15 * time.Second
	defaultWriteTimeout      = 30 * time.Second
	defaultIdleTimeout       = 120 * time.Second
	defaultReadHeaderTimeout = 5 * time.Second
	defaultMaxHeaderBytes    = 1 << 20 // 1MB
	defaultShutdownTimeout   = 30 * time.Second
)

// App is the request-routing application that plugins extend.
//
// Global middleware is fixed at construction. Plugins add routes with
// Routes, Handle and Mount, or replace the app with Wrap when their
// middleware has to run around everything registered so far.
type App struct {
	router                  chi.Router
	errorHandler            ErrorHandler
	notFoundHandler         HandlerFunc
	methodNotAllowedHandler HandlerFunc
	healthConfig            *healthConfig
	logger                  *slog.Logger
	middlewares             []Middleware
	handlers                []Handler
	staticRoutes            []staticRoute
}

// staticRoute represents a static file handler mount point.
type staticRoute struct {
	handler http.Handler
	pattern string
}

// New creates a new application with the given options.
//
// Example:
//
//	app := honohub.New(
//	    honohub.WithLogger(log),
//	    honohub.WithMiddleware(middlewares.RequestID(), middlewares.Recover()),
//	)
func New(opts ...Option) *App {
	a := &App{
		router: chi.NewRouter(),
		logger: logger.NewNope(),
	}

	for _, opt := range opts {
		opt(a)
	}

	a.setupRoutes()
	return a
}

// Router returns the underlying chi.Router.
func (a *App) Router() chi.Router {
	return a.router
}

// Logger returns the application logger.
func (a *App) Logger() *slog.Logger {
	return a.logger
}

// ServeHTTP makes App an http.Handler.
func (a *App) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.router.ServeHTTP(w, r)
}

// Routes declares routes on the app after construction.
func (a *App) Routes(fn func(r Router)) {
	fn(&routerAdapter{router: a.router, app: a})
}

// Handle registers handlers on the app after construction.
func (a *App) Handle(h ...Handler) {
	r := &routerAdapter{router: a.router, app: a}
	for _, handler := range h {
		handler.Routes(r)
	}
}

// Wrap returns a new App whose middleware runs around every route of a,
// including routes added to the returned App later. The new App shares
// the logger and error handlers of a. Requests whose method has no route on
// the new App fall through to a, so a path may carry methods from both.
//
// Example:
//
//	func (p *audit) Bootstrap(env *honohub.Env) (*honohub.App, error) {
//	    return env.App.Wrap(p.middleware), nil
//	}
func (a *App) Wrap(mw ...Middleware) *App {
	w := &App{
		router:                  chi.NewRouter(),
		errorHandler:            a.errorHandler,
		notFoundHandler:         a.notFoundHandler,
		methodNotAllowedHandler: a.methodNotAllowedHandler,
		logger:                  a.logger,
		middlewares:             mw,
	}
	w.setupRoutes()
	// Mounted as a plain handler so chi never copies w's 404/405 handlers into a.
	w.router.Mount("/", http.HandlerFunc(a.router.ServeHTTP))
	// A path routed on w for other methods only still reaches a.
	w.router.MethodNotAllowed(func(rw http.ResponseWriter, r *http.Request) {
		ctx := context.WithValue(r.Context(), chi.RouteCtxKey, chi.NewRouteContext())
		a.router.ServeHTTP(rw, r.WithContext(ctx))
	})
	return w
}

// setupRoutes configures the router with middleware and handlers.
func (a *App) setupRoutes() {
	if a.notFoundHandler != nil {
		a.router.NotFound(a.wrapHandler(a.notFoundHandler))
	}
	if a.methodNotAllowedHandler != nil {
		a.router.MethodNotAllowed(a.wrapHandler(a.methodNotAllowedHandler))
	}

	for _, mw := range a.middlewares {
		a.router.Use(a.adaptMiddleware(mw))
	}

	for _, sr := range a.staticRoutes {
		a.router.Mount(sr.pattern, sr.handler)
	}

	if a.healthConfig != nil {
		a.router.Get(a.healthConfig.livenessPath, health.LivenessHandler())
		a.router.Get(a.healthConfig.readinessPath, health.ReadinessHandler(
			a.healthConfig.checks,
			health.WithLogger(a.logger),
		))
	}

	a.Handle(a.handlers...)
}

// wrapHandler converts a HandlerFunc to http.HandlerFunc using the app's error handler.
func (a *App) wrapHandler(h HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a.serveHandler(w, r, h)
	}
}

func (a *App) serveHandler(w http.ResponseWriter, r *http.Request, h HandlerFunc) {
	c := newContext(w, r, a.logger)
	if err := h(c); err != nil {
		a.handleError(c, err)
	}
}

// handleError handles errors from handlers using the configured error handler.
func (a *App) handleError(c Context, err error) {
	if c.Written() {
		return
	}
	if a.errorHandler != nil {
		if herr := a.errorHandler(c, err); herr == nil {
			return
		}
	}
	_ = defaultErrorHandler(c, err)
}

// defaultErrorHandler renders HTTPError as JSON and hides everything else
// behind a 500.
func defaultErrorHandler(c Context, err error) error {
	if httpErr := AsHTTPError(err); httpErr != nil {
		body := map[string]string{"error": httpErr.Message}
		if httpErr.ErrorCode != "" {
			body["code"] = httpErr.ErrorCode
		}
		if httpErr.Detail != "" {
			body["detail"] = httpErr.Detail
		}
		if httpErr.Code >= http.StatusInternalServerError {
			c.LogError("request failed", slog.Any("error", err))
		}
		return c.JSON(httpErr.Code, body)
	}
	c.LogError("request failed", slog.Any("error", err))
	return c.JSON(http.StatusInternalServerError, map[string]string{
		"error": http.StatusText(http.StatusInternalServerError),
	})
}

// healthConfig holds health check endpoint configuration.
type healthConfig struct {
	checks        health.Checks
	livenessPath  string
	readinessPath string
}

// Default health check paths.
const (
	defaultLivenessPath  = "/health/live"
	defaultReadinessPath = "/health/ready"
)

// HealthOption configures health check endpoints.
type HealthOption func(*healthConfig)

// WithLivenessPath sets a custom liveness endpoint path.
// Defaults to "/health/live".
func WithLivenessPath(path string) HealthOption {
	return func(c *healthConfig) {
		if path != "" {
			c.livenessPath = path
		}
	}
}

// WithReadinessPath sets a custom readiness endpoint path.
// Defaults to "/health/ready".
func WithReadinessPath(path string) HealthOption {
	return func(c *healthConfig) {
		if path != "" {
			c.readinessPath = path
		}
	}
}

// WithReadinessCheck adds a named readiness check.
//
// Example:
//
//	honohub.WithReadinessCheck("postgres", db.Healthcheck(pool))
func WithReadinessCheck(name string, fn health.CheckFunc) HealthOption {
	return func(c *healthConfig) {
		if fn == nil {
			return
		}
		if c.checks == nil {
			c.checks = make(health.Checks)
		}
		c.checks[name] = fn
	}
}
