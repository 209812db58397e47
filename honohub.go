package honohub

import (
	"context"
	"io/fs"
	"log/slog"
	"time"

	"github.com/dmitrymomot/honohub/internal"
	"github.com/dmitrymomot/honohub/pkg/collection"
	"github.com/dmitrymomot/honohub/pkg/health"
	"github.com/dmitrymomot/honohub/pkg/logger"
	"github.com/dmitrymomot/honohub/pkg/store"
)

// Type aliases - public API
type (
	// App is the request-routing application that plugins extend.
	App = internal.App

	// Router is the interface handlers use to declare routes.
	Router = internal.Router

	// Context provides request/response access and helper methods.
	Context = internal.Context

	// Handler declares routes on a router.
	Handler = internal.Handler

	// HandlerFunc is the signature for route handlers.
	HandlerFunc = internal.HandlerFunc

	// Middleware wraps a HandlerFunc to add cross-cutting concerns.
	Middleware = internal.Middleware

	// ErrorHandler handles errors returned from handlers.
	ErrorHandler = internal.ErrorHandler

	// Option configures the application.
	Option = internal.Option

	// RunOption configures the server runtime.
	RunOption = internal.RunOption

	// HealthOption configures health check endpoints.
	HealthOption = internal.HealthOption

	// ContextExtractor extracts a slog attribute from context.
	ContextExtractor = logger.ContextExtractor

	// Plugin is a unit of extension applied during composition.
	Plugin = internal.Plugin

	// Bootstrapper is the optional plugin capability invoked during composition.
	Bootstrapper = internal.Bootstrapper

	// BootstrapFunc adapts a function to the Bootstrapper contract.
	BootstrapFunc = internal.BootstrapFunc

	// Env is what a plugin sees during bootstrap.
	Env = internal.Env

	// RawConfig is the hub configuration as declared by the user.
	RawConfig = internal.RawConfig

	// Config is the sanitized hub configuration.
	Config = internal.Config

	// Composition is the result of Compose.
	Composition = internal.Composition

	// Collection is one manageable data entity.
	Collection = collection.Collection

	// Field describes one attribute of a collection document.
	Field = collection.Field

	// Column describes one list-view column.
	Column = collection.Column

	// Store is the database binding the hub is configured with.
	Store = store.Store

	// Document is a collection entry.
	Document = store.Document

	// ConfigurationError describes a violated configuration constraint.
	ConfigurationError = internal.ConfigurationError

	// PluginBootstrapError wraps a failed or panicked plugin bootstrap.
	PluginBootstrapError = internal.PluginBootstrapError

	// HTTPError is an error answered with a specific status code.
	HTTPError = internal.HTTPError

	// HTTPErrorOption configures an HTTPError.
	HTTPErrorOption = internal.HTTPErrorOption
)

// Errors
var (
	ErrConfiguration = internal.ErrConfiguration
	ErrPluginPanic   = internal.ErrPluginPanic
)

// Composition

// Sanitize resolves defaults and validates raw.
// Every failure is a *ConfigurationError naming the violated constraint.
func Sanitize(raw RawConfig) (*Config, error) {
	return internal.Sanitize(raw)
}

// Compose folds cfg.Plugins over a fresh App created with opts.
// A failing plugin is logged and skipped; configuration errors are returned.
//
// Example:
//
//	cfg, err := honohub.Sanitize(honohub.RawConfig{
//	    DB:          store.NewMemory(),
//	    Collections: cols,
//	    Plugins:     []honohub.Plugin{crud.New(), admin.New()},
//	})
//	if err != nil {
//	    return err
//	}
//	comp, err := honohub.Compose(cfg, honohub.WithLogger(log))
func Compose(cfg *Config, opts ...Option) (*Composition, error) {
	return internal.Compose(cfg, opts...)
}

// NewPlugin creates a plugin from a name and a bootstrap function.
// A nil fn yields a named no-op plugin.
func NewPlugin(name string, fn BootstrapFunc) Plugin {
	return internal.NewPlugin(name, fn)
}

// New creates a standalone application. Most callers use Compose instead.
func New(opts ...Option) *App {
	return internal.New(opts...)
}

// App options

// WithMiddleware adds global middleware to the application.
// Middleware is applied in the order provided.
func WithMiddleware(mw ...Middleware) Option {
	return internal.WithMiddleware(mw...)
}

// WithHandlers registers handlers that declare routes.
func WithHandlers(h ...Handler) Option {
	return internal.WithHandlers(h...)
}

// WithStaticFiles mounts fsys/subDir at pattern. Directory listings are disabled.
func WithStaticFiles(pattern string, fsys fs.FS, subDir string) Option {
	return internal.WithStaticFiles(pattern, fsys, subDir)
}

// WithErrorHandler sets a custom error handler for handler errors.
func WithErrorHandler(h ErrorHandler) Option {
	return internal.WithErrorHandler(h)
}

// WithNotFoundHandler sets a custom 404 handler.
func WithNotFoundHandler(h HandlerFunc) Option {
	return internal.WithNotFoundHandler(h)
}

// WithMethodNotAllowedHandler sets a custom 405 handler.
func WithMethodNotAllowedHandler(h HandlerFunc) Option {
	return internal.WithMethodNotAllowedHandler(h)
}

// WithHealthChecks enables /health/live and /health/ready.
//
// Example:
//
//	honohub.WithHealthChecks(
//	    honohub.WithReadinessCheck("db", db.Healthcheck(pool)),
//	)
func WithHealthChecks(opts ...HealthOption) Option {
	return internal.WithHealthChecks(opts...)
}

// WithLogger sets the application and composition logger.
func WithLogger(l *slog.Logger) Option {
	return internal.WithLogger(l)
}

// Health check options

// WithLivenessPath sets a custom liveness endpoint path.
func WithLivenessPath(path string) HealthOption {
	return internal.WithLivenessPath(path)
}

// WithReadinessPath sets a custom readiness endpoint path.
func WithReadinessPath(path string) HealthOption {
	return internal.WithReadinessPath(path)
}

// WithReadinessCheck adds a named readiness check.
// Checks run in parallel during the readiness probe.
func WithReadinessCheck(name string, fn health.CheckFunc) HealthOption {
	return internal.WithReadinessCheck(name, fn)
}

// Run options

// Address sets the HTTP server address. Defaults to ":8080".
func Address(addr string) RunOption {
	return internal.Address(addr)
}

// Logger sets the server logger. Defaults to the app logger.
func Logger(l *slog.Logger) RunOption {
	return internal.Logger(l)
}

// ShutdownTimeout bounds graceful shutdown, hooks included.
func ShutdownTimeout(d time.Duration) RunOption {
	return internal.ShutdownTimeout(d)
}

// ShutdownHook registers a cleanup function run after the server stops.
func ShutdownHook(fn func(context.Context) error) RunOption {
	return internal.ShutdownHook(fn)
}

// WithContext sets the base context; cancelling it stops the server.
func WithContext(ctx context.Context) RunOption {
	return internal.WithContext(ctx)
}

// Context helpers

// ContextValue retrieves a typed value from the request context.
func ContextValue[T any](c Context, key any) T {
	return internal.ContextValue[T](c, key)
}

// Scalar lists the types the typed parameter helpers convert to.
type Scalar = internal.Scalar

// Param returns a typed URL parameter, or the zero value if it does not parse.
func Param[T Scalar](c Context, name string) T {
	return internal.Param[T](c, name)
}

// Query returns a typed query parameter, or the zero value if absent or invalid.
func Query[T Scalar](c Context, name string) T {
	return internal.Query[T](c, name)
}

// QueryDefault returns a typed query parameter, or defaultValue.
func QueryDefault[T Scalar](c Context, name string, defaultValue T) T {
	return internal.QueryDefault(c, name, defaultValue)
}

// HTTP errors

// NewHTTPError creates an error answered with code.
func NewHTTPError(code int, message string, opts ...HTTPErrorOption) *HTTPError {
	return internal.NewHTTPError(code, message, opts...)
}

// WithDetail adds a detail string to the error body.
func WithDetail(detail string) HTTPErrorOption {
	return internal.WithDetail(detail)
}

// WithErrorCode adds a machine-readable code to the error body.
func WithErrorCode(code string) HTTPErrorOption {
	return internal.WithErrorCode(code)
}

// WithError attaches an underlying cause.
func WithError(err error) HTTPErrorOption {
	return internal.WithError(err)
}

// ErrBadRequest creates a 400 error.
func ErrBadRequest(message string, opts ...HTTPErrorOption) *HTTPError {
	return internal.ErrBadRequest(message, opts...)
}

// ErrNotFound creates a 404 error.
func ErrNotFound(message string, opts ...HTTPErrorOption) *HTTPError {
	return internal.ErrNotFound(message, opts...)
}

// ErrConflict creates a 409 error.
func ErrConflict(message string, opts ...HTTPErrorOption) *HTTPError {
	return internal.ErrConflict(message, opts...)
}

// ErrUnprocessable creates a 422 error.
func ErrUnprocessable(message string, opts ...HTTPErrorOption) *HTTPError {
	return internal.ErrUnprocessable(message, opts...)
}

// ErrInternal creates a 500 error.
func ErrInternal(message string, opts ...HTTPErrorOption) *HTTPError {
	return internal.ErrInternal(message, opts...)
}

// IsHTTPError reports whether err wraps an *HTTPError.
func IsHTTPError(err error) bool {
	return internal.IsHTTPError(err)
}

// AsHTTPError extracts the *HTTPError from err, or returns nil.
func AsHTTPError(err error) *HTTPError {
	return internal.AsHTTPError(err)
}
