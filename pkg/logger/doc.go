// Package logger builds the hub's slog loggers.
//
// [New] writes JSON (or text) to stdout at the configured level.
// [NewWithSentry] additionally forwards warnings and errors to Sentry
// through getsentry/sentry-go/slog when SENTRY_DSN is set, and falls back
// to stdout only otherwise.
//
// Both accept [ContextExtractor] functions that add request-scoped
// attributes to every record logged with a context:
//
//	log := logger.New(cfg, middlewares.RequestIDExtractor())
//	log.InfoContext(ctx, "document created", slog.String("collection", "posts"))
//	// {"level":"INFO","msg":"document created","collection":"posts","request_id":"..."}
package logger
