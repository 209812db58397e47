// Package middlewares provides HTTP middleware for honohub applications.
//
// # Request ID
//
// RequestID assigns an ID to each request, reusing X-Request-ID or
// X-Correlation-ID from upstream when present. Pair it with
// RequestIDExtractor so every log line written with the request context
// carries request_id:
//
//	log := logger.New(cfg.Log, middlewares.RequestIDExtractor())
//	app := honohub.New(
//	    honohub.WithLogger(log),
//	    honohub.WithMiddleware(middlewares.RequestID()),
//	)
//
// # Recover
//
// Recover converts handler panics into *PanicError, which the default
// error handler answers with a 500.
//
// # CORS
//
// CORS answers preflight requests and adds Access-Control headers. The
// admin SPA is usually served from the same origin; enable CORS when it
// is hosted elsewhere:
//
//	middlewares.CORS(middlewares.WithAllowOrigins("https://admin.example.com"))
//
// Recommended order: CORS, RequestID, Recover.
package middlewares
