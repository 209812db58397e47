package internal

// Handler declares routes on a router.
//
// Example:
//
//	type StatsHandler struct {
//	    db store.Store
//	}
//
//	func (h *StatsHandler) Routes(r honohub.Router) {
//	    r.GET("/stats", h.show)
//	}
type Handler interface {
	Routes(r Router)
}

// HandlerFunc is the signature for route handlers.
// Returning a non-nil error triggers the app's error handler.
type HandlerFunc func(c Context) error

// Middleware wraps a HandlerFunc to add cross-cutting concerns.
//
// Example:
//
//	func APIKey(key string) honohub.Middleware {
//	    return func(next honohub.HandlerFunc) honohub.HandlerFunc {
//	        return func(c honohub.Context) error {
//	            if c.Header("X-API-Key") != key {
//	                return c.Error(http.StatusUnauthorized, "invalid api key")
//	            }
//	            return next(c)
//	        }
//	    }
//	}
type Middleware func(next HandlerFunc) HandlerFunc

// ErrorHandler handles errors returned from handlers.
type ErrorHandler func(Context, error) error
