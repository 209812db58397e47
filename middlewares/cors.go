package middlewares

import (
	"net/http"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrymomot/honohub/internal"
)

// DefaultCORSMaxAge is how long browsers may cache a preflight answer.
const DefaultCORSMaxAge = 12 * time.Hour

// CORSOption configures the CORS middleware.
type CORSOption func(*corsPolicy)

// corsPolicy is the resolved CORS configuration with its header values
// joined once at construction.
type corsPolicy struct {
	origins     []string
	anyOrigin   bool
	originFunc  func(origin string) bool
	methods     string
	headers     string
	expose      string
	credentials bool
	maxAge      time.Duration
}

// WithAllowOrigins replaces the allowed origins. "*" allows any origin.
func WithAllowOrigins(origins ...string) CORSOption {
	return func(p *corsPolicy) { p.origins = origins }
}

// WithAllowOriginFunc decides per origin and takes precedence over the list.
func WithAllowOriginFunc(fn func(origin string) bool) CORSOption {
	return func(p *corsPolicy) { p.originFunc = fn }
}

// WithAllowMethods replaces the methods announced in preflight answers.
func WithAllowMethods(methods ...string) CORSOption {
	return func(p *corsPolicy) { p.methods = strings.Join(methods, ", ") }
}

// WithAllowHeaders replaces the request headers announced in preflight answers.
func WithAllowHeaders(headers ...string) CORSOption {
	return func(p *corsPolicy) { p.headers = strings.Join(headers, ", ") }
}

// WithExposeHeaders lists response headers scripts may read, e.g. X-Request-ID.
func WithExposeHeaders(headers ...string) CORSOption {
	return func(p *corsPolicy) { p.expose = strings.Join(headers, ", ") }
}

// WithAllowCredentials allows cookies and echoes the origin instead of "*".
func WithAllowCredentials() CORSOption {
	return func(p *corsPolicy) { p.credentials = true }
}

// WithMaxAge sets the preflight cache duration. Zero omits the header.
func WithMaxAge(d time.Duration) CORSOption {
	return func(p *corsPolicy) { p.maxAge = d }
}

// CORS answers preflight requests with 204 and decorates responses to
// allowed origins. Requests from other origins pass through untouched and
// the browser blocks them.
func CORS(opts ...CORSOption) internal.Middleware {
	p := &corsPolicy{
		origins: []string{"*"},
		methods: strings.Join([]string{
			http.MethodGet, http.MethodPost, http.MethodPut,
			http.MethodPatch, http.MethodDelete, http.MethodOptions,
		}, ", "),
		headers: "Origin, Content-Type, Accept, Authorization",
		maxAge:  DefaultCORSMaxAge,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.anyOrigin = slices.Contains(p.origins, "*")

	return func(next internal.HandlerFunc) internal.HandlerFunc {
		return func(c internal.Context) error {
			origin := c.Header("Origin")
			if origin == "" || !p.allows(origin) {
				return next(c)
			}

			h := c.Response().Header()
			p.decorate(h, origin)

			if c.Request().Method != http.MethodOptions {
				return next(c)
			}

			h.Add("Vary", "Access-Control-Request-Method")
			h.Add("Vary", "Access-Control-Request-Headers")
			h.Set("Access-Control-Allow-Methods", p.methods)
			h.Set("Access-Control-Allow-Headers", p.headers)
			if p.maxAge > 0 {
				h.Set("Access-Control-Max-Age", strconv.Itoa(int(p.maxAge.Seconds())))
			}
			return c.NoContent(http.StatusNoContent)
		}
	}
}

func (p *corsPolicy) allows(origin string) bool {
	switch {
	case p.originFunc != nil:
		return p.originFunc(origin)
	case p.anyOrigin:
		return true
	default:
		return slices.Contains(p.origins, origin)
	}
}

func (p *corsPolicy) decorate(h http.Header, origin string) {
	h.Add("Vary", "Origin")

	allowed := "*"
	if p.credentials || !p.anyOrigin {
		allowed = origin
	}
	h.Set("Access-Control-Allow-Origin", allowed)

	if p.credentials {
		h.Set("Access-Control-Allow-Credentials", "true")
	}
	if p.expose != "" {
		h.Set("Access-Control-Expose-Headers", p.expose)
	}
}
