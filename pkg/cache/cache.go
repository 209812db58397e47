package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/singleflight"
)

// Cache is a key-value cache with per-entry TTL.
//
// A zero ttl passed to Set means the cache default; a negative ttl means
// the entry never expires.
type Cache[V any] interface {
	// Get returns ErrNotFound for missing or expired keys.
	Get(ctx context.Context, key string) (V, error)
	Set(ctx context.Context, key string, value V, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Option configures a cache backend.
type Option func(*options)

type options struct {
	prefix     string
	defaultTTL time.Duration
	maxEntries int
}

func newOptions(opts ...Option) *options {
	o := &options{defaultTTL: 5 * time.Minute}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithDefaultTTL sets the expiration used when Set gets a zero ttl.
// Default: 5 minutes.
func WithDefaultTTL(d time.Duration) Option {
	return func(o *options) {
		if d != 0 {
			o.defaultTTL = d
		}
	}
}

// WithPrefix namespaces Redis keys as "{prefix}:{key}".
func WithPrefix(prefix string) Option {
	return func(o *options) {
		o.prefix = prefix
	}
}

// WithMaxEntries bounds the in-memory cache; the least recently used
// entry is evicted first. Zero means unlimited.
func WithMaxEntries(n int) Option {
	return func(o *options) {
		o.maxEntries = max(n, 0)
	}
}

// resolveTTL maps the Set ttl convention to a concrete duration where
// zero means no expiry.
func (o *options) resolveTTL(ttl time.Duration) time.Duration {
	if ttl == 0 {
		ttl = o.defaultTTL
	}
	return max(ttl, 0)
}

func marshal[V any](v V) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, errors.Join(ErrMarshal, err)
	}
	return data, nil
}

func unmarshal[V any](data []byte) (V, error) {
	var v V
	if err := json.Unmarshal(data, &v); err != nil {
		return v, errors.Join(ErrUnmarshal, err)
	}
	return v, nil
}

var loads singleflight.Group

// GetOrSet returns the cached value for key or loads it with fn.
// Concurrent misses for the same key share one fn call. Errors from fn are
// returned and nothing is cached; a failing Set is ignored.
func GetOrSet[V any](ctx context.Context, c Cache[V], key string, fn func(ctx context.Context) (V, error)) (V, error) {
	if v, err := c.Get(ctx, key); err == nil {
		return v, nil
	}

	// Loads are shared per cache instance, never across caches.
	flight := fmt.Sprintf("%p:%s", c, key)
	v, err, _ := loads.Do(flight, func() (any, error) {
		val, err := fn(ctx)
		if err != nil {
			return nil, err
		}
		_ = c.Set(ctx, key, val, 0)
		return val, nil
	})
	if err != nil {
		var zero V
		return zero, err
	}
	return v.(V), nil
}
