package store

import (
	"context"
	"errors"

	"github.com/dmitrymomot/honohub/pkg/cache"
)

// Cached is a read-through cache for single documents. Lists always go to
// the underlying store; writes refresh or evict the cached entry.
type Cached struct {
	next  Store
	cache cache.Cache[Document]
}

// NewCached wraps next with c.
//
// Example:
//
//	documents := store.NewCached(store.NewPostgres(pool),
//	    cache.NewRedis[store.Document](client, cache.WithPrefix("honohub")))
func NewCached(next Store, c cache.Cache[Document]) *Cached {
	return &Cached{next: next, cache: c}
}

func cacheKey(collection, id string) string {
	return collection + ":" + id
}

func (s *Cached) List(ctx context.Context, collection string, opts ListOptions) ([]Document, int, error) {
	return s.next.List(ctx, collection, opts)
}

func (s *Cached) Get(ctx context.Context, collection, id string) (Document, error) {
	doc, err := cache.GetOrSet(ctx, s.cache, cacheKey(collection, id), func(ctx context.Context) (Document, error) {
		return s.next.Get(ctx, collection, id)
	})
	if err != nil {
		return nil, err
	}
	return doc.Clone(), nil
}

func (s *Cached) Create(ctx context.Context, collection string, doc Document) (Document, error) {
	created, err := s.next.Create(ctx, collection, doc)
	if err != nil {
		return nil, err
	}
	_ = s.cache.Set(ctx, cacheKey(collection, created.ID()), created.Clone(), 0)
	return created, nil
}

func (s *Cached) Update(ctx context.Context, collection, id string, doc Document) (Document, error) {
	updated, err := s.next.Update(ctx, collection, id, doc)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			_ = s.cache.Delete(ctx, cacheKey(collection, id))
		}
		return nil, err
	}
	_ = s.cache.Set(ctx, cacheKey(collection, id), updated.Clone(), 0)
	return updated, nil
}

func (s *Cached) Delete(ctx context.Context, collection, id string) error {
	// Evict first so a failed delete never leaves a stale entry behind.
	_ = s.cache.Delete(ctx, cacheKey(collection, id))
	return s.next.Delete(ctx, collection, id)
}

var _ Store = (*Cached)(nil)
