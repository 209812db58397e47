// Package cache provides the generic cache behind store.Cached, with an
// in-process [Memory] backend and a [Redis] backend sharing one [Cache]
// interface.
//
//	c := cache.NewMemory[store.Document](cache.WithDefaultTTL(time.Minute))
//	doc, err := cache.GetOrSet(ctx, c, "posts:42", func(ctx context.Context) (store.Document, error) {
//	    return db.Get(ctx, "posts", "42")
//	})
//
// [GetOrSet] collapses concurrent misses for a key into one load with
// golang.org/x/sync/singleflight.
package cache
