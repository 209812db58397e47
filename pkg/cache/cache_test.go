package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type clock struct {
	t  time.Time
	mu sync.Mutex
}

func (c *clock) now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *clock) advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

func newTestMemory[V any](t *testing.T, opts ...Option) (*Memory[V], *clock) {
	t.Helper()
	clk := &clock{t: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	m := NewMemory[V](opts...)
	m.now = clk.now
	t.Cleanup(func() { _ = m.Close() })
	return m, clk
}

func TestMemoryGetSet(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("missing key", func(t *testing.T) {
		t.Parallel()
		m, _ := newTestMemory[string](t)
		_, err := m.Get(ctx, "missing")
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("stored value", func(t *testing.T) {
		t.Parallel()
		m, _ := newTestMemory[int](t)
		require.NoError(t, m.Set(ctx, "k", 42, time.Minute))
		v, err := m.Get(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, 42, v)
	})

	t.Run("overwrite", func(t *testing.T) {
		t.Parallel()
		m, _ := newTestMemory[int](t)
		require.NoError(t, m.Set(ctx, "k", 1, 0))
		require.NoError(t, m.Set(ctx, "k", 2, 0))
		v, err := m.Get(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, 2, v)
		assert.Equal(t, 1, m.Len())
	})
}

func TestMemoryTTL(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("explicit ttl expires", func(t *testing.T) {
		t.Parallel()
		m, clk := newTestMemory[string](t)
		require.NoError(t, m.Set(ctx, "k", "v", time.Second))
		clk.advance(2 * time.Second)
		_, err := m.Get(ctx, "k")
		require.ErrorIs(t, err, ErrNotFound)
		assert.Equal(t, 0, m.Len())
	})

	t.Run("zero ttl uses default", func(t *testing.T) {
		t.Parallel()
		m, clk := newTestMemory[string](t, WithDefaultTTL(time.Minute))
		require.NoError(t, m.Set(ctx, "k", "v", 0))
		clk.advance(30 * time.Second)
		_, err := m.Get(ctx, "k")
		require.NoError(t, err)
		clk.advance(time.Minute)
		_, err = m.Get(ctx, "k")
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("negative ttl never expires", func(t *testing.T) {
		t.Parallel()
		m, clk := newTestMemory[string](t)
		require.NoError(t, m.Set(ctx, "k", "v", -1))
		clk.advance(24 * time.Hour)
		_, err := m.Get(ctx, "k")
		require.NoError(t, err)
	})
}

func TestMemoryMaxEntries(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	m, _ := newTestMemory[int](t, WithMaxEntries(2))
	require.NoError(t, m.Set(ctx, "a", 1, 0))
	require.NoError(t, m.Set(ctx, "b", 2, 0))

	// Touch a so b becomes least recently used.
	_, err := m.Get(ctx, "a")
	require.NoError(t, err)

	require.NoError(t, m.Set(ctx, "c", 3, 0))
	assert.Equal(t, 2, m.Len())

	_, err = m.Get(ctx, "b")
	require.ErrorIs(t, err, ErrNotFound)
	_, err = m.Get(ctx, "a")
	require.NoError(t, err)
	_, err = m.Get(ctx, "c")
	require.NoError(t, err)
}

func TestMemoryDeleteAndClose(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	m, _ := newTestMemory[int](t)
	require.NoError(t, m.Set(ctx, "k", 1, 0))
	require.NoError(t, m.Delete(ctx, "k"))
	require.NoError(t, m.Delete(ctx, "missing"))
	_, err := m.Get(ctx, "k")
	require.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, m.Close())
	require.NoError(t, m.Close())
	require.ErrorIs(t, m.Set(ctx, "k", 1, 0), ErrClosed)
	require.ErrorIs(t, m.Delete(ctx, "k"), ErrClosed)
	_, err = m.Get(ctx, "k")
	require.ErrorIs(t, err, ErrClosed)
}

func TestMemoryConcurrentAccess(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	m, _ := newTestMemory[int](t, WithMaxEntries(16))
	var wg sync.WaitGroup
	for i := range 32 {
		wg.Go(func() {
			key := string(rune('a' + i%26))
			_ = m.Set(ctx, key, i, 0)
			_, _ = m.Get(ctx, key)
			_ = m.Delete(ctx, key)
		})
	}
	wg.Wait()
	assert.LessOrEqual(t, m.Len(), 16)
}

func TestGetOrSet(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("hit skips loader", func(t *testing.T) {
		t.Parallel()
		m, _ := newTestMemory[int](t)
		require.NoError(t, m.Set(ctx, "hit", 7, 0))

		v, err := GetOrSet(ctx, m, "hit", func(context.Context) (int, error) {
			t.Fatal("loader must not run on a hit")
			return 0, nil
		})
		require.NoError(t, err)
		assert.Equal(t, 7, v)
	})

	t.Run("miss loads and caches", func(t *testing.T) {
		t.Parallel()
		m, _ := newTestMemory[int](t)

		v, err := GetOrSet(ctx, m, "miss-loads", func(context.Context) (int, error) {
			return 42, nil
		})
		require.NoError(t, err)
		assert.Equal(t, 42, v)

		cached, err := m.Get(ctx, "miss-loads")
		require.NoError(t, err)
		assert.Equal(t, 42, cached)
	})

	t.Run("loader error is not cached", func(t *testing.T) {
		t.Parallel()
		m, _ := newTestMemory[int](t)
		want := errors.New("db down")

		_, err := GetOrSet(ctx, m, "miss-error", func(context.Context) (int, error) {
			return 0, want
		})
		require.ErrorIs(t, err, want)
		assert.Equal(t, 0, m.Len())
	})

	t.Run("concurrent misses share one load", func(t *testing.T) {
		t.Parallel()
		m, _ := newTestMemory[int](t)

		var calls atomic.Int64
		release := make(chan struct{})
		var wg sync.WaitGroup
		for range 10 {
			wg.Go(func() {
				v, err := GetOrSet(ctx, m, "dedup", func(context.Context) (int, error) {
					calls.Add(1)
					<-release
					return 42, nil
				})
				assert.NoError(t, err)
				assert.Equal(t, 42, v)
			})
		}

		time.Sleep(20 * time.Millisecond)
		close(release)
		wg.Wait()

		assert.LessOrEqual(t, calls.Load(), int64(2))
	})
}

func TestMarshalRoundTrip(t *testing.T) {
	t.Parallel()

	data, err := marshal(map[string]any{"title": "Hello"})
	require.NoError(t, err)

	v, err := unmarshal[map[string]any](data)
	require.NoError(t, err)
	assert.Equal(t, "Hello", v["title"])

	_, err = unmarshal[map[string]any]([]byte("{"))
	require.ErrorIs(t, err, ErrUnmarshal)

	_, err = marshal(make(chan int))
	require.ErrorIs(t, err, ErrMarshal)
}
