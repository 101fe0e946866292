package cache_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/tala-app/backend/internal/cache"
)

func TestTTL(t *testing.T) {
	t.Run("should miss on unknown key", func(t *testing.T) {
		c := cache.NewTTL[string](10, time.Minute)

		_, ok := c.Get("missing")
		require.False(t, ok)
	})

	t.Run("should return the stored value before expiry", func(t *testing.T) {
		c := cache.NewTTL[string](10, time.Minute)
		c.Set("k", "v")

		got, ok := c.Get("k")
		require.True(t, ok)
		require.Equal(t, "v", got)
	})

	t.Run("should read expired entries as absent", func(t *testing.T) {
		c := cache.NewTTL[string](10, 30*time.Millisecond)
		c.Set("k", "v")

		time.Sleep(60 * time.Millisecond)

		_, ok := c.Get("k")
		require.False(t, ok)
	})

	t.Run("should keep the last write for a key", func(t *testing.T) {
		c := cache.NewTTL[string](10, time.Minute)
		c.Set("k", "first")
		c.Set("k", "second")

		got, ok := c.Get("k")
		require.True(t, ok)
		require.Equal(t, "second", got)
		require.Equal(t, 1, c.Len())
	})

	t.Run("should evict the oldest entry at capacity", func(t *testing.T) {
		c := cache.NewTTL[int](2, time.Minute)
		c.Set("a", 1)
		c.Set("b", 2)
		c.Set("c", 3)

		require.Equal(t, 2, c.Len())
		_, ok := c.Get("a")
		require.False(t, ok)
		_, ok = c.Get("c")
		require.True(t, ok)
	})
}
