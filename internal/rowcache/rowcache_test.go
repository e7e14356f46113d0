package rowcache

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	require.NotPanics(t, func() {
		New("menu-rows", DefaultExpiration, DefaultCleanupInterval)
	})
}

func TestCache_GetSetRoundtrip(t *testing.T) {
	cache := New("menu-rows", DefaultExpiration, DefaultCleanupInterval)
	key := Key{Value: "apple", Width: 30}

	cache.Set(key, "> apple")

	got, ok := cache.Get(key)
	require.True(t, ok)
	require.Equal(t, "> apple", got)
}

func TestCache_GetMiss(t *testing.T) {
	cache := New("menu-rows", DefaultExpiration, DefaultCleanupInterval)

	got, ok := cache.Get(Key{Value: "missing", Width: 30})
	require.False(t, ok)
	require.Empty(t, got)
}

func TestCache_GetWrongStoredType(t *testing.T) {
	cache := New("menu-rows", DefaultExpiration, DefaultCleanupInterval)
	key := Key{Value: "apple", Width: 30}

	cache.cache.Set(key.String(), 123, DefaultExpiration)

	got, ok := cache.Get(key)
	require.False(t, ok)
	require.Empty(t, got)
}

func TestCache_KeyDimensionsAreDistinct(t *testing.T) {
	cache := New("menu-rows", DefaultExpiration, DefaultCleanupInterval)

	plain := Key{Value: "apple", Width: 30}
	focused := Key{Value: "apple", Width: 30, Focused: true}
	checked := Key{Value: "apple", Width: 30, Checked: true}
	narrow := Key{Value: "apple", Width: 20}

	cache.Set(plain, "  apple")
	cache.Set(focused, "> apple")
	cache.Set(checked, "  apple ✓")
	cache.Set(narrow, "  app...")

	for key, want := range map[Key]string{
		plain:   "  apple",
		focused: "> apple",
		checked: "  apple ✓",
		narrow:  "  app...",
	} {
		got, ok := cache.Get(key)
		require.True(t, ok)
		require.Equal(t, want, got)
	}
}

func TestKey_SeparatorPreventsAliasing(t *testing.T) {
	// A value that happens to contain digits and punctuation must not
	// collide with a different value/width combination.
	a := Key{Value: "a", Width: 12}
	b := Key{Value: "a\x1f1", Width: 2}

	require.NotEqual(t, a.String(), b.String())
}

func TestCache_GetOrRender(t *testing.T) {
	cache := New("menu-rows", DefaultExpiration, DefaultCleanupInterval)
	key := Key{Value: "banana", Width: 30}

	calls := 0
	render := func() string {
		calls++
		return "  banana"
	}

	got := cache.GetOrRender(key, render)
	require.Equal(t, "  banana", got)
	require.Equal(t, 1, calls)

	// Second lookup is served from cache
	got = cache.GetOrRender(key, render)
	require.Equal(t, "  banana", got)
	require.Equal(t, 1, calls)
}

func TestCache_Invalidate(t *testing.T) {
	cache := New("menu-rows", DefaultExpiration, DefaultCleanupInterval)
	key := Key{Value: "apple", Width: 30}
	cache.Set(key, "  apple")

	cache.Invalidate()

	_, ok := cache.Get(key)
	require.False(t, ok)
	require.Equal(t, 0, cache.Len())
}

func TestCache_Metrics(t *testing.T) {
	cache := New("menu-rows", DefaultExpiration, DefaultCleanupInterval)
	key := Key{Value: "apple", Width: 30}

	cache.Get(key) // miss
	cache.Set(key, "  apple")
	cache.Get(key) // hit
	cache.Get(key) // hit

	m := cache.GetMetrics()
	require.Equal(t, uint64(2), m.Hits)
	require.Equal(t, uint64(1), m.Misses)
	require.InDelta(t, 66.6, m.HitRate(), 0.1)

	cache.ResetMetrics()
	require.Equal(t, Metrics{}, cache.GetMetrics())
}

func TestMetrics_HitRateNoRequests(t *testing.T) {
	require.Zero(t, Metrics{}.HitRate())
}
