// Package rowcache caches rendered menu rows for virtualized lists.
// Styling a row with lipgloss is the dominant cost when a menu holds
// thousands of options; caching the finished string makes scrolling
// render O(visible) instead of O(total).
package rowcache

import (
	"strconv"
	"strings"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/droplist/droplist/internal/log"
)

const DefaultExpiration = 10 * time.Minute
const DefaultCleanupInterval = 30 * time.Minute

// Key identifies one rendered row. Every field that changes the rendered
// bytes must be part of the key.
type Key struct {
	Value   string // option value, or group name for header rows
	Width   int    // render width in cells
	Focused bool   // row under the cursor
	Checked bool   // row is the committed selection
	Group   bool   // row is a group header
}

// String encodes the key for storage. Fields are joined with the unit
// separator so option values containing printable punctuation cannot
// alias another key.
func (k Key) String() string {
	var b strings.Builder
	b.WriteString(k.Value)
	b.WriteByte(0x1f)
	b.WriteString(strconv.Itoa(k.Width))
	b.WriteByte(0x1f)
	b.WriteString(strconv.FormatBool(k.Focused))
	b.WriteByte(0x1f)
	b.WriteString(strconv.FormatBool(k.Checked))
	b.WriteByte(0x1f)
	b.WriteString(strconv.FormatBool(k.Group))
	return b.String()
}

// Metrics tracks cache performance statistics.
type Metrics struct {
	Hits   uint64
	Misses uint64
}

// HitRate returns the cache hit rate as a percentage (0-100).
// Returns 0 if no requests have been made.
func (m Metrics) HitRate() float64 {
	total := m.Hits + m.Misses
	if total == 0 {
		return 0
	}
	return float64(m.Hits) / float64(total) * 100
}

// Cache stores rendered rows with TTL-based expiry.
type Cache struct {
	useCase string
	cache   *gocache.Cache

	mu      sync.Mutex
	metrics Metrics
}

// New creates a row cache. useCase labels the cache in log output.
func New(useCase string, defaultExpiration, cleanupInterval time.Duration) *Cache {
	return &Cache{
		useCase: useCase,
		cache:   gocache.New(defaultExpiration, cleanupInterval),
	}
}

// Get retrieves a cached row, returning ("", false) if not present.
func (c *Cache) Get(key Key) (string, bool) {
	value, found := c.cache.Get(key.String())
	if !found {
		c.countMiss()
		return "", false
	}

	row, ok := value.(string)
	if !ok {
		log.Error(log.CatCache, "wrong type assertion when getting row", "useCase", c.useCase, "key", key.Value)
		c.countMiss()
		return "", false
	}

	c.countHit()
	return row, true
}

// GetOrRender returns the cached row for key, invoking render and storing
// the result on a miss.
func (c *Cache) GetOrRender(key Key, render func() string) string {
	if row, ok := c.Get(key); ok {
		return row
	}
	row := render()
	c.Set(key, row)
	return row
}

// Set stores a rendered row under key with the cache's default TTL.
func (c *Cache) Set(key Key, row string) {
	c.cache.Set(key.String(), row, gocache.DefaultExpiration)
}

// Invalidate discards every cached row. Call on width, theme, or option
// set changes; keys do not carry those dimensions.
func (c *Cache) Invalidate() {
	c.cache.Flush()
	log.Debug(log.CatCache, "row cache invalidated", "useCase", c.useCase)
}

// Len returns the number of cached rows, including not-yet-evicted
// expired entries.
func (c *Cache) Len() int {
	return c.cache.ItemCount()
}

// GetMetrics returns a copy of the current cache metrics.
func (c *Cache) GetMetrics() Metrics {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.metrics
}

// ResetMetrics clears the performance counters.
func (c *Cache) ResetMetrics() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.metrics = Metrics{}
}

func (c *Cache) countHit() {
	c.mu.Lock()
	c.metrics.Hits++
	c.mu.Unlock()
}

func (c *Cache) countMiss() {
	c.mu.Lock()
	c.metrics.Misses++
	c.mu.Unlock()
}
