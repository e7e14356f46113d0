package selectpicker

import (
	"fmt"
	"strings"

	zone "github.com/lrstanley/bubblezone"

	"github.com/droplist/droplist/internal/rowcache"
)

// Virtualized rendering keeps a menu over thousands of options at
// O(visible) cost per frame: only the rows in the scroll window are
// rendered, each through the row cache, with a few rows either side
// prewarmed so single-step scrolling never renders on the hot path.

const prewarmRowCount = 10

func (m Model[T]) renderVirtualRows(rows []row[T], inner int) string {
	start, end := m.rowWindow(len(rows))
	value := m.value.get()
	m.prewarmWindow(rows, start, end, inner, value)

	var b strings.Builder
	b.Grow((end - start + 1) * 48)
	for i := start; i < end; i++ {
		if i > start {
			b.WriteByte('\n')
		}
		b.WriteString(zone.Mark(m.rowZoneID(rows, i), m.cachedRow(rows[i], inner, value)))
	}
	if remaining := len(rows) - end; remaining > 0 {
		b.WriteByte('\n')
		b.WriteString(moreHintStyle.Render(fmt.Sprintf("  ↓ %d more", remaining)))
	}
	return b.String()
}

func (m Model[T]) rowZoneID(rows []row[T], i int) string {
	if rows[i].kind == groupRow {
		return m.groupZoneID(i)
	}
	return m.optionZoneID(i)
}

// cachedRow returns the rendered row, rendering and storing it on a
// miss. Zone marks are applied by the caller, outside the cache: a
// row's mark embeds its index, which shifts as the filter changes.
// Group headers bypass the cache, their member count would otherwise
// need its own key dimension for no real win.
func (m Model[T]) cachedRow(r row[T], inner int, value string) string {
	if r.kind == groupRow {
		return m.renderGroupRow(r, inner)
	}
	focused := r.value != "" && r.value == m.focusedValue
	checked := r.value != "" && r.value == value
	key := rowcache.Key{
		Value:   r.value,
		Width:   inner,
		Focused: focused,
		Checked: checked,
	}
	return m.rcache.GetOrRender(key, func() string {
		return m.renderOptionRow(r, inner, focused, checked)
	})
}

// prewarmWindow renders the rows just outside the visible window into
// the cache.
func (m Model[T]) prewarmWindow(rows []row[T], start, end, inner int, value string) {
	for i := max(start-prewarmRowCount, 0); i < start; i++ {
		m.cachedRow(rows[i], inner, value)
	}
	for i := end; i < min(end+prewarmRowCount, len(rows)); i++ {
		m.cachedRow(rows[i], inner, value)
	}
}

// RenderCacheMetrics reports hit and miss counts for the virtualized
// row cache. Non-virtualized pickers report zeroes.
func (m Model[T]) RenderCacheMetrics() rowcache.Metrics {
	if m.rcache == nil {
		return rowcache.Metrics{}
	}
	return m.rcache.GetMetrics()
}
