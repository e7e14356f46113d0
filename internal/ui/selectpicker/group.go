package selectpicker

import (
	"slices"
	"sort"
)

// Group is one menu section: the options sharing a GroupBy key, keyed
// in first-seen order over the filtered list.
type Group[T any] struct {
	Name  string
	Items []T
}

// groupItems buckets items by their GroupBy key and applies the
// configured comparators. The input slice is never mutated; every
// bucket gets a fresh backing array.
func (c Config[T]) groupItems(items []T) []Group[T] {
	var groups []Group[T]
	index := make(map[string]int)
	for _, item := range items {
		name := c.groupOf(item)
		i, ok := index[name]
		if !ok {
			i = len(groups)
			index[name] = i
			groups = append(groups, Group[T]{Name: name})
		}
		groups[i].Items = append(groups[i].Items, item)
	}
	return c.sortGroups(groups)
}

// sortGroups orders groups and their members with the two-level Sort
// comparator. Sorting is stable so equal elements keep filter order.
func (c Config[T]) sortGroups(groups []Group[T]) []Group[T] {
	if c.Sort == nil {
		return groups
	}
	if less := c.Sort(true); less != nil {
		sort.SliceStable(groups, func(i, j int) bool {
			return less(groups[i], groups[j])
		})
	}
	if less := c.Sort(false); less != nil {
		for g := range groups {
			items := groups[g].Items
			sort.SliceStable(items, func(i, j int) bool {
				return less(items[i], items[j])
			})
		}
	}
	return groups
}

// sortFlat orders an ungrouped view with the item-level comparator,
// cloning first because the input may alias the caller's option list.
func (c Config[T]) sortFlat(items []T) []T {
	if c.Sort == nil {
		return items
	}
	less := c.Sort(false)
	if less == nil {
		return items
	}
	sorted := slices.Clone(items)
	sort.SliceStable(sorted, func(i, j int) bool {
		return less(sorted[i], sorted[j])
	})
	return sorted
}
