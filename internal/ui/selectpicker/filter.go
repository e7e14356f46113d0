package selectpicker

import "strings"

// filterItems returns the options matching keyword, in original order.
// An empty keyword matches everything. The match predicate is SearchBy
// when set, else a case-insensitive substring test against the label.
func (c Config[T]) filterItems(keyword string) []T {
	if keyword == "" {
		return c.Items
	}
	query := strings.ToLower(keyword)
	var filtered []T
	for _, item := range c.Items {
		label := c.labelOf(item)
		var matched bool
		if c.SearchBy != nil {
			matched = c.SearchBy(keyword, label, item)
		} else {
			matched = strings.Contains(strings.ToLower(label), query)
		}
		if matched {
			filtered = append(filtered, item)
		}
	}
	return filtered
}
