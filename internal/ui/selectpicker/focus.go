package selectpicker

// rowKind discriminates menu rows.
type rowKind int

const (
	optionRow rowKind = iota
	groupRow
)

// row is one renderable menu line. Group headers carry the group name
// and member count; option rows carry the item and its identity.
type row[T any] struct {
	kind     rowKind
	item     T
	value    string
	label    string
	group    string
	count    int
	disabled bool
}

// buildRows flattens the filtered view into renderable rows, applying
// grouping and the configured sort. Options with the empty-string
// value are treated as disabled: "" is the no-selection sentinel, so
// such an option could never be focused or committed distinguishably.
func buildRows[T any](cfg Config[T], filtered []T) []row[T] {
	if cfg.GroupBy == nil {
		flat := cfg.sortFlat(filtered)
		rows := make([]row[T], 0, len(flat))
		for _, item := range flat {
			rows = append(rows, optionRowOf(cfg, item))
		}
		return rows
	}
	groups := cfg.groupItems(filtered)
	var rows []row[T]
	for _, g := range groups {
		rows = append(rows, row[T]{kind: groupRow, group: g.Name, count: len(g.Items)})
		for _, item := range g.Items {
			rows = append(rows, optionRowOf(cfg, item))
		}
	}
	return rows
}

func optionRowOf[T any](cfg Config[T], item T) row[T] {
	value := cfg.valueOf(item)
	return row[T]{
		kind:     optionRow,
		item:     item,
		value:    value,
		label:    cfg.labelOf(item),
		disabled: cfg.isDisabled(item) || value == "",
	}
}

// focusable reports whether rows[i] can hold keyboard focus.
func focusable[T any](rows []row[T], i int) bool {
	return rows[i].kind == optionRow && !rows[i].disabled
}

// rowIndexOf returns the index of the option row holding value, or -1.
func rowIndexOf[T any](rows []row[T], value string) int {
	if value == "" {
		return -1
	}
	for i, r := range rows {
		if r.kind == optionRow && r.value == value {
			return i
		}
	}
	return -1
}

// moveFocus returns the value of the nearest enabled option in the
// given direction, skipping group headers and disabled options and
// clamping at the ends. With no current focus, moving down lands on
// the first enabled option and moving up on the last.
func moveFocus[T any](rows []row[T], current string, delta int) string {
	start := rowIndexOf(rows, current)
	if start == -1 {
		if delta > 0 {
			return firstFocusable(rows)
		}
		return lastFocusable(rows)
	}
	for i := start + delta; i >= 0 && i < len(rows); i += delta {
		if focusable(rows, i) {
			return rows[i].value
		}
	}
	return current
}

func firstFocusable[T any](rows []row[T]) string {
	for i := range rows {
		if focusable(rows, i) {
			return rows[i].value
		}
	}
	return ""
}

func lastFocusable[T any](rows []row[T]) string {
	for i := len(rows) - 1; i >= 0; i-- {
		if focusable(rows, i) {
			return rows[i].value
		}
	}
	return ""
}
