// Package locale provides the user-facing strings rendered by droplist
// components. Callers supply partial overrides; empty fields fall back to
// the English defaults.
package locale

// Picker holds the strings a select picker renders when no caller-supplied
// text applies.
type Picker struct {
	// Placeholder is shown in the toggle when nothing is selected.
	Placeholder string
	// SearchPlaceholder is shown in an empty search input.
	SearchPlaceholder string
	// NoResults is shown when the search keyword matches nothing.
	NoResults string
}

// DefaultPicker returns the English picker strings.
func DefaultPicker() Picker {
	return Picker{
		Placeholder:       "Select",
		SearchPlaceholder: "Search",
		NoResults:         "No results found",
	}
}

// Merge returns p with every non-empty field of override applied on top.
func (p Picker) Merge(override Picker) Picker {
	if override.Placeholder != "" {
		p.Placeholder = override.Placeholder
	}
	if override.SearchPlaceholder != "" {
		p.SearchPlaceholder = override.SearchPlaceholder
	}
	if override.NoResults != "" {
		p.NoResults = override.NoResults
	}
	return p
}
