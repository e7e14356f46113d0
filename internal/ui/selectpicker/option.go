package selectpicker

import (
	"slices"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/droplist/droplist/internal/locale"
)

// Placement controls which side of the toggle the menu panel opens on.
// Either way the panel flips to the other side when it would not fit.
type Placement int

const (
	PlacementBottom Placement = iota
	PlacementTop
)

const (
	defaultWidth         = 30 // toggle width in cells
	defaultMenuMaxHeight = 8  // visible menu rows before scrolling
)

// Config defines a picker over an arbitrary item type T. Items are
// identified by the string their Value accessor returns; the empty
// string is the "no selection" sentinel and never matches an item.
//
// Exactly one selection mode is active for the life of the picker:
// controlled (SelectedValue non-nil, caller-owned storage the picker
// never writes through) or uncontrolled (DefaultValue seeds internal
// state).
type Config[T any] struct {
	// Data and identity.
	Items          []T
	Value          func(T) string // required; "" marks an unselectable item
	Label          func(T) string // nil falls back to Value
	GroupBy        func(T) string // nil renders a flat menu
	Disabled       func(T) bool
	DisabledValues []string

	// Selection ownership, fixed at New.
	SelectedValue *string
	DefaultValue  string

	// Behavior toggles.
	DisableWidget bool
	Cleanable     bool
	Searchable    bool
	Virtualized   bool

	// Sort builds a comparator for one level of the menu: isGroup=false
	// compares two items (passed as T), isGroup=true compares two
	// Group[T]. Returning nil keeps that level's order.
	Sort func(isGroup bool) func(a, b any) bool

	// SearchBy overrides the default case-insensitive substring match.
	SearchBy func(keyword, label string, item T) bool

	// Presentation.
	Placement     Placement
	Width         int // toggle width; 0 uses the default
	MenuWidth     int // panel width; 0 follows the toggle width
	MenuMaxHeight int // visible rows before the menu scrolls; 0 uses the default
	Placeholder   string
	Locale        *locale.Picker

	// Render overrides. Each receives the stock rendering inputs and
	// returns the replacement string; nil keeps the stock rendering.
	RenderValue       func(value string, item T, display string) string
	RenderMenu        func(menu string) string
	RenderMenuItem    func(label string, item T) string
	RenderMenuGroup   func(group string, count int) string
	RenderExtraFooter func() string

	// Event callbacks. A nil callback makes the picker emit the
	// corresponding fallback message instead (messages.go).
	OnSelect          func(value string, item T) tea.Msg
	OnChange          func(value string) tea.Msg
	OnSearch          func(keyword string) tea.Msg
	OnClean           func() tea.Msg
	OnGroupTitleClick func(group string) tea.Msg
	OnOpen            func() tea.Msg
	OnClose           func() tea.Msg
	OnEntered         func() tea.Msg
	OnExited          func() tea.Msg
}

// Option is the ready-made item type for the common case of plain
// string-valued options.
type Option struct {
	Value    string
	Label    string
	Group    string
	Disabled bool
}

// SimpleConfig returns a Config over []Option with the accessors
// prewired. Set GroupBy to OptionGroup to enable grouping.
func SimpleConfig(items []Option) Config[Option] {
	return Config[Option]{
		Items:    items,
		Value:    func(o Option) string { return o.Value },
		Label:    func(o Option) string { return o.Label },
		Disabled: func(o Option) bool { return o.Disabled },
	}
}

// OptionGroup is the GroupBy accessor for Option items.
func OptionGroup(o Option) string {
	return o.Group
}

func (c Config[T]) valueOf(item T) string {
	if c.Value == nil {
		return ""
	}
	return c.Value(item)
}

func (c Config[T]) labelOf(item T) string {
	if c.Label == nil {
		return c.valueOf(item)
	}
	return c.Label(item)
}

func (c Config[T]) groupOf(item T) string {
	if c.GroupBy == nil {
		return ""
	}
	return c.GroupBy(item)
}

// isDisabled reports whether an item refuses focus and commit, via the
// Disabled accessor or the DisabledValues list.
func (c Config[T]) isDisabled(item T) bool {
	if c.Disabled != nil && c.Disabled(item) {
		return true
	}
	return len(c.DisabledValues) > 0 && slices.Contains(c.DisabledValues, c.valueOf(item))
}

// resolveLocale merges the caller's locale override over the defaults.
func (c Config[T]) resolveLocale() locale.Picker {
	base := locale.DefaultPicker()
	if c.Locale != nil {
		return base.Merge(*c.Locale)
	}
	return base
}

// placeholderText is the toggle text when nothing displayable is
// selected: the configured placeholder, else the locale default.
func (c Config[T]) placeholderText() string {
	if c.Placeholder != "" {
		return c.Placeholder
	}
	return c.resolveLocale().Placeholder
}

// findByValue returns the item whose value equals value. The empty
// string never matches.
func findByValue[T any](c Config[T], items []T, value string) (T, bool) {
	var zero T
	if value == "" {
		return zero, false
	}
	for _, item := range items {
		if c.valueOf(item) == value {
			return item, true
		}
	}
	return zero, false
}
