// Package selectpicker implements a single-select dropdown widget for
// Bubble Tea: a toggle control that is always visible and a menu panel
// that floats over the host view while open. Menus support grouping,
// sorting, searching, disabled options, custom renderers, and
// virtualized rendering for very large option lists.
//
// The widget is generic over the item type. Items are identified by
// the string their Value accessor returns; the empty string means "no
// selection" and never identifies an item. Selection state lives
// either inside the model (uncontrolled) or behind a caller-owned
// pointer the picker reads but never writes (controlled).
//
// Hosts embed the Model, forward Update messages, render View inline,
// and composite Overlay over their fully rendered frame so the open
// menu can cover neighboring content.
package selectpicker

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/google/uuid"
	zone "github.com/lrstanley/bubblezone"

	"github.com/droplist/droplist/internal/log"
	"github.com/droplist/droplist/internal/rowcache"
	"github.com/droplist/droplist/internal/ui/overlay"
	"github.com/droplist/droplist/internal/ui/searchbar"
	"github.com/droplist/droplist/internal/ui/styles"
)

// state is the widget's interaction mode. A searchable picker opens
// straight into stateOpenSearching with the search input focused;
// everything else opens into stateOpenIdle.
type state int

const (
	stateClosed state = iota
	stateOpenIdle
	stateOpenSearching
)

const (
	toggleHeight = 3 // bordered single-line toggle
	caretClosed  = "▾"
	caretOpen    = "▴"
)

var (
	toggleStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(styles.BorderDefaultColor).
			Padding(0, 1)

	toggleFocusStyle = toggleStyle.
				BorderForeground(styles.BorderFocusColor)

	placeholderStyle = lipgloss.NewStyle().Foreground(styles.TextPlaceholderColor)
	valueStyle       = lipgloss.NewStyle().Foreground(styles.TextPrimaryColor)
	caretStyle       = lipgloss.NewStyle().Foreground(styles.TextMutedColor)
	clearStyle       = lipgloss.NewStyle().Foreground(styles.PickerClearColor).Bold(true)
)

// Model is the picker widget state. Create one with New; the zero
// value is not usable.
type Model[T any] struct {
	cfg  Config[T]
	id   string
	keys KeyMap

	state        state
	value        valueController
	focusedValue string
	keyword      string
	filtered     []T
	scrollOffset int
	focused      bool

	search searchbar.Model
	rcache *rowcache.Cache

	width, height    int // host viewport
	anchorX, anchorY int // toggle's top-left cell
}

// New builds a picker from the given configuration. The configuration
// is fixed for the picker's lifetime except for the option list, which
// SetItems can replace.
func New[T any](cfg Config[T]) Model[T] {
	m := Model[T]{
		cfg:      cfg,
		id:       uuid.New().String(),
		keys:     DefaultKeyMap(),
		value:    newValueController(cfg.SelectedValue, cfg.DefaultValue),
		filtered: cfg.Items,
		search:   searchbar.New(cfg.resolveLocale().SearchPlaceholder),
	}
	if cfg.Virtualized {
		m.rcache = rowcache.New("picker-rows", rowcache.DefaultExpiration, rowcache.DefaultCleanupInterval)
	}
	return m
}

// Init implements tea.Model. The picker starts closed; the search
// input's blink command is issued on open instead.
func (m Model[T]) Init() tea.Cmd {
	return nil
}

// Update handles key and mouse input. Keyboard handling is state
// scoped: a closed picker reacts only while its toggle is focused, an
// open one routes between menu navigation and the search input.
func (m Model[T]) Update(msg tea.Msg) (Model[T], tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.cfg.DisableWidget {
			return m, nil
		}
		switch m.state {
		case stateOpenIdle:
			return m.updateOpenIdle(msg)
		case stateOpenSearching:
			return m.updateOpenSearching(msg)
		default:
			return m.updateClosed(msg)
		}
	case tea.MouseMsg:
		return m.handleMouse(msg)
	}
	return m, nil
}

func (m Model[T]) updateClosed(msg tea.KeyMsg) (Model[T], tea.Cmd) {
	if !m.focused {
		return m, nil
	}
	switch {
	case key.Matches(msg, m.keys.Open):
		return m.open()
	case key.Matches(msg, m.keys.Clear):
		return m.clean()
	}
	return m, nil
}

func (m Model[T]) updateOpenIdle(msg tea.KeyMsg) (Model[T], tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Close):
		return m.close()
	case key.Matches(msg, m.keys.Down):
		return m.moveFocusBy(1), nil
	case key.Matches(msg, m.keys.Up):
		return m.moveFocusBy(-1), nil
	case key.Matches(msg, m.keys.Select):
		return m.commitFocused()
	}
	return m, nil
}

func (m Model[T]) updateOpenSearching(msg tea.KeyMsg) (Model[T], tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Close):
		return m.close()
	case key.Matches(msg, m.keys.Down):
		return m.moveFocusBy(1), nil
	case key.Matches(msg, m.keys.Up):
		return m.moveFocusBy(-1), nil
	case key.Matches(msg, m.keys.Select):
		return m.commitFocused()
	}
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if kw := m.search.Value(); kw != m.keyword {
		var searchCmd tea.Cmd
		m, searchCmd = m.applyKeyword(kw)
		cmd = tea.Batch(cmd, searchCmd)
	}
	return m, cmd
}

// handleMouse routes clicks and wheel events through the zone marks
// painted by View and Overlay.
func (m Model[T]) handleMouse(msg tea.MouseMsg) (Model[T], tea.Cmd) {
	if m.cfg.DisableWidget {
		return m, nil
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp, tea.MouseButtonWheelDown:
		return m.handleWheel(msg.Button), nil
	case tea.MouseButtonLeft:
		if msg.Action != tea.MouseActionRelease {
			return m, nil
		}
	default:
		return m, nil
	}

	if z := zone.Get(m.clearZoneID()); z != nil && z.InBounds(msg) {
		return m.clean()
	}
	if z := zone.Get(m.toggleZoneID()); z != nil && z.InBounds(msg) {
		if m.state == stateClosed {
			m.focused = true
			return m.open()
		}
		return m.close()
	}
	if m.state == stateClosed {
		return m, nil
	}

	rows := m.rows()
	start, end := m.rowWindow(len(rows))
	for i := start; i < end; i++ {
		r := rows[i]
		switch r.kind {
		case optionRow:
			if z := zone.Get(m.optionZoneID(i)); z != nil && z.InBounds(msg) {
				if r.disabled {
					return m, nil
				}
				return m.commit(r.value, r.item)
			}
		case groupRow:
			if z := zone.Get(m.groupZoneID(i)); z != nil && z.InBounds(msg) {
				return m, m.notifyGroupTitleClick(r.group)
			}
		}
	}

	// Clicks on the panel chrome (search bar, borders) are absorbed;
	// anything outside the panel closes the menu.
	if z := zone.Get(m.panelZoneID()); z != nil && z.InBounds(msg) {
		return m, nil
	}
	return m.close()
}

func (m Model[T]) handleWheel(button tea.MouseButton) Model[T] {
	if m.state == stateClosed {
		return m
	}
	maxOffset := max(len(m.rows())-m.maxVisibleRows(), 0)
	if button == tea.MouseButtonWheelUp && m.scrollOffset > 0 {
		m.scrollOffset--
	}
	if button == tea.MouseButtonWheelDown && m.scrollOffset < maxOffset {
		m.scrollOffset++
	}
	return m
}

// open transitions closed to open, seeding focus from the committed
// selection and scrolling it into view. Searchable pickers land in the
// searching state with the input focused.
func (m Model[T]) open() (Model[T], tea.Cmd) {
	if m.state != stateClosed || m.cfg.DisableWidget {
		return m, nil
	}
	if m.cfg.Searchable {
		m.state = stateOpenSearching
		m.search = m.search.SetWidth(m.menuWidth() - 4).Focus()
	} else {
		m.state = stateOpenIdle
	}
	m.keyword = ""
	m.filtered = m.cfg.Items
	m.scrollOffset = 0
	rows := m.rows()
	// Seed focus from the committed selection. A controlled store can
	// hold a value matching no option; focus stays clear then.
	m.focusedValue = m.value.get()
	if rowIndexOf(rows, m.focusedValue) < 0 {
		m.focusedValue = ""
	}
	m = m.ensureFocusVisible(rows)
	log.Debug(log.CatPicker, "menu opened", "id", m.shortID(), "options", len(m.filtered))

	notify := tea.Sequence(m.notifyOpen(), m.notifyEntered())
	if m.cfg.Searchable {
		return m, tea.Batch(notify, m.search.Init())
	}
	return m, notify
}

// close transitions open to closed. The keyword resets so the next
// open sees the full option list, and the focused value clears.
func (m Model[T]) close() (Model[T], tea.Cmd) {
	if m.state == stateClosed {
		return m, nil
	}
	m.state = stateClosed
	m.keyword = ""
	m.search = m.search.Reset().Blur()
	m.filtered = m.cfg.Items
	m.focusedValue = ""
	m.scrollOffset = 0
	log.Debug(log.CatPicker, "menu closed", "id", m.shortID())
	return m, tea.Sequence(m.notifyClose(), m.notifyExited())
}

// commitFocused commits the focused option, refusing disabled options
// and stale focus values that fell out of the filtered view.
func (m Model[T]) commitFocused() (Model[T], tea.Cmd) {
	if m.focusedValue == "" {
		return m, nil
	}
	item, ok := findByValue(m.cfg, m.filtered, m.focusedValue)
	if !ok || m.cfg.isDisabled(item) {
		return m, nil
	}
	return m.commit(m.focusedValue, item)
}

// commit runs the selection sequence: store the value, sync focus,
// then notify and close. Hosts observe select, change, close, exited,
// in that order.
func (m Model[T]) commit(value string, item T) (Model[T], tea.Cmd) {
	m.value = m.value.set(value)
	m.focusedValue = value
	log.Debug(log.CatPicker, "option committed",
		"id", m.shortID(), "value", value, "controlled", m.value.controlled())
	notifySelect := m.notifySelect(value, item)
	notifyChange := m.notifyChange(value)
	closed, closeCmd := m.close()
	return closed, tea.Sequence(notifySelect, notifyChange, closeCmd)
}

// clean clears the selection. The prior value becomes the focused
// value so reopening highlights what was just removed.
func (m Model[T]) clean() (Model[T], tea.Cmd) {
	if m.cfg.DisableWidget || !m.cfg.Cleanable {
		return m, nil
	}
	prior := m.value.get()
	m.value = m.value.set("")
	m.focusedValue = prior
	log.Debug(log.CatPicker, "selection cleared", "id", m.shortID(), "prior", prior)
	return m, tea.Sequence(m.notifyClean(), m.notifyChange(""))
}

// applyKeyword recomputes the filtered view for a new keyword. Focus
// jumps to the first filtered option, or clears when nothing matches.
func (m Model[T]) applyKeyword(keyword string) (Model[T], tea.Cmd) {
	m.keyword = keyword
	m.filtered = m.cfg.filterItems(keyword)
	if len(m.filtered) > 0 {
		m.focusedValue = m.cfg.valueOf(m.filtered[0])
	} else {
		m.focusedValue = ""
	}
	m.scrollOffset = 0
	log.Debug(log.CatPicker, "keyword changed",
		"id", m.shortID(), "keyword", keyword, "matches", len(m.filtered))
	return m, m.notifySearch(keyword)
}

func (m Model[T]) moveFocusBy(delta int) Model[T] {
	rows := m.rows()
	next := moveFocus(rows, m.focusedValue, delta)
	if next == m.focusedValue {
		return m
	}
	m.focusedValue = next
	return m.ensureFocusVisible(rows)
}

// ensureFocusVisible scrolls the window so the focused row is inside it.
func (m Model[T]) ensureFocusVisible(rows []row[T]) Model[T] {
	idx := rowIndexOf(rows, m.focusedValue)
	if idx < 0 {
		return m
	}
	maxVisible := m.maxVisibleRows()
	if idx >= m.scrollOffset+maxVisible {
		m.scrollOffset = idx - maxVisible + 1
	}
	if idx < m.scrollOffset {
		m.scrollOffset = idx
	}
	return m
}

// rows is the flattened render model for the current filtered view,
// recomputed on demand so it can never drift from the option list.
func (m Model[T]) rows() []row[T] {
	return buildRows(m.cfg, m.filtered)
}

// View renders the always-visible toggle control. The open menu is
// composited separately through Overlay.
func (m Model[T]) View() string {
	width := m.toggleWidth()
	inner := width - 4

	display, hasValue := m.displayValue()

	caret := caretClosed
	if m.state != stateClosed {
		caret = caretOpen
	}

	clearMark := ""
	if hasValue && m.cfg.Cleanable && !m.cfg.DisableWidget {
		clearMark = zone.Mark(m.clearZoneID(), clearStyle.Render("×")) + " "
	}

	textWidth := max(inner-2-lipgloss.Width(clearMark), 1)
	var text string
	switch {
	case m.cfg.DisableWidget:
		text = disabledRowStyle.Render(styles.TruncateString(display, textWidth))
	case !hasValue:
		text = placeholderStyle.Render(styles.TruncateString(display, textWidth))
	case m.cfg.RenderValue != nil:
		// Custom value renders may carry their own styling.
		text = ansi.Truncate(display, textWidth, "...")
	default:
		text = valueStyle.Render(styles.TruncateString(display, textWidth))
	}

	line := styles.PadToWidth(text, textWidth) + " " + clearMark + caretStyle.Render(caret)

	style := toggleStyle
	if m.cfg.DisableWidget {
		style = toggleStyle.BorderForeground(styles.TextDisabledColor)
	} else if m.focused || m.state != stateClosed {
		style = toggleFocusStyle
	}
	return zone.Mark(m.toggleZoneID(), style.Width(width-2).Render(line))
}

// displayValue resolves the toggle text and whether the control is in
// the has-value state. The flag starts from whether the committed value
// matches an option (or a custom renderer can display it anyway) and is
// corrected after the renderer runs: an empty render suppresses the
// has-value state even when the raw value is set.
func (m Model[T]) displayValue() (string, bool) {
	value := m.value.get()
	item, matched := findByValue(m.cfg, m.cfg.Items, value)
	hasValue := matched || (value != "" && m.cfg.RenderValue != nil)

	display := ""
	if matched {
		display = m.cfg.labelOf(item)
	}
	if value != "" && m.cfg.RenderValue != nil {
		display = m.cfg.RenderValue(value, item, display)
		if display == "" {
			hasValue = false
		}
	}
	if !hasValue || display == "" {
		return m.cfg.placeholderText(), false
	}
	return display, true
}

// Overlay composites the open menu panel onto the host's fully
// rendered frame. Hosts call it after assembling their own view so the
// panel can float over neighboring content.
func (m Model[T]) Overlay(background string) string {
	if m.state == stateClosed {
		return background
	}
	panel := zone.Mark(m.panelZoneID(), m.menuView())
	x, y := m.panelPosition(lipgloss.Height(panel))
	return overlay.Place(overlay.Config{
		Width:    m.width,
		Height:   m.height,
		Position: overlay.Anchored,
		X:        x,
		Y:        y,
	}, panel, background)
}

// panelPosition picks the panel's top-left corner, flipping to the
// other side of the toggle when the preferred side does not fit.
func (m Model[T]) panelPosition(panelHeight int) (int, int) {
	below := m.anchorY + toggleHeight
	above := m.anchorY - panelHeight
	if m.cfg.Placement == PlacementTop {
		if above >= 0 {
			return m.anchorX, above
		}
		return m.anchorX, below
	}
	if m.height > 0 && below+panelHeight > m.height && above >= 0 {
		return m.anchorX, above
	}
	return m.anchorX, below
}

// MenuView renders the menu panel by itself, mainly for tests and for
// hosts that lay the panel out inline instead of floating it.
func (m Model[T]) MenuView() string {
	if m.state == stateClosed {
		return ""
	}
	return m.menuView()
}

// Open opens the menu programmatically.
func (m Model[T]) Open() (Model[T], tea.Cmd) {
	return m.open()
}

// Close closes the menu programmatically.
func (m Model[T]) Close() (Model[T], tea.Cmd) {
	return m.close()
}

// Clean clears the selection programmatically, subject to the same
// rules as the clear affordance.
func (m Model[T]) Clean() (Model[T], tea.Cmd) {
	return m.clean()
}

// Focus gives the toggle keyboard focus.
func (m Model[T]) Focus() Model[T] {
	m.focused = true
	return m
}

// Blur removes toggle focus. An open menu stays open; hosts moving
// focus elsewhere should Close first.
func (m Model[T]) Blur() Model[T] {
	m.focused = false
	return m
}

// SetSize records the host viewport dimensions, used to clamp the menu
// height and position the overlay.
func (m Model[T]) SetSize(width, height int) Model[T] {
	m.width = width
	m.height = height
	m.search = m.search.SetWidth(m.menuWidth() - 4)
	return m
}

// SetPosition records the toggle's top-left corner in screen cells,
// the anchor the overlay panel hangs from.
func (m Model[T]) SetPosition(x, y int) Model[T] {
	m.anchorX = x
	m.anchorY = y
	return m
}

// SetItems replaces the option list and recomputes the filtered view.
// A focused value that no longer matches anything clears, and the
// virtualized row cache drops since labels may have changed.
func (m Model[T]) SetItems(items []T) Model[T] {
	m.cfg.Items = items
	m.filtered = m.cfg.filterItems(m.keyword)
	if m.focusedValue != "" && rowIndexOf(m.rows(), m.focusedValue) < 0 {
		m.focusedValue = ""
	}
	m.scrollOffset = min(m.scrollOffset, max(len(m.rows())-m.maxVisibleRows(), 0))
	if m.rcache != nil {
		m.rcache.Invalidate()
	}
	return m
}

// ID returns the picker's instance ID, the one carried by its fallback
// messages.
func (m Model[T]) ID() string {
	return m.id
}

// Value returns the committed value, "" meaning no selection.
func (m Model[T]) Value() string {
	return m.value.get()
}

// SelectedItem returns the item the committed value identifies.
func (m Model[T]) SelectedItem() (T, bool) {
	return findByValue(m.cfg, m.cfg.Items, m.value.get())
}

// FocusedValue returns the value holding menu focus, "" while closed
// or when nothing is focusable.
func (m Model[T]) FocusedValue() string {
	return m.focusedValue
}

// SearchKeyword returns the active filter keyword.
func (m Model[T]) SearchKeyword() string {
	return m.keyword
}

// FilteredItems returns the options matching the active keyword.
func (m Model[T]) FilteredItems() []T {
	return m.filtered
}

// IsOpen reports whether the menu panel is showing.
func (m Model[T]) IsOpen() bool {
	return m.state != stateClosed
}

// Focused reports whether the toggle has keyboard focus.
func (m Model[T]) Focused() bool {
	return m.focused
}

// Controlled reports whether selection state is caller-owned.
func (m Model[T]) Controlled() bool {
	return m.value.controlled()
}

func (m Model[T]) toggleWidth() int {
	width := m.cfg.Width
	if width <= 0 {
		width = defaultWidth
	}
	if m.width > 0 && width > m.width {
		width = m.width
	}
	return width
}

func (m Model[T]) menuWidth() int {
	width := m.cfg.MenuWidth
	if width <= 0 {
		width = m.toggleWidth()
	}
	if m.width > 0 && width > m.width {
		width = m.width
	}
	return width
}

func (m Model[T]) shortID() string {
	if len(m.id) >= 8 {
		return m.id[:8]
	}
	return m.id
}

// Notification commands. Each prefers the configured callback and
// falls back to the package message type when the callback is nil.

func (m Model[T]) notifySelect(value string, item T) tea.Cmd {
	return func() tea.Msg {
		if m.cfg.OnSelect != nil {
			return m.cfg.OnSelect(value, item)
		}
		return SelectMsg[T]{ID: m.id, Value: value, Item: item}
	}
}

func (m Model[T]) notifyChange(value string) tea.Cmd {
	return func() tea.Msg {
		if m.cfg.OnChange != nil {
			return m.cfg.OnChange(value)
		}
		return ChangeMsg{ID: m.id, Value: value}
	}
}

func (m Model[T]) notifySearch(keyword string) tea.Cmd {
	return func() tea.Msg {
		if m.cfg.OnSearch != nil {
			return m.cfg.OnSearch(keyword)
		}
		return SearchMsg{ID: m.id, Keyword: keyword}
	}
}

func (m Model[T]) notifyClean() tea.Cmd {
	return func() tea.Msg {
		if m.cfg.OnClean != nil {
			return m.cfg.OnClean()
		}
		return CleanMsg{ID: m.id}
	}
}

func (m Model[T]) notifyGroupTitleClick(group string) tea.Cmd {
	return func() tea.Msg {
		if m.cfg.OnGroupTitleClick != nil {
			return m.cfg.OnGroupTitleClick(group)
		}
		return GroupTitleClickMsg{ID: m.id, Group: group}
	}
}

func (m Model[T]) notifyOpen() tea.Cmd {
	return func() tea.Msg {
		if m.cfg.OnOpen != nil {
			return m.cfg.OnOpen()
		}
		return OpenMsg{ID: m.id}
	}
}

func (m Model[T]) notifyClose() tea.Cmd {
	return func() tea.Msg {
		if m.cfg.OnClose != nil {
			return m.cfg.OnClose()
		}
		return CloseMsg{ID: m.id}
	}
}

func (m Model[T]) notifyEntered() tea.Cmd {
	return func() tea.Msg {
		if m.cfg.OnEntered != nil {
			return m.cfg.OnEntered()
		}
		return EnteredMsg{ID: m.id}
	}
}

func (m Model[T]) notifyExited() tea.Cmd {
	return func() tea.Msg {
		if m.cfg.OnExited != nil {
			return m.cfg.OnExited()
		}
		return ExitedMsg{ID: m.id}
	}
}
