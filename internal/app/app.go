package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"go.opentelemetry.io/otel/attribute"

	"github.com/droplist/droplist/internal/config"
	"github.com/droplist/droplist/internal/keys"
	"github.com/droplist/droplist/internal/log"
	"github.com/droplist/droplist/internal/tracing"
	"github.com/droplist/droplist/internal/ui/help"
	"github.com/droplist/droplist/internal/ui/logoverlay"
	"github.com/droplist/droplist/internal/ui/selectpicker"
	"github.com/droplist/droplist/internal/ui/styles"
)

// FocusPane is which pane owns keyboard input.
type FocusPane int

const (
	// FocusSidebar routes navigation keys to the demo list.
	FocusSidebar FocusPane = iota
	// FocusDemo routes input to the active demo's pickers.
	FocusDemo
)

const (
	feedPaneHeight = 8
	maxFeedEntries = 100
)

// reloadMsg signals that the config file changed on disk.
type reloadMsg struct{}

// Options wires the showcase to the subsystems the command layer set
// up. Every field is optional; a zero Options still runs.
type Options struct {
	// Config is the loaded configuration snapshot.
	Config config.Config

	// Reload re-reads the config file. Called on each watcher signal.
	Reload func() (config.Config, error)

	// ReloadCh delivers watcher change signals. Nil disables live
	// reload.
	ReloadCh <-chan struct{}

	// Recorder receives one span per picker interaction. Nil records
	// nothing.
	Recorder *tracing.Recorder
}

// Model is the root showcase model.
type Model struct {
	opts Options
	keys keys.KeyMap
	ctx  context.Context

	demos     []Demo
	selected  int
	loadedIdx int
	demo      DemoModel
	focus     FocusPane

	feed []string
	help help.Model
	logs logoverlay.Model

	listener *log.LogListener

	width    int
	height   int
	quitting bool
}

// New builds the showcase model. The demo for the initial selection is
// created lazily on the first window size message, once the pane
// geometry is known.
func New(opts Options) Model {
	ctx := context.Background()
	return Model{
		opts:      opts,
		keys:      keys.DefaultKeyMap(),
		ctx:       ctx,
		demos:     Demos(),
		loadedIdx: -1,
		help:      help.New(),
		logs:      logoverlay.New(),
		listener:  log.NewListener(ctx),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{tea.EnableMouseCellMotion}
	if cmd := m.waitReload(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if m.listener != nil {
		cmds = append(cmds, m.listener.Listen())
	}
	return tea.Batch(cmds...)
}

// waitReload blocks on the watcher channel and surfaces the next
// change as a message. Reissued after every reload.
func (m Model) waitReload() tea.Cmd {
	ch := m.opts.ReloadCh
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return reloadMsg{}
	}
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.SetSize(msg.Width, msg.Height)
		m.logs.SetSize(msg.Width, msg.Height)
		if m.demo != nil {
			m.demo = m.demo.SetEnv(m.demoEnv())
		} else {
			m.ensureDemoLoaded()
		}
		return m, nil

	case reloadMsg:
		return m.applyReload()

	case log.LogEvent:
		if m.logs.Visible() {
			// Force the overlay to re-read the log buffer.
			m.logs.SetSize(m.width, m.height)
		}
		if m.listener != nil {
			return m, m.listener.Listen()
		}
		return m, nil

	case help.CloseMsg, logoverlay.CloseMsg:
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if m.demo != nil {
			var cmd tea.Cmd
			m.demo, cmd = m.demo.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	// Picker notifications and everything else: record the event, then
	// let the demo see it too (the controlled and form demos react to
	// ChangeMsg themselves).
	cmd := m.recordEvent(msg)
	if m.demo != nil {
		var demoCmd tea.Cmd
		m.demo, demoCmd = m.demo.Update(msg)
		cmd = tea.Batch(cmd, demoCmd)
	}
	return m, cmd
}

// applyReload re-reads the config file and applies it in place: theme
// tokens rebuild and the loaded demo is recreated with the new picker
// defaults.
func (m Model) applyReload() (tea.Model, tea.Cmd) {
	next, err := m.opts.Reload()
	if err != nil {
		log.ErrorErr(log.CatConfig, "config reload failed", err)
		m.pushFeed("config reload failed: " + err.Error())
		return m, m.waitReload()
	}
	if err := styles.ApplyTheme(styles.ThemeConfig{
		Preset: next.Theme.Preset,
		Colors: next.Theme.FlattenedColors(),
	}); err != nil {
		log.ErrorErr(log.CatConfig, "theme rejected on reload", err)
		m.pushFeed("theme rejected: " + err.Error())
		return m, m.waitReload()
	}
	m.opts.Config = next
	if m.demo != nil {
		m.demo = m.demos[m.loadedIdx].Create(m.demoEnv())
	}
	log.Info(log.CatConfig, "config reloaded", "preset", next.Theme.Preset)
	m.pushFeed("config reloaded")
	return m, m.waitReload()
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Ctrl+C quits from anywhere, including open menus and overlays.
	if msg.String() == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}

	if m.help.Visible() {
		var cmd tea.Cmd
		m.help, cmd = m.help.Update(msg)
		return m, cmd
	}
	if m.logs.Visible() {
		var cmd tea.Cmd
		m.logs, cmd = m.logs.Update(msg)
		return m, cmd
	}

	// While a picker menu is open the demo owns the keyboard, so
	// printable shortcuts can be typed into search inputs.
	if m.focus == FocusDemo && m.demo != nil && m.demo.InputActive() {
		var cmd tea.Cmd
		m.demo, cmd = m.demo.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.Toggle()
		return m, nil
	case key.Matches(msg, m.keys.EventLog):
		m.logs.Toggle()
		return m, nil
	case key.Matches(msg, m.keys.ClearFeed):
		m.feed = nil
		return m, nil
	case key.Matches(msg, m.keys.NextDemo):
		return m.selectDemo((m.selected + 1) % len(m.demos)), nil
	case key.Matches(msg, m.keys.PrevDemo):
		return m.selectDemo((m.selected + len(m.demos) - 1) % len(m.demos)), nil
	case key.Matches(msg, m.keys.Left):
		m.focus = FocusSidebar
		return m, nil
	case key.Matches(msg, m.keys.Right):
		m.focus = FocusDemo
		m.ensureDemoLoaded()
		return m, nil
	}

	if m.focus == FocusSidebar {
		return m.handleSidebarKey(msg)
	}
	return m.handleDemoKey(msg)
}

func (m Model) handleSidebarKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Down):
		return m.selectDemo((m.selected + 1) % len(m.demos)), nil
	case key.Matches(msg, m.keys.Up):
		return m.selectDemo((m.selected + len(m.demos) - 1) % len(m.demos)), nil
	case key.Matches(msg, m.keys.Enter):
		m.ensureDemoLoaded()
		m.focus = FocusDemo
		return m, nil
	}
	return m, nil
}

func (m Model) handleDemoKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Escape) {
		m.focus = FocusSidebar
		return m, nil
	}
	if m.demo != nil {
		var cmd tea.Cmd
		m.demo, cmd = m.demo.Update(msg)
		return m, cmd
	}
	return m, nil
}

// selectDemo moves the sidebar cursor and loads that demo.
func (m Model) selectDemo(idx int) Model {
	m.selected = idx
	m.ensureDemoLoaded()
	return m
}

func (m *Model) ensureDemoLoaded() {
	if m.width == 0 || m.selected == m.loadedIdx {
		return
	}
	m.demo = m.demos[m.selected].Create(m.demoEnv())
	m.loadedIdx = m.selected
	log.Debug(log.CatApp, "demo loaded", "name", m.demos[m.selected].Name)
}

// recordEvent turns picker notifications into feed entries and trace
// spans. Returns the span side immediately; rendering reads the feed.
func (m *Model) recordEvent(msg tea.Msg) tea.Cmd {
	demoName := m.demos[m.selected].Name
	rec := m.opts.Recorder
	demoAttr := attribute.String(tracing.AttrDemoName, demoName)

	switch msg := msg.(type) {
	case selectpicker.SelectMsg[selectpicker.Option]:
		m.pushFeed(fmt.Sprintf("select %q (%s)", msg.Item.Label, msg.Value))
		rec.Interaction(m.ctx, tracing.SpanPickerSelect, demoAttr,
			attribute.String(tracing.AttrPickerID, msg.ID),
			attribute.String(tracing.AttrOptionValue, msg.Value))
	case selectpicker.SelectMsg[server]:
		m.pushFeed(fmt.Sprintf("select %q (%s)", msg.Item.Name, msg.Value))
		rec.Interaction(m.ctx, tracing.SpanPickerSelect, demoAttr,
			attribute.String(tracing.AttrPickerID, msg.ID),
			attribute.String(tracing.AttrOptionValue, msg.Value))
	case selectpicker.ChangeMsg:
		if msg.Value == "" {
			m.pushFeed("change → cleared")
		} else {
			m.pushFeed("change → " + msg.Value)
		}
	case selectpicker.SearchMsg:
		m.pushFeed(fmt.Sprintf("search %q", msg.Keyword))
		rec.Interaction(m.ctx, tracing.SpanPickerSearch, demoAttr,
			attribute.String(tracing.AttrPickerID, msg.ID),
			attribute.String(tracing.AttrKeyword, msg.Keyword))
	case selectpicker.CleanMsg:
		m.pushFeed("clean")
		rec.Interaction(m.ctx, tracing.SpanPickerClean, demoAttr,
			attribute.String(tracing.AttrPickerID, msg.ID))
	case selectpicker.GroupTitleClickMsg:
		m.pushFeed(fmt.Sprintf("group title %q clicked", msg.Group))
	case selectpicker.OpenMsg:
		m.pushFeed("open")
		rec.Interaction(m.ctx, tracing.SpanPickerOpen, demoAttr,
			attribute.String(tracing.AttrPickerID, msg.ID))
	case selectpicker.CloseMsg:
		m.pushFeed("close")
		rec.Interaction(m.ctx, tracing.SpanPickerClose, demoAttr,
			attribute.String(tracing.AttrPickerID, msg.ID))
	case selectpicker.EnteredMsg:
		m.pushFeed("entered")
	case selectpicker.ExitedMsg:
		m.pushFeed("exited")
	}
	return nil
}

func (m *Model) pushFeed(entry string) {
	stamped := time.Now().Format("15:04:05") + "  " + entry
	m.feed = append(m.feed, stamped)
	if len(m.feed) > maxFeedEntries {
		m.feed = m.feed[len(m.feed)-maxFeedEntries:]
	}
}

// Layout. The sidebar takes the left edge, the demo pane and event
// feed stack on the right, and a one-line footer spans the bottom.

func (m Model) sidebarWidth() int {
	w := m.width * 28 / 100
	return max(min(w, 30), 20)
}

func (m Model) contentHeight() int {
	return max(m.height-1, 4)
}

func (m Model) demoPaneSize() (int, int) {
	w := m.width - m.sidebarWidth() - 1
	h := m.contentHeight() - feedPaneHeight
	return max(w, 24), max(h, 8)
}

// demoEnv is the geometry handed to demos: the demo pane's inner cells
// plus the pane's origin on the frame for overlay anchoring.
func (m Model) demoEnv() Env {
	paneW, paneH := m.demoPaneSize()
	return Env{
		FrameWidth:  m.width,
		FrameHeight: m.height,
		Width:       paneW - 2,
		Height:      paneH - 2,
		OriginX:     m.sidebarWidth() + 2,
		OriginY:     1,
		Picker:      m.opts.Config.Picker,
	}
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 {
		return "Loading..."
	}

	sidebarW := m.sidebarWidth()
	contentH := m.contentHeight()
	paneW, paneH := m.demoPaneSize()

	sidebar := styles.RenderWithTitleBorder(
		m.sidebarView(sidebarW-2), "Demos", sidebarW, contentH,
		m.focus == FocusSidebar, styles.OverlayTitleColor, styles.BorderFocusColor)

	var demoContent string
	if m.demo != nil {
		demoContent = m.demo.View()
	}
	demoPane := styles.RenderWithTitleBorder(
		demoContent, m.demos[m.selected].Name, paneW, paneH,
		m.focus == FocusDemo, styles.OverlayTitleColor, styles.BorderFocusColor)

	feedPane := styles.RenderWithTitleBorder(
		m.feedView(paneW-2), "Events", paneW, contentH-paneH,
		false, styles.OverlayTitleColor, styles.BorderFocusColor)

	right := lipgloss.JoinVertical(lipgloss.Left, demoPane, feedPane)
	frame := lipgloss.JoinHorizontal(lipgloss.Top, sidebar, " ", right)
	frame += "\n" + m.footerView()

	if m.demo != nil {
		frame = m.demo.Overlay(frame)
	}
	frame = m.logs.Overlay(frame)
	frame = m.help.Overlay(frame)
	return zone.Scan(frame)
}

func (m Model) feedView(width int) string {
	visible := feedPaneHeight - 2
	start := max(len(m.feed)-visible, 0)
	lines := make([]string, 0, visible)
	for _, entry := range m.feed[start:] {
		lines = append(lines, styles.TruncateString(entry, width))
	}
	if len(lines) == 0 {
		return demoCopyStyle.Render("interact with a picker to see its events")
	}
	return strings.Join(lines, "\n")
}

func (m Model) footerView() string {
	hints := []string{
		"tab: next demo",
		"?: help",
		"ctrl+e: log",
		"ctrl+x: clear events",
		"q: quit",
	}
	return lipgloss.NewStyle().
		Foreground(styles.TextMutedColor).
		Width(m.width).
		Render(strings.Join(hints, "  │  "))
}

// Feed returns the recorded event feed, newest last.
func (m Model) Feed() []string {
	return m.feed
}

// Focus returns which pane owns keyboard input.
func (m Model) Focus() FocusPane {
	return m.focus
}

// SelectedDemo returns the sidebar cursor's demo name.
func (m Model) SelectedDemo() string {
	return m.demos[m.selected].Name
}
