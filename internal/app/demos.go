// Package app contains the root showcase model: a sidebar of picker
// demos, the active demo pane, an event feed, and the help and log
// overlays.
package app

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/droplist/droplist/internal/config"
	"github.com/droplist/droplist/internal/locale"
	"github.com/droplist/droplist/internal/ui/selectpicker"
	"github.com/droplist/droplist/internal/ui/styles"
)

// Env is the geometry and configuration a demo is created with. Width
// and Height are the demo pane's inner cells; OriginX/OriginY locate
// that pane on the full frame so pickers can anchor their overlay
// panels in screen coordinates.
type Env struct {
	FrameWidth  int
	FrameHeight int
	Width       int
	Height      int
	OriginX     int
	OriginY     int
	Picker      config.PickerConfig
}

// Demo is one sidebar entry.
type Demo struct {
	Name        string
	Description string
	Create      func(env Env) DemoModel
}

// DemoModel is the contract every demo implements. Overlay composites
// any open menu panels over the fully rendered frame; InputActive
// reports whether the demo is capturing printable keys so the app
// leaves shortcuts like q and ? alone.
type DemoModel interface {
	Update(msg tea.Msg) (DemoModel, tea.Cmd)
	View() string
	Overlay(background string) string
	InputActive() bool
	SetEnv(env Env) DemoModel
	Reset() DemoModel
}

// Demos returns the sidebar registry. Order is presentation order.
func Demos() []Demo {
	return []Demo{
		{
			Name:        "basic",
			Description: "Flat option list with a clear affordance",
			Create:      createBasicDemo,
		},
		{
			Name:        "grouped",
			Description: "Options bucketed by a grouping key",
			Create:      createGroupedDemo,
		},
		{
			Name:        "sorted",
			Description: "Comparator ordering groups and members",
			Create:      createSortedDemo,
		},
		{
			Name:        "searchable",
			Description: "Keyword filtering with a search input",
			Create:      createSearchableDemo,
		},
		{
			Name:        "virtualized",
			Description: "1000 rows rendered through the row cache",
			Create:      createVirtualizedDemo,
		},
		{
			Name:        "custom render",
			Description: "Value, item, group, and footer overrides",
			Create:      createCustomRenderDemo,
		},
		{
			Name:        "controlled",
			Description: "Selection stored by the host, not the picker",
			Create:      createControlledDemo,
		},
		{
			Name:        "disabled",
			Description: "Disabled options and a disabled widget",
			Create:      createDisabledDemo,
		},
		{
			Name:        "placement",
			Description: "Menu opening above the toggle",
			Create:      createPlacementDemo,
		},
		{
			Name:        "form",
			Description: "Two linked pickers sharing one pane",
			Create:      createFormDemo,
		},
	}
}

// applyDefaults folds the configured picker defaults into a demo's
// config wherever the demo did not pick its own value.
func applyDefaults[T any](cfg selectpicker.Config[T], p config.PickerConfig) selectpicker.Config[T] {
	if cfg.Width == 0 {
		cfg.Width = p.Width
	}
	if cfg.MenuMaxHeight == 0 {
		cfg.MenuMaxHeight = p.MenuMaxHeight
	}
	if cfg.Placement == selectpicker.PlacementBottom && p.Placement == "top" {
		cfg.Placement = selectpicker.PlacementTop
	}
	if cfg.Locale == nil && p.Locale != (config.LocaleConfig{}) {
		cfg.Locale = &locale.Picker{
			Placeholder:       p.Locale.Placeholder,
			SearchPlaceholder: p.Locale.SearchPlaceholder,
			NoResults:         p.Locale.NoResults,
		}
	}
	return cfg
}

var (
	demoCopyStyle   = lipgloss.NewStyle().Foreground(styles.TextMutedColor)
	demoStatusStyle = lipgloss.NewStyle().Foreground(styles.TextSecondaryColor)
	demoLabelStyle  = lipgloss.NewStyle().Foreground(styles.TextPrimaryColor).Bold(true)
)

// pickerDemo is the scaffold most demos share: one picker, a few lines
// of copy above it, and a derived status line below.
type pickerDemo[T any] struct {
	env            Env
	copy           []string
	build          func(env Env) selectpicker.Config[T]
	picker         selectpicker.Model[T]
	bottomAnchored bool
}

func newPickerDemo[T any](env Env, copy []string, build func(Env) selectpicker.Config[T]) *pickerDemo[T] {
	d := &pickerDemo[T]{env: env, copy: copy, build: build}
	d.picker = selectpicker.New(build(env)).Focus()
	d.layout()
	return d
}

// linesAbove is the row of the toggle's top border within the pane,
// which doubles as its overlay anchor offset.
func (d *pickerDemo[T]) linesAbove() int {
	n := len(d.copy) + 1
	if d.bottomAnchored {
		n = max(d.env.Height-5, n)
	}
	return n
}

func (d *pickerDemo[T]) layout() {
	d.picker = d.picker.
		SetSize(d.env.FrameWidth, d.env.FrameHeight).
		SetPosition(d.env.OriginX, d.env.OriginY+d.linesAbove())
}

func (d *pickerDemo[T]) Update(msg tea.Msg) (DemoModel, tea.Cmd) {
	var cmd tea.Cmd
	d.picker, cmd = d.picker.Update(msg)
	return d, cmd
}

func (d *pickerDemo[T]) View() string {
	var b strings.Builder
	for i := 0; i < d.linesAbove(); i++ {
		if i < len(d.copy) {
			b.WriteString(demoCopyStyle.Render(d.copy[i]))
		}
		b.WriteString("\n")
	}
	b.WriteString(d.picker.View())
	b.WriteString("\n")
	b.WriteString(demoStatusStyle.Render(d.statusLine()))
	return b.String()
}

func (d *pickerDemo[T]) statusLine() string {
	value := d.picker.Value()
	if value == "" {
		value = "(none)"
	}
	status := "value: " + value
	if kw := d.picker.SearchKeyword(); kw != "" {
		status += fmt.Sprintf("  keyword: %q  matches: %d", kw, len(d.picker.FilteredItems()))
	}
	return status
}

func (d *pickerDemo[T]) Overlay(background string) string {
	return d.picker.Overlay(background)
}

func (d *pickerDemo[T]) InputActive() bool {
	return d.picker.IsOpen()
}

func (d *pickerDemo[T]) SetEnv(env Env) DemoModel {
	d.env = env
	d.layout()
	return d
}

func (d *pickerDemo[T]) Reset() DemoModel {
	d.picker = selectpicker.New(d.build(d.env)).Focus()
	d.layout()
	return d
}

func languageOptions() []selectpicker.Option {
	return []selectpicker.Option{
		{Value: "go", Label: "Go"},
		{Value: "rust", Label: "Rust"},
		{Value: "python", Label: "Python"},
		{Value: "typescript", Label: "TypeScript"},
		{Value: "zig", Label: "Zig"},
		{Value: "kotlin", Label: "Kotlin"},
		{Value: "elixir", Label: "Elixir"},
		{Value: "haskell", Label: "Haskell"},
	}
}

func createBasicDemo(env Env) DemoModel {
	copy := []string{
		"Enter or space opens the menu, enter commits,",
		"backspace clears. The toggle is clickable too.",
	}
	return newPickerDemo(env, copy, func(env Env) selectpicker.Config[selectpicker.Option] {
		cfg := selectpicker.SimpleConfig(languageOptions())
		cfg.Cleanable = true
		cfg.DefaultValue = "go"
		cfg.Placeholder = "Pick a language"
		return applyDefaults(cfg, env.Picker)
	})
}

func regionOptions() []selectpicker.Option {
	return []selectpicker.Option{
		{Value: "us-east", Label: "US East (Virginia)", Group: "Americas"},
		{Value: "us-west", Label: "US West (Oregon)", Group: "Americas"},
		{Value: "sa-east", Label: "South America (São Paulo)", Group: "Americas"},
		{Value: "eu-west", Label: "Europe (Ireland)", Group: "Europe"},
		{Value: "eu-central", Label: "Europe (Frankfurt)", Group: "Europe"},
		{Value: "ap-southeast", Label: "Asia Pacific (Singapore)", Group: "Asia Pacific"},
		{Value: "ap-northeast", Label: "Asia Pacific (Tokyo)", Group: "Asia Pacific"},
	}
}

func createGroupedDemo(env Env) DemoModel {
	copy := []string{
		"Groups appear in first-seen order; clicking a",
		"group title fires its own event.",
	}
	return newPickerDemo(env, copy, func(env Env) selectpicker.Config[selectpicker.Option] {
		cfg := selectpicker.SimpleConfig(regionOptions())
		cfg.GroupBy = selectpicker.OptionGroup
		cfg.Cleanable = true
		cfg.Placeholder = "Pick a region"
		return applyDefaults(cfg, env.Picker)
	})
}

func createSortedDemo(env Env) DemoModel {
	copy := []string{
		"One comparator orders both levels: groups",
		"alphabetically, members by label.",
	}
	return newPickerDemo(env, copy, func(env Env) selectpicker.Config[selectpicker.Option] {
		cfg := selectpicker.SimpleConfig(regionOptions())
		cfg.GroupBy = selectpicker.OptionGroup
		cfg.Placeholder = "Pick a region"
		cfg.Sort = func(isGroup bool) func(a, b any) bool {
			if isGroup {
				return func(a, b any) bool {
					return a.(selectpicker.Group[selectpicker.Option]).Name <
						b.(selectpicker.Group[selectpicker.Option]).Name
				}
			}
			return func(a, b any) bool {
				return a.(selectpicker.Option).Label < b.(selectpicker.Option).Label
			}
		}
		return applyDefaults(cfg, env.Picker)
	})
}

func colorOptions() []selectpicker.Option {
	names := []string{
		"Amber", "Aquamarine", "Azure", "Burgundy", "Cerulean", "Charcoal",
		"Chartreuse", "Cobalt", "Coral", "Crimson", "Emerald", "Fuchsia",
		"Indigo", "Ivory", "Lavender", "Magenta", "Ochre", "Periwinkle",
		"Sienna", "Teal", "Vermilion", "Viridian",
	}
	options := make([]selectpicker.Option, len(names))
	for i, name := range names {
		options[i] = selectpicker.Option{Value: strings.ToLower(name), Label: name}
	}
	return options
}

func createSearchableDemo(env Env) DemoModel {
	copy := []string{
		"Typing filters the list; focus jumps to the",
		"first match and enter commits it.",
	}
	return newPickerDemo(env, copy, func(env Env) selectpicker.Config[selectpicker.Option] {
		cfg := selectpicker.SimpleConfig(colorOptions())
		cfg.Searchable = true
		cfg.Cleanable = true
		cfg.Placeholder = "Pick a color"
		return applyDefaults(cfg, env.Picker)
	})
}

func recordOptions() []selectpicker.Option {
	options := make([]selectpicker.Option, 1000)
	for i := range options {
		options[i] = selectpicker.Option{
			Value: fmt.Sprintf("rec-%04d", i),
			Label: fmt.Sprintf("Record %04d", i),
			Group: fmt.Sprintf("Batch %02d", i/100),
		}
	}
	return options
}

func createVirtualizedDemo(env Env) DemoModel {
	copy := []string{
		"1000 generated rows. Only the visible window is",
		"rendered and rows are cached between frames.",
	}
	return newPickerDemo(env, copy, func(env Env) selectpicker.Config[selectpicker.Option] {
		cfg := selectpicker.SimpleConfig(recordOptions())
		cfg.GroupBy = selectpicker.OptionGroup
		cfg.Searchable = true
		cfg.Virtualized = true
		cfg.Placeholder = "Pick a record"
		cfg.MenuMaxHeight = 10
		return applyDefaults(cfg, env.Picker)
	})
}

// server is the custom item type for the custom-render demo.
type server struct {
	ID     string
	Name   string
	Region string
	Load   int // percent
}

func serverFleet() []server {
	return []server{
		{ID: "srv-01", Name: "api-gateway", Region: "us-east", Load: 62},
		{ID: "srv-02", Name: "auth", Region: "us-east", Load: 35},
		{ID: "srv-03", Name: "billing", Region: "eu-west", Load: 18},
		{ID: "srv-04", Name: "search", Region: "eu-west", Load: 91},
		{ID: "srv-05", Name: "ingest", Region: "ap-northeast", Load: 47},
		{ID: "srv-06", Name: "archive", Region: "ap-northeast", Load: 8},
	}
}

// loadBar renders a five-cell utilization bar for a server row.
func loadBar(load int) string {
	filled := min(load/20, 5)
	bar := strings.Repeat("▰", filled) + strings.Repeat("▱", 5-filled)
	style := lipgloss.NewStyle().Foreground(styles.StatusSuccessColor)
	if load >= 80 {
		style = style.Foreground(styles.StatusErrorColor)
	} else if load >= 50 {
		style = style.Foreground(styles.StatusWarningColor)
	}
	return style.Render(bar)
}

func createCustomRenderDemo(env Env) DemoModel {
	copy := []string{
		"A custom item type with every render override:",
		"toggle value, menu rows, group titles, footer.",
	}
	return newPickerDemo(env, copy, func(env Env) selectpicker.Config[server] {
		cfg := selectpicker.Config[server]{
			Items:   serverFleet(),
			Value:   func(s server) string { return s.ID },
			Label:   func(s server) string { return s.Name },
			GroupBy: func(s server) string { return s.Region },
			Disabled: func(s server) bool {
				return s.Load >= 90 // overloaded hosts are not selectable
			},
			Cleanable:   true,
			Placeholder: "Pick a server",
			RenderValue: func(_ string, s server, display string) string {
				if display == "" {
					return ""
				}
				return demoLabelStyle.Render(s.Name) + demoCopyStyle.Render(" · "+s.Region)
			},
			RenderMenuItem: func(label string, s server) string {
				return fmt.Sprintf("%-14s %s", label, loadBar(s.Load))
			},
			RenderMenuGroup: func(group string, count int) string {
				return fmt.Sprintf("region %s (%d hosts)", group, count)
			},
			RenderExtraFooter: func() string {
				return demoCopyStyle.Render("overloaded hosts are greyed out")
			},
		}
		return applyDefaults(cfg, env.Picker)
	})
}

// controlledDemo owns the selection itself: the picker reads the value
// through a pointer and never writes it, so nothing changes until the
// demo applies the ChangeMsg by hand.
type controlledDemo struct {
	env    Env
	value  string
	picker selectpicker.Model[selectpicker.Option]
}

func createControlledDemo(env Env) DemoModel {
	d := &controlledDemo{env: env, value: "go"}
	d.picker = selectpicker.New(d.config()).Focus()
	d.layout()
	return d
}

func (d *controlledDemo) config() selectpicker.Config[selectpicker.Option] {
	cfg := selectpicker.SimpleConfig(languageOptions())
	cfg.SelectedValue = &d.value
	cfg.Cleanable = true
	cfg.Placeholder = "Pick a language"
	return applyDefaults(cfg, d.env.Picker)
}

func (d *controlledDemo) layout() {
	d.picker = d.picker.
		SetSize(d.env.FrameWidth, d.env.FrameHeight).
		SetPosition(d.env.OriginX, d.env.OriginY+3)
}

func (d *controlledDemo) Update(msg tea.Msg) (DemoModel, tea.Cmd) {
	if change, ok := msg.(selectpicker.ChangeMsg); ok && change.ID == d.picker.ID() {
		d.value = change.Value
	}
	var cmd tea.Cmd
	d.picker, cmd = d.picker.Update(msg)
	return d, cmd
}

func (d *controlledDemo) View() string {
	var b strings.Builder
	b.WriteString(demoCopyStyle.Render("The host applies each ChangeMsg to its own store;"))
	b.WriteString("\n")
	b.WriteString(demoCopyStyle.Render("the picker only requests changes."))
	b.WriteString("\n\n")
	b.WriteString(d.picker.View())
	b.WriteString("\n")
	b.WriteString(demoStatusStyle.Render(fmt.Sprintf("host store: %q", d.value)))
	return b.String()
}

func (d *controlledDemo) Overlay(background string) string {
	return d.picker.Overlay(background)
}

func (d *controlledDemo) InputActive() bool {
	return d.picker.IsOpen()
}

func (d *controlledDemo) SetEnv(env Env) DemoModel {
	d.env = env
	d.layout()
	return d
}

func (d *controlledDemo) Reset() DemoModel {
	return createControlledDemo(d.env)
}

// disabledDemo pairs a picker with unselectable rows and a second,
// fully disabled widget.
type disabledDemo struct {
	env      Env
	schedule selectpicker.Model[selectpicker.Option]
	frozen   selectpicker.Model[selectpicker.Option]
}

func createDisabledDemo(env Env) DemoModel {
	days := []selectpicker.Option{
		{Value: "mon", Label: "Monday"},
		{Value: "tue", Label: "Tuesday"},
		{Value: "wed", Label: "Wednesday"},
		{Value: "thu", Label: "Thursday"},
		{Value: "fri", Label: "Friday"},
		{Value: "sat", Label: "Saturday", Disabled: true},
		{Value: "sun", Label: "Sunday", Disabled: true},
	}
	cfg := selectpicker.SimpleConfig(days)
	cfg.Cleanable = true
	cfg.Placeholder = "Pick a weekday"
	cfg.DisabledValues = []string{"fri"} // frozen by list, not by flag

	frozenCfg := selectpicker.SimpleConfig(languageOptions())
	frozenCfg.DefaultValue = "rust"
	frozenCfg.DisableWidget = true

	d := &disabledDemo{
		env:      env,
		schedule: selectpicker.New(applyDefaults(cfg, env.Picker)).Focus(),
		frozen:   selectpicker.New(applyDefaults(frozenCfg, env.Picker)),
	}
	d.layout()
	return d
}

func (d *disabledDemo) layout() {
	d.schedule = d.schedule.
		SetSize(d.env.FrameWidth, d.env.FrameHeight).
		SetPosition(d.env.OriginX, d.env.OriginY+3)
	d.frozen = d.frozen.
		SetSize(d.env.FrameWidth, d.env.FrameHeight).
		SetPosition(d.env.OriginX, d.env.OriginY+8)
}

func (d *disabledDemo) Update(msg tea.Msg) (DemoModel, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd
	d.schedule, cmd = d.schedule.Update(msg)
	cmds = append(cmds, cmd)
	d.frozen, cmd = d.frozen.Update(msg)
	cmds = append(cmds, cmd)
	return d, tea.Batch(cmds...)
}

func (d *disabledDemo) View() string {
	var b strings.Builder
	b.WriteString(demoCopyStyle.Render("Weekend rows refuse focus and commit; Friday is"))
	b.WriteString("\n")
	b.WriteString(demoCopyStyle.Render("disabled through the value list instead."))
	b.WriteString("\n\n")
	b.WriteString(d.schedule.View())
	b.WriteString("\n")
	b.WriteString(demoCopyStyle.Render("A disabled widget ignores all input:"))
	b.WriteString("\n")
	b.WriteString(d.frozen.View())
	return b.String()
}

func (d *disabledDemo) Overlay(background string) string {
	return d.frozen.Overlay(d.schedule.Overlay(background))
}

func (d *disabledDemo) InputActive() bool {
	return d.schedule.IsOpen()
}

func (d *disabledDemo) SetEnv(env Env) DemoModel {
	d.env = env
	d.layout()
	return d
}

func (d *disabledDemo) Reset() DemoModel {
	return createDisabledDemo(d.env)
}

func createPlacementDemo(env Env) DemoModel {
	copy := []string{
		"This toggle sits at the bottom of the pane, so",
		"its menu opens upward. Either placement flips",
		"automatically when the preferred side runs out",
		"of room.",
	}
	d := newPickerDemo(env, copy, func(env Env) selectpicker.Config[selectpicker.Option] {
		cfg := selectpicker.SimpleConfig(languageOptions())
		cfg.Placement = selectpicker.PlacementTop
		cfg.Cleanable = true
		cfg.Placeholder = "Opens upward"
		return applyDefaults(cfg, env.Picker)
	})
	d.bottomAnchored = true
	d.layout()
	return d
}

// formDemo stacks two pickers in one pane. The city list follows the
// selected country through SetItems, and up/down hand toggle focus
// between the fields while both menus are closed.
type formDemo struct {
	env     Env
	country selectpicker.Model[selectpicker.Option]
	city    selectpicker.Model[selectpicker.Option]
	active  int // 0 = country, 1 = city
}

func countryOptions() []selectpicker.Option {
	return []selectpicker.Option{
		{Value: "jp", Label: "Japan"},
		{Value: "de", Label: "Germany"},
		{Value: "br", Label: "Brazil"},
	}
}

func cityOptions(country string) []selectpicker.Option {
	switch country {
	case "jp":
		return []selectpicker.Option{
			{Value: "tokyo", Label: "Tokyo"},
			{Value: "osaka", Label: "Osaka"},
			{Value: "sapporo", Label: "Sapporo"},
		}
	case "de":
		return []selectpicker.Option{
			{Value: "berlin", Label: "Berlin"},
			{Value: "munich", Label: "Munich"},
			{Value: "hamburg", Label: "Hamburg"},
		}
	case "br":
		return []selectpicker.Option{
			{Value: "sao-paulo", Label: "São Paulo"},
			{Value: "rio", Label: "Rio de Janeiro"},
			{Value: "recife", Label: "Recife"},
		}
	default:
		return nil
	}
}

func createFormDemo(env Env) DemoModel {
	countryCfg := selectpicker.SimpleConfig(countryOptions())
	countryCfg.Placeholder = "Country"
	countryCfg.DefaultValue = "jp"

	cityCfg := selectpicker.SimpleConfig(cityOptions("jp"))
	cityCfg.Placeholder = "City"
	cityCfg.Cleanable = true

	d := &formDemo{
		env:     env,
		country: selectpicker.New(applyDefaults(countryCfg, env.Picker)).Focus(),
		city:    selectpicker.New(applyDefaults(cityCfg, env.Picker)),
	}
	d.layout()
	return d
}

func (d *formDemo) layout() {
	d.country = d.country.
		SetSize(d.env.FrameWidth, d.env.FrameHeight).
		SetPosition(d.env.OriginX, d.env.OriginY+3)
	d.city = d.city.
		SetSize(d.env.FrameWidth, d.env.FrameHeight).
		SetPosition(d.env.OriginX, d.env.OriginY+7)
}

func (d *formDemo) Update(msg tea.Msg) (DemoModel, tea.Cmd) {
	// A committed country replaces the city list and drops a stale
	// city selection with it.
	if change, ok := msg.(selectpicker.ChangeMsg); ok && change.ID == d.country.ID() {
		d.city = d.city.SetItems(cityOptions(change.Value))
		if d.city.Value() != "" {
			var cleanCmd tea.Cmd
			d.city, cleanCmd = d.city.Clean()
			return d, cleanCmd
		}
		return d, nil
	}

	if key, ok := msg.(tea.KeyMsg); ok && !d.InputActive() {
		switch key.String() {
		case "down", "j":
			if d.active == 0 {
				d.setActive(1)
				return d, nil
			}
		case "up", "k":
			if d.active == 1 {
				d.setActive(0)
				return d, nil
			}
		}
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	d.country, cmd = d.country.Update(msg)
	cmds = append(cmds, cmd)
	d.city, cmd = d.city.Update(msg)
	cmds = append(cmds, cmd)
	return d, tea.Batch(cmds...)
}

func (d *formDemo) setActive(idx int) {
	d.active = idx
	if idx == 0 {
		d.country = d.country.Focus()
		d.city = d.city.Blur()
	} else {
		d.country = d.country.Blur()
		d.city = d.city.Focus()
	}
}

func (d *formDemo) View() string {
	var b strings.Builder
	b.WriteString(demoCopyStyle.Render("j/k move between the fields; picking a country"))
	b.WriteString("\n")
	b.WriteString(demoCopyStyle.Render("replaces the city list."))
	b.WriteString("\n\n")
	b.WriteString(d.country.View())
	b.WriteString("\n")
	b.WriteString(d.city.View())
	return b.String()
}

func (d *formDemo) Overlay(background string) string {
	return d.city.Overlay(d.country.Overlay(background))
}

func (d *formDemo) InputActive() bool {
	return d.country.IsOpen() || d.city.IsOpen()
}

func (d *formDemo) SetEnv(env Env) DemoModel {
	d.env = env
	d.layout()
	return d
}

func (d *formDemo) Reset() DemoModel {
	return createFormDemo(d.env)
}
