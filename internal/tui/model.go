// Package tui implements the interactive dashboard. The bubbletea program
// coordinates the list, trend, news and statistics lanes: every fetch runs
// as a command and lands as a message tagged with its lane token.
package tui

import (
	"time"

	"github.com/Veraticus/hpqaq/internal/locale"
	"github.com/Veraticus/hpqaq/internal/model"
	"github.com/Veraticus/hpqaq/internal/render"
	"github.com/Veraticus/hpqaq/internal/tui/components"
	"github.com/Veraticus/hpqaq/internal/tui/themes"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Screen is one of the two top-level pages.
type Screen int

// Screens.
const (
	ScreenDashboard Screen = iota
	ScreenStats
)

// Region is a focusable dashboard panel.
type Region int

// Regions, in Tab order.
const (
	RegionFilters Region = iota
	RegionTable
	RegionTrend
	RegionNews
	regionCount
)

// Meta is the listing status line.
type Meta int

// Listing statuses.
const (
	MetaReady Meta = iota
	MetaLoading
	MetaDone
	MetaFailed
)

// statsResult keeps the last statistics answer so a view switch can redraw
// it without refetching.
type statsResult struct {
	query  components.StatsQuery
	rows   []model.StatRow
	series []model.Series
}

// Model holds the main TUI state.
type Model struct {
	newsFetched time.Time
	healthErr   error
	backend     Backend
	registry    *locale.Registry
	health      *model.Health
	stats       *statsResult
	theme       themes.Theme
	strings     locale.Strings
	ctx         locale.Context
	filter      model.Filter
	newsCity    string
	statsDesc   string
	config      Config
	keymap      KeyMap
	help        help.Model
	focusCmd    tea.Cmd
	lanes       lanes
	filters     components.FilterForm
	table       components.ListingTable
	detail      components.DetailModal
	trend       components.TrendPanel
	news        components.NewsPanel
	statsForm   components.StatsForm
	chart       components.ChartSurface
	toast       components.Toast
	page        model.PageState
	total       int
	width       int
	height      int
	screen      Screen
	region      Region
	prevRegion  Region
	meta        Meta
	statsReady  bool
	quitting    bool
}

// newModel creates a new model with the given configuration.
func newModel(cfg Config) Model {
	ctx := locale.Resolve(cfg.City)
	registry := newRegistry()
	m := Model{
		config:    cfg,
		backend:   cfg.Backend,
		theme:     cfg.Theme,
		keymap:    DefaultKeyMap(),
		help:      help.New(),
		registry:  registry,
		lanes:     newLanes(cfg.Context),
		page:      model.NewPageState(cfg.PageSize),
		filters:   components.NewFilterForm(cfg.Theme, nil),
		table:     components.NewListingTable(cfg.Theme),
		detail:    components.NewDetailModal(cfg.Theme),
		trend:     components.NewTrendPanel(cfg.Theme, ctx),
		news:      components.NewNewsPanel(cfg.Theme, ctx),
		statsForm: components.NewStatsForm(cfg.Theme, ctx),
		toast:     components.NewToast(cfg.Theme),
		region:    RegionFilters,
	}
	m.applyLocale(cfg.City)
	m = m.resize(cfg.Width, cfg.Height)
	m.filters, m.focusCmd = m.filters.Focus()
	return m
}

// Init starts the cursor blink and the health check, which in turn
// triggers the first load.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.focusCmd}
	if m.filters.Focused() {
		cmds = append(cmds, textinput.Blink)
	}
	if m.backend != nil {
		cmds = append(cmds, checkHealth(m.lanes.parent, m.backend))
	}
	return tea.Batch(cmds...)
}

// Locale returns the active locale.
func (m Model) Locale() locale.Context {
	return m.ctx
}

// Filter returns the filter of the last issued search.
func (m Model) Filter() model.Filter {
	return m.filter
}

// Page returns the pager state.
func (m Model) Page() model.PageState {
	return m.page
}

// Screen returns the visible page.
func (m Model) Screen() Screen {
	return m.screen
}

// Focus returns the focused dashboard region.
func (m Model) Focus() Region {
	return m.region
}

// Loading reports whether lane has a request in flight.
func (m Model) Loading(lane Lane) bool {
	return m.lanes.loading(lane)
}

// Toast returns the visible toast text, or "".
func (m Model) Toast() string {
	return m.toast.Text()
}

// DetailOpen reports whether the detail modal is showing.
func (m Model) DetailOpen() bool {
	return m.detail.IsOpen()
}

// Chart returns the chart on the statistics surface.
func (m Model) Chart() (render.Chart, bool) {
	return m.chart.Current()
}

// applyLocale switches every localized element to the locale of city.
func (m *Model) applyLocale(city string) {
	ctx := locale.Resolve(city)
	m.ctx = ctx
	m.strings = m.registry.Apply(ctx.Variant)
	m.filters = m.filters.ApplyStrings(m.strings)
	m.trend = m.trend.SetLocale(ctx)
	m.news = m.news.SetLocale(ctx)
	m.statsForm = m.statsForm.SetLocale(ctx)
}

func (m Model) resize(w, h int) Model {
	m.width, m.height = w, h
	m.detail = m.detail.SetSize(w, h)
	m.trend = m.trend.SetWidth(m.rightWidth() - 4)
	m.table = m.table.SetHeight(h - 22)
	m.help.Width = w
	return m
}

func (m Model) showToast(text string, isError bool) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.toast, cmd = m.toast.Show(text, isError)
	return m, cmd
}

func (m Model) toastKey(k locale.Key, vars locale.Vars) (Model, tea.Cmd) {
	return m.showToast(m.ctx.T(k, vars), false)
}

func (m Model) quit() (Model, tea.Cmd) {
	m.quitting = true
	m.lanes.cancelAll()
	return m, tea.Quit
}
