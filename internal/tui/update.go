package tui

import (
	"log/slog"

	"github.com/Veraticus/hpqaq/internal/api"
	"github.com/Veraticus/hpqaq/internal/common"
	"github.com/Veraticus/hpqaq/internal/locale"
	"github.com/Veraticus/hpqaq/internal/model"
	"github.com/Veraticus/hpqaq/internal/render"
	"github.com/Veraticus/hpqaq/internal/storage"
	"github.com/Veraticus/hpqaq/internal/tui/components"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.resize(msg.Width, msg.Height), nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case components.ToastExpiredMsg:
		m.toast = m.toast.Update(msg)
		return m, nil

	case healthMsg:
		return m.handleHealth(msg)

	case listLoadedMsg:
		return m.handleList(msg)

	case trendLoadedMsg:
		return m.handleTrend(msg)

	case newsLoadedMsg:
		return m.handleNews(msg)

	case bizcirclesLoadedMsg:
		return m.handleBizcircles(msg)

	case statsLoadedMsg:
		return m.handleStats(msg)

	case components.CityChangedMsg:
		return m.changeCity(msg.City)

	case components.DetailClosedMsg:
		m.region = m.prevRegion
		return m.focusRegion()

	case components.OpenLinkMsg:
		return m.open(msg.URL)

	case linkOpenedMsg:
		if msg.err != nil {
			return m.showToast(msg.err.Error(), true)
		}
		return m.toastKey(locale.KeyToastOpened, nil)

	case prefsSavedMsg:
		if msg.err != nil {
			slog.Warn("failed to save preferences", "error", msg.err)
		}
		return m, nil

	case components.StatsCityChangedMsg:
		return m.loadBizcircles(msg.City)

	case components.StatsModeChangedMsg:
		m.lanes.abandon(LaneStats)
		m.stats = nil
		m.statsDesc = ""
		m.chart = m.chart.Detach()
		if msg.Compare {
			return m, nil
		}
		return m.loadBizcircles(m.statsForm.City())

	case components.StatsViewChangedMsg:
		return m.redrawStats()
	}

	return m, nil
}

func (m Model) typing() bool {
	if m.screen == ScreenStats {
		return m.statsForm.Typing()
	}
	return m.region == RegionFilters && m.filters.Typing()
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keymap.ForceQuit) {
		return m.quit()
	}

	// The modal traps focus until it closes.
	if m.detail.IsOpen() {
		var cmd tea.Cmd
		m.detail, cmd = m.detail.Update(msg)
		return m, cmd
	}

	if !m.typing() {
		switch {
		case key.Matches(msg, m.keymap.Quit):
			return m.quit()
		case key.Matches(msg, m.keymap.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keymap.Dashboard):
			return m.switchScreen(ScreenDashboard)
		case key.Matches(msg, m.keymap.Stats):
			return m.switchScreen(ScreenStats)
		}
	}

	if m.screen == ScreenStats {
		if key.Matches(msg, m.keymap.Submit) {
			return m.submitStats()
		}
		var cmd tea.Cmd
		m.statsForm, cmd = m.statsForm.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keymap.NextRegion):
		m.region = (m.region + 1) % regionCount
		return m.focusRegion()
	case key.Matches(msg, m.keymap.PrevRegion):
		m.region = (m.region + regionCount - 1) % regionCount
		return m.focusRegion()
	case key.Matches(msg, m.keymap.Reset):
		return m.reset()
	}

	if m.region == RegionFilters && key.Matches(msg, m.keymap.Submit) {
		return m.search()
	}

	if !m.typing() {
		switch {
		case key.Matches(msg, m.keymap.Refresh):
			return m.refresh()
		case key.Matches(msg, m.keymap.News):
			return m.loadNews(true)
		case key.Matches(msg, m.keymap.PrevPage):
			return m.gotoPage(-1)
		case key.Matches(msg, m.keymap.NextPage):
			return m.gotoPage(1)
		case key.Matches(msg, m.keymap.PageSize):
			return m.cyclePageSize()
		}
	}

	var cmd tea.Cmd
	switch m.region {
	case RegionFilters:
		m.filters, cmd = m.filters.Update(msg)
	case RegionTable:
		switch {
		case key.Matches(msg, m.keymap.Submit):
			return m.openDetail()
		case key.Matches(msg, m.keymap.Open):
			row, ok := m.table.Selected()
			if !ok {
				return m, nil
			}
			return m.open(row.URL)
		}
		m.table, cmd = m.table.Update(msg)
	case RegionTrend:
		m.trend, cmd = m.trend.Update(msg)
	}
	return m, cmd
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.detail.IsOpen() {
		var cmd tea.Cmd
		m.detail, cmd = m.detail.Update(msg)
		return m, cmd
	}
	if m.screen != ScreenDashboard {
		return m, nil
	}
	x, y := m.trendOrigin()
	col, row := msg.X-x, msg.Y-y
	if row >= 0 && row < components.TrendRows && col >= 0 {
		m.trend = m.trend.Hover(col)
	}
	return m, nil
}

func (m Model) focusRegion() (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.filters = m.filters.Blur()
	m.table = m.table.Blur()
	m.trend = m.trend.Blur()
	switch m.region {
	case RegionFilters:
		m.filters, cmd = m.filters.Focus()
	case RegionTable:
		m.table = m.table.Focus()
	case RegionTrend:
		m.trend = m.trend.Focus()
	}
	return m, cmd
}

func (m Model) switchScreen(s Screen) (Model, tea.Cmd) {
	if m.screen == s {
		return m, nil
	}
	m.screen = s
	if s == ScreenDashboard {
		m.statsForm = m.statsForm.Blur()
		return m.focusRegion()
	}

	m.filters = m.filters.Blur()
	m.table = m.table.Blur()
	var cmd tea.Cmd
	m.statsForm, cmd = m.statsForm.Focus()
	if m.statsReady {
		return m, cmd
	}
	m.statsReady = true
	m.statsForm = m.statsForm.SetCities(m.filters.Cities(), m.filters.City())
	next, bizCmd := m.loadBizcircles(m.statsForm.City())
	return next, tea.Batch(cmd, bizCmd)
}

func (m Model) handleHealth(msg healthMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.healthErr = msg.err
		return m.showToast(msg.err.Error(), true)
	}
	m.health = msg.health
	m.healthErr = nil

	m.filters = m.filters.SetCities(msg.health.Cities, m.config.City)
	city := m.filters.City()
	if city == "" {
		return m.toastKey(locale.KeyToastNeedCity, nil)
	}
	m.applyLocale(city)
	m.filter = m.filters.Filter()

	next, listCmd := m.loadList()
	next, trendCmd := next.loadTrend()
	next, newsCmd := next.loadNews(false)
	return next, tea.Batch(listCmd, trendCmd, newsCmd)
}

// search applies the form filter and reloads list and trend from page 1.
func (m Model) search() (Model, tea.Cmd) {
	filter := m.filters.Filter()
	if filter.City == "" {
		return m.toastKey(locale.KeyToastNeedCity, nil)
	}
	m.applyLocale(filter.City)
	m.filter = filter
	m.page.Page = 1

	next, listCmd := m.loadList()
	next, trendCmd := next.loadTrend()
	return next, tea.Batch(listCmd, trendCmd)
}

func (m Model) reset() (Model, tea.Cmd) {
	m.filters = m.filters.Reset()
	next, cmd := m.search()
	next, toastCmd := next.toastKey(locale.KeyToastReset, nil)
	return next, tea.Batch(cmd, toastCmd)
}

// refresh reloads list and trend for the applied filter from page 1.
func (m Model) refresh() (Model, tea.Cmd) {
	if m.filter.City == "" {
		return m.search()
	}
	m.page.Page = 1
	next, listCmd := m.loadList()
	next, trendCmd := next.loadTrend()
	return next, tea.Batch(listCmd, trendCmd)
}

// changeCity switches locale before anything is fetched so the skeleton and
// every label already render for the new city.
func (m Model) changeCity(city string) (Model, tea.Cmd) {
	m.filters = m.filters.SetCity(city)
	next, cmd := m.search()
	if next.filter.City == "" {
		return next, cmd
	}
	next, newsCmd := next.loadNews(false)
	prefs := savePrefs(next.config.Preferences, storage.UIPrefs{City: city, PageSize: next.page.PageSize})
	return next, tea.Batch(cmd, newsCmd, prefs)
}

func (m Model) gotoPage(delta int) (Model, tea.Cmd) {
	if m.lanes.loading(LaneList) {
		return m, nil
	}
	if (delta < 0 && !m.page.CanPrev()) || (delta > 0 && !m.page.CanNext()) {
		return m, nil
	}
	m.page.Page += delta
	return m.loadList()
}

// cyclePageSize supersedes any list request in flight.
func (m Model) cyclePageSize() (Model, tea.Cmd) {
	m.page.PageSize = model.NextPageSize(m.page.PageSize)
	m.page.Page = 1
	next, cmd := m.loadList()
	prefs := savePrefs(next.config.Preferences, storage.UIPrefs{City: next.filter.City, PageSize: next.page.PageSize})
	return next, tea.Batch(cmd, prefs)
}

func (m Model) loadList() (Model, tea.Cmd) {
	if m.filter.City == "" {
		return m.toastKey(locale.KeyToastNeedCity, nil)
	}
	ctx, token := m.lanes.start(LaneList)
	m.meta = MetaLoading
	m.table = m.table.SetTable(render.Skeleton(render.SkeletonCount(m.page.PageSize), m.ctx))
	return m, fetchListings(ctx, m.backend, token, m.filter, m.page)
}

func (m Model) handleList(msg listLoadedMsg) (tea.Model, tea.Cmd) {
	if !m.lanes.finish(LaneList, msg.token) {
		return m, nil
	}
	if msg.err != nil {
		if api.IsAborted(msg.err) {
			return m, nil
		}
		logLaneFailure(LaneList, msg.err, m.filter.City)
		m.meta = MetaFailed
		m.table = m.table.SetTable(render.ErrorTable(msg.err, m.ctx))
		return m.showToast(msg.err.Error(), true)
	}

	m.total = msg.page.Total
	m.page.Total = msg.page.Total
	requested := m.page.Page
	m.page = m.page.Clamp()
	if m.page.Page != requested {
		// The result shrank under the cursor; show the last page that exists.
		common.LogDebug("page out of range, reloading", common.Fields{
			"requested": requested,
			"page":      m.page.Page,
			"total":     m.page.Total,
		})
		return m.loadList()
	}
	m.meta = MetaDone
	m.table = m.table.SetTable(render.ListingTable(msg.page.Rows(), m.ctx))
	return m, nil
}

func (m Model) loadTrend() (Model, tea.Cmd) {
	ctx, token := m.lanes.start(LaneTrend)
	m.trend = m.trend.SetLoading(true)
	return m, fetchTrend(ctx, m.backend, token, m.filter)
}

func (m Model) handleTrend(msg trendLoadedMsg) (tea.Model, tea.Cmd) {
	if !m.lanes.finish(LaneTrend, msg.token) {
		return m, nil
	}
	if msg.err != nil {
		if api.IsAborted(msg.err) {
			return m, nil
		}
		logLaneFailure(LaneTrend, msg.err, m.filter.City)
		text := m.ctx.T(locale.KeyTrendFail, locale.Vars{"err": msg.err.Error()})
		m.trend = m.trend.SetError(text)
		return m.showToast(text, true)
	}
	m.trend = m.trend.SetPoints(msg.resp.Points)
	return m, nil
}

// loadNews fetches headlines for the applied city. Unless forced, a city
// fetched within the throttle window is not fetched again.
func (m Model) loadNews(force bool) (Model, tea.Cmd) {
	city := m.filter.City
	if city == "" {
		return m.toastKey(locale.KeyToastNeedCity, nil)
	}
	if !force && city == m.newsCity && m.config.Now().Sub(m.newsFetched) < m.config.NewsThrottle {
		return m, nil
	}
	ctx, token := m.lanes.start(LaneNews)
	m.news = m.news.SetLoading(true)
	return m, fetchNews(ctx, m.backend, token, city, m.config.NewsLimit)
}

func (m Model) handleNews(msg newsLoadedMsg) (tea.Model, tea.Cmd) {
	if !m.lanes.finish(LaneNews, msg.token) {
		return m, nil
	}
	if msg.err != nil {
		if api.IsAborted(msg.err) {
			return m, nil
		}
		logLaneFailure(LaneNews, msg.err, msg.city)
		text := m.ctx.T(locale.KeyNewsFail, locale.Vars{"err": msg.err.Error()})
		m.news = m.news.SetError(text)
		return m.showToast(text, true)
	}
	now := m.config.Now()
	m.newsCity = msg.city
	m.newsFetched = now
	m.news = m.news.SetNews(*msg.resp, now)
	return m, nil
}

func logLaneFailure(lane Lane, err error, city string) {
	common.LogError(err, "request failed", common.Fields{"lane": lane.String(), "city": city})
}

func (m Model) openDetail() (Model, tea.Cmd) {
	row, ok := m.table.Selected()
	if !ok {
		return m, nil
	}
	if row.Err != nil {
		slog.Debug("listing row failed to decode", "error", row.Err)
		return m.toastKey(locale.KeyToastParse, nil)
	}
	listing, err := model.DecodeListing(row.Raw)
	if err != nil {
		slog.Debug("listing detail failed to decode", "error", &api.ParseError{Err: err, Path: api.PathListings})
		return m.toastKey(locale.KeyToastParse, nil)
	}

	m.prevRegion = m.region
	m.detail = m.detail.Open(
		m.ctx.T(locale.KeyModalTitle, nil),
		m.ctx.T(locale.KeyOpenLink, nil),
		render.DetailView(listing, m.ctx),
		listing.DetailURL.String(),
	)
	return m, nil
}

func (m Model) open(url string) (Model, tea.Cmd) {
	if url == "" {
		return m.toastKey(locale.KeyToastNoLink, nil)
	}
	return m, openLink(m.config.Opener, url)
}
