package tui

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/Veraticus/hpqaq/internal/api"
	"github.com/Veraticus/hpqaq/internal/locale"
	"github.com/Veraticus/hpqaq/internal/model"
	"github.com/Veraticus/hpqaq/internal/render"
	"github.com/Veraticus/hpqaq/internal/tui/components"
	tuitesting "github.com/Veraticus/hpqaq/internal/tui/testing"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBackend struct {
	historical map[string]*model.HistoricalResponse
	failCity   string
	mu         sync.Mutex
	calls      []string
}

func (f *fakeBackend) record(call string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call)
}

func (f *fakeBackend) Health(context.Context) (*model.Health, error) {
	f.record("health")
	return &model.Health{OK: true, Cities: []string{"bj", "taibei"}}, nil
}

func (f *fakeBackend) Listings(_ context.Context, filter model.Filter, _ model.PageState) (*model.ListingsPage, error) {
	f.record("listings:" + filter.City)
	return &model.ListingsPage{}, nil
}

func (f *fakeBackend) PriceTrend(_ context.Context, filter model.Filter) (*model.TrendResponse, error) {
	f.record("trend:" + filter.City)
	return &model.TrendResponse{}, nil
}

func (f *fakeBackend) FangNews(_ context.Context, city string, _ int) (*model.NewsResponse, error) {
	f.record("news:" + city)
	return &model.NewsResponse{}, nil
}

func (f *fakeBackend) Bizcircles(_ context.Context, city string) ([]string, error) {
	f.record("bizcircles:" + city)
	return []string{"望京", "国贸"}, nil
}

func (f *fakeBackend) HistoricalAvgPrice(ctx context.Context, q api.HistoricalQuery) (*model.HistoricalResponse, error) {
	f.record("historical:" + q.City + "/" + q.Bizcircle)
	if q.City == f.failCity {
		return nil, &api.RequestError{Path: api.PathHistorical, Status: 500, Body: "boom"}
	}
	if r, ok := f.historical[q.City]; ok {
		return r, nil
	}
	return &model.HistoricalResponse{OK: true}, nil
}

var t0 = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestModel(t *testing.T) (Model, *tuitesting.Clock) {
	t.Helper()
	clock := tuitesting.NewClock(t0)
	m := New(
		WithBackend(&fakeBackend{}),
		WithClock(clock.Now),
		WithSize(120, 40),
		WithOpener(func(string) error { return nil }),
	)
	return m, clock
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	mm, ok := next.(Model)
	require.True(t, ok)
	return mm, cmd
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// ready delivers a health answer, which starts the first list, trend and news loads.
func ready(t *testing.T, m Model) Model {
	t.Helper()
	m, cmd := update(t, m, healthMsg{health: &model.Health{OK: true, Cities: []string{"bj", "taibei"}}})
	require.NotNil(t, cmd)
	return m
}

func listingPage(total int, items ...string) *model.ListingsPage {
	page := &model.ListingsPage{Total: total, Page: 1, PageSize: 20}
	for _, it := range items {
		page.Items = append(page.Items, json.RawMessage(it))
	}
	return page
}

const listingJSON = `{"house_id":"1","region":"朝阳","community":"望京花园","bizcircle":"望京","layout":"2室1厅",
"area_sqm":89.5,"unit_price_yuan_sqm":52000,"total_price_wan":465.4,"deal_date":"2024-05-01",
"detail_url":"https://example.com/1"}`

func TestHealthStartsAllLanes(t *testing.T) {
	m, _ := newTestModel(t)
	m = ready(t, m)

	assert.Equal(t, "bj", m.Filter().City)
	assert.Equal(t, locale.Hans, m.Locale().Variant)
	assert.True(t, m.Loading(LaneList))
	assert.True(t, m.Loading(LaneTrend))
	assert.True(t, m.Loading(LaneNews))
	assert.Equal(t, MetaLoading, m.meta)
}

func TestHealthWithoutCitiesPromptsForCity(t *testing.T) {
	m, _ := newTestModel(t)
	m, _ = update(t, m, healthMsg{health: &model.Health{OK: true}})

	assert.Equal(t, locale.T(locale.Hans, locale.KeyToastNeedCity, nil), m.Toast())
	assert.False(t, m.Loading(LaneList))
	assert.False(t, m.Loading(LaneTrend))
}

func TestHealthFailure(t *testing.T) {
	m, _ := newTestModel(t)
	m, _ = update(t, m, healthMsg{err: errors.New("connection refused")})

	assert.Equal(t, "connection refused", m.Toast())
	view := tuitesting.StripANSI(m.View())
	assert.Contains(t, view, locale.T(locale.Hans, locale.KeyBadgeAPIBad, nil))
}

func TestStaleListResultIsDropped(t *testing.T) {
	m, _ := newTestModel(t)
	m = ready(t, m)
	first := m.lanes.token(LaneList)

	m, _ = update(t, m, keyRunes("r"))
	second := m.lanes.token(LaneList)
	require.NotEqual(t, first, second)

	m, _ = update(t, m, listLoadedMsg{token: first, page: listingPage(99, listingJSON)})
	assert.True(t, m.Loading(LaneList))
	assert.Equal(t, MetaLoading, m.meta)

	m, _ = update(t, m, listLoadedMsg{token: second, page: listingPage(1, listingJSON)})
	assert.False(t, m.Loading(LaneList))
	assert.Equal(t, MetaDone, m.meta)
	assert.Equal(t, 1, m.Page().Total)
}

func TestAbortedResultIsSwallowed(t *testing.T) {
	m, _ := newTestModel(t)
	m = ready(t, m)

	aborted := fmt.Errorf("%s: %w", api.PathListings, api.ErrAborted)
	m, _ = update(t, m, listLoadedMsg{token: m.lanes.token(LaneList), err: aborted})

	assert.Empty(t, m.Toast())
	assert.NotEqual(t, MetaFailed, m.meta)
}

func TestFailureIsIsolatedToItsLane(t *testing.T) {
	m, _ := newTestModel(t)
	m = ready(t, m)

	m, _ = update(t, m, listLoadedMsg{token: m.lanes.token(LaneList), page: listingPage(1, listingJSON)})
	m, _ = update(t, m, trendLoadedMsg{token: m.lanes.token(LaneTrend), err: &api.RequestError{Status: 502, Body: "bad gateway"}})

	assert.Equal(t, MetaDone, m.meta)
	assert.True(t, m.Loading(LaneNews))
	assert.Contains(t, m.Toast(), "HTTP 502")
	assert.Contains(t, tuitesting.StripANSI(m.trend.View()), "HTTP 502")

	row, ok := m.table.Selected()
	require.True(t, ok)
	assert.Equal(t, "望京", row.Cells[0])
}

func TestCityChangeAppliesLocaleBeforeFetching(t *testing.T) {
	m, _ := newTestModel(t)
	m = ready(t, m)

	m, cmd := update(t, m, components.CityChangedMsg{City: "taibei"})
	require.NotNil(t, cmd)

	assert.Equal(t, locale.Hant, m.Locale().Variant)
	assert.Equal(t, locale.TWD, m.Locale().Currency)
	assert.Equal(t, "taibei", m.Filter().City)
	assert.Equal(t, locale.T(locale.Hant, locale.KeyDescFilters, nil), m.strings.Label(idDescFilters))
	assert.True(t, m.Loading(LaneList))
	assert.True(t, m.Loading(LaneNews))
	assert.Equal(t, 1, m.Page().Page)
}

func TestSearchWithoutCityShortCircuits(t *testing.T) {
	m, _ := newTestModel(t)

	m, cmd := m.search()
	require.NotNil(t, cmd)
	assert.Equal(t, locale.T(locale.Hans, locale.KeyToastNeedCity, nil), m.Toast())
	assert.False(t, m.Loading(LaneList))
}

func TestNewsThrottle(t *testing.T) {
	m, clock := newTestModel(t)
	m = ready(t, m)
	m, _ = update(t, m, newsLoadedMsg{token: m.lanes.token(LaneNews), city: "bj", resp: &model.NewsResponse{
		Items: []model.NewsItem{{Title: "楼市新政", Rank: 1}},
	}})
	require.False(t, m.Loading(LaneNews))

	next, cmd := m.loadNews(false)
	assert.Nil(t, cmd)
	assert.False(t, next.Loading(LaneNews))

	next, cmd = m.loadNews(true)
	assert.NotNil(t, cmd)
	assert.True(t, next.Loading(LaneNews))

	clock.Advance(4 * time.Minute)
	_, cmd = m.loadNews(false)
	assert.Nil(t, cmd)

	clock.Advance(2 * time.Minute)
	_, cmd = m.loadNews(false)
	assert.NotNil(t, cmd)
}

func TestPagerDisabledWhileLoading(t *testing.T) {
	m, _ := newTestModel(t)
	m = ready(t, m)

	m, _ = update(t, m, keyRunes("]"))
	assert.Equal(t, 1, m.Page().Page)

	m, _ = update(t, m, listLoadedMsg{token: m.lanes.token(LaneList), page: listingPage(45, listingJSON)})
	m, _ = update(t, m, trendLoadedMsg{token: m.lanes.token(LaneTrend), resp: &model.TrendResponse{}})
	assert.Equal(t, 3, m.Page().MaxPage())

	m, _ = update(t, m, keyRunes("["))
	assert.Equal(t, 1, m.Page().Page)

	m, _ = update(t, m, keyRunes("]"))
	assert.Equal(t, 2, m.Page().Page)
	assert.True(t, m.Loading(LaneList))
	assert.False(t, m.Loading(LaneTrend), "paging reloads the list only")
}

func TestPageSizeCycle(t *testing.T) {
	m, _ := newTestModel(t)
	m = ready(t, m)
	m, _ = update(t, m, listLoadedMsg{token: m.lanes.token(LaneList), page: listingPage(45, listingJSON)})

	m, _ = update(t, m, keyRunes("s"))
	assert.Equal(t, 50, m.Page().PageSize)
	assert.Equal(t, 1, m.Page().Page)
	assert.True(t, m.Loading(LaneList))
}

func TestDetailModal(t *testing.T) {
	m, _ := newTestModel(t)
	m = ready(t, m)
	m, _ = update(t, m, listLoadedMsg{token: m.lanes.token(LaneList), page: listingPage(1, listingJSON)})

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, RegionTable, m.Focus())

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, m.DetailOpen())
	view := tuitesting.StripANSI(m.View())
	assert.Contains(t, view, "望京花园")
	assert.NotContains(t, view, "朝阳")

	// Keys other than close stay inside the modal.
	m, _ = update(t, m, keyRunes("r"))
	assert.True(t, m.DetailOpen())
	assert.False(t, m.Loading(LaneList))

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.DetailOpen())
	require.NotNil(t, cmd)
	m, _ = update(t, m, cmd())
	assert.Equal(t, RegionTable, m.Focus())
}

func TestDetailModalBackdropClick(t *testing.T) {
	m, _ := newTestModel(t)
	m = ready(t, m)
	m, _ = update(t, m, listLoadedMsg{token: m.lanes.token(LaneList), page: listingPage(1, listingJSON)})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, m.DetailOpen())

	x, y, _, _ := m.detail.Bounds()
	m, _ = update(t, m, tea.MouseMsg{X: x + 1, Y: y + 1, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.True(t, m.DetailOpen())

	m, _ = update(t, m, tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.False(t, m.DetailOpen())
}

func TestUndecodableRowShowsParseToast(t *testing.T) {
	m, _ := newTestModel(t)
	m = ready(t, m)
	m, _ = update(t, m, listLoadedMsg{token: m.lanes.token(LaneList), page: listingPage(1, `{"area_sqm":{}}`)})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, m.DetailOpen())
	assert.Equal(t, locale.T(locale.Hans, locale.KeyToastParse, nil), m.Toast())
}

func TestOpenLinkWithoutURL(t *testing.T) {
	m, _ := newTestModel(t)
	m = ready(t, m)
	m, _ = update(t, m, listLoadedMsg{token: m.lanes.token(LaneList), page: listingPage(1, `{"community":"无链接"}`)})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})

	m, _ = update(t, m, keyRunes("o"))
	assert.Equal(t, locale.T(locale.Hans, locale.KeyToastNoLink, nil), m.Toast())
}

func TestOpenLinkCallsOpener(t *testing.T) {
	var opened string
	m := New(
		WithBackend(&fakeBackend{}),
		WithOpener(func(url string) error { opened = url; return nil }),
	)
	m = ready(t, m)
	m, _ = update(t, m, listLoadedMsg{token: m.lanes.token(LaneList), page: listingPage(1, listingJSON)})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})

	m, cmd := update(t, m, keyRunes("o"))
	require.NotNil(t, cmd)
	m, _ = update(t, m, cmd())
	assert.Equal(t, "https://example.com/1", opened)
	assert.Equal(t, locale.T(locale.Hans, locale.KeyToastOpened, nil), m.Toast())
}

func TestToastExpiry(t *testing.T) {
	m, _ := newTestModel(t)
	m, _ = m.showToast("first", false)
	m, _ = m.showToast("second", false)

	m, _ = update(t, m, components.ToastExpiredMsg{ID: 1})
	assert.Equal(t, "second", m.Toast())

	m, _ = update(t, m, components.ToastExpiredMsg{ID: 2})
	assert.Empty(t, m.Toast())
}

func TestStatsValidation(t *testing.T) {
	m, _ := newTestModel(t)
	m = ready(t, m)
	m, _ = update(t, m, keyRunes("2"))
	require.Equal(t, ScreenStats, m.Screen())
	assert.True(t, m.Loading(LaneBizcircles))

	m.statsForm = m.statsForm.SetRange(model.MonthRange{Start: "2025-01", End: "2024-01"})
	m, _ = m.submitStats()
	assert.Equal(t, locale.T(locale.Hans, locale.KeyStatRangeInvalid, nil), m.Toast())
	assert.False(t, m.Loading(LaneStats))

	m.statsForm = m.statsForm.SetRange(model.DefaultMonthRange()).SetCompare(true).Toggle("bj")
	m, _ = m.submitStats()
	assert.Equal(t, locale.T(locale.Hans, locale.KeyStatNeedCities, nil), m.Toast())
	assert.False(t, m.Loading(LaneStats))
}

func TestStatsSingleQueryAndViewSwitch(t *testing.T) {
	m, _ := newTestModel(t)
	m = ready(t, m)
	m, _ = update(t, m, keyRunes("2"))

	m, cmd := m.submitStats()
	require.NotNil(t, cmd)
	require.True(t, m.Loading(LaneStats))

	rows := []model.StatRow{
		{RawYearMonth: "2024-01", AvgUnitPrice: model.Num(52000), AvgTotalPrice: model.Num(460), Count: 10},
		{Year: 2024, Month: 2, AvgUnitPrice: model.Num(53000), AvgTotalPrice: model.Num(470), Count: 12},
	}
	m, _ = update(t, m, statsLoadedMsg{token: m.lanes.token(LaneStats), query: m.statsForm.Query(), rows: rows})

	chart, ok := m.Chart()
	require.True(t, ok)
	assert.Equal(t, render.ViewBar, chart.View)
	assert.Equal(t, []string{"2024-01", "2024-02"}, chart.Labels)
	assert.Contains(t, m.Toast(), "北京")
	assert.Contains(t, m.statsDesc, "2023-01")

	m.statsForm = m.statsForm.SetView(render.ViewLine)
	m, _ = update(t, m, components.StatsViewChangedMsg{View: render.ViewLine})
	chart, ok = m.Chart()
	require.True(t, ok)
	assert.Equal(t, render.ViewLine, chart.View)
	assert.Equal(t, 1, m.chart.Destroyed())
	assert.Equal(t, 2, m.chart.Serial())
}

func TestStatsNotOK(t *testing.T) {
	m, _ := newTestModel(t)
	m = ready(t, m)
	m, _ = update(t, m, keyRunes("2"))
	m, _ = m.submitStats()

	m, _ = update(t, m, statsLoadedMsg{token: m.lanes.token(LaneStats), query: m.statsForm.Query(), failed: "no data"})
	assert.Contains(t, m.Toast(), locale.T(locale.Hans, locale.KeyStatQueryFail, nil))
	_, ok := m.Chart()
	assert.False(t, ok)
}

func TestStatsModeChangeDropsInFlightResult(t *testing.T) {
	m, _ := newTestModel(t)
	m = ready(t, m)
	m, _ = update(t, m, keyRunes("2"))
	m, _ = m.submitStats()
	token := m.lanes.token(LaneStats)

	m.statsForm = m.statsForm.SetCompare(true)
	m, _ = update(t, m, components.StatsModeChangedMsg{Compare: true})
	m, _ = update(t, m, statsLoadedMsg{token: token, rows: []model.StatRow{{RawYearMonth: "2024-01"}}})

	_, ok := m.Chart()
	assert.False(t, ok)
}

func TestFetchCompare(t *testing.T) {
	backend := &fakeBackend{historical: map[string]*model.HistoricalResponse{
		"bj": {OK: true, Data: []model.StatRow{{RawYearMonth: "2024-01", Count: 3}}},
		"sh": {OK: false, Error: "no data"},
	}}
	targets := []model.CompareTarget{
		{City: "bj", Label: "北京"},
		{City: "sh", Label: "上海"},
	}

	series, err := FetchCompare(context.Background(), backend, model.DefaultMonthRange(), targets)
	require.NoError(t, err)
	require.Len(t, series, 2)
	assert.Equal(t, "北京", series[0].Label)
	assert.Len(t, series[0].Rows, 1)
	assert.Empty(t, series[1].Rows)

	backend.failCity = "sh"
	_, err = FetchCompare(context.Background(), backend, model.DefaultMonthRange(), targets)
	var reqErr *api.RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Contains(t, err.Error(), "上海")
}

func TestDashboardView(t *testing.T) {
	m, _ := newTestModel(t)
	m = ready(t, m)
	m, _ = update(t, m, listLoadedMsg{token: m.lanes.token(LaneList), page: listingPage(45, listingJSON)})

	view := tuitesting.StripANSI(m.View())
	assert.True(t, tuitesting.ContainsInOrder(view,
		locale.T(locale.Hans, locale.KeyAppTitle, nil),
		locale.T(locale.Hans, locale.KeyTitleFilters, nil),
		"望京花园",
	))
	assert.Contains(t, view, "第 1 / 3 页")
	assert.Contains(t, view, "北京, 台北")
}

func TestQuitCancelsLanes(t *testing.T) {
	m, _ := newTestModel(t)
	m = ready(t, m)

	m, cmd := update(t, m, keyRunes("q"))
	require.NotNil(t, cmd)
	assert.False(t, m.Loading(LaneList))
	assert.Empty(t, m.View())
}

func TestStaleTrendResultIsDropped(t *testing.T) {
	m, _ := newTestModel(t)
	m = ready(t, m)
	first := m.lanes.token(LaneTrend)

	m, _ = update(t, m, keyRunes("r"))
	second := m.lanes.token(LaneTrend)
	require.NotEqual(t, first, second)

	stale := &model.TrendResponse{Points: []model.TrendPoint{
		{Month: "2020-01", AvgUnitPrice: model.Num(10000), Count: 1},
		{Month: "2020-02", AvgUnitPrice: model.Num(11000), Count: 1},
	}}
	m, _ = update(t, m, trendLoadedMsg{token: first, resp: stale})
	assert.True(t, m.Loading(LaneTrend))
	assert.Empty(t, m.trend.Items())

	current := &model.TrendResponse{Points: []model.TrendPoint{
		{Month: "2024-01", AvgUnitPrice: model.Num(50000), Count: 3},
		{Month: "2024-02", AvgUnitPrice: model.Num(51000), Count: 4},
	}}
	m, _ = update(t, m, trendLoadedMsg{token: second, resp: current})
	assert.False(t, m.Loading(LaneTrend))
	require.Len(t, m.trend.Items(), 2)
	assert.Equal(t, "2024-02", m.trend.Items()[0].Month)
}

func TestStaleNewsResultIsDropped(t *testing.T) {
	m, _ := newTestModel(t)
	m = ready(t, m)
	first := m.lanes.token(LaneNews)

	m, _ = update(t, m, keyRunes("n"))
	second := m.lanes.token(LaneNews)
	require.NotEqual(t, first, second)

	m, _ = update(t, m, newsLoadedMsg{token: second, city: "bj", resp: &model.NewsResponse{
		Items: []model.NewsItem{{Title: "B", Rank: 1}},
	}})
	m, _ = update(t, m, newsLoadedMsg{token: first, city: "bj", resp: &model.NewsResponse{
		Items: []model.NewsItem{{Title: "A", Rank: 1}},
	}})

	rows := m.news.Rows()
	require.Len(t, rows, 1)
	assert.Equal(t, "B", rows[0].Title)
	assert.False(t, m.Loading(LaneNews))
}

func TestRefreshStartsFromFirstPage(t *testing.T) {
	m, _ := newTestModel(t)
	m = ready(t, m)
	m, _ = update(t, m, listLoadedMsg{token: m.lanes.token(LaneList), page: listingPage(57, listingJSON)})
	m, _ = update(t, m, keyRunes("]"))
	m, _ = update(t, m, listLoadedMsg{token: m.lanes.token(LaneList), page: listingPage(57, listingJSON)})
	m, _ = update(t, m, keyRunes("]"))
	m, _ = update(t, m, listLoadedMsg{token: m.lanes.token(LaneList), page: listingPage(57, listingJSON)})
	require.Equal(t, 3, m.Page().Page)

	m, _ = update(t, m, keyRunes("r"))
	assert.Equal(t, 1, m.Page().Page)

	m, _ = update(t, m, listLoadedMsg{token: m.lanes.token(LaneList), page: listingPage(30, listingJSON)})
	assert.Equal(t, 1, m.Page().Page)
	assert.Equal(t, 2, m.Page().MaxPage())
	assert.Equal(t, MetaDone, m.meta)
}

func TestShrunkResultReloadsLastPage(t *testing.T) {
	m, _ := newTestModel(t)
	m = ready(t, m)
	m.page.Page = 3
	requested := m.lanes.token(LaneList)

	m, cmd := update(t, m, listLoadedMsg{token: requested, page: listingPage(30)})
	require.NotNil(t, cmd)
	assert.Equal(t, 2, m.Page().Page)
	assert.True(t, m.Loading(LaneList))
	assert.NotEqual(t, requested, m.lanes.token(LaneList))
	assert.Equal(t, MetaLoading, m.meta)

	m, _ = update(t, m, listLoadedMsg{token: m.lanes.token(LaneList), page: listingPage(30, listingJSON)})
	assert.Equal(t, 2, m.Page().Page)
	assert.Equal(t, MetaDone, m.meta)
	view := tuitesting.StripANSI(m.View())
	assert.Contains(t, view, locale.T(locale.Hans, locale.KeyPager, locale.Vars{"p": 2, "m": 2}))
}

func TestPageSizeChangeSupersedesInFlightList(t *testing.T) {
	m, _ := newTestModel(t)
	m = ready(t, m)
	require.True(t, m.Loading(LaneList))
	first := m.lanes.token(LaneList)

	m, cmd := update(t, m, keyRunes("s"))
	require.NotNil(t, cmd)
	assert.Equal(t, 50, m.Page().PageSize)
	assert.NotEqual(t, first, m.lanes.token(LaneList))

	m, _ = update(t, m, listLoadedMsg{token: first, page: listingPage(99, listingJSON)})
	assert.True(t, m.Loading(LaneList))
	assert.Zero(t, m.Page().Total)
}

func TestInitStartsCursorBlink(t *testing.T) {
	m := New()
	cmd := m.Init()
	require.NotNil(t, cmd)
	assert.NotNil(t, cmd())
}
