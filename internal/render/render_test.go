package render

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/Veraticus/hpqaq/internal/locale"
	"github.com/Veraticus/hpqaq/internal/model"
	tuitesting "github.com/Veraticus/hpqaq/internal/tui/testing"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	mainland = locale.Resolve("beijing")
	taiwan   = locale.Resolve("taibei")
)

func listingRow(t *testing.T, body string) model.Row {
	t.Helper()
	var page model.ListingsPage
	require.NoError(t, json.Unmarshal([]byte(`{"items":[`+body+`]}`), &page))
	return page.Rows()[0]
}

func TestListingTable(t *testing.T) {
	row := listingRow(t, `{"house_id":"h1","region":"朝阳","bizcircle":"望京","community":"望京花园",
		"layout":"2室1厅","area_sqm":89.5,"unit_price_yuan_sqm":65000,"total_price_wan":581.75,
		"deal_date":"2024-03-02","detail_url":"https://example.com/h1"}`)
	bare := listingRow(t, `{"community":"无链接小区","area_sqm":null}`)

	table := ListingTable([]model.Row{row, bare}, mainland)
	assert.False(t, table.IsEmpty())
	assert.Equal(t, []string{"商圈", "小区", "户型", "面积(㎡)", "单价(元/㎡)", "总价(万)", "成交日期", "详情"}, table.Headers)
	require.Len(t, table.Rows, 2)

	assert.Equal(t, []string{"望京", "望京花园", "2室1厅", "89.5", "65,000", "581.75", "2024-03-02", LinkMark}, table.Rows[0].Cells)
	assert.True(t, table.Rows[0].HasLink())
	assert.JSONEq(t, string(row.Raw), string(table.Rows[0].Raw))

	assert.Equal(t, "-", table.Rows[1].Cells[0])
	assert.Equal(t, "-", table.Rows[1].Cells[3])
	assert.Equal(t, "-", table.Rows[1].Cells[7])
	assert.False(t, table.Rows[1].HasLink())
}

func TestListingTable_Empty(t *testing.T) {
	table := ListingTable(nil, mainland)
	assert.True(t, table.IsEmpty())
	assert.Equal(t, "暂无数据", table.Empty)
	assert.Equal(t, "暫無資料", ListingTable(nil, taiwan).Empty)

	failed := ErrorTable(errors.New("HTTP 500: boom"), mainland)
	assert.Equal(t, "加载失败：HTTP 500: boom", failed.Empty)
}

func TestListingTable_SameInputSameOutput(t *testing.T) {
	rows := []model.Row{
		listingRow(t, `{"bizcircle":"信义","community":"信义华厦","layout":"3房2厅","area_sqm":120,
			"unit_price_yuan_sqm":850000,"total_price_wan":10200,"deal_date":"2024-06-01"}`),
		listingRow(t, `{"community":"无链接小区"}`),
	}

	first := ListingTable(rows, taiwan)
	second := ListingTable(rows, taiwan)
	assert.Equal(t, first, second)

	cells := func(tb Table) [][]string {
		out := make([][]string, 0, len(tb.Rows))
		for _, r := range tb.Rows {
			out = append(out, r.Cells)
		}
		return out
	}
	assert.Equal(t,
		DrawTable([][]string{first.Headers}, cells(first)),
		DrawTable([][]string{second.Headers}, cells(second)))
}

func TestDrawTable(t *testing.T) {
	out := tuitesting.StripANSI(DrawTable(
		[][]string{{"", "北京", ""}, {"年月", "单价", "总价"}},
		[][]string{{"2024-01", "1,000", "5"}, {"2024-02", "100,000", "500"}},
	))
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 5)
	assert.Contains(t, lines[0], "北京")
	assert.Contains(t, lines[1], "单价")
	assert.Contains(t, lines[2], "─")

	end := func(line, cell string) int {
		i := strings.Index(line, cell)
		require.GreaterOrEqual(t, i, 0, "%q not in %q", cell, line)
		return lipgloss.Width(line[:i]) + lipgloss.Width(cell)
	}
	assert.Equal(t, end(lines[3], "1,000"), end(lines[4], "100,000"), "value columns are right aligned")
	assert.Equal(t, strings.Index(lines[3], "2024-01"), strings.Index(lines[4], "2024-02"))
}

func TestSkeleton(t *testing.T) {
	assert.Equal(t, 10, SkeletonCount(10))
	assert.Equal(t, 12, SkeletonCount(50))
	assert.Equal(t, 12, SkeletonCount(0))

	table := Skeleton(3, mainland)
	require.Len(t, table.Rows, 3)
	for _, r := range table.Rows {
		assert.True(t, r.Placeholder)
		assert.Len(t, r.Cells, len(ListingColumns))
	}
}

func TestDetailView(t *testing.T) {
	row := listingRow(t, `{"house_id":"secret-id","region":"secret-region","community":"望京花园",
		"area_sqm":89.5,"unit_price_yuan_sqm":65000,"total_price_wan":581.75}`)

	lines := DetailView(row.Listing, mainland)
	require.Len(t, lines, 12)

	labels := make([]string, len(lines))
	var joined strings.Builder
	for i, l := range lines {
		labels[i] = l.Label
		joined.WriteString(l.String() + "\n")
	}
	assert.Equal(t, []string{"小区", "商圈", "户型", "面积(㎡)", "单价", "总价", "朝向", "建成年份", "楼层", "成交日期", "抓取时间", "详情链接"}, labels)
	assert.Equal(t, "89.5 ㎡", lines[3].Value)
	assert.Equal(t, "65,000 元/㎡", lines[4].Value)
	assert.Equal(t, "581.75 万", lines[5].Value)
	assert.Equal(t, "-", lines[11].Value)
	assert.NotContains(t, joined.String(), "secret")

	tw := DetailView(row.Listing, taiwan)
	assert.Equal(t, "65,000 NT$/㎡", tw[4].Value)
	assert.Equal(t, "581.75 萬 NT$", tw[5].Value)
	assert.Equal(t, "小區", tw[0].Label)
}

func trendPoints(values ...float64) []model.TrendPoint {
	points := make([]model.TrendPoint, len(values))
	for i, v := range values {
		points[i] = model.TrendPoint{
			Month:         fmt.Sprintf("%d-%02d", 2021+i/12, i%12+1),
			AvgUnitPrice:  model.Num(v),
			AvgTotalPrice: model.Num(v / 100),
			Count:         i + 1,
		}
	}
	return points
}

func TestBuildSparkline(t *testing.T) {
	points := []model.TrendPoint{
		{Month: "2024-01", AvgUnitPrice: model.Num(50000), Count: 10},
		{Month: "2024-02", AvgUnitPrice: model.Num(52000), Count: 12},
	}

	s := BuildSparkline(points, mainland)
	require.False(t, s.Empty)
	assert.Equal(t, 50000.0, s.Min)
	assert.Equal(t, 52000.0, s.Max)
	assert.InDelta(t, 49800, s.AxisLow, 1e-9)
	assert.InDelta(t, 52200, s.AxisHigh, 1e-9)

	require.Len(t, s.Coords, 2)
	assert.InDelta(t, CanvasPad, s.Coords[0].X, 1e-9)
	assert.InDelta(t, CanvasWidth-CanvasPad, s.Coords[1].X, 1e-9)
	assert.InDelta(t, 186.667, s.Coords[0].Y, 1e-3)
	assert.InDelta(t, 33.333, s.Coords[1].Y, 1e-3)
	for _, c := range s.Coords {
		assert.Greater(t, c.Y, CanvasPad)
		assert.Less(t, c.Y, CanvasHeight-CanvasPad)
	}

	assert.True(t, strings.HasPrefix(s.Path, "M 18.0 186.7 C"))
	assert.True(t, strings.HasSuffix(s.Area, "Z"))
	assert.Equal(t, "50,000", s.MinLabel)
	assert.Equal(t, "52,000", s.MaxLabel)
	assert.Len(t, s.Ticks, 2)
}

func TestBuildSparkline_EmptyState(t *testing.T) {
	single := []model.TrendPoint{{Month: "2024-01", AvgUnitPrice: model.Num(50000)}}
	assert.True(t, BuildSparkline(single, mainland).Empty)
	assert.True(t, BuildSparkline(nil, mainland).Empty)

	oneFinite := []model.TrendPoint{
		{Month: "2024-01", AvgUnitPrice: model.Num(50000)},
		{Month: "2024-02"},
	}
	s := BuildSparkline(oneFinite, mainland)
	assert.True(t, s.Empty)
	assert.Equal(t, -1, s.Nearest(100))
	assert.Contains(t, s.SVG(), "暂无趋势数据")
}

func TestBuildSparkline_FlatSeries(t *testing.T) {
	s := BuildSparkline(trendPoints(30000, 30000, 30000), mainland)
	require.False(t, s.Empty)
	assert.InDelta(t, 29999.9, s.AxisLow, 1e-9)
	assert.InDelta(t, 30000.1, s.AxisHigh, 1e-9)
}

func TestBuildSparkline_Window(t *testing.T) {
	values := make([]float64, 40)
	for i := range values {
		values[i] = float64(40000 + i*100)
	}
	points := trendPoints(values...)

	cny := BuildSparkline(points, mainland)
	assert.Len(t, cny.Months, 12)
	assert.Equal(t, points[39].Month, cny.Months[11])
	assert.Len(t, cny.Ticks, 2)

	twd := BuildSparkline(points, taiwan)
	assert.Len(t, twd.Months, 36)
	require.Len(t, twd.Ticks, 3)
	assert.Equal(t, 18, twd.Ticks[1].Index)
}

func TestSparkline_NearestAndTooltip(t *testing.T) {
	points := trendPoints(50000, 51000, 52000, 53000)
	points[2].AvgUnitPrice = model.Number{}
	s := BuildSparkline(points, mainland)

	assert.Equal(t, 0, s.Nearest(0))
	assert.Equal(t, 3, s.Nearest(CanvasWidth))
	assert.NotEqual(t, 2, s.Nearest(s.Coords[2].X))
	assert.Equal(t, 3, s.Last())
	assert.Equal(t, 3, s.Step(1, 1))
	assert.Equal(t, 3, s.Step(3, 1))
	assert.Equal(t, 0, s.Step(1, -1))

	tip := s.Tooltip(1)
	assert.Equal(t, points[1].Month, tip.Month)
	assert.Equal(t, "51,000 元/㎡", tip.Value)
	assert.Equal(t, "样本 2", tip.Samples)
	assert.Equal(t, Tooltip{}, s.Tooltip(99))
}

func TestSparkline_SVG(t *testing.T) {
	s := BuildSparkline(trendPoints(50000, 52000, 51000), mainland)
	svg := s.SVG()
	assert.True(t, strings.HasPrefix(svg, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 600 220"`))
	assert.Contains(t, svg, `<path d="M 18.0`)
	assert.Equal(t, 3, strings.Count(svg, "<circle"))
	assert.Contains(t, svg, "52,000")
	assert.True(t, strings.HasSuffix(svg, "</svg>\n"))
}

func TestSparkline_Grid(t *testing.T) {
	s := BuildSparkline(trendPoints(10000, 20000), mainland)
	lines, owners := s.Grid(4, 3)
	require.Len(t, lines, 3)
	assert.Equal(t, []int{0, 0, 1, 1}, owners)
	for _, l := range lines {
		assert.Equal(t, 4, len([]rune(l)))
	}
	assert.Equal(t, "  ▆▆", lines[0])
	assert.Equal(t, "▂▂██", lines[2])

	none, _ := BuildSparkline(nil, mainland).Grid(4, 3)
	assert.Nil(t, none)
}

func TestTrendList(t *testing.T) {
	values := make([]float64, 15)
	for i := range values {
		values[i] = float64(50000 + i)
	}
	points := trendPoints(values...)

	items := TrendList(points, mainland)
	require.Len(t, items, 8)
	assert.Equal(t, points[14].Month, items[0].Month)
	assert.Equal(t, points[7].Month, items[7].Month)
	assert.Equal(t, "样本 15", items[0].Samples)
	assert.Equal(t, "元/㎡", items[0].UnitSuffix)
	assert.Equal(t, "50,014", items[0].AvgUnit)
	assert.Equal(t, "均总价（万）：500.14", items[0].AvgTotal)

	tw := TrendList(points, taiwan)
	require.Len(t, tw, 12)
	assert.Equal(t, "NT$/㎡", tw[0].UnitSuffix)

	assert.Nil(t, TrendList(nil, mainland))
	assert.Len(t, TrendList(points[:3], mainland), 3)
}

func TestNewsList(t *testing.T) {
	rows, ok := NewsList([]model.NewsItem{
		{Rank: 2, Title: "second"},
		{Title: "unranked"},
		{Rank: 1, Title: " first ", URL: "https://example.com/1"},
	})
	require.True(t, ok)
	require.Len(t, rows, 3)
	assert.Equal(t, "first", rows[0].Title)
	assert.Equal(t, "1", rows[0].Rank)
	assert.Equal(t, "second", rows[1].Title)
	assert.Equal(t, "unranked", rows[2].Title)
	assert.Equal(t, "3", rows[2].Rank)

	_, ok = NewsList(nil)
	assert.False(t, ok)
}
