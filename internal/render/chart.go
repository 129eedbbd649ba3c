package render

import (
	"errors"
	"fmt"
	"math"

	"github.com/Veraticus/hpqaq/internal/locale"
	"github.com/Veraticus/hpqaq/internal/model"
)

// View is a statistics presentation.
type View string

// Statistics views. ViewTotal exists only in compare mode.
const (
	ViewBar   View = "bar"
	ViewLine  View = "line"
	ViewBand  View = "band"
	ViewTable View = "table"
	ViewTotal View = "total"
)

// ErrUnsupportedView is returned for a view the mode does not offer.
var ErrUnsupportedView = errors.New("unsupported view")

// SingleViews are the views offered for one entity.
func SingleViews() []View {
	return []View{ViewBar, ViewLine, ViewBand, ViewTable}
}

// CompareViews are the views offered when comparing entities.
func CompareViews() []View {
	return []View{ViewBar, ViewLine, ViewTotal, ViewBand, ViewTable}
}

// ParseView validates a view name.
func ParseView(s string, compare bool) (View, error) {
	views := SingleViews()
	if compare {
		views = CompareViews()
	}
	for _, v := range views {
		if string(v) == s {
			return v, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedView, s)
}

// ViewLabel is the localized view name.
func ViewLabel(v View, ctx locale.Context) string {
	switch v {
	case ViewBar:
		return ctx.T(locale.KeyViewBar, nil)
	case ViewLine:
		return ctx.T(locale.KeyViewLine, nil)
	case ViewBand:
		return ctx.T(locale.KeyViewBand, nil)
	case ViewTotal:
		return ctx.T(locale.KeyViewTotal, nil)
	default:
		return ctx.T(locale.KeyViewTable, nil)
	}
}

// Color is a series colour pair.
type Color struct {
	Fill   string
	Stroke string
	// Term is the closest terminal colour.
	Term string
}

// Palette is reused cyclically across compared series.
var Palette = []Color{
	{Fill: "rgba(121, 97, 255, 0.7)", Stroke: "rgba(121, 97, 255, 1)", Term: "#7961FF"},
	{Fill: "rgba(0, 213, 255, 0.7)", Stroke: "rgba(0, 213, 255, 1)", Term: "#00D5FF"},
	{Fill: "rgba(255, 72, 180, 0.7)", Stroke: "rgba(255, 72, 180, 1)", Term: "#FF48B4"},
	{Fill: "rgba(255, 159, 64, 0.7)", Stroke: "rgba(255, 159, 64, 1)", Term: "#FF9F40"},
	{Fill: "rgba(75, 192, 192, 0.7)", Stroke: "rgba(75, 192, 192, 1)", Term: "#4BC0C0"},
	{Fill: "rgba(153, 102, 255, 0.7)", Stroke: "rgba(153, 102, 255, 1)", Term: "#9966FF"},
}

// PaletteColor returns the colour for series i.
func PaletteColor(i int) Color {
	return Palette[i%len(Palette)]
}

// Mark is how a dataset is drawn.
type Mark string

// Marks.
const (
	MarkBar  Mark = "bar"
	MarkLine Mark = "line"
)

// Dataset is one drawn series.
type Dataset struct {
	Label  string
	Mark   Mark
	Color  Color
	Values []*float64
	// Axis is 0 for unit price and 1 for total price.
	Axis int
	// Group links the upper, mean and lower lines of one band.
	Group int
	Fill  bool
}

// StatTable is the tabular form of a statistics result.
type StatTable struct {
	// Headers has one row for single mode and two for compare mode, where
	// each entity label spans a unit and a total column.
	Headers [][]string
	Rows    [][]string
}

// Chart is the view-model handed to the chart surface.
type Chart struct {
	Table    *StatTable
	View     View
	Title    string
	Labels   []string
	Datasets []Dataset
	Axes     []string
}

// BandSpread is the band half-width for a month with count samples.
func BandSpread(count int) float64 {
	return math.Sqrt(float64(count)) * 800
}

// Band returns the band bounds around mean. The lower bound is never
// negative.
func Band(mean float64, count int) (lower, upper float64) {
	spread := BandSpread(count)
	return math.Max(0, mean-spread), mean + spread
}

// Scope names a city, or "city - bizcircle".
func Scope(city, bizcircle string) string {
	if bizcircle == "" {
		return locale.CityName(city)
	}
	return locale.CityName(city) + " - " + bizcircle
}

// SingleDescription is the result line for a single query.
func SingleDescription(scope string, r model.MonthRange, ctx locale.Context) string {
	return ctx.T(locale.KeyStatDescSingle, locale.Vars{"scope": scope, "start": r.Start, "end": r.End})
}

// CompareDescription is the result line for a comparison.
func CompareDescription(byBizcircle bool, r model.MonthRange, ctx locale.Context) string {
	kind := ctx.T(locale.KeyStatByCities, nil)
	if byBizcircle {
		kind = ctx.T(locale.KeyStatByBiz, nil)
	}
	return ctx.T(locale.KeyStatDescCompare, locale.Vars{"type": kind, "start": r.Start, "end": r.End})
}

func value(n model.Number) *float64 {
	return n.Ptr()
}

func unitAxes(ctx locale.Context) []string {
	return []string{ctx.T(locale.KeySeriesAvgUnit, nil)}
}

// BuildSingleChart builds view for one entity's monthly rows.
func BuildSingleChart(view View, rows []model.StatRow, scope string, ctx locale.Context) (Chart, error) {
	labels := make([]string, len(rows))
	units := make([]*float64, len(rows))
	totals := make([]*float64, len(rows))
	for i, r := range rows {
		labels[i] = r.YearMonth()
		units[i] = value(r.AvgUnitPrice)
		totals[i] = value(r.AvgTotalPrice)
	}

	c := Chart{View: view, Labels: labels}
	vars := locale.Vars{"scope": scope}
	unitLabel := ctx.T(locale.KeySeriesAvgUnit, nil)
	totalLabel := ctx.T(locale.KeySeriesAvgTotal, nil)

	switch view {
	case ViewBar, ViewLine:
		mark, key := MarkBar, locale.KeyChartBar
		if view == ViewLine {
			mark, key = MarkLine, locale.KeyChartLine
		}
		c.Title = ctx.T(key, vars)
		c.Axes = []string{unitLabel, totalLabel}
		c.Datasets = []Dataset{
			{Label: unitLabel, Mark: mark, Color: Palette[0], Values: units},
			{Label: totalLabel, Mark: mark, Color: Palette[1], Values: totals, Axis: 1},
		}
	case ViewBand:
		c.Title = ctx.T(locale.KeyChartBand, vars)
		c.Axes = unitAxes(ctx)
		lower, upper := bandValues(rows)
		c.Datasets = []Dataset{
			{Label: ctx.T(locale.KeySeriesUpper, nil), Mark: MarkLine, Color: Palette[3], Values: upper, Fill: true},
			{Label: ctx.T(locale.KeySeriesMean, nil), Mark: MarkLine, Color: Palette[0], Values: units},
			{Label: ctx.T(locale.KeySeriesLower, nil), Mark: MarkLine, Color: Palette[1], Values: lower},
		}
	case ViewTable:
		c.Title = ctx.T(locale.KeyStatTitle, nil)
		c.Table = singleTable(rows, ctx)
	default:
		return Chart{}, fmt.Errorf("%w in single mode: %q", ErrUnsupportedView, view)
	}
	return c, nil
}

func bandValues(rows []model.StatRow) (lower, upper []*float64) {
	lower = make([]*float64, len(rows))
	upper = make([]*float64, len(rows))
	for i, r := range rows {
		if !r.AvgUnitPrice.Finite() {
			continue
		}
		lo, hi := Band(r.AvgUnitPrice.Value, r.Count)
		lower[i], upper[i] = &lo, &hi
	}
	return lower, upper
}

func singleTable(rows []model.StatRow, ctx locale.Context) *StatTable {
	f := ctx.Format()
	t := &StatTable{
		Headers: [][]string{{
			ctx.T(locale.KeyColYearMonth, nil),
			ctx.T(locale.KeyColAvgUnit, nil),
			ctx.T(locale.KeyColAvgTotal, nil),
			ctx.T(locale.KeyColCount, nil),
		}},
		Rows: make([][]string, 0, len(rows)),
	}
	for _, r := range rows {
		t.Rows = append(t.Rows, []string{
			r.YearMonth(),
			f.Num0(r.AvgUnitPrice),
			f.Fixed2(r.AvgTotalPrice),
			f.Num0(r.Count),
		})
	}
	return t
}

// BuildCompareChart builds view for aligned peer series.
func BuildCompareChart(view View, series []model.Series, ctx locale.Context) (Chart, error) {
	aligned := AlignSeries(series)
	c := Chart{View: view, Labels: aligned.Months}

	pick := func(si int, get func(model.StatRow) model.Number) []*float64 {
		out := make([]*float64, len(aligned.Months))
		for mi, cell := range aligned.Cells[si] {
			if cell != nil {
				out[mi] = value(get(*cell))
			}
		}
		return out
	}
	unit := func(r model.StatRow) model.Number { return r.AvgUnitPrice }
	total := func(r model.StatRow) model.Number { return r.AvgTotalPrice }

	switch view {
	case ViewBar, ViewLine, ViewTotal:
		mark, key, get, axis := MarkBar, locale.KeyCompareBar, unit, 0
		switch view {
		case ViewLine:
			mark, key = MarkLine, locale.KeyCompareLine
		case ViewTotal:
			key, get, axis = locale.KeyCompareTotal, total, 1
		}
		c.Title = ctx.T(key, nil)
		if axis == 1 {
			c.Axes = []string{"", ctx.T(locale.KeySeriesAvgTotal, nil)}
		} else {
			c.Axes = unitAxes(ctx)
		}
		for si, s := range series {
			c.Datasets = append(c.Datasets, Dataset{
				Label:  s.Label,
				Mark:   mark,
				Color:  PaletteColor(si),
				Values: pick(si, get),
				Axis:   axis,
			})
		}
	case ViewBand:
		c.Title = ctx.T(locale.KeyCompareBand, nil)
		c.Axes = unitAxes(ctx)
		for si, s := range series {
			lower := make([]*float64, len(aligned.Months))
			upper := make([]*float64, len(aligned.Months))
			for mi, cell := range aligned.Cells[si] {
				if cell == nil || !cell.AvgUnitPrice.Finite() {
					continue
				}
				lo, hi := Band(cell.AvgUnitPrice.Value, cell.Count)
				lower[mi], upper[mi] = &lo, &hi
			}
			color := PaletteColor(si)
			vars := locale.Vars{"label": s.Label}
			c.Datasets = append(c.Datasets,
				Dataset{Label: ctx.T(locale.KeySeriesUpperOf, vars), Mark: MarkLine, Color: color, Values: upper, Group: si, Fill: true},
				Dataset{Label: s.Label, Mark: MarkLine, Color: color, Values: pick(si, unit), Group: si},
				Dataset{Label: ctx.T(locale.KeySeriesLowerOf, vars), Mark: MarkLine, Color: color, Values: lower, Group: si},
			)
		}
	case ViewTable:
		c.Title = ctx.T(locale.KeyStatTitle, nil)
		c.Table = compareTable(series, aligned, ctx)
	default:
		return Chart{}, fmt.Errorf("%w in compare mode: %q", ErrUnsupportedView, view)
	}
	return c, nil
}

func compareTable(series []model.Series, aligned Aligned, ctx locale.Context) *StatTable {
	f := ctx.Format()
	top := []string{ctx.T(locale.KeyColYearMonth, nil)}
	sub := []string{""}
	for _, s := range series {
		top = append(top, s.Label, "")
		sub = append(sub, ctx.T(locale.KeyColUnit, nil), ctx.T(locale.KeyColTotal, nil))
	}

	t := &StatTable{Headers: [][]string{top, sub}, Rows: make([][]string, 0, len(aligned.Months))}
	for mi, month := range aligned.Months {
		row := []string{month}
		for si := range series {
			cell := aligned.Cells[si][mi]
			if cell == nil {
				row = append(row, locale.Missing, locale.Missing)
				continue
			}
			row = append(row, f.Num0(cell.AvgUnitPrice), f.Fixed2(cell.AvgTotalPrice))
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}
