package render

import (
	"strconv"

	"github.com/Veraticus/hpqaq/internal/locale"
	"github.com/Veraticus/hpqaq/internal/model"
)

// TrendItem is one row of the textual trend list.
type TrendItem struct {
	Month      string
	Samples    string
	AvgTotal   string
	AvgUnit    string
	UnitSuffix string
}

// TrendList renders the most recent points, newest first.
func TrendList(points []model.TrendPoint, ctx locale.Context) []TrendItem {
	n := min(ctx.TrendListSize(), len(points))
	if n == 0 {
		return nil
	}

	f := ctx.Format()
	suffix := ctx.T(locale.KeyUnitSuffix, nil)
	samples := ctx.T(locale.KeyTrendSamples, nil)

	items := make([]TrendItem, 0, n)
	for i := len(points) - 1; i >= len(points)-n; i-- {
		p := points[i]
		items = append(items, TrendItem{
			Month:      p.Month,
			Samples:    samples + " " + strconv.Itoa(p.Count),
			AvgTotal:   ctx.T(locale.KeyTrendAvgTotal, locale.Vars{"v": f.Num2(p.AvgTotalPrice)}),
			AvgUnit:    f.Num0(p.AvgUnitPrice),
			UnitSuffix: suffix,
		})
	}
	return items
}
