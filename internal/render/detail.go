package render

import (
	"github.com/Veraticus/hpqaq/internal/locale"
	"github.com/Veraticus/hpqaq/internal/model"
)

// DetailLine is one "label：value" entry of the detail view.
type DetailLine struct {
	Label string
	Value string
}

// String joins label and value with a full-width colon.
func (d DetailLine) String() string {
	return d.Label + "：" + d.Value
}

// DetailView renders the fixed detail field order. House id and region are
// never shown.
func DetailView(l model.Listing, ctx locale.Context) []DetailLine {
	f := ctx.Format()
	label := func(k locale.Key) string { return ctx.T(k, nil) }

	return []DetailLine{
		{Label: label(locale.KeyDetailCommunity), Value: locale.Text(l.Community)},
		{Label: label(locale.KeyDetailBiz), Value: locale.Text(l.Bizcircle)},
		{Label: label(locale.KeyDetailLayout), Value: locale.Text(l.Layout)},
		{Label: label(locale.KeyDetailArea), Value: f.Num2(l.AreaSqm) + " ㎡"},
		{Label: label(locale.KeyDetailUnit), Value: f.Num0(l.UnitPrice) + " " + label(locale.KeyUnitSuffix)},
		{Label: label(locale.KeyDetailTotal), Value: f.Num2(l.TotalPrice) + " " + label(locale.KeyTotalSuffix)},
		{Label: label(locale.KeyDetailOrient), Value: locale.Text(l.Orientation)},
		{Label: label(locale.KeyDetailYear), Value: locale.Text(l.BuildingYear)},
		{Label: label(locale.KeyDetailFloor), Value: locale.Text(l.Floor)},
		{Label: label(locale.KeyDetailDealDate), Value: locale.Text(l.DealDate)},
		{Label: label(locale.KeyDetailCrawled), Value: locale.Text(l.CrawlTime)},
		{Label: label(locale.KeyDetailURL), Value: locale.Text(l.DetailURL)},
	}
}
