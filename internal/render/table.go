// Package render turns fetched data and a locale into view-models for the
// terminal and SVG outputs. Functions here do no I/O.
package render

import (
	"encoding/json"
	"strings"

	"github.com/Veraticus/hpqaq/internal/locale"
	"github.com/Veraticus/hpqaq/internal/model"
)

// LinkMark is shown in the link column of rows with a detail URL.
const LinkMark = "↗"

const skeletonCell = "░░░░"

// MaxSkeletonRows caps placeholder rows shown while a page loads.
const MaxSkeletonRows = 12

// Column describes one listing table column.
type Column struct {
	Key     locale.Key
	Numeric bool
}

// ListingColumns is the listing table column order.
var ListingColumns = []Column{
	{Key: locale.KeyThBiz},
	{Key: locale.KeyThComm},
	{Key: locale.KeyThLayout},
	{Key: locale.KeyThArea, Numeric: true},
	{Key: locale.KeyThUnit, Numeric: true},
	{Key: locale.KeyThTotal, Numeric: true},
	{Key: locale.KeyThDealDate},
	{Key: locale.KeyThDetail},
}

// TableRow is one rendered table row.
type TableRow struct {
	Err         error
	URL         string
	Raw         json.RawMessage
	Cells       []string
	Placeholder bool
}

// HasLink reports whether the row carries a detail URL.
func (r TableRow) HasLink() bool {
	return r.URL != ""
}

// Table is a rendered listing table.
type Table struct {
	Empty   string
	Headers []string
	Rows    []TableRow
}

// IsEmpty reports whether the table has no data rows.
func (t Table) IsEmpty() bool {
	return t.Empty != ""
}

// Headers returns the localized column headers.
func Headers(ctx locale.Context) []string {
	headers := make([]string, len(ListingColumns))
	for i, c := range ListingColumns {
		headers[i] = ctx.T(c.Key, nil)
	}
	return headers
}

// ListingTable renders rows. No rows yields a single explanatory row.
func ListingTable(rows []model.Row, ctx locale.Context) Table {
	t := Table{Headers: Headers(ctx)}
	if len(rows) == 0 {
		t.Empty = ctx.T(locale.KeyEmptyList, nil)
		return t
	}

	f := ctx.Format()
	t.Rows = make([]TableRow, 0, len(rows))
	for _, r := range rows {
		l := r.Listing
		url := l.DetailURL.String()
		link := locale.Missing
		if url != "" {
			link = LinkMark
		}
		t.Rows = append(t.Rows, TableRow{
			Raw: r.Raw,
			Err: r.Err,
			URL: url,
			Cells: []string{
				locale.Text(l.Bizcircle),
				locale.Text(l.Community),
				locale.Text(l.Layout),
				f.Num2(l.AreaSqm),
				f.Num0(l.UnitPrice),
				f.Num2(l.TotalPrice),
				locale.Text(l.DealDate),
				link,
			},
		})
	}
	return t
}

// SkeletonCount is min(pageSize, MaxSkeletonRows).
func SkeletonCount(pageSize int) int {
	if pageSize <= 0 || pageSize > MaxSkeletonRows {
		return MaxSkeletonRows
	}
	return pageSize
}

// Skeleton renders n placeholder rows.
func Skeleton(n int, ctx locale.Context) Table {
	t := Table{Headers: Headers(ctx), Rows: make([]TableRow, n)}
	for i := range t.Rows {
		cells := make([]string, len(ListingColumns))
		for j := range cells {
			cells[j] = skeletonCell
		}
		t.Rows[i] = TableRow{Cells: cells, Placeholder: true}
	}
	return t
}

// ErrorTable renders a failed load as the single explanatory row.
func ErrorTable(err error, ctx locale.Context) Table {
	return Table{
		Headers: Headers(ctx),
		Empty:   ctx.T(locale.KeyMetaFail, nil) + "：" + strings.TrimSpace(err.Error()),
	}
}
