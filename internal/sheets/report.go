package sheets

import (
	"github.com/Veraticus/hpqaq/internal/render"
)

// Report is one statistics table ready for export.
type Report struct {
	Title       string
	Description string
	Headers     [][]string
	Rows        [][]string
}

// FromTable wraps a rendered statistics table.
func FromTable(title, description string, t *render.StatTable) Report {
	r := Report{Title: title, Description: description}
	if t != nil {
		r.Headers = t.Headers
		r.Rows = t.Rows
	}
	return r
}

// HeaderOffset is the number of rows before the table headers.
const HeaderOffset = 3

// Values lays the report out as sheet rows: title, description, a blank
// row, the header rows and the data rows.
func (r Report) Values() [][]any {
	values := make([][]any, 0, HeaderOffset+len(r.Headers)+len(r.Rows))
	values = append(values,
		[]any{r.Title},
		[]any{r.Description},
		[]any{},
	)
	for _, h := range r.Headers {
		values = append(values, toRow(h))
	}
	for _, row := range r.Rows {
		values = append(values, toRow(row))
	}
	return values
}

func toRow(cells []string) []any {
	row := make([]any, len(cells))
	for i, c := range cells {
		row[i] = c
	}
	return row
}

// Width is the widest row in cells.
func (r Report) Width() int {
	w := 1
	for _, rows := range [][][]string{r.Headers, r.Rows} {
		for _, row := range rows {
			w = max(w, len(row))
		}
	}
	return w
}
