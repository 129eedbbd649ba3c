package components

import (
	"github.com/Veraticus/hpqaq/internal/render"
	"github.com/Veraticus/hpqaq/internal/tui/themes"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var listingWidths = []int{10, 14, 9, 9, 11, 9, 11, 4}

// ListingTable shows one page of listings.
type ListingTable struct {
	theme   themes.Theme
	empty   string
	rows    []render.TableRow
	table   table.Model
	focused bool
}

// NewListingTable creates an empty table.
func NewListingTable(theme themes.Theme) ListingTable {
	t := table.New(
		table.WithFocused(false),
		table.WithHeight(12),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(theme.Border).
		BorderBottom(true).
		Bold(false)
	s.Selected = theme.Selected
	t.SetStyles(s)

	return ListingTable{theme: theme, table: t}
}

// SetTable replaces the displayed rows and moves the cursor to the top.
func (l ListingTable) SetTable(t render.Table) ListingTable {
	columns := make([]table.Column, len(t.Headers))
	for i, h := range t.Headers {
		w := 10
		if i < len(listingWidths) {
			w = listingWidths[i]
		}
		columns[i] = table.Column{Title: h, Width: w}
	}

	rows := make([]table.Row, len(t.Rows))
	for i, r := range t.Rows {
		rows[i] = table.Row(r.Cells)
	}

	l.table.SetRows(nil)
	l.table.SetColumns(columns)
	l.table.SetRows(rows)
	l.table.SetCursor(0)
	l.rows = t.Rows
	l.empty = t.Empty
	return l
}

// SetHeight sets the visible row count.
func (l ListingTable) SetHeight(h int) ListingTable {
	l.table.SetHeight(max(h, 3))
	return l
}

// Selected returns the data row under the cursor. Placeholder rows and the
// empty state have no selection.
func (l ListingTable) Selected() (render.TableRow, bool) {
	i := l.table.Cursor()
	if i < 0 || i >= len(l.rows) || l.rows[i].Placeholder {
		return render.TableRow{}, false
	}
	return l.rows[i], true
}

// Cursor returns the highlighted row index.
func (l ListingTable) Cursor() int {
	return l.table.Cursor()
}

// SetCursor moves the highlight to row i.
func (l ListingTable) SetCursor(i int) ListingTable {
	l.table.SetCursor(i)
	return l
}

// Len returns the number of rows including placeholders.
func (l ListingTable) Len() int {
	return len(l.rows)
}

// Focus gives the table keyboard focus.
func (l ListingTable) Focus() ListingTable {
	l.focused = true
	l.table.Focus()
	return l
}

// Blur removes keyboard focus.
func (l ListingTable) Blur() ListingTable {
	l.focused = false
	l.table.Blur()
	return l
}

// Update moves the cursor.
func (l ListingTable) Update(msg tea.Msg) (ListingTable, tea.Cmd) {
	if !l.focused {
		return l, nil
	}
	var cmd tea.Cmd
	l.table, cmd = l.table.Update(msg)
	return l, cmd
}

// View renders the table, or the explanatory row when there is no data.
func (l ListingTable) View() string {
	if l.empty != "" {
		return l.table.View() + "\n" + l.theme.Subtitle.Render(l.empty)
	}
	return l.table.View()
}
