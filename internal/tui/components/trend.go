package components

import (
	"strings"

	"github.com/Veraticus/hpqaq/internal/locale"
	"github.com/Veraticus/hpqaq/internal/model"
	"github.com/Veraticus/hpqaq/internal/render"
	"github.com/Veraticus/hpqaq/internal/tui/themes"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// TrendRows is the height of the sparkline grid.
const TrendRows = 6

var (
	trendLeft  = key.NewBinding(key.WithKeys("left", "h"))
	trendRight = key.NewBinding(key.WithKeys("right", "l"))
	trendLast  = key.NewBinding(key.WithKeys("end", "G"))
)

// TrendPanel shows the monthly price sparkline with a hover cursor and the
// recent-months list.
type TrendPanel struct {
	theme   themes.Theme
	ctx     locale.Context
	err     string
	items   []render.TrendItem
	owners  []int
	spark   render.Sparkline
	cursor  int
	width   int
	loading bool
	focused bool
}

// NewTrendPanel creates an empty panel.
func NewTrendPanel(theme themes.Theme, ctx locale.Context) TrendPanel {
	return TrendPanel{
		theme:  theme,
		ctx:    ctx,
		spark:  render.BuildSparkline(nil, ctx),
		cursor: -1,
		width:  40,
	}
}

// SetLocale switches the locale used for labels and windows.
func (t TrendPanel) SetLocale(ctx locale.Context) TrendPanel {
	t.ctx = ctx
	return t
}

// SetPoints lays out points. The cursor starts on the latest month.
func (t TrendPanel) SetPoints(points []model.TrendPoint) TrendPanel {
	t.spark = render.BuildSparkline(points, t.ctx)
	t.items = render.TrendList(points, t.ctx)
	t.cursor = t.spark.Last()
	t.err = ""
	t.loading = false
	return t.layout()
}

// SetError replaces the chart with an inline error.
func (t TrendPanel) SetError(msg string) TrendPanel {
	t.err = msg
	t.spark = render.BuildSparkline(nil, t.ctx)
	t.items = nil
	t.cursor = -1
	t.loading = false
	return t.layout()
}

// SetLoading marks a fetch in flight.
func (t TrendPanel) SetLoading(loading bool) TrendPanel {
	t.loading = loading
	return t
}

// SetWidth sets the grid width in cells.
func (t TrendPanel) SetWidth(w int) TrendPanel {
	t.width = max(w, 8)
	return t.layout()
}

func (t TrendPanel) layout() TrendPanel {
	_, t.owners = t.spark.Grid(t.width, TrendRows)
	return t
}

// Sparkline returns the laid-out chart.
func (t TrendPanel) Sparkline() render.Sparkline {
	return t.spark
}

// Items returns the recent-months list.
func (t TrendPanel) Items() []render.TrendItem {
	return t.items
}

// Cursor returns the hovered point index, or -1.
func (t TrendPanel) Cursor() int {
	return t.cursor
}

// Hover snaps the cursor to the point drawn in grid column col.
func (t TrendPanel) Hover(col int) TrendPanel {
	if col >= 0 && col < len(t.owners) {
		t.cursor = t.owners[col]
	}
	return t
}

// Focus gives the panel keyboard focus.
func (t TrendPanel) Focus() TrendPanel {
	t.focused = true
	return t
}

// Blur removes keyboard focus.
func (t TrendPanel) Blur() TrendPanel {
	t.focused = false
	return t
}

// Update moves the cursor between points.
func (t TrendPanel) Update(msg tea.Msg) (TrendPanel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !t.focused || t.spark.Empty {
		return t, nil
	}
	switch {
	case key.Matches(keyMsg, trendLeft):
		t.cursor = t.spark.Step(t.cursor, -1)
	case key.Matches(keyMsg, trendRight):
		t.cursor = t.spark.Step(t.cursor, 1)
	case key.Matches(keyMsg, trendLast):
		t.cursor = t.spark.Last()
	}
	return t, nil
}

// View renders the chart, tooltip and list.
func (t TrendPanel) View() string {
	if t.err != "" {
		return t.theme.StatusError.Render(t.err)
	}
	if t.loading && t.spark.Empty {
		return t.theme.StatusPending.Render(t.ctx.T(locale.KeyMetaLoading, nil))
	}
	if t.spark.Empty {
		return t.theme.Subtitle.Render(t.ctx.T(locale.KeyEmptyTrend, nil))
	}

	lines, owners := t.spark.Grid(t.width, TrendRows)
	var b strings.Builder
	b.WriteString(t.theme.Subtitle.Render(t.spark.MaxLabel))
	b.WriteString("\n")
	for _, line := range lines {
		cells := []rune(line)
		for c, r := range cells {
			style := t.theme.Spark
			if c < len(owners) && owners[c] == t.cursor {
				style = t.theme.Cursor
			}
			b.WriteString(style.Render(string(r)))
		}
		b.WriteString("\n")
	}
	b.WriteString(t.theme.Subtitle.Render(t.spark.MinLabel))
	b.WriteString("\n")
	b.WriteString(t.ticks())
	b.WriteString("\n")

	if tip := t.spark.Tooltip(t.cursor); tip.Month != "" {
		b.WriteString(t.theme.Bold.Render(tip.Month + " · " + tip.Value + " · " + tip.Samples))
		b.WriteString("\n")
	}

	for _, it := range t.items {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
			t.theme.Normal.Width(9).Render(it.Month),
			t.theme.Bold.Render(it.AvgUnit+" "+it.UnitSuffix),
			t.theme.Subtitle.Render("  "+it.Samples+" · "+it.AvgTotal),
		))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// ticks places month labels under their grid columns.
func (t TrendPanel) ticks() string {
	row := []rune(strings.Repeat(" ", t.width))
	usable := render.CanvasWidth - 2*render.CanvasPad
	for _, tick := range t.spark.Ticks {
		label := []rune(tick.Label)
		col := int((tick.X - render.CanvasPad) / usable * float64(t.width-1))
		start := max(0, min(col-len(label)/2, len(row)-len(label)))
		for i, r := range label {
			if start+i < len(row) {
				row[start+i] = r
			}
		}
	}
	return t.theme.Subtitle.Render(string(row))
}
