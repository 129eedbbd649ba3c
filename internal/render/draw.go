package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#8A93B2"))
	titleStyle  = lipgloss.NewStyle().Bold(true)
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#EAF0FF"))
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

const labelGap = 2

// DrawChart renders c as text no wider than width.
func DrawChart(c Chart, width int) string {
	if width < 20 {
		width = 20
	}

	var b strings.Builder
	if c.Title != "" {
		b.WriteString(titleStyle.Render(c.Title))
		b.WriteString("\n")
	}

	switch {
	case c.Table != nil:
		b.WriteString(DrawTable(c.Table.Headers, c.Table.Rows))
		return b.String()
	case len(c.Labels) == 0:
		return b.String()
	}

	b.WriteString(legend(c.Datasets))
	b.WriteString("\n")
	if c.View == ViewBar || c.View == ViewTotal {
		b.WriteString(drawBars(c, width))
	} else {
		b.WriteString(drawLines(c, width))
	}
	return b.String()
}

func legend(ds []Dataset) string {
	parts := make([]string, 0, len(ds))
	for _, d := range ds {
		swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(d.Color.Term)).Render("■")
		parts = append(parts, swatch+" "+d.Label)
	}
	return strings.Join(parts, "  ")
}

// axisMax is the largest finite value drawn on each axis.
func axisMax(ds []Dataset) map[int]float64 {
	out := map[int]float64{}
	for _, d := range ds {
		for _, v := range d.Values {
			if v != nil && *v > out[d.Axis] {
				out[d.Axis] = *v
			}
		}
	}
	return out
}

func drawBars(c Chart, width int) string {
	labelW := 0
	for _, l := range c.Labels {
		labelW = max(labelW, lipgloss.Width(l))
	}
	const valueW = 12
	barW := max(4, width-labelW-valueW-labelGap*2)
	maxes := axisMax(c.Datasets)

	var b strings.Builder
	for mi, label := range c.Labels {
		for di, d := range c.Datasets {
			prefix := strings.Repeat(" ", labelW)
			if di == 0 {
				prefix = padRight(label, labelW)
			}
			style := lipgloss.NewStyle().Foreground(lipgloss.Color(d.Color.Term))
			v := d.Values[mi]
			if v == nil {
				fmt.Fprintf(&b, "%s%s%s\n", prefix, strings.Repeat(" ", labelGap), mutedStyle.Render("-"))
				continue
			}
			n := 0
			if m := maxes[d.Axis]; m > 0 {
				n = int(math.Round(*v / m * float64(barW)))
			}
			fmt.Fprintf(&b, "%s%s%s %s\n", prefix, strings.Repeat(" ", labelGap),
				style.Render(strings.Repeat("█", n)), mutedStyle.Render(compact(*v)))
		}
	}
	return b.String()
}

func drawLines(c Chart, width int) string {
	labelW := 0
	for _, d := range c.Datasets {
		labelW = max(labelW, lipgloss.Width(d.Label))
	}
	cell := max(1, (width-labelW-labelGap)/max(1, len(c.Labels)))

	// Datasets of one axis share a scale so band bounds line up.
	lo, hi := map[int]float64{}, map[int]float64{}
	for _, d := range c.Datasets {
		for _, v := range d.Values {
			if v == nil {
				continue
			}
			if l, ok := lo[d.Axis]; !ok || *v < l {
				lo[d.Axis] = *v
			}
			if h, ok := hi[d.Axis]; !ok || *v > h {
				hi[d.Axis] = *v
			}
		}
	}

	var b strings.Builder
	for _, d := range c.Datasets {
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(d.Color.Term))
		span := math.Max(1, hi[d.Axis]-lo[d.Axis])
		var line strings.Builder
		for _, v := range d.Values {
			if v == nil {
				line.WriteString(strings.Repeat("·", cell))
				continue
			}
			level := int(math.Round((*v - lo[d.Axis]) / span * float64(len(blocks)-2)))
			line.WriteString(strings.Repeat(string(blocks[level+1]), cell))
		}
		fmt.Fprintf(&b, "%s%s%s\n", padRight(d.Label, labelW), strings.Repeat(" ", labelGap), style.Render(line.String()))
	}

	ticks := buildTicks(c.Labels, func(i int) float64 { return float64(i * cell) })
	axis := []rune(strings.Repeat(" ", cell*len(c.Labels)+16))
	for _, t := range ticks {
		start := int(t.X)
		if t.Index == len(c.Labels)-1 && t.Index > 0 {
			start = max(0, start+cell-len(t.Label))
		}
		for i, r := range t.Label {
			if start+i < len(axis) {
				axis[start+i] = r
			}
		}
	}
	fmt.Fprintf(&b, "%s%s\n", strings.Repeat(" ", labelW+labelGap), mutedStyle.Render(strings.TrimRight(string(axis), " ")))
	return b.String()
}

// compact shortens large values for bar annotations.
func compact(v float64) string {
	switch {
	case math.Abs(v) >= 10000:
		return fmt.Sprintf("%.1f万", v/10000)
	case v == math.Trunc(v):
		return fmt.Sprintf("%.0f", v)
	default:
		return fmt.Sprintf("%.2f", v)
	}
}

func padRight(s string, w int) string {
	if n := lipgloss.Width(s); n < w {
		return s + strings.Repeat(" ", w-n)
	}
	return s
}

// DrawTable renders header rows and data rows with aligned columns. The
// first column is left aligned and the rest right aligned. Several header
// rows stack into one multi-line header.
func DrawTable(headers, rows [][]string) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(mutedStyle).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderColumn(false).
		BorderHeader(len(headers) > 0).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			style := cellStyle
			if row == table.HeaderRow {
				style = headerStyle.Padding(0, 1)
			}
			if col == 0 {
				return style.Align(lipgloss.Left)
			}
			return style.Align(lipgloss.Right)
		})
	if len(headers) > 0 {
		t = t.Headers(stackHeaders(headers)...)
	}
	return t.String() + "\n"
}

// stackHeaders joins header rows column by column into multi-line cells.
func stackHeaders(headers [][]string) []string {
	cols := 0
	for _, h := range headers {
		cols = max(cols, len(h))
	}
	out := make([]string, cols)
	for i := range cols {
		lines := make([]string, 0, len(headers))
		for _, h := range headers {
			cell := ""
			if i < len(h) {
				cell = h[i]
			}
			lines = append(lines, cell)
		}
		out[i] = strings.Join(lines, "\n")
	}
	return out
}
