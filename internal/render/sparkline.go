package render

import (
	"fmt"
	"html"
	"math"
	"strings"

	"github.com/Veraticus/hpqaq/internal/locale"
	"github.com/Veraticus/hpqaq/internal/model"
)

// Sparkline canvas geometry.
const (
	CanvasWidth  = 600.0
	CanvasHeight = 220.0
	CanvasPad    = 18.0
	// ValuePadRatio is the share of the value span added above and below.
	ValuePadRatio = 0.1
)

// Point is a canvas coordinate.
type Point struct {
	X float64
	Y float64
}

// Tick is a month label on the x axis.
type Tick struct {
	Label string
	X     float64
	Index int
}

// Tooltip describes the hovered point.
type Tooltip struct {
	Month   string
	Value   string
	Samples string
}

// Sparkline is the trend chart laid out on the fixed canvas. Points with a
// missing value keep their x slot but are left out of the path.
type Sparkline struct {
	ctx      locale.Context
	MinLabel string
	MaxLabel string
	Path     string
	Area     string
	Months   []string
	Values   []float64
	Counts   []int
	Coords   []Point
	Valid    []bool
	Ticks    []Tick
	Min      float64
	Max      float64
	AxisLow  float64
	AxisHigh float64
	Empty    bool
}

// Window returns the trailing n points.
func Window(points []model.TrendPoint, n int) []model.TrendPoint {
	if n <= 0 || len(points) <= n {
		return points
	}
	return points[len(points)-n:]
}

// BuildSparkline lays out the chart window of points for ctx. Fewer than
// two finite values yields an empty sparkline.
func BuildSparkline(points []model.TrendPoint, ctx locale.Context) Sparkline {
	points = Window(points, ctx.ChartWindow())
	s := Sparkline{ctx: ctx, Empty: true}

	finite := 0
	s.Min, s.Max = math.Inf(1), math.Inf(-1)
	for _, p := range points {
		if !p.AvgUnitPrice.Finite() {
			continue
		}
		finite++
		s.Min = math.Min(s.Min, p.AvgUnitPrice.Value)
		s.Max = math.Max(s.Max, p.AvgUnitPrice.Value)
	}
	if finite < 2 {
		s.Min, s.Max = 0, 0
		return s
	}
	s.Empty = false

	span := math.Max(1, s.Max-s.Min)
	s.AxisLow = s.Min - span*ValuePadRatio
	s.AxisHigh = s.Max + span*ValuePadRatio

	n := len(points)
	s.Months = make([]string, n)
	s.Values = make([]float64, n)
	s.Counts = make([]int, n)
	s.Coords = make([]Point, n)
	s.Valid = make([]bool, n)

	for i, p := range points {
		s.Months[i] = p.Month
		s.Counts[i] = p.Count
		s.Valid[i] = p.AvgUnitPrice.Finite()
		s.Values[i] = math.NaN()
		if s.Valid[i] {
			s.Values[i] = p.AvgUnitPrice.Value
		}
		s.Coords[i] = Point{X: s.xAt(i), Y: s.yAt(s.Values[i])}
	}

	valid := s.validCoords()
	s.Path = smoothPath(valid)
	base := CanvasHeight - CanvasPad
	s.Area = fmt.Sprintf("%s L %.1f %.1f L %.1f %.1f Z",
		s.Path, valid[len(valid)-1].X, base, valid[0].X, base)

	f := ctx.Format()
	s.MinLabel = f.Num0(s.Min)
	s.MaxLabel = f.Num0(s.Max)
	s.Ticks = buildTicks(s.Months, s.xAt)

	return s
}

func (s Sparkline) xAt(i int) float64 {
	n := len(s.Months)
	if n <= 1 {
		return CanvasPad
	}
	return CanvasPad + float64(i)*(CanvasWidth-2*CanvasPad)/float64(n-1)
}

func (s Sparkline) yAt(v float64) float64 {
	if math.IsNaN(v) {
		return CanvasHeight - CanvasPad
	}
	return (CanvasHeight - CanvasPad) - (v-s.AxisLow)*(CanvasHeight-2*CanvasPad)/(s.AxisHigh-s.AxisLow)
}

func (s Sparkline) validCoords() []Point {
	out := make([]Point, 0, len(s.Coords))
	for i, c := range s.Coords {
		if s.Valid[i] {
			out = append(out, c)
		}
	}
	return out
}

// buildTicks labels the first month, the middle month when there are more
// than twelve, and the last month.
func buildTicks(months []string, xAt func(int) float64) []Tick {
	n := len(months)
	if n == 0 {
		return nil
	}
	idx := []int{0}
	if n > 12 {
		idx = append(idx, n/2)
	}
	if n > 1 {
		idx = append(idx, n-1)
	}

	ticks := make([]Tick, 0, len(idx))
	for _, i := range idx {
		ticks = append(ticks, Tick{Index: i, X: xAt(i), Label: months[i]})
	}
	return ticks
}

// smoothPath converts points to cubic Bézier segments using Catmull-Rom
// tangents.
func smoothPath(pts []Point) string {
	if len(pts) == 0 {
		return ""
	}
	var b strings.Builder
	fmt.Fprintf(&b, "M %.1f %.1f", pts[0].X, pts[0].Y)
	for i := 0; i < len(pts)-1; i++ {
		p0 := pts[max(i-1, 0)]
		p1 := pts[i]
		p2 := pts[i+1]
		p3 := pts[min(i+2, len(pts)-1)]

		c1 := Point{X: p1.X + (p2.X-p0.X)/6, Y: p1.Y + (p2.Y-p0.Y)/6}
		c2 := Point{X: p2.X - (p3.X-p1.X)/6, Y: p2.Y - (p3.Y-p1.Y)/6}
		fmt.Fprintf(&b, " C %.1f %.1f %.1f %.1f %.1f %.1f", c1.X, c1.Y, c2.X, c2.Y, p2.X, p2.Y)
	}
	return b.String()
}

// Nearest returns the index of the valid point closest to canvas x, or -1
// for an empty sparkline.
func (s Sparkline) Nearest(x float64) int {
	if s.Empty {
		return -1
	}
	best, bestDist := -1, math.Inf(1)
	for i, c := range s.Coords {
		if !s.Valid[i] {
			continue
		}
		if d := math.Abs(c.X - x); d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

// Step moves from index i by delta, skipping missing values. It stays put at
// the ends.
func (s Sparkline) Step(i, delta int) int {
	if s.Empty {
		return -1
	}
	for j := i + delta; j >= 0 && j < len(s.Coords); j += delta {
		if s.Valid[j] {
			return j
		}
	}
	return i
}

// Last returns the index of the most recent valid point.
func (s Sparkline) Last() int {
	return s.Nearest(CanvasWidth)
}

// Tooltip describes point i.
func (s Sparkline) Tooltip(i int) Tooltip {
	if s.Empty || i < 0 || i >= len(s.Months) {
		return Tooltip{}
	}
	f := s.ctx.Format()
	return Tooltip{
		Month:   s.Months[i],
		Value:   f.Num0(s.Values[i]) + " " + s.ctx.T(locale.KeyUnitSuffix, nil),
		Samples: s.ctx.T(locale.KeyTrendSamples, nil) + " " + f.Num0(s.Counts[i]),
	}
}

// SVG renders the sparkline as a standalone SVG document. An empty
// sparkline renders the empty-state text.
func (s Sparkline) SVG() string {
	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.0f %.0f" width="%.0f" height="%.0f">`+"\n",
		CanvasWidth, CanvasHeight, CanvasWidth, CanvasHeight)

	if s.Empty {
		fmt.Fprintf(&b, `  <text x="%.0f" y="%.0f" text-anchor="middle" fill="rgba(234,240,255,.65)" font-size="14">%s</text>`+"\n",
			CanvasWidth/2, CanvasHeight/2, html.EscapeString(s.ctx.T(locale.KeyEmptyTrend, nil)))
		b.WriteString("</svg>\n")
		return b.String()
	}

	b.WriteString(`  <defs>
    <linearGradient id="gLine" x1="0" y1="0" x2="1" y2="0">
      <stop offset="0%" stop-color="rgba(121,97,255,.95)"/>
      <stop offset="50%" stop-color="rgba(0,213,255,.95)"/>
      <stop offset="100%" stop-color="rgba(255,72,180,.9)"/>
    </linearGradient>
    <linearGradient id="gFill" x1="0" y1="0" x2="0" y2="1">
      <stop offset="0%" stop-color="rgba(0,213,255,.22)"/>
      <stop offset="100%" stop-color="rgba(0,213,255,0)"/>
    </linearGradient>
  </defs>
`)
	fmt.Fprintf(&b, `  <path d="%s" fill="url(#gFill)"/>`+"\n", s.Area)
	fmt.Fprintf(&b, `  <path d="%s" fill="none" stroke="url(#gLine)" stroke-width="3.2" stroke-linecap="round" stroke-linejoin="round"/>`+"\n", s.Path)
	for i, c := range s.Coords {
		if !s.Valid[i] {
			continue
		}
		tip := s.Tooltip(i)
		fmt.Fprintf(&b, `  <circle cx="%.1f" cy="%.1f" r="3.4" fill="rgba(234,240,255,.92)"><title>%s</title></circle>`+"\n",
			c.X, c.Y, html.EscapeString(tip.Month+" · "+tip.Value+" · "+tip.Samples))
	}

	label := `  <text x="%.1f" y="%.1f" text-anchor="%s" fill="rgba(234,240,255,.68)" font-size="11">%s</text>` + "\n"
	fmt.Fprintf(&b, label, CanvasPad, s.yAt(s.Max)-4, "start", html.EscapeString(s.MaxLabel))
	fmt.Fprintf(&b, label, CanvasPad, s.yAt(s.Min)+12, "start", html.EscapeString(s.MinLabel))
	for _, t := range s.Ticks {
		anchor := "middle"
		switch t.Index {
		case 0:
			anchor = "start"
		case len(s.Months) - 1:
			anchor = "end"
		}
		fmt.Fprintf(&b, label, t.X, CanvasHeight-2, anchor, html.EscapeString(t.Label))
	}

	b.WriteString("</svg>\n")
	return b.String()
}

var blocks = []rune(" ▁▂▃▄▅▆▇█")

// Grid rasterizes the sparkline into rows of block characters, cols wide.
// Column c maps to the nearest point of the canvas position it covers.
// The second return value gives the point index drawn in each column.
func (s Sparkline) Grid(cols, rows int) ([]string, []int) {
	if s.Empty || cols <= 0 || rows <= 0 {
		return nil, nil
	}

	heights := make([]float64, cols)
	owners := make([]int, cols)
	for c := range cols {
		x := CanvasPad
		if cols > 1 {
			x = CanvasPad + float64(c)*(CanvasWidth-2*CanvasPad)/float64(cols-1)
		}
		i := s.Nearest(x)
		owners[c] = i
		heights[c] = (s.Values[i] - s.AxisLow) / (s.AxisHigh - s.AxisLow) * float64(rows)
	}

	lines := make([]string, rows)
	for r := range rows {
		floor := float64(rows - r - 1)
		var b strings.Builder
		for c := range cols {
			fill := heights[c] - floor
			switch {
			case fill >= 1:
				b.WriteRune(blocks[len(blocks)-1])
			case fill <= 0:
				b.WriteRune(' ')
			default:
				b.WriteRune(blocks[int(math.Round(fill*float64(len(blocks)-1)))])
			}
		}
		lines[r] = b.String()
	}
	return lines, owners
}
