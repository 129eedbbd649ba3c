package components

import (
	"github.com/Veraticus/hpqaq/internal/render"
)

// ChartSurface holds at most one chart. Attaching a chart destroys the
// one shown before it.
type ChartSurface struct {
	chart     *render.Chart
	serial    int
	destroyed int
}

// Attach replaces the current chart with c.
func (s ChartSurface) Attach(c render.Chart) ChartSurface {
	s = s.Detach()
	s.serial++
	s.chart = &c
	return s
}

// Detach destroys the current chart, if any.
func (s ChartSurface) Detach() ChartSurface {
	if s.chart != nil {
		s.chart = nil
		s.destroyed++
	}
	return s
}

// Current returns the attached chart.
func (s ChartSurface) Current() (render.Chart, bool) {
	if s.chart == nil {
		return render.Chart{}, false
	}
	return *s.chart, true
}

// Serial counts charts attached so far.
func (s ChartSurface) Serial() int {
	return s.serial
}

// Destroyed counts charts torn down so far.
func (s ChartSurface) Destroyed() int {
	return s.destroyed
}

// View draws the attached chart width cells wide.
func (s ChartSurface) View(width int) string {
	if s.chart == nil {
		return ""
	}
	return render.DrawChart(*s.chart, width)
}
