package tui

import (
	"errors"

	"github.com/Veraticus/hpqaq/internal/api"
	"github.com/Veraticus/hpqaq/internal/locale"
	"github.com/Veraticus/hpqaq/internal/model"
	"github.com/Veraticus/hpqaq/internal/render"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) loadBizcircles(city string) (Model, tea.Cmd) {
	if city == "" {
		m.lanes.abandon(LaneBizcircles)
		m.statsForm = m.statsForm.SetBizcircles(nil)
		return m, nil
	}
	ctx, token := m.lanes.start(LaneBizcircles)
	return m, fetchBizcircles(ctx, m.backend, token, city)
}

func (m Model) handleBizcircles(msg bizcirclesLoadedMsg) (tea.Model, tea.Cmd) {
	if !m.lanes.finish(LaneBizcircles, msg.token) {
		return m, nil
	}
	if msg.err != nil {
		if api.IsAborted(msg.err) {
			return m, nil
		}
		m.statsForm = m.statsForm.SetBizcircles(nil)
		return m.showToast(msg.err.Error(), true)
	}
	m.statsForm = m.statsForm.SetBizcircles(msg.list)
	return m, nil
}

// submitStats validates the form and fetches one series or, in compare
// mode, every selected series in parallel.
func (m Model) submitStats() (Model, tea.Cmd) {
	q := m.statsForm.Query()

	if !q.Compare && q.City == "" {
		return m.toastKey(locale.KeyStatNeedCity, nil)
	}
	if err := q.Range.Validate(); err != nil {
		if errors.Is(err, model.ErrStartAfterEnd) {
			return m.toastKey(locale.KeyStatRangeInvalid, nil)
		}
		return m.showToast(err.Error(), true)
	}

	if !q.Compare {
		ctx, token := m.lanes.start(LaneStats)
		return m, fetchHistorical(ctx, m.backend, token, q)
	}

	if q.ByBizcircle && q.City == "" {
		return m.toastKey(locale.KeyStatNeedCity, nil)
	}
	if len(q.Targets) < 2 {
		if q.ByBizcircle {
			return m.toastKey(locale.KeyStatNeedBiz, nil)
		}
		return m.toastKey(locale.KeyStatNeedCities, nil)
	}
	ctx, token := m.lanes.start(LaneStats)
	return m, fetchCompare(ctx, m.backend, token, q)
}

func (m Model) handleStats(msg statsLoadedMsg) (tea.Model, tea.Cmd) {
	if !m.lanes.finish(LaneStats, msg.token) {
		return m, nil
	}
	if msg.err != nil {
		if api.IsAborted(msg.err) {
			return m, nil
		}
		logLaneFailure(LaneStats, msg.err, msg.query.City)
		k := locale.KeyStatLoadFail
		if msg.query.Compare {
			k = locale.KeyStatCompareFail
		}
		return m.showToast(m.ctx.T(k, nil)+"："+msg.err.Error(), true)
	}
	if msg.failed != "" {
		return m.showToast(m.ctx.T(locale.KeyStatQueryFail, nil)+"："+msg.failed, true)
	}

	m.stats = &statsResult{query: msg.query, rows: msg.rows, series: msg.series}
	next, cmd := m.redrawStats()
	if cmd != nil {
		return next, cmd
	}

	if msg.query.Compare {
		return next.toastKey(locale.KeyStatCompareLoaded, locale.Vars{"n": len(msg.series)})
	}
	return next.toastKey(locale.KeyStatLoaded, locale.Vars{"scope": render.Scope(msg.query.City, msg.query.Bizcircle)})
}

// redrawStats rebuilds the chart of the last result for the selected view.
func (m Model) redrawStats() (Model, tea.Cmd) {
	if m.stats == nil {
		return m, nil
	}
	q := m.stats.query
	view := m.statsForm.View()

	var (
		chart render.Chart
		err   error
	)
	if q.Compare {
		chart, err = render.BuildCompareChart(view, m.stats.series, m.ctx)
		m.statsDesc = render.CompareDescription(q.ByBizcircle, q.Range, m.ctx)
	} else {
		scope := render.Scope(q.City, q.Bizcircle)
		chart, err = render.BuildSingleChart(view, m.stats.rows, scope, m.ctx)
		m.statsDesc = render.SingleDescription(scope, q.Range, m.ctx)
	}
	if err != nil {
		m.chart = m.chart.Detach()
		return m.showToast(err.Error(), true)
	}
	m.chart = m.chart.Attach(chart)
	return m, nil
}
