package tui

import (
	"strconv"
	"strings"

	"github.com/Veraticus/hpqaq/internal/locale"
	"github.com/charmbracelet/lipgloss"
)

// headerLines is the height of the title bar including its spacing.
const headerLines = 2

func (m Model) leftWidth() int {
	return max(m.width*3/5, 40)
}

func (m Model) rightWidth() int {
	return max(m.width-m.leftWidth(), 24)
}

// trendOrigin is the screen cell of the top-left sparkline column.
func (m Model) trendOrigin() (x, y int) {
	// border + padding, then border + panel title + max label
	return m.leftWidth() + 2, headerLines + 3
}

// View renders the current state.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.detail.IsOpen() {
		return m.detail.View()
	}

	var body string
	if m.screen == ScreenStats {
		body = m.statsView()
	} else {
		body = m.dashboardView()
	}

	footer := m.help.View(m.keymap)
	if t := m.toast.View(); t != "" {
		footer = t + "\n" + footer
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.header(), "", body, footer)
}

func (m Model) header() string {
	tab := func(id string, s Screen, n int) string {
		style := m.theme.Tab
		if m.screen == s {
			style = m.theme.ActiveTab
		}
		return style.Render(strconv.Itoa(n) + " " + m.strings.Label(id))
	}

	badge := m.ctx.T(locale.KeyBadgeAPIOK, nil)
	badgeStyle := m.theme.StatusSuccess
	switch {
	case m.healthErr != nil:
		badge = m.ctx.T(locale.KeyBadgeAPIBad, nil)
		badgeStyle = m.theme.StatusError
	case m.health == nil:
		badge = "API：…"
		badgeStyle = m.theme.StatusPending
	}

	var cities []string
	if m.health != nil {
		cities = m.health.Cities
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		m.theme.Title.Render(m.strings.Label(idAppTitle)),
		"  ",
		tab(idNavDashboard, ScreenDashboard, 1),
		tab(idNavStats, ScreenStats, 2),
		"  ",
		badgeStyle.Render(badge),
		m.theme.Badge.Render(m.ctx.T(locale.KeyBadgeCities, locale.Vars{"names": locale.CityNames(cities)})),
	)
}

func (m Model) panel(region Region, width int, title, body string) string {
	style := m.theme.Panel
	if m.screen == ScreenDashboard && m.region == region {
		style = m.theme.FocusedPanel
	}
	return style.Width(width - 2).Render(m.theme.Bold.Render(title) + "\n" + body)
}

func (m Model) metaText() string {
	switch m.meta {
	case MetaLoading:
		return m.theme.StatusPending.Render(m.ctx.T(locale.KeyMetaLoading, nil))
	case MetaDone:
		return m.theme.StatusSuccess.Render(m.ctx.T(locale.KeyMetaDone, locale.Vars{"n": m.total}))
	case MetaFailed:
		return m.theme.StatusError.Render(m.ctx.T(locale.KeyMetaFail, nil))
	default:
		return m.theme.StatusInfo.Render(m.ctx.T(locale.KeyMetaReady, nil))
	}
}

func (m Model) pager() string {
	loading := m.lanes.loading(LaneList)
	control := func(label string, enabled bool) string {
		if !enabled || loading {
			return m.theme.Disabled.Render(label)
		}
		return m.theme.Normal.Render(label)
	}
	return strings.Join([]string{
		control("‹ [", m.page.CanPrev()),
		m.theme.Normal.Render(m.ctx.T(locale.KeyPager, locale.Vars{"p": m.page.Page, "m": m.page.MaxPage()})),
		control("] ›", m.page.CanNext()),
		m.theme.Subtitle.Render(m.strings.Label(idPageSize) + " " + strconv.Itoa(m.page.PageSize)),
	}, "  ")
}

func (m Model) dashboardView() string {
	lw, rw := m.leftWidth(), m.rightWidth()

	filters := m.panel(RegionFilters, lw, m.strings.Label(idTitleFilters),
		m.theme.Subtitle.Render(m.strings.Label(idDescFilters))+"\n"+m.filters.View())
	list := m.panel(RegionTable, lw, m.strings.Label(idTitleList)+"  "+m.metaText(),
		m.theme.Subtitle.Render(m.strings.Label(idDescList))+"\n"+m.table.View()+"\n"+m.pager())
	trend := m.panel(RegionTrend, rw, m.strings.Label(idTitleTrend), m.trend.View())
	news := m.panel(RegionNews, rw, m.strings.Label(idTitleNews), m.news.View())

	return lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.JoinVertical(lipgloss.Left, filters, list),
		lipgloss.JoinVertical(lipgloss.Left, trend, news),
	)
}

func (m Model) statsView() string {
	var b strings.Builder
	b.WriteString(m.statsForm.Render())
	b.WriteString("\n\n")
	if m.lanes.loading(LaneStats) {
		b.WriteString(m.theme.StatusPending.Render(m.ctx.T(locale.KeyMetaLoading, nil)))
		b.WriteString("\n")
	}
	if m.statsDesc != "" {
		b.WriteString(m.theme.Subtitle.Render(m.statsDesc))
		b.WriteString("\n")
	}
	if chart := m.chart.View(m.width - 6); chart != "" {
		b.WriteString(chart)
	} else if m.stats != nil {
		b.WriteString(m.theme.Subtitle.Render(m.ctx.T(locale.KeyStatEmpty, nil)))
	}
	return m.theme.Panel.Width(max(m.width-2, 20)).Render(
		m.theme.Bold.Render(m.strings.Label(idTitleStats)) + "\n" + b.String())
}
