package components

import (
	"slices"
	"strings"

	"github.com/Veraticus/hpqaq/internal/locale"
	"github.com/Veraticus/hpqaq/internal/model"
	"github.com/Veraticus/hpqaq/internal/render"
	"github.com/Veraticus/hpqaq/internal/tui/themes"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// StatsField is one row of the statistics form.
type StatsField int

// Statistics form rows.
const (
	StatsFieldMode StatsField = iota
	StatsFieldCompareType
	StatsFieldCity
	StatsFieldBizcircle
	StatsFieldStart
	StatsFieldEnd
	StatsFieldTargets
	StatsFieldView
)

// StatsCityChangedMsg asks for the bizcircles of City.
type StatsCityChangedMsg struct {
	City string
}

// StatsViewChangedMsg asks for the current result to be redrawn as View.
type StatsViewChangedMsg struct {
	View render.View
}

// StatsModeChangedMsg reports a switch between single and compare mode.
type StatsModeChangedMsg struct {
	Compare bool
}

// StatsQuery is what the form asks to fetch.
type StatsQuery struct {
	City        string
	Bizcircle   string
	Range       model.MonthRange
	View        render.View
	Targets     []model.CompareTarget
	Compare     bool
	ByBizcircle bool
}

var (
	statsToggle = key.NewBinding(key.WithKeys(" ", "space"))
	statsPrev   = key.NewBinding(key.WithKeys("left"))
	statsNext   = key.NewBinding(key.WithKeys("right"))
)

// StatsForm edits a historical average price query.
type StatsForm struct {
	theme       themes.Theme
	ctx         locale.Context
	selected    map[string]bool
	cities      []string
	bizcircles  []string
	start       textinput.Model
	end         textinput.Model
	city        int
	bizcircle   int
	target      int
	view        int
	focus       int
	compare     bool
	byBizcircle bool
	focused     bool
}

// NewStatsForm creates a single-mode form over the default month range.
func NewStatsForm(theme themes.Theme, ctx locale.Context) StatsForm {
	r := model.DefaultMonthRange()
	newInput := func(v string) textinput.Model {
		in := textinput.New()
		in.Prompt = ""
		in.CharLimit = 7
		in.Width = 8
		in.Placeholder = "YYYY-MM"
		in.SetValue(v)
		return in
	}
	return StatsForm{
		theme:     theme,
		ctx:       ctx,
		selected:  map[string]bool{},
		start:     newInput(r.Start),
		end:       newInput(r.End),
		bizcircle: -1,
	}
}

// SetLocale switches the locale used for labels.
func (s StatsForm) SetLocale(ctx locale.Context) StatsForm {
	s.ctx = ctx
	return s
}

// SetCities replaces the city options, keeping the selection when possible.
func (s StatsForm) SetCities(cities []string, preferred string) StatsForm {
	current := s.City()
	s.cities = slices.Clone(cities)
	s.city = 0
	for _, c := range []string{preferred, current} {
		if i := slices.Index(s.cities, c); c != "" && i >= 0 {
			s.city = i
			break
		}
	}
	if len(s.cities) == 0 {
		s.city = -1
	}
	return s
}

// SetBizcircles replaces the bizcircle options of the current city.
func (s StatsForm) SetBizcircles(list []string) StatsForm {
	s.bizcircles = slices.Clone(list)
	s.bizcircle = -1
	if s.byBizcircle {
		s.selected = map[string]bool{}
		s.target = 0
	}
	return s
}

// Bizcircles returns the bizcircle options.
func (s StatsForm) Bizcircles() []string {
	return s.bizcircles
}

// City returns the selected (or base) city.
func (s StatsForm) City() string {
	if s.city < 0 || s.city >= len(s.cities) {
		return ""
	}
	return s.cities[s.city]
}

// Bizcircle returns the selected bizcircle, "" meaning all.
func (s StatsForm) Bizcircle() string {
	if s.bizcircle < 0 || s.bizcircle >= len(s.bizcircles) {
		return ""
	}
	return s.bizcircles[s.bizcircle]
}

// Compare reports whether the form is in compare mode.
func (s StatsForm) Compare() bool {
	return s.compare
}

// SetCompare switches between single and compare mode.
func (s StatsForm) SetCompare(compare bool) StatsForm {
	s.compare = compare
	s.selected = map[string]bool{}
	s.target = 0
	s.view = 0
	s.focus = 0
	return s
}

// SetByBizcircle switches compare mode between cities and bizcircles.
func (s StatsForm) SetByBizcircle(by bool) StatsForm {
	s.byBizcircle = by
	s.selected = map[string]bool{}
	s.target = 0
	return s
}

// Toggle flips the selection of a compare candidate.
func (s StatsForm) Toggle(code string) StatsForm {
	sel := make(map[string]bool, len(s.selected)+1)
	for k, v := range s.selected {
		sel[k] = v
	}
	sel[code] = !sel[code]
	s.selected = sel
	return s
}

// SetRange fills the month inputs.
func (s StatsForm) SetRange(r model.MonthRange) StatsForm {
	s.start.SetValue(r.Start)
	s.end.SetValue(r.End)
	return s
}

// SetView selects v when the current mode offers it.
func (s StatsForm) SetView(v render.View) StatsForm {
	if i := slices.Index(s.Views(), v); i >= 0 {
		s.view = i
	}
	return s
}

// Views lists the views the current mode offers.
func (s StatsForm) Views() []render.View {
	if s.compare {
		return render.CompareViews()
	}
	return render.SingleViews()
}

// View returns the selected view.
func (s StatsForm) View() render.View {
	return s.Views()[s.view%len(s.Views())]
}

// candidates lists what compare mode selects from.
func (s StatsForm) candidates() []string {
	if s.byBizcircle {
		return s.bizcircles
	}
	return s.cities
}

// Query describes the current form.
func (s StatsForm) Query() StatsQuery {
	q := StatsQuery{
		City:        s.City(),
		Bizcircle:   s.Bizcircle(),
		Range:       model.MonthRange{Start: strings.TrimSpace(s.start.Value()), End: strings.TrimSpace(s.end.Value())},
		View:        s.View(),
		Compare:     s.compare,
		ByBizcircle: s.byBizcircle,
	}
	if !s.compare {
		return q
	}
	for _, c := range s.candidates() {
		if !s.selected[c] {
			continue
		}
		if s.byBizcircle {
			q.Targets = append(q.Targets, model.CompareTarget{City: q.City, Bizcircle: c, Label: c})
		} else {
			q.Targets = append(q.Targets, model.CompareTarget{City: c, Label: locale.CityName(c)})
		}
	}
	return q
}

// fields lists the rows shown in the current mode.
func (s StatsForm) fields() []StatsField {
	if !s.compare {
		return []StatsField{StatsFieldMode, StatsFieldCity, StatsFieldBizcircle, StatsFieldStart, StatsFieldEnd, StatsFieldView}
	}
	fields := []StatsField{StatsFieldMode, StatsFieldCompareType}
	if s.byBizcircle {
		fields = append(fields, StatsFieldCity)
	}
	return append(fields, StatsFieldStart, StatsFieldEnd, StatsFieldTargets, StatsFieldView)
}

// Field returns the focused row.
func (s StatsForm) Field() StatsField {
	f := s.fields()
	return f[min(s.focus, len(f)-1)]
}

// Typing reports whether a month input has focus.
func (s StatsForm) Typing() bool {
	f := s.Field()
	return s.focused && (f == StatsFieldStart || f == StatsFieldEnd)
}

// Focus gives the form keyboard focus.
func (s StatsForm) Focus() (StatsForm, tea.Cmd) {
	s.focused = true
	return s.focusField(s.focus)
}

// Blur removes keyboard focus.
func (s StatsForm) Blur() StatsForm {
	s.focused = false
	s.start.Blur()
	s.end.Blur()
	return s
}

func (s StatsForm) focusField(n int) (StatsForm, tea.Cmd) {
	s.focus = max(0, min(n, len(s.fields())-1))
	s.start.Blur()
	s.end.Blur()
	if !s.focused {
		return s, nil
	}
	switch s.Field() {
	case StatsFieldStart:
		return s, s.start.Focus()
	case StatsFieldEnd:
		return s, s.end.Focus()
	}
	return s, nil
}

func emit(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}

func cycle(i, delta, n int) int {
	if n == 0 {
		return -1
	}
	return (i + delta + n) % n
}

// Update handles row navigation and value changes.
func (s StatsForm) Update(msg tea.Msg) (StatsForm, tea.Cmd) {
	if !s.focused {
		return s, nil
	}
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch {
	case key.Matches(keyMsg, fieldUp):
		return s.focusField(s.focus - 1)
	case key.Matches(keyMsg, fieldDown):
		return s.focusField(s.focus + 1)
	}

	delta := 0
	switch {
	case key.Matches(keyMsg, statsPrev):
		delta = -1
	case key.Matches(keyMsg, statsNext):
		delta = 1
	}

	switch s.Field() {
	case StatsFieldStart:
		var cmd tea.Cmd
		s.start, cmd = s.start.Update(msg)
		return s, cmd
	case StatsFieldEnd:
		var cmd tea.Cmd
		s.end, cmd = s.end.Update(msg)
		return s, cmd
	case StatsFieldTargets:
		n := len(s.candidates())
		if key.Matches(keyMsg, statsToggle) && n > 0 {
			return s.Toggle(s.candidates()[s.target]), nil
		}
		if delta != 0 && n > 0 {
			s.target = cycle(s.target, delta, n)
		}
		return s, nil
	}

	if delta == 0 {
		return s, nil
	}

	switch s.Field() {
	case StatsFieldMode:
		s = s.SetCompare(!s.compare)
		return s, emit(StatsModeChangedMsg{Compare: s.compare})
	case StatsFieldCompareType:
		s = s.SetByBizcircle(!s.byBizcircle)
		if s.byBizcircle {
			return s, emit(StatsCityChangedMsg{City: s.City()})
		}
	case StatsFieldCity:
		if len(s.cities) > 0 {
			s.city = cycle(max(s.city, 0), delta, len(s.cities))
			return s, emit(StatsCityChangedMsg{City: s.City()})
		}
	case StatsFieldBizcircle:
		// -1 is the "all bizcircles" entry.
		s.bizcircle = cycle(s.bizcircle+1, delta, len(s.bizcircles)+1) - 1
	case StatsFieldView:
		s.view = cycle(s.view%len(s.Views()), delta, len(s.Views()))
		return s, emit(StatsViewChangedMsg{View: s.View()})
	}
	return s, nil
}

// Render draws the form.
func (s StatsForm) Render() string {
	t := s.ctx
	label := func(text string) string {
		return s.theme.Subtitle.Width(12).Render(text)
	}
	value := func(f StatsField, text string) string {
		if s.focused && s.Field() == f {
			return s.theme.Selected.Render(text)
		}
		return s.theme.Normal.Render(text)
	}

	var rows []string
	for _, f := range s.fields() {
		switch f {
		case StatsFieldMode:
			mode := t.T(locale.KeyStatModeSingle, nil)
			if s.compare {
				mode = t.T(locale.KeyStatModeCompare, nil)
			}
			rows = append(rows, label("")+value(f, "‹ "+mode+" ›"))
		case StatsFieldCompareType:
			by := t.T(locale.KeyStatByCities, nil)
			if s.byBizcircle {
				by = t.T(locale.KeyStatByBiz, nil)
			}
			rows = append(rows, label("")+value(f, "‹ "+by+" ›"))
		case StatsFieldCity:
			rows = append(rows, label(t.T(locale.KeyLabelCity, nil))+value(f, "‹ "+locale.CityName(s.City())+" ›"))
		case StatsFieldBizcircle:
			biz := s.Bizcircle()
			if biz == "" {
				biz = t.T(locale.KeyStatAllBiz, nil)
			}
			rows = append(rows, label(t.T(locale.KeyLabelBiz, nil))+value(f, "‹ "+biz+" ›"))
		case StatsFieldStart:
			rows = append(rows, label(t.T(locale.KeyStatStart, nil))+s.start.View())
		case StatsFieldEnd:
			rows = append(rows, label(t.T(locale.KeyStatEnd, nil))+s.end.View())
		case StatsFieldTargets:
			rows = append(rows, s.renderTargets())
		case StatsFieldView:
			var tabs []string
			for i, v := range s.Views() {
				style := s.theme.Tab
				if i == s.view%len(s.Views()) {
					style = s.theme.ActiveTab
				}
				tabs = append(tabs, style.Render(render.ViewLabel(v, t)))
			}
			rows = append(rows, label("")+lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
		}
	}
	return strings.Join(rows, "\n")
}

func (s StatsForm) renderTargets() string {
	var parts []string
	for i, c := range s.candidates() {
		mark := "☐ "
		if s.selected[c] {
			mark = "☑ "
		}
		name := c
		if !s.byBizcircle {
			name = locale.CityName(c)
		}
		style := s.theme.Normal
		if s.focused && s.Field() == StatsFieldTargets && i == s.target {
			style = s.theme.Highlighted
		}
		parts = append(parts, style.Render(mark+name))
	}
	if len(parts) == 0 {
		return s.theme.Subtitle.Render(locale.Missing)
	}
	return lipgloss.NewStyle().Width(72).Render(strings.Join(parts, "  "))
}
