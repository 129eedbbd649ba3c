package components

import (
	"slices"
	"strings"

	"github.com/Veraticus/hpqaq/internal/locale"
	"github.com/Veraticus/hpqaq/internal/model"
	"github.com/Veraticus/hpqaq/internal/tui/themes"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Filter form element ids, shared with the locale registry.
const (
	FieldCity      = "f-city"
	FieldRegion    = "f-region"
	FieldBizcircle = "f-bizcircle"
	FieldCommunity = "f-community"
	FieldLayout    = "f-layout"
)

var refinementFields = []string{FieldRegion, FieldBizcircle, FieldCommunity, FieldLayout}

// CityChangedMsg is emitted when the user picks another city.
type CityChangedMsg struct {
	City string
}

var (
	fieldUp   = key.NewBinding(key.WithKeys("up"))
	fieldDown = key.NewBinding(key.WithKeys("down"))
	cityPrev  = key.NewBinding(key.WithKeys("left", "h"))
	cityNext  = key.NewBinding(key.WithKeys("right", "l"))
)

// FilterForm edits the listing filter. The first field selects the city
// from the cities the API reports; the rest are free text.
type FilterForm struct {
	theme   themes.Theme
	strings locale.Strings
	cities  []string
	inputs  []textinput.Model
	city    int
	focus   int
	focused bool
}

// NewFilterForm creates a form over cities with city preselected when
// present.
func NewFilterForm(theme themes.Theme, cities []string) FilterForm {
	f := FilterForm{theme: theme, city: -1}
	for range refinementFields {
		in := textinput.New()
		in.CharLimit = 40
		in.Width = 24
		in.Prompt = ""
		f.inputs = append(f.inputs, in)
	}
	return f.SetCities(cities, "")
}

// SetCities replaces the city options and selects preferred, or keeps the
// current selection, or falls back to the first city.
func (f FilterForm) SetCities(cities []string, preferred string) FilterForm {
	current := f.City()
	f.cities = slices.Clone(cities)
	f.city = -1
	for _, c := range []string{preferred, current} {
		if i := slices.Index(f.cities, c); c != "" && i >= 0 {
			f.city = i
			return f
		}
	}
	if len(f.cities) > 0 {
		f.city = 0
	}
	return f
}

// Cities returns the selectable cities.
func (f FilterForm) Cities() []string {
	return f.cities
}

// City returns the selected city code, or "" when none.
func (f FilterForm) City() string {
	if f.city < 0 || f.city >= len(f.cities) {
		return ""
	}
	return f.cities[f.city]
}

// SetCity selects city when it is one of the options.
func (f FilterForm) SetCity(city string) FilterForm {
	if i := slices.Index(f.cities, city); i >= 0 {
		f.city = i
	}
	return f
}

// Filter returns the trimmed filter the form describes.
func (f FilterForm) Filter() model.Filter {
	return model.Filter{
		City:      f.City(),
		Region:    f.inputs[0].Value(),
		Bizcircle: f.inputs[1].Value(),
		Community: f.inputs[2].Value(),
		Layout:    f.inputs[3].Value(),
	}.Trimmed()
}

// Reset clears the free-text fields and keeps the city.
func (f FilterForm) Reset() FilterForm {
	for i := range f.inputs {
		f.inputs[i].SetValue("")
	}
	return f
}

// SetValue fills the free-text field id.
func (f FilterForm) SetValue(id, value string) FilterForm {
	if i := slices.Index(refinementFields, id); i >= 0 {
		f.inputs[i].SetValue(value)
	}
	return f
}

// ApplyStrings relabels the form for the active locale.
func (f FilterForm) ApplyStrings(s locale.Strings) FilterForm {
	f.strings = s
	for i, id := range refinementFields {
		f.inputs[i].Placeholder = s.Placeholder(id)
	}
	return f
}

// Focus gives the form keyboard focus.
func (f FilterForm) Focus() (FilterForm, tea.Cmd) {
	f.focused = true
	return f.focusField(f.focus)
}

// Blur removes keyboard focus.
func (f FilterForm) Blur() FilterForm {
	f.focused = false
	for i := range f.inputs {
		f.inputs[i].Blur()
	}
	return f
}

// Typing reports whether a text field has focus.
func (f FilterForm) Typing() bool {
	return f.focused && f.focus > 0
}

// Focused reports whether the form has keyboard focus.
func (f FilterForm) Focused() bool {
	return f.focused
}

func (f FilterForm) focusField(n int) (FilterForm, tea.Cmd) {
	f.focus = max(0, min(n, len(f.inputs)))
	var cmd tea.Cmd
	for i := range f.inputs {
		if i+1 == f.focus && f.focused {
			cmd = f.inputs[i].Focus()
		} else {
			f.inputs[i].Blur()
		}
	}
	return f, cmd
}

// Update handles field navigation, city cycling and text entry.
func (f FilterForm) Update(msg tea.Msg) (FilterForm, tea.Cmd) {
	if !f.focused {
		return f, nil
	}
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return f, nil
	}

	switch {
	case key.Matches(keyMsg, fieldUp):
		return f.focusField(f.focus - 1)
	case key.Matches(keyMsg, fieldDown):
		return f.focusField(f.focus + 1)
	}

	if f.focus == 0 {
		if len(f.cities) == 0 {
			return f, nil
		}
		delta := 0
		switch {
		case key.Matches(keyMsg, cityPrev):
			delta = -1
		case key.Matches(keyMsg, cityNext):
			delta = 1
		}
		if delta == 0 {
			return f, nil
		}
		f.city = (max(f.city, 0) + delta + len(f.cities)) % len(f.cities)
		city := f.City()
		return f, func() tea.Msg { return CityChangedMsg{City: city} }
	}

	var cmd tea.Cmd
	f.inputs[f.focus-1], cmd = f.inputs[f.focus-1].Update(msg)
	return f, cmd
}

// View renders the form as a label/value column.
func (f FilterForm) View() string {
	label := func(id string) string {
		return f.theme.Subtitle.Width(8).Render(f.strings.Label(id))
	}

	cityValue := locale.CityName(f.City())
	if len(f.cities) > 1 {
		cityValue = "‹ " + cityValue + " ›"
	}
	cityStyle := f.theme.Normal
	if f.focused && f.focus == 0 {
		cityStyle = f.theme.Selected
	}

	lines := []string{lipgloss.JoinHorizontal(lipgloss.Top, label(FieldCity), cityStyle.Render(cityValue))}
	for i, id := range refinementFields {
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, label(id), f.inputs[i].View()))
	}
	return strings.Join(lines, "\n")
}
