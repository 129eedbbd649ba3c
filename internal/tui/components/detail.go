package components

import (
	"math"
	"strings"

	"github.com/Veraticus/hpqaq/internal/render"
	"github.com/Veraticus/hpqaq/internal/tui/themes"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// DetailClosedMsg is emitted when the modal closes.
type DetailClosedMsg struct{}

// OpenLinkMsg asks for url to be opened in the system browser.
type OpenLinkMsg struct {
	URL string
}

var (
	modalClose = key.NewBinding(key.WithKeys("esc", "q", "x"), key.WithHelp("Esc/q", "close"))
	modalOpen  = key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "open link"))
)

// DetailModal is the listing detail dialog. While open it consumes every
// key and mouse event.
type DetailModal struct {
	theme  themes.Theme
	title  string
	hint   string
	url    string
	lines  []render.DetailLine
	width  int
	height int
	open   bool
}

// NewDetailModal creates a closed modal.
func NewDetailModal(theme themes.Theme) DetailModal {
	return DetailModal{theme: theme, width: 80, height: 24}
}

// Open shows lines under title. hint labels the open-link action.
func (d DetailModal) Open(title, hint string, lines []render.DetailLine, url string) DetailModal {
	d.title = title
	d.hint = hint
	d.lines = lines
	d.url = url
	d.open = true
	return d
}

// Close hides the modal.
func (d DetailModal) Close() DetailModal {
	d.open = false
	return d
}

// IsOpen reports whether the modal is visible.
func (d DetailModal) IsOpen() bool {
	return d.open
}

// URL returns the detail link of the shown listing.
func (d DetailModal) URL() string {
	return d.url
}

// SetSize records the screen size the modal is centered in.
func (d DetailModal) SetSize(w, h int) DetailModal {
	d.width, d.height = w, h
	return d
}

// Bounds returns the modal box position and size on screen.
func (d DetailModal) Bounds() (x, y, w, h int) {
	box := d.box()
	w, h = lipgloss.Width(box), lipgloss.Height(box)
	return centerOffset(d.width, w), centerOffset(d.height, h), w, h
}

// centerOffset matches lipgloss.Place's centering.
func centerOffset(outer, inner int) int {
	gap := outer - inner
	if gap <= 0 {
		return 0
	}
	return gap - int(math.Round(float64(gap)*0.5))
}

// Contains reports whether screen cell (x, y) is inside the box.
func (d DetailModal) Contains(x, y int) bool {
	bx, by, bw, bh := d.Bounds()
	return x >= bx && x < bx+bw && y >= by && y < by+bh
}

func closed() tea.Msg { return DetailClosedMsg{} }

// Update handles close, open-link and backdrop clicks.
func (d DetailModal) Update(msg tea.Msg) (DetailModal, tea.Cmd) {
	if !d.open {
		return d, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, modalClose):
			return d.Close(), closed
		case key.Matches(msg, modalOpen):
			url := d.url
			return d, func() tea.Msg { return OpenLinkMsg{URL: url} }
		}
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft && !d.Contains(msg.X, msg.Y) {
			return d.Close(), closed
		}
	}
	return d, nil
}

func (d DetailModal) box() string {
	labelWidth := 0
	for _, l := range d.lines {
		labelWidth = max(labelWidth, lipgloss.Width(l.Label))
	}

	var b strings.Builder
	b.WriteString(d.theme.Title.Render(d.title))
	b.WriteString("\n\n")
	for _, l := range d.lines {
		b.WriteString(d.theme.Subtitle.Width(labelWidth + 2).Render(l.Label + "："))
		b.WriteString(d.theme.Normal.Render(l.Value))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(d.theme.Subtitle.Render(modalOpen.Help().Key + " " + d.hint + " · " + modalClose.Help().Key))

	return d.theme.Modal.Render(b.String())
}

// View renders the modal over a dimmed backdrop filling the screen.
func (d DetailModal) View() string {
	if !d.open {
		return ""
	}
	return lipgloss.Place(d.width, d.height, lipgloss.Center, lipgloss.Center, d.box(),
		lipgloss.WithWhitespaceChars("░"),
		lipgloss.WithWhitespaceForeground(d.theme.Border))
}
