// Package themes defines the dashboard color scheme.
package themes

import "github.com/charmbracelet/lipgloss"

// Theme defines the visual style for the TUI.
type Theme struct {
	Title         lipgloss.Style
	Subtitle      lipgloss.Style
	Normal        lipgloss.Style
	Bold          lipgloss.Style
	Selected      lipgloss.Style
	Highlighted   lipgloss.Style
	Panel         lipgloss.Style
	FocusedPanel  lipgloss.Style
	Modal         lipgloss.Style
	Backdrop      lipgloss.Style
	Badge         lipgloss.Style
	Toast         lipgloss.Style
	ToastError    lipgloss.Style
	Tab           lipgloss.Style
	ActiveTab     lipgloss.Style
	Disabled      lipgloss.Style
	StatusInfo    lipgloss.Style
	StatusError   lipgloss.Style
	StatusSuccess lipgloss.Style
	StatusPending lipgloss.Style
	Spark         lipgloss.Style
	Cursor        lipgloss.Style
	Primary       lipgloss.Color
	Secondary     lipgloss.Color
	Muted         lipgloss.Color
	Border        lipgloss.Color
	Foreground    lipgloss.Color
	Error         lipgloss.Color
	Success       lipgloss.Color
}

// Default is the default theme.
var Default = Theme{
	Primary:    lipgloss.Color("#7961ff"),
	Secondary:  lipgloss.Color("#00d5ff"),
	Success:    lipgloss.Color("#10b981"),
	Error:      lipgloss.Color("#ff48b4"),
	Foreground: lipgloss.Color("#eaf0ff"),
	Border:     lipgloss.Color("#404060"),
	Muted:      lipgloss.Color("#8088a8"),

	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#eaf0ff")),
	Subtitle: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#8088a8")),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#eaf0ff")),
	Bold: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#eaf0ff")),
	Selected: lipgloss.NewStyle().
		Background(lipgloss.Color("#7961ff")).
		Foreground(lipgloss.Color("#eaf0ff")).
		Bold(true),
	Highlighted: lipgloss.NewStyle().
		Background(lipgloss.Color("#404060")).
		Foreground(lipgloss.Color("#eaf0ff")),

	Panel: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#404060")).
		Padding(0, 1),
	FocusedPanel: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#00d5ff")).
		Padding(0, 1),
	Modal: lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(lipgloss.Color("#7961ff")).
		Padding(1, 2),
	Backdrop: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#404060")),
	Badge: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#00d5ff")).
		Padding(0, 1),
	Toast: lipgloss.NewStyle().
		Background(lipgloss.Color("#262640")).
		Foreground(lipgloss.Color("#eaf0ff")).
		Padding(0, 2),
	ToastError: lipgloss.NewStyle().
		Background(lipgloss.Color("#ff48b4")).
		Foreground(lipgloss.Color("#1a1a1a")).
		Padding(0, 2),
	Tab: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#8088a8")).
		Padding(0, 1),
	ActiveTab: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#eaf0ff")).
		Background(lipgloss.Color("#7961ff")).
		Padding(0, 1),
	Disabled: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#505060")),

	StatusSuccess: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#10b981")).
		Bold(true),
	StatusError: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#ff48b4")).
		Bold(true),
	StatusInfo: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#00d5ff")),
	StatusPending: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#8088a8")).
		Italic(true),

	Spark: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#00d5ff")),
	Cursor: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#ff48b4")),
}
