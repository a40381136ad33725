package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/classboard/internal/theme"
)

// Styles bundles palette + symbols + borders for one theme mode.
// All renderers pull from StylesFor.
type Styles struct {
	Title, Muted, Accent, Success, Error, Pending lipgloss.Style
	Card, Highlight, Done, Selected, Help         lipgloss.Style
	BorderColor                                   lipgloss.Color

	BoxUnchecked, BoxChecked string
	SymDone, SymPending      string
}

var light = Styles{
	Title:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("235")),
	Muted:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	Accent:    lipgloss.NewStyle().Foreground(lipgloss.Color("25")),
	Success:   lipgloss.NewStyle().Foreground(lipgloss.Color("28")),
	Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("160")).Bold(true),
	Pending:   lipgloss.NewStyle().Foreground(lipgloss.Color("172")),
	Card:      lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("246")).Padding(0, 1).Width(22),
	Highlight: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("28")).Background(lipgloss.Color("194")).Foreground(lipgloss.Color("22")).Padding(0, 1).Width(22),
	Done:      lipgloss.NewStyle().Faint(true).Strikethrough(true),
	Selected:  lipgloss.NewStyle().Bold(true).Reverse(true),
	Help:      lipgloss.NewStyle().Faint(true).Padding(1, 0, 0, 0),

	BorderColor:  lipgloss.Color("246"),
	BoxUnchecked: "☐", BoxChecked: "☑",
	SymDone: "✔", SymPending: "•",
}

var dark = Styles{
	Title:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255")),
	Muted:     lipgloss.NewStyle().Foreground(lipgloss.Color("243")),
	Accent:    lipgloss.NewStyle().Foreground(lipgloss.Color("81")),
	Success:   lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
	Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
	Pending:   lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
	Card:      lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Background(lipgloss.Color("235")).Foreground(lipgloss.Color("254")).Padding(0, 1).Width(22),
	Highlight: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("42")).Background(lipgloss.Color("22")).Foreground(lipgloss.Color("194")).Padding(0, 1).Width(22),
	Done:      lipgloss.NewStyle().Faint(true).Strikethrough(true),
	Selected:  lipgloss.NewStyle().Bold(true).Reverse(true),
	Help:      lipgloss.NewStyle().Faint(true).Padding(1, 0, 0, 0),

	BorderColor:  lipgloss.Color("240"),
	BoxUnchecked: "☐", BoxChecked: "☑",
	SymDone: "✔", SymPending: "•",
}

// StylesFor returns the palette for mode.
func StylesFor(mode theme.Mode) Styles {
	if mode == theme.Dark {
		return dark
	}
	return light
}
