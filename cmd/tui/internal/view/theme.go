package view

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/meeledger/internal/settings"
)

// Styles groups the colors of one theme.
type Styles struct {
	Theme settings.Theme

	Title    lipgloss.Style
	Muted    lipgloss.Style
	Accent   lipgloss.Style
	Error    lipgloss.Style
	Success  lipgloss.Style
	Income   lipgloss.Style
	Expense  lipgloss.Style
	Panel    lipgloss.Style
	Border   lipgloss.Color
	Selected lipgloss.Style
}

func NewStyles(t settings.Theme) Styles {
	if t == settings.ThemeLight {
		return Styles{
			Theme:    t,
			Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#0f172a")),
			Muted:    lipgloss.NewStyle().Foreground(lipgloss.Color("#64748b")),
			Accent:   lipgloss.NewStyle().Foreground(lipgloss.Color("#7c3aed")),
			Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("#dc2626")),
			Success:  lipgloss.NewStyle().Foreground(lipgloss.Color("#16a34a")),
			Income:   lipgloss.NewStyle().Foreground(lipgloss.Color("#16a34a")),
			Expense:  lipgloss.NewStyle().Foreground(lipgloss.Color("#e11d48")),
			Panel:    lipgloss.NewStyle().Padding(1, 2).BorderStyle(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#94a3b8")),
			Border:   lipgloss.Color("#cbd5e1"),
			Selected: lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff")).Background(lipgloss.Color("#7c3aed")),
		}
	}

	return Styles{
		Theme:    settings.ThemeDark,
		Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#f8fafc")),
		Muted:    lipgloss.NewStyle().Faint(true),
		Accent:   lipgloss.NewStyle().Foreground(lipgloss.Color("205")),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		Success:  lipgloss.NewStyle().Foreground(lipgloss.Color("46")),
		Income:   lipgloss.NewStyle().Foreground(lipgloss.Color("#22c55e")),
		Expense:  lipgloss.NewStyle().Foreground(lipgloss.Color("#f43f5e")),
		Panel:    lipgloss.NewStyle().Padding(1, 2).BorderStyle(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("63")),
		Border:   lipgloss.Color("240"),
		Selected: lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")),
	}
}
