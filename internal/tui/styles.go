package tui

import "github.com/charmbracelet/lipgloss"

// Colors
var (
	subtle    = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#383838"}
	highlight = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"}
	text      = lipgloss.AdaptiveColor{Light: "#1A1A1A", Dark: "#FAFAFA"}
	muted     = lipgloss.AdaptiveColor{Light: "#A49FA5", Dark: "#777777"}
	danger    = lipgloss.Color("#FF6666")
	okGreen   = lipgloss.Color("#5AF78E")
)

// Layout styles
var (
	tabStyle = lipgloss.NewStyle().
			Foreground(muted).
			Padding(0, 2)

	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(highlight).
			Padding(0, 2)

	bodyStyle = lipgloss.NewStyle().
			Padding(1, 2)

	footerStyle = lipgloss.NewStyle().
			Foreground(muted).
			Padding(0, 1)
)

// Text styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(highlight)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(text)

	mutedStyle = lipgloss.NewStyle().
			Foreground(muted)

	errorStyle = lipgloss.NewStyle().
			Foreground(danger)

	selectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(highlight)

	okBadgeStyle = lipgloss.NewStyle().
			Foreground(okGreen)

	downBadgeStyle = lipgloss.NewStyle().
			Foreground(danger)
)

// Form styles
var (
	formLabelStyle = lipgloss.NewStyle().
			Foreground(muted)

	formLabelFocusedStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(highlight)

	formInputStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(subtle).
			Padding(0, 1)

	formInputFocusedStyle = lipgloss.NewStyle().
				BorderStyle(lipgloss.NormalBorder()).
				BorderForeground(highlight).
				Padding(0, 1)
)

// Overlay styles (notices and help)
var (
	overlayStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(highlight).
			Padding(1, 2).
			Background(lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#1A1A1A"})

	overlayTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(highlight).
				MarginBottom(1)

	overlayWarnTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(danger).
				MarginBottom(1)

	revealValueStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(text)

	helpBoxStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.DoubleBorder()).
			BorderForeground(highlight).
			Padding(1, 2)

	helpTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(highlight)

	helpSectionStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(text)

	helpKeyStyle = lipgloss.NewStyle().
			Foreground(highlight)

	helpDescStyle = lipgloss.NewStyle().
			Foreground(muted)

	helpFooterStyle = lipgloss.NewStyle().
			Foreground(muted).
			Italic(true)
)
