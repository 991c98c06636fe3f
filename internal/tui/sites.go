package tui

import "github.com/charmbracelet/lipgloss"

// renderSites renders the static Sites view. Sites have no listing
// endpoint; configuration is addressed by site id from the
// Configuration view.
func (m Model) renderSites() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Sites"),
		"",
		"Site management is driven by site ID. Open the Configuration view (F2)",
		"and enter a site ID to load or edit its desired configuration, or to",
		"generate an enrollment token for new devices.",
	)
}
