package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// renderHelp renders a centered help screen with all keybindings.
func renderHelp(keys KeyMap, width, height int) string {
	var sb strings.Builder

	sb.WriteString(helpTitleStyle.Render("Keyboard Shortcuts"))
	sb.WriteString("\n\n")

	sb.WriteString(helpSectionStyle.Render("Views"))
	sb.WriteString("\n")
	sb.WriteString(formatBinding(keys.Edges))
	sb.WriteString(formatBinding(keys.Configuration))
	sb.WriteString(formatBinding(keys.Sites))
	sb.WriteString(formatBinding(keys.NextView))
	sb.WriteString("\n")

	sb.WriteString(helpSectionStyle.Render("Edges"))
	sb.WriteString("\n")
	sb.WriteString(formatBinding(keys.Up))
	sb.WriteString(formatBinding(keys.Down))
	sb.WriteString(formatBinding(keys.Select))
	sb.WriteString(formatBinding(keys.Refresh))
	sb.WriteString("\n")

	sb.WriteString(helpSectionStyle.Render("Configuration"))
	sb.WriteString("\n")
	sb.WriteString(formatBinding(keys.Load))
	sb.WriteString(formatBinding(keys.Save))
	sb.WriteString(formatBinding(keys.Token))
	sb.WriteString(formatBinding(keys.NextField))
	sb.WriteString("\n")

	sb.WriteString(helpSectionStyle.Render("General"))
	sb.WriteString("\n")
	sb.WriteString(formatBinding(keys.Help))
	sb.WriteString(formatBinding(keys.Quit))

	sb.WriteString("\n")
	sb.WriteString(helpFooterStyle.Render("Press ? or Esc to close"))

	box := helpBoxStyle.Render(sb.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}

// formatBinding formats a single keybinding line.
func formatBinding(b key.Binding) string {
	help := b.Help()
	return helpKeyStyle.Render(padRight(help.Key, 10)) + helpDescStyle.Render(help.Desc) + "\n"
}

// padRight pads a string to the specified width.
func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
