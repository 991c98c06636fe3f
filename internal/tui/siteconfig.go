package tui

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"fleetdeck/api"
)

// configFocus identifies which field of the Configuration view has focus.
type configFocus int

const (
	focusSiteID configFocus = iota
	focusEditor
)

// placeholderDoc is the example document shown in the empty editor.
const placeholderDoc = "{\n  \"pcc_max_export_kw\": 150\n}"

// configState holds the Configuration view session state: the entered
// site id and the editable config buffer. Both are ephemeral and are
// discarded when the operator navigates away.
type configState struct {
	siteInput textinput.Model
	editor    textarea.Model
	focus     configFocus
}

func newConfigState() configState {
	in := textinput.New()
	in.Placeholder = "site ID"
	in.CharLimit = 64
	in.Width = 40
	in.Prompt = ""
	in.Focus()

	ed := textarea.New()
	ed.Placeholder = placeholderDoc
	ed.CharLimit = 0
	ed.SetWidth(64)
	ed.SetHeight(14)
	ed.ShowLineNumbers = false

	return configState{siteInput: in, editor: ed}
}

// focusCmd returns the cursor blink command for the focused field.
func (s configState) focusCmd() tea.Cmd {
	return textinput.Blink
}

// configLoadedMsg carries a site's desired configuration (or the error).
type configLoadedMsg struct {
	gen    int
	siteID string
	cfg    api.SiteConfig
	err    error
}

// configSavedMsg reports the outcome of a save.
type configSavedMsg struct {
	gen    int
	siteID string
	err    error
}

// tokenGeneratedMsg carries a freshly minted enrollment token.
type tokenGeneratedMsg struct {
	gen    int
	siteID string
	token  string
	err    error
}

// loadSiteConfig requests the desired configuration for a site.
func (m Model) loadSiteConfig(gen int, siteID string) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		cfg, err := client.SiteConfig(context.Background(), siteID)
		return configLoadedMsg{gen: gen, siteID: siteID, cfg: cfg, err: err}
	}
}

// saveSiteConfig posts the parsed document to the config endpoint.
func (m Model) saveSiteConfig(gen int, siteID string, doc any) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		err := client.SaveSiteConfig(context.Background(), siteID, doc)
		return configSavedMsg{gen: gen, siteID: siteID, err: err}
	}
}

// generateToken mints an enrollment token for a site.
func (m Model) generateToken(gen int, siteID string) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		token, err := client.GenerateToken(context.Background(), siteID)
		return tokenGeneratedMsg{gen: gen, siteID: siteID, token: token, err: err}
	}
}

// siteID returns the trimmed site id input, or warns and reports false
// when it is empty. Every action shares this gate; no site-scoped
// request is ever issued without a site id.
func (m *Model) siteID() (string, bool) {
	id := strings.TrimSpace(m.config.siteInput.Value())
	if id == "" {
		m.notifier.Warn("Enter site ID")
		return "", false
	}
	return id, true
}

// updateConfiguration handles keys while the Configuration view is
// active. Action bindings are checked before input routing so the
// editor cannot swallow them. Each action is terminal: it validates,
// fires at most one request, and reports through the notifier.
func (m Model) updateConfiguration(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Load):
		siteID, ok := m.siteID()
		if !ok {
			return m, nil
		}
		m.gen++
		return m, m.loadSiteConfig(m.gen, siteID)

	case key.Matches(msg, m.keys.Save):
		siteID, ok := m.siteID()
		if !ok {
			return m, nil
		}
		// Parse locally before any I/O; the buffer is only forwarded
		// once it round-trips as JSON.
		var doc any
		if err := json.Unmarshal([]byte(m.config.editor.Value()), &doc); err != nil {
			m.notifier.Warn("Invalid JSON")
			return m, nil
		}
		m.gen++
		return m, m.saveSiteConfig(m.gen, siteID, doc)

	case key.Matches(msg, m.keys.Token):
		siteID, ok := m.siteID()
		if !ok {
			return m, nil
		}
		m.gen++
		return m, m.generateToken(m.gen, siteID)

	case key.Matches(msg, m.keys.NextField), key.Matches(msg, m.keys.PrevField):
		return m.toggleConfigFocus()
	}

	var cmd tea.Cmd
	if m.config.focus == focusSiteID {
		m.config.siteInput, cmd = m.config.siteInput.Update(msg)
	} else {
		m.config.editor, cmd = m.config.editor.Update(msg)
	}
	return m, cmd
}

// toggleConfigFocus moves focus between the site id input and the editor.
func (m Model) toggleConfigFocus() (tea.Model, tea.Cmd) {
	if m.config.focus == focusSiteID {
		m.config.focus = focusEditor
		m.config.siteInput.Blur()
		return m, m.config.editor.Focus()
	}
	m.config.focus = focusSiteID
	m.config.editor.Blur()
	return m, m.config.siteInput.Focus()
}

// applyConfigLoaded folds a load response into the editor. On failure
// the buffer is left untouched.
func (m Model) applyConfigLoaded(msg configLoadedMsg) Model {
	if msg.err != nil {
		m.notifier.Warn("Error: " + msg.err.Error())
		return m
	}
	pretty, err := json.MarshalIndent(msg.cfg, "", "  ")
	if err != nil {
		m.notifier.Warn("Error: " + err.Error())
		return m
	}
	m.config.editor.SetValue(string(pretty))
	return m
}

// renderConfiguration renders the site id input, the config editor, and
// the action hints.
func (m Model) renderConfiguration() string {
	siteLabel := formLabelStyle.Render("Site ID")
	editorLabel := formLabelStyle.Render("Desired config (JSON)")
	siteBox := formInputStyle
	editorBox := formInputStyle
	if m.config.focus == focusSiteID {
		siteLabel = formLabelFocusedStyle.Render("Site ID")
		siteBox = formInputFocusedStyle
	} else {
		editorLabel = formLabelFocusedStyle.Render("Desired config (JSON)")
		editorBox = formInputFocusedStyle
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Configuration"),
		"",
		siteLabel,
		siteBox.Render(m.config.siteInput.View()),
		"",
		editorLabel,
		editorBox.Render(m.config.editor.View()),
		"",
		mutedStyle.Render("ctrl+l: load | ctrl+s: save | ctrl+t: generate token"),
	)
}
