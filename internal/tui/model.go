// Package tui implements the fleetdeck terminal console: three views
// (Edges, Configuration, Sites) over the fleet control-plane API.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"fleetdeck/api"
)

// View identifies which screen is currently shown.
type View int

const (
	ViewEdges View = iota
	ViewConfiguration
	ViewSites
)

// viewCount is the total number of views.
const viewCount = 3

func (v View) String() string {
	switch v {
	case ViewEdges:
		return "Edges"
	case ViewConfiguration:
		return "Configuration"
	case ViewSites:
		return "Sites"
	default:
		return "Unknown"
	}
}

// apiHealth is the reachability state shown in the footer badge.
type apiHealth int

const (
	healthUnknown apiHealth = iota
	healthOK
	healthDown
)

// Model is the main console model. Exactly one view is rendered per
// frame; switching views rebuilds the frame, so no stale screen content
// can survive a navigation.
type Model struct {
	width  int
	height int

	// Ready indicates the terminal size is known.
	ready bool

	keys   KeyMap
	client api.Service

	view View

	// gen is bumped on every navigation and every action start. Async
	// results carry the generation they were started under and are
	// dropped when the counter has moved on, so a stale response can
	// neither mutate a view it no longer belongs to nor overwrite the
	// outcome of a newer request.
	gen int

	board    *NoticeBoard
	notifier Notifier

	edges  edgesState
	config configState

	showHelp bool
	health   apiHealth
}

// healthMsg reports the result of an API reachability probe.
type healthMsg struct {
	err error
}

// New creates a console model backed by the given API service.
func New(client api.Service) Model {
	board := NewNoticeBoard()
	return Model{
		keys:     DefaultKeyMap(),
		client:   client,
		view:     ViewEdges,
		board:    board,
		notifier: board,
		edges:    newEdgesState(),
		config:   newConfigState(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadEdges(m.gen), m.checkHealth())
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case healthMsg:
		if msg.err != nil {
			m.health = healthDown
		} else {
			m.health = healthOK
		}
		return m, nil

	case edgesLoadedMsg:
		if msg.gen != m.gen || m.view != ViewEdges {
			return m, nil
		}
		m.edges.loading = false
		m.edges.edges = msg.edges
		m.edges.err = msg.err
		return m, nil

	case edgeConfigMsg:
		if msg.gen != m.gen || m.view != ViewEdges {
			return m, nil
		}
		return m.applyEdgeConfig(msg), nil

	case configLoadedMsg:
		if msg.gen != m.gen || m.view != ViewConfiguration {
			return m, nil
		}
		return m.applyConfigLoaded(msg), nil

	case configSavedMsg:
		if msg.gen != m.gen || m.view != ViewConfiguration {
			return m, nil
		}
		if msg.err != nil {
			m.notifier.Warn("Error: " + msg.err.Error())
		} else {
			m.notifier.Info("Saved successfully")
		}
		return m, nil

	case tokenGeneratedMsg:
		if msg.gen != m.gen || m.view != ViewConfiguration {
			return m, nil
		}
		if msg.err != nil {
			m.notifier.Warn("Error: " + msg.err.Error())
		} else {
			m.notifier.Reveal("Enrollment Token:", msg.token)
		}
		return m, nil
	}

	return m, nil
}

// handleKey routes key presses. Modal overlays capture all input;
// function-key view switching works everywhere; plain-letter bindings
// only apply in views without focused text fields.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		return m, tea.Quit
	}

	if m.board.Active() != nil {
		if key.Matches(msg, m.keys.Dismiss, m.keys.Select) {
			m.board.Dismiss()
		}
		return m, nil
	}

	if m.showHelp {
		if key.Matches(msg, m.keys.Help, m.keys.Dismiss, m.keys.Quit) {
			m.showHelp = false
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Edges):
		return m.switchView(ViewEdges)
	case key.Matches(msg, m.keys.Configuration):
		return m.switchView(ViewConfiguration)
	case key.Matches(msg, m.keys.Sites):
		return m.switchView(ViewSites)
	}

	if m.view == ViewConfiguration {
		return m.updateConfiguration(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil
	case key.Matches(msg, m.keys.NextView):
		return m.switchView((m.view + 1) % viewCount)
	}

	if m.view == ViewEdges {
		return m.updateEdges(msg)
	}
	return m, nil
}

// switchView makes v the active view, discarding the previous view's
// session state. The generation bump invalidates every pending request
// started from the old view.
func (m Model) switchView(v View) (tea.Model, tea.Cmd) {
	m.gen++
	m.view = v
	m.showHelp = false

	switch v {
	case ViewEdges:
		m.edges = newEdgesState()
		return m, tea.Batch(m.loadEdges(m.gen), m.checkHealth())
	case ViewConfiguration:
		m.config = newConfigState()
		return m, m.config.focusCmd()
	default:
		return m, nil
	}
}

// checkHealth probes the API health endpoint for the footer badge.
func (m Model) checkHealth() tea.Cmd {
	client := m.client
	return func() tea.Msg {
		return healthMsg{err: client.Health(context.Background())}
	}
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	if n := m.board.Active(); n != nil {
		return m.renderNotice(n)
	}
	if m.showHelp {
		return renderHelp(m.keys, m.width, m.height)
	}

	header := m.renderTabs()
	footer := m.renderFooter()

	var body string
	switch m.view {
	case ViewEdges:
		body = m.renderEdges()
	case ViewConfiguration:
		body = m.renderConfiguration()
	case ViewSites:
		body = m.renderSites()
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, bodyStyle.Render(body), footer)
}

// renderTabs renders the view switcher header.
func (m Model) renderTabs() string {
	tabs := make([]string, 0, viewCount)
	for v := ViewEdges; v < viewCount; v++ {
		style := tabStyle
		if v == m.view {
			style = activeTabStyle
		}
		tabs = append(tabs, style.Render(v.String()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

// renderFooter renders per-view key hints and the API health badge.
func (m Model) renderFooter() string {
	var hints string
	switch m.view {
	case ViewEdges:
		hints = "j/k: select | enter: show config | r: refresh | F2/F3: views | ?: help | q: quit"
	case ViewConfiguration:
		hints = "ctrl+l: load | ctrl+s: save | ctrl+t: token | tab: field | F1/F3: views"
	case ViewSites:
		hints = "F1/F2: views | ?: help | q: quit"
	}

	var badge string
	switch m.health {
	case healthOK:
		badge = okBadgeStyle.Render("● API")
	case healthDown:
		badge = downBadgeStyle.Render("○ API unreachable")
	default:
		badge = mutedStyle.Render("○ API …")
	}

	return footerStyle.Width(m.width).Render(hints + "   " + badge)
}
