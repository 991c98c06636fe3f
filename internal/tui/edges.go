package tui

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"fleetdeck/api"
)

// edgesState holds the Edges view state. It is rebuilt on every
// navigation to the view; the edge collection is never cached.
type edgesState struct {
	loading bool
	edges   []api.Edge
	err     error

	cursor int

	// Detail pane for the selected edge's desired configuration.
	detailEdge    string
	detail        string
	detailErr     bool
	detailLoading bool
}

func newEdgesState() edgesState {
	return edgesState{loading: true}
}

// edgesLoadedMsg carries the edge collection (or the load error).
type edgesLoadedMsg struct {
	gen   int
	edges []api.Edge
	err   error
}

// edgeConfigMsg carries the desired configuration of a single edge.
type edgeConfigMsg struct {
	gen    int
	edgeID string
	cfg    api.SiteConfig
	err    error
}

// loadEdges requests the edge collection.
func (m Model) loadEdges(gen int) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		edges, err := client.ListEdges(context.Background())
		return edgesLoadedMsg{gen: gen, edges: edges, err: err}
	}
}

// loadEdgeConfig requests the desired configuration for one edge.
func (m Model) loadEdgeConfig(gen int, edgeID string) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		cfg, err := client.EdgeConfig(context.Background(), edgeID)
		return edgeConfigMsg{gen: gen, edgeID: edgeID, cfg: cfg, err: err}
	}
}

// updateEdges handles keys while the Edges view is active.
func (m Model) updateEdges(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Refresh):
		m.gen++
		m.edges = newEdgesState()
		return m, tea.Batch(m.loadEdges(m.gen), m.checkHealth())

	case key.Matches(msg, m.keys.Up):
		if m.edges.cursor > 0 {
			m.edges.cursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.edges.cursor < len(m.edges.edges)-1 {
			m.edges.cursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.Select):
		if len(m.edges.edges) == 0 {
			return m, nil
		}
		edge := m.edges.edges[m.edges.cursor]
		m.gen++
		m.edges.detailEdge = edge.EdgeID
		m.edges.detail = ""
		m.edges.detailErr = false
		m.edges.detailLoading = true
		return m, m.loadEdgeConfig(m.gen, edge.EdgeID)
	}

	return m, nil
}

// applyEdgeConfig folds an edge config response into the detail pane.
func (m Model) applyEdgeConfig(msg edgeConfigMsg) Model {
	m.edges.detailLoading = false
	m.edges.detailEdge = msg.edgeID
	if msg.err != nil {
		m.edges.detail = msg.err.Error()
		m.edges.detailErr = true
		return m
	}
	pretty, err := json.MarshalIndent(msg.cfg, "", "  ")
	if err != nil {
		m.edges.detail = err.Error()
		m.edges.detailErr = true
		return m
	}
	m.edges.detail = string(pretty)
	m.edges.detailErr = false
	return m
}

// renderEdges renders the edge list and, below it, the detail pane for
// the selected edge.
func (m Model) renderEdges() string {
	parts := []string{titleStyle.Render("Edges"), ""}

	switch {
	case m.edges.loading:
		parts = append(parts, mutedStyle.Render("Loading edges..."))

	case m.edges.err != nil:
		// The list stays in place (empty); the error is appended below it.
		parts = append(parts, errorStyle.Render("Error loading edges: "+m.edges.err.Error()))

	case len(m.edges.edges) == 0:
		parts = append(parts, mutedStyle.Render("No edges registered."))

	default:
		for i, e := range m.edges.edges {
			line := fmt.Sprintf("%s (site: %s)", e.EdgeID, e.SiteID)
			if i == m.edges.cursor {
				line = selectedStyle.Render("> " + line)
			} else {
				line = "  " + line
			}
			parts = append(parts, line)
		}
	}

	if m.edges.detailEdge != "" {
		parts = append(parts, "", headerStyle.Render("Desired config: "+m.edges.detailEdge))
		switch {
		case m.edges.detailLoading:
			parts = append(parts, mutedStyle.Render("Loading..."))
		case m.edges.detailErr:
			parts = append(parts, errorStyle.Render("Error loading config: "+m.edges.detail))
		default:
			parts = append(parts, m.edges.detail)
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
