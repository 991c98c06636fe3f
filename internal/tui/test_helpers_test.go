package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"fleetdeck/internal/testutil"
)

// newTestModel creates a model backed by a mock API service, sized as if
// the terminal dimensions were already known.
func newTestModel(t *testing.T) (Model, *testutil.MockService) {
	t.Helper()
	mock := testutil.NewMockService()
	m := New(mock)
	m.ready = true
	m.width = 100
	m.height = 40
	return m, mock
}

// keyMsg builds a tea.KeyMsg from a readable key name.
func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "ctrl+l":
		return tea.KeyMsg{Type: tea.KeyCtrlL}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	case "ctrl+t":
		return tea.KeyMsg{Type: tea.KeyCtrlT}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEscape}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "f1":
		return tea.KeyMsg{Type: tea.KeyF1}
	case "f2":
		return tea.KeyMsg{Type: tea.KeyF2}
	case "f3":
		return tea.KeyMsg{Type: tea.KeyF3}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
}

// sendKey simulates a key press and returns the updated model and command.
func sendKey(m Model, k string) (Model, tea.Cmd) {
	updated, cmd := m.Update(keyMsg(k))
	return updated.(Model), cmd
}

// apply delivers a message to the model and returns the updated model.
func apply(m Model, msg tea.Msg) Model {
	updated, _ := m.Update(msg)
	return updated.(Model)
}

// runCmd executes a command and feeds its messages back into the model,
// the way the bubbletea runtime would. Batches are flattened.
func runCmd(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command")
	}
	for _, msg := range collectMsgs(cmd) {
		m = apply(m, msg)
	}
	return m
}

// collectMsgs executes a command and returns every resulting message,
// recursing into batches.
func collectMsgs(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collectMsgs(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}
