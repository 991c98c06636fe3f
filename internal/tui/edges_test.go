package tui

import (
	"context"
	"strings"
	"testing"

	"fleetdeck/api"
	"fleetdeck/internal/testutil"
)

func TestEdgesRendering(t *testing.T) {
	t.Run("OneItemPerEdgeInServerOrder", func(t *testing.T) {
		m, _ := newTestModel(t)
		m = apply(m, edgesLoadedMsg{gen: m.gen, edges: []api.Edge{
			{EdgeID: "e1", SiteID: "s1"},
		}})

		out := m.View()
		if !strings.Contains(out, "e1 (site: s1)") {
			t.Errorf("expected rendered edge row, got:\n%s", out)
		}
	})

	t.Run("OrderPreserved", func(t *testing.T) {
		m, _ := newTestModel(t)
		m = apply(m, edgesLoadedMsg{gen: m.gen, edges: []api.Edge{
			{EdgeID: "zz", SiteID: "s1"},
			{EdgeID: "aa", SiteID: "s2"},
		}})

		out := m.View()
		if strings.Index(out, "zz (site: s1)") > strings.Index(out, "aa (site: s2)") {
			t.Error("edges must render in the order received, not re-sorted")
		}
	})

	t.Run("EmptyCollection", func(t *testing.T) {
		m, _ := newTestModel(t)
		m = apply(m, edgesLoadedMsg{gen: m.gen, edges: nil})

		if !strings.Contains(m.View(), "No edges registered.") {
			t.Error("empty collection should render the placeholder text")
		}
	})

	t.Run("LoadFailure", func(t *testing.T) {
		m, _ := newTestModel(t)
		m = apply(m, edgesLoadedMsg{gen: m.gen, err: &api.HTTPError{
			Status:     500,
			StatusText: "Internal Server Error",
			Body:       "db down",
		}})

		out := m.View()
		if !strings.Contains(out, "Error loading edges: 500 Internal Server Error: db down") {
			t.Errorf("expected verbatim error text, got:\n%s", out)
		}
	})
}

func TestEdgeSelection(t *testing.T) {
	loaded := func(t *testing.T) (Model, *testutil.MockService) {
		t.Helper()
		m, mock := newTestModel(t)
		m = apply(m, edgesLoadedMsg{gen: m.gen, edges: testutil.Edges()})
		return m, mock
	}

	t.Run("CursorMoves", func(t *testing.T) {
		m, _ := loaded(t)
		m, _ = sendKey(m, "j")
		m, _ = sendKey(m, "j")
		if m.edges.cursor != 2 {
			t.Errorf("cursor = %d, want 2", m.edges.cursor)
		}
		m, _ = sendKey(m, "j") // clamped at the end
		if m.edges.cursor != 2 {
			t.Errorf("cursor = %d, want clamp at 2", m.edges.cursor)
		}
		m, _ = sendKey(m, "k")
		if m.edges.cursor != 1 {
			t.Errorf("cursor = %d, want 1", m.edges.cursor)
		}
	})

	t.Run("EnterFetchesEdgeConfig", func(t *testing.T) {
		m, mock := loaded(t)
		mock.EdgeConfigFn = func(ctx context.Context, edgeID string) (api.SiteConfig, error) {
			return api.SiteConfig{"pcc_max_export_kw": float64(150)}, nil
		}

		m, cmd := sendKey(m, "enter")
		if !m.edges.detailLoading {
			t.Error("detail pane should be loading after enter")
		}
		m = runCmd(t, m, cmd)

		if got, _ := mock.LastCall("EdgeConfig"); got.EdgeID != "edge-1" {
			t.Errorf("EdgeConfig called with %q, want edge-1", got.EdgeID)
		}
		out := m.View()
		if !strings.Contains(out, "Desired config: edge-1") {
			t.Error("detail pane heading missing")
		}
		if !strings.Contains(out, `"pcc_max_export_kw": 150`) {
			t.Errorf("detail pane should show the pretty-printed config, got:\n%s", out)
		}
	})

	t.Run("EnterOnEmptyListDoesNothing", func(t *testing.T) {
		m, mock := newTestModel(t)
		m = apply(m, edgesLoadedMsg{gen: m.gen, edges: nil})

		_, cmd := sendKey(m, "enter")
		if cmd != nil {
			t.Error("no request should be issued with an empty list")
		}
		if mock.CallCount("EdgeConfig") != 0 {
			t.Error("EdgeConfig should not be called")
		}
	})

	t.Run("EdgeConfigFailureShownInline", func(t *testing.T) {
		m, mock := loaded(t)
		mock.EdgeConfigFn = func(ctx context.Context, edgeID string) (api.SiteConfig, error) {
			return nil, &api.HTTPError{Status: 404, StatusText: "Not Found", Body: "edge not registered"}
		}

		m, cmd := sendKey(m, "enter")
		m = runCmd(t, m, cmd)

		if !strings.Contains(m.View(), "Error loading config: 404 Not Found: edge not registered") {
			t.Error("detail pane should show the error inline")
		}
		if m.board.Active() != nil {
			t.Error("edge detail failures are inline, not modal")
		}
	})
}

func TestEdgesRefresh(t *testing.T) {
	m, mock := newTestModel(t)
	m = apply(m, edgesLoadedMsg{gen: m.gen, edges: testutil.Edges()})
	mock.Reset()

	m, cmd := sendKey(m, "r")
	if !m.edges.loading {
		t.Error("refresh should reset the view to loading")
	}
	runCmd(t, m, cmd)

	if mock.CallCount("ListEdges") != 1 {
		t.Errorf("ListEdges calls = %d, want 1", mock.CallCount("ListEdges"))
	}
}
