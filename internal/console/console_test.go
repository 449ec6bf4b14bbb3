package console

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T, handler http.HandlerFunc) *Model {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	m, err := NewApp(NewClient(server.URL, "tok"), "notty", 80)
	require.NoError(t, err)

	return m
}

// runs cmd and any batched commands, collecting their messages
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}

	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(c)...)
		}
		return out
	}

	return []tea.Msg{msg}
}

func runCommand(t *testing.T, m *Model, input string) {
	t.Helper()

	for _, r := range input {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, StateLoading, m.State())

	for _, msg := range collect(cmd) {
		switch msg.(type) {
		case ResultMsg, ErrorMsg:
			m.Update(msg)
		}
	}
}

func TestConsole_Team(t *testing.T) {
	m := newTestApp(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/teams/current", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"id":"t1","name":"Acme","billing_status":"active","jira_connected":true,"jira_site_url":"https://acme.atlassian.net","slack_connected":false}`) //nolint:errcheck // test server
	})

	runCommand(t, m, "team")

	require.Equal(t, StateResult, m.State())
	view := m.View()
	assert.Contains(t, view, "Acme")
	assert.Contains(t, view, "active")
	assert.Contains(t, view, "not connected")
}

func TestConsole_Access(t *testing.T) {
	m := newTestApp(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/access", r.URL.Path)
		assert.Equal(t, dashboardPath, r.URL.Query().Get("path"))

		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"decision":"allow","banner":"pending_payment"}`) //nolint:errcheck // test server
	})

	runCommand(t, m, "acc")

	require.Equal(t, StateResult, m.State())
	assert.Contains(t, m.View(), "allow")
	assert.Contains(t, m.View(), "pending_payment")
}

func TestConsole_Analytics(t *testing.T) {
	m := newTestApp(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		switch r.URL.Path {
		case "/api/v1/teams/current":
			io.WriteString(w, `{"id":"t1","name":"Acme","billing_status":null}`) //nolint:errcheck // test server
		case "/api/v1/ratings/agent-analytics":
			body, _ := io.ReadAll(r.Body) //nolint:errcheck // test server
			assert.JSONEq(t, `{"teamId":"t1","agentId":"agent-7"}`, string(body))
			io.WriteString(w, `{"summary":{"up":3,"down":1,"rated_count":4},"thumbs_up_text":"3 of 4 rated answers marked helpful","source_accuracy_text":""}`) //nolint:errcheck // test server
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	})

	runCommand(t, m, "analytics agent-7")

	require.Equal(t, StateResult, m.State())
	assert.Contains(t, m.View(), "3 of 4 rated answers marked helpful")
}

func TestConsole_AnalyticsNeedsAgent(t *testing.T) {
	m := newTestApp(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected")
	})

	for _, r := range "analytics" {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
	assert.Equal(t, StateResult, m.State())
	assert.Contains(t, m.View(), "usage: analytics <agentId>")
}

func TestConsole_ErrorShown(t *testing.T) {
	m := newTestApp(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		io.WriteString(w, `{"error":"unauthorized","message":"authentication required"}`) //nolint:errcheck // test server
	})

	runCommand(t, m, "team")

	require.Equal(t, StateResult, m.State())
	assert.Contains(t, m.View(), "team failed: unauthorized: authentication required")

	// esc goes back to the palette
	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, StatePalette, m.State())
}

func TestConsole_Quit(t *testing.T) {
	m := newTestApp(t, func(w http.ResponseWriter, r *http.Request) {})

	for _, r := range "quit" {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}
