package teams

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"codeberg.org/solari/bff/internal/auth"
	"codeberg.org/solari/bff/internal/docstore"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter(t *testing.T) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)
	t.Setenv("JWT_SECRET", "teams-test-secret")

	ctx := context.Background()
	store := docstore.NewMemoryStore()
	t.Cleanup(func() { store.Close() }) //nolint:errcheck // test cleanup

	seed := map[string]docstore.Document{
		docstore.UserPath("uid-ana"): {"teamId": "team-1"},
		docstore.UserPath("uid-ben"): {"email": "ben@example.com"},
		docstore.UserPath("uid-cy"):  {"teamId": "team-gone"},
		docstore.TeamPath("team-1"): {
			"team_name":         "Acme",
			"billing":           map[string]any{"status": "active"},
			"jira_cloud_id":     "cloud-1",
			"jira_site_url":     "https://acme.atlassian.net",
			"jira_access_token": "secret",
			"slack_bot_token":   "xoxb-secret",
		},
		docstore.SlackInstallationPath("team-1", "uid-ana", "inst-1"): {
			"slack_team_id":   "T123",
			"slack_team_name": "Acme Slack",
			"bot_token":       "xoxb-secret",
			"scopes":          "chat:write,channels:read",
			"installed_at":    "2026-01-02T03:04:05Z",
		},
	}

	for path, doc := range seed {
		require.NoError(t, store.Set(ctx, path, doc))
	}

	router := gin.New()
	RegisterRoutes(router.Group("/api/v1"), docstore.NewDirectory(store), auth.NewSessionStore("teams-session-secret-0123456789", false))

	return router
}

func get(t *testing.T, router *gin.Engine, path, uid string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	if uid != "" {
		token, err := auth.GenerateJWT(uid, "")
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	return w
}

func TestGetCurrentTeamHandler(t *testing.T) {
	router := newRouter(t)

	w := get(t, router, "/api/v1/teams/current", "uid-ana")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{
		"id": "team-1",
		"name": "Acme",
		"billing_status": "active",
		"jira_connected": true,
		"jira_site_url": "https://acme.atlassian.net",
		"slack_connected": true
	}`, w.Body.String())
	assert.NotContains(t, w.Body.String(), "secret")
}

func TestGetCurrentTeamHandler_Errors(t *testing.T) {
	router := newRouter(t)

	assert.Equal(t, http.StatusUnauthorized, get(t, router, "/api/v1/teams/current", "").Code)
	assert.Equal(t, http.StatusNotFound, get(t, router, "/api/v1/teams/current", "uid-ben").Code)
	assert.Equal(t, http.StatusNotFound, get(t, router, "/api/v1/teams/current", "uid-cy").Code)
	assert.Equal(t, http.StatusNotFound, get(t, router, "/api/v1/teams/current", "uid-nobody").Code)
}

func TestListSlackInstallationsHandler(t *testing.T) {
	router := newRouter(t)

	w := get(t, router, "/api/v1/teams/current/slack-installations", "uid-ana")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"installations":[{
		"id": "inst-1",
		"slack_team_id": "T123",
		"slack_team_name": "Acme Slack",
		"scopes": ["chat:write", "channels:read"],
		"has_bot_token": true,
		"has_user_token": false,
		"installed_at": "2026-01-02T03:04:05Z"
	}]}`, w.Body.String())
}
