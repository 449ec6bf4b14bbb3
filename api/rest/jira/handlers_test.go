package jira

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"codeberg.org/solari/bff/internal/backend"
	"codeberg.org/solari/bff/internal/docstore"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisconnectHandler_ClearsTokens(t *testing.T) {
	gin.SetMode(gin.TestMode)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/jira/disconnect", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"disconnected":true}`)) //nolint:errcheck // test server
	}))
	defer server.Close()

	store := docstore.NewMemoryStore()
	defer store.Close() //nolint:errcheck // test cleanup

	ctx := context.Background()
	require.NoError(t, store.Set(ctx, docstore.TeamPath("t1"), docstore.Document{
		"team_name":             "Acme",
		"jira_cloud_id":         "cloud-1",
		"jira_site_url":         "https://acme.atlassian.net",
		"jira_access_token":     "at",
		"jira_refresh_token":    "rt",
		"jira_token_expires_at": "2026-01-01T00:00:00Z",
	}))

	dir := docstore.NewDirectory(store)

	router := gin.New()
	RegisterRoutes(router.Group("/api/v1"), backend.New(backend.Config{BaseURL: server.URL, InternalKey: "internal", Timeout: time.Second}), dir)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/jira/disconnect", strings.NewReader(`{"teamId":"t1"}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"disconnected":true}`, w.Body.String())

	doc, err := store.Get(ctx, docstore.TeamPath("t1"))
	require.NoError(t, err)
	assert.Equal(t, docstore.Document{"team_name": "Acme"}, doc)

	team, err := dir.Team(ctx, "t1")
	require.NoError(t, err)
	assert.False(t, team.JiraConnected)
}

func TestProjectsHandler_Required(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.POST("/jira/projects", ProjectsHandler(backend.New(backend.Config{BaseURL: "http://127.0.0.1:0", InternalKey: "internal"})))

	req := httptest.NewRequest(http.MethodPost, "/jira/projects", strings.NewReader(`{"teamId":null}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"teamId is required"}`, w.Body.String())
}
