package access

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"codeberg.org/solari/bff/internal/accessgate"
	"codeberg.org/solari/bff/internal/auth"
	"codeberg.org/solari/bff/internal/docstore"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter(t *testing.T) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)
	t.Setenv("JWT_SECRET", "access-test-secret")

	ctx := context.Background()
	store := docstore.NewMemoryStore()
	t.Cleanup(func() { store.Close() }) //nolint:errcheck // test cleanup

	require.NoError(t, store.Set(ctx, docstore.UserPath("uid-ana"), docstore.Document{"teamId": "team-1"}))
	require.NoError(t, store.Set(ctx, docstore.TeamPath("team-1"), docstore.Document{
		"billing": map[string]any{"status": "pending_payment"},
	}))
	require.NoError(t, store.Set(ctx, docstore.UserPath("uid-ben"), docstore.Document{"teamId": "team-2"}))
	require.NoError(t, store.Set(ctx, docstore.TeamPath("team-2"), docstore.Document{
		"billing": map[string]any{"status": "canceled"},
	}))

	source := accessgate.NewDirectorySource(docstore.NewDirectory(store))
	ev := accessgate.NewEvaluator(source, source, accessgate.FailOpen)
	sessions := auth.NewSessionStore("access-session-secret-0123456789", false)

	router := gin.New()
	RegisterRoutes(router.Group("/api/v1"), ev, sessions)
	RegisterPages(router, ev, sessions)

	return router
}

func get(t *testing.T, router *gin.Engine, path, uid string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	if uid != "" {
		token, err := auth.GenerateJWT(uid, uid+"@example.com")
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	return w
}

func TestGetAccessHandler(t *testing.T) {
	router := newRouter(t)

	w := get(t, router, "/api/v1/access?path=/dashboard", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"decision":"redirect_login","redirect_to":"/login"}`, w.Body.String())

	w = get(t, router, "/api/v1/access?path=/login", "")
	assert.JSONEq(t, `{"decision":"allow"}`, w.Body.String())

	w = get(t, router, "/api/v1/access?path=/dashboard", "uid-ana")
	assert.JSONEq(t, `{"decision":"allow","banner":"pending_payment"}`, w.Body.String())

	w = get(t, router, "/api/v1/access?path=/dashboard", "uid-ben")
	assert.JSONEq(t, `{"decision":"redirect_billing_blocked","redirect_to":"/billing/cancel"}`, w.Body.String())

	w = get(t, router, "/api/v1/access?path=dashboard", "uid-ana")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPages(t *testing.T) {
	router := newRouter(t)

	w := get(t, router, "/app/dashboard", "")
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/app/login", w.Header().Get("Location"))

	w = get(t, router, "/app/dashboard", "uid-ben")
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/app/billing/cancel", w.Header().Get("Location"))

	w = get(t, router, "/app/billing/cancel", "uid-ben")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"page":"/billing/cancel","decision":"allow"}`, w.Body.String())

	w = get(t, router, "/app/agents", "uid-ana")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "pending_payment", w.Header().Get(accessgate.HeaderBanner))
	assert.JSONEq(t, `{"page":"/agents","decision":"allow","banner":"pending_payment"}`, w.Body.String())
}
