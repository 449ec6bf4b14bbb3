package errors

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newContext() (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/slack/install", nil)

	return c, w
}

func TestProxyInternal_NeverLeaksDetail(t *testing.T) {
	c, w := newContext()

	ProxyInternal(c, "slack/install", fmt.Errorf("dial tcp 10.0.0.7:8000: connection refused"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Internal server error"}`, w.Body.String())
	assert.True(t, c.IsAborted())
}

func TestProxyBadRequest(t *testing.T) {
	c, w := newContext()

	ProxyBadRequest(c, "teamId is required")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"teamId is required"}`, w.Body.String())
}

func TestProxyTooManyRequests(t *testing.T) {
	c, w := newContext()

	ProxyTooManyRequests(c)

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.JSONEq(t, `{"error":"Too many requests"}`, w.Body.String())
}

func TestFirstPartyResponders(t *testing.T) {
	tests := []struct {
		name   string
		call   func(c *gin.Context)
		status int
		body   string
	}{
		{"unauthorized default", func(c *gin.Context) { Unauthorized(c, "") }, http.StatusUnauthorized,
			`{"error":"unauthorized","message":"authentication required"}`},
		{"not found", func(c *gin.Context) { NotFound(c, "team") }, http.StatusNotFound,
			`{"error":"not_found","message":"team not found"}`},
		{"service unavailable", func(c *gin.Context) { ServiceUnavailable(c, "") }, http.StatusServiceUnavailable,
			`{"error":"service_unavailable","message":"service unavailable"}`},
		{"too many", func(c *gin.Context) { TooManyRequests(c, "") }, http.StatusTooManyRequests,
			`{"error":"too_many_requests","message":"too many requests"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := newContext()

			tt.call(c)

			assert.Equal(t, tt.status, w.Code)
			assert.JSONEq(t, tt.body, w.Body.String())
		})
	}
}

func TestClassifyError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		category string
	}{
		{"postgres", &pgconn.PgError{Code: "23505"}, CategoryDatabase},
		{"no rows", fmt.Errorf("load: %w", pgx.ErrNoRows), CategoryNotFound},
		{"deadline", fmt.Errorf("call: %w", context.DeadlineExceeded), CategoryTimeout},
		{"canceled", context.Canceled, CategoryTimeout},
		{"dial", fmt.Errorf("dial tcp: refused"), CategoryNetwork},
		{"not found text", fmt.Errorf("document not found"), CategoryNotFound},
		{"token", fmt.Errorf("bad token"), CategoryAuth},
		{"other", fmt.Errorf("boom"), CategoryUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.category, classifyError(tt.err).category)
		})
	}
}

func TestSanitizeError_Production(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")

	assert.Equal(t, "database operation failed", sanitizeError(&pgconn.PgError{Message: "duplicate key value violates unique constraint"}))
	assert.Equal(t, "an error occurred", sanitizeError(fmt.Errorf("boom")))
	assert.Empty(t, sanitizeError(nil))
}

func TestSanitizeError_Development(t *testing.T) {
	t.Setenv("ENVIRONMENT", "development")

	assert.Equal(t, "boom", sanitizeError(fmt.Errorf("boom")))
}
