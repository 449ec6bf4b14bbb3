package proxy

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimit_RejectsOverLimit(t *testing.T) {
	mw, err := RateLimit("2-M")
	require.NoError(t, err)

	router := gin.New()
	router.Use(mw)
	router.POST("/ping", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{}) })

	codes := make([]int, 0, 3)
	for range 3 {
		req := httptest.NewRequest(http.MethodPost, "/ping", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		codes = append(codes, w.Code)

		if w.Code == http.StatusTooManyRequests {
			assert.JSONEq(t, `{"error":"Too many requests"}`, w.Body.String())
		}
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)

	// other clients have their own budget
	req := httptest.NewRequest(http.MethodPost, "/ping", nil)
	req.RemoteAddr = "10.0.0.2:1234"
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRateLimit_InvalidFormat(t *testing.T) {
	_, err := RateLimit("lots")
	assert.Error(t, err)
}
