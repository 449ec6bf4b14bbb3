package access

import (
	"net/http"
	"strings"

	"codeberg.org/solari/bff/internal/accessgate"
	"codeberg.org/solari/bff/internal/auth"
	"codeberg.org/solari/bff/internal/errors"
	"github.com/gin-gonic/gin"
)

// identity set by OptionalAuthMiddleware, nil when anonymous
func identityFromContext(c *gin.Context) *accessgate.Identity {
	uid, ok := auth.GetUserID(c)
	if !ok {
		return nil
	}

	return &accessgate.Identity{UID: uid, Email: auth.GetUserEmail(c)}
}

// GetAccessHandler godoc
// @Summary Evaluate the access gate
// @Description Returns the gate decision for a page, using the bearer token or session cookie
// @Tags access
// @Produce json
// @Param path query string false "Page path" default(/)
// @Success 200 {object} accessgate.Result
// @Failure 400 {object} errors.ErrorResponse
// @Router /api/v1/access [get]
func GetAccessHandler(ev *accessgate.Evaluator) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.DefaultQuery("path", "/")
		if !strings.HasPrefix(path, "/") {
			errors.BadRequest(c, "path must start with /", nil)
			return
		}

		c.JSON(http.StatusOK, ev.Evaluate(c.Request.Context(), identityFromContext(c), path))
	}
}

// PageHandler godoc
// @Summary Gated page
// @Description Page routes of the app. Blocked requests are redirected to the login or billing page.
// @Tags access
// @Produce json
// @Param page path string true "Page path"
// @Success 200 {object} PageResponse
// @Success 302 {string} string "Redirect to login or billing page"
// @Router /app/{page} [get]
func PageHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		result, _ := accessgate.ResultFromContext(c)

		page := c.Param("page")
		if page == "" {
			page = "/"
		}

		c.JSON(http.StatusOK, PageResponse{
			Page:     page,
			Decision: result.Decision,
			Banner:   result.Banner,
		})
	}
}
