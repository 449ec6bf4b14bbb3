package accessgate

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	HeaderBanner = "X-Solari-Banner"

	contextResultKey = "access_result"
)

// resolves the caller of a request, nil when anonymous
type IdentityFunc func(c *gin.Context) *Identity

// Middleware gates page routes mounted at prefix with a "*page" wildcard.
// Blocked requests are redirected to prefix + the gate's target page.
func Middleware(ev *Evaluator, identity IdentityFunc, prefix string) gin.HandlerFunc {
	return func(c *gin.Context) {
		page := c.Param("page")
		if page == "" {
			page = "/"
		}

		result := ev.Evaluate(c.Request.Context(), identity(c), page)

		if result.Blocked() {
			c.Redirect(http.StatusFound, prefix+result.RedirectTo)
			c.Abort()
			return
		}

		if result.Banner != "" {
			c.Header(HeaderBanner, result.Banner)
		}

		c.Set(contextResultKey, result)
		c.Next()
	}
}

// result stored by Middleware
func ResultFromContext(c *gin.Context) (Result, bool) {
	v, ok := c.Get(contextResultKey)
	if !ok {
		return Result{}, false
	}

	result, ok := v.(Result)
	return result, ok
}
