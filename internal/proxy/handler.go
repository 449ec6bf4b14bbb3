package proxy

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"codeberg.org/solari/bff/internal/backend"
	"codeberg.org/solari/bff/internal/errors"
	"codeberg.org/solari/bff/internal/logger"
	"github.com/gin-gonic/gin"
)

// registers every route as POST /<name> on the group
func Register(rg *gin.RouterGroup, client Forwarder, routes ...Route) {
	for _, route := range routes {
		rg.POST("/"+route.Name, Handler(client, route))
	}
}

// validates the body, forwards it to the backend and relays the outcome
func Handler(client Forwarder, route Route) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, err := c.GetRawData()
		if err != nil {
			errors.ProxyBadRequest(c, MessageInvalidJSON)
			return
		}

		body, ok := decodeObject(raw)
		if !ok {
			errors.ProxyBadRequest(c, MessageInvalidJSON)
			return
		}

		// the message names the route's whole required set
		if missing := MissingFields(body, route.Required); len(missing) > 0 {
			errors.ProxyBadRequest(c, RequiredMessage(route.Required))
			return
		}

		ctx := c.Request.Context()

		resp, err := client.Do(ctx, backend.Request{
			Method:  http.MethodPost,
			Path:    route.backendPath(),
			Body:    raw,
			SkipKey: route.SkipKey,
		})
		if err != nil {
			errors.ProxyInternal(c, route.Name, err)
			return
		}

		if route.InterceptRedirect && resp.IsRedirect() && resp.Location() != "" {
			c.Redirect(http.StatusFound, resp.Location())
			return
		}

		if !resp.IsSuccess() {
			Relay(c, resp)
			return
		}

		var payload any = gin.H{}
		if len(bytes.TrimSpace(resp.Body)) > 0 {
			if err := json.Unmarshal(resp.Body, &payload); err != nil {
				errors.ProxyInternal(c, route.Name, fmt.Errorf("decode backend response: %w", err))
				return
			}
		}

		if route.After != nil {
			if err := route.After(ctx, body); err != nil {
				logger.FromContext(ctx).Warn("post-forward cleanup failed",
					"route", route.Name,
					"error", err,
				)
			}
		}

		c.JSON(http.StatusOK, payload)
	}
}

// writes the backend's status and body unchanged
func Relay(c *gin.Context, resp *backend.Response) {
	contentType := resp.ContentType
	if contentType == "" {
		contentType = "application/json"
	}

	if loc := resp.Location(); loc != "" && resp.IsRedirect() {
		c.Header("Location", loc)
	}

	c.Data(resp.StatusCode, contentType, resp.Body)
}
