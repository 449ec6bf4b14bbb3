package main

import (
	"net/http"

	"codeberg.org/solari/bff/api/rest/access"
	"codeberg.org/solari/bff/api/rest/agents"
	"codeberg.org/solari/bff/api/rest/auth"
	"codeberg.org/solari/bff/api/rest/billing"
	"codeberg.org/solari/bff/api/rest/booking"
	"codeberg.org/solari/bff/api/rest/confluence"
	"codeberg.org/solari/bff/api/rest/health"
	"codeberg.org/solari/bff/api/rest/jira"
	"codeberg.org/solari/bff/api/rest/ratings"
	"codeberg.org/solari/bff/api/rest/slack"
	"codeberg.org/solari/bff/api/rest/teams"
	"codeberg.org/solari/bff/api/websocket"
	"codeberg.org/solari/bff/docs"
	"codeberg.org/solari/bff/internal/errors"
	"codeberg.org/solari/bff/internal/proxy"
	"github.com/gin-gonic/gin"
	"github.com/swaggo/swag"
)

// sets up all API routes and middleware
func RegisterRoutes(router *gin.Engine, server *Server) error {
	router.Use(RequestLogger())
	router.Use(CORSMiddleware(server.config.CORSAllowedOrigins, server.config.IsProduction()))

	router.GET("/health", health.Handler(server.checkDocstore))

	limit, err := proxy.RateLimit(server.config.RateLimit)
	if err != nil {
		return err
	}

	v1 := router.Group("/api/v1")

	{
		v1.GET("/ping", health.PingHandler)
		v1.GET("/openapi.json", OpenAPIHandler())

		auth.RegisterRoutes(v1, server.directory, server.sessions)
		access.RegisterRoutes(v1, server.evaluator, server.sessions)
		teams.RegisterRoutes(v1, server.directory, server.sessions)

		websocket.RegisterRoutes(v1, websocket.StreamDeps{
			Hub:            server.hub,
			Teams:          server.access,
			Billing:        server.access,
			Policy:         server.policy,
			Sessions:       server.sessions,
			AllowedOrigins: server.config.CORSAllowedOrigins,
			Production:     server.config.IsProduction(),
		})
	}

	// pass-through routes share one limiter
	backendRoutes := v1.Group("", limit)

	{
		ratings.RegisterRoutes(backendRoutes, server.backend)
		slack.RegisterRoutes(backendRoutes, server.backend, server.directory)
		jira.RegisterRoutes(backendRoutes, server.backend, server.directory)
		confluence.RegisterRoutes(backendRoutes, server.backend)
		billing.RegisterRoutes(backendRoutes, server.backend)
		booking.RegisterRoutes(backendRoutes, server.backend)
		agents.RegisterRoutes(backendRoutes, server.backend)
	}

	access.RegisterPages(router, server.evaluator, server.sessions)

	return nil
}

// serves the registered OpenAPI document
func OpenAPIHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		doc, err := swag.ReadDoc(docs.SwaggerInfo.InstanceName())
		if err != nil {
			errors.InternalError(c, "failed to render api document", err)
			return
		}

		c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(doc))
	}
}
