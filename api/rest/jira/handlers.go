package jira

import (
	"context"

	"codeberg.org/solari/bff/internal/docstore"
	"codeberg.org/solari/bff/internal/proxy"
	"github.com/gin-gonic/gin"
)

// ConnectHandler godoc
// @Summary Start Jira connection
// @Description Returns the Atlassian authorization URL for the team
// @Tags jira
// @Accept json
// @Produce json
// @Param request body ConnectRequest true "Team and user"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ProxyErrorResponse
// @Failure 500 {object} errors.ProxyErrorResponse
// @Router /api/v1/jira/connect [post]
func ConnectHandler(client proxy.Forwarder) gin.HandlerFunc {
	return proxy.Handler(client, proxy.Route{
		Name:     "jira/connect",
		Required: []string{"teamId", "userId"},
	})
}

// ProjectsHandler godoc
// @Summary List Jira projects
// @Tags jira
// @Accept json
// @Produce json
// @Param request body TeamRequest true "Team"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ProxyErrorResponse
// @Failure 500 {object} errors.ProxyErrorResponse
// @Router /api/v1/jira/projects [post]
func ProjectsHandler(client proxy.Forwarder) gin.HandlerFunc {
	return proxy.Handler(client, proxy.Route{
		Name:     "jira/projects",
		Required: []string{"teamId"},
	})
}

// DisconnectHandler godoc
// @Summary Disconnect Jira
// @Description Forwards the disconnect and then clears the team's stored Jira credentials
// @Tags jira
// @Accept json
// @Produce json
// @Param request body TeamRequest true "Team"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ProxyErrorResponse
// @Failure 500 {object} errors.ProxyErrorResponse
// @Router /api/v1/jira/disconnect [post]
func DisconnectHandler(client proxy.Forwarder, dir *docstore.Directory) gin.HandlerFunc {
	route := proxy.Route{
		Name:     "jira/disconnect",
		Required: []string{"teamId"},
	}

	if dir != nil {
		route.After = func(ctx context.Context, body map[string]any) error {
			return dir.DeleteJiraTokens(ctx, proxy.StringField(body, "teamId"))
		}
	}

	return proxy.Handler(client, route)
}
