package slack

import (
	"context"

	"codeberg.org/solari/bff/internal/docstore"
	"codeberg.org/solari/bff/internal/proxy"
	"github.com/gin-gonic/gin"
)

// InstallHandler godoc
// @Summary Start Slack install
// @Description Asks the backend for a Slack OAuth URL; a backend redirect is followed by the browser
// @Tags slack
// @Accept json
// @Produce json
// @Param request body InstallRequest true "Team and user"
// @Success 200 {object} map[string]interface{}
// @Success 302 {string} string "Redirect to Slack"
// @Failure 400 {object} errors.ProxyErrorResponse
// @Failure 500 {object} errors.ProxyErrorResponse
// @Router /api/v1/slack/install [post]
func InstallHandler(client proxy.Forwarder) gin.HandlerFunc {
	return proxy.Handler(client, proxy.Route{
		Name:              "slack/install",
		Required:          []string{"teamId", "userId"},
		InterceptRedirect: true,
	})
}

// ChannelsHandler godoc
// @Summary List Slack channels
// @Tags slack
// @Accept json
// @Produce json
// @Param request body InstallRequest true "Team and user"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ProxyErrorResponse
// @Failure 500 {object} errors.ProxyErrorResponse
// @Router /api/v1/slack/channels [post]
func ChannelsHandler(client proxy.Forwarder) gin.HandlerFunc {
	return proxy.Handler(client, proxy.Route{
		Name:     "slack/channels",
		Required: []string{"teamId", "userId"},
	})
}

// DisconnectHandler godoc
// @Summary Disconnect a Slack installation
// @Description Forwards the disconnect, removes the stored installation and clears the team bot token once no installation remains
// @Tags slack
// @Accept json
// @Produce json
// @Param request body DisconnectRequest true "Installation to remove"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ProxyErrorResponse
// @Failure 500 {object} errors.ProxyErrorResponse
// @Router /api/v1/slack/disconnect [post]
func DisconnectHandler(client proxy.Forwarder, dir *docstore.Directory) gin.HandlerFunc {
	route := proxy.Route{
		Name:     "slack/disconnect",
		Required: []string{"teamId", "userId", "installationId"},
	}

	if dir != nil {
		route.After = func(ctx context.Context, body map[string]any) error {
			return dir.DisconnectSlackInstallation(ctx,
				proxy.StringField(body, "teamId"),
				proxy.StringField(body, "userId"),
				proxy.StringField(body, "installationId"),
			)
		}
	}

	return proxy.Handler(client, route)
}
