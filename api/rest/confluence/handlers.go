package confluence

import "codeberg.org/solari/bff/internal/proxy"

// SpacesRoute godoc
// @Summary List Confluence spaces
// @Tags confluence
// @Accept json
// @Produce json
// @Param request body SpacesRequest true "Team"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ProxyErrorResponse
// @Failure 500 {object} errors.ProxyErrorResponse
// @Router /api/v1/confluence/spaces [post]
func SpacesRoute() proxy.Route {
	return proxy.Route{
		Name:     "confluence/spaces",
		Required: []string{"teamId"},
	}
}

// SyncRoute godoc
// @Summary Sync Confluence spaces
// @Description Starts indexing the selected spaces for the team's agents
// @Tags confluence
// @Accept json
// @Produce json
// @Param request body SyncRequest true "Team and spaces"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ProxyErrorResponse
// @Failure 500 {object} errors.ProxyErrorResponse
// @Router /api/v1/confluence/sync [post]
func SyncRoute() proxy.Route {
	return proxy.Route{
		Name:     "confluence/sync",
		Required: []string{"teamId", "spaceKeys"},
	}
}
