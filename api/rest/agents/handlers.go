package agents

import "codeberg.org/solari/bff/internal/proxy"

// ListRoute godoc
// @Summary List agents
// @Tags agents
// @Accept json
// @Produce json
// @Param request body TeamRequest true "Team"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ProxyErrorResponse
// @Failure 500 {object} errors.ProxyErrorResponse
// @Router /api/v1/agents/list [post]
func ListRoute() proxy.Route {
	return proxy.Route{
		Name:     "agents/list",
		Required: []string{"teamId"},
	}
}

// CreateRoute godoc
// @Summary Create an agent
// @Description Creates a chat or workflow agent owned by the team
// @Tags agents
// @Accept json
// @Produce json
// @Param request body CreateRequest true "Agent to create"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ProxyErrorResponse
// @Failure 500 {object} errors.ProxyErrorResponse
// @Router /api/v1/agents/create [post]
func CreateRoute() proxy.Route {
	return proxy.Route{
		Name:     "agents/create",
		Required: []string{"teamId", "name", "type"},
	}
}

// UpdateRoute godoc
// @Summary Update an agent
// @Tags agents
// @Accept json
// @Produce json
// @Param request body AgentRequest true "Agent and changed fields"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ProxyErrorResponse
// @Failure 500 {object} errors.ProxyErrorResponse
// @Router /api/v1/agents/update [post]
func UpdateRoute() proxy.Route {
	return proxy.Route{
		Name:     "agents/update",
		Required: []string{"teamId", "agentId"},
	}
}

// DeleteRoute godoc
// @Summary Delete an agent
// @Tags agents
// @Accept json
// @Produce json
// @Param request body AgentRequest true "Agent"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ProxyErrorResponse
// @Failure 500 {object} errors.ProxyErrorResponse
// @Router /api/v1/agents/delete [post]
func DeleteRoute() proxy.Route {
	return proxy.Route{
		Name:     "agents/delete",
		Required: []string{"teamId", "agentId"},
	}
}

// ChatRoute godoc
// @Summary Chat with an agent
// @Tags agents
// @Accept json
// @Produce json
// @Param request body ChatRequest true "Message for the agent"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ProxyErrorResponse
// @Failure 500 {object} errors.ProxyErrorResponse
// @Router /api/v1/agents/chat [post]
func ChatRoute() proxy.Route {
	return proxy.Route{
		Name:     "agents/chat",
		Required: []string{"teamId", "agentId", "message"},
	}
}

// RateRoute godoc
// @Summary Rate an answer
// @Description Records a thumbs up or down on one agent answer
// @Tags agents
// @Accept json
// @Produce json
// @Param request body RateRequest true "Rating"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ProxyErrorResponse
// @Failure 500 {object} errors.ProxyErrorResponse
// @Router /api/v1/agents/rate [post]
func RateRoute() proxy.Route {
	return proxy.Route{
		Name:     "agents/rate",
		Required: []string{"teamId", "agentId", "messageId", "rating"},
	}
}

// RunWorkflowRoute godoc
// @Summary Run a workflow agent
// @Tags agents
// @Accept json
// @Produce json
// @Param request body AgentRequest true "Workflow agent"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ProxyErrorResponse
// @Failure 500 {object} errors.ProxyErrorResponse
// @Router /api/v1/workflows/run [post]
func RunWorkflowRoute() proxy.Route {
	return proxy.Route{
		Name:     "workflows/run",
		Required: []string{"teamId", "agentId"},
	}
}
