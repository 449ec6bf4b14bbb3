package agents

type TeamRequest struct {
	TeamID string `json:"teamId"`
}

type AgentRequest struct {
	TeamID  string `json:"teamId"`
	AgentID string `json:"agentId"`
}

type CreateRequest struct {
	TeamID string `json:"teamId"`
	Name   string `json:"name"`
	Type   string `json:"type" enums:"chat,workflow"`
}

type ChatRequest struct {
	TeamID  string `json:"teamId"`
	AgentID string `json:"agentId"`
	Message string `json:"message"`
}

type RateRequest struct {
	TeamID    string `json:"teamId"`
	AgentID   string `json:"agentId"`
	MessageID string `json:"messageId"`
	Rating    string `json:"rating" enums:"up,down"`
}
