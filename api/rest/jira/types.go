package jira

type ConnectRequest struct {
	TeamID string `json:"teamId"`
	UserID string `json:"userId"`
}

type TeamRequest struct {
	TeamID string `json:"teamId"`
}
