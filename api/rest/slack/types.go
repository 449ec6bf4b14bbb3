package slack

type InstallRequest struct {
	TeamID string `json:"teamId"`
	UserID string `json:"userId"`
}

type DisconnectRequest struct {
	TeamID         string `json:"teamId"`
	UserID         string `json:"userId"`
	InstallationID string `json:"installationId"`
}
