package confluence

type SpacesRequest struct {
	TeamID string `json:"teamId"`
}

type SyncRequest struct {
	TeamID    string   `json:"teamId"`
	SpaceKeys []string `json:"spaceKeys"`
}
