package auth

// where a completed login lands
const postLoginPath = "/app/dashboard"

// UserResponse is the signed-in user
type UserResponse struct {
	UID    string `json:"uid"`
	Email  string `json:"email"`
	TeamID string `json:"team_id,omitempty"`
}

// MessageResponse for simple success messages
type MessageResponse struct {
	Message string `json:"message"`
}
