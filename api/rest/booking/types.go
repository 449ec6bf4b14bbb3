package booking

type AvailabilityRequest struct {
	Date string `json:"date" example:"2026-03-02"`
}

type ConfirmRequest struct {
	TeamID string `json:"teamId"`
	Slot   string `json:"slot" example:"2026-03-02T15:00:00Z"`
	Email  string `json:"email"`
}
