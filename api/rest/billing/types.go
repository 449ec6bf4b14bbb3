package billing

type CheckoutRequest struct {
	TeamID  string `json:"teamId"`
	PriceID string `json:"priceId"`
}

type PortalRequest struct {
	TeamID string `json:"teamId"`
}
