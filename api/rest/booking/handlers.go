package booking

import "codeberg.org/solari/bff/internal/proxy"

// booking endpoints are public on the backend and take no internal key

// AvailabilityRoute godoc
// @Summary List open booking slots
// @Tags booking
// @Accept json
// @Produce json
// @Param request body AvailabilityRequest true "Day to query"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ProxyErrorResponse
// @Failure 500 {object} errors.ProxyErrorResponse
// @Router /api/v1/booking/availability [post]
func AvailabilityRoute() proxy.Route {
	return proxy.Route{
		Name:     "booking/availability",
		Required: []string{"date"},
		SkipKey:  true,
	}
}

// ConfirmRoute godoc
// @Summary Confirm a booking
// @Tags booking
// @Accept json
// @Produce json
// @Param request body ConfirmRequest true "Slot to book"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ProxyErrorResponse
// @Failure 500 {object} errors.ProxyErrorResponse
// @Router /api/v1/booking/confirm [post]
func ConfirmRoute() proxy.Route {
	return proxy.Route{
		Name:     "booking/confirm",
		Required: []string{"teamId", "slot", "email"},
		SkipKey:  true,
	}
}
