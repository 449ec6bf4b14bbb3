package billing

import "codeberg.org/solari/bff/internal/proxy"

// CheckoutRoute godoc
// @Summary Create checkout session
// @Description Returns a Stripe checkout URL for the team and price
// @Tags billing
// @Accept json
// @Produce json
// @Param request body CheckoutRequest true "Team and price"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ProxyErrorResponse
// @Failure 500 {object} errors.ProxyErrorResponse
// @Router /api/v1/billing/checkout [post]
func CheckoutRoute() proxy.Route {
	return proxy.Route{
		Name:     "billing/checkout",
		Required: []string{"teamId", "priceId"},
	}
}

// PortalRoute godoc
// @Summary Open billing portal
// @Tags billing
// @Accept json
// @Produce json
// @Param request body PortalRequest true "Team"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ProxyErrorResponse
// @Failure 500 {object} errors.ProxyErrorResponse
// @Router /api/v1/billing/portal [post]
func PortalRoute() proxy.Route {
	return proxy.Route{
		Name:     "billing/portal",
		Required: []string{"teamId"},
	}
}
