package access

import "codeberg.org/solari/bff/internal/accessgate"

// prefix the single-page app is served under
const AppPrefix = "/app"

// PageResponse is what a gated page request returns once allowed
type PageResponse struct {
	Page     string              `json:"page"`
	Decision accessgate.Decision `json:"decision"`
	Banner   string              `json:"banner,omitempty"`
}
