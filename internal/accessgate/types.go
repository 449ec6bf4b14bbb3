package accessgate

import (
	"context"
)

type Decision string

const (
	DecisionLoading                Decision = "loading"
	DecisionAllow                  Decision = "allow"
	DecisionRedirectLogin          Decision = "redirect_login"
	DecisionRedirectBillingBlocked Decision = "redirect_billing_blocked"
)

const (
	LoginPath          = "/login"
	BillingBlockedPath = "/billing/cancel"
	BillingSuccessPath = "/billing/success"

	BannerPendingPayment = "pending_payment"

	// substituted for the billing status on read errors under FailClosed
	StatusUnavailable = "unavailable"
)

// billing statuses that grant access
var allowedStatuses = map[string]struct{}{
	"active":            {},
	"trialing":          {},
	"booking_confirmed": {},
	"pending_payment":   {},
	"pending_booking":   {},
}

// pages that are never gated
var bypassPaths = []string{LoginPath, BillingBlockedPath, BillingSuccessPath}

// the signed-in user
type Identity struct {
	UID   string `json:"uid"`
	Email string `json:"email,omitempty"`
}

// everything the transition rule looks at
type Input struct {
	Path string

	// false until the identity stream has reported once
	IdentityKnown bool
	// nil when signed out
	Identity *Identity

	// false while team resolution or the first billing read is in flight
	BillingResolved bool
	// nil when there is no team or no billing document
	BillingStatus *string
}

type Result struct {
	Decision   Decision `json:"decision"`
	RedirectTo string   `json:"redirect_to,omitempty"`
	Banner     string   `json:"banner,omitempty"`
}

// true for the redirect decisions
func (r Result) Blocked() bool {
	return r.Decision == DecisionRedirectLogin || r.Decision == DecisionRedirectBillingBlocked
}

type Subscription interface {
	Cancel()
}

// push-based identity changes; fn(nil) means signed out
type IdentitySource interface {
	SubscribeIdentity(fn func(identity *Identity)) Subscription
}

// one-shot lookup of the user's team, "" when the user has none
type TeamResolver interface {
	ResolveTeam(ctx context.Context, uid string) (string, error)
}

// push-based billing status of a team; status is nil when unset
type BillingSource interface {
	SubscribeBilling(ctx context.Context, teamID string, fn func(status *string, err error)) (Subscription, error)
}

// single read of a team's billing status
type BillingReader interface {
	BillingStatus(ctx context.Context, teamID string) (*string, error)
}

// how read errors on team or billing data are treated
type Policy int

const (
	// read errors count as "no billing data" and never block
	FailOpen Policy = iota
	// read errors block like a disallowed status
	FailClosed
)
