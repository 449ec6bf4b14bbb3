package accessgate

import (
	"fmt"
	"strings"
)

// reports whether path is one of the ungated pages or below one
func IsBypass(path string) bool {
	for _, p := range bypassPaths {
		if path == p || strings.HasPrefix(path, p+"/") {
			return true
		}
	}

	return false
}

func IsAllowedStatus(status string) bool {
	_, ok := allowedStatuses[status]
	return ok
}

// the transition rule
func Decide(in Input) Result {
	if IsBypass(in.Path) {
		if !in.IdentityKnown {
			return Result{Decision: DecisionLoading}
		}

		return Result{Decision: DecisionAllow}
	}

	if !in.IdentityKnown {
		return Result{Decision: DecisionLoading}
	}

	if in.Identity == nil {
		return Result{Decision: DecisionRedirectLogin, RedirectTo: LoginPath}
	}

	if !in.BillingResolved {
		return Result{Decision: DecisionLoading}
	}

	if in.BillingStatus != nil && !IsAllowedStatus(*in.BillingStatus) {
		return Result{Decision: DecisionRedirectBillingBlocked, RedirectTo: BillingBlockedPath}
	}

	result := Result{Decision: DecisionAllow}
	if in.BillingStatus != nil && *in.BillingStatus == BannerPendingPayment {
		result.Banner = BannerPendingPayment
	}

	return result
}

func ParsePolicy(s string) (Policy, error) {
	switch s {
	case "", "open":
		return FailOpen, nil
	case "closed":
		return FailClosed, nil
	default:
		return FailOpen, fmt.Errorf("unknown access fail policy %q", s)
	}
}

func (p Policy) String() string {
	if p == FailClosed {
		return "closed"
	}

	return "open"
}

// billing status to assume after a read error
func (p Policy) statusOnError() *string {
	if p == FailClosed {
		s := StatusUnavailable
		return &s
	}

	return nil
}
