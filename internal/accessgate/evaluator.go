package accessgate

import (
	"context"

	"codeberg.org/solari/bff/internal/logger"
)

// one-shot gate evaluation for server-rendered page requests
type Evaluator struct {
	teams   TeamResolver
	billing BillingReader
	policy  Policy
}

func NewEvaluator(teams TeamResolver, billing BillingReader, policy Policy) *Evaluator {
	return &Evaluator{teams: teams, billing: billing, policy: policy}
}

// identity is nil for anonymous requests; the result is never loading
func (e *Evaluator) Evaluate(ctx context.Context, identity *Identity, path string) Result {
	in := Input{Path: path, IdentityKnown: true, Identity: identity}

	if identity == nil || IsBypass(path) {
		return Decide(in)
	}

	in.BillingResolved = true
	log := logger.FromContext(ctx)

	teamID, err := e.teams.ResolveTeam(ctx, identity.UID)
	if err != nil {
		log.Warn("team lookup failed", "uid", identity.UID, "policy", e.policy.String(), "error", err)
		in.BillingStatus = e.policy.statusOnError()
		return Decide(in)
	}

	if teamID == "" {
		return Decide(in)
	}

	status, err := e.billing.BillingStatus(ctx, teamID)
	if err != nil {
		log.Warn("billing read failed", "team_id", teamID, "policy", e.policy.String(), "error", err)
		in.BillingStatus = e.policy.statusOnError()
		return Decide(in)
	}

	in.BillingStatus = status
	return Decide(in)
}
