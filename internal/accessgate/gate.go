package accessgate

import (
	"context"
	"log/slog"
	"sync"

	"codeberg.org/solari/bff/internal/logger"
)

type Option func(*Gate)

func WithPolicy(p Policy) Option {
	return func(g *Gate) {
		g.policy = p
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(g *Gate) {
		g.log = l
	}
}

// Gate tracks identity and billing for one session and recomputes the
// decision on every change. Each identity change starts a new generation;
// team lookups and billing callbacks from an older generation are dropped,
// so the most recent push always wins.
type Gate struct {
	teams   TeamResolver
	billing BillingSource
	policy  Policy
	log     *slog.Logger

	ctx    context.Context
	cancel context.CancelFunc

	mu              sync.Mutex
	path            string
	identityKnown   bool
	identity        *Identity
	billingResolved bool
	status          *string
	gen             uint64
	started         bool
	closed          bool
	identitySub     Subscription
	billingSub      Subscription
	resolveCancel   context.CancelFunc
	last            *Result
	updates         chan Result
}

func NewGate(teams TeamResolver, billing BillingSource, path string, opts ...Option) *Gate {
	ctx, cancel := context.WithCancel(context.Background())

	g := &Gate{
		teams:   teams,
		billing: billing,
		policy:  FailOpen,
		log:     logger.Default(),
		ctx:     ctx,
		cancel:  cancel,
		path:    path,
		updates: make(chan Result, 1),
	}

	for _, opt := range opts {
		opt(g)
	}

	g.mu.Lock()
	g.emitLocked()
	g.mu.Unlock()

	return g
}

// subscribes to identity changes; only the first call has an effect
func (g *Gate) Start(identities IdentitySource) {
	g.mu.Lock()
	if g.started || g.closed {
		g.mu.Unlock()
		return
	}
	g.started = true
	g.mu.Unlock()

	// the source may deliver synchronously, so no lock is held here
	sub := identities.SubscribeIdentity(g.onIdentity)

	g.mu.Lock()
	if g.closed {
		g.mu.Unlock()
		sub.Cancel()
		return
	}
	g.identitySub = sub
	g.mu.Unlock()
}

// recomputes the decision for a new page
func (g *Gate) Navigate(path string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.closed {
		return
	}

	g.path = path
	g.emitLocked()
}

// Each distinct decision is offered on the channel. Only the newest pending
// decision is kept, so a slow reader skips intermediate states. The
// channel is closed by Close.
func (g *Gate) Updates() <-chan Result {
	return g.updates
}

func (g *Gate) Current() Result {
	g.mu.Lock()
	defer g.mu.Unlock()

	return Decide(g.inputLocked())
}

// releases every subscription; callbacks still in flight are ignored
func (g *Gate) Close() {
	g.mu.Lock()
	if g.closed {
		g.mu.Unlock()
		return
	}

	g.closed = true
	g.gen++
	g.releaseBillingLocked()
	g.cancel()
	close(g.updates)

	sub := g.identitySub
	g.identitySub = nil
	g.mu.Unlock()

	if sub != nil {
		sub.Cancel()
	}
}

func (g *Gate) onIdentity(identity *Identity) {
	g.mu.Lock()

	if g.closed {
		g.mu.Unlock()
		return
	}

	// same user again, e.g. a refreshed token: keep the billing state
	if g.identityKnown && g.identity != nil && identity != nil && g.identity.UID == identity.UID {
		id := *identity
		g.identity = &id
		g.mu.Unlock()
		return
	}

	g.gen++
	gen := g.gen

	g.releaseBillingLocked()
	g.identityKnown = true
	g.billingResolved = false
	g.status = nil

	if identity == nil {
		g.identity = nil
		g.emitLocked()
		g.mu.Unlock()
		return
	}

	id := *identity
	g.identity = &id

	ctx, cancel := context.WithCancel(g.ctx)
	g.resolveCancel = cancel

	g.emitLocked()
	g.mu.Unlock()

	go g.resolve(ctx, gen, id.UID)
}

// looks up the team, then subscribes to its billing status
func (g *Gate) resolve(ctx context.Context, gen uint64, uid string) {
	teamID, err := g.teams.ResolveTeam(ctx, uid)

	g.mu.Lock()
	if g.closed || gen != g.gen {
		g.mu.Unlock()
		return
	}

	if err != nil {
		g.log.Warn("team lookup failed", "uid", uid, "policy", g.policy.String(), "error", err)
		g.resolveBillingLocked(g.policy.statusOnError())
		g.mu.Unlock()
		return
	}

	if teamID == "" {
		// nothing to enforce without a team
		g.resolveBillingLocked(nil)
		g.mu.Unlock()
		return
	}
	g.mu.Unlock()

	sub, err := g.billing.SubscribeBilling(ctx, teamID, func(status *string, err error) {
		g.onBilling(gen, teamID, status, err)
	})

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.closed || gen != g.gen {
		if sub != nil {
			sub.Cancel()
		}
		return
	}

	if err != nil {
		g.log.Warn("billing subscription failed", "team_id", teamID, "policy", g.policy.String(), "error", err)
		g.resolveBillingLocked(g.policy.statusOnError())
		return
	}

	g.billingSub = sub
}

func (g *Gate) onBilling(gen uint64, teamID string, status *string, err error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.closed || gen != g.gen {
		return
	}

	if err != nil {
		g.log.Warn("billing read failed", "team_id", teamID, "policy", g.policy.String(), "error", err)
		g.resolveBillingLocked(g.policy.statusOnError())
		return
	}

	var s *string
	if status != nil {
		v := *status
		s = &v
	}

	g.resolveBillingLocked(s)
}

func (g *Gate) resolveBillingLocked(status *string) {
	g.billingResolved = true
	g.status = status
	g.emitLocked()
}

func (g *Gate) releaseBillingLocked() {
	if g.resolveCancel != nil {
		g.resolveCancel()
		g.resolveCancel = nil
	}

	if g.billingSub != nil {
		g.billingSub.Cancel()
		g.billingSub = nil
	}
}

func (g *Gate) inputLocked() Input {
	return Input{
		Path:            g.path,
		IdentityKnown:   g.identityKnown,
		Identity:        g.identity,
		BillingResolved: g.billingResolved,
		BillingStatus:   g.status,
	}
}

// publishes the decision if it changed, replacing any unread one
func (g *Gate) emitLocked() {
	result := Decide(g.inputLocked())
	if g.last != nil && *g.last == result {
		return
	}
	g.last = &result

	select {
	case <-g.updates:
	default:
	}

	// only senders hold mu, so the slot is free
	g.updates <- result
}
