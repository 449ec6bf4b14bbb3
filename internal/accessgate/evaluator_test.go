package accessgate

import (
	"context"
	"errors"
	"testing"

	"codeberg.org/solari/bff/internal/docstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seededDirectory(t *testing.T) *docstore.Directory {
	t.Helper()

	ctx := context.Background()
	store := docstore.NewMemoryStore()
	t.Cleanup(func() { store.Close() }) //nolint:errcheck // test cleanup

	seed := map[string]docstore.Document{
		docstore.UserPath("uid-ana"):       {"teamId": "team-active"},
		docstore.UserPath("uid-ben"):       {"teamId": "team-canceled"},
		docstore.UserPath("uid-cy"):        {"teamId": "team-pending"},
		docstore.UserPath("uid-dee"):       {"email": "dee@example.com"},
		docstore.UserPath("uid-eve"):       {"teamId": "team-missing"},
		docstore.TeamPath("team-active"):   {"team_name": "Active", "billing": map[string]any{"status": "active"}},
		docstore.TeamPath("team-canceled"): {"billing": map[string]any{"status": "canceled"}},
		docstore.TeamPath("team-pending"):  {"billing": map[string]any{"status": "pending_payment"}},
	}

	for path, doc := range seed {
		require.NoError(t, store.Set(ctx, path, doc))
	}

	return docstore.NewDirectory(store)
}

func TestEvaluator_Evaluate(t *testing.T) {
	source := NewDirectorySource(seededDirectory(t))
	ev := NewEvaluator(source, source, FailOpen)
	ctx := context.Background()

	tests := []struct {
		name     string
		identity *Identity
		path     string
		want     Result
	}{
		{"anonymous", nil, "/dashboard", Result{Decision: DecisionRedirectLogin, RedirectTo: LoginPath}},
		{"anonymous on login page", nil, "/login", allow()},
		{"active team", &Identity{UID: "uid-ana"}, "/dashboard", allow()},
		{"canceled team", &Identity{UID: "uid-ben"}, "/dashboard", Result{Decision: DecisionRedirectBillingBlocked, RedirectTo: BillingBlockedPath}},
		{"canceled team on cancel page", &Identity{UID: "uid-ben"}, "/billing/cancel", allow()},
		{"pending payment", &Identity{UID: "uid-cy"}, "/agents", Result{Decision: DecisionAllow, Banner: BannerPendingPayment}},
		{"no team", &Identity{UID: "uid-dee"}, "/dashboard", allow()},
		{"team document missing", &Identity{UID: "uid-eve"}, "/dashboard", allow()},
		{"unknown user", &Identity{UID: "uid-zed"}, "/dashboard", allow()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ev.Evaluate(ctx, tt.identity, tt.path))
		})
	}
}

type failingBilling struct{}

func (failingBilling) BillingStatus(context.Context, string) (*string, error) {
	return nil, errors.New("unavailable")
}

func TestEvaluator_ReadErrors(t *testing.T) {
	teams := &fakeTeams{teams: map[string]string{"uid-ana": "team-1"}}
	ctx := context.Background()

	open := NewEvaluator(teams, failingBilling{}, FailOpen)
	assert.Equal(t, allow(), open.Evaluate(ctx, ana, "/dashboard"))

	closed := NewEvaluator(teams, failingBilling{}, FailClosed)
	assert.Equal(t, DecisionRedirectBillingBlocked, closed.Evaluate(ctx, ana, "/dashboard").Decision)

	// bypass pages never read billing
	assert.Equal(t, allow(), closed.Evaluate(ctx, ana, "/billing/success"))

	broken := &fakeTeams{err: errors.New("unavailable")}
	assert.Equal(t, allow(), NewEvaluator(broken, failingBilling{}, FailOpen).Evaluate(ctx, ana, "/dashboard"))
	assert.Equal(t, DecisionRedirectBillingBlocked, NewEvaluator(broken, failingBilling{}, FailClosed).Evaluate(ctx, ana, "/dashboard").Decision)
}

func TestGate_WithDirectorySource(t *testing.T) {
	dir := seededDirectory(t)
	source := NewDirectorySource(dir)
	ctx := context.Background()

	feed := NewIdentityFeed()
	g := NewGate(source, source, "/dashboard")
	defer g.Close()

	g.Start(feed)
	feed.Publish(&Identity{UID: "uid-ana"})
	eventuallyDecides(t, g, allow())

	// billing flips in the store and the gate follows
	require.NoError(t, dir.Store().Set(ctx, docstore.TeamPath("team-active"), docstore.Document{
		"billing": map[string]any{"status": "past_due"},
	}))
	eventuallyDecides(t, g, Result{Decision: DecisionRedirectBillingBlocked, RedirectTo: BillingBlockedPath})

	require.NoError(t, dir.Store().Set(ctx, docstore.TeamPath("team-active"), docstore.Document{
		"billing": map[string]any{"status": "pending_payment"},
	}))
	eventuallyDecides(t, g, Result{Decision: DecisionAllow, Banner: BannerPendingPayment})

	// switching users moves the subscription to the new team
	feed.Publish(&Identity{UID: "uid-ben"})
	eventuallyDecides(t, g, Result{Decision: DecisionRedirectBillingBlocked, RedirectTo: BillingBlockedPath})

	require.NoError(t, dir.Store().Set(ctx, docstore.TeamPath("team-active"), docstore.Document{
		"billing": map[string]any{"status": "active"},
	}))
	eventuallyDecides(t, g, Result{Decision: DecisionRedirectBillingBlocked, RedirectTo: BillingBlockedPath})

	feed.Publish(nil)
	assert.Equal(t, Result{Decision: DecisionRedirectLogin, RedirectTo: LoginPath}, g.Current())
}
