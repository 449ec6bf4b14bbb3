package console

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTeamMarkdown(t *testing.T) {
	status := "trialing"

	md := teamMarkdown(&teamResponse{ID: "t1", BillingStatus: &status, JiraConnected: true, JiraSiteURL: "https://acme.atlassian.net"})

	assert.Contains(t, md, "# t1")
	assert.Contains(t, md, "- billing: `trialing`")
	assert.Contains(t, md, "- jira: connected (https://acme.atlassian.net)")
	assert.Contains(t, md, "- slack: not connected")
}

func TestTeamMarkdown_NoBilling(t *testing.T) {
	md := teamMarkdown(&teamResponse{ID: "t1", Name: "Acme"})

	assert.Contains(t, md, "# Acme")
	assert.Contains(t, md, "- billing: _none_")
}

func TestAccessMarkdown(t *testing.T) {
	md := accessMarkdown("/app/dashboard", &accessResponse{Decision: "redirect_billing_blocked", RedirectTo: "/billing/cancel"})

	assert.Contains(t, md, "**redirect_billing_blocked**")
	assert.Contains(t, md, "Redirected to `/billing/cancel`.")
	assert.NotContains(t, md, "banner")
}
