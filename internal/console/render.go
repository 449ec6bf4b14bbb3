package console

import (
	"fmt"
	"strings"
)

func accessMarkdown(path string, a *accessResponse) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Access\n\n")
	fmt.Fprintf(&b, "| page | decision |\n|---|---|\n| `%s` | **%s** |\n", path, a.Decision)

	if a.RedirectTo != "" {
		fmt.Fprintf(&b, "\nRedirected to `%s`.\n", a.RedirectTo)
	}

	if a.Banner != "" {
		fmt.Fprintf(&b, "\n> banner: %s\n", a.Banner)
	}

	return b.String()
}

func teamMarkdown(t *teamResponse) string {
	var b strings.Builder

	name := t.Name
	if name == "" {
		name = t.ID
	}

	billing := "_none_"
	if t.BillingStatus != nil {
		billing = "`" + *t.BillingStatus + "`"
	}

	fmt.Fprintf(&b, "# %s\n\n", name)
	fmt.Fprintf(&b, "- team id: `%s`\n", t.ID)
	fmt.Fprintf(&b, "- billing: %s\n", billing)
	fmt.Fprintf(&b, "- jira: %s\n", connected(t.JiraConnected, t.JiraSiteURL))
	fmt.Fprintf(&b, "- slack: %s\n", connected(t.SlackConnected, ""))

	return b.String()
}

func analyticsMarkdown(agentID string, a *analyticsResponse) string {
	var b strings.Builder

	s := a.Summary

	fmt.Fprintf(&b, "# Ratings for `%s`\n\n", agentID)
	fmt.Fprintf(&b, "| up | down | rated | sources checked | sources correct |\n")
	fmt.Fprintf(&b, "|---|---|---|---|---|\n")
	fmt.Fprintf(&b, "| %d | %d | %d | %d | %d |\n\n", s.Up, s.Down, s.RatedCount, s.SourceEvalCount, s.CorrectSourceCount)

	if a.ThumbsUpText != "" {
		fmt.Fprintf(&b, "- %s\n", a.ThumbsUpText)
	}

	if a.SourceAccuracyText != "" {
		fmt.Fprintf(&b, "- %s\n", a.SourceAccuracyText)
	}

	return b.String()
}

func connected(ok bool, detail string) string {
	if !ok {
		return "not connected"
	}

	if detail != "" {
		return "connected (" + detail + ")"
	}

	return "connected"
}
