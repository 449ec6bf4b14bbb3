package docstore

import (
	"strings"
	"time"
)

// team document fields
const (
	FieldTeamID           = "teamId"
	FieldEmail            = "email"
	FieldTeamName         = "team_name"
	FieldBilling          = "billing"
	FieldBillingStatus    = "billing.status"
	FieldJiraCloudID      = "jira_cloud_id"
	FieldJiraSiteURL      = "jira_site_url"
	FieldJiraAccessToken  = "jira_access_token"
	FieldJiraRefreshToken = "jira_refresh_token"
	FieldJiraTokenExpiry  = "jira_token_expires_at"
	FieldSlackBotToken    = "slack_bot_token"
	FieldSlackTeamID      = "slack_team_id"
)

// fields cleared when a team disconnects Jira
var JiraTokenFields = []string{
	FieldJiraAccessToken,
	FieldJiraRefreshToken,
	FieldJiraTokenExpiry,
	FieldJiraCloudID,
	FieldJiraSiteURL,
}

// fields cleared when a team disconnects Slack
var SlackTokenFields = []string{
	FieldSlackBotToken,
	FieldSlackTeamID,
}

// users/{uid}
type User struct {
	UID    string
	Email  string
	TeamID string // empty when the user has no team
}

// teams/{teamId}
type Team struct {
	ID            string
	Name          string
	BillingStatus *string // nil when no billing status is recorded
	JiraCloudID   string
	JiraSiteURL   string
	JiraConnected bool
	SlackBotToken bool
}

// teams/{teamId}/users/{uid}/slack_installations/{id}
type SlackInstallation struct {
	ID            string
	TeamID        string
	UserID        string
	SlackTeamID   string
	SlackTeamName string
	BotUserID     string
	Scopes        []string
	HasBotToken   bool
	HasUserToken  bool
	InstalledAt   *time.Time
}

func DecodeUser(uid string, doc Document) User {
	return User{
		UID:    uid,
		Email:  stringValue(doc[FieldEmail]),
		TeamID: strings.TrimSpace(stringValue(doc[FieldTeamID])),
	}
}

func DecodeTeam(teamID string, doc Document) Team {
	team := Team{
		ID:          teamID,
		Name:        stringValue(doc[FieldTeamName]),
		JiraCloudID: stringValue(doc[FieldJiraCloudID]),
		JiraSiteURL: stringValue(doc[FieldJiraSiteURL]),
	}

	if billing, ok := asMap(doc[FieldBilling]); ok {
		if status := strings.TrimSpace(stringValue(billing["status"])); status != "" {
			team.BillingStatus = &status
		}
	}

	team.JiraConnected = team.JiraCloudID != "" && stringValue(doc[FieldJiraAccessToken]) != ""
	team.SlackBotToken = stringValue(doc[FieldSlackBotToken]) != ""

	return team
}

func DecodeSlackInstallation(teamID, uid, id string, doc Document) SlackInstallation {
	inst := SlackInstallation{
		ID:            id,
		TeamID:        teamID,
		UserID:        uid,
		SlackTeamID:   stringValue(doc["slack_team_id"]),
		SlackTeamName: stringValue(doc["slack_team_name"]),
		BotUserID:     stringValue(doc["bot_user_id"]),
		Scopes:        stringList(doc["scopes"]),
		HasBotToken:   stringValue(doc["bot_token"]) != "",
		HasUserToken:  stringValue(doc["user_token"]) != "",
	}

	if t, ok := timeValue(doc["installed_at"]); ok {
		inst.InstalledAt = &t
	}

	return inst
}

// returns v if it is a string, otherwise ""
func stringValue(v any) string {
	s, _ := v.(string)
	return s
}

// accepts a JSON array of strings or a comma/space separated string
func stringList(v any) []string {
	var out []string

	switch t := v.(type) {
	case []any:
		for _, item := range t {
			if s := strings.TrimSpace(stringValue(item)); s != "" {
				out = append(out, s)
			}
		}
	case []string:
		for _, s := range t {
			if s = strings.TrimSpace(s); s != "" {
				out = append(out, s)
			}
		}
	case string:
		for _, s := range strings.FieldsFunc(t, func(r rune) bool { return r == ',' || r == ' ' }) {
			out = append(out, s)
		}
	}

	return out
}

// accepts RFC 3339 strings or unix seconds
func timeValue(v any) (time.Time, bool) {
	switch t := v.(type) {
	case string:
		parsed, err := time.Parse(time.RFC3339, t)
		if err != nil {
			return time.Time{}, false
		}
		return parsed.UTC(), true
	case float64:
		if t <= 0 {
			return time.Time{}, false
		}
		return time.Unix(int64(t), 0).UTC(), true
	case int64:
		if t <= 0 {
			return time.Time{}, false
		}
		return time.Unix(t, 0).UTC(), true
	case time.Time:
		return t.UTC(), !t.IsZero()
	default:
		return time.Time{}, false
	}
}
