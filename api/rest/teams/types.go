package teams

import "time"

// TeamResponse is the caller's team as shown on the dashboard
type TeamResponse struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	BillingStatus  *string `json:"billing_status"`
	JiraConnected  bool    `json:"jira_connected"`
	JiraSiteURL    string  `json:"jira_site_url,omitempty"`
	SlackConnected bool    `json:"slack_connected"`
}

// SlackInstallationResponse omits every credential
type SlackInstallationResponse struct {
	ID            string     `json:"id"`
	SlackTeamID   string     `json:"slack_team_id,omitempty"`
	SlackTeamName string     `json:"slack_team_name,omitempty"`
	BotUserID     string     `json:"bot_user_id,omitempty"`
	Scopes        []string   `json:"scopes"`
	HasBotToken   bool       `json:"has_bot_token"`
	HasUserToken  bool       `json:"has_user_token"`
	InstalledAt   *time.Time `json:"installed_at,omitempty"`
}

type SlackInstallationsResponse struct {
	Installations []SlackInstallationResponse `json:"installations"`
}
