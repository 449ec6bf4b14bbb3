package console

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/glamour"
)

const (
	defaultEndpoint = "http://localhost:8080"
	requestTimeout  = 30 * time.Second

	// page whose access decision the access command shows
	dashboardPath = "/app/dashboard"
)

// which pane the console shows
type ViewState int

const (
	StatePalette ViewState = iota
	StateLoading
	StateResult
)

// a palette entry
type Command struct {
	Name        string
	Description string
	// argument hint shown next to the name, empty when none is taken
	Arg string
}

// command list with a fuzzy filter
type Palette struct {
	input    textinput.Model
	commands []Command
	matches  []Command
	selected int
}

// console application model
type Model struct {
	state    ViewState
	width    int
	height   int
	client   *Client
	palette  *Palette
	spinner  spinner.Model
	renderer *glamour.TermRenderer
	title    string
	output   string
	err      error
}

// what a finished command produced
type ResultMsg struct {
	Title    string
	Markdown string
}

// a command failed
type ErrorMsg struct {
	Title string
	Err   error
}

// API payloads, mirroring the server's JSON

type accessResponse struct {
	Decision   string `json:"decision"`
	RedirectTo string `json:"redirect_to,omitempty"`
	Banner     string `json:"banner,omitempty"`
}

type teamResponse struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	BillingStatus  *string `json:"billing_status"`
	JiraConnected  bool    `json:"jira_connected"`
	JiraSiteURL    string  `json:"jira_site_url,omitempty"`
	SlackConnected bool    `json:"slack_connected"`
}

type analyticsSummary struct {
	Up                 int `json:"up"`
	Down               int `json:"down"`
	RatedCount         int `json:"rated_count"`
	SourceEvalCount    int `json:"source_eval_count"`
	CorrectSourceCount int `json:"correct_source_count"`
}

type analyticsResponse struct {
	Summary            analyticsSummary `json:"summary"`
	ThumbsUpText       string           `json:"thumbs_up_text"`
	SourceAccuracyText string           `json:"source_accuracy_text"`
}

type agentAnalyticsRequest struct {
	TeamID  string `json:"teamId"`
	AgentID string `json:"agentId"`
}

// both error shapes the server answers with
type apiErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
