package ratings

import "codeberg.org/solari/bff/internal/analytics"

// AnalyticsRequest carries the raw rating records to aggregate
type AnalyticsRequest struct {
	Ratings   []analytics.RatingRecord `json:"ratings" binding:"required"`
	MinSample int                      `json:"min_sample"`
}

// AgentAnalyticsRequest names the agent whose ratings the backend returns
type AgentAnalyticsRequest struct {
	TeamID    string `json:"teamId"`
	AgentID   string `json:"agentId"`
	MinSample int    `json:"min_sample,omitempty"`
}

// AnalyticsResponse is the summary plus the sentences the dashboard shows
type AnalyticsResponse struct {
	Summary            analytics.Summary `json:"summary"`
	ThumbsUpText       string            `json:"thumbs_up_text"`
	SourceAccuracyText string            `json:"source_accuracy_text"`
}

// backend /ratings/list answers either with a bare array or wrapped
type ratingList struct {
	Ratings []analytics.RatingRecord `json:"ratings"`
}

var agentAnalyticsRequired = []string{"teamId", "agentId"}

const backendRatingsPath = "/ratings/list"
