package ratings

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"codeberg.org/solari/bff/internal/analytics"
	"codeberg.org/solari/bff/internal/backend"
	"codeberg.org/solari/bff/internal/errors"
	"codeberg.org/solari/bff/internal/proxy"
	"github.com/gin-gonic/gin"
)

func buildResponse(records []analytics.RatingRecord, minSample int) AnalyticsResponse {
	summary := analytics.Compute(records)

	return AnalyticsResponse{
		Summary:            summary,
		ThumbsUpText:       analytics.DescribeThumbsUp(summary, minSample),
		SourceAccuracyText: analytics.DescribeSourceAccuracy(summary, minSample),
	}
}

// AnalyticsHandler godoc
// @Summary Aggregate rating records
// @Description Computes thumbs-up and source-accuracy statistics over the given rating records
// @Tags ratings
// @Accept json
// @Produce json
// @Param request body AnalyticsRequest true "Rating records"
// @Success 200 {object} AnalyticsResponse
// @Failure 400 {object} errors.ErrorResponse
// @Router /api/v1/ratings/analytics [post]
func AnalyticsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AnalyticsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		c.JSON(http.StatusOK, buildResponse(req.Ratings, req.MinSample))
	}
}

// AgentAnalyticsHandler godoc
// @Summary Rating analytics for an agent
// @Description Fetches the agent's ratings from the backend and aggregates them
// @Tags ratings
// @Accept json
// @Produce json
// @Param request body AgentAnalyticsRequest true "Agent"
// @Success 200 {object} AnalyticsResponse
// @Failure 400 {object} errors.ProxyErrorResponse
// @Failure 500 {object} errors.ProxyErrorResponse
// @Router /api/v1/ratings/agent-analytics [post]
func AgentAnalyticsHandler(client proxy.Forwarder) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, err := c.GetRawData()
		if err != nil {
			errors.ProxyBadRequest(c, proxy.MessageInvalidJSON)
			return
		}

		var fields map[string]any
		if err := json.Unmarshal(raw, &fields); err != nil || fields == nil {
			errors.ProxyBadRequest(c, proxy.MessageInvalidJSON)
			return
		}

		if missing := proxy.MissingFields(fields, agentAnalyticsRequired); len(missing) > 0 {
			errors.ProxyBadRequest(c, proxy.RequiredMessage(agentAnalyticsRequired))
			return
		}

		var req AgentAnalyticsRequest
		if err := json.Unmarshal(raw, &req); err != nil {
			errors.ProxyBadRequest(c, proxy.MessageInvalidJSON)
			return
		}

		body, err := json.Marshal(map[string]string{"teamId": req.TeamID, "agentId": req.AgentID})
		if err != nil {
			errors.ProxyInternal(c, "ratings/agent-analytics", err)
			return
		}

		resp, err := client.Do(c.Request.Context(), backend.Request{
			Method: http.MethodPost,
			Path:   backendRatingsPath,
			Body:   body,
		})
		if err != nil {
			errors.ProxyInternal(c, "ratings/agent-analytics", err)
			return
		}

		if !resp.IsSuccess() {
			proxy.Relay(c, resp)
			return
		}

		records, err := decodeRatings(resp.Body)
		if err != nil {
			errors.ProxyInternal(c, "ratings/agent-analytics", err)
			return
		}

		c.JSON(http.StatusOK, buildResponse(records, req.MinSample))
	}
}

// accepts a bare array, {"ratings": [...]} or an empty body
func decodeRatings(body []byte) ([]analytics.RatingRecord, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return nil, nil
	}

	if trimmed[0] == '[' {
		var records []analytics.RatingRecord
		if err := json.Unmarshal(trimmed, &records); err != nil {
			return nil, fmt.Errorf("decode rating list: %w", err)
		}

		return records, nil
	}

	var wrapped ratingList
	if err := json.Unmarshal(trimmed, &wrapped); err != nil {
		return nil, fmt.Errorf("decode rating list: %w", err)
	}

	return wrapped.Ratings, nil
}
