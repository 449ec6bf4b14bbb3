package console

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// talks to the BFF REST API with a bearer token
type Client struct {
	endpoint   string
	token      string
	httpClient *http.Client
}

// creates a client; an empty endpoint means the local server
func NewClient(endpoint, token string) *Client {
	if endpoint == "" {
		endpoint = defaultEndpoint
	}

	return &Client{
		endpoint: strings.TrimRight(endpoint, "/"),
		token:    token,
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
	}
}

// gate decision for a page as seen by the token's user
func (c *Client) Access(ctx context.Context, path string) (*accessResponse, error) {
	var out accessResponse
	if err := c.do(ctx, http.MethodGet, "/api/v1/access?path="+url.QueryEscape(path), nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (c *Client) CurrentTeam(ctx context.Context) (*teamResponse, error) {
	var out teamResponse
	if err := c.do(ctx, http.MethodGet, "/api/v1/teams/current", nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// rating analytics for one of the current team's agents
func (c *Client) AgentAnalytics(ctx context.Context, agentID string) (*analyticsResponse, error) {
	team, err := c.CurrentTeam(ctx)
	if err != nil {
		return nil, err
	}

	var out analyticsResponse
	req := agentAnalyticsRequest{TeamID: team.ID, AgentID: agentID}
	if err := c.do(ctx, http.MethodPost, "/api/v1/ratings/agent-analytics", req, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errResp apiErrorResponse
		if err := json.Unmarshal(raw, &errResp); err == nil && errResp.Error != "" {
			if errResp.Message != "" {
				return fmt.Errorf("%s: %s", errResp.Error, errResp.Message)
			}
			return fmt.Errorf("%s", errResp.Error)
		}
		return fmt.Errorf("request failed with status %d", resp.StatusCode)
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}

	return nil
}
