package backend

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// forwards requests to the external backend service
type Client struct {
	baseURL     string
	internalKey string
	httpClient  *http.Client
}

func New(cfg Config) *Client {
	return &Client{
		baseURL:     cfg.BaseURL,
		internalKey: cfg.InternalKey,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
			// redirects are handed back so routes can relay or intercept them
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}
}

// sends the request and reads the whole response; any non-nil error wraps ErrTransport
func (c *Client) Do(ctx context.Context, req Request) (*Response, error) {
	method := req.Method
	if method == "" {
		method = http.MethodPost
	}

	target, err := url.Parse(c.baseURL + req.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: bad url %q: %v", ErrTransport, req.Path, err)
	}

	if len(req.Query) > 0 {
		q := target.Query()
		for k, v := range req.Query {
			q.Set(k, v)
		}
		target.RawQuery = q.Encode()
	}

	var body io.Reader
	if req.Body != nil {
		body = bytes.NewReader(req.Body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, target.String(), body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrTransport, err)
	}

	if req.Body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	httpReq.Header.Set("Accept", "application/json")

	if !req.SkipKey {
		httpReq.Header.Set(HeaderInternalKey, c.internalKey)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTransport, err)
	}
	defer resp.Body.Close() //nolint:errcheck

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes+1))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response: %w", ErrTransport, err)
	}

	// a truncated body must never be relayed as if it were complete
	if len(respBody) > maxResponseBytes {
		return nil, fmt.Errorf("%w: response too large (limit %d bytes)", ErrTransport, maxResponseBytes)
	}

	return &Response{
		StatusCode:  resp.StatusCode,
		Header:      resp.Header,
		Body:        respBody,
		ContentType: resp.Header.Get("Content-Type"),
	}, nil
}
