package proxy

import (
	"context"

	"codeberg.org/solari/bff/internal/backend"
)

const MessageInvalidJSON = "Invalid JSON body"

// sends a request to the backend service
type Forwarder interface {
	Do(ctx context.Context, req backend.Request) (*backend.Response, error)
}

// runs after the backend accepted the request, with the validated request body
type AfterFunc func(ctx context.Context, body map[string]any) error

// one pass-through endpoint
type Route struct {
	// path served under the group, also used in logs, e.g. "slack/install"
	Name string

	// backend path, defaults to "/" + Name
	BackendPath string

	// top-level body fields that must be present, non-null and non-empty
	Required []string

	// omit the internal key header
	SkipKey bool

	// answer backend 3xx responses with our own 302 to the Location
	InterceptRedirect bool

	// optional local side effect after a 2xx; failures are logged, never surfaced
	After AfterFunc
}

func (r Route) backendPath() string {
	if r.BackendPath != "" {
		return r.BackendPath
	}

	return "/" + r.Name
}
