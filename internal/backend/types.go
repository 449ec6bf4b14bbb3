package backend

import (
	"errors"
	"net/http"
	"time"
)

// header carrying the service-to-service secret
const HeaderInternalKey = "x-solari-key"

// largest backend response body relayed to the browser
const maxResponseBytes = 10 << 20

var ErrTransport = errors.New("backend request failed")

type Config struct {
	BaseURL     string
	InternalKey string
	Timeout     time.Duration
}

// one call to the backend
type Request struct {
	Method string // defaults to POST
	Path   string
	Body   []byte // JSON, may be nil
	Query  map[string]string

	// omit the internal key header for routes the backend serves publicly
	SkipKey bool
}

// what the backend answered; redirects are returned, never followed
type Response struct {
	StatusCode  int
	Header      http.Header
	Body        []byte
	ContentType string
}

func (r *Response) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

func (r *Response) IsRedirect() bool {
	return r.StatusCode >= 300 && r.StatusCode < 400
}

// target of a redirect response, "" when absent
func (r *Response) Location() string {
	return r.Header.Get("Location")
}
