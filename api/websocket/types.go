package websocket

import (
	"codeberg.org/solari/bff/internal/accessgate"
	"codeberg.org/solari/bff/internal/auth"
	ws "codeberg.org/solari/bff/internal/websocket"
)

type ConnectParams struct {
	Path string `form:"path"` // page the client starts on, defaults to "/"
}

// what an access stream needs to build a gate per connection
type StreamDeps struct {
	Hub      *ws.Hub
	Teams    accessgate.TeamResolver
	Billing  accessgate.BillingSource
	Policy   accessgate.Policy
	Sessions *auth.SessionStore

	AllowedOrigins []string
	Production     bool
}
