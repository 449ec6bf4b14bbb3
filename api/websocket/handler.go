package websocket

import (
	"strings"

	"codeberg.org/solari/bff/internal/accessgate"
	"codeberg.org/solari/bff/internal/auth"
	"codeberg.org/solari/bff/internal/errors"
	"codeberg.org/solari/bff/internal/logger"
	ws "codeberg.org/solari/bff/internal/websocket"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// AccessStreamHandler godoc
// @Summary Stream access decisions
// @Description Upgrades to a WebSocket that pushes the access gate decision for the current page.
// @Description Client frames: identity {token}, sign_out, navigate {path}, ping.
// @Description Server frames: access_decision {payload}, pong, error, server_shutdown.
// @Tags access
// @Param path query string false "Initial page path" default(/)
// @Success 101 {string} string "Switching Protocols"
// @Failure 400 {object} errors.ErrorResponse
// @Failure 429 {object} errors.ErrorResponse
// @Router /api/v1/access/stream [get]
func AccessStreamHandler(deps StreamDeps) gin.HandlerFunc {
	upgrader := websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     ws.CheckOrigin(deps.AllowedOrigins, deps.Production),
	}

	return func(c *gin.Context) {
		var params ConnectParams
		if err := c.ShouldBindQuery(&params); err != nil {
			errors.ValidationError(c, err)
			return
		}

		path := params.Path
		if path == "" {
			path = "/"
		}

		if !strings.HasPrefix(path, "/") {
			errors.BadRequest(c, "path must start with /", nil)
			return
		}

		ipAddress := c.ClientIP()

		if ok, reason := deps.Hub.CanAcceptConnection(ipAddress); !ok {
			errors.TooManyRequests(c, reason)
			return
		}

		// a session cookie on the upgrade request identifies the user up front
		claims, signedIn := auth.ClaimsFromRequest(c, deps.Sessions)

		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			logger.ErrorErr(err, "failed to upgrade connection", "ip", ipAddress)
			return
		}

		client := ws.NewClient(ws.GenerateClientID(), ipAddress, conn, deps.Hub)
		if !deps.Hub.Register(client) {
			conn.Close() //nolint:errcheck,gosec // G104: rejected during shutdown
			return
		}

		go client.WritePump()

		feed := accessgate.NewIdentityFeed()
		gate := accessgate.NewGate(deps.Teams, deps.Billing, path,
			accessgate.WithPolicy(deps.Policy),
			accessgate.WithLogger(logger.With("client_id", client.ID)),
		)

		// forward decisions until the gate closes
		go func() {
			for result := range gate.Updates() {
				msg, err := ws.NewMessage(ws.TypeAccessDecision, result)
				if err != nil {
					continue
				}

				if err := client.Send(msg); err != nil {
					return
				}
			}
		}()

		gate.Start(feed)

		if signedIn {
			feed.Publish(&accessgate.Identity{UID: claims.UserID, Email: claims.Email})
		}

		client.ReadPump(frameHandler(feed, gate))

		gate.Close()
	}
}

func frameHandler(feed *accessgate.IdentityFeed, gate *accessgate.Gate) ws.FrameHandler {
	return func(client *ws.Client, frame ws.Frame) {
		switch frame.Type {
		case ws.TypeIdentity:
			claims, err := auth.ValidateJWT(frame.Token)
			if err != nil {
				client.SendError(errors.CodeUnauthorized, "invalid or expired token")
				return
			}

			feed.Publish(&accessgate.Identity{UID: claims.UserID, Email: claims.Email})

		case ws.TypeSignOut:
			feed.Publish(nil)

		case ws.TypeNavigate:
			if !strings.HasPrefix(frame.Path, "/") {
				client.SendError(errors.CodeBadRequest, "path must start with /")
				return
			}

			gate.Navigate(frame.Path)

		case ws.TypePing:
			msg, err := ws.NewMessage(ws.TypePong, nil)
			if err == nil {
				client.Send(msg) //nolint:errcheck,gosec // best-effort
			}

		default:
			client.SendError(errors.CodeBadRequest, "unknown message type")
		}
	}
}
