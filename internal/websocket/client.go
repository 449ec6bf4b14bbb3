package websocket

import (
	"encoding/json"
	"time"

	"codeberg.org/solari/bff/internal/errors"
	"codeberg.org/solari/bff/internal/logger"
	"github.com/gorilla/websocket"
	"golang.org/x/time/rate"
)

// creates a new webSocket client connection
func NewClient(id, ipAddress string, conn *websocket.Conn, hub *Hub) *Client {
	return &Client{
		ID:        id,
		IPAddress: ipAddress,
		conn:      conn,
		hub:       hub,
		send:      make(chan []byte, sendBufferSize),
		limiter:   rate.NewLimiter(rate.Limit(framesPerSecond), frameBurst),
	}
}

// reads frames until the connection drops; blocks the caller
func (c *Client) ReadPump(handle FrameHandler) {
	defer func() {
		if c.hub != nil {
			c.hub.Unregister(c)
		}
		c.Close()
		c.conn.Close() //nolint:errcheck,gosec // G104: defer cleanup
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait)) //nolint:errcheck,gosec // G104: websocket setup
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait)) //nolint:errcheck,gosec // G104: pong handler
		return nil
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Warn("websocket error",
					"client_id", c.ID,
					"error", err,
				)
			}

			return
		}

		if !c.limiter.Allow() {
			c.SendError(errors.CodeTooManyRequests, "too many messages, slow down")
			continue
		}

		var frame Frame
		if err := json.Unmarshal(data, &frame); err != nil {
			c.SendError(errors.CodeBadRequest, "invalid message format")
			continue
		}

		handle(c, frame)
	}
}

// writes queued messages and keepalive pings; returns when the client closes
func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)

	defer func() {
		ticker.Stop()
		c.conn.Close() //nolint:errcheck,gosec // G104: defer cleanup
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait)) //nolint:errcheck,gosec // G104: websocket timing

			if !ok {
				// client closed the channel
				c.conn.WriteMessage(websocket.CloseMessage, []byte{}) //nolint:errcheck,gosec // G104: close message
				return
			}

			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait)) //nolint:errcheck,gosec // G104: websocket ping timing

			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// queues a message; a full queue closes the connection
func (c *Client) Send(msg *Message) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.closed {
		return ErrConnectionClosed
	}

	select {
	case c.send <- data:
		return nil
	default:
		logger.Warn("websocket send buffer full, dropping client", "client_id", c.ID)
		go c.Close()
		return ErrConnectionClosed
	}
}

// sends an error frame to the client
func (c *Client) SendError(code, message string) {
	msg, err := NewMessage(TypeError, errors.ErrorResponse{
		Error:   code,
		Message: message,
	})
	if err != nil {
		logger.ErrorErr(err, "failed to create error message",
			"client_id", c.ID,
			"error_code", code,
		)
		return
	}

	c.Send(msg) //nolint:errcheck,gosec // G104: best effort error notification
}

// closes the outbound queue, which ends WritePump
func (c *Client) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.closed {
		c.closed = true
		close(c.send)
	}
}

func (c *Client) IsClosed() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.closed
}
