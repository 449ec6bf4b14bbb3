package websocket

import (
	"time"

	"codeberg.org/solari/bff/internal/logger"
)

func NewHub() *Hub {
	return &Hub{
		clients:       make(map[string]*Client),
		ipConnections: make(map[string]int),
	}
}

// adds a client; false when the hub is shutting down
func (h *Hub) Register(client *Client) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.shuttingDown {
		return false
	}

	h.clients[client.ID] = client
	h.ipConnections[client.IPAddress]++

	logger.Debug("client registered",
		"client_id", client.ID,
		"ip", client.IPAddress,
	)

	return true
}

// removes a client; safe to call more than once
func (h *Hub) Unregister(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[client.ID]; !ok {
		return
	}

	delete(h.clients, client.ID)

	h.ipConnections[client.IPAddress]--
	if h.ipConnections[client.IPAddress] <= 0 {
		delete(h.ipConnections, client.IPAddress)
	}

	logger.Debug("client unregistered", "client_id", client.ID)
}

// checks if a new connection should be allowed based on limits
func (h *Hub) CanAcceptConnection(ipAddress string) (bool, string) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if h.shuttingDown {
		return false, "Server is shutting down"
	}

	if h.ipConnections[ipAddress] >= maxConnectionsPerIP {
		return false, "Maximum connections per IP address exceeded"
	}

	return true, ""
}

func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.clients)
}

// notifies every client, then closes all connections
func (h *Hub) Shutdown() {
	h.mu.Lock()
	h.shuttingDown = true

	clients := make([]*Client, 0, len(h.clients))
	for _, client := range h.clients {
		clients = append(clients, client)
	}
	h.mu.Unlock()

	if len(clients) == 0 {
		return
	}

	logger.Info("notifying clients of server shutdown", "clients", len(clients))

	msg, err := NewMessage(TypeServerShutdown, ServerShutdownPayload{
		Reason: "server is shutting down",
	})
	if err == nil {
		for _, client := range clients {
			client.Send(msg) //nolint:errcheck,gosec // best-effort
		}
	}

	// give clients time to receive the shutdown message
	time.Sleep(500 * time.Millisecond)

	for _, client := range clients {
		client.Close()
	}
}
