package websocket

import (
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"golang.org/x/time/rate"
)

// message type constants for websocket communication
const (
	// is sent by clients after sign-in, carries a JWT
	TypeIdentity = "identity"

	// is sent by clients when the user signs out
	TypeSignOut = "sign_out"

	// is sent by clients when the page changes
	TypeNavigate = "navigate"

	// is sent by clients to keep the connection alive
	TypePing = "ping"

	// is sent by server in response to ping
	TypePong = "pong"

	// is sent by server whenever the gate decision changes
	TypeAccessDecision = "access_decision"

	// is sent when an error occurs
	TypeError = "error"

	// is sent by server before shutdown
	TypeServerShutdown = "server_shutdown"
)

// client connection constants
const (
	// time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// time allowed to read the next pong message from the peer
	pongWait = 60 * time.Second

	// send pings to peer with this period (must be less than pongWait)
	pingPeriod = (pongWait * 9) / 10

	// maximum message size allowed from peer
	maxMessageSize = 8 * 1024

	// outbound queue per client
	sendBufferSize = 32

	// inbound frames allowed per second, with burst
	framesPerSecond = 5
	frameBurst      = 10
)

// hub connection limit constants
const (
	maxConnectionsPerIP = 10
)

var ErrConnectionClosed = errors.New("connection closed")

// a frame received from the browser
type Frame struct {
	Type  string `json:"type"`
	Token string `json:"token,omitempty"`
	Path  string `json:"path,omitempty"`
}

// a frame sent to the browser
type Message struct {
	Type      string          `json:"type"`
	Timestamp time.Time       `json:"timestamp"`
	Payload   json.RawMessage `json:"payload,omitempty"`
}

type ServerShutdownPayload struct {
	Reason string `json:"reason"`
}

// handles one decoded frame from a client
type FrameHandler func(client *Client, frame Frame)

// one browser connection
type Client struct {
	// unique identifier for this client
	ID string

	// IP address of the client (for connection tracking)
	IPAddress string

	conn    *websocket.Conn
	hub     *Hub
	send    chan []byte
	limiter *rate.Limiter

	mu     sync.RWMutex
	closed bool
}

// tracks live connections for limits and shutdown
type Hub struct {
	mu            sync.RWMutex
	clients       map[string]*Client
	ipConnections map[string]int
	shuttingDown  bool
}
