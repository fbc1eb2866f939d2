package gateway

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"clocktower-lite/apps/server/internal/archive"
	"clocktower-lite/apps/server/internal/auth"
	"clocktower-lite/apps/server/internal/codec"
	"clocktower-lite/record"
	"clocktower-lite/role"
	"clocktower-lite/setup"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
	CheckOrigin: func(r *http.Request) bool {
		return true // TODO: Restrict in production
	},
}

// Connection represents one WebSocket client.
type Connection struct {
	ID       string
	UserID   uint64 // 0 = anonymous, no archive writes
	Conn     *websocket.Conn
	Send     chan []byte
	Gateway  *Gateway
	LastPing time.Time
}

// Gateway serves setup generation over WebSocket.
type Gateway struct {
	mu          sync.RWMutex
	connections map[string]*Connection
	nextConnID  uint64

	auth     auth.Service
	archive  archive.Service
	registry *role.ScriptRegistry
}

// New creates a gateway with the built-in script registry.
func New(authService auth.Service, archiveService archive.Service) *Gateway {
	return &Gateway{
		connections: make(map[string]*Connection),
		auth:        authService,
		archive:     archiveService,
		registry:    role.NewRegistry(),
	}
}

// HandleWebSocket upgrades the connection. A session token may ride in
// the "token" query parameter or the Authorization header; anonymous
// clients can still generate, they just get no archive.
func (g *Gateway) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		token = auth.BearerToken(r)
	}
	var userID uint64
	if token != "" {
		if id, _, ok := g.auth.ResolveSession(token); ok {
			userID = id
		}
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[Gateway] Upgrade error: %v", err)
		return
	}

	g.mu.Lock()
	g.nextConnID++
	connID := fmt.Sprintf("conn_%d", g.nextConnID)
	c := &Connection{
		ID:       connID,
		UserID:   userID,
		Conn:     conn,
		Send:     make(chan []byte, 64),
		Gateway:  g,
		LastPing: time.Now(),
	}
	g.connections[connID] = c
	total := len(g.connections)
	g.mu.Unlock()

	log.Printf("[Gateway] Client connected: %s (userID=%d), total: %d", connID, userID, total)

	go c.readPump()
	go c.writePump()
}

func (c *Connection) readPump() {
	defer func() {
		c.Gateway.removeConnection(c)
		c.Conn.Close()
	}()

	c.Conn.SetReadLimit(65536)
	c.Conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	c.Conn.SetPongHandler(func(string) error {
		c.Conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		c.LastPing = time.Now()
		return nil
	})

	for {
		messageType, message, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("[Gateway] Read error: %v", err)
			}
			break
		}
		if messageType == websocket.TextMessage {
			c.handleMessage(message)
		}
	}
}

func (c *Connection) handleMessage(data []byte) {
	env, err := codec.DecodeClient(data)
	if err != nil {
		log.Printf("[Gateway] Failed to decode frame: %v", err)
		c.sendError(0, 1, "invalid message format")
		return
	}

	switch env.Type {
	case codec.ClientTypeGenerate:
		if env.Generate == nil {
			c.sendError(env.RequestID, 2, "missing generate payload")
			return
		}
		c.handleGenerate(env.RequestID, env.Generate)
	case codec.ClientTypeScripts:
		c.handleScripts(env.RequestID)
	default:
		log.Printf("[Gateway] Unknown message type: %q", env.Type)
		c.sendError(env.RequestID, 3, "unknown message type")
	}
}

func (c *Connection) handleGenerate(requestID uint64, req *codec.GenerateRequest) {
	cfg, err := codec.BuildConfig(req, c.Gateway.registry)
	if err != nil {
		c.sendError(requestID, 4, err.Error())
		return
	}

	g, err := setup.NewGenerator(cfg)
	if err != nil {
		c.sendError(requestID, 4, err.Error())
		return
	}
	outcome, err := g.GenerateOutcome(req.Players)
	if err != nil {
		code := int32(4)
		if errors.Is(err, setup.ErrInfeasible) {
			code = 5
		}
		c.sendError(requestID, code, err.Error())
		return
	}

	rec := record.FromOutcome(g.Script().Name, req.Players, req.Seed, outcome)

	var archiveID string
	if c.UserID != 0 {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		archiveID, err = c.Gateway.archive.Save(ctx, c.UserID, rec)
		if err != nil {
			// Generation still succeeded; log and serve the setup.
			log.Printf("[Gateway] Archive save failed: user=%d err=%v", c.UserID, err)
			archiveID = ""
		}
	}

	c.send(&codec.ServerEnvelope{
		Type:      codec.ServerTypeSetup,
		RequestID: requestID,
		Setup:     record.ToWireRecord(rec),
		ArchiveID: archiveID,
	})
}

func (c *Connection) handleScripts(requestID uint64) {
	names := make([]string, 0)
	for _, s := range c.Gateway.registry.All() {
		names = append(names, s.Name)
	}
	c.send(&codec.ServerEnvelope{
		Type:      codec.ServerTypeScripts,
		RequestID: requestID,
		Scripts:   names,
	})
}

func (c *Connection) sendError(requestID uint64, code int32, msg string) {
	c.send(&codec.ServerEnvelope{
		Type:      codec.ServerTypeError,
		RequestID: requestID,
		Error: &codec.ErrorDetail{
			Code:    code,
			Message: msg,
		},
	})
}

func (c *Connection) send(env *codec.ServerEnvelope) {
	data, err := codec.EncodeServer(env)
	if err != nil {
		log.Printf("[Gateway] Encode error: %v", err)
		return
	}
	select {
	case c.Send <- data:
	default:
		log.Printf("[Gateway] Send buffer full, dropping frame for %s", c.ID)
	}
}

func (c *Connection) writePump() {
	ticker := time.NewTicker(30 * time.Second)
	defer func() {
		ticker.Stop()
		c.Conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.Send:
			c.Conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if !ok {
				c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			c.Conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (g *Gateway) removeConnection(c *Connection) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, exists := g.connections[c.ID]; exists {
		delete(g.connections, c.ID)
		close(c.Send)
		log.Printf("[Gateway] Client disconnected: %s, total: %d", c.ID, len(g.connections))
	}
}
