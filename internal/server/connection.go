package server

import (
	"errors"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/lox/showdown/internal/render"
	"github.com/lox/showdown/internal/showdown"
)

const (
	writeWait      = 10 * time.Second
	maxMessageSize = 64 * 1024
)

// Connection represents a WebSocket connection to a client
type Connection struct {
	id        string
	conn      *websocket.Conn
	parse     showdown.ParseFunc
	logger    *log.Logger
	closeOnce sync.Once
	ranked    int
	mu        sync.Mutex
}

// NewConnection creates a new connection wrapper
func NewConnection(conn *websocket.Conn, logger *log.Logger, parse showdown.ParseFunc) *Connection {
	id := uuid.NewString()
	return &Connection{
		id:     id,
		conn:   conn,
		parse:  parse,
		logger: logger.WithPrefix("conn").With("id", id),
	}
}

// ID returns the connection identifier used in logs.
func (c *Connection) ID() string {
	return c.id
}

// Ranked returns how many lines this connection has ranked.
func (c *Connection) Ranked() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ranked
}

// Serve reads lines and answers each one until the client goes away.
func (c *Connection) Serve() {
	defer c.Close()
	c.conn.SetReadLimit(maxMessageSize)

	for n := 1; ; n++ {
		msgType, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.logger.Warn("Read failed", "error", err)
			}
			return
		}
		if msgType != websocket.TextMessage {
			c.logger.Debug("Ignoring non-text message", "type", msgType)
			n--
			continue
		}

		res := showdown.Evaluate(string(data), c.parse)
		res.Number = n
		var le *showdown.LineError
		if errors.As(res.Err, &le) {
			le.Line = n
		}
		if res.Err == nil {
			c.mu.Lock()
			c.ranked++
			c.mu.Unlock()
		}

		_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := c.conn.WriteJSON(render.NewRecord(res)); err != nil {
			c.logger.Warn("Write failed", "error", err)
			return
		}
	}
}

// Close closes the connection
func (c *Connection) Close() error {
	var err error
	c.closeOnce.Do(func() {
		err = c.conn.Close()
	})
	return err
}
