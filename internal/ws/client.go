package ws

import (
	"context"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/ignatzorin/portfolio-backend/internal/goroutine"
	"github.com/ignatzorin/portfolio-backend/internal/logger"
)

const (
	writeTimeout  = 10 * time.Second
	idleTimeout   = 60 * time.Second
	pingInterval  = idleTimeout * 9 / 10
	maxInboundMsg = 4 << 10
	sendQueueSize = 16
)

// Client — одно websocket подключение администратора. Канал только на отправку:
// входящие кадры читаются ради pong и закрытия.
type Client struct {
	conn      *websocket.Conn
	hub       *Hub
	adminID   int64
	send      chan []byte
	closeOnce sync.Once
}

func NewClient(conn *websocket.Conn, hub *Hub, adminID int64) *Client {
	return &Client{
		conn:    conn,
		hub:     hub,
		adminID: adminID,
		send:    make(chan []byte, sendQueueSize),
	}
}

// Run блокируется до разрыва соединения или отмены ctx.
func (c *Client) Run(ctx context.Context) {
	// ReadMessage не слушает ctx, поэтому при отмене закрываем сокет
	stop := context.AfterFunc(ctx, c.Close)
	defer stop()

	goroutine.SafeGo("ws-write-pump", c.writePump)
	c.readLoop()
}

// Close снимает клиента с хаба и закрывает сокет. Повторный вызов безопасен.
func (c *Client) Close() {
	c.closeOnce.Do(func() {
		c.hub.Unregister(c)
		if c.conn != nil {
			_ = c.conn.Close()
		}
	})
}

func (c *Client) readLoop() {
	defer c.Close()

	c.conn.SetReadLimit(maxInboundMsg)
	_ = c.conn.SetReadDeadline(time.Now().Add(idleTimeout))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(idleTimeout))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Component("ws").WithField("admin_id", c.adminID).WithError(err).
					Debug("соединение оборвано")
			}
			return
		}
	}
}

func (c *Client) writePump() {
	ping := time.NewTicker(pingInterval)
	defer ping.Stop()
	defer c.Close()

	for {
		select {
		case payload, open := <-c.send:
			if !open {
				// хаб снял клиента
				c.writeControl(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
				return
			}
			if err := c.writeText(payload); err != nil {
				return
			}
		case <-ping.C:
			if err := c.writeControl(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// writeText отправляет кадр и заодно всё, что уже накопилось в очереди.
func (c *Client) writeText(payload []byte) error {
	_ = c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
		return err
	}
	for pending := len(c.send); pending > 0; pending-- {
		next, open := <-c.send
		if !open {
			return nil
		}
		if err := c.conn.WriteMessage(websocket.TextMessage, next); err != nil {
			return err
		}
	}
	return nil
}

func (c *Client) writeControl(kind int, data []byte) error {
	return c.conn.WriteControl(kind, data, time.Now().Add(writeTimeout))
}
