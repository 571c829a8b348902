package ws

import (
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

const (
	writeWait = 10 * time.Second
	pongWait  = 60 * time.Second

	defaultSendBufferSize = 16
	defaultReadLimitBytes = 512
	defaultPingPeriodSec  = 54
)

// Client is one websocket connection subscribed to a single room.
type Client struct {
	hub  *Hub
	conn *websocket.Conn
	send chan []byte
	room string
}

func newClient(hub *Hub, conn *websocket.Conn, room string, sendBufferSize int) *Client {
	if sendBufferSize <= 0 {
		sendBufferSize = defaultSendBufferSize
	}

	return &Client{
		hub:  hub,
		conn: conn,
		send: make(chan []byte, sendBufferSize),
		room: room,
	}
}

// readPump drains inbound frames so pong handlers fire and close frames are
// seen. Clients have nothing to say on this channel, payloads are discarded.
func (c *Client) readPump(readLimitBytes int) {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()

	if readLimitBytes <= 0 {
		readLimitBytes = defaultReadLimitBytes
	}

	c.conn.SetReadLimit(int64(readLimitBytes))

	if err := c.conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		return
	}

	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, _, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Debug().Err(err).Str("room", c.room).Msg("Unexpected websocket close")
			}

			return
		}
	}
}

func (c *Client) writePump(pingPeriodSec int) {
	if pingPeriodSec <= 0 {
		pingPeriodSec = defaultPingPeriodSec
	}

	ticker := time.NewTicker(time.Duration(pingPeriodSec) * time.Second)

	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case payload, ok := <-c.send:
			if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				return
			}

			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})

				return
			}

			if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}
		case <-ticker.C:
			if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				return
			}

			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
