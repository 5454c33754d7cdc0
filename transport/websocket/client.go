package websocket

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = pongWait * 9 / 10
	maxMessageSize = 8 << 10
	sendBufferSize = 64
)

// client - one websocket connection. Only writePump writes to conn.
type client struct {
	conn *websocket.Conn
	send chan []byte
	done chan struct{}

	closeOnce sync.Once

	mu       sync.Mutex
	playerID string
}

func newClient(conn *websocket.Conn, playerID string) *client {
	return &client{
		conn:     conn,
		send:     make(chan []byte, sendBufferSize),
		done:     make(chan struct{}),
		playerID: playerID,
	}
}

func (that *client) PlayerID() string {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.playerID
}

func (that *client) setPlayerID(id string) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.playerID = id
}

// enqueue - never blocks. A full buffer drops the message.
func (that *client) enqueue(data []byte) bool {
	select {
	case <-that.done:
		return false
	default:
	}

	select {
	case that.send <- data:
		return true
	default:
		return false
	}
}

func (that *client) close() {
	that.closeOnce.Do(func() {
		close(that.done)
		_ = that.conn.Close()
	})
}

func (that *client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		that.close()
	}()

	for {
		select {
		case data := <-that.send:
			_ = that.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := that.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}
		case <-ticker.C:
			_ = that.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := that.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-that.done:
			return
		}
	}
}
