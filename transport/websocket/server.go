package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/clueless-backend/internal/entity"
	"github.com/rocketscienceinc/clueless-backend/internal/pkg"
	"github.com/rocketscienceinc/clueless-backend/internal/usecase"
)

const (
	sessionCookie     = "user_session"
	disconnectTimeout = 5 * time.Second
)

type gameManager interface {
	CreateGame(ctx context.Context, creatorID string, conf entity.GameConfig) (*entity.Game, error)
	JoinGame(ctx context.Context, req usecase.JoinRequest) (entity.PlayerView, entity.Card, error)
	Apply(ctx context.Context, playerID string, action entity.Action) (entity.PlayerView, error)
	Disconnect(ctx context.Context, playerID string) error
	View(ctx context.Context, playerID string) (entity.PlayerView, error)
}

type handlerFunc func(ctx context.Context, c *client, action string, payload *Payload) error

// Server - accepts websocket clients, routes their actions to the game manager and
// delivers engine events back to them.
type Server struct {
	logger   *slog.Logger
	manager  gameManager
	upgrader websocket.Upgrader

	handlers map[string]handlerFunc

	mu      sync.RWMutex
	clients map[string]map[*client]struct{}
	games   map[string]map[string]struct{}
}

func New(logger *slog.Logger, manager gameManager) *Server {
	server := &Server{
		logger:  logger.With("component", "websocket"),
		manager: manager,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(*http.Request) bool {
				return true
			},
		},

		handlers: make(map[string]handlerFunc),
		clients:  make(map[string]map[*client]struct{}),
		games:    make(map[string]map[string]struct{}),
	}

	server.handlers["connect"] = server.handleConnect
	server.handlers["game:new"] = server.handleNewGame
	server.handlers["game:join"] = server.handleJoinGame
	server.handlers["game:state"] = server.handleGameState
	server.handlers["game:move"] = server.handleGameAction(entity.ActionMove)
	server.handlers["game:suggest"] = server.handleGameAction(entity.ActionSuggest)
	server.handlers["game:disprove"] = server.handleGameAction(entity.ActionDisprove)
	server.handlers["game:accuse"] = server.handleGameAction(entity.ActionAccuse)
	server.handlers["game:end_turn"] = server.handleGameAction(entity.ActionEndTurn)

	return server
}

// Handler - the http handler serving /ws.
func (that *Server) Handler(ctx context.Context) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		that.upgradeToWebSocket(ctx, w, r)
	})

	return mux
}

// Start - starts WebSocket server and stops it when ctx is done.
func (that *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:        ":" + port,
		Handler:     that.Handler(ctx),
		ReadTimeout: 10 * time.Second,
		IdleTimeout: 30 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			that.logger.Error("failed to shut down server", "error", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// SendToGame - queues event for every connected member of the game.
func (that *Server) SendToGame(gameID string, event entity.Event) {
	data, err := eventMessage(event)
	if err != nil {
		that.logger.Error("failed to encode event", "method", "SendToGame", "gameID", gameID, "error", err)
		return
	}

	that.mu.RLock()
	defer that.mu.RUnlock()

	for playerID := range that.games[gameID] {
		that.deliver(playerID, data)
	}
}

// SendToPlayer - queues event for every connection of one player.
func (that *Server) SendToPlayer(playerID string, event entity.Event) {
	data, err := eventMessage(event)
	if err != nil {
		that.logger.Error("failed to encode event", "method", "SendToPlayer", "playerID", playerID, "error", err)
		return
	}

	that.mu.RLock()
	defer that.mu.RUnlock()

	that.deliver(playerID, data)
}

// deliver - expects that.mu to be held.
func (that *Server) deliver(playerID string, data []byte) {
	for c := range that.clients[playerID] {
		if !c.enqueue(data) {
			that.logger.Warn("client send buffer full, message dropped", "playerID", playerID)
		}
	}
}

// upgradeToWebSocket - upgrades the connection and serves it until it closes.
func (that *Server) upgradeToWebSocket(ctx context.Context, writer http.ResponseWriter, req *http.Request) {
	log := that.logger.With("method", "upgradeToWebSocket")

	header := http.Header{}
	sessionID := that.sessionID(req, header)

	conn, err := that.upgrader.Upgrade(writer, req, header)
	if err != nil {
		log.Error("failed to upgrade connection", "error", err)
		return
	}

	c := newClient(conn, sessionID)
	that.bind(c, sessionID)

	log.Info("WebSocket connection established", "playerID", sessionID)

	go c.writePump()
	that.readPump(ctx, c)
}

// sessionID - the user_session cookie, or a fresh one set on the upgrade response.
func (that *Server) sessionID(req *http.Request, header http.Header) string {
	cookie, err := req.Cookie(sessionCookie)
	if err == nil && cookie.Value != "" {
		return cookie.Value
	}

	cookie = &http.Cookie{
		Name:    sessionCookie,
		Value:   pkg.GenerateNewSessionID(),
		Expires: time.Now().Add(24 * time.Hour),
		Path:    "/ws",
	}
	header.Add("Set-Cookie", cookie.String())

	that.logger.Info("session cookie not found, new one created", "method", "sessionID")

	return cookie.Value
}

func (that *Server) readPump(ctx context.Context, c *client) {
	log := that.logger.With("method", "readPump")

	defer that.handleDisconnect(c)

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Warn("connection closed unexpectedly", "playerID", c.PlayerID(), "error", err)
			}
			return
		}

		var message Message
		if err = json.Unmarshal(data, &message); err != nil {
			log.Error("failed to unmarshal message", "error", err)
			that.sendError(c, "", "invalid message")
			continue
		}

		handler, ok := that.handlers[message.Action]
		if !ok {
			that.sendError(c, message.Action, "unknown action")
			continue
		}

		var payload Payload
		if len(message.Payload) > 0 {
			if err = json.Unmarshal(message.Payload, &payload); err != nil {
				that.sendError(c, message.Action, "invalid payload")
				continue
			}
		}

		that.identify(c, &payload)

		if err = handler(ctx, c, message.Action, &payload); err != nil {
			log.Error("error processing message", "action", message.Action, "playerID", c.PlayerID(), "error", err)
		}
	}
}

// identify - a player id in the payload rebinds the connection, otherwise it keeps its current one.
// An identity left without connections by the rebind is disconnected.
func (that *Server) identify(c *client, payload *Payload) {
	if payload.Player == nil || payload.Player.ID == "" {
		return
	}

	previous := c.PlayerID()
	if payload.Player.ID == previous {
		return
	}

	if gone := that.bind(c, payload.Player.ID); gone {
		that.disconnect(previous)
	}
}

// bind - registers c under playerID. Reports whether the identity c had before lost its last connection.
func (that *Server) bind(c *client, playerID string) bool {
	that.mu.Lock()
	defer that.mu.Unlock()

	gone := that.removeClient(c)

	c.setPlayerID(playerID)

	if that.clients[playerID] == nil {
		that.clients[playerID] = make(map[*client]struct{})
	}
	that.clients[playerID][c] = struct{}{}

	return gone
}

// removeClient - expects that.mu to be held. Reports whether c was registered and was the
// player's last connection.
func (that *Server) removeClient(c *client) bool {
	playerID := c.PlayerID()

	conns, ok := that.clients[playerID]
	if !ok {
		return false
	}

	if _, ok = conns[c]; !ok {
		return false
	}

	delete(conns, c)
	if len(conns) > 0 {
		return false
	}

	delete(that.clients, playerID)

	return true
}

func (that *Server) joinGroup(gameID, playerID string) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.games[gameID] == nil {
		that.games[gameID] = make(map[string]struct{})
	}
	that.games[gameID][playerID] = struct{}{}
}

// handleDisconnect - once a player's last connection is gone, their game is told about it.
func (that *Server) handleDisconnect(c *client) {
	c.close()

	that.mu.Lock()
	gone := that.removeClient(c)
	that.mu.Unlock()

	if gone {
		that.disconnect(c.PlayerID())
	}
}

func (that *Server) disconnect(playerID string) {
	ctx, cancel := context.WithTimeout(context.Background(), disconnectTimeout)
	defer cancel()

	if err := that.manager.Disconnect(ctx, playerID); err != nil {
		that.logger.Error("failed to disconnect player", "method", "disconnect", "playerID", playerID, "error", err)
		return
	}

	that.logger.Info("player disconnected", "method", "disconnect", "playerID", playerID)
}
