package websocket

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/goban-backend/internal/usecase"
)

type roomManager interface {
	CreateRoom(connID string) (usecase.RoomUpdate, error)
	JoinRoom(connID, code string) (usecase.RoomUpdate, error)
	StartGame(code string, seat, size int) (usecase.GameUpdate, error)
	MakeMove(code string, seat, row, col int) (usecase.GameUpdate, error)
	Pass(code string, seat int) (usecase.GameUpdate, error)
	Undo(code string, seat int) (usecase.GameUpdate, error)
	SetName(code string, seat int, rawName string) (usecase.RoomUpdate, error)
	Disconnect(code string, seat int) (usecase.DisconnectUpdate, error)
}

// client is one connected participant. The gateway owns the per-connection
// identity: which room and seat the socket is bound to.
type client struct {
	id   string
	conn *websocket.Conn

	roomCode string
	seat     int

	mu sync.Mutex // serializes writes to the socket
}

func (that *client) send(message any) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if err := that.conn.WriteJSON(message); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	return nil
}

type Server struct {
	logger *slog.Logger
	rooms  roomManager

	upgrader websocket.Upgrader

	connectionsMutex sync.RWMutex
	connections      map[string]*client

	handlers map[string]func(c *client, req *Request) error
}

func New(logger *slog.Logger, rooms roomManager) *Server {
	server := &Server{
		logger: logger,
		rooms:  rooms,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(_ *http.Request) bool { return true },
		},
		connections: make(map[string]*client),
		handlers:    make(map[string]func(*client, *Request) error),
	}

	server.handlers[actionCreateRoom] = server.handleCreateRoom
	server.handlers[actionJoinRoom] = server.handleJoinRoom
	server.handlers[actionStartGame] = server.handleStartGame
	server.handlers[actionMove] = server.handleMove
	server.handlers[actionPass] = server.handlePass
	server.handlers[actionUndo] = server.handleUndo
	server.handlers[actionSetName] = server.handleSetName

	return server
}

// Start - starts the WebSocket server.
func (that *Server) Start(ctx context.Context, port string) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		that.serveConnection(ctx, w, r)
	})

	srv := &http.Server{
		Addr:        ":" + port,
		Handler:     mux,
		ReadTimeout: 10 * time.Second,
		IdleTimeout: 30 * time.Second,
	}

	go func() {
		<-ctx.Done()
		_ = srv.Close()
	}()

	if err := srv.ListenAndServe(); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// serveConnection upgrades the request and pumps messages until the socket
// closes. The socket closing is the only asynchronous interrupt; it is
// handled as an ordinary action against the client's room.
func (that *Server) serveConnection(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "serveConnection")

	conn, err := that.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error("failed to upgrade connection", "error", err)
		return
	}

	c := &client{
		id:   uuid.NewString(),
		conn: conn,
	}

	that.connectionsMutex.Lock()
	that.connections[c.id] = c
	that.connectionsMutex.Unlock()

	log.Info("connection established", "connID", c.id)

	defer func() {
		that.handleDisconnect(c)
		_ = conn.Close()
	}()

	that.readLoop(ctx, c)
}

func (that *Server) readLoop(ctx context.Context, c *client) {
	log := that.logger.With("method", "readLoop", "connID", c.id)

	for {
		if ctx.Err() != nil {
			return
		}

		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			log.Info("connection closed", "error", err)
			return
		}

		var req Request
		if err = json.Unmarshal(raw, &req); err != nil {
			log.Error("failed to unmarshal message", "error", err)
			that.sendError(c, "Invalid message.")
			continue
		}

		handler, ok := that.handlers[req.Type]
		if !ok {
			log.Error("unknown action", "type", req.Type)
			that.sendError(c, "Unknown action.")
			continue
		}

		if err = handler(c, &req); err != nil {
			log.Error("failed to process message", "type", req.Type, "error", err)
		}
	}
}

// handleDisconnect vacates the client's seat and tells the surviving seat
// that the room was reset.
func (that *Server) handleDisconnect(c *client) {
	log := that.logger.With("method", "handleDisconnect", "connID", c.id)

	that.connectionsMutex.Lock()
	delete(that.connections, c.id)
	that.connectionsMutex.Unlock()

	if c.roomCode == "" {
		return
	}

	update, err := that.rooms.Disconnect(c.roomCode, c.seat)
	if err != nil {
		log.Error("failed to vacate seat", "code", c.roomCode, "error", err)
		return
	}

	if update.RoomDestroyed {
		return
	}

	if update.HostChanged {
		that.broadcast(update.Recipients, HostChangedMessage{Type: typeHostChanged, Host: update.Host})
	}

	that.broadcast(update.Recipients, RoomUpdateMessage{
		Type:    typeRoomUpdate,
		Players: update.Players,
		Host:    update.Host,
		Names:   update.Names,
		Note:    "Opponent left. Room reset.",
	})
	that.broadcast(update.Recipients, GameResetMessage{Type: typeGameReset})
}

// broadcast delivers a message to every recipient independently; a dead
// connection is skipped so it can never block the other seat.
func (that *Server) broadcast(recipients []string, message any) {
	log := that.logger.With("method", "broadcast")

	for _, connID := range recipients {
		that.connectionsMutex.RLock()
		c, ok := that.connections[connID]
		that.connectionsMutex.RUnlock()

		if !ok {
			log.Warn("connection not found", "connID", connID)
			continue
		}

		if err := c.send(message); err != nil {
			log.Error("failed to send message", "connID", connID, "error", err)
		}
	}
}

func (that *Server) sendError(c *client, message string) {
	if err := c.send(ErrorMessage{Type: typeError, Message: message}); err != nil {
		that.logger.Error("failed to send error response", "connID", c.id, "error", err)
	}
}
