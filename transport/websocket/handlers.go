package websocket

import (
	"errors"
	"strings"

	"github.com/rocketscienceinc/goban-backend/internal/apperror"
	"github.com/rocketscienceinc/goban-backend/internal/baduk"
	"github.com/rocketscienceinc/goban-backend/internal/usecase"
)

func (that *Server) handleCreateRoom(c *client, _ *Request) error {
	update, err := that.rooms.CreateRoom(c.id)
	if err != nil {
		that.sendError(c, "Could not create room.")
		return err
	}

	c.roomCode = update.Code
	c.seat = update.Seat

	return c.send(RoomMessage{
		Type:         typeRoomCreated,
		Code:         update.Code,
		PlayerNumber: update.Seat,
		Host:         update.Host,
		Players:      update.Players,
		Names:        update.Names,
	})
}

func (that *Server) handleJoinRoom(c *client, req *Request) error {
	code := strings.ToUpper(strings.TrimSpace(req.Code))

	update, err := that.rooms.JoinRoom(c.id, code)
	if err != nil {
		that.sendError(c, errorText(err))
		return nil
	}

	c.roomCode = update.Code
	c.seat = update.Seat

	if err = c.send(RoomMessage{
		Type:         typeRoomJoined,
		Code:         update.Code,
		PlayerNumber: update.Seat,
		Host:         update.Host,
		Players:      update.Players,
		Names:        update.Names,
	}); err != nil {
		return err
	}

	that.broadcast(update.Recipients, RoomUpdateMessage{
		Type:    typeRoomUpdate,
		Players: update.Players,
		Host:    update.Host,
		Names:   update.Names,
	})

	return nil
}

func (that *Server) handleStartGame(c *client, req *Request) error {
	if c.roomCode == "" {
		that.sendError(c, "Room not found.")
		return nil
	}

	update, err := that.rooms.StartGame(c.roomCode, c.seat, req.Size)
	if err != nil {
		that.sendError(c, errorText(err))
		return nil
	}

	that.broadcast(update.Recipients, GameMessage{
		Type:        typeGameStarted,
		Assignments: update.Assignments,
		Names:       update.Names,
		State:       update.State,
	})

	return nil
}

func (that *Server) handleMove(c *client, req *Request) error {
	if c.roomCode == "" {
		that.sendError(c, "Game not started.")
		return nil
	}

	if req.Row == nil || req.Col == nil {
		that.sendError(c, "Invalid message.")
		return nil
	}

	update, err := that.rooms.MakeMove(c.roomCode, c.seat, *req.Row, *req.Col)
	if err != nil {
		that.sendError(c, errorText(err))
		return nil
	}

	that.broadcastState(update)

	return nil
}

func (that *Server) handlePass(c *client, _ *Request) error {
	if c.roomCode == "" {
		that.sendError(c, "Game not started.")
		return nil
	}

	update, err := that.rooms.Pass(c.roomCode, c.seat)
	if err != nil {
		that.sendError(c, errorText(err))
		return nil
	}

	that.broadcastState(update)

	return nil
}

func (that *Server) handleUndo(c *client, _ *Request) error {
	if c.roomCode == "" {
		that.sendError(c, "Game not started.")
		return nil
	}

	update, err := that.rooms.Undo(c.roomCode, c.seat)
	if err != nil {
		that.sendError(c, errorText(err))
		return nil
	}

	that.broadcastState(update)

	return nil
}

func (that *Server) handleSetName(c *client, req *Request) error {
	if c.roomCode == "" {
		that.sendError(c, "Room not found.")
		return nil
	}

	update, err := that.rooms.SetName(c.roomCode, c.seat, req.Name)
	if err != nil {
		that.sendError(c, errorText(err))
		return nil
	}

	that.broadcast(update.Recipients, RoomUpdateMessage{
		Type:    typeRoomUpdate,
		Players: update.Players,
		Host:    update.Host,
		Names:   update.Names,
	})

	return nil
}

func (that *Server) broadcastState(update usecase.GameUpdate) {
	that.broadcast(update.Recipients, GameMessage{
		Type:        typeStateUpdate,
		Assignments: update.Assignments,
		Names:       update.Names,
		State:       update.State,
		Score:       update.Score,
	})
}

// errorText maps a rejection to the message shown to the offending seat.
// Every rejection is recoverable; none of them terminate the connection.
func errorText(err error) string {
	switch {
	case errors.Is(err, apperror.ErrRoomNotFound):
		return "Room not found."
	case errors.Is(err, apperror.ErrRoomFull):
		return "Room is full."
	case errors.Is(err, apperror.ErrNotHost):
		return "Only the host can start."
	case errors.Is(err, apperror.ErrNotEnoughPlayers):
		return "Waiting for opponent."
	case errors.Is(err, apperror.ErrGameIsNotStarted):
		return "Game not started."
	case errors.Is(err, apperror.ErrGameFinished):
		return "Game is over."
	case errors.Is(err, apperror.ErrNotYourTurn):
		return "Not your turn."
	case errors.Is(err, apperror.ErrNothingToUndo):
		return "Nothing to undo."
	case errors.Is(err, apperror.ErrNotLastActor):
		return "Only the player who moved last can undo."
	case errors.Is(err, baduk.ErrOccupied):
		return "Illegal move: point is occupied."
	case errors.Is(err, baduk.ErrKoViolation):
		return "Illegal move: ko."
	case errors.Is(err, baduk.ErrSuicide):
		return "Illegal move: suicide."
	case errors.Is(err, baduk.ErrOutOfBounds):
		return "Invalid message."
	default:
		return "Invalid message."
	}
}
