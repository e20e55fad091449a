package usecase

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/rocketscienceinc/goban-backend/internal/apperror"
	"github.com/rocketscienceinc/goban-backend/internal/baduk"
	"github.com/rocketscienceinc/goban-backend/internal/entity"
	"github.com/rocketscienceinc/goban-backend/internal/pkg"
)

// maxNameLength bounds stored display names.
const maxNameLength = 16

var ErrCodeSpaceExhausted = errors.New("could not allocate a unique room code")

// maxCodeAttempts bounds the collision-check loop during code allocation.
const maxCodeAttempts = 100

// RoomUpdate is an occupancy snapshot taken under the room lock, ready for
// the gateway to fan out without touching the room again.
type RoomUpdate struct {
	Code       string
	Seat       int
	Host       int
	Players    int
	Names      map[int]string
	Recipients []string
}

// GameUpdate carries the session state resulting from one accepted action.
type GameUpdate struct {
	Code        string
	Assignments entity.Assignments
	Names       map[int]string
	State       *entity.Game
	Score       *baduk.ScoreResult
	Recipients  []string
}

// DisconnectUpdate tells the gateway what a seat's departure changed.
type DisconnectUpdate struct {
	RoomDestroyed bool
	HostChanged   bool
	Host          int
	Players       int
	Names         map[int]string
	Recipients    []string
}

// RoomManager owns the process-wide room registry. Registry insertion,
// lookup and deletion are guarded by the manager's lock; everything inside a
// room is serialized by that room's own lock, so independent rooms proceed in
// parallel.
type RoomManager struct {
	logger *slog.Logger

	mu    sync.RWMutex
	rooms map[string]*entity.Room
}

func NewRoomManager(logger *slog.Logger) *RoomManager {
	return &RoomManager{
		logger: logger,
		rooms:  make(map[string]*entity.Room),
	}
}

// CreateRoom allocates a fresh room with the caller seated as seat 1 and host.
func (that *RoomManager) CreateRoom(connID string) (RoomUpdate, error) {
	log := that.logger.With("method", "CreateRoom")

	that.mu.Lock()
	defer that.mu.Unlock()

	var code string
	for attempt := 0; ; attempt++ {
		if attempt >= maxCodeAttempts {
			return RoomUpdate{}, ErrCodeSpaceExhausted
		}

		generated, err := pkg.GenerateRoomCode()
		if err != nil {
			return RoomUpdate{}, fmt.Errorf("failed to create room: %w", err)
		}

		if _, exists := that.rooms[generated]; !exists {
			code = generated
			break
		}
	}

	room := entity.NewRoom(code, connID)
	that.rooms[code] = room

	log.Info("room created", "code", code)

	return RoomUpdate{
		Code:       code,
		Seat:       entity.SeatOne,
		Host:       room.Host,
		Players:    room.PlayerCount(),
		Names:      copyNames(room.Names),
		Recipients: room.ConnIDs(),
	}, nil
}

// JoinRoom seats the caller in an existing room. A full room is left
// completely untouched.
func (that *RoomManager) JoinRoom(connID, code string) (RoomUpdate, error) {
	room, err := that.getRoom(code)
	if err != nil {
		return RoomUpdate{}, err
	}

	room.Lock()
	defer room.Unlock()

	seat, free := room.FreeSeat()
	if !free {
		return RoomUpdate{}, apperror.ErrRoomFull
	}

	room.Seats[seat] = connID
	if room.Host == 0 {
		room.Host = seat
	}

	that.logger.With("method", "JoinRoom").Info("player joined", "code", code, "seat", seat)

	return RoomUpdate{
		Code:       code,
		Seat:       seat,
		Host:       room.Host,
		Players:    room.PlayerCount(),
		Names:      copyNames(room.Names),
		Recipients: room.ConnIDs(),
	}, nil
}

// StartGame flips a coin for colors and starts a fresh session. Only the host
// may start, and only with both seats occupied.
func (that *RoomManager) StartGame(code string, seat, size int) (GameUpdate, error) {
	room, err := that.getRoom(code)
	if err != nil {
		return GameUpdate{}, err
	}

	room.Lock()
	defer room.Unlock()

	if room.Host != seat {
		return GameUpdate{}, apperror.ErrNotHost
	}

	if room.PlayerCount() < 2 {
		return GameUpdate{}, apperror.ErrNotEnoughPlayers
	}

	assignments := entity.RandomColorAssignment()
	boardSize := entity.NormalizeBoardSize(size)

	room.Game = entity.NewGame(boardSize, assignments.BlackPlayer, assignments.WhitePlayer)
	room.Assignments = &assignments
	room.Started = true

	that.logger.With("method", "StartGame").Info("game started", "code", code, "size", boardSize)

	return that.gameUpdate(room, nil), nil
}

// MakeMove applies a stone placement for the given seat.
func (that *RoomManager) MakeMove(code string, seat, row, col int) (GameUpdate, error) {
	room, err := that.getRoom(code)
	if err != nil {
		return GameUpdate{}, err
	}

	room.Lock()
	defer room.Unlock()

	if !room.Started || room.Game == nil {
		return GameUpdate{}, apperror.ErrGameIsNotStarted
	}

	if err = room.Game.MakeMove(seat, row, col); err != nil {
		return GameUpdate{}, err
	}

	return that.gameUpdate(room, nil), nil
}

// Pass records a pass. When it is the second pass in a row the session ends
// and the update carries the final score.
func (that *RoomManager) Pass(code string, seat int) (GameUpdate, error) {
	room, err := that.getRoom(code)
	if err != nil {
		return GameUpdate{}, err
	}

	room.Lock()
	defer room.Unlock()

	if !room.Started || room.Game == nil {
		return GameUpdate{}, apperror.ErrGameIsNotStarted
	}

	over, err := room.Game.Pass(seat)
	if err != nil {
		return GameUpdate{}, err
	}

	var score *baduk.ScoreResult
	if over {
		result := room.Game.Score()
		score = &result

		that.logger.With("method", "Pass").Info("game over", "code", code, "winner", result.Winner)
	}

	return that.gameUpdate(room, score), nil
}

// Undo reverts the last move or pass, for its own actor only.
func (that *RoomManager) Undo(code string, seat int) (GameUpdate, error) {
	room, err := that.getRoom(code)
	if err != nil {
		return GameUpdate{}, err
	}

	room.Lock()
	defer room.Unlock()

	if !room.Started || room.Game == nil {
		return GameUpdate{}, apperror.ErrGameIsNotStarted
	}

	if err = room.Game.Undo(seat); err != nil {
		return GameUpdate{}, err
	}

	return that.gameUpdate(room, nil), nil
}

// SetName stores a sanitized display name for the seat.
func (that *RoomManager) SetName(code string, seat int, rawName string) (RoomUpdate, error) {
	room, err := that.getRoom(code)
	if err != nil {
		return RoomUpdate{}, err
	}

	room.Lock()
	defer room.Unlock()

	room.Names[seat] = SanitizeName(rawName)

	return RoomUpdate{
		Code:       code,
		Seat:       seat,
		Host:       room.Host,
		Players:    room.PlayerCount(),
		Names:      copyNames(room.Names),
		Recipients: room.ConnIDs(),
	}, nil
}

// Disconnect vacates a seat. An emptied room is destroyed; otherwise the host
// is re-elected if needed and any running session is torn down, returning the
// survivor to an unstarted room.
func (that *RoomManager) Disconnect(code string, seat int) (DisconnectUpdate, error) {
	log := that.logger.With("method", "Disconnect")

	room, err := that.getRoom(code)
	if err != nil {
		return DisconnectUpdate{}, err
	}

	room.Lock()

	delete(room.Seats, seat)
	room.Names[seat] = ""

	if room.PlayerCount() == 0 {
		room.Unlock()

		that.mu.Lock()
		delete(that.rooms, code)
		that.mu.Unlock()

		log.Info("room destroyed", "code", code)

		return DisconnectUpdate{RoomDestroyed: true}, nil
	}

	hostChanged := false
	if room.Host == seat {
		for remaining := range room.Seats {
			room.Host = remaining
			break
		}
		hostChanged = true
	}

	room.Reset()

	update := DisconnectUpdate{
		HostChanged: hostChanged,
		Host:        room.Host,
		Players:     room.PlayerCount(),
		Names:       copyNames(room.Names),
		Recipients:  room.ConnIDs(),
	}

	room.Unlock()

	log.Info("seat vacated, room reset", "code", code, "seat", seat)

	return update, nil
}

// SanitizeName strips line breaks, trims whitespace and bounds the length.
func SanitizeName(raw string) string {
	name := strings.NewReplacer("\r", " ", "\n", " ").Replace(raw)
	name = strings.TrimSpace(name)

	runes := []rune(name)
	if len(runes) > maxNameLength {
		name = string(runes[:maxNameLength])
	}

	return name
}

func (that *RoomManager) getRoom(code string) (*entity.Room, error) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	room, ok := that.rooms[code]
	if !ok {
		return nil, apperror.ErrRoomNotFound
	}

	return room, nil
}

// gameUpdate snapshots everything a broadcast needs while the room lock is
// still held.
func (that *RoomManager) gameUpdate(room *entity.Room, score *baduk.ScoreResult) GameUpdate {
	return GameUpdate{
		Code:        room.Code,
		Assignments: *room.Assignments,
		Names:       copyNames(room.Names),
		State:       room.Game.Clone(),
		Score:       score,
		Recipients:  room.ConnIDs(),
	}
}

func copyNames(names map[int]string) map[int]string {
	copied := make(map[int]string, len(names))
	for seat, name := range names {
		copied[seat] = name
	}

	return copied
}
